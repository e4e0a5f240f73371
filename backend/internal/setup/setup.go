package setup

import (
	"context"

	"github.com/itchan-dev/mailadmin/backend/internal/handler"
	"github.com/itchan-dev/mailadmin/backend/internal/service"
	"github.com/itchan-dev/mailadmin/backend/internal/storage/pg"
	"github.com/itchan-dev/mailadmin/backend/internal/utils"
	"github.com/itchan-dev/mailadmin/shared/config"
)

// Dependencies struct to hold all initialized dependencies.
type Dependencies struct {
	Storage *pg.Storage
	Handler *handler.Handler
	Config  *config.Config
}

// SetupDependencies connects to the database, applies migrations and wires services into the handler.
func SetupDependencies(ctx context.Context, cfg *config.Config) (*Dependencies, error) {
	storage, err := pg.New(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return &Dependencies{
		Storage: storage,
		Handler: NewHandler(storage),
		Config:  cfg,
	}, nil
}

// NewHandler wires every service on top of storage.
func NewHandler(storage *pg.Storage) *handler.Handler {
	dominio := service.NewDominio(storage, &utils.DominioNameValidator{})
	area := service.NewArea(storage, storage, &utils.AreaNameValidator{})
	correo := service.NewCorreo(storage, storage, storage, &utils.LocalPartValidator{})

	return handler.New(dominio, area, correo, storage)
}
