package service

import (
	"context"
	"strings"

	"github.com/itchan-dev/mailadmin/shared/domain"
	"github.com/itchan-dev/mailadmin/shared/errors"
	"github.com/itchan-dev/mailadmin/shared/logger"
)

// to mock service in tests
type DominioService interface {
	GetAll(ctx context.Context) ([]domain.Dominio, error)
	Get(ctx context.Context, id domain.DominioId) (domain.Dominio, error)
	Create(ctx context.Context, data domain.DominioCreationData) (domain.Dominio, error)
	Update(ctx context.Context, id domain.DominioId, data domain.DominioUpdateData) (domain.Dominio, error)
	Delete(ctx context.Context, id domain.DominioId) error
	Activate(ctx context.Context, id domain.DominioId) (domain.Dominio, error)
	Deactivate(ctx context.Context, id domain.DominioId) (domain.Dominio, error)
}

type Dominio struct {
	storage   DominioStorage
	validator DominioValidator
}

type DominioStorage interface {
	GetDominios(ctx context.Context) ([]domain.Dominio, error)
	GetDominio(ctx context.Context, id domain.DominioId) (domain.Dominio, error)
	CreateDominio(ctx context.Context, data domain.DominioCreationData) (domain.Dominio, error)
	UpdateDominio(ctx context.Context, id domain.DominioId, data domain.DominioUpdateData) (domain.Dominio, error)
	SetDominioActive(ctx context.Context, id domain.DominioId, active bool) (domain.Dominio, error)
	DeleteDominio(ctx context.Context, id domain.DominioId) error
}

type DominioValidator interface {
	Name(name domain.DominioName) error
}

func NewDominio(storage DominioStorage, validator DominioValidator) *Dominio {
	return &Dominio{storage: storage, validator: validator}
}

func (d *Dominio) GetAll(ctx context.Context) ([]domain.Dominio, error) {
	return d.storage.GetDominios(ctx)
}

func (d *Dominio) Get(ctx context.Context, id domain.DominioId) (domain.Dominio, error) {
	return d.storage.GetDominio(ctx, id)
}

func (d *Dominio) Create(ctx context.Context, data domain.DominioCreationData) (domain.Dominio, error) {
	data.Name = strings.TrimSpace(data.Name)
	if err := d.validator.Name(data.Name); err != nil {
		return domain.Dominio{}, err
	}

	dominio, err := d.storage.CreateDominio(ctx, data)
	if err != nil {
		return domain.Dominio{}, err
	}
	logger.Log.Info("dominio created", "dominio_id", dominio.Id, "name", dominio.Name)
	return dominio, nil
}

func (d *Dominio) Update(ctx context.Context, id domain.DominioId, data domain.DominioUpdateData) (domain.Dominio, error) {
	if data.IsEmpty() {
		return domain.Dominio{}, errors.Validation("Debe indicar al menos un campo para actualizar", nil)
	}
	if data.Name != nil {
		name := strings.TrimSpace(*data.Name)
		if err := d.validator.Name(name); err != nil {
			return domain.Dominio{}, err
		}
		data.Name = &name
	}
	return d.storage.UpdateDominio(ctx, id, data)
}

func (d *Dominio) Delete(ctx context.Context, id domain.DominioId) error {
	if err := d.storage.DeleteDominio(ctx, id); err != nil {
		return err
	}
	logger.Log.Info("dominio deleted", "dominio_id", id)
	return nil
}

func (d *Dominio) Activate(ctx context.Context, id domain.DominioId) (domain.Dominio, error) {
	return d.storage.SetDominioActive(ctx, id, true)
}

// Deactivate only blocks new links; existing areas and correos keep referencing the dominio.
func (d *Dominio) Deactivate(ctx context.Context, id domain.DominioId) (domain.Dominio, error) {
	return d.storage.SetDominioActive(ctx, id, false)
}
