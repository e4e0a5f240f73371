package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/itchan-dev/mailadmin/shared/domain"
	"github.com/itchan-dev/mailadmin/shared/errors"
	"github.com/itchan-dev/mailadmin/shared/logger"
)

type AreaService interface {
	GetAll(ctx context.Context) ([]domain.Area, error)
	Get(ctx context.Context, id domain.AreaId) (domain.Area, error)
	Create(ctx context.Context, data domain.AreaCreationData) (domain.Area, error)
	Update(ctx context.Context, id domain.AreaId, data domain.AreaUpdateData) (domain.Area, error)
	Delete(ctx context.Context, id domain.AreaId) error
}

type Area struct {
	storage   AreaStorage
	dominios  DominioLookup
	validator AreaValidator
}

type AreaStorage interface {
	GetAreas(ctx context.Context) ([]domain.Area, error)
	GetArea(ctx context.Context, id domain.AreaId) (domain.Area, error)
	CreateArea(ctx context.Context, data domain.AreaCreationData) (domain.Area, error)
	UpdateArea(ctx context.Context, id domain.AreaId, data domain.AreaUpdateData) (domain.Area, error)
	DeleteArea(ctx context.Context, id domain.AreaId) error
}

type DominioLookup interface {
	GetDominiosByIds(ctx context.Context, ids []domain.DominioId) ([]domain.Dominio, error)
}

type AreaValidator interface {
	Name(name domain.AreaName) error
}

func NewArea(storage AreaStorage, dominios DominioLookup, validator AreaValidator) *Area {
	return &Area{storage: storage, dominios: dominios, validator: validator}
}

func (a *Area) GetAll(ctx context.Context) ([]domain.Area, error) {
	return a.storage.GetAreas(ctx)
}

func (a *Area) Get(ctx context.Context, id domain.AreaId) (domain.Area, error) {
	return a.storage.GetArea(ctx, id)
}

// Create finds the area by name or creates it, then links the dominios not linked yet.
func (a *Area) Create(ctx context.Context, data domain.AreaCreationData) (domain.Area, error) {
	data.Name = strings.TrimSpace(data.Name)
	if err := a.validator.Name(data.Name); err != nil {
		return domain.Area{}, err
	}
	data.DominioIds = domain.UniqueIds(data.DominioIds)
	if len(data.DominioIds) == 0 {
		return domain.Area{}, errors.Validation("Datos inválidos", map[string]string{"dominios": "debe contener al menos 1 elemento(s)"})
	}
	if err := a.checkDominios(ctx, data.DominioIds); err != nil {
		return domain.Area{}, err
	}

	area, err := a.storage.CreateArea(ctx, data)
	if err != nil {
		return domain.Area{}, err
	}
	logger.Log.Info("area saved", "area_id", area.Id, "name", area.Name, "dominios", len(area.AreaDominios))
	return area, nil
}

func (a *Area) Update(ctx context.Context, id domain.AreaId, data domain.AreaUpdateData) (domain.Area, error) {
	if data.IsEmpty() {
		return domain.Area{}, errors.Validation("Debe indicar al menos un campo para actualizar", nil)
	}
	if data.Name != nil {
		name := strings.TrimSpace(*data.Name)
		if err := a.validator.Name(name); err != nil {
			return domain.Area{}, err
		}
		data.Name = &name
	}
	if data.DominioIds != nil {
		data.DominioIds = domain.UniqueIds(data.DominioIds)
		if len(data.DominioIds) == 0 {
			return domain.Area{}, errors.Validation("Datos inválidos", map[string]string{"dominios": "debe contener al menos 1 elemento(s)"})
		}
		if err := a.checkDominios(ctx, data.DominioIds); err != nil {
			return domain.Area{}, err
		}
	}
	return a.storage.UpdateArea(ctx, id, data)
}

func (a *Area) Delete(ctx context.Context, id domain.AreaId) error {
	if err := a.storage.DeleteArea(ctx, id); err != nil {
		return err
	}
	logger.Log.Info("area deleted", "area_id", id)
	return nil
}

// checkDominios requires every id to exist and every dominio to be active.
func (a *Area) checkDominios(ctx context.Context, ids []domain.DominioId) error {
	found, err := a.dominios.GetDominiosByIds(ctx, ids)
	if err != nil {
		return err
	}
	byId := make(map[domain.DominioId]domain.Dominio, len(found))
	for _, d := range found {
		byId[d.Id] = d
	}

	var missing []string
	var inactive []string
	for _, id := range ids {
		d, ok := byId[id]
		switch {
		case !ok:
			missing = append(missing, fmt.Sprint(id))
		case !d.IsActive:
			inactive = append(inactive, d.Name)
		}
	}
	if len(missing) > 0 {
		return errors.Validation(
			fmt.Sprintf("Los dominios con id %s no existen", strings.Join(missing, ", ")),
			map[string]string{"dominios": "contiene dominios inexistentes"},
		)
	}
	if len(inactive) > 0 {
		return errors.Precondition(fmt.Sprintf("Los dominios %s están inactivos", strings.Join(inactive, ", ")))
	}
	return nil
}
