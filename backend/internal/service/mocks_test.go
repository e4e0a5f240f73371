package service

import (
	"context"

	"github.com/itchan-dev/mailadmin/shared/domain"
)

// MockDominioStorage mocks DominioStorage and DominioLookup/DominioGetter.
type MockDominioStorage struct {
	getDominiosFunc      func(ctx context.Context) ([]domain.Dominio, error)
	getDominioFunc       func(ctx context.Context, id domain.DominioId) (domain.Dominio, error)
	getDominiosByIdsFunc func(ctx context.Context, ids []domain.DominioId) ([]domain.Dominio, error)
	createDominioFunc    func(ctx context.Context, data domain.DominioCreationData) (domain.Dominio, error)
	updateDominioFunc    func(ctx context.Context, id domain.DominioId, data domain.DominioUpdateData) (domain.Dominio, error)
	setDominioActiveFunc func(ctx context.Context, id domain.DominioId, active bool) (domain.Dominio, error)
	deleteDominioFunc    func(ctx context.Context, id domain.DominioId) error
}

func (m *MockDominioStorage) GetDominios(ctx context.Context) ([]domain.Dominio, error) {
	if m.getDominiosFunc != nil {
		return m.getDominiosFunc(ctx)
	}
	return []domain.Dominio{}, nil
}

func (m *MockDominioStorage) GetDominio(ctx context.Context, id domain.DominioId) (domain.Dominio, error) {
	if m.getDominioFunc != nil {
		return m.getDominioFunc(ctx, id)
	}
	return domain.Dominio{Id: id, IsActive: true}, nil
}

func (m *MockDominioStorage) GetDominiosByIds(ctx context.Context, ids []domain.DominioId) ([]domain.Dominio, error) {
	if m.getDominiosByIdsFunc != nil {
		return m.getDominiosByIdsFunc(ctx, ids)
	}
	return []domain.Dominio{}, nil
}

func (m *MockDominioStorage) CreateDominio(ctx context.Context, data domain.DominioCreationData) (domain.Dominio, error) {
	if m.createDominioFunc != nil {
		return m.createDominioFunc(ctx, data)
	}
	return domain.Dominio{}, nil
}

func (m *MockDominioStorage) UpdateDominio(ctx context.Context, id domain.DominioId, data domain.DominioUpdateData) (domain.Dominio, error) {
	if m.updateDominioFunc != nil {
		return m.updateDominioFunc(ctx, id, data)
	}
	return domain.Dominio{}, nil
}

func (m *MockDominioStorage) SetDominioActive(ctx context.Context, id domain.DominioId, active bool) (domain.Dominio, error) {
	if m.setDominioActiveFunc != nil {
		return m.setDominioActiveFunc(ctx, id, active)
	}
	return domain.Dominio{}, nil
}

func (m *MockDominioStorage) DeleteDominio(ctx context.Context, id domain.DominioId) error {
	if m.deleteDominioFunc != nil {
		return m.deleteDominioFunc(ctx, id)
	}
	return nil
}

// MockAreaStorage mocks AreaStorage and AreaChecker.
type MockAreaStorage struct {
	getAreasFunc   func(ctx context.Context) ([]domain.Area, error)
	getAreaFunc    func(ctx context.Context, id domain.AreaId) (domain.Area, error)
	createAreaFunc func(ctx context.Context, data domain.AreaCreationData) (domain.Area, error)
	updateAreaFunc func(ctx context.Context, id domain.AreaId, data domain.AreaUpdateData) (domain.Area, error)
	deleteAreaFunc func(ctx context.Context, id domain.AreaId) error
	areaExistsFunc func(ctx context.Context, id domain.AreaId) (bool, error)
}

func (m *MockAreaStorage) GetAreas(ctx context.Context) ([]domain.Area, error) {
	if m.getAreasFunc != nil {
		return m.getAreasFunc(ctx)
	}
	return []domain.Area{}, nil
}

func (m *MockAreaStorage) GetArea(ctx context.Context, id domain.AreaId) (domain.Area, error) {
	if m.getAreaFunc != nil {
		return m.getAreaFunc(ctx, id)
	}
	return domain.Area{Id: id}, nil
}

func (m *MockAreaStorage) CreateArea(ctx context.Context, data domain.AreaCreationData) (domain.Area, error) {
	if m.createAreaFunc != nil {
		return m.createAreaFunc(ctx, data)
	}
	return domain.Area{}, nil
}

func (m *MockAreaStorage) UpdateArea(ctx context.Context, id domain.AreaId, data domain.AreaUpdateData) (domain.Area, error) {
	if m.updateAreaFunc != nil {
		return m.updateAreaFunc(ctx, id, data)
	}
	return domain.Area{Id: id}, nil
}

func (m *MockAreaStorage) DeleteArea(ctx context.Context, id domain.AreaId) error {
	if m.deleteAreaFunc != nil {
		return m.deleteAreaFunc(ctx, id)
	}
	return nil
}

func (m *MockAreaStorage) AreaExists(ctx context.Context, id domain.AreaId) (bool, error) {
	if m.areaExistsFunc != nil {
		return m.areaExistsFunc(ctx, id)
	}
	return true, nil
}

// MockCorreoStorage mocks CorreoStorage.
type MockCorreoStorage struct {
	getCorreosFunc   func(ctx context.Context) ([]domain.Correo, error)
	getCorreoFunc    func(ctx context.Context, id domain.CorreoId) (domain.Correo, error)
	createCorreoFunc func(ctx context.Context, data domain.CorreoCreationData) (domain.Correo, error)
	updateCorreoFunc func(ctx context.Context, id domain.CorreoId, data domain.CorreoUpdateData) (domain.Correo, error)
	deleteCorreoFunc func(ctx context.Context, id domain.CorreoId) error
}

func (m *MockCorreoStorage) GetCorreos(ctx context.Context) ([]domain.Correo, error) {
	if m.getCorreosFunc != nil {
		return m.getCorreosFunc(ctx)
	}
	return []domain.Correo{}, nil
}

func (m *MockCorreoStorage) GetCorreo(ctx context.Context, id domain.CorreoId) (domain.Correo, error) {
	if m.getCorreoFunc != nil {
		return m.getCorreoFunc(ctx, id)
	}
	return domain.Correo{Id: id}, nil
}

func (m *MockCorreoStorage) CreateCorreo(ctx context.Context, data domain.CorreoCreationData) (domain.Correo, error) {
	if m.createCorreoFunc != nil {
		return m.createCorreoFunc(ctx, data)
	}
	return domain.Correo{}, nil
}

func (m *MockCorreoStorage) UpdateCorreo(ctx context.Context, id domain.CorreoId, data domain.CorreoUpdateData) (domain.Correo, error) {
	if m.updateCorreoFunc != nil {
		return m.updateCorreoFunc(ctx, id, data)
	}
	return domain.Correo{Id: id}, nil
}

func (m *MockCorreoStorage) DeleteCorreo(ctx context.Context, id domain.CorreoId) error {
	if m.deleteCorreoFunc != nil {
		return m.deleteCorreoFunc(ctx, id)
	}
	return nil
}

// MockNameValidator mocks DominioValidator, AreaValidator and CorreoValidator.
type MockNameValidator struct {
	nameFunc      func(name string) error
	localPartFunc func(localPart string) error
}

func (m *MockNameValidator) Name(name string) error {
	if m.nameFunc != nil {
		return m.nameFunc(name)
	}
	return nil
}

func (m *MockNameValidator) LocalPart(localPart string) error {
	if m.localPartFunc != nil {
		return m.localPartFunc(localPart)
	}
	return nil
}
