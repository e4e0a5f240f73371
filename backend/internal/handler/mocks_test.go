package handler

import (
	"context"

	"github.com/go-chi/chi/v5"
	"github.com/itchan-dev/mailadmin/backend/internal/service"
	"github.com/itchan-dev/mailadmin/shared/domain"
)

type MockHealthChecker struct {
	PingFunc func(ctx context.Context) error
}

func (m *MockHealthChecker) Ping(ctx context.Context) error {
	if m.PingFunc != nil {
		return m.PingFunc(ctx)
	}
	return nil // Default: healthy
}

type MockDominioService struct {
	GetAllFunc     func(ctx context.Context) ([]domain.Dominio, error)
	GetFunc        func(ctx context.Context, id domain.DominioId) (domain.Dominio, error)
	CreateFunc     func(ctx context.Context, data domain.DominioCreationData) (domain.Dominio, error)
	UpdateFunc     func(ctx context.Context, id domain.DominioId, data domain.DominioUpdateData) (domain.Dominio, error)
	DeleteFunc     func(ctx context.Context, id domain.DominioId) error
	ActivateFunc   func(ctx context.Context, id domain.DominioId) (domain.Dominio, error)
	DeactivateFunc func(ctx context.Context, id domain.DominioId) (domain.Dominio, error)
}

func (m *MockDominioService) GetAll(ctx context.Context) ([]domain.Dominio, error) {
	if m.GetAllFunc != nil {
		return m.GetAllFunc(ctx)
	}
	return []domain.Dominio{}, nil
}

func (m *MockDominioService) Get(ctx context.Context, id domain.DominioId) (domain.Dominio, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return domain.Dominio{Id: id}, nil
}

func (m *MockDominioService) Create(ctx context.Context, data domain.DominioCreationData) (domain.Dominio, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, data)
	}
	return domain.Dominio{Id: 1, Name: data.Name, IsActive: data.IsActive}, nil
}

func (m *MockDominioService) Update(ctx context.Context, id domain.DominioId, data domain.DominioUpdateData) (domain.Dominio, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, data)
	}
	return domain.Dominio{Id: id}, nil
}

func (m *MockDominioService) Delete(ctx context.Context, id domain.DominioId) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockDominioService) Activate(ctx context.Context, id domain.DominioId) (domain.Dominio, error) {
	if m.ActivateFunc != nil {
		return m.ActivateFunc(ctx, id)
	}
	return domain.Dominio{Id: id, IsActive: true}, nil
}

func (m *MockDominioService) Deactivate(ctx context.Context, id domain.DominioId) (domain.Dominio, error) {
	if m.DeactivateFunc != nil {
		return m.DeactivateFunc(ctx, id)
	}
	return domain.Dominio{Id: id, IsActive: false}, nil
}

type MockAreaService struct {
	GetAllFunc func(ctx context.Context) ([]domain.Area, error)
	GetFunc    func(ctx context.Context, id domain.AreaId) (domain.Area, error)
	CreateFunc func(ctx context.Context, data domain.AreaCreationData) (domain.Area, error)
	UpdateFunc func(ctx context.Context, id domain.AreaId, data domain.AreaUpdateData) (domain.Area, error)
	DeleteFunc func(ctx context.Context, id domain.AreaId) error
}

func (m *MockAreaService) GetAll(ctx context.Context) ([]domain.Area, error) {
	if m.GetAllFunc != nil {
		return m.GetAllFunc(ctx)
	}
	return []domain.Area{}, nil
}

func (m *MockAreaService) Get(ctx context.Context, id domain.AreaId) (domain.Area, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return domain.Area{Id: id}, nil
}

func (m *MockAreaService) Create(ctx context.Context, data domain.AreaCreationData) (domain.Area, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, data)
	}
	return domain.Area{Id: 1, Name: data.Name}, nil
}

func (m *MockAreaService) Update(ctx context.Context, id domain.AreaId, data domain.AreaUpdateData) (domain.Area, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, data)
	}
	return domain.Area{Id: id}, nil
}

func (m *MockAreaService) Delete(ctx context.Context, id domain.AreaId) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

type MockCorreoService struct {
	GetAllFunc func(ctx context.Context) ([]domain.Correo, error)
	GetFunc    func(ctx context.Context, id domain.CorreoId) (domain.Correo, error)
	CreateFunc func(ctx context.Context, data service.CorreoInput) (domain.Correo, error)
	UpdateFunc func(ctx context.Context, id domain.CorreoId, data service.CorreoPatch) (domain.Correo, error)
	DeleteFunc func(ctx context.Context, id domain.CorreoId) error
}

func (m *MockCorreoService) GetAll(ctx context.Context) ([]domain.Correo, error) {
	if m.GetAllFunc != nil {
		return m.GetAllFunc(ctx)
	}
	return []domain.Correo{}, nil
}

func (m *MockCorreoService) Get(ctx context.Context, id domain.CorreoId) (domain.Correo, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return domain.Correo{Id: id}, nil
}

func (m *MockCorreoService) Create(ctx context.Context, data service.CorreoInput) (domain.Correo, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, data)
	}
	return domain.Correo{Id: 1, LocalPart: data.LocalPart}, nil
}

func (m *MockCorreoService) Update(ctx context.Context, id domain.CorreoId, data service.CorreoPatch) (domain.Correo, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, data)
	}
	return domain.Correo{Id: id}, nil
}

func (m *MockCorreoService) Delete(ctx context.Context, id domain.CorreoId) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// newTestRouter mounts the handlers the same way the real router does.
func newTestRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()
	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Route("/api/dominios", func(r chi.Router) {
		r.Get("/", h.GetDominios)
		r.Post("/", h.CreateDominio)
		r.Get("/{id}", h.GetDominio)
		r.Put("/{id}", h.UpdateDominio)
		r.Delete("/{id}", h.DeleteDominio)
		r.Patch("/{id}/activate", h.ActivateDominio)
		r.Patch("/{id}/deactivate", h.DeactivateDominio)
	})
	r.Route("/api/areas", func(r chi.Router) {
		r.Get("/", h.GetAreas)
		r.Post("/", h.CreateArea)
		r.Get("/{id}", h.GetArea)
		r.Put("/{id}", h.UpdateArea)
		r.Delete("/{id}", h.DeleteArea)
	})
	r.Route("/api/correos", func(r chi.Router) {
		r.Get("/", h.GetCorreos)
		r.Post("/", h.CreateCorreo)
		r.Get("/{id}", h.GetCorreo)
		r.Put("/{id}", h.UpdateCorreo)
		r.Delete("/{id}", h.DeleteCorreo)
	})
	return r
}

func newTestHandler() (*Handler, *MockDominioService, *MockAreaService, *MockCorreoService) {
	d, a, c := &MockDominioService{}, &MockAreaService{}, &MockCorreoService{}
	return New(d, a, c, &MockHealthChecker{}), d, a, c
}
