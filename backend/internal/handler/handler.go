package handler

import (
	"context"

	"github.com/itchan-dev/mailadmin/backend/internal/service"
)

// HealthChecker is satisfied by the storage, used by the readiness probe.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	dominio service.DominioService
	area    service.AreaService
	correo  service.CorreoService
	health  HealthChecker
}

func New(dominio service.DominioService, area service.AreaService, correo service.CorreoService, health HealthChecker) *Handler {
	return &Handler{dominio: dominio, area: area, correo: correo, health: health}
}
