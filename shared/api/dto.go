package api

import "github.com/itchan-dev/mailadmin/shared/domain"

// Request DTOs shared by backend handlers and the frontend api client.
// Pointer fields are optional: nil means "not provided".

type CreateDominioRequest struct {
	Name     string `json:"name" validate:"required,min=1"`
	IsActive *bool  `json:"isActive,omitempty"`
}

type UpdateDominioRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,min=1"`
	IsActive *bool   `json:"isActive,omitempty"`
}

type CreateAreaRequest struct {
	Name     string             `json:"name" validate:"required,min=1"`
	Dominios []domain.DominioId `json:"dominios" validate:"required,min=1,dive,gt=0"`
}

type UpdateAreaRequest struct {
	Name     *string            `json:"name,omitempty" validate:"omitempty,min=1"`
	Dominios []domain.DominioId `json:"dominios,omitempty" validate:"omitempty,min=1,dive,gt=0"`
}

type CreateCorreoRequest struct {
	LocalPart string           `json:"localPart" validate:"required"`
	Password  string           `json:"password" validate:"required,min=1"`
	AreaId    domain.AreaId    `json:"areaId" validate:"required,gt=0"`
	DominioId domain.DominioId `json:"dominioId" validate:"required,gt=0"`
}

type UpdateCorreoRequest struct {
	LocalPart *string           `json:"localPart,omitempty" validate:"omitempty,min=1"`
	Password  *string           `json:"password,omitempty" validate:"omitempty,min=1"`
	AreaId    *domain.AreaId    `json:"areaId,omitempty" validate:"omitempty,gt=0"`
	DominioId *domain.DominioId `json:"dominioId,omitempty" validate:"omitempty,gt=0"`
}

// Response DTOs

type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}
