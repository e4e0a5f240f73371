package apiclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/itchan-dev/mailadmin/shared/api"
	"github.com/itchan-dev/mailadmin/shared/domain"
)

// === Correo Methods ===

func (c *APIClient) GetCorreos(ctx context.Context) ([]domain.Correo, error) {
	var correos []domain.Correo
	err := c.doJSON(ctx, http.MethodGet, "/api/correos", nil, &correos)
	return correos, err
}

func (c *APIClient) GetCorreo(ctx context.Context, id domain.CorreoId) (domain.Correo, error) {
	var correo domain.Correo
	err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/api/correos/%d", id), nil, &correo)
	return correo, err
}

func (c *APIClient) CreateCorreo(ctx context.Context, data api.CreateCorreoRequest) (domain.Correo, error) {
	var correo domain.Correo
	err := c.doJSON(ctx, http.MethodPost, "/api/correos", data, &correo)
	return correo, err
}

func (c *APIClient) UpdateCorreo(ctx context.Context, id domain.CorreoId, data api.UpdateCorreoRequest) (domain.Correo, error) {
	var correo domain.Correo
	err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/api/correos/%d", id), data, &correo)
	return correo, err
}

func (c *APIClient) DeleteCorreo(ctx context.Context, id domain.CorreoId) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/api/correos/%d", id), nil, nil)
}
