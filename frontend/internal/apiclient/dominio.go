package apiclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/itchan-dev/mailadmin/shared/api"
	"github.com/itchan-dev/mailadmin/shared/domain"
)

// === Dominio Methods ===

func (c *APIClient) GetDominios(ctx context.Context) ([]domain.Dominio, error) {
	var dominios []domain.Dominio
	err := c.doJSON(ctx, http.MethodGet, "/api/dominios", nil, &dominios)
	return dominios, err
}

func (c *APIClient) GetDominio(ctx context.Context, id domain.DominioId) (domain.Dominio, error) {
	var dominio domain.Dominio
	err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/api/dominios/%d", id), nil, &dominio)
	return dominio, err
}

func (c *APIClient) CreateDominio(ctx context.Context, data api.CreateDominioRequest) (domain.Dominio, error) {
	var dominio domain.Dominio
	err := c.doJSON(ctx, http.MethodPost, "/api/dominios", data, &dominio)
	return dominio, err
}

func (c *APIClient) UpdateDominio(ctx context.Context, id domain.DominioId, data api.UpdateDominioRequest) (domain.Dominio, error) {
	var dominio domain.Dominio
	err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/api/dominios/%d", id), data, &dominio)
	return dominio, err
}

func (c *APIClient) DeleteDominio(ctx context.Context, id domain.DominioId) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/api/dominios/%d", id), nil, nil)
}

func (c *APIClient) ActivateDominio(ctx context.Context, id domain.DominioId) (domain.Dominio, error) {
	var dominio domain.Dominio
	err := c.doJSON(ctx, http.MethodPatch, fmt.Sprintf("/api/dominios/%d/activate", id), nil, &dominio)
	return dominio, err
}

func (c *APIClient) DeactivateDominio(ctx context.Context, id domain.DominioId) (domain.Dominio, error) {
	var dominio domain.Dominio
	err := c.doJSON(ctx, http.MethodPatch, fmt.Sprintf("/api/dominios/%d/deactivate", id), nil, &dominio)
	return dominio, err
}
