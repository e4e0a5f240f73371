package apiclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/itchan-dev/mailadmin/shared/api"
	"github.com/itchan-dev/mailadmin/shared/domain"
)

// === Area Methods ===

func (c *APIClient) GetAreas(ctx context.Context) ([]domain.Area, error) {
	var areas []domain.Area
	err := c.doJSON(ctx, http.MethodGet, "/api/areas", nil, &areas)
	return areas, err
}

func (c *APIClient) GetArea(ctx context.Context, id domain.AreaId) (domain.Area, error) {
	var area domain.Area
	err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/api/areas/%d", id), nil, &area)
	return area, err
}

// CreateArea reuses an existing area with the same name and adds the missing links.
func (c *APIClient) CreateArea(ctx context.Context, data api.CreateAreaRequest) (domain.Area, error) {
	var area domain.Area
	err := c.doJSON(ctx, http.MethodPost, "/api/areas", data, &area)
	return area, err
}

func (c *APIClient) UpdateArea(ctx context.Context, id domain.AreaId, data api.UpdateAreaRequest) (domain.Area, error) {
	var area domain.Area
	err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/api/areas/%d", id), data, &area)
	return area, err
}

func (c *APIClient) DeleteArea(ctx context.Context, id domain.AreaId) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/api/areas/%d", id), nil, nil)
}

// AreasByDominio filters areas on their links, the API has no dedicated endpoint.
func AreasByDominio(areas []domain.Area, dominioId domain.DominioId) []domain.Area {
	var out []domain.Area
	for _, a := range areas {
		for _, ad := range a.AreaDominios {
			if ad.DominioId == dominioId {
				out = append(out, a)
				break
			}
		}
	}
	return out
}
