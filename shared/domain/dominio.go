package domain

import "time"

type Dominio struct {
	Id        DominioId   `json:"id"`
	Name      DominioName `json:"name"`
	IsActive  bool        `json:"isActive"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// to iterate thru layers: handler -> service -> storage
type DominioCreationData struct {
	Name     DominioName
	IsActive bool
}

// nil fields are left unchanged
type DominioUpdateData struct {
	Name     *DominioName
	IsActive *bool
}

func (d DominioUpdateData) IsEmpty() bool {
	return d.Name == nil && d.IsActive == nil
}
