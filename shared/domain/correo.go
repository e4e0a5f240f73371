package domain

import "time"

// Correo is a mailbox. The address is not stored; Email is computed from
// LocalPart and the current dominio name whenever a correo is read.
type Correo struct {
	Id        CorreoId   `json:"id"`
	LocalPart LocalPart  `json:"localPart"`
	Email     Email      `json:"email"`
	AreaId    AreaId     `json:"areaId"`
	DominioId DominioId  `json:"dominioId"`
	Area      AreaRef    `json:"area"`
	Dominio   DominioRef `json:"dominio"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

type AreaRef struct {
	Id   AreaId   `json:"id"`
	Name AreaName `json:"name"`
}

type DominioRef struct {
	Id       DominioId   `json:"id"`
	Name     DominioName `json:"name"`
	IsActive bool        `json:"isActive"`
}

func BuildEmail(localPart LocalPart, dominio DominioName) Email {
	return localPart + "@" + dominio
}

type CorreoCreationData struct {
	LocalPart    LocalPart
	PasswordHash string
	AreaId       AreaId
	DominioId    DominioId
}

// nil fields are left unchanged
type CorreoUpdateData struct {
	LocalPart    *LocalPart
	PasswordHash *string
	AreaId       *AreaId
	DominioId    *DominioId
}

func (c CorreoUpdateData) IsEmpty() bool {
	return c.LocalPart == nil && c.PasswordHash == nil && c.AreaId == nil && c.DominioId == nil
}
