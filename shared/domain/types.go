package domain

type (
	DominioId   = int64
	DominioName = string

	AreaId   = int64
	AreaName = string

	CorreoId  = int64
	LocalPart = string
	Email     = string
	Password  = string
)
