package service

import (
	"context"
	"strings"

	"github.com/itchan-dev/mailadmin/shared/domain"
	"github.com/itchan-dev/mailadmin/shared/errors"
	"github.com/itchan-dev/mailadmin/shared/logger"
	"golang.org/x/crypto/bcrypt"
)

const (
	msgAreaMissing     = "El área indicada no existe"
	msgDominioMissing  = "El dominio indicado no existe"
	msgDominioInactive = "El dominio no está activo"

	// bcrypt only looks at the first 72 bytes
	maxPasswordBytes = 72
)

type CorreoService interface {
	GetAll(ctx context.Context) ([]domain.Correo, error)
	Get(ctx context.Context, id domain.CorreoId) (domain.Correo, error)
	Create(ctx context.Context, data CorreoInput) (domain.Correo, error)
	Update(ctx context.Context, id domain.CorreoId, data CorreoPatch) (domain.Correo, error)
	Delete(ctx context.Context, id domain.CorreoId) error
}

// CorreoInput carries the plain password, it is hashed before reaching storage.
type CorreoInput struct {
	LocalPart domain.LocalPart
	Password  domain.Password
	AreaId    domain.AreaId
	DominioId domain.DominioId
}

// nil fields are left unchanged
type CorreoPatch struct {
	LocalPart *domain.LocalPart
	Password  *domain.Password
	AreaId    *domain.AreaId
	DominioId *domain.DominioId
}

func (p CorreoPatch) IsEmpty() bool {
	return p.LocalPart == nil && p.Password == nil && p.AreaId == nil && p.DominioId == nil
}

type Correo struct {
	storage   CorreoStorage
	areas     AreaChecker
	dominios  DominioGetter
	validator CorreoValidator
	hashCost  int
}

type CorreoStorage interface {
	GetCorreos(ctx context.Context) ([]domain.Correo, error)
	GetCorreo(ctx context.Context, id domain.CorreoId) (domain.Correo, error)
	CreateCorreo(ctx context.Context, data domain.CorreoCreationData) (domain.Correo, error)
	UpdateCorreo(ctx context.Context, id domain.CorreoId, data domain.CorreoUpdateData) (domain.Correo, error)
	DeleteCorreo(ctx context.Context, id domain.CorreoId) error
}

type AreaChecker interface {
	AreaExists(ctx context.Context, id domain.AreaId) (bool, error)
}

type DominioGetter interface {
	GetDominio(ctx context.Context, id domain.DominioId) (domain.Dominio, error)
}

type CorreoValidator interface {
	LocalPart(localPart domain.LocalPart) error
}

func NewCorreo(storage CorreoStorage, areas AreaChecker, dominios DominioGetter, validator CorreoValidator) *Correo {
	return &Correo{
		storage:   storage,
		areas:     areas,
		dominios:  dominios,
		validator: validator,
		hashCost:  bcrypt.DefaultCost,
	}
}

func (c *Correo) GetAll(ctx context.Context) ([]domain.Correo, error) {
	return c.storage.GetCorreos(ctx)
}

func (c *Correo) Get(ctx context.Context, id domain.CorreoId) (domain.Correo, error) {
	return c.storage.GetCorreo(ctx, id)
}

func (c *Correo) Create(ctx context.Context, input CorreoInput) (domain.Correo, error) {
	localPart := strings.TrimSpace(input.LocalPart)
	if err := c.validator.LocalPart(localPart); err != nil {
		return domain.Correo{}, err
	}
	if input.Password == "" {
		return domain.Correo{}, errors.Validation("Datos inválidos", map[string]string{"password": "es obligatorio"})
	}
	if err := c.checkArea(ctx, input.AreaId); err != nil {
		return domain.Correo{}, err
	}
	if err := c.checkDominio(ctx, input.DominioId); err != nil {
		return domain.Correo{}, err
	}
	hash, err := c.hash(input.Password)
	if err != nil {
		return domain.Correo{}, err
	}

	correo, err := c.storage.CreateCorreo(ctx, domain.CorreoCreationData{
		LocalPart:    localPart,
		PasswordHash: hash,
		AreaId:       input.AreaId,
		DominioId:    input.DominioId,
	})
	if err != nil {
		return domain.Correo{}, err
	}
	logger.Log.Info("correo created", "correo_id", correo.Id, "email", correo.Email)
	return correo, nil
}

// Update changes only the given fields. The address is recomputed on read,
// so a password-only update never touches it.
func (c *Correo) Update(ctx context.Context, id domain.CorreoId, patch CorreoPatch) (domain.Correo, error) {
	if patch.IsEmpty() {
		return domain.Correo{}, errors.Validation("Debe indicar al menos un campo para actualizar", nil)
	}
	if _, err := c.storage.GetCorreo(ctx, id); err != nil {
		return domain.Correo{}, err
	}

	var data domain.CorreoUpdateData
	if patch.LocalPart != nil {
		localPart := strings.TrimSpace(*patch.LocalPart)
		if err := c.validator.LocalPart(localPart); err != nil {
			return domain.Correo{}, err
		}
		data.LocalPart = &localPart
	}
	if patch.AreaId != nil {
		if err := c.checkArea(ctx, *patch.AreaId); err != nil {
			return domain.Correo{}, err
		}
		data.AreaId = patch.AreaId
	}
	if patch.DominioId != nil {
		if err := c.checkDominio(ctx, *patch.DominioId); err != nil {
			return domain.Correo{}, err
		}
		data.DominioId = patch.DominioId
	}
	if patch.Password != nil {
		if *patch.Password == "" {
			return domain.Correo{}, errors.Validation("Datos inválidos", map[string]string{"password": "es obligatorio"})
		}
		hash, err := c.hash(*patch.Password)
		if err != nil {
			return domain.Correo{}, err
		}
		data.PasswordHash = &hash
	}
	return c.storage.UpdateCorreo(ctx, id, data)
}

func (c *Correo) Delete(ctx context.Context, id domain.CorreoId) error {
	if err := c.storage.DeleteCorreo(ctx, id); err != nil {
		return err
	}
	logger.Log.Info("correo deleted", "correo_id", id)
	return nil
}

func (c *Correo) checkArea(ctx context.Context, id domain.AreaId) error {
	exists, err := c.areas.AreaExists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return errors.Reference(msgAreaMissing)
	}
	return nil
}

func (c *Correo) checkDominio(ctx context.Context, id domain.DominioId) error {
	d, err := c.dominios.GetDominio(ctx, id)
	if err != nil {
		if errors.IsNotFound(err) {
			return errors.Reference(msgDominioMissing)
		}
		return err
	}
	if !d.IsActive {
		return errors.Precondition(msgDominioInactive)
	}
	return nil
}

func (c *Correo) hash(password domain.Password) (string, error) {
	if len(password) > maxPasswordBytes {
		return "", errors.Validation("Datos inválidos", map[string]string{"password": "es demasiado larga"})
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), c.hashCost)
	if err != nil {
		logger.Log.Error("failed to hash password", "error", err)
		return "", err
	}
	return string(hash), nil
}
