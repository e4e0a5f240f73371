package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/itchan-dev/mailadmin/shared/domain"
	internal_errors "github.com/itchan-dev/mailadmin/shared/errors"
	sharedpg "github.com/itchan-dev/mailadmin/shared/storage/pg"
)

const (
	msgCorreoNotFound       = "Correo no encontrado"
	msgCorreoDuplicate      = "Ya existe un correo con esa dirección"
	msgCorreoMissingRelated = "El área o el dominio indicados no existen"
)

const correoSelect = `
	SELECT c.id, c.local_part, c.area_id, c.dominio_id, c.created_at, c.updated_at,
		a.name, d.name, d.is_active
	FROM correos c
	JOIN areas a ON a.id = c.area_id
	JOIN dominios d ON d.id = c.dominio_id`

// =========================================================================
// Public Methods (satisfy the service.CorreoStorage interface)
// =========================================================================

func (s *Storage) GetCorreos(ctx context.Context) ([]domain.Correo, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()
	return s.getCorreos(ctx, s.db)
}

func (s *Storage) GetCorreo(ctx context.Context, id domain.CorreoId) (domain.Correo, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()
	return s.getCorreo(ctx, s.db, id)
}

func (s *Storage) CreateCorreo(ctx context.Context, data domain.CorreoCreationData) (domain.Correo, error) {
	var correo domain.Correo
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		id, err := s.createCorreo(ctx, tx, data)
		if err != nil {
			return err
		}
		correo, err = s.getCorreo(ctx, tx, id)
		return err
	})
	return correo, err
}

func (s *Storage) UpdateCorreo(ctx context.Context, id domain.CorreoId, data domain.CorreoUpdateData) (domain.Correo, error) {
	var correo domain.Correo
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		if err := s.updateCorreo(ctx, tx, id, data); err != nil {
			return err
		}
		var err error
		correo, err = s.getCorreo(ctx, tx, id)
		return err
	})
	return correo, err
}

func (s *Storage) DeleteCorreo(ctx context.Context, id domain.CorreoId) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()
	result, err := s.db.ExecContext(ctx, "DELETE FROM correos WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete correo: %w", err)
	}
	deleted, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows for correo delete: %w", err)
	}
	if deleted == 0 {
		return internal_errors.NotFound(msgCorreoNotFound)
	}
	return nil
}

// =========================================================================
// Internal Methods (Core Database Logic)
// =========================================================================

func scanCorreo(row interface{ Scan(...any) error }) (domain.Correo, error) {
	var c domain.Correo
	err := row.Scan(
		&c.Id, &c.LocalPart, &c.AreaId, &c.DominioId, &c.CreatedAt, &c.UpdatedAt,
		&c.Area.Name, &c.Dominio.Name, &c.Dominio.IsActive,
	)
	if err != nil {
		return domain.Correo{}, err
	}
	c.Area.Id = c.AreaId
	c.Dominio.Id = c.DominioId
	c.Email = domain.BuildEmail(c.LocalPart, c.Dominio.Name)
	return c, nil
}

func (s *Storage) getCorreos(ctx context.Context, q Querier) ([]domain.Correo, error) {
	rows, err := q.QueryContext(ctx, correoSelect+" ORDER BY c.id")
	if err != nil {
		return nil, fmt.Errorf("failed to query correos: %w", err)
	}
	defer rows.Close()

	correos := []domain.Correo{}
	for rows.Next() {
		c, err := scanCorreo(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan correo: %w", err)
		}
		correos = append(correos, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating correos: %w", err)
	}
	return correos, nil
}

func (s *Storage) getCorreo(ctx context.Context, q Querier, id domain.CorreoId) (domain.Correo, error) {
	c, err := scanCorreo(q.QueryRowContext(ctx, correoSelect+" WHERE c.id = $1", id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Correo{}, internal_errors.NotFound(msgCorreoNotFound)
		}
		return domain.Correo{}, fmt.Errorf("failed to get correo: %w", err)
	}
	return c, nil
}

func (s *Storage) createCorreo(ctx context.Context, q Querier, data domain.CorreoCreationData) (domain.CorreoId, error) {
	var id domain.CorreoId
	err := q.QueryRowContext(ctx, `
		INSERT INTO correos (local_part, password_hash, area_id, dominio_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		data.LocalPart, data.PasswordHash, data.AreaId, data.DominioId,
	).Scan(&id)
	if err != nil {
		return 0, classifyCorreoWriteError(err, "failed to create correo")
	}
	return id, nil
}

// updateCorreo changes only the non-nil fields of data.
func (s *Storage) updateCorreo(ctx context.Context, q Querier, id domain.CorreoId, data domain.CorreoUpdateData) error {
	var localPart, passwordHash sql.NullString
	if data.LocalPart != nil {
		localPart = sql.NullString{String: *data.LocalPart, Valid: true}
	}
	if data.PasswordHash != nil {
		passwordHash = sql.NullString{String: *data.PasswordHash, Valid: true}
	}
	var areaId, dominioId sql.NullInt64
	if data.AreaId != nil {
		areaId = sql.NullInt64{Int64: *data.AreaId, Valid: true}
	}
	if data.DominioId != nil {
		dominioId = sql.NullInt64{Int64: *data.DominioId, Valid: true}
	}

	result, err := q.ExecContext(ctx, `
		UPDATE correos SET
			local_part = COALESCE($2, local_part),
			password_hash = COALESCE($3, password_hash),
			area_id = COALESCE($4, area_id),
			dominio_id = COALESCE($5, dominio_id),
			updated_at = NOW()
		WHERE id = $1`,
		id, localPart, passwordHash, areaId, dominioId,
	)
	if err != nil {
		return classifyCorreoWriteError(err, "failed to update correo")
	}
	updated, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows for correo update: %w", err)
	}
	if updated == 0 {
		return internal_errors.NotFound(msgCorreoNotFound)
	}
	return nil
}

func classifyCorreoWriteError(err error, op string) error {
	switch {
	case sharedpg.IsUniqueViolation(err):
		return internal_errors.Conflict(msgCorreoDuplicate)
	case sharedpg.IsForeignKeyViolation(err):
		return internal_errors.Reference(msgCorreoMissingRelated)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
