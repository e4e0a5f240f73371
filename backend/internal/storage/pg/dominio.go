package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/itchan-dev/mailadmin/shared/domain"
	internal_errors "github.com/itchan-dev/mailadmin/shared/errors"
	sharedpg "github.com/itchan-dev/mailadmin/shared/storage/pg"
	"github.com/lib/pq"
)

const (
	msgDominioNotFound  = "Dominio no encontrado"
	msgDominioDuplicate = "Ya existe un dominio con ese nombre"
	msgDominioInUse     = "El dominio está vinculado a áreas o correos y no puede eliminarse"
)

const dominioColumns = "id, name, is_active, created_at, updated_at"

// =========================================================================
// Public Methods (satisfy the service.DominioStorage interface)
// =========================================================================

func (s *Storage) GetDominios(ctx context.Context) ([]domain.Dominio, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()
	return s.getDominios(ctx, s.db)
}

func (s *Storage) GetDominio(ctx context.Context, id domain.DominioId) (domain.Dominio, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()
	return s.getDominio(ctx, s.db, id)
}

// GetDominiosByIds returns the dominios that exist among ids, ordered by id.
// Missing ids are simply absent from the result.
func (s *Storage) GetDominiosByIds(ctx context.Context, ids []domain.DominioId) ([]domain.Dominio, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()
	return s.getDominiosByIds(ctx, s.db, ids)
}

func (s *Storage) CreateDominio(ctx context.Context, data domain.DominioCreationData) (domain.Dominio, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()
	return s.createDominio(ctx, s.db, data)
}

func (s *Storage) UpdateDominio(ctx context.Context, id domain.DominioId, data domain.DominioUpdateData) (domain.Dominio, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()
	return s.updateDominio(ctx, s.db, id, data)
}

// SetDominioActive backs the activate/deactivate operations.
func (s *Storage) SetDominioActive(ctx context.Context, id domain.DominioId, active bool) (domain.Dominio, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()
	return s.updateDominio(ctx, s.db, id, domain.DominioUpdateData{IsActive: &active})
}

func (s *Storage) DeleteDominio(ctx context.Context, id domain.DominioId) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()
	return s.deleteDominio(ctx, s.db, id)
}

// =========================================================================
// Internal Methods (Core Database Logic)
// These methods accept a Querier and are transaction-agnostic.
// =========================================================================

func scanDominio(row interface{ Scan(...any) error }) (domain.Dominio, error) {
	var d domain.Dominio
	err := row.Scan(&d.Id, &d.Name, &d.IsActive, &d.CreatedAt, &d.UpdatedAt)
	return d, err
}

func (s *Storage) queryDominios(ctx context.Context, q Querier, query string, args ...any) ([]domain.Dominio, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query dominios: %w", err)
	}
	defer rows.Close()

	dominios := []domain.Dominio{}
	for rows.Next() {
		d, err := scanDominio(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan dominio: %w", err)
		}
		dominios = append(dominios, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating dominios: %w", err)
	}
	return dominios, nil
}

func (s *Storage) getDominios(ctx context.Context, q Querier) ([]domain.Dominio, error) {
	return s.queryDominios(ctx, q, "SELECT "+dominioColumns+" FROM dominios ORDER BY id")
}

func (s *Storage) getDominiosByIds(ctx context.Context, q Querier, ids []domain.DominioId) ([]domain.Dominio, error) {
	if len(ids) == 0 {
		return []domain.Dominio{}, nil
	}
	return s.queryDominios(ctx, q, "SELECT "+dominioColumns+" FROM dominios WHERE id = ANY($1) ORDER BY id", pq.Array(ids))
}

func (s *Storage) getDominio(ctx context.Context, q Querier, id domain.DominioId) (domain.Dominio, error) {
	d, err := scanDominio(q.QueryRowContext(ctx, "SELECT "+dominioColumns+" FROM dominios WHERE id = $1", id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Dominio{}, internal_errors.NotFound(msgDominioNotFound)
		}
		return domain.Dominio{}, fmt.Errorf("failed to get dominio: %w", err)
	}
	return d, nil
}

func (s *Storage) createDominio(ctx context.Context, q Querier, data domain.DominioCreationData) (domain.Dominio, error) {
	d, err := scanDominio(q.QueryRowContext(ctx,
		"INSERT INTO dominios (name, is_active) VALUES ($1, $2) RETURNING "+dominioColumns,
		data.Name, data.IsActive,
	))
	if err != nil {
		if sharedpg.IsUniqueViolation(err) {
			return domain.Dominio{}, internal_errors.Conflict(msgDominioDuplicate)
		}
		return domain.Dominio{}, fmt.Errorf("failed to create dominio: %w", err)
	}
	return d, nil
}

// updateDominio changes only the non-nil fields of data.
func (s *Storage) updateDominio(ctx context.Context, q Querier, id domain.DominioId, data domain.DominioUpdateData) (domain.Dominio, error) {
	var name sql.NullString
	if data.Name != nil {
		name = sql.NullString{String: *data.Name, Valid: true}
	}
	var isActive sql.NullBool
	if data.IsActive != nil {
		isActive = sql.NullBool{Bool: *data.IsActive, Valid: true}
	}

	d, err := scanDominio(q.QueryRowContext(ctx, `
		UPDATE dominios SET
			name = COALESCE($2, name),
			is_active = COALESCE($3, is_active),
			updated_at = NOW()
		WHERE id = $1
		RETURNING `+dominioColumns,
		id, name, isActive,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Dominio{}, internal_errors.NotFound(msgDominioNotFound)
		}
		if sharedpg.IsUniqueViolation(err) {
			return domain.Dominio{}, internal_errors.Conflict(msgDominioDuplicate)
		}
		return domain.Dominio{}, fmt.Errorf("failed to update dominio: %w", err)
	}
	return d, nil
}

func (s *Storage) deleteDominio(ctx context.Context, q Querier, id domain.DominioId) error {
	result, err := q.ExecContext(ctx, "DELETE FROM dominios WHERE id = $1", id)
	if err != nil {
		if sharedpg.IsForeignKeyViolation(err) {
			return internal_errors.Conflict(msgDominioInUse)
		}
		return fmt.Errorf("failed to delete dominio: %w", err)
	}
	deleted, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows for dominio delete: %w", err)
	}
	if deleted == 0 {
		return internal_errors.NotFound(msgDominioNotFound)
	}
	return nil
}
