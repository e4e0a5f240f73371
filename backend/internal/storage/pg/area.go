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
	msgAreaNotFound     = "Área no encontrada"
	msgAreaDuplicate    = "Ya existe un área con ese nombre"
	msgAreaMissingLinks = "Uno o más dominios no existen"
)

// =========================================================================
// Public Methods (satisfy the service.AreaStorage interface)
// =========================================================================

func (s *Storage) GetAreas(ctx context.Context) ([]domain.Area, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()
	return s.getAreas(ctx, s.db)
}

func (s *Storage) GetArea(ctx context.Context, id domain.AreaId) (domain.Area, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()
	return s.getArea(ctx, s.db, id)
}

func (s *Storage) AreaExists(ctx context.Context, id domain.AreaId) (bool, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()
	var exists bool
	err := s.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM areas WHERE id = $1)", id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check area existence: %w", err)
	}
	return exists, nil
}

// CreateArea finds or creates the area by name and links every dominio that is not linked yet.
// Both steps run in one transaction.
func (s *Storage) CreateArea(ctx context.Context, data domain.AreaCreationData) (domain.Area, error) {
	var area domain.Area
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		id, err := s.upsertArea(ctx, tx, data.Name)
		if err != nil {
			return err
		}
		if err := s.linkDominios(ctx, tx, id, data.DominioIds); err != nil {
			return err
		}
		area, err = s.getArea(ctx, tx, id)
		return err
	})
	return area, err
}

// UpdateArea renames the area and/or applies the difference between the current
// and requested dominio links, in one transaction.
func (s *Storage) UpdateArea(ctx context.Context, id domain.AreaId, data domain.AreaUpdateData) (domain.Area, error) {
	var area domain.Area
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		if err := s.lockArea(ctx, tx, id); err != nil {
			return err
		}
		if data.Name != nil {
			if err := s.renameArea(ctx, tx, id, *data.Name); err != nil {
				return err
			}
		}
		if data.DominioIds != nil {
			current, err := s.linkedDominioIds(ctx, tx, id)
			if err != nil {
				return err
			}
			diff := domain.DiffLinks(current, data.DominioIds)
			if err := s.unlinkDominios(ctx, tx, id, diff.Remove); err != nil {
				return err
			}
			if err := s.linkDominios(ctx, tx, id, diff.Add); err != nil {
				return err
			}
			if data.Name == nil && !diff.IsEmpty() {
				if err := s.touchArea(ctx, tx, id); err != nil {
					return err
				}
			}
		}
		var err error
		area, err = s.getArea(ctx, tx, id)
		return err
	})
	return area, err
}

// DeleteArea removes the area, its links and its correos (ON DELETE CASCADE).
func (s *Storage) DeleteArea(ctx context.Context, id domain.AreaId) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()
	result, err := s.db.ExecContext(ctx, "DELETE FROM areas WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete area: %w", err)
	}
	deleted, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows for area delete: %w", err)
	}
	if deleted == 0 {
		return internal_errors.NotFound(msgAreaNotFound)
	}
	return nil
}

// =========================================================================
// Internal Methods (Core Database Logic)
// =========================================================================

// upsertArea returns the id of the area named name, creating it if needed.
// The no-op DO UPDATE makes RETURNING yield the existing row on conflict.
func (s *Storage) upsertArea(ctx context.Context, q Querier, name domain.AreaName) (domain.AreaId, error) {
	var id domain.AreaId
	err := q.QueryRowContext(ctx, `
		INSERT INTO areas (name) VALUES ($1)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id`,
		name,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to upsert area: %w", err)
	}
	return id, nil
}

func (s *Storage) lockArea(ctx context.Context, q Querier, id domain.AreaId) error {
	var locked domain.AreaId
	err := q.QueryRowContext(ctx, "SELECT id FROM areas WHERE id = $1 FOR UPDATE", id).Scan(&locked)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return internal_errors.NotFound(msgAreaNotFound)
		}
		return fmt.Errorf("failed to lock area: %w", err)
	}
	return nil
}

func (s *Storage) renameArea(ctx context.Context, q Querier, id domain.AreaId, name domain.AreaName) error {
	_, err := q.ExecContext(ctx, "UPDATE areas SET name = $2, updated_at = NOW() WHERE id = $1", id, name)
	if err != nil {
		if sharedpg.IsUniqueViolation(err) {
			return internal_errors.Conflict(msgAreaDuplicate)
		}
		return fmt.Errorf("failed to rename area: %w", err)
	}
	return nil
}

func (s *Storage) touchArea(ctx context.Context, q Querier, id domain.AreaId) error {
	if _, err := q.ExecContext(ctx, "UPDATE areas SET updated_at = NOW() WHERE id = $1", id); err != nil {
		return fmt.Errorf("failed to touch area: %w", err)
	}
	return nil
}

// linkDominios inserts links, ignoring the ones that already exist.
func (s *Storage) linkDominios(ctx context.Context, q Querier, id domain.AreaId, dominioIds []domain.DominioId) error {
	if len(dominioIds) == 0 {
		return nil
	}
	_, err := q.ExecContext(ctx, `
		INSERT INTO area_dominios (area_id, dominio_id)
		SELECT $1, unnest($2::bigint[])
		ON CONFLICT DO NOTHING`,
		id, pq.Array(dominioIds),
	)
	if err != nil {
		if sharedpg.IsForeignKeyViolation(err) {
			return internal_errors.Reference(msgAreaMissingLinks)
		}
		return fmt.Errorf("failed to link dominios: %w", err)
	}
	return nil
}

func (s *Storage) unlinkDominios(ctx context.Context, q Querier, id domain.AreaId, dominioIds []domain.DominioId) error {
	if len(dominioIds) == 0 {
		return nil
	}
	_, err := q.ExecContext(ctx,
		"DELETE FROM area_dominios WHERE area_id = $1 AND dominio_id = ANY($2)",
		id, pq.Array(dominioIds),
	)
	if err != nil {
		return fmt.Errorf("failed to unlink dominios: %w", err)
	}
	return nil
}

func (s *Storage) linkedDominioIds(ctx context.Context, q Querier, id domain.AreaId) ([]domain.DominioId, error) {
	var ids pq.Int64Array
	err := q.QueryRowContext(ctx,
		"SELECT COALESCE(array_agg(dominio_id ORDER BY dominio_id), '{}') FROM area_dominios WHERE area_id = $1",
		id,
	).Scan(&ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get linked dominios: %w", err)
	}
	return []domain.DominioId(ids), nil
}

func (s *Storage) getArea(ctx context.Context, q Querier, id domain.AreaId) (domain.Area, error) {
	var a domain.Area
	err := q.QueryRowContext(ctx, "SELECT id, name, created_at, updated_at FROM areas WHERE id = $1", id).
		Scan(&a.Id, &a.Name, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Area{}, internal_errors.NotFound(msgAreaNotFound)
		}
		return domain.Area{}, fmt.Errorf("failed to get area: %w", err)
	}

	links, err := s.getAreaDominios(ctx, q, []domain.AreaId{id})
	if err != nil {
		return domain.Area{}, err
	}
	a.AreaDominios = links[id]
	if a.AreaDominios == nil {
		a.AreaDominios = []domain.AreaDominio{}
	}
	return a, nil
}

func (s *Storage) getAreas(ctx context.Context, q Querier) ([]domain.Area, error) {
	rows, err := q.QueryContext(ctx, "SELECT id, name, created_at, updated_at FROM areas ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to query areas: %w", err)
	}
	defer rows.Close()

	areas := []domain.Area{}
	var ids []domain.AreaId
	for rows.Next() {
		var a domain.Area
		if err := rows.Scan(&a.Id, &a.Name, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan area: %w", err)
		}
		areas = append(areas, a)
		ids = append(ids, a.Id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating areas: %w", err)
	}
	if len(areas) == 0 {
		return areas, nil
	}

	links, err := s.getAreaDominios(ctx, q, ids)
	if err != nil {
		return nil, err
	}
	for i := range areas {
		areas[i].AreaDominios = links[areas[i].Id]
		if areas[i].AreaDominios == nil {
			areas[i].AreaDominios = []domain.AreaDominio{}
		}
	}
	return areas, nil
}

// getAreaDominios loads the links of the given areas with their dominio expanded.
func (s *Storage) getAreaDominios(ctx context.Context, q Querier, areaIds []domain.AreaId) (map[domain.AreaId][]domain.AreaDominio, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT ad.area_id, d.id, d.name, d.is_active, d.created_at, d.updated_at
		FROM area_dominios ad
		JOIN dominios d ON d.id = ad.dominio_id
		WHERE ad.area_id = ANY($1)
		ORDER BY ad.area_id, d.id`,
		pq.Array(areaIds),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query area dominios: %w", err)
	}
	defer rows.Close()

	links := make(map[domain.AreaId][]domain.AreaDominio, len(areaIds))
	for rows.Next() {
		var ad domain.AreaDominio
		d := &ad.Dominio
		if err := rows.Scan(&ad.AreaId, &d.Id, &d.Name, &d.IsActive, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan area dominio: %w", err)
		}
		ad.DominioId = d.Id
		links[ad.AreaId] = append(links[ad.AreaId], ad)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating area dominios: %w", err)
	}
	return links, nil
}
