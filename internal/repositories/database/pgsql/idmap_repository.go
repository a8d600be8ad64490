package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/SscSPs/connec_payment_sync/internal/apperrors"
	"github.com/SscSPs/connec_payment_sync/internal/core/domain"
	portsrepo "github.com/SscSPs/connec_payment_sync/internal/core/ports/repositories"
	"github.com/SscSPs/connec_payment_sync/internal/models"
	"github.com/SscSPs/connec_payment_sync/internal/utils/mapping"
	"github.com/SscSPs/connec_payment_sync/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const idMapColumns = `local_id, local_entity_name, remote_entity_guid, remote_entity_name, deleted,
		       created_at, created_by, last_updated_at, last_updated_by`

type PgxIDMapRepository struct {
	BaseRepository
}

// newPgxIDMapRepository creates a new repository for the correspondence registry.
func newPgxIDMapRepository(pool *pgxpool.Pool) portsrepo.IDMapRepositoryFacade {
	return &PgxIDMapRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.IDMapRepositoryFacade = (*PgxIDMapRepository)(nil)

func scanIDMap(row pgx.Row) (models.IDMap, error) {
	var m models.IDMap
	err := row.Scan(
		&m.LocalID,
		&m.LocalEntityName,
		&m.RemoteEntityGUID,
		&m.RemoteEntityName,
		&m.Deleted,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// findOne runs a single-row lookup and maps "no rows" to an absent result.
func (r *PgxIDMapRepository) findOne(ctx context.Context, query string, args ...any) (*domain.IDMap, error) {
	m, err := scanIDMap(r.Pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	d := mapping.ToDomainIDMap(m)
	return &d, nil
}

// FindIDMapByLocalIDAndEntityName retrieves the live correspondence of a local record.
func (r *PgxIDMapRepository) FindIDMapByLocalIDAndEntityName(ctx context.Context, localID int64, localEntityName string) (*domain.IDMap, error) {
	query := `
		SELECT ` + idMapColumns + `
		FROM id_maps
		WHERE local_id = $1 AND local_entity_name = $2 AND deleted = FALSE;
	`
	m, err := r.findOne(ctx, query, localID, localEntityName)
	if err != nil {
		return nil, fmt.Errorf("failed to find id map for %s %d: %w", localEntityName, localID, err)
	}
	return m, nil
}

// FindIDMapByRemoteGUID retrieves the live correspondence pointing at a remote guid.
func (r *PgxIDMapRepository) FindIDMapByRemoteGUID(ctx context.Context, remoteGUID string, localEntityName string) (*domain.IDMap, error) {
	query := `
		SELECT ` + idMapColumns + `
		FROM id_maps
		WHERE remote_entity_guid = $1 AND local_entity_name = $2 AND deleted = FALSE
		ORDER BY last_updated_at DESC
		LIMIT 1;
	`
	m, err := r.findOne(ctx, query, remoteGUID, localEntityName)
	if err != nil {
		return nil, fmt.Errorf("failed to find id map for remote %s (%s): %w", remoteGUID, localEntityName, err)
	}
	return m, nil
}

// UpsertIDMap inserts a correspondence or refreshes the existing one for the same local key.
func (r *PgxIDMapRepository) UpsertIDMap(ctx context.Context, idMap domain.IDMap) error {
	m := mapping.ToModelIDMap(idMap)
	query := `
		INSERT INTO id_maps (local_id, local_entity_name, remote_entity_guid, remote_entity_name, deleted,
		                     created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, FALSE, $5, $6, $7, $8)
		ON CONFLICT (local_id, local_entity_name) DO UPDATE SET
			remote_entity_guid = EXCLUDED.remote_entity_guid,
			remote_entity_name = EXCLUDED.remote_entity_name,
			deleted = FALSE,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.Pool.Exec(ctx, query,
		m.LocalID,
		m.LocalEntityName,
		m.RemoteEntityGUID,
		m.RemoteEntityName,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert id map for %s %d: %w", m.LocalEntityName, m.LocalID, err)
	}
	return nil
}

// DeleteIDMap flags the live correspondence of a local record as deleted.
func (r *PgxIDMapRepository) DeleteIDMap(ctx context.Context, localID int64, localEntityName string, deletedBy string) error {
	query := `
		UPDATE id_maps
		SET deleted = TRUE, last_updated_at = $3, last_updated_by = $4
		WHERE local_id = $1 AND local_entity_name = $2 AND deleted = FALSE;
	`
	tag, err := r.Pool.Exec(ctx, query, localID, localEntityName, time.Now().UTC(), deletedBy)
	if err != nil {
		return fmt.Errorf("failed to delete id map for %s %d: %w", localEntityName, localID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// ListIDMapsByEntityName lists live correspondences ordered by (created_at, local_id) using token-based pagination.
func (r *PgxIDMapRepository) ListIDMapsByEntityName(ctx context.Context, localEntityName string, limit int, nextToken *string) ([]domain.IDMap, *string, error) {
	if limit <= 0 {
		limit = 50
	}
	// One extra row tells us whether another page exists.
	fetchLimit := limit + 1

	baseQuery := `
		SELECT ` + idMapColumns + `
		FROM id_maps
		WHERE local_entity_name = $1 AND deleted = FALSE
	`
	orderByClause := `ORDER BY created_at, local_id`
	args := []any{localEntityName}

	query := baseQuery
	if nextToken != nil && *nextToken != "" {
		lastCreatedAt, lastLocalID, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", fmt.Errorf("%w: %v", apperrors.ErrValidation, decodeErr))
		}
		query += ` AND (created_at, local_id) > ($2, $3)`
		args = append(args, lastCreatedAt, lastLocalID)
	}
	query += " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
	args = append(args, fetchLimit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query id maps for "+localEntityName, err)
	}
	defer rows.Close()

	modelMaps, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.IDMap, error) {
		return scanIDMap(row)
	})
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to scan id maps for "+localEntityName, err)
	}

	var next *string
	if len(modelMaps) > limit {
		modelMaps = modelMaps[:limit]
		last := modelMaps[limit-1]
		token := pagination.EncodeToken(last.CreatedAt, last.LocalID)
		next = &token
	}

	return mapping.ToDomainIDMapSlice(modelMaps), next, nil
}
