package repositories

import (
	"context"

	"github.com/SscSPs/connec_payment_sync/internal/core/domain"
)

// IDMapReader defines lookups against the correspondence registry.
// Lookups return (nil, nil) when no live correspondence exists; an error always means the store failed.
type IDMapReader interface {
	// FindIDMapByLocalIDAndEntityName finds the remote counterpart of a local record.
	FindIDMapByLocalIDAndEntityName(ctx context.Context, localID int64, localEntityName string) (*domain.IDMap, error)

	// FindIDMapByRemoteGUID finds the local record a remote guid corresponds to, scoped by local entity name.
	FindIDMapByRemoteGUID(ctx context.Context, remoteGUID string, localEntityName string) (*domain.IDMap, error)

	// ListIDMapsByEntityName pages through live correspondences of one entity name.
	// It returns the correspondences, a token for the next page, and an error.
	ListIDMapsByEntityName(ctx context.Context, localEntityName string, limit int, nextToken *string) ([]domain.IDMap, *string, error)
}

// IDMapWriter defines write operations on the correspondence registry
type IDMapWriter interface {
	// UpsertIDMap establishes or refreshes the correspondence keyed by (LocalID, LocalEntityName).
	UpsertIDMap(ctx context.Context, idMap domain.IDMap) error

	// DeleteIDMap soft-deletes a live correspondence. Returns apperrors.ErrNotFound if there is none.
	DeleteIDMap(ctx context.Context, localID int64, localEntityName string, deletedBy string) error
}

// IDMapRepositoryFacade combines all correspondence registry interfaces
type IDMapRepositoryFacade interface {
	IDMapReader
	IDMapWriter
}
