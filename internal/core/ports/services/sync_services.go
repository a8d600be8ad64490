package services

import (
	"context"

	"github.com/SscSPs/connec_payment_sync/internal/connec"
	"github.com/SscSPs/connec_payment_sync/internal/core/domain"
	"github.com/SscSPs/connec_payment_sync/internal/dto"
)

// PaymentSyncSvc moves payments across the two systems.
type PaymentSyncSvc interface {
	// ImportPayment applies an inbound remote payload to the local store and returns the saved payment.
	ImportPayment(ctx context.Context, res connec.PaymentResource, actorID string) (*domain.Payment, error)

	// ExportPayment builds the remote payload of a stored payment.
	ExportPayment(ctx context.Context, paymentID int64) (*connec.PaymentResource, error)
}

// IDMapSvc manages correspondences on behalf of the driver.
type IDMapSvc interface {
	// RecordIDMap stores a correspondence after a successful remote write.
	// A different existing guid is only replaced when req.Replace is set; otherwise apperrors.ErrDuplicate.
	RecordIDMap(ctx context.Context, req dto.RecordIDMapRequest, actorID string) (*domain.IDMap, error)

	// FindIDMap returns the live correspondence or apperrors.ErrNotFound.
	FindIDMap(ctx context.Context, localID int64, localEntityName string) (*domain.IDMap, error)

	// DeleteIDMap soft-deletes a correspondence.
	DeleteIDMap(ctx context.Context, localID int64, localEntityName string, actorID string) error

	// ListIDMaps pages through correspondences of one entity name.
	ListIDMaps(ctx context.Context, params dto.ListIDMapsParams) (*dto.ListIDMapsResponse, error)
}

// SyncSvcFacade combines the sync driver services
type SyncSvcFacade interface {
	PaymentSyncSvc
	IDMapSvc
}
