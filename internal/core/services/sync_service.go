package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/connec_payment_sync/internal/apperrors"
	"github.com/SscSPs/connec_payment_sync/internal/connec"
	"github.com/SscSPs/connec_payment_sync/internal/core/domain"
	portsrepo "github.com/SscSPs/connec_payment_sync/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/connec_payment_sync/internal/core/ports/services"
	"github.com/SscSPs/connec_payment_sync/internal/dto"
)

// Remote collection names, stored for reference on correspondences.
const (
	remotePaymentEntityName     = "PAYMENT"
	remotePaymentLineEntityName = "PAYMENT_LINE"
)

type syncService struct {
	BaseService
	paymentRepo portsrepo.PaymentRepositoryFacade
	idMapRepo   portsrepo.IDMapRepositoryFacade
	mappers     portssvc.PaymentMapperRegistrySvc
}

// NewSyncService creates the service driving payment synchronization.
// It owns every write to the correspondence registry; mappers only read it.
func NewSyncService(paymentRepo portsrepo.PaymentRepositoryFacade, idMapRepo portsrepo.IDMapRepositoryFacade, mappers portssvc.PaymentMapperRegistrySvc) portssvc.SyncSvcFacade {
	return &syncService{
		paymentRepo: paymentRepo,
		idMapRepo:   idMapRepo,
		mappers:     mappers,
	}
}

var _ portssvc.SyncSvcFacade = (*syncService)(nil)

// ImportPayment applies an inbound payload: resolve the mapper, find the local counterpart if any, map, save.
func (s *syncService) ImportPayment(ctx context.Context, res connec.PaymentResource, actorID string) (*domain.Payment, error) {
	mapper, err := s.mappers.Resolve(res)
	if err != nil {
		s.LogInfo(ctx, "No mapper accepts payload", slog.String("type", res.Type))
		return nil, err
	}

	payment, isNew, err := s.loadCounterpart(ctx, mapper, res.ID.First(), actorID)
	if err != nil {
		return nil, err
	}

	if err := mapper.ToLocal(ctx, res, &payment); err != nil {
		return nil, err
	}
	if err := payment.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	lines, err := mapper.LinesToLocal(ctx, res)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if isNew {
		payment.PaymentID = 0
		payment.CreatedAt = now
		payment.CreatedBy = actorID
		if payment.PaymentDate.IsZero() {
			payment.PaymentDate = now
		}
	}
	payment.LastUpdatedAt = now
	payment.LastUpdatedBy = actorID

	var localLines []domain.PaymentLine
	if lines != nil {
		localLines = make([]domain.PaymentLine, len(lines))
		for i := range lines {
			localLines[i] = lines[i].PaymentLine
		}
	}

	saved, err := s.paymentRepo.SavePayment(ctx, payment, localLines)
	if err != nil {
		s.LogError(ctx, err, "Failed to save imported payment", slog.String("type", res.Type))
		return nil, fmt.Errorf("failed to save imported payment: %w", err)
	}
	id := saved.PaymentID
	payment.PaymentID = id

	remoteGUID := res.ID.First()
	if isNew && remoteGUID != "" {
		idMap := newIDMap(id, mapper.LocalEntityName(), remoteGUID, remotePaymentEntityName, actorID, now)
		if err := s.idMapRepo.UpsertIDMap(ctx, idMap); err != nil {
			s.LogError(ctx, err, "Failed to record correspondence for imported payment", slog.Int64("payment_id", id))
			return nil, fmt.Errorf("failed to record correspondence for payment %d: %w", id, err)
		}
	}

	if lines != nil {
		if err := s.recordLineCorrespondences(ctx, mapper, lines, saved, actorID, now); err != nil {
			s.LogError(ctx, err, "Failed to record line correspondences for imported payment", slog.Int64("payment_id", id))
			return nil, err
		}
	}

	s.LogInfo(ctx, "Payment imported",
		slog.Int64("payment_id", id),
		slog.String("kind", string(payment.Kind)),
		slog.Bool("created", isNew),
		slog.Int("lines", len(lines)))
	return &payment, nil
}

// recordLineCorrespondences maps newly stored lines to their remote guids and retires
// the correspondences of lines that no longer exist locally.
func (s *syncService) recordLineCorrespondences(ctx context.Context, mapper portssvc.PaymentMapperSvc, lines []domain.ImportedLine, saved portsrepo.SavedPayment, actorID string, now time.Time) error {
	if len(saved.LineIDs) != len(lines) {
		return fmt.Errorf("saved %d lines of payment %d, expected %d", len(saved.LineIDs), saved.PaymentID, len(lines))
	}

	entityName := mapper.LineEntityName()
	for i, line := range lines {
		lineID := saved.LineIDs[i]
		if line.RemoteGUID == "" || lineID == line.LineID {
			continue
		}
		if line.LineID != 0 {
			if err := s.retireIDMap(ctx, line.LineID, entityName, actorID); err != nil {
				return err
			}
		}
		idMap := newIDMap(lineID, entityName, line.RemoteGUID, remotePaymentLineEntityName, actorID, now)
		if err := s.idMapRepo.UpsertIDMap(ctx, idMap); err != nil {
			return fmt.Errorf("failed to record correspondence for payment line %d: %w", lineID, err)
		}
	}

	for _, lineID := range saved.RemovedLineIDs {
		if err := s.retireIDMap(ctx, lineID, entityName, actorID); err != nil {
			return err
		}
	}
	return nil
}

// retireIDMap soft-deletes a correspondence; a correspondence that is already gone is fine.
func (s *syncService) retireIDMap(ctx context.Context, localID int64, entityName string, actorID string) error {
	err := s.idMapRepo.DeleteIDMap(ctx, localID, entityName, actorID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return fmt.Errorf("failed to retire correspondence of %s %d: %w", entityName, localID, err)
	}
	return nil
}

func newIDMap(localID int64, localEntityName, remoteGUID, remoteEntityName, actorID string, now time.Time) domain.IDMap {
	return domain.IDMap{
		LocalID:          localID,
		LocalEntityName:  localEntityName,
		RemoteEntityGUID: remoteGUID,
		RemoteEntityName: remoteEntityName,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}
}

// loadCounterpart returns the local payment a remote guid is mapped to, or a fresh one.
// A correspondence pointing at a missing payment is retired so the guid maps to one live row.
func (s *syncService) loadCounterpart(ctx context.Context, mapper portssvc.PaymentMapperSvc, remoteGUID string, actorID string) (domain.Payment, bool, error) {
	fresh := domain.Payment{Kind: mapper.Kind()}
	if remoteGUID == "" {
		return fresh, true, nil
	}

	idMap, err := s.idMapRepo.FindIDMapByRemoteGUID(ctx, remoteGUID, mapper.LocalEntityName())
	if err != nil {
		return fresh, false, fmt.Errorf("failed to resolve remote payment %s: %w", remoteGUID, err)
	}
	if idMap == nil {
		return fresh, true, nil
	}

	existing, err := s.paymentRepo.FindPaymentByID(ctx, idMap.LocalID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogInfo(ctx, "Correspondence points at a missing payment, creating a new one",
				slog.String("remote_guid", remoteGUID),
				slog.Int64("local_id", idMap.LocalID))
			if err := s.retireIDMap(ctx, idMap.LocalID, mapper.LocalEntityName(), actorID); err != nil {
				return fresh, false, err
			}
			return fresh, true, nil
		}
		return fresh, false, fmt.Errorf("failed to load payment %d: %w", idMap.LocalID, err)
	}
	return *existing, false, nil
}

// ExportPayment builds the remote payload of a stored payment.
func (s *syncService) ExportPayment(ctx context.Context, paymentID int64) (*connec.PaymentResource, error) {
	if paymentID <= 0 {
		return nil, fmt.Errorf("%w: payment id must be positive", apperrors.ErrValidation)
	}

	payment, err := s.paymentRepo.FindPaymentByID(ctx, paymentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load payment %d: %w", paymentID, err)
	}

	mapper, err := s.mappers.ForKind(payment.Kind)
	if err != nil {
		return nil, err
	}

	res, err := mapper.ToRemote(ctx, *payment)
	if err != nil {
		s.LogError(ctx, err, "Failed to map payment to remote resource", slog.Int64("payment_id", paymentID))
		return nil, err
	}
	return res, nil
}

// RecordIDMap stores a correspondence reported by the driver after a remote write.
func (s *syncService) RecordIDMap(ctx context.Context, req dto.RecordIDMapRequest, actorID string) (*domain.IDMap, error) {
	existing, err := s.idMapRepo.FindIDMapByLocalIDAndEntityName(ctx, req.LocalID, req.LocalEntityName)
	if err != nil {
		return nil, fmt.Errorf("failed to look up existing correspondence: %w", err)
	}

	idMap := newIDMap(req.LocalID, req.LocalEntityName, req.RemoteEntityGUID, req.RemoteEntityName, actorID, time.Now().UTC())

	if existing != nil {
		if existing.SameRemote(req.RemoteEntityGUID) {
			return existing, nil
		}
		if !req.Replace {
			return nil, fmt.Errorf("%w: %s %d is already mapped to %s", apperrors.ErrDuplicate, req.LocalEntityName, req.LocalID, existing.RemoteEntityGUID)
		}
		idMap.CreatedAt = existing.CreatedAt
		idMap.CreatedBy = existing.CreatedBy
		s.LogInfo(ctx, "Replacing correspondence",
			slog.String("local_entity_name", req.LocalEntityName),
			slog.Int64("local_id", req.LocalID),
			slog.String("old_guid", existing.RemoteEntityGUID),
			slog.String("new_guid", req.RemoteEntityGUID))
	}

	if err := s.idMapRepo.UpsertIDMap(ctx, idMap); err != nil {
		return nil, fmt.Errorf("failed to record correspondence: %w", err)
	}
	return &idMap, nil
}

// FindIDMap returns the live correspondence of a local record.
func (s *syncService) FindIDMap(ctx context.Context, localID int64, localEntityName string) (*domain.IDMap, error) {
	idMap, err := s.idMapRepo.FindIDMapByLocalIDAndEntityName(ctx, localID, localEntityName)
	if err != nil {
		return nil, fmt.Errorf("failed to find correspondence: %w", err)
	}
	if idMap == nil {
		return nil, apperrors.ErrNotFound
	}
	return idMap, nil
}

// DeleteIDMap soft-deletes the correspondence of a local record.
func (s *syncService) DeleteIDMap(ctx context.Context, localID int64, localEntityName string, actorID string) error {
	if err := s.idMapRepo.DeleteIDMap(ctx, localID, localEntityName, actorID); err != nil {
		return fmt.Errorf("failed to delete correspondence: %w", err)
	}
	return nil
}

// ListIDMaps pages through correspondences of one entity name.
func (s *syncService) ListIDMaps(ctx context.Context, params dto.ListIDMapsParams) (*dto.ListIDMapsResponse, error) {
	var token *string
	if params.NextToken != "" {
		token = &params.NextToken
	}

	idMaps, next, err := s.idMapRepo.ListIDMapsByEntityName(ctx, params.EntityName, params.Limit, token)
	if err != nil {
		return nil, fmt.Errorf("failed to list correspondences: %w", err)
	}

	resp := &dto.ListIDMapsResponse{
		IDMaps:    make([]dto.IDMapResponse, len(idMaps)),
		NextToken: next,
	}
	for i := range idMaps {
		resp.IDMaps[i] = dto.ToIDMapResponse(&idMaps[i])
	}
	return resp, nil
}
