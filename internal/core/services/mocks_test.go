package services_test

import (
	"context"

	"github.com/SscSPs/connec_payment_sync/internal/core/domain"
	portsrepo "github.com/SscSPs/connec_payment_sync/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// --- Mock IDMapRepository ---
type MockIDMapRepository struct {
	mock.Mock
}

func (m *MockIDMapRepository) FindIDMapByLocalIDAndEntityName(ctx context.Context, localID int64, localEntityName string) (*domain.IDMap, error) {
	args := m.Called(ctx, localID, localEntityName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.IDMap), args.Error(1)
}

func (m *MockIDMapRepository) FindIDMapByRemoteGUID(ctx context.Context, remoteGUID string, localEntityName string) (*domain.IDMap, error) {
	args := m.Called(ctx, remoteGUID, localEntityName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.IDMap), args.Error(1)
}

func (m *MockIDMapRepository) ListIDMapsByEntityName(ctx context.Context, localEntityName string, limit int, nextToken *string) ([]domain.IDMap, *string, error) {
	args := m.Called(ctx, localEntityName, limit, nextToken)
	var maps []domain.IDMap
	if args.Get(0) != nil {
		maps = args.Get(0).([]domain.IDMap)
	}
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	return maps, next, args.Error(2)
}

func (m *MockIDMapRepository) UpsertIDMap(ctx context.Context, idMap domain.IDMap) error {
	args := m.Called(ctx, idMap)
	return args.Error(0)
}

func (m *MockIDMapRepository) DeleteIDMap(ctx context.Context, localID int64, localEntityName string, deletedBy string) error {
	args := m.Called(ctx, localID, localEntityName, deletedBy)
	return args.Error(0)
}

var _ portsrepo.IDMapRepositoryFacade = (*MockIDMapRepository)(nil)

// mapped registers a known correspondence.
func (m *MockIDMapRepository) mapped(localID int64, entityName, guid string) {
	m.On("FindIDMapByLocalIDAndEntityName", mock.Anything, localID, entityName).
		Return(&domain.IDMap{LocalID: localID, LocalEntityName: entityName, RemoteEntityGUID: guid}, nil)
}

// unmapped registers an absent correspondence.
func (m *MockIDMapRepository) unmapped(localID int64, entityName string) {
	m.On("FindIDMapByLocalIDAndEntityName", mock.Anything, localID, entityName).Return(nil, nil)
}

// mappedRemote registers a known correspondence looked up by remote guid.
func (m *MockIDMapRepository) mappedRemote(guid, entityName string, localID int64) {
	m.On("FindIDMapByRemoteGUID", mock.Anything, guid, entityName).
		Return(&domain.IDMap{LocalID: localID, LocalEntityName: entityName, RemoteEntityGUID: guid}, nil)
}

// unmappedRemote registers a remote guid without correspondence.
func (m *MockIDMapRepository) unmappedRemote(guid, entityName string) {
	m.On("FindIDMapByRemoteGUID", mock.Anything, guid, entityName).Return(nil, nil)
}

// --- Mock PaymentRepository ---
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) FindPaymentByID(ctx context.Context, paymentID int64) (*domain.Payment, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) ListPaymentLinesByPaymentID(ctx context.Context, paymentID int64) ([]domain.PaymentLine, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PaymentLine), args.Error(1)
}

func (m *MockPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment, lines []domain.PaymentLine) (portsrepo.SavedPayment, error) {
	args := m.Called(ctx, payment, lines)
	return args.Get(0).(portsrepo.SavedPayment), args.Error(1)
}

var _ portsrepo.PaymentRepositoryFacade = (*MockPaymentRepository)(nil)
