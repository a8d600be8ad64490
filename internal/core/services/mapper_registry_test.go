package services_test

import (
	"testing"

	"github.com/SscSPs/connec_payment_sync/internal/apperrors"
	"github.com/SscSPs/connec_payment_sync/internal/connec"
	"github.com/SscSPs/connec_payment_sync/internal/core/domain"
	"github.com/SscSPs/connec_payment_sync/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentMapperRegistry_Resolve(t *testing.T) {
	repo := new(MockPaymentRepository)
	idMaps := new(MockIDMapRepository)
	customer := services.NewCustomerPaymentMapper(repo, idMaps)
	supplier := services.NewSupplierPaymentMapper(repo, idMaps)
	registry := services.NewPaymentMapperRegistry(customer, supplier)

	tests := []struct {
		name    string
		typ     string
		want    domain.PaymentKind
		wantErr error
	}{
		{name: "customer payload", typ: "CUSTOMER", want: domain.CustomerPayment},
		{name: "supplier payload", typ: "SUPPLIER", want: domain.SupplierPayment},
		{name: "unknown payload", typ: "REFUND", wantErr: apperrors.ErrNoMapper},
		{name: "missing type", typ: "", wantErr: apperrors.ErrNoMapper},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := registry.Resolve(connec.PaymentResource{Type: tt.typ})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, m)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, m.Kind())
		})
	}
}

func TestPaymentMapperRegistry_FirstApplicableWins(t *testing.T) {
	repo := new(MockPaymentRepository)
	idMaps := new(MockIDMapRepository)
	first := services.NewCustomerPaymentMapper(repo, idMaps)
	second := services.NewCustomerPaymentMapper(repo, idMaps)
	registry := services.NewPaymentMapperRegistry(first, second)

	m, err := registry.Resolve(connec.PaymentResource{Type: "CUSTOMER"})

	require.NoError(t, err)
	assert.Same(t, first, m)
}

func TestPaymentMapperRegistry_ForKind(t *testing.T) {
	repo := new(MockPaymentRepository)
	idMaps := new(MockIDMapRepository)
	registry := services.NewPaymentMapperRegistry(services.NewCustomerPaymentMapper(repo, idMaps))

	m, err := registry.ForKind(domain.CustomerPayment)
	require.NoError(t, err)
	assert.Equal(t, domain.EntityPayment, m.LocalEntityName())

	m, err = registry.ForKind(domain.SupplierPayment)
	assert.ErrorIs(t, err, apperrors.ErrNoMapper)
	assert.Nil(t, m)
}
