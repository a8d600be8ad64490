package services_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/SscSPs/connec_payment_sync/internal/apperrors"
	"github.com/SscSPs/connec_payment_sync/internal/connec"
	"github.com/SscSPs/connec_payment_sync/internal/core/domain"
	portssvc "github.com/SscSPs/connec_payment_sync/internal/core/ports/services"
	"github.com/SscSPs/connec_payment_sync/internal/core/services"
	"github.com/SscSPs/connec_payment_sync/internal/middleware"
	"github.com/davecgh/go-spew/spew"
	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type CustomerPaymentMapperTestSuite struct {
	suite.Suite
	lines  *MockPaymentRepository
	idMaps *MockIDMapRepository
	mapper portssvc.PaymentMapperSvc
	ctx    context.Context
}

func (suite *CustomerPaymentMapperTestSuite) SetupTest() {
	suite.lines = new(MockPaymentRepository)
	suite.idMaps = new(MockIDMapRepository)
	suite.mapper = services.NewCustomerPaymentMapper(suite.lines, suite.idMaps)
	suite.ctx = context.Background()
}

func strPtr(s string) *string { return &s }

func samplePayment() domain.Payment {
	return domain.Payment{
		PaymentID:     42,
		Kind:          domain.CustomerPayment,
		Reference:     "CHQ-0042",
		Amount:        decimal.NewFromInt(150),
		CurrencyCode:  "EUR",
		PaymentDate:   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		PaymentMethod: "CHQ",
		Note:          "March settlement",
		Label:         "(CustomerInvoicePayment)",
		Operation:     "payment",
	}
}

func exampleLines() []domain.PaymentLine {
	return []domain.PaymentLine{
		{LineID: 1, PaymentID: 42, InvoiceID: 7, Amount: decimal.NewFromInt(100)},
		{LineID: 2, PaymentID: 42, InvoiceID: 9, Amount: decimal.NewFromInt(50)},
	}
}

// expectExampleRegistry wires the correspondences of the two-line example payment.
func (suite *CustomerPaymentMapperTestSuite) expectExampleRegistry() {
	suite.idMaps.unmapped(42, domain.EntityPayment)
	suite.idMaps.mapped(1, domain.EntityPaymentLine, "LINE-G1")
	suite.idMaps.mapped(7, domain.EntityInvoice, "INV-G1")
	suite.idMaps.unmapped(2, domain.EntityPaymentLine)
	suite.idMaps.unmapped(9, domain.EntityInvoice)
}

// --- Test Cases ---

func (suite *CustomerPaymentMapperTestSuite) TestIsApplicable() {
	cases := map[string]bool{
		"CUSTOMER": true,
		"SUPPLIER": false,
		"customer": false,
		"":         false,
	}
	for typ, want := range cases {
		suite.Equal(want, suite.mapper.IsApplicable(connec.PaymentResource{Type: typ}), "type %q", typ)
	}
	suite.Equal(domain.CustomerPayment, suite.mapper.Kind())
	suite.Equal(domain.EntityPayment, suite.mapper.LocalEntityName())
}

func (suite *CustomerPaymentMapperTestSuite) TestToRemote_ExampleScenario() {
	suite.expectExampleRegistry()
	suite.lines.On("ListPaymentLinesByPaymentID", mock.Anything, int64(42)).Return(exampleLines(), nil).Once()

	res, err := suite.mapper.ToRemote(suite.ctx, samplePayment())

	suite.Require().NoError(err)
	suite.Require().NotNil(res)
	suite.Equal("CUSTOMER", res.Type)
	suite.Nil(res.ID, "payment has no correspondence yet")

	lines, err := json.Marshal(res.PaymentLines)
	suite.Require().NoError(err)
	suite.JSONEq(`[{"id":[{"id":"LINE-G1"}],"amount":100,"linked_transactions":[{"id":"INV-G1"}]},{"amount":50}]`, string(lines), spew.Sdump(res.PaymentLines))

	suite.lines.AssertExpectations(suite.T())
	suite.idMaps.AssertExpectations(suite.T())
}

func (suite *CustomerPaymentMapperTestSuite) TestToRemote_BaseFieldsAndPaymentID() {
	suite.idMaps.mapped(42, domain.EntityPayment, "PAY-G1")
	suite.lines.On("ListPaymentLinesByPaymentID", mock.Anything, int64(42)).Return([]domain.PaymentLine{}, nil).Once()

	res, err := suite.mapper.ToRemote(suite.ctx, samplePayment())

	suite.Require().NoError(err)
	b, err := json.Marshal(res)
	suite.Require().NoError(err)
	suite.JSONEq(`{
		"type": "CUSTOMER",
		"id": [{"id": "PAY-G1"}],
		"transaction_date": "2024-03-01T00:00:00Z",
		"total_amount": 150,
		"currency": "EUR",
		"payment_reference": "CHQ-0042",
		"payment_method": "CHQ",
		"private_note": "March settlement",
		"payment_lines": []
	}`, string(b))
}

func (suite *CustomerPaymentMapperTestSuite) TestToRemote_OmitsZeroTransactionDate() {
	payment := samplePayment()
	payment.PaymentDate = time.Time{}
	suite.idMaps.unmapped(42, domain.EntityPayment)
	suite.lines.On("ListPaymentLinesByPaymentID", mock.Anything, int64(42)).Return([]domain.PaymentLine{}, nil).Once()

	res, err := suite.mapper.ToRemote(suite.ctx, payment)

	suite.Require().NoError(err)
	suite.Nil(res.TransactionDate)
	b, err := json.Marshal(res)
	suite.Require().NoError(err)
	suite.NotContains(string(b), "transaction_date")

	var blank domain.Payment
	suite.Require().NoError(suite.mapper.ToLocal(suite.ctx, *res, &blank))
	suite.True(blank.PaymentDate.IsZero())
}

func (suite *CustomerPaymentMapperTestSuite) TestToRemote_LogsMappedFields() {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := middleware.WithLogger(suite.ctx, logger)
	suite.idMaps.unmapped(42, domain.EntityPayment)
	suite.lines.On("ListPaymentLinesByPaymentID", mock.Anything, int64(42)).Return([]domain.PaymentLine{}, nil).Once()

	_, err := suite.mapper.ToRemote(ctx, samplePayment())

	suite.Require().NoError(err)
	suite.Contains(buf.String(), "Mapped payment to remote resource")
	suite.Contains(buf.String(), "fields=\"[transaction_date total_amount currency payment_reference payment_method private_note]\"")
}

func (suite *CustomerPaymentMapperTestSuite) TestToRemote_DiscriminatorAlwaysSet() {
	payment := samplePayment()
	payment.Kind = domain.SupplierPayment // the mapper decides the discriminator, not the record
	suite.idMaps.unmapped(42, domain.EntityPayment)
	suite.lines.On("ListPaymentLinesByPaymentID", mock.Anything, int64(42)).Return([]domain.PaymentLine{}, nil).Once()

	res, err := suite.mapper.ToRemote(suite.ctx, payment)

	suite.Require().NoError(err)
	suite.Equal("CUSTOMER", res.Type)
	suite.NotNil(res.PaymentLines)
	suite.Empty(res.PaymentLines)
}

func (suite *CustomerPaymentMapperTestSuite) TestToRemote_PreservesLineOrderAndCardinality() {
	lines := []domain.PaymentLine{
		{LineID: 3, PaymentID: 42, InvoiceID: 30, Amount: decimal.NewFromInt(3)},
		{LineID: 5, PaymentID: 42, InvoiceID: 50, Amount: decimal.NewFromInt(5)},
		{LineID: 8, PaymentID: 42, InvoiceID: 80, Amount: decimal.NewFromInt(8)},
	}
	suite.idMaps.unmapped(42, domain.EntityPayment)
	for _, l := range lines {
		suite.idMaps.mapped(l.LineID, domain.EntityPaymentLine, "LINE-"+l.Amount.String())
		suite.idMaps.unmapped(l.InvoiceID, domain.EntityInvoice)
	}
	suite.lines.On("ListPaymentLinesByPaymentID", mock.Anything, int64(42)).Return(lines, nil).Once()

	res, err := suite.mapper.ToRemote(suite.ctx, samplePayment())

	suite.Require().NoError(err)
	suite.Require().Len(res.PaymentLines, 3)
	for i, l := range lines {
		suite.Equal("LINE-"+l.Amount.String(), res.PaymentLines[i].ID.First())
		suite.True(res.PaymentLines[i].Amount.Decimal().Equal(l.Amount))
		suite.Nil(res.PaymentLines[i].LinkedTransactions)
	}
}

func (suite *CustomerPaymentMapperTestSuite) TestToRemote_Idempotent() {
	suite.expectExampleRegistry()
	suite.lines.On("ListPaymentLinesByPaymentID", mock.Anything, int64(42)).Return(exampleLines(), nil).Twice()

	first, err := suite.mapper.ToRemote(suite.ctx, samplePayment())
	suite.Require().NoError(err)
	second, err := suite.mapper.ToRemote(suite.ctx, samplePayment())
	suite.Require().NoError(err)

	a, _ := json.Marshal(first)
	b, _ := json.Marshal(second)
	suite.Equal(string(a), string(b))
}

func (suite *CustomerPaymentMapperTestSuite) TestToRemote_NotPersisted() {
	payment := samplePayment()
	payment.PaymentID = 0

	res, err := suite.mapper.ToRemote(suite.ctx, payment)

	suite.Require().Error(err)
	suite.Nil(res)
	suite.ErrorIs(err, apperrors.ErrPreconditionFailed)
	suite.lines.AssertNotCalled(suite.T(), "ListPaymentLinesByPaymentID", mock.Anything, mock.Anything)
}

func (suite *CustomerPaymentMapperTestSuite) TestToRemote_LineFetchError() {
	suite.idMaps.unmapped(42, domain.EntityPayment)
	suite.lines.On("ListPaymentLinesByPaymentID", mock.Anything, int64(42)).Return(nil, assert.AnError).Once()

	res, err := suite.mapper.ToRemote(suite.ctx, samplePayment())

	suite.Require().Error(err)
	suite.Nil(res)
	suite.ErrorIs(err, assert.AnError)
}

func (suite *CustomerPaymentMapperTestSuite) TestToRemote_RegistryError() {
	suite.idMaps.unmapped(42, domain.EntityPayment)
	suite.idMaps.On("FindIDMapByLocalIDAndEntityName", mock.Anything, int64(1), domain.EntityPaymentLine).Return(nil, assert.AnError)
	suite.lines.On("ListPaymentLinesByPaymentID", mock.Anything, int64(42)).Return(exampleLines(), nil).Once()

	res, err := suite.mapper.ToRemote(suite.ctx, samplePayment())

	suite.Require().Error(err)
	suite.Nil(res)
	suite.ErrorIs(err, assert.AnError)
}

func (suite *CustomerPaymentMapperTestSuite) TestToLocal_RoundTripsBaseFields() {
	original := samplePayment()
	suite.idMaps.unmapped(42, domain.EntityPayment)
	suite.lines.On("ListPaymentLinesByPaymentID", mock.Anything, int64(42)).Return([]domain.PaymentLine{}, nil).Once()

	res, err := suite.mapper.ToRemote(suite.ctx, original)
	suite.Require().NoError(err)

	var blank domain.Payment
	suite.Require().NoError(suite.mapper.ToLocal(suite.ctx, *res, &blank))

	suite.True(original.PaymentDate.Equal(blank.PaymentDate))
	suite.True(original.Amount.Equal(blank.Amount))
	suite.Equal(original.CurrencyCode, blank.CurrencyCode)
	suite.Equal(original.Reference, blank.Reference)
	suite.Equal(original.PaymentMethod, blank.PaymentMethod)
	suite.Equal(original.Note, blank.Note)
	suite.Equal(domain.CustomerPayment, blank.Kind)
}

func (suite *CustomerPaymentMapperTestSuite) TestToLocal_RoundTripsValidCurrencies() {
	for _, code := range []string{"EUR", "USD", ""} {
		original := samplePayment()
		original.CurrencyCode = code
		suite.Require().NoError(original.Validate(), "currency %q", code)
		suite.idMaps.unmapped(42, domain.EntityPayment)
		suite.lines.On("ListPaymentLinesByPaymentID", mock.Anything, int64(42)).Return([]domain.PaymentLine{}, nil).Once()

		res, err := suite.mapper.ToRemote(suite.ctx, original)
		suite.Require().NoError(err)

		var blank domain.Payment
		suite.Require().NoError(suite.mapper.ToLocal(suite.ctx, *res, &blank))
		suite.Equal(code, blank.CurrencyCode)
	}

	lowercase := samplePayment()
	lowercase.CurrencyCode = "eur"
	suite.Error(lowercase.Validate(), "lowercase codes are never stored")
}

func (suite *CustomerPaymentMapperTestSuite) TestToLocal_MissingFieldsLeaveRecordUntouched() {
	payment := domain.Payment{PaymentID: 7, Reference: "KEEP", Note: "old note", Label: "custom label"}
	res := connec.PaymentResource{Type: "CUSTOMER", PrivateNote: strPtr("new note"), Currency: strPtr(" usd ")}

	err := suite.mapper.ToLocal(suite.ctx, res, &payment)

	suite.Require().NoError(err)
	suite.Equal(int64(7), payment.PaymentID)
	suite.Equal("KEEP", payment.Reference)
	suite.Equal("new note", payment.Note)
	suite.Equal("USD", payment.CurrencyCode)
	suite.Equal("custom label", payment.Label)
	suite.Equal("payment", payment.Operation)
	suite.Equal(domain.CustomerPayment, payment.Kind)
}

func (suite *CustomerPaymentMapperTestSuite) TestToLocal_DefaultsLabel() {
	var payment domain.Payment

	suite.Require().NoError(suite.mapper.ToLocal(suite.ctx, connec.PaymentResource{Type: "CUSTOMER"}, &payment))

	suite.Equal("(CustomerInvoicePayment)", payment.Label)
	suite.Equal("payment", payment.Operation)
}

func (suite *CustomerPaymentMapperTestSuite) TestToLocal_RejectsForeignDiscriminator() {
	payment := domain.Payment{Reference: "KEEP"}

	err := suite.mapper.ToLocal(suite.ctx, connec.PaymentResource{Type: "SUPPLIER", PaymentReference: strPtr("X")}, &payment)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Equal("KEEP", payment.Reference)
}

func (suite *CustomerPaymentMapperTestSuite) TestToLocal_CoercionErrors() {
	badCurrency := connec.PaymentResource{Type: "CUSTOMER", Currency: strPtr("EURO")}
	negative := connec.NewAmount(decimal.NewFromInt(-1))
	badAmount := connec.PaymentResource{Type: "CUSTOMER", TotalAmount: &negative}

	var payment domain.Payment
	err := suite.mapper.ToLocal(suite.ctx, badCurrency, &payment)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "field currency")

	err = suite.mapper.ToLocal(suite.ctx, badAmount, &payment)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "field total_amount")
}

func (suite *CustomerPaymentMapperTestSuite) TestLinesToLocal_AbsentLines() {
	lines, err := suite.mapper.LinesToLocal(suite.ctx, connec.PaymentResource{Type: "CUSTOMER"})

	suite.NoError(err)
	suite.Nil(lines)

	lines, err = suite.mapper.LinesToLocal(suite.ctx, connec.PaymentResource{Type: "CUSTOMER", PaymentLines: []connec.PaymentLineResource{}})

	suite.NoError(err)
	suite.NotNil(lines)
	suite.Empty(lines)
}

func (suite *CustomerPaymentMapperTestSuite) TestLinesToLocal_ResolvesCorrespondences() {
	suite.idMaps.mappedRemote("INV-G1", domain.EntityInvoice, 7)
	suite.idMaps.mappedRemote("LINE-G1", domain.EntityPaymentLine, 1)
	suite.idMaps.mappedRemote("INV-G2", domain.EntityInvoice, 9)
	suite.idMaps.unmappedRemote("LINE-G2", domain.EntityPaymentLine)
	res := connec.PaymentResource{Type: "CUSTOMER", PaymentLines: []connec.PaymentLineResource{
		{ID: connec.NewIDRefs("LINE-G1"), Amount: connec.NewAmount(decimal.NewFromInt(100)), LinkedTransactions: connec.NewIDRefs("INV-G1")},
		{ID: connec.NewIDRefs("LINE-G2"), Amount: connec.NewAmount(decimal.NewFromInt(50)), LinkedTransactions: connec.NewIDRefs("INV-G2")},
		{Amount: connec.NewAmount(decimal.NewFromInt(5)), LinkedTransactions: connec.NewIDRefs("INV-G2")},
	}}

	lines, err := suite.mapper.LinesToLocal(suite.ctx, res)

	suite.Require().NoError(err)
	suite.Require().Len(lines, 3, spew.Sdump(lines))
	suite.Equal(int64(1), lines[0].LineID)
	suite.Equal(int64(7), lines[0].InvoiceID)
	suite.Equal("LINE-G1", lines[0].RemoteGUID)
	suite.True(lines[0].Amount.Equal(decimal.NewFromInt(100)))
	suite.Equal(int64(0), lines[1].LineID)
	suite.Equal("LINE-G2", lines[1].RemoteGUID)
	suite.Equal(int64(9), lines[1].InvoiceID)
	suite.Equal("", lines[2].RemoteGUID)
	suite.Equal(int64(0), lines[2].LineID)
	suite.idMaps.AssertExpectations(suite.T())
}

func (suite *CustomerPaymentMapperTestSuite) TestLinesToLocal_Errors() {
	suite.idMaps.unmappedRemote("INV-NEW", domain.EntityInvoice)
	suite.idMaps.On("FindIDMapByRemoteGUID", mock.Anything, "INV-ERR", domain.EntityInvoice).Return(nil, assert.AnError)
	negative := connec.NewAmount(decimal.NewFromInt(-1))

	tests := []struct {
		name    string
		line    connec.PaymentLineResource
		wantErr error
	}{
		{name: "no linked invoice", line: connec.PaymentLineResource{Amount: connec.NewAmount(decimal.NewFromInt(1))}, wantErr: apperrors.ErrValidation},
		{name: "negative amount", line: connec.PaymentLineResource{Amount: negative, LinkedTransactions: connec.NewIDRefs("INV-NEW")}, wantErr: apperrors.ErrValidation},
		{name: "invoice not synchronized", line: connec.PaymentLineResource{LinkedTransactions: connec.NewIDRefs("INV-NEW")}, wantErr: apperrors.ErrPreconditionFailed},
		{name: "registry failure", line: connec.PaymentLineResource{LinkedTransactions: connec.NewIDRefs("INV-ERR")}, wantErr: assert.AnError},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			res := connec.PaymentResource{Type: "CUSTOMER", PaymentLines: []connec.PaymentLineResource{tt.line}}

			lines, err := suite.mapper.LinesToLocal(suite.ctx, res)

			suite.Nil(lines)
			suite.ErrorIs(err, tt.wantErr)
			suite.Contains(err.Error(), "payment line 0")
		})
	}
}

// --- Run Suite ---
func TestCustomerPaymentMapper(t *testing.T) {
	suite.Run(t, new(CustomerPaymentMapperTestSuite))
}

func TestSupplierPaymentMapper(t *testing.T) {
	lines := new(MockPaymentRepository)
	idMaps := new(MockIDMapRepository)
	mapper := services.NewSupplierPaymentMapper(lines, idMaps)

	assert.True(t, mapper.IsApplicable(connec.PaymentResource{Type: "SUPPLIER"}))
	assert.False(t, mapper.IsApplicable(connec.PaymentResource{Type: "CUSTOMER"}))
	assert.Equal(t, domain.SupplierPayment, mapper.Kind())
	assert.Equal(t, domain.EntitySupplierPaymentLine, mapper.LineEntityName())

	idMaps.mapped(11, domain.EntitySupplierPayment, "SPAY-G1")
	idMaps.mapped(4, domain.EntitySupplierPaymentLine, "SLINE-G1")
	idMaps.mapped(70, domain.EntitySupplierInvoice, "SINV-G1")
	lines.On("ListPaymentLinesByPaymentID", mock.Anything, int64(11)).
		Return([]domain.PaymentLine{{LineID: 4, PaymentID: 11, InvoiceID: 70, Amount: decimal.NewFromInt(20)}}, nil).Once()

	res, err := mapper.ToRemote(context.Background(), domain.Payment{PaymentID: 11, Kind: domain.SupplierPayment})

	assert.NoError(t, err)
	assert.Equal(t, "SUPPLIER", res.Type)
	assert.Equal(t, "SPAY-G1", res.ID.First())
	if assert.Len(t, res.PaymentLines, 1) {
		assert.Equal(t, "SLINE-G1", res.PaymentLines[0].ID.First())
		assert.Equal(t, connec.NewIDRefs("SINV-G1"), res.PaymentLines[0].LinkedTransactions)
	}

	var payment domain.Payment
	assert.NoError(t, mapper.ToLocal(context.Background(), connec.PaymentResource{Type: "SUPPLIER"}, &payment))
	assert.Equal(t, "(SupplierInvoicePayment)", payment.Label)
	assert.Equal(t, "payment_supplier", payment.Operation)

	lines.AssertExpectations(t)
	idMaps.AssertExpectations(t)
}
