// Package connec holds the typed schema of the remote business-data API resources
// exchanged by the sync service.
package connec

import (
	"bytes"
	"fmt"
	"sort"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
)

// IDRef is the remote API's reference object: {"id": "<guid>"}.
type IDRef struct {
	ID string `json:"id" validate:"required"`
}

// IDRefs is the list form the remote API uses for ids and links.
type IDRefs []IDRef

// NewIDRefs wraps a single guid.
func NewIDRefs(guid string) IDRefs {
	return IDRefs{{ID: guid}}
}

// First returns the first referenced guid, or "" when the list is empty.
func (r IDRefs) First() string {
	if len(r) == 0 {
		return ""
	}
	return r[0].ID
}

// Amount is a decimal encoded as a bare JSON number. Decoding accepts numbers and numeric strings.
type Amount decimal.Decimal

// NewAmount converts a decimal into an Amount.
func NewAmount(d decimal.Decimal) Amount {
	return Amount(d)
}

// Decimal returns the underlying decimal.
func (a Amount) Decimal() decimal.Decimal {
	return decimal.Decimal(a)
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(decimal.Decimal(a).String()), nil
}

func (a *Amount) UnmarshalJSON(b []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(b); err != nil {
		return err
	}
	*a = Amount(d)
	return nil
}

// PaymentLineResource is one entry of a payment's payment_lines.
type PaymentLineResource struct {
	ID                 IDRefs `json:"id,omitempty" validate:"omitempty,dive"`
	Amount             Amount `json:"amount"`
	LinkedTransactions IDRefs `json:"linked_transactions,omitempty" validate:"omitempty,dive"`
}

// PaymentResource is the remote payment resource. Base scalar fields are pointers so an
// absent field can be told apart from a zero value.
type PaymentResource struct {
	Type             string                `json:"type" validate:"required"`
	ID               IDRefs                `json:"id,omitempty" validate:"omitempty,dive"`
	TransactionDate  *time.Time            `json:"transaction_date,omitempty"`
	TotalAmount      *Amount               `json:"total_amount,omitempty"`
	Currency         *string               `json:"currency,omitempty"`
	PaymentReference *string               `json:"payment_reference,omitempty"`
	PaymentMethod    *string               `json:"payment_method,omitempty"`
	PrivateNote      *string               `json:"private_note,omitempty"`
	PaymentLines     []PaymentLineResource `json:"payment_lines" validate:"dive"`

	// Extra keeps top-level fields this schema does not know about.
	Extra map[string]json.RawMessage `json:"-"`
}

var knownPaymentFields = map[string]struct{}{
	"type": {}, "id": {}, "transaction_date": {}, "total_amount": {}, "currency": {},
	"payment_reference": {}, "payment_method": {}, "private_note": {}, "payment_lines": {},
}

// plainPaymentResource drops the custom codec methods.
type plainPaymentResource PaymentResource

// MarshalJSON emits the known fields in declaration order followed by Extra in key order.
func (p PaymentResource) MarshalJSON() ([]byte, error) {
	known, err := json.Marshal(plainPaymentResource(p))
	if err != nil {
		return nil, err
	}
	extraKeys := make([]string, 0, len(p.Extra))
	for k := range p.Extra {
		if _, ok := knownPaymentFields[k]; !ok {
			extraKeys = append(extraKeys, k)
		}
	}
	if len(extraKeys) == 0 {
		return known, nil
	}
	sort.Strings(extraKeys)

	var buf bytes.Buffer
	buf.Write(known[:len(known)-1])
	for _, k := range extraKeys {
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.WriteByte(',')
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(p.Extra[k])
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes the known fields and collects the rest into Extra.
func (p *PaymentResource) UnmarshalJSON(b []byte) error {
	var plain plainPaymentResource
	if err := json.Unmarshal(b, &plain); err != nil {
		return err
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	for k, v := range raw {
		if _, ok := knownPaymentFields[k]; ok {
			continue
		}
		if plain.Extra == nil {
			plain.Extra = make(map[string]json.RawMessage)
		}
		plain.Extra[k] = v
	}
	*p = PaymentResource(plain)
	return nil
}

var validate = validator.New()

// Validate checks the structural constraints of an inbound payload.
func (p PaymentResource) Validate() error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("invalid payment resource: %w", err)
	}
	return nil
}

// DecodePaymentResource parses and validates a raw payload.
func DecodePaymentResource(b []byte) (PaymentResource, error) {
	var p PaymentResource
	if err := json.Unmarshal(b, &p); err != nil {
		return PaymentResource{}, fmt.Errorf("failed to decode payment resource: %w", err)
	}
	if err := p.Validate(); err != nil {
		return PaymentResource{}, err
	}
	return p, nil
}
