package domain

// Local entity tags used as the second half of the correspondence key.
const (
	EntityPayment             = "Payment"
	EntityPaymentLine         = "PaymentLine"
	EntityInvoice             = "Invoice"
	EntitySupplierPayment     = "SupplierPayment"
	EntitySupplierPaymentLine = "SupplierPaymentLine"
	EntitySupplierInvoice     = "SupplierInvoice"
)

// IDMap associates a local record, identified by (LocalID, LocalEntityName), with its
// counterpart in the remote system.
type IDMap struct {
	LocalID          int64  `json:"localID"`
	LocalEntityName  string `json:"localEntityName"`
	RemoteEntityGUID string `json:"remoteEntityGUID"`
	RemoteEntityName string `json:"remoteEntityName"` // e.g. "PAYMENT", informational
	Deleted          bool   `json:"deleted"`
	AuditFields
}

// SameRemote reports whether the correspondence already points at guid.
func (m IDMap) SameRemote(guid string) bool {
	return m.RemoteEntityGUID == guid
}
