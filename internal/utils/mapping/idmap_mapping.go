package mapping

import (
	"github.com/SscSPs/connec_payment_sync/internal/core/domain"
	"github.com/SscSPs/connec_payment_sync/internal/models"
)

// ToModelIDMap converts a domain IDMap to a model IDMap
func ToModelIDMap(d domain.IDMap) models.IDMap {
	return models.IDMap{
		LocalID:          d.LocalID,
		LocalEntityName:  d.LocalEntityName,
		RemoteEntityGUID: d.RemoteEntityGUID,
		RemoteEntityName: d.RemoteEntityName,
		Deleted:          d.Deleted,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainIDMap converts a model IDMap to a domain IDMap
func ToDomainIDMap(m models.IDMap) domain.IDMap {
	return domain.IDMap{
		LocalID:          m.LocalID,
		LocalEntityName:  m.LocalEntityName,
		RemoteEntityGUID: m.RemoteEntityGUID,
		RemoteEntityName: m.RemoteEntityName,
		Deleted:          m.Deleted,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainIDMapSlice converts a slice of model IDMaps to a slice of domain IDMaps
func ToDomainIDMapSlice(ms []models.IDMap) []domain.IDMap {
	ds := make([]domain.IDMap, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainIDMap(m)
	}
	return ds
}
