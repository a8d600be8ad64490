package dto

import (
	"time"

	"github.com/SscSPs/connec_payment_sync/internal/core/domain"
)

// RecordIDMapRequest defines the data needed to record a correspondence.
type RecordIDMapRequest struct {
	LocalID          int64  `json:"localID" binding:"required,gt=0"`
	LocalEntityName  string `json:"localEntityName" binding:"required,max=64"`
	RemoteEntityGUID string `json:"remoteEntityGUID" binding:"required,max=255"`
	RemoteEntityName string `json:"remoteEntityName" binding:"omitempty,max=64"`
	// Replace allows pointing an existing correspondence at a different remote guid.
	Replace bool `json:"replace"`
}

// IDMapResponse defines the data returned for a correspondence.
type IDMapResponse struct {
	LocalID          int64     `json:"localID"`
	LocalEntityName  string    `json:"localEntityName"`
	RemoteEntityGUID string    `json:"remoteEntityGUID"`
	RemoteEntityName string    `json:"remoteEntityName,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	CreatedBy        string    `json:"createdBy"`
	LastUpdatedAt    time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy    string    `json:"lastUpdatedBy"`
}

// ToIDMapResponse converts a domain.IDMap to IDMapResponse DTO
func ToIDMapResponse(m *domain.IDMap) IDMapResponse {
	return IDMapResponse{
		LocalID:          m.LocalID,
		LocalEntityName:  m.LocalEntityName,
		RemoteEntityGUID: m.RemoteEntityGUID,
		RemoteEntityName: m.RemoteEntityName,
		CreatedAt:        m.CreatedAt,
		CreatedBy:        m.CreatedBy,
		LastUpdatedAt:    m.LastUpdatedAt,
		LastUpdatedBy:    m.LastUpdatedBy,
	}
}

// ListIDMapsParams defines query parameters for listing correspondences.
type ListIDMapsParams struct {
	EntityName string `form:"entityName" binding:"required,max=64"`
	Limit      int    `form:"limit" binding:"omitempty,min=1,max=500"`
	NextToken  string `form:"nextToken"`
}

// ListIDMapsResponse wraps a page of correspondences.
type ListIDMapsResponse struct {
	IDMaps    []IDMapResponse `json:"idMaps"`
	NextToken *string         `json:"nextToken,omitempty"`
}
