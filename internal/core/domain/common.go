package domain

import "time"

// AuditFields are embedded in persisted entities to track row lifecycle.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}
