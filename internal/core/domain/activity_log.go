package domain

import (
	"encoding/json"
	"time"
)

// ActivityLog is an append-only audit record, one per authenticated request.
// Rows are never mutated or deleted by the application.
type ActivityLog struct {
	LogID     string          `json:"log_id"`
	UserID    string          `json:"user_id"`
	Action    string          `json:"action"`
	IPAddress string          `json:"ip_address"`
	Details   json.RawMessage `json:"details"`
	CreatedAt time.Time       `json:"created_at"`
}

// ActivityDetails is the structured payload stored in ActivityLog.Details.
// BodySize is the request payload size in bytes; the payload itself is never
// stored.
type ActivityDetails struct {
	Query      map[string]string `json:"query,omitempty"`
	BodySize   int64             `json:"body_size"`
	UserAgent  string            `json:"user_agent,omitempty"`
	Status     int               `json:"status"`
	DurationMS int64             `json:"duration_ms"`
}
