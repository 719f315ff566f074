package domain

import "time"

// ReportJob is the typed payload of a queued report-generation job. It is an
// ephemeral unit of work, not a persisted entity: the worker re-reads
// everything else from the store at execution time.
type ReportJob struct {
	JobID       string       `json:"job_id"`
	UserID      string       `json:"user_id"`
	Filters     ReportFilter `json:"filters"`
	Attempt     int          `json:"attempt"`
	RequestedAt time.Time    `json:"requested_at"`
}
