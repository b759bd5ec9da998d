package repository

import (
	"context"
	"time"

	"wacomsync/internal/domain"
)

// ApplyRecord is a stored apply run
type ApplyRecord struct {
	ID          string
	ProfileName string
	Profile     domain.Profile
	AppliedAt   time.Time
	Results     []ResultRecord
}

// ResultRecord is a stored per-device outcome
type ResultRecord struct {
	Device  string
	Kind    domain.DeviceKind
	Outcome domain.Outcome
	Error   string
	Area    *domain.Area
}

// Failed returns the number of devices that failed in the run
func (r ApplyRecord) Failed() int {
	n := 0
	for _, res := range r.Results {
		if res.Outcome == domain.OutcomeFailed {
			n++
		}
	}
	return n
}

// HistoryRepository stores apply runs
type HistoryRepository interface {
	// RecordApply stores a report and returns the run ID
	RecordApply(ctx context.Context, report *domain.ApplyReport) (string, error)

	// ListApplies returns the most recent runs first; limit <= 0 means all
	ListApplies(ctx context.Context, limit int) ([]ApplyRecord, error)

	// Close releases resources
	Close() error
}
