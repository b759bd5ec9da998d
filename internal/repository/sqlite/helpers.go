package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"wacomsync/internal/domain"
	"wacomsync/internal/repository"
)

// ============================================================================
// Null Type Conversion Helpers
// ============================================================================

// nullToString safely converts sql.NullString to string
func nullToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

// stringToNull safely converts string to sql.NullString
func stringToNull(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// parseTime accepts the fixed-width layout and any RFC 3339 text
func parseTime(s string) (time.Time, error) {
	if t, err := time.Parse(timeLayout, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339Nano, s)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// ============================================================================
// Row Scanning
// ============================================================================

type applyRow struct {
	id          string
	profileName sql.NullString
	target      string
	mode        string
	keepRatio   int
	appliedAt   string
}

func (r *applyRow) scanArgs() []interface{} {
	return []interface{}{&r.id, &r.profileName, &r.target, &r.mode, &r.keepRatio, &r.appliedAt}
}

func (r *applyRow) toRecord() (repository.ApplyRecord, error) {
	appliedAt, err := parseTime(r.appliedAt)
	if err != nil {
		return repository.ApplyRecord{}, fmt.Errorf("failed to parse applied_at for %s: %w", r.id, err)
	}
	return repository.ApplyRecord{
		ID:          r.id,
		ProfileName: nullToString(r.profileName),
		Profile: domain.Profile{
			Target:    r.target,
			Mode:      domain.Mode(r.mode),
			KeepRatio: r.keepRatio != 0,
		},
		AppliedAt: appliedAt,
	}, nil
}

type resultRow struct {
	device                         string
	kind                           sql.NullString
	outcome                        string
	errText                        sql.NullString
	areaX1, areaY1, areaX2, areaY2 sql.NullInt64
}

func (r *resultRow) scanArgs() []interface{} {
	return []interface{}{&r.device, &r.kind, &r.outcome, &r.errText, &r.areaX1, &r.areaY1, &r.areaX2, &r.areaY2}
}

func (r *resultRow) toRecord() repository.ResultRecord {
	rec := repository.ResultRecord{
		Device:  r.device,
		Kind:    domain.DeviceKind(nullToString(r.kind)),
		Outcome: domain.Outcome(r.outcome),
		Error:   nullToString(r.errText),
	}
	if r.areaX1.Valid && r.areaY1.Valid && r.areaX2.Valid && r.areaY2.Valid {
		rec.Area = &domain.Area{
			X1: int(r.areaX1.Int64),
			Y1: int(r.areaY1.Int64),
			X2: int(r.areaX2.Int64),
			Y2: int(r.areaY2.Int64),
		}
	}
	return rec
}

func resultInsertArgs(applyID string, position int, res domain.DeviceResult) []interface{} {
	var errText sql.NullString
	if res.Err != nil {
		errText = stringToNull(res.Err.Error())
	}

	var x1, y1, x2, y2 sql.NullInt64
	if res.Area != nil {
		x1 = sql.NullInt64{Int64: int64(res.Area.X1), Valid: true}
		y1 = sql.NullInt64{Int64: int64(res.Area.Y1), Valid: true}
		x2 = sql.NullInt64{Int64: int64(res.Area.X2), Valid: true}
		y2 = sql.NullInt64{Int64: int64(res.Area.Y2), Valid: true}
	}

	return []interface{}{
		applyID,
		position,
		res.Device.Name,
		stringToNull(string(res.Device.Kind)),
		string(res.Outcome),
		errText,
		x1, y1, x2, y2,
	}
}
