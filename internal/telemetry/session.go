// Package telemetry defines the per-drill session record produced by a
// completed training attempt. A session is created at drill start,
// finalized exactly once at drill end, and never mutated afterward.
package telemetry

import (
	"time"

	"github.com/google/uuid"

	"github.com/spelsmart/spelsmart/internal/profile"
)

// DrillSession is one record per completed drill attempt.
type DrillSession struct {
	ID                uuid.UUID       `json:"id"`
	DrillID           string          `json:"drillId"`
	AgeBand           profile.AgeBand `json:"ageBand"`
	StartAt           time.Time       `json:"startAt"`
	EndAt             time.Time       `json:"endAt"`
	DurationSec       float64         `json:"durationSec"`
	Score             int             `json:"score"`
	ConesCollected    int             `json:"conesCollected"`
	ScansCount        int             `json:"scansCount"`
	TouchesMovedCount int             `json:"touchesMovedCount"`
}

// Start creates a new session record for a drill attempt.
func Start(drillID string, ageBand profile.AgeBand, startAt time.Time) *DrillSession {
	return &DrillSession{
		ID:      uuid.New(),
		DrillID: drillID,
		AgeBand: ageBand,
		StartAt: startAt,
	}
}

// Finalize stamps the end time and derives the duration, exactly once.
// Calling it on an already-finalized session is a no-op; the record is
// immutable from then on.
func (s *DrillSession) Finalize(endAt time.Time) {
	if s.Finalized() {
		return
	}
	s.EndAt = endAt
	s.DurationSec = endAt.Sub(s.StartAt).Seconds()
}

// Finalized reports whether the session has been closed out.
func (s *DrillSession) Finalized() bool {
	return !s.EndAt.IsZero()
}
