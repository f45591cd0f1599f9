package badges

import (
	"testing"

	"github.com/spelsmart/spelsmart/internal/telemetry"
)

func sessionWith(score, scans int) telemetry.DrillSession {
	return telemetry.DrillSession{Score: score, ScansCount: scans}
}

func TestHistoryCounterScans(t *testing.T) {
	c := NewHistoryCounter([]telemetry.DrillSession{
		sessionWith(3, 4),
		sessionWith(5, 0),
		sessionWith(9, 6),
	})
	if got := c.Count(ActionScan, ""); got != 10 {
		t.Errorf("Count(scan) = %d, want 10", got)
	}
}

func TestHistoryCounterExcellentRatings(t *testing.T) {
	c := NewHistoryCounter([]telemetry.DrillSession{
		sessionWith(8, 0),
		sessionWith(7, 0),
		sessionWith(9, 0),
		sessionWith(10, 0),
	})
	if got := c.Count(ActionExcellentRating, ""); got != 3 {
		t.Errorf("Count(excellent_rating) = %d, want 3", got)
	}
	// The run counts back from the newest session and stops at the 7.
	if got := c.ConsecutiveCount(ActionExcellentRating, ""); got != 2 {
		t.Errorf("ConsecutiveCount(excellent_rating) = %d, want 2", got)
	}
}

func TestHistoryCounterUnknownAction(t *testing.T) {
	c := NewHistoryCounter([]telemetry.DrillSession{sessionWith(10, 10)})
	if got := c.Count("tackle", ""); got != 0 {
		t.Errorf("Count(tackle) = %d, want 0", got)
	}
}
