package badges

import (
	"github.com/spelsmart/spelsmart/internal/recommend"
	"github.com/spelsmart/spelsmart/internal/telemetry"
)

// HistoryCounter derives action counts from the drill session log. Scans
// are summed across sessions; an "excellent_rating" action is a session
// whose feedback rating bucket is excellent.
type HistoryCounter struct {
	sessions []telemetry.DrillSession
}

// NewHistoryCounter creates a counter over chronological session history.
func NewHistoryCounter(sessions []telemetry.DrillSession) *HistoryCounter {
	return &HistoryCounter{sessions: sessions}
}

// Count implements ActionCounter.
func (c *HistoryCounter) Count(action, minQuality string) int {
	switch action {
	case ActionScan:
		total := 0
		for _, s := range c.sessions {
			total += s.ScansCount
		}
		return total
	case ActionExcellentRating:
		total := 0
		for _, s := range c.sessions {
			if isExcellent(s) {
				total++
			}
		}
		return total
	}
	return 0
}

// ConsecutiveCount implements ActionCounter: the unbroken run of the
// action counted backward from the most recent session.
func (c *HistoryCounter) ConsecutiveCount(action, minQuality string) int {
	if action != ActionExcellentRating {
		return c.Count(action, minQuality)
	}
	run := 0
	for i := len(c.sessions) - 1; i >= 0; i-- {
		if !isExcellent(c.sessions[i]) {
			break
		}
		run++
	}
	return run
}

func isExcellent(s telemetry.DrillSession) bool {
	return recommend.GenerateFeedback(&s).OverallRating == recommend.RatingExcellent
}
