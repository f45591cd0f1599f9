package badges

import (
	"github.com/spelsmart/spelsmart/internal/progression"
	"github.com/spelsmart/spelsmart/internal/telemetry"
)

// Requirements is a conjunction of optional predicates. A nil field is
// vacuously satisfied, so new badge types that only need threshold checks
// are pure catalog data.
type Requirements struct {
	MinLevel      *int                      `json:"minLevel,omitempty"`
	MinXP         *int                      `json:"minXP,omitempty"`
	SkillLevels   map[progression.Skill]int `json:"skillLevels,omitempty"`
	MinStreakDays *int                      `json:"minStreakDays,omitempty"`
	Actions       []ActionRequirement       `json:"actions,omitempty"`
}

// ActionRequirement counts a tactical action performed at or above a
// quality threshold. Consecutive requires the count to be an unbroken run.
type ActionRequirement struct {
	Action      string `json:"action"`
	Count       int    `json:"count"`
	MinQuality  string `json:"minQuality,omitempty"`
	Consecutive bool   `json:"consecutive,omitempty"`
}

// ActionCounter supplies action-history counts for action requirements.
// It is an extension point: the evaluator works without one, treating
// action predicates as unsatisfied rather than erroring.
type ActionCounter interface {
	// Count returns how many times the action was performed at or above
	// the given quality ("" means any quality).
	Count(action, minQuality string) int

	// ConsecutiveCount returns the length of the current unbroken run of
	// the action at or above the given quality.
	ConsecutiveCount(action, minQuality string) int
}

// Met reports whether every set predicate holds for the given progress
// snapshot. The recent session and counter may be nil; action
// requirements are then unsatisfied, never an error.
func (r Requirements) Met(p *progression.PlayerProgress, session *telemetry.DrillSession, counter ActionCounter) bool {
	if r.MinLevel != nil && p.Level < *r.MinLevel {
		return false
	}
	if r.MinXP != nil && p.TotalXP < *r.MinXP {
		return false
	}
	for skill, minLevel := range r.SkillLevels {
		if p.SkillLevel(skill) < minLevel {
			return false
		}
	}
	if r.MinStreakDays != nil && p.StreakDays < *r.MinStreakDays {
		return false
	}
	for _, ar := range r.Actions {
		if counter == nil {
			return false
		}
		n := counter.Count(ar.Action, ar.MinQuality)
		if ar.Consecutive {
			n = counter.ConsecutiveCount(ar.Action, ar.MinQuality)
		}
		if n < ar.Count {
			return false
		}
	}
	return true
}
