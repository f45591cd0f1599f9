package recommend

import (
	"testing"

	"github.com/spelsmart/spelsmart/internal/content"
	"github.com/spelsmart/spelsmart/internal/telemetry"
)

func adaptDrill() content.DrillDefinition {
	return content.DrillDefinition{ID: "cone_weave_basic", ObstacleCount: 10}
}

func sessionsFor(drillID string, scores ...int) []telemetry.DrillSession {
	out := make([]telemetry.DrillSession, len(scores))
	for i, s := range scores {
		out[i] = telemetry.DrillSession{DrillID: drillID, Score: s}
	}
	return out
}

func TestAdaptFirstAttemptIsIdentity(t *testing.T) {
	a := AdaptDifficulty(adaptDrill(), nil)
	if a.TimeMultiplier != 1.0 || a.ConeDelta != 0 {
		t.Errorf("got %+v, want identity adaptation", a)
	}
}

func TestAdaptIgnoresOtherDrills(t *testing.T) {
	a := AdaptDifficulty(adaptDrill(), sessionsFor("goal_rush", 10, 10, 10))
	if a.TimeMultiplier != 1.0 || a.ConeDelta != 0 {
		t.Errorf("got %+v, want identity when no sessions match the drill", a)
	}
}

func TestAdaptHardensOnHighSuccess(t *testing.T) {
	a := AdaptDifficulty(adaptDrill(), sessionsFor("cone_weave_basic", 9, 9))
	if a.TimeMultiplier != 0.8 || a.ConeDelta != 2 {
		t.Errorf("got %+v, want harder settings at 0.9 success", a)
	}
}

func TestAdaptEasesOnLowSuccess(t *testing.T) {
	a := AdaptDifficulty(adaptDrill(), sessionsFor("cone_weave_basic", 2, 2))
	if a.TimeMultiplier != 1.3 || a.ConeDelta != -1 {
		t.Errorf("got %+v, want easier settings at 0.2 success", a)
	}
}

func TestAdaptBoundaryIsUnchanged(t *testing.T) {
	// Exactly 0.8 success: comparison is strict, settings stay put.
	a := AdaptDifficulty(adaptDrill(), sessionsFor("cone_weave_basic", 8))
	if a.TimeMultiplier != 1.0 || a.ConeDelta != 0 {
		t.Errorf("got %+v, want unchanged at exactly 0.8", a)
	}
}

func TestAdaptUsesIntegerAverage(t *testing.T) {
	// (9+8)/2 truncates to 8, so the rate is exactly 0.8 and stays put.
	a := AdaptDifficulty(adaptDrill(), sessionsFor("cone_weave_basic", 9, 8))
	if a.TimeMultiplier != 1.0 || a.ConeDelta != 0 {
		t.Errorf("got %+v, want unchanged with truncated average 8", a)
	}
}
