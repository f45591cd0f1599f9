// Package recommend ranks drills for a player and adapts drill difficulty
// from session history. Everything here is a pure computation over a
// snapshot: fixed-threshold heuristics, no learned state.
package recommend

import (
	"github.com/spelsmart/spelsmart/internal/content"
	"github.com/spelsmart/spelsmart/internal/telemetry"
)

// Fixed adaptation thresholds. Success above the upper bound tightens the
// drill; below the lower bound relaxes it. Comparisons are strict, so a
// success rate of exactly 0.8 stays unchanged.
const (
	hardenAboveRate = 0.8
	easeBelowRate   = 0.3

	hardenTimeMultiplier = 0.8
	easeTimeMultiplier   = 1.3

	hardenConeDelta = 2
	easeConeDelta   = -1
)

// Adaptation adjusts a drill's time limit and obstacle count. It is a
// pure output of the calculation and is never persisted.
type Adaptation struct {
	TimeMultiplier float64 `json:"timeMultiplier"`
	ConeDelta      int     `json:"coneDelta"`
	Reason         string  `json:"reason"`
}

// AdaptDifficulty computes the adjustment for a drill from the subset of
// history matching its id. No prior sessions yields the identity
// adaptation.
func AdaptDifficulty(drill content.DrillDefinition, history []telemetry.DrillSession) Adaptation {
	var total, count int
	for _, s := range history {
		if s.DrillID == drill.ID {
			total += s.Score
			count++
		}
	}

	if count == 0 {
		return Adaptation{
			TimeMultiplier: 1.0,
			ConeDelta:      0,
			Reason:         "First attempt - standard settings",
		}
	}

	// Integer average, matching the scoring done elsewhere.
	averageScore := total / count
	obstacles := drill.ObstacleCount
	if obstacles < 1 {
		obstacles = 1
	}
	successRate := float64(averageScore) / float64(obstacles)

	switch {
	case successRate > hardenAboveRate:
		return Adaptation{
			TimeMultiplier: hardenTimeMultiplier,
			ConeDelta:      hardenConeDelta,
			Reason:         "Raising the difficulty - you are handling this well!",
		}
	case successRate < easeBelowRate:
		return Adaptation{
			TimeMultiplier: easeTimeMultiplier,
			ConeDelta:      easeConeDelta,
			Reason:         "Lowering the difficulty for better learning",
		}
	default:
		return Adaptation{
			TimeMultiplier: 1.0,
			ConeDelta:      0,
			Reason:         "The difficulty is right for your development",
		}
	}
}
