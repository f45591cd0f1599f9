package progression

import "math"

const (
	// SkillXPPerLevel scales the per-skill XP curve. A skill needs
	// 50*level^2 XP to complete a level, deliberately slower than the
	// main level curve so skill mastery and overall level diverge.
	SkillXPPerLevel = 50
)

// XPForLevel returns the total XP required to reach the given level.
// Exponential curve: floor(100 * level^1.5). XPForLevel(1) = 100, so
// level 1 is the starting level and level 2 costs 282 total XP.
func XPForLevel(level int) int {
	if level < 1 {
		return 0
	}
	return int(100.0 * math.Pow(float64(level), 1.5))
}

// LevelFromXP returns the largest level L >= 1 with XPForLevel(L) <= totalXP.
// Levels are unbounded above.
func LevelFromXP(totalXP int) int {
	level := 1
	for totalXP >= XPForLevel(level+1) {
		level++
	}
	return level
}

// SkillLevelFromXP returns the skill level for the given skill XP:
// floor(sqrt(xp/50)) + 1, minimum 1.
func SkillLevelFromXP(xp int) int {
	if xp < 0 {
		return 1
	}
	level := int(math.Sqrt(float64(xp)/float64(SkillXPPerLevel))) + 1
	if level < 1 {
		return 1
	}
	return level
}

// SkillProgress returns the fraction in [0,1] of progress between the
// skill-XP thresholds for level-1 and level (50*(level-1)^2 and
// 50*level^2). Returns 1.0 when the span is non-positive.
func SkillProgress(xp, level int) float64 {
	lower := SkillXPPerLevel * (level - 1) * (level - 1)
	upper := SkillXPPerLevel * level * level
	if upper <= lower {
		return 1.0
	}
	frac := float64(xp-lower) / float64(upper-lower)
	if frac < 0 {
		return 0
	}
	if frac > 1 {
		return 1
	}
	return frac
}
