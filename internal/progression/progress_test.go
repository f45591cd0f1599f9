package progression

import (
	"testing"
	"time"
)

var day1 = time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

func TestNewPlayerProgress(t *testing.T) {
	p := NewPlayerProgress(day1)
	if p.Level != 1 {
		t.Errorf("Level = %d, want 1", p.Level)
	}
	if p.XPToNextLevel != 282 {
		t.Errorf("XPToNextLevel = %d, want 282", p.XPToNextLevel)
	}
	if p.CurrentRank != RankRookie {
		t.Errorf("CurrentRank = %v, want rookie", p.CurrentRank)
	}
	if p.StreakDays != 0 {
		t.Errorf("StreakDays = %d, want 0", p.StreakDays)
	}
}

func TestAddXPLevelsUp(t *testing.T) {
	p := NewPlayerProgress(day1)
	p.AddXP(300, nil, day1)
	if p.Level != 2 {
		t.Errorf("Level = %d, want 2", p.Level)
	}
	if p.XPToNextLevel != 519-300 {
		t.Errorf("XPToNextLevel = %d, want %d", p.XPToNextLevel, 519-300)
	}
}

func TestAddXPBelowThresholdKeepsLevel(t *testing.T) {
	p := NewPlayerProgress(day1)
	p.AddXP(150, nil, day1)
	if p.Level != 1 {
		t.Errorf("Level = %d, want 1 with 150 XP (level 2 needs 282)", p.Level)
	}
	if p.XPToNextLevel != 132 {
		t.Errorf("XPToNextLevel = %d, want 132", p.XPToNextLevel)
	}
}

func TestAddXPMultiLevelJump(t *testing.T) {
	p := NewPlayerProgress(day1)
	p.AddXP(1000, nil, day1)
	if p.Level != 4 {
		t.Errorf("Level = %d, want 4 after a single large award", p.Level)
	}
	if p.XPToNextLevel != XPForLevel(5)-1000 {
		t.Errorf("XPToNextLevel = %d, want %d", p.XPToNextLevel, XPForLevel(5)-1000)
	}
}

func TestAddXPNegativeClamped(t *testing.T) {
	p := NewPlayerProgress(day1)
	p.AddXP(-50, []Skill{SkillVision}, day1)
	if p.TotalXP != 0 {
		t.Errorf("TotalXP = %d, want 0", p.TotalXP)
	}
	if p.SkillXPFor(SkillVision) != 0 {
		t.Errorf("SkillXP = %d, want 0", p.SkillXPFor(SkillVision))
	}
	if p.StreakDays != 1 {
		t.Errorf("StreakDays = %d, want 1 (zero award still counts as play)", p.StreakDays)
	}
}

func TestAddXPSkillShareDropsRemainder(t *testing.T) {
	p := NewPlayerProgress(day1)
	skills := []Skill{SkillVision, SkillTiming, SkillTeamwork}
	p.AddXP(100, skills, day1)
	for _, s := range skills {
		if got := p.SkillXPFor(s); got != 33 {
			t.Errorf("SkillXPFor(%s) = %d, want 33", s, got)
		}
	}
	if p.TotalXP != 100 {
		t.Errorf("TotalXP = %d, want 100", p.TotalXP)
	}
}

func TestAddXPNoSkills(t *testing.T) {
	p := NewPlayerProgress(day1)
	p.AddXP(100, nil, day1)
	if len(p.SkillXP) != 0 {
		t.Errorf("SkillXP has %d entries, want none", len(p.SkillXP))
	}
}

func TestStreakRules(t *testing.T) {
	p := NewPlayerProgress(day1)

	p.AddXP(10, nil, day1)
	if p.StreakDays != 1 {
		t.Fatalf("first play: StreakDays = %d, want 1", p.StreakDays)
	}

	// Same calendar day does not extend.
	p.AddXP(10, nil, day1.Add(4*time.Hour))
	if p.StreakDays != 1 {
		t.Fatalf("same day: StreakDays = %d, want 1", p.StreakDays)
	}

	// Next calendar day extends, even late-night to early-morning.
	p.AddXP(10, nil, day1.AddDate(0, 0, 1).Add(-14*time.Hour))
	if p.StreakDays != 2 {
		t.Fatalf("next day: StreakDays = %d, want 2", p.StreakDays)
	}

	// A gap resets to 1.
	p.AddXP(10, nil, day1.AddDate(0, 0, 5))
	if p.StreakDays != 1 {
		t.Fatalf("after gap: StreakDays = %d, want 1", p.StreakDays)
	}
}

func TestUnlockIdempotent(t *testing.T) {
	p := NewPlayerProgress(day1)
	if !p.Unlock("first_scenario") {
		t.Fatal("first Unlock returned false")
	}
	if p.Unlock("first_scenario") {
		t.Fatal("second Unlock returned true")
	}
	if len(p.EarnedBadges) != 1 {
		t.Fatalf("EarnedBadges = %v, want one entry", p.EarnedBadges)
	}
	if !p.HasBadge("first_scenario") {
		t.Fatal("HasBadge = false after Unlock")
	}
}

func TestRankFollowsLevel(t *testing.T) {
	p := NewPlayerProgress(day1)
	p.AddXP(XPForLevel(13), nil, day1)
	if p.Level != 13 {
		t.Fatalf("Level = %d, want 13", p.Level)
	}
	if p.CurrentRank != RankPlayer {
		t.Errorf("CurrentRank = %v, want player", p.CurrentRank)
	}
}
