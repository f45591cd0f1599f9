package badges

import (
	"testing"
	"time"

	"github.com/spelsmart/spelsmart/internal/progression"
)

type stubCounter struct {
	count       int
	consecutive int
}

func (c *stubCounter) Count(action, minQuality string) int            { return c.count }
func (c *stubCounter) ConsecutiveCount(action, minQuality string) int { return c.consecutive }

func freshProgress() *progression.PlayerProgress {
	return progression.NewPlayerProgress(time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC))
}

func unlockedIDs(e *Evaluator, p *progression.PlayerProgress) []string {
	return e.NewlyUnlockedIDs(p, nil)
}

func TestFreshProgressUnlocksNothing(t *testing.T) {
	e := NewEvaluator(DefaultCatalog(), nil)
	if ids := unlockedIDs(e, freshProgress()); len(ids) != 0 {
		t.Errorf("got %v, want no badges for a fresh player", ids)
	}
}

func TestFirstScenarioUnlocksOnFirstXP(t *testing.T) {
	e := NewEvaluator(DefaultCatalog(), nil)
	p := freshProgress()
	p.AddXP(10, nil, time.Now())

	ids := unlockedIDs(e, p)
	if len(ids) != 1 || ids[0] != "first_scenario" {
		t.Errorf("got %v, want [first_scenario]", ids)
	}
}

func TestEarnedBadgeNeverReturnedAgain(t *testing.T) {
	e := NewEvaluator(DefaultCatalog(), nil)
	p := freshProgress()
	p.AddXP(10, nil, time.Now())
	p.Unlock("first_scenario")

	if ids := unlockedIDs(e, p); len(ids) != 0 {
		t.Errorf("got %v, want none once earned", ids)
	}
}

func TestLevelBadge(t *testing.T) {
	e := NewEvaluator(DefaultCatalog(), nil)
	p := freshProgress()
	p.AddXP(progression.XPForLevel(5), nil, time.Now())

	ids := unlockedIDs(e, p)
	if !contains(ids, "level_5") {
		t.Errorf("got %v, want level_5 at level %d", ids, p.Level)
	}
}

func TestSkillBadge(t *testing.T) {
	e := NewEvaluator(DefaultCatalog(), nil)
	p := freshProgress()
	// Skill level 5 needs 50*4^2 = 800 skill XP.
	p.AddXP(800, []progression.Skill{progression.SkillVision}, time.Now())

	ids := unlockedIDs(e, p)
	if !contains(ids, "vision_master") {
		t.Errorf("got %v, want vision_master at vision level %d", ids, p.SkillLevel(progression.SkillVision))
	}
	if contains(ids, "tactical_genius") {
		t.Errorf("got %v, tactical_genius needs all core skills", ids)
	}
}

func TestStreakBadge(t *testing.T) {
	e := NewEvaluator(DefaultCatalog(), nil)
	p := freshProgress()
	day := time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		p.AddXP(1, nil, day.AddDate(0, 0, i))
	}

	if p.StreakDays != 7 {
		t.Fatalf("StreakDays = %d, want 7", p.StreakDays)
	}
	if ids := unlockedIDs(e, p); !contains(ids, "streak_7") {
		t.Errorf("got %v, want streak_7", ids)
	}
}

func TestActionBadgesNeedACounter(t *testing.T) {
	e := NewEvaluator(DefaultCatalog(), nil)
	p := freshProgress()
	p.AddXP(10, nil, time.Now())
	p.Unlock("first_scenario")

	if ids := unlockedIDs(e, p); len(ids) != 0 {
		t.Errorf("got %v, action badges must stay locked without a counter", ids)
	}
}

func TestScannerBadgeWithCounter(t *testing.T) {
	e := NewEvaluator(DefaultCatalog(), &stubCounter{count: 50})
	p := freshProgress()
	p.Unlock("first_scenario")

	if ids := unlockedIDs(e, p); !contains(ids, "scanner") {
		t.Errorf("got %v, want scanner at 50 scans", ids)
	}
}

func TestPerfectionistNeedsConsecutiveRun(t *testing.T) {
	p := freshProgress()
	p.Unlock("first_scenario")
	p.Unlock("scanner")

	e := NewEvaluator(DefaultCatalog(), &stubCounter{count: 15, consecutive: 9})
	if ids := unlockedIDs(e, p); contains(ids, "perfectionist") {
		t.Errorf("got %v, a broken run must not unlock perfectionist", ids)
	}

	e = NewEvaluator(DefaultCatalog(), &stubCounter{count: 15, consecutive: 10})
	if ids := unlockedIDs(e, p); !contains(ids, "perfectionist") {
		t.Errorf("got %v, want perfectionist at a run of 10", ids)
	}
}

func TestCatalogOrderPreserved(t *testing.T) {
	e := NewEvaluator(DefaultCatalog(), nil)
	all := e.All()
	if len(all) != 7 {
		t.Fatalf("catalog has %d badges, want 7", len(all))
	}
	if all[0].ID != "first_scenario" {
		t.Errorf("first badge = %s, want first_scenario", all[0].ID)
	}
	if _, ok := e.ByID("nope"); ok {
		t.Error("ByID found an unknown id")
	}
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
