package challenge

import (
	"testing"
	"time"

	"github.com/spelsmart/spelsmart/internal/content"
	"github.com/spelsmart/spelsmart/internal/profile"
)

func TestArchetypeForDateIsDeterministic(t *testing.T) {
	date := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
	a := ArchetypeForDate(date)
	for hour := 0; hour < 24; hour += 6 {
		if got := ArchetypeForDate(date.Add(time.Duration(hour) * time.Hour)); got.Type != a.Type {
			t.Fatalf("archetype changed within the same date: %v vs %v", got.Type, a.Type)
		}
	}

	// Day-of-year selection: Jan 1 has YearDay 1.
	jan1 := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	if got := ArchetypeForDate(jan1); got.Type != Archetypes()[1].Type {
		t.Errorf("Jan 1 archetype = %v, want %v", got.Type, Archetypes()[1].Type)
	}
}

func TestArchetypeTuples(t *testing.T) {
	want := []struct {
		typ     Type
		bonusXP int
		diff    int
	}{
		{TypeMasterScanner, 50, 2},
		{TypeTacticalGenius, 75, 3},
		{TypeTeamPlayer, 60, 2},
		{TypeSpeedyDecision, 40, 1},
		{TypeDefenseExpert, 65, 3},
	}
	got := Archetypes()
	if len(got) != len(want) {
		t.Fatalf("got %d archetypes, want %d", len(got), len(want))
	}
	for i, w := range want {
		if got[i].Type != w.typ || got[i].BonusXP != w.bonusXP || got[i].Difficulty != w.diff {
			t.Errorf("archetype[%d] = %v/%d XP/diff %d, want %v/%d/%d",
				i, got[i].Type, got[i].BonusXP, got[i].Difficulty, w.typ, w.bonusXP, w.diff)
		}
	}
}

func TestIDForDate(t *testing.T) {
	date := time.Date(2026, 8, 29, 23, 59, 0, 0, time.UTC)
	if got := IDForDate(date); got != "daily_2026-08-29" {
		t.Errorf("IDForDate = %q, want daily_2026-08-29", got)
	}
}

func TestGenerateUsesTaggedScenario(t *testing.T) {
	date := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
	a := ArchetypeForDate(date)

	c := Generate(date, profile.AgeBand9To11, content.BuiltinScenarios())
	if c.ID != IDForDate(date) || c.Type != a.Type || c.BonusXP != a.BonusXP {
		t.Errorf("challenge = %+v, want archetype %v applied", c, a.Type)
	}
	if !c.Scenario.HasTag(a.ScenarioTag) {
		t.Errorf("scenario %s lacks tag %q", c.Scenario.ID, a.ScenarioTag)
	}
	if c.Scenario.InstanceID == "" {
		t.Error("scenario not instantiated")
	}
	if c.IsCompleted {
		t.Error("generated challenge already completed")
	}
}

func TestGenerateFallsBackWithoutContent(t *testing.T) {
	date := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
	c := Generate(date, profile.AgeBand9To11, content.NewScenarios(nil))
	if c.Scenario.Title == "" {
		t.Error("fallback scenario has no title")
	}
	if c.BonusXP != ArchetypeForDate(date).BonusXP {
		t.Errorf("BonusXP = %d, want archetype value", c.BonusXP)
	}
}
