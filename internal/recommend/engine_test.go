package recommend

import (
	"testing"

	"github.com/spelsmart/spelsmart/internal/content"
	"github.com/spelsmart/spelsmart/internal/profile"
	"github.com/spelsmart/spelsmart/internal/telemetry"
)

func testCatalog() *content.Drills {
	young := []profile.AgeBand{profile.AgeBand9To11}
	return content.NewDrills([]content.DrillDefinition{
		{ID: "pass_drill", Title: "Passing", AgeBands: young, Domain: content.DomainAttack, ObstacleCount: 10, SkillTags: []string{"passing"}},
		{ID: "def_drill", Title: "Defending", AgeBands: young, Domain: content.DomainDefence, ObstacleCount: 10, SkillTags: []string{"defence"}},
		{ID: "neutral_drill", Title: "Dribbling", AgeBands: young, Domain: content.DomainTransition, ObstacleCount: 10, SkillTags: []string{"dribbling"}},
		{ID: "adult_drill", Title: "Adults Only", AgeBands: []profile.AgeBand{profile.AgeBand16To19}, Domain: content.DomainAttack, ObstacleCount: 10, SkillTags: []string{"passing"}},
	})
}

func midfielder() *profile.Avatar {
	return profile.NewAvatar("Kim", profile.AgeBand9To11, profile.PositionMidfielder)
}

func TestRecommendFiltersByAgeBand(t *testing.T) {
	recs := NewEngine(testCatalog()).RecommendDrills(midfielder(), nil)
	for _, r := range recs {
		if r.Drill.ID == "adult_drill" {
			t.Fatal("recommended a drill outside the avatar's age band")
		}
	}
}

func TestRecommendNoHistoryUsesPositionAffinity(t *testing.T) {
	recs := NewEngine(testCatalog()).RecommendDrills(midfielder(), nil)
	if len(recs) != 3 {
		t.Fatalf("got %d recommendations, want 3", len(recs))
	}
	if recs[0].Drill.ID != "pass_drill" || recs[0].Priority != PriorityMedium {
		t.Errorf("top = %s (%v), want pass_drill at medium priority", recs[0].Drill.ID, recs[0].Priority)
	}
	for _, r := range recs[1:] {
		if r.Priority != PriorityLow {
			t.Errorf("%s priority = %v, want low", r.Drill.ID, r.Priority)
		}
	}
}

func TestRecommendWeakDomainRaisesPriority(t *testing.T) {
	history := []telemetry.DrillSession{
		{DrillID: "pass_drill", Score: 2},
		{DrillID: "neutral_drill", Score: 9},
	}
	recs := NewEngine(testCatalog()).RecommendDrills(midfielder(), history)

	if recs[0].Drill.ID != "pass_drill" || recs[0].Priority != PriorityHigh {
		t.Errorf("top = %s (%v), want pass_drill at high priority (position + weak domain)",
			recs[0].Drill.ID, recs[0].Priority)
	}
	for _, r := range recs {
		if r.Drill.ID == "neutral_drill" && r.Priority != PriorityLow {
			t.Errorf("neutral_drill priority = %v, want low for the strong domain", r.Priority)
		}
	}
}

func TestRecommendLowPriorityFloor(t *testing.T) {
	// A forward gets no affinity from this catalog and, with balanced
	// history, no weak domains; the floor still returns three drills.
	history := []telemetry.DrillSession{
		{DrillID: "pass_drill", Score: 5},
		{DrillID: "def_drill", Score: 5},
		{DrillID: "neutral_drill", Score: 5},
	}
	avatar := profile.NewAvatar("Max", profile.AgeBand9To11, profile.PositionGoalkeeper)
	recs := NewEngine(testCatalog()).RecommendDrills(avatar, history)
	if len(recs) != 3 {
		t.Fatalf("got %d recommendations, want the floor of 3", len(recs))
	}
	for _, r := range recs {
		if r.Priority != PriorityLow {
			t.Errorf("%s priority = %v, want low", r.Drill.ID, r.Priority)
		}
	}
}

func TestRecommendOnlySamplesRecentSessions(t *testing.T) {
	// Ten old poor attack sessions followed by ten strong ones: only the
	// recent window counts, so attack is not a weak domain.
	var history []telemetry.DrillSession
	for i := 0; i < 10; i++ {
		history = append(history, telemetry.DrillSession{DrillID: "pass_drill", Score: 0})
	}
	for i := 0; i < 5; i++ {
		history = append(history,
			telemetry.DrillSession{DrillID: "pass_drill", Score: 9},
			telemetry.DrillSession{DrillID: "neutral_drill", Score: 9})
	}

	recs := NewEngine(testCatalog()).RecommendDrills(midfielder(), history)
	if recs[0].Drill.ID != "pass_drill" || recs[0].Priority != PriorityMedium {
		t.Errorf("top = %s (%v), want pass_drill at medium (old sessions ignored)",
			recs[0].Drill.ID, recs[0].Priority)
	}
}

func TestRecommendCarriesAdaptedSettings(t *testing.T) {
	history := sessionsFor("pass_drill", 9, 9)
	recs := NewEngine(testCatalog()).RecommendDrills(midfielder(), history)
	for _, r := range recs {
		if r.Drill.ID == "pass_drill" {
			if r.AdaptedSettings.TimeMultiplier != 0.8 || r.AdaptedSettings.ConeDelta != 2 {
				t.Errorf("adapted settings = %+v, want harder settings", r.AdaptedSettings)
			}
			return
		}
	}
	t.Fatal("pass_drill not recommended")
}
