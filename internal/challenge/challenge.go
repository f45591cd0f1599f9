// Package challenge generates the deterministic daily challenge and
// tracks its one-way completion and the consecutive-day challenge streak.
package challenge

import (
	"time"

	"github.com/spelsmart/spelsmart/internal/content"
	"github.com/spelsmart/spelsmart/internal/profile"
)

// Type identifies a challenge archetype.
type Type string

const (
	TypeMasterScanner  Type = "masterScanner"
	TypeTacticalGenius Type = "tacticalGenius"
	TypeTeamPlayer     Type = "teamPlayer"
	TypeSpeedyDecision Type = "speedyDecisions"
	TypeDefenseExpert  Type = "defenseExpert"
)

// Archetype is the fixed authored tuple behind a challenge type.
type Archetype struct {
	Type          Type
	Title         string
	Description   string
	BonusXP       int
	SpecialReward string
	Difficulty    int
	ScenarioTag   string
}

// Archetypes returns the five challenge archetypes in selection order.
func Archetypes() []Archetype {
	return []Archetype{
		{
			Type:          TypeMasterScanner,
			Title:         "Master Scanner",
			Description:   "Use scanning before every decision today",
			BonusXP:       50,
			SpecialReward: "👁 Scanning Specialist Badge",
			Difficulty:    2,
			ScenarioTag:   "scanning",
		},
		{
			Type:          TypeTacticalGenius,
			Title:         "Tactical Genius",
			Description:   "Earn at least 2 excellent ratings",
			BonusXP:       75,
			SpecialReward: "🧠 Tactical Mind Badge",
			Difficulty:    3,
			ScenarioTag:   "tactics",
		},
		{
			Type:          TypeTeamPlayer,
			Title:         "Team Player",
			Description:   "Focus on teamwork and communication",
			BonusXP:       60,
			SpecialReward: "🤝 Team Spirit Badge",
			Difficulty:    2,
			ScenarioTag:   "teamwork",
		},
		{
			Type:        TypeSpeedyDecision,
			Title:       "Quick Decisions",
			Description: "Decide fast in every scenario",
			BonusXP:     40,
			Difficulty:  1,
			ScenarioTag: "transition",
		},
		{
			Type:          TypeDefenseExpert,
			Title:         "Defense Expert",
			Description:   "Master defensive situations today",
			BonusXP:       65,
			SpecialReward: "🛡 Defense Master Badge",
			Difficulty:    3,
			ScenarioTag:   "defence",
		},
	}
}

// ArchetypeForDate selects the archetype for a calendar date. The same
// day of year always maps to the same archetype, with no persisted state.
func ArchetypeForDate(date time.Time) Archetype {
	archetypes := Archetypes()
	return archetypes[date.YearDay()%len(archetypes)]
}

// DailyChallenge is one generated challenge. Immutable except for the
// single false→true IsCompleted transition.
type DailyChallenge struct {
	ID            string           `json:"id"`
	Date          time.Time        `json:"date"`
	Type          Type             `json:"type"`
	Title         string           `json:"title"`
	Description   string           `json:"description"`
	Scenario      content.Scenario `json:"scenario"`
	BonusXP       int              `json:"bonusXP"`
	SpecialReward string           `json:"specialReward,omitempty"`
	AgeBand       profile.AgeBand  `json:"ageBand"`
	Difficulty    int              `json:"difficulty"`
	IsCompleted   bool             `json:"isCompleted"`
}

// IDForDate derives the challenge id from its calendar date.
func IDForDate(date time.Time) string {
	return "daily_" + date.Format("2006-01-02")
}

// Generate builds the challenge for a date and age band. The archetype
// selection is pure; the embedded scenario instance carries a fresh id.
func Generate(date time.Time, band profile.AgeBand, scenarios *content.Scenarios) DailyChallenge {
	a := ArchetypeForDate(date)

	scenario, ok := scenarios.FirstWithTag(a.ScenarioTag)
	if !ok {
		// Authored content missing for the tag; degrade to a stub so
		// generation never fails.
		scenario = content.Scenario{
			ID:          "daily_" + string(a.Type),
			Title:       a.Title,
			Description: a.Description,
			Difficulty:  a.Difficulty,
			Tags:        []string{"daily_challenge"},
		}
	}

	return DailyChallenge{
		ID:            IDForDate(date),
		Date:          date,
		Type:          a.Type,
		Title:         a.Title,
		Description:   a.Description,
		Scenario:      scenario.Instantiate(band),
		BonusXP:       a.BonusXP,
		SpecialReward: a.SpecialReward,
		AgeBand:       band,
		Difficulty:    a.Difficulty,
	}
}
