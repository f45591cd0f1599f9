package content

import (
	"github.com/google/uuid"

	"github.com/spelsmart/spelsmart/internal/profile"
)

// Scenario is an authored tactical situation. The engine treats scenario
// content as static data; only the daily challenge generator consumes it.
type Scenario struct {
	ID                 string            `json:"id"`
	InstanceID         string            `json:"instanceId,omitempty"`
	Title              string            `json:"title"`
	Description        string            `json:"description"`
	AgeBands           []profile.AgeBand `json:"ageBands"`
	Domain             string            `json:"domain"`
	Difficulty         int               `json:"difficulty"`
	Tags               []string          `json:"tags"`
	LearningObjectives []string          `json:"learningObjectives,omitempty"`
}

// Instantiate returns a copy stamped with a fresh instance id for the
// given band. Authored content stays untouched.
func (s Scenario) Instantiate(band profile.AgeBand) Scenario {
	inst := s
	inst.InstanceID = uuid.New().String()
	if band != "" {
		inst.AgeBands = []profile.AgeBand{band}
	}
	return inst
}

// HasTag reports whether the scenario carries the given tag.
func (s Scenario) HasTag(tag string) bool {
	for _, t := range s.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Scenarios is an immutable scenario catalog.
type Scenarios struct {
	scenarios []Scenario
	byID      map[string]Scenario
}

// NewScenarios builds a catalog from authored scenarios, preserving order.
func NewScenarios(list []Scenario) *Scenarios {
	byID := make(map[string]Scenario, len(list))
	for _, s := range list {
		byID[s.ID] = s
	}
	return &Scenarios{scenarios: list, byID: byID}
}

// All returns every scenario in catalog order.
func (c *Scenarios) All() []Scenario {
	return c.scenarios
}

// ByID looks up a scenario; a missing id returns ok=false, not an error.
func (c *Scenarios) ByID(id string) (Scenario, bool) {
	s, ok := c.byID[id]
	return s, ok
}

// FirstWithTag returns the first scenario carrying the tag, in catalog
// order. ok=false when no scenario matches.
func (c *Scenarios) FirstWithTag(tag string) (Scenario, bool) {
	for _, s := range c.scenarios {
		if s.HasTag(tag) {
			return s, true
		}
	}
	return Scenario{}, false
}
