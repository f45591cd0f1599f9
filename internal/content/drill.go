// Package content provides the read-only drill and scenario catalogs the
// engine consumes. Catalogs come from bundled JSON files validated
// against embedded schemas, with a built-in fallback set.
package content

import "github.com/spelsmart/spelsmart/internal/profile"

// Tactical domains used to bucket drills and scenarios.
const (
	DomainAttack     = "attack"
	DomainDefence    = "defence"
	DomainTransition = "transition"
)

// DrillDefinition is one entry of the drill catalog.
type DrillDefinition struct {
	ID               string            `json:"id"`
	Title            string            `json:"title"`
	Description      string            `json:"description"`
	AgeBands         []profile.AgeBand `json:"ageBands"`
	TimeLimitSeconds int               `json:"timeLimitSeconds"`
	ObstacleCount    int               `json:"obstacleCount"`
	Domain           string            `json:"domain"`
	SkillTags        []string          `json:"skillTags"`
	Objectives       []string          `json:"objectives,omitempty"`
	Methodology      string            `json:"methodology,omitempty"`
	Sources          []string          `json:"sources,omitempty"`
}

// Drills is an immutable drill catalog with id and age-band lookup.
type Drills struct {
	drills []DrillDefinition
	byID   map[string]DrillDefinition
}

// NewDrills builds a catalog from definitions, preserving order.
func NewDrills(defs []DrillDefinition) *Drills {
	byID := make(map[string]DrillDefinition, len(defs))
	for _, d := range defs {
		byID[d.ID] = d
	}
	return &Drills{drills: defs, byID: byID}
}

// All returns every drill in catalog order.
func (c *Drills) All() []DrillDefinition {
	return c.drills
}

// ForAgeBand returns the drills available to the given band, in catalog
// order. The zero band returns everything.
func (c *Drills) ForAgeBand(band profile.AgeBand) []DrillDefinition {
	if band == "" {
		return c.drills
	}
	var out []DrillDefinition
	for _, d := range c.drills {
		for _, b := range d.AgeBands {
			if b == band {
				out = append(out, d)
				break
			}
		}
	}
	return out
}

// ByID looks up a drill; a missing id returns ok=false, not an error.
func (c *Drills) ByID(id string) (DrillDefinition, bool) {
	d, ok := c.byID[id]
	return d, ok
}

// Len returns the number of drills in the catalog.
func (c *Drills) Len() int {
	return len(c.drills)
}
