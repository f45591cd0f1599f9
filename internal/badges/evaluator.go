package badges

import (
	"github.com/spelsmart/spelsmart/internal/progression"
	"github.com/spelsmart/spelsmart/internal/telemetry"
)

// Evaluator scans the badge catalog against a progress snapshot. It is a
// pure predicate scan: it never mutates progress, and the caller appends
// the returned ids and stamps unlock times.
type Evaluator struct {
	catalog []Badge
	byID    map[string]Badge
	counter ActionCounter
}

// NewEvaluator creates an evaluator over the given catalog. counter may
// be nil; action-based requirements are then never satisfied.
func NewEvaluator(catalog []Badge, counter ActionCounter) *Evaluator {
	byID := make(map[string]Badge, len(catalog))
	for _, b := range catalog {
		byID[b.ID] = b
	}
	return &Evaluator{catalog: catalog, byID: byID, counter: counter}
}

// CheckForNewBadges returns the badges whose id is not yet earned and
// whose requirements hold against the snapshot, in catalog order. No
// badge is returned twice in one call.
func (e *Evaluator) CheckForNewBadges(p *progression.PlayerProgress, session *telemetry.DrillSession) []Badge {
	var unlocked []Badge
	for _, b := range e.catalog {
		if p.HasBadge(b.ID) {
			continue
		}
		if b.Requirements.Met(p, session, e.counter) {
			unlocked = append(unlocked, b)
		}
	}
	return unlocked
}

// NewlyUnlockedIDs is CheckForNewBadges reduced to badge ids.
func (e *Evaluator) NewlyUnlockedIDs(p *progression.PlayerProgress, session *telemetry.DrillSession) []string {
	badges := e.CheckForNewBadges(p, session)
	ids := make([]string, len(badges))
	for i, b := range badges {
		ids[i] = b.ID
	}
	return ids
}

// All returns the full catalog in declaration order.
func (e *Evaluator) All() []Badge {
	return e.catalog
}

// ByID looks up a badge; a missing id returns ok=false, not an error.
func (e *Evaluator) ByID(id string) (Badge, bool) {
	b, ok := e.byID[id]
	return b, ok
}
