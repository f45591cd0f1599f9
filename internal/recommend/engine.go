package recommend

import (
	"sort"
	"strings"

	"github.com/spelsmart/spelsmart/internal/content"
	"github.com/spelsmart/spelsmart/internal/profile"
	"github.com/spelsmart/spelsmart/internal/telemetry"
)

const (
	// recentWindow is the number of most recent sessions sampled.
	recentWindow = 10

	// minRecommendations is the floor of results returned even when
	// every candidate ranks low.
	minRecommendations = 3

	// weakDomainFactor flags a domain as weak when its average score
	// falls below this fraction of the overall average.
	weakDomainFactor = 0.8
)

// Priority orders recommendations; higher sorts first.
type Priority int

const (
	PriorityLow    Priority = 1
	PriorityMedium Priority = 2
	PriorityHigh   Priority = 3
)

// DisplayName returns a human-readable label for the priority.
func (p Priority) DisplayName() string {
	switch p {
	case PriorityHigh:
		return "High"
	case PriorityMedium:
		return "Medium"
	default:
		return "Low"
	}
}

// Recommendation is an ephemeral ranking result, recomputed on every
// invocation.
type Recommendation struct {
	Drill           content.DrillDefinition
	Reason          string
	Priority        Priority
	AdaptedSettings Adaptation
}

// positionKeywords maps a favorite position to the drill tag substrings
// that count as a match for it.
var positionKeywords = map[profile.Position][]string{
	profile.PositionGoalkeeper: {"goalkeeper"},
	profile.PositionDefender:   {"defence", "press"},
	profile.PositionMidfielder: {"pass", "scanning"},
	profile.PositionForward:    {"goal", "attack"},
}

// Engine ranks candidate drills for an avatar. It reads catalogs and
// history snapshots only; safe to run off the interaction thread.
type Engine struct {
	drills *content.Drills
}

// NewEngine creates a recommendation engine over the drill catalog.
func NewEngine(drills *content.Drills) *Engine {
	return &Engine{drills: drills}
}

// RecommendDrills ranks the drills available to the avatar's age band
// using position affinity and weak-domain detection over the most recent
// sessions. At least up to three results are returned even when all
// candidates rank low; ties keep catalog order.
func (e *Engine) RecommendDrills(avatar *profile.Avatar, history []telemetry.DrillSession) []Recommendation {
	candidates := e.drills.ForAgeBand(avatar.AgeBand)

	recent := history
	if len(recent) > recentWindow {
		recent = recent[len(recent)-recentWindow:]
	}

	averageScore := 0
	if len(recent) > 0 {
		total := 0
		for _, s := range recent {
			total += s.Score
		}
		averageScore = total / len(recent)
	}

	domainAverages := e.domainAverages(recent)

	var recs []Recommendation
	for _, drill := range candidates {
		priority := e.priorityFor(drill, avatar, domainAverages, averageScore)
		if priority != PriorityLow || len(recs) < minRecommendations {
			recs = append(recs, Recommendation{
				Drill:           drill,
				Reason:          reasonFor(priority),
				Priority:        priority,
				AdaptedSettings: AdaptDifficulty(drill, recent),
			})
		}
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Priority > recs[j].Priority
	})
	return recs
}

// domainAverages groups the sample by each session drill's domain and
// averages scores. Domains with no sessions are absent, not zero.
func (e *Engine) domainAverages(sessions []telemetry.DrillSession) map[string]float64 {
	totals := make(map[string]int)
	counts := make(map[string]int)
	for _, s := range sessions {
		drill, ok := e.drills.ByID(s.DrillID)
		if !ok {
			continue
		}
		totals[drill.Domain] += s.Score
		counts[drill.Domain]++
	}

	averages := make(map[string]float64, len(totals))
	for domain, total := range totals {
		averages[domain] = float64(total) / float64(counts[domain])
	}
	return averages
}

func (e *Engine) priorityFor(drill content.DrillDefinition, avatar *profile.Avatar, domainAverages map[string]float64, averageScore int) Priority {
	positionAffinity := false
	for _, tag := range drill.SkillTags {
		for _, kw := range positionKeywords[avatar.FavoritePosition] {
			if strings.Contains(tag, kw) {
				positionAffinity = true
			}
		}
	}

	weakDomain := domainAverages[drill.Domain] < float64(averageScore)*weakDomainFactor

	switch {
	case positionAffinity && weakDomain:
		return PriorityHigh
	case positionAffinity || weakDomain:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

func reasonFor(p Priority) string {
	switch p {
	case PriorityHigh:
		return "Matches your position and a development area"
	case PriorityMedium:
		return "Good for your overall development"
	default:
		return "Variety training for all-round ability"
	}
}
