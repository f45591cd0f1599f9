package challenge

import (
	"context"
	"fmt"
	"time"

	"github.com/spelsmart/spelsmart/internal/content"
	"github.com/spelsmart/spelsmart/internal/profile"
	"github.com/spelsmart/spelsmart/internal/progression"
	"github.com/spelsmart/spelsmart/internal/telemetry"
)

// Repo persists the daily challenge history. The service is its only
// writer.
type Repo interface {
	// ByID returns a challenge, or nil when none exists for the id.
	ByID(ctx context.Context, id string) (*DailyChallenge, error)

	// Save upserts a challenge by id.
	Save(ctx context.Context, c *DailyChallenge) error

	// CompletedByDateDesc returns completed challenges newest first.
	CompletedByDateDesc(ctx context.Context) ([]DailyChallenge, error)
}

// XPAwarder grants the bonus XP when a challenge completes. Satisfied by
// the progression service.
type XPAwarder interface {
	AwardXP(ctx context.Context, amount int, skills []progression.Skill, session *telemetry.DrillSession) (*progression.AwardResult, error)
}

// Service generates, completes, and scores daily challenges.
type Service struct {
	repo      Repo
	awarder   XPAwarder
	scenarios *content.Scenarios
	now       func() time.Time
}

// NewService creates a challenge service. now may be nil (time.Now).
func NewService(repo Repo, awarder XPAwarder, scenarios *content.Scenarios, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{repo: repo, awarder: awarder, scenarios: scenarios, now: now}
}

// TodaysChallenge returns today's challenge for the band, generating and
// persisting it on first call of the day. Repeated calls on the same date
// return the stored instance.
func (s *Service) TodaysChallenge(ctx context.Context, band profile.AgeBand) (*DailyChallenge, error) {
	today := startOfDay(s.now())
	id := IDForDate(today)

	existing, err := s.repo.ByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load challenge %s: %w", id, err)
	}
	if existing != nil {
		return existing, nil
	}

	c := Generate(today, band, s.scenarios)
	if err := s.repo.Save(ctx, &c); err != nil {
		return nil, fmt.Errorf("save challenge %s: %w", id, err)
	}
	return &c, nil
}

// Complete marks a challenge completed and awards its bonus XP tagged
// with the decision-making skill. The transition is one-way: completing
// an already-completed challenge is a no-op and never awards twice. An
// unknown id returns nil, not an error.
func (s *Service) Complete(ctx context.Context, id string) (*DailyChallenge, error) {
	c, err := s.repo.ByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load challenge %s: %w", id, err)
	}
	if c == nil || c.IsCompleted {
		return c, nil
	}

	c.IsCompleted = true
	if err := s.repo.Save(ctx, c); err != nil {
		return nil, fmt.Errorf("save challenge %s: %w", id, err)
	}

	if s.awarder != nil {
		if _, err := s.awarder.AwardXP(ctx, c.BonusXP, []progression.Skill{progression.SkillDecisionMaking}, nil); err != nil {
			return nil, fmt.Errorf("award challenge bonus: %w", err)
		}
	}
	return c, nil
}

// Streak counts consecutive calendar days with a completed challenge,
// walking backward from today and stopping at the first gap.
func (s *Service) Streak(ctx context.Context) (int, error) {
	completed, err := s.repo.CompletedByDateDesc(ctx)
	if err != nil {
		return 0, fmt.Errorf("load completed challenges: %w", err)
	}

	streak := 0
	current := startOfDay(s.now())
	for _, c := range completed {
		if !sameDay(c.Date, current) {
			break
		}
		streak++
		current = current.AddDate(0, 0, -1)
	}
	return streak, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
