package progression

import (
	"context"
	"fmt"
	"time"

	"github.com/spelsmart/spelsmart/internal/telemetry"
)

// ProgressRepo persists the player progress snapshot. Load must recover
// from malformed stored state by returning a fresh aggregate, never an
// error for decode failures.
type ProgressRepo interface {
	Load(ctx context.Context) (*PlayerProgress, error)
	Save(ctx context.Context, p *PlayerProgress) error
}

// BadgeChecker reports ids of badges newly satisfied by a progress
// snapshot. Implemented by the badges evaluator.
type BadgeChecker interface {
	NewlyUnlockedIDs(p *PlayerProgress, session *telemetry.DrillSession) []string
}

// UnlockRecorder stamps badge unlock times. Implementations must keep
// the first stamp: recording an already-unlocked badge is a no-op.
type UnlockRecorder interface {
	RecordUnlock(ctx context.Context, badgeID string, at time.Time) error
}

// AwardResult describes the outcome of a single XP award.
type AwardResult struct {
	Progress    *PlayerProgress
	NewBadgeIDs []string
	LeveledUp   bool
	FromLevel   int
}

// Service owns the player progress aggregate. It is the single writer:
// every mutation runs to completion and is persisted before returning,
// so no caller observes a partial update.
type Service struct {
	repo    ProgressRepo
	badges  BadgeChecker
	unlocks UnlockRecorder
	now     func() time.Time

	progress *PlayerProgress
}

// NewService creates a progression service. badges and unlocks may be
// nil: XP awards then skip badge evaluation or unlock stamping. now may
// be nil (time.Now).
func NewService(repo ProgressRepo, badges BadgeChecker, unlocks UnlockRecorder, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{repo: repo, badges: badges, unlocks: unlocks, now: now}
}

// Progress returns the current aggregate, loading it on first use.
func (s *Service) Progress(ctx context.Context) (*PlayerProgress, error) {
	if s.progress != nil {
		return s.progress, nil
	}
	p, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load progress: %w", err)
	}
	if p == nil {
		p = NewPlayerProgress(s.now())
	}
	s.progress = p
	return p, nil
}

// AwardXP applies an XP award, evaluates badges against the updated
// snapshot, appends any new unlocks, and persists the result. session
// may be nil when the award is not tied to a drill attempt.
func (s *Service) AwardXP(ctx context.Context, amount int, skills []Skill, session *telemetry.DrillSession) (*AwardResult, error) {
	p, err := s.Progress(ctx)
	if err != nil {
		return nil, err
	}

	from := p.Level
	p.AddXP(amount, skills, s.now())

	var newIDs []string
	if s.badges != nil {
		newIDs = s.badges.NewlyUnlockedIDs(p, session)
		for _, id := range newIDs {
			p.Unlock(id)
			if s.unlocks != nil {
				if err := s.unlocks.RecordUnlock(ctx, id, s.now()); err != nil {
					return nil, fmt.Errorf("record unlock %s: %w", id, err)
				}
			}
		}
	}

	if err := s.repo.Save(ctx, p); err != nil {
		return nil, fmt.Errorf("save progress: %w", err)
	}

	return &AwardResult{
		Progress:    p,
		NewBadgeIDs: newIDs,
		LeveledUp:   p.Level > from,
		FromLevel:   from,
	}, nil
}

// Reset discards all progression state and persists a fresh aggregate.
func (s *Service) Reset(ctx context.Context) error {
	s.progress = NewPlayerProgress(s.now())
	if err := s.repo.Save(ctx, s.progress); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}
