package progression

import "time"

// PlayerProgress is the local player's progression aggregate: total XP,
// level, per-skill XP, streak, and earned badges. Numeric fields are
// mutated only through AddXP; badge ids only through Unlock.
type PlayerProgress struct {
	TotalXP       int          `json:"totalXP"`
	Level         int          `json:"level"`
	XPToNextLevel int          `json:"xpToNextLevel"`
	SkillXP       map[Skill]int `json:"skillXP"`
	EarnedBadges  []string     `json:"earnedBadges"`
	CurrentRank   Rank         `json:"currentRank"`
	StreakDays    int          `json:"streakDays"`
	LastPlayDate  *time.Time   `json:"lastPlayDate,omitempty"`
	PlayingSince  time.Time    `json:"playingSince"`
	TotalPlayTime float64      `json:"totalPlayTime"`
}

// NewPlayerProgress returns a fresh aggregate at level 1 with no XP.
func NewPlayerProgress(now time.Time) *PlayerProgress {
	return &PlayerProgress{
		Level:         1,
		XPToNextLevel: XPForLevel(2),
		SkillXP:       make(map[Skill]int),
		EarnedBadges:  []string{},
		CurrentRank:   RankRookie,
		PlayingSince:  now,
	}
}

// AddXP awards XP, distributes it across the given skills, recomputes the
// level, xpToNextLevel and rank, and applies the streak rule. This is the
// only mutator of the aggregate's numeric fields; callers must not observe
// a partial update. Negative amounts are treated as zero.
func (p *PlayerProgress) AddXP(amount int, skills []Skill, now time.Time) {
	if amount < 0 {
		amount = 0
	}
	p.TotalXP += amount

	// Integer division; the remainder is dropped on purpose.
	if len(skills) > 0 {
		if p.SkillXP == nil {
			p.SkillXP = make(map[Skill]int)
		}
		share := amount / len(skills)
		for _, s := range skills {
			p.SkillXP[s] += share
		}
	}

	// A single award can jump multiple levels.
	for p.TotalXP >= XPForLevel(p.Level+1) {
		p.Level++
	}
	p.XPToNextLevel = XPForLevel(p.Level+1) - p.TotalXP
	p.CurrentRank = RankFromLevel(p.Level)

	p.touchStreak(now)
}

// Unlock records an earned badge id. Append-only; duplicates are ignored.
func (p *PlayerProgress) Unlock(badgeID string) bool {
	if p.HasBadge(badgeID) {
		return false
	}
	p.EarnedBadges = append(p.EarnedBadges, badgeID)
	return true
}

// HasBadge reports whether the badge id has been earned.
func (p *PlayerProgress) HasBadge(badgeID string) bool {
	for _, id := range p.EarnedBadges {
		if id == badgeID {
			return true
		}
	}
	return false
}

// SkillXPFor returns the XP accumulated for a skill; missing keys are 0.
func (p *PlayerProgress) SkillXPFor(skill Skill) int {
	return p.SkillXP[skill]
}

// SkillLevel returns the level for a skill derived from its XP.
func (p *PlayerProgress) SkillLevel(skill Skill) int {
	return SkillLevelFromXP(p.SkillXPFor(skill))
}

// SkillProgressFor returns the fraction of progress through the skill's
// current level.
func (p *PlayerProgress) SkillProgressFor(skill Skill) float64 {
	xp := p.SkillXPFor(skill)
	return SkillProgress(xp, SkillLevelFromXP(xp))
}

// touchStreak applies the consecutive-day streak rule. The first award
// starts the streak at 1; exactly one calendar day since the last award
// extends it; more than one resets it; a same-day award leaves it alone.
// lastPlayDate is always advanced.
func (p *PlayerProgress) touchStreak(now time.Time) {
	if p.LastPlayDate == nil {
		p.StreakDays = 1
	} else {
		switch days := calendarDaysBetween(*p.LastPlayDate, now); {
		case days == 1:
			p.StreakDays++
		case days > 1:
			p.StreakDays = 1
		}
	}
	t := now
	p.LastPlayDate = &t
}

// calendarDaysBetween counts the calendar-day boundaries crossed between
// a and b, evaluated in b's location. 23:59 to 00:01 the next day is one
// day; any two instants on the same date are zero.
func calendarDaysBetween(a, b time.Time) int {
	a = a.In(b.Location())
	ad := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, b.Location())
	bd := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, b.Location())
	return int(bd.Sub(ad) / (24 * time.Hour))
}
