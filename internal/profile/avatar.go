package profile

import (
	"time"

	"github.com/google/uuid"
)

// Position is the player's favorite position on the pitch.
type Position string

const (
	PositionGoalkeeper Position = "goalkeeper"
	PositionDefender   Position = "defender"
	PositionMidfielder Position = "midfielder"
	PositionForward    Position = "forward"
)

// AllPositions returns all positions in display order.
func AllPositions() []Position {
	return []Position{
		PositionGoalkeeper,
		PositionDefender,
		PositionMidfielder,
		PositionForward,
	}
}

// DisplayName returns a human-readable label for the position.
func (p Position) DisplayName() string {
	switch p {
	case PositionGoalkeeper:
		return "Goalkeeper"
	case PositionDefender:
		return "Defender"
	case PositionMidfielder:
		return "Midfielder"
	case PositionForward:
		return "Forward"
	default:
		return string(p)
	}
}

// Valid reports whether the value is a known position.
func (p Position) Valid() bool {
	switch p {
	case PositionGoalkeeper, PositionDefender, PositionMidfielder, PositionForward:
		return true
	}
	return false
}

// Avatar is the player's profile record, provided by the external
// profile store. Cosmetic fields are carried for round-tripping only.
type Avatar struct {
	ID               uuid.UUID  `json:"id"`
	Name             string     `json:"name"`
	BirthDate        *time.Time `json:"birthDate,omitempty"`
	AgeBand          AgeBand    `json:"ageBand"`
	FavoritePosition Position   `json:"favoritePosition"`
	JerseyColorHex   string     `json:"jerseyColorHex"`
	SkinToneHex      string     `json:"skinToneHex"`
	HairStyle        string     `json:"hairStyle"`
}

// NewAvatar creates an avatar with a fresh id.
func NewAvatar(name string, ageBand AgeBand, position Position) *Avatar {
	return &Avatar{
		ID:               uuid.New(),
		Name:             name,
		AgeBand:          ageBand,
		FavoritePosition: position,
	}
}

// DerivedAgeBand returns the band computed from the birth date at the
// given instant, or the stored band when no birth date is set.
func (a *Avatar) DerivedAgeBand(now time.Time) AgeBand {
	if a.BirthDate == nil {
		return a.AgeBand
	}
	years := now.Year() - a.BirthDate.Year()
	if now.YearDay() < a.BirthDate.YearDay() {
		years--
	}
	return AgeBandFromYears(years)
}
