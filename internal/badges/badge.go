// Package badges implements the achievement catalog and the rule engine
// that matches badge requirements against player progress.
package badges

import "time"

// Category groups badges by how they are earned.
type Category string

const (
	CategorySkill       Category = "skill"
	CategoryAchievement Category = "achievement"
	CategoryMilestone   Category = "milestone"
	CategorySpecial     Category = "special"
	CategoryDaily       Category = "daily"
	CategorySeasonal    Category = "seasonal"
)

// Rarity is the difficulty tier of a badge.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// AllRarities returns all rarities in order from lowest to highest.
func AllRarities() []Rarity {
	return []Rarity{RarityCommon, RarityUncommon, RarityRare, RarityEpic, RarityLegendary}
}

// DisplayName returns a human-readable label for the rarity.
func (r Rarity) DisplayName() string {
	switch r {
	case RarityCommon:
		return "Common"
	case RarityUncommon:
		return "Uncommon"
	case RarityRare:
		return "Rare"
	case RarityEpic:
		return "Epic"
	case RarityLegendary:
		return "Legendary"
	default:
		return string(r)
	}
}

// Color returns the hex color associated with the rarity.
func (r Rarity) Color() string {
	switch r {
	case RarityCommon:
		return "#C0C0C0"
	case RarityUncommon:
		return "#32CD32"
	case RarityRare:
		return "#1E90FF"
	case RarityEpic:
		return "#9370DB"
	case RarityLegendary:
		return "#FFD700"
	default:
		return "#C0C0C0"
	}
}

// Badge is an immutable catalog entry.
type Badge struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Description  string       `json:"description"`
	Icon         string       `json:"icon"`
	Category     Category     `json:"category"`
	Rarity       Rarity       `json:"rarity"`
	Requirements Requirements `json:"requirements"`
}

// Unlock records a badge unlock. UnlockedAt is assigned once, on first
// unlock, and never mutated afterward.
type Unlock struct {
	BadgeID    string    `json:"badgeId"`
	UnlockedAt time.Time `json:"unlockedAt"`
}
