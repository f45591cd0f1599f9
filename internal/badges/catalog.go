package badges

import "github.com/spelsmart/spelsmart/internal/progression"

// ActionExcellentRating is the action id counted for badges that track
// "excellent" session ratings.
const ActionExcellentRating = "excellent_rating"

// ActionScan is the action id counted for scanning usage.
const ActionScan = "scan"

func intPtr(v int) *int { return &v }

// DefaultCatalog returns the built-in badge catalog in declaration order.
// The catalog is static and loaded once at startup; evaluation order
// follows this order.
func DefaultCatalog() []Badge {
	return []Badge{
		{
			ID:          "first_scenario",
			Name:        "First Step",
			Description: "Complete your first scenario",
			Icon:        "🎯",
			Category:    CategoryMilestone,
			Rarity:      RarityCommon,
			Requirements: Requirements{
				MinXP: intPtr(1),
			},
		},
		{
			ID:          "level_5",
			Name:        "Seasoned Player",
			Description: "Reach level 5",
			Icon:        "⭐",
			Category:    CategoryMilestone,
			Rarity:      RarityUncommon,
			Requirements: Requirements{
				MinLevel: intPtr(5),
			},
		},
		{
			ID:          "vision_master",
			Name:        "Vision Master",
			Description: "Reach level 5 in vision",
			Icon:        "👁",
			Category:    CategorySkill,
			Rarity:      RarityRare,
			Requirements: Requirements{
				SkillLevels: map[progression.Skill]int{
					progression.SkillVision: 5,
				},
			},
		},
		{
			ID:          "tactical_genius",
			Name:        "Tactical Genius",
			Description: "Reach level 5 in all core tactical skills",
			Icon:        "🧠",
			Category:    CategoryAchievement,
			Rarity:      RarityLegendary,
			Requirements: Requirements{
				SkillLevels: map[progression.Skill]int{
					progression.SkillVision:           5,
					progression.SkillPositioning:      5,
					progression.SkillTiming:           5,
					progression.SkillDecisionMaking:   5,
					progression.SkillSpatialAwareness: 5,
				},
			},
		},
		{
			ID:          "streak_7",
			Name:        "Dedicated Training",
			Description: "Train 7 days in a row",
			Icon:        "🔥",
			Category:    CategoryDaily,
			Rarity:      RarityRare,
			Requirements: Requirements{
				MinStreakDays: intPtr(7),
			},
		},
		{
			ID:          "scanner",
			Name:        "Eyes Everywhere",
			Description: "Use scanning 50 times",
			Icon:        "👀",
			Category:    CategorySkill,
			Rarity:      RarityUncommon,
			Requirements: Requirements{
				Actions: []ActionRequirement{
					{Action: ActionScan, Count: 50},
				},
			},
		},
		{
			ID:          "perfectionist",
			Name:        "Perfectionist",
			Description: "Earn 10 excellent ratings in a row",
			Icon:        "💎",
			Category:    CategoryAchievement,
			Rarity:      RarityEpic,
			Requirements: Requirements{
				Actions: []ActionRequirement{
					{Action: ActionExcellentRating, Count: 10, Consecutive: true},
				},
			},
		},
	}
}
