package progression

// Rank is a cosmetic tier derived purely from level.
type Rank string

const (
	RankRookie     Rank = "rookie"
	RankApprentice Rank = "apprentice"
	RankPlayer     Rank = "player"
	RankTactician  Rank = "tactician"
	RankStrategist Rank = "strategist"
	RankMastermind Rank = "mastermind"
	RankLegend     Rank = "legend"
)

// AllRanks returns all ranks in order from lowest to highest.
func AllRanks() []Rank {
	return []Rank{
		RankRookie,
		RankApprentice,
		RankPlayer,
		RankTactician,
		RankStrategist,
		RankMastermind,
		RankLegend,
	}
}

// RankFromLevel maps a level to its rank bracket. Brackets are fixed,
// non-overlapping, and the highest bracket is open-ended.
func RankFromLevel(level int) Rank {
	switch {
	case level <= 5:
		return RankRookie
	case level <= 12:
		return RankApprentice
	case level <= 25:
		return RankPlayer
	case level <= 45:
		return RankTactician
	case level <= 75:
		return RankStrategist
	case level <= 120:
		return RankMastermind
	default:
		return RankLegend
	}
}

// DisplayName returns a human-readable label for the rank.
func (r Rank) DisplayName() string {
	switch r {
	case RankRookie:
		return "Rookie"
	case RankApprentice:
		return "Apprentice"
	case RankPlayer:
		return "Player"
	case RankTactician:
		return "Tactician"
	case RankStrategist:
		return "Strategist"
	case RankMastermind:
		return "Mastermind"
	case RankLegend:
		return "Legend"
	default:
		return string(r)
	}
}

// Icon returns the display icon for the rank.
func (r Rank) Icon() string {
	switch r {
	case RankRookie:
		return "🌱"
	case RankApprentice:
		return "⚽"
	case RankPlayer:
		return "🥅"
	case RankTactician:
		return "🧠"
	case RankStrategist:
		return "👑"
	case RankMastermind:
		return "🏆"
	case RankLegend:
		return "⭐"
	default:
		return "✦"
	}
}

// Color returns the hex color associated with the rank.
func (r Rank) Color() string {
	switch r {
	case RankRookie:
		return "#90EE90"
	case RankApprentice:
		return "#87CEEB"
	case RankPlayer:
		return "#FFD700"
	case RankTactician:
		return "#FF6347"
	case RankStrategist:
		return "#9370DB"
	case RankMastermind:
		return "#FF1493"
	case RankLegend:
		return "#FF4500"
	default:
		return "#C0C0C0"
	}
}
