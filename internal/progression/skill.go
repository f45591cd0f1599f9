package progression

// Skill is one of the eight tactical skills tracked per player.
type Skill string

const (
	SkillVision           Skill = "vision"
	SkillPositioning      Skill = "positioning"
	SkillTiming           Skill = "timing"
	SkillCommunication    Skill = "communication"
	SkillDecisionMaking   Skill = "decisionMaking"
	SkillSpatialAwareness Skill = "spatialAwareness"
	SkillPressureHandling Skill = "pressureHandling"
	SkillTeamwork         Skill = "teamwork"
)

// AllSkills returns all skills in display order.
func AllSkills() []Skill {
	return []Skill{
		SkillVision,
		SkillPositioning,
		SkillTiming,
		SkillCommunication,
		SkillDecisionMaking,
		SkillSpatialAwareness,
		SkillPressureHandling,
		SkillTeamwork,
	}
}

// tagSkills maps drill skill tags to the tactical skills they train.
var tagSkills = map[string][]Skill{
	"scanning":    {SkillVision, SkillSpatialAwareness},
	"passing":     {SkillDecisionMaking, SkillTeamwork},
	"dribbling":   {SkillPressureHandling},
	"press":       {SkillPressureHandling, SkillTiming},
	"defence":     {SkillPositioning},
	"positioning": {SkillPositioning},
	"goal":        {SkillTiming},
	"finishing":   {SkillTiming},
	"attack":      {SkillDecisionMaking},
	"goalkeeper":  {SkillCommunication, SkillPositioning},
	"teamwork":    {SkillTeamwork, SkillCommunication},
	"speed":       {SkillTiming, SkillDecisionMaking},
}

// SkillsForTags returns the distinct skills trained by a set of drill
// tags, in first-seen order. Unknown tags contribute nothing.
func SkillsForTags(tags []string) []Skill {
	var out []Skill
	seen := make(map[Skill]bool)
	for _, tag := range tags {
		for _, s := range tagSkills[tag] {
			if !seen[s] {
				seen[s] = true
				out = append(out, s)
			}
		}
	}
	return out
}

// DisplayName returns a human-readable label for the skill.
func (s Skill) DisplayName() string {
	switch s {
	case SkillVision:
		return "Vision"
	case SkillPositioning:
		return "Positioning"
	case SkillTiming:
		return "Timing"
	case SkillCommunication:
		return "Communication"
	case SkillDecisionMaking:
		return "Decision Making"
	case SkillSpatialAwareness:
		return "Spatial Awareness"
	case SkillPressureHandling:
		return "Pressure Handling"
	case SkillTeamwork:
		return "Teamwork"
	default:
		return string(s)
	}
}
