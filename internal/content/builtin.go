package content

import "github.com/spelsmart/spelsmart/internal/profile"

// BuiltinDrills returns the bundled drill catalog used when no content
// directory is provided.
func BuiltinDrills() *Drills {
	all := profile.AllAgeBands()
	older := []profile.AgeBand{profile.AgeBand12To13, profile.AgeBand14To15, profile.AgeBand16To19}
	younger := []profile.AgeBand{profile.AgeBand6To8, profile.AgeBand9To11, profile.AgeBand12To13}

	return NewDrills([]DrillDefinition{
		{
			ID:               "cone_weave_basic",
			Title:            "Cone Weave",
			Description:      "Dribble through the cone slalom keeping the ball close.",
			AgeBands:         all,
			TimeLimitSeconds: 60,
			ObstacleCount:    6,
			Domain:           DomainAttack,
			SkillTags:        []string{"dribbling", "attack"},
			Objectives:       []string{"Close control at speed"},
		},
		{
			ID:               "scan_and_pass",
			Title:            "Scan & Pass",
			Description:      "Scan the field before every pass to a moving target.",
			AgeBands:         all,
			TimeLimitSeconds: 90,
			ObstacleCount:    5,
			Domain:           DomainTransition,
			SkillTags:        []string{"scanning", "passing"},
			Objectives:       []string{"Build a scanning habit", "Pass selection"},
		},
		{
			ID:               "press_trigger",
			Title:            "Press Trigger",
			Description:      "Recognize the moment to press and close down the carrier.",
			AgeBands:         older,
			TimeLimitSeconds: 75,
			ObstacleCount:    4,
			Domain:           DomainDefence,
			SkillTags:        []string{"press", "defence"},
			Objectives:       []string{"Timing the press"},
		},
		{
			ID:               "goal_rush",
			Title:            "Goal Rush",
			Description:      "Collect cones and finish on goal before the clock runs out.",
			AgeBands:         younger,
			TimeLimitSeconds: 45,
			ObstacleCount:    8,
			Domain:           DomainAttack,
			SkillTags:        []string{"goal", "attack", "finishing"},
		},
		{
			ID:               "keeper_distribution",
			Title:            "Keeper Distribution",
			Description:      "Start the attack from the back with quick, accurate throws.",
			AgeBands:         older,
			TimeLimitSeconds: 60,
			ObstacleCount:    4,
			Domain:           DomainTransition,
			SkillTags:        []string{"goalkeeper", "passing"},
			Methodology:      "Small-sided distribution game",
		},
		{
			ID:               "shadow_defending",
			Title:            "Shadow Defending",
			Description:      "Mirror the attacker and hold position without diving in.",
			AgeBands:         all,
			TimeLimitSeconds: 60,
			ObstacleCount:    3,
			Domain:           DomainDefence,
			SkillTags:        []string{"defence", "positioning"},
		},
		{
			ID:               "counter_sprint",
			Title:            "Counter Sprint",
			Description:      "Win the ball and break forward through the gates at pace.",
			AgeBands:         older,
			TimeLimitSeconds: 50,
			ObstacleCount:    6,
			Domain:           DomainTransition,
			SkillTags:        []string{"attack", "scanning"},
		},
		{
			ID:               "wall_pass_circuit",
			Title:            "Wall Pass Circuit",
			Description:      "One-two combinations around the cone circuit.",
			AgeBands:         younger,
			TimeLimitSeconds: 80,
			ObstacleCount:    5,
			Domain:           DomainAttack,
			SkillTags:        []string{"passing", "teamwork"},
		},
	})
}

// BuiltinScenarios returns the bundled scenario catalog. The daily
// challenge generator picks from these by tag.
func BuiltinScenarios() *Scenarios {
	all := profile.AllAgeBands()

	return NewScenarios([]Scenario{
		{
			ID:                 "scanning_drill_choice",
			Title:              "Look Before You Play",
			Description:        "Scan all options before deciding what to do with the ball.",
			AgeBands:           all,
			Domain:             DomainAttack,
			Difficulty:         2,
			Tags:               []string{"daily_challenge", "scanning", "vision"},
			LearningObjectives: []string{"Build a scanning habit", "Gather information before deciding"},
		},
		{
			ID:                 "late_game_through_ball",
			Title:              "The Killer Pass",
			Description:        "A tied game late on. Find the pass that breaks the line.",
			AgeBands:           all,
			Domain:             DomainTransition,
			Difficulty:         4,
			Tags:               []string{"daily_challenge", "advanced", "tactics"},
			LearningObjectives: []string{"Read complex game situations", "Optimal decisions under pressure"},
		},
		{
			ID:                 "build_up_triangle",
			Title:              "Build From the Back",
			Description:        "Work the ball out of defence with short support passes.",
			AgeBands:           all,
			Domain:             DomainAttack,
			Difficulty:         2,
			Tags:               []string{"daily_challenge", "build_up", "teamwork"},
			LearningObjectives: []string{"Support angles", "Communication"},
		},
		{
			ID:                 "fast_break_decision",
			Title:              "Quick Break",
			Description:        "The ball turns over. Decide fast: run, pass, or hold.",
			AgeBands:           all,
			Domain:             DomainTransition,
			Difficulty:         1,
			Tags:               []string{"daily_challenge", "transition", "speed"},
			LearningObjectives: []string{"Fast decision making"},
		},
		{
			ID:                 "defend_the_box",
			Title:              "Hold the Line",
			Description:        "Outnumbered at the back. Delay the attack and protect the goal.",
			AgeBands:           all,
			Domain:             DomainDefence,
			Difficulty:         3,
			Tags:               []string{"daily_challenge", "defence", "positioning"},
			LearningObjectives: []string{"Defensive positioning", "Delaying the attacker"},
		},
	})
}
