package cmd

import (
	"fmt"

	"github.com/spelsmart/spelsmart/internal/progression"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show progress, skills, and streaks",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()
		ctx := cmd.Context()

		svc, err := a.progressionService(ctx)
		if err != nil {
			return err
		}
		p, err := svc.Progress(ctx)
		if err != nil {
			return err
		}

		rank := p.CurrentRank
		fmt.Println(styleTitle.Render(fmt.Sprintf("%s %s — level %d", rank.Icon(), rank.DisplayName(), p.Level)))
		levelFloor := progression.XPForLevel(p.Level)
		span := progression.XPForLevel(p.Level+1) - levelFloor
		frac := 0.0
		if span > 0 {
			frac = float64(p.TotalXP-levelFloor) / float64(span)
		}
		fmt.Printf("%s %d XP, %d to next level\n", renderBar(frac, 20), p.TotalXP, p.XPToNextLevel)
		if p.StreakDays > 0 {
			fmt.Printf("Training streak: %d day(s)\n", p.StreakDays)
		}

		fmt.Println()
		fmt.Println(styleTitle.Render("Skills"))
		for _, skill := range progression.AllSkills() {
			fmt.Printf("  %-18s lvl %-3d %s\n",
				skill.DisplayName(), p.SkillLevel(skill), renderBar(p.SkillProgressFor(skill), 12))
		}

		fmt.Println()
		fmt.Printf("Badges earned: %d\n", len(p.EarnedBadges))

		streak, err := a.challengeService(svc).Streak(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("Challenge streak: %d day(s)\n", streak)
		return nil
	},
}
