package cmd

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/spelsmart/spelsmart/internal/recommend"
	"github.com/spf13/cobra"
)

var drillsCmd = &cobra.Command{
	Use:   "drills",
	Short: "Show recommended drills for your profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()
		ctx := cmd.Context()

		avatar, err := a.requireAvatar(ctx)
		if err != nil {
			return err
		}
		history, err := a.store.SessionRepo().List(ctx)
		if err != nil {
			return fmt.Errorf("load sessions: %w", err)
		}

		engine := recommend.NewEngine(a.drills)
		recs := engine.RecommendDrills(avatar, history)
		if len(recs) == 0 {
			fmt.Println("No drills available for your age group yet.")
			return nil
		}

		fmt.Println(styleTitle.Render("Recommended drills for " + avatar.Name))
		for _, rec := range recs {
			printRecommendation(rec)
		}
		return nil
	},
}

func printRecommendation(rec recommend.Recommendation) {
	timeLimit := int(float64(rec.Drill.TimeLimitSeconds) * rec.AdaptedSettings.TimeMultiplier)
	cones := rec.Drill.ObstacleCount + rec.AdaptedSettings.ConeDelta
	if cones < 1 {
		cones = 1
	}

	fmt.Printf("\n%s %s %s\n",
		priorityStyle(rec.Priority).Render("["+rec.Priority.DisplayName()+"]"),
		rec.Drill.Title,
		styleDim.Render("("+rec.Drill.ID+")"))
	fmt.Println("  " + rec.Reason)
	fmt.Printf("  %ds, %d cones", timeLimit, cones)
	if rec.AdaptedSettings.TimeMultiplier != 1.0 || rec.AdaptedSettings.ConeDelta != 0 {
		fmt.Printf(" %s", styleDim.Render("— "+rec.AdaptedSettings.Reason))
	}
	fmt.Println()
}

func priorityStyle(p recommend.Priority) lipgloss.Style {
	switch p {
	case recommend.PriorityHigh:
		return styleSuccess
	case recommend.PriorityMedium:
		return styleWarn
	default:
		return styleDim
	}
}
