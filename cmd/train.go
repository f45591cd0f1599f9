package cmd

import (
	"fmt"
	"time"

	"github.com/spelsmart/spelsmart/internal/badges"
	"github.com/spelsmart/spelsmart/internal/progression"
	"github.com/spelsmart/spelsmart/internal/recommend"
	"github.com/spelsmart/spelsmart/internal/telemetry"
	"github.com/spf13/cobra"
)

// XP weights for a recorded drill session.
const (
	xpPerScorePoint = 10
	xpPerCone       = 5
	xpPerScan       = 2
)

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Record a finished drill session",
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

		drillID, _ := cmd.Flags().GetString("drill")
		drill, ok := a.drills.ByID(drillID)
		if !ok {
			return fmt.Errorf("unknown drill %q, run 'spelsmart drills' for the catalog", drillID)
		}

		score, _ := cmd.Flags().GetInt("score")
		cones, _ := cmd.Flags().GetInt("cones")
		scans, _ := cmd.Flags().GetInt("scans")
		touches, _ := cmd.Flags().GetInt("touches")
		duration, _ := cmd.Flags().GetFloat64("duration")
		if duration <= 0 {
			duration = float64(drill.TimeLimitSeconds)
		}

		now := time.Now()
		session := telemetry.Start(drillID, avatar.DerivedAgeBand(now), now.Add(-time.Duration(duration*float64(time.Second))))
		session.Score = score
		session.ConesCollected = cones
		session.ScansCount = scans
		session.TouchesMovedCount = touches
		session.Finalize(now)

		if err := a.store.SessionRepo().Append(ctx, session); err != nil {
			return fmt.Errorf("record session: %w", err)
		}

		svc, err := a.progressionService(ctx)
		if err != nil {
			return err
		}
		xp := score*xpPerScorePoint + cones*xpPerCone + scans*xpPerScan
		result, err := svc.AwardXP(ctx, xp, progression.SkillsForTags(drill.SkillTags), session)
		if err != nil {
			return fmt.Errorf("award XP: %w", err)
		}

		printFeedback(recommend.GenerateFeedback(session))
		printAward(result, xp)
		return nil
	},
}

func init() {
	trainCmd.Flags().String("drill", "", "Drill id from the catalog")
	trainCmd.Flags().Int("score", 0, "Points scored in the drill")
	trainCmd.Flags().Int("cones", 0, "Cones collected")
	trainCmd.Flags().Int("scans", 0, "Scans performed")
	trainCmd.Flags().Int("touches", 0, "Ball touches moved")
	trainCmd.Flags().Float64("duration", 0, "Session duration in seconds (defaults to the drill time limit)")
	trainCmd.MarkFlagRequired("drill")
}

func printFeedback(fb recommend.Feedback) {
	fmt.Println(styleTitle.Render(fb.OverallRating.DisplayName()))
	for _, s := range fb.Strengths {
		fmt.Println(styleSuccess.Render("  ✓ ") + s)
	}
	for _, s := range fb.AreasForImprovement {
		fmt.Println(styleWarn.Render("  ▲ ") + s)
	}
	for _, s := range fb.SpecificTips {
		fmt.Println(styleDim.Render("  tip: " + s))
	}
	fmt.Println(fb.NextSteps)
}

func printAward(result *progression.AwardResult, xp int) {
	fmt.Println()
	fmt.Printf("+%d XP (total %d, level %d)\n", xp, result.Progress.TotalXP, result.Progress.Level)
	if result.LeveledUp {
		fmt.Println(styleSuccess.Render(fmt.Sprintf("Level up! %d → %d, rank %s %s",
			result.FromLevel, result.Progress.Level,
			result.Progress.CurrentRank.Icon(), result.Progress.CurrentRank.DisplayName())))
	}
	catalog := badges.NewEvaluator(badges.DefaultCatalog(), nil)
	for _, id := range result.NewBadgeIDs {
		name := id
		if b, ok := catalog.ByID(id); ok {
			name = b.Icon + " " + b.Name
		}
		fmt.Println(styleSuccess.Render("New badge: " + name))
	}
}
