package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var challengeCmd = &cobra.Command{
	Use:   "challenge",
	Short: "Show or complete today's challenge",
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
		svc, err := a.progressionService(ctx)
		if err != nil {
			return err
		}
		challenges := a.challengeService(svc)

		today, err := challenges.TodaysChallenge(ctx, avatar.AgeBand)
		if err != nil {
			return err
		}

		if done, _ := cmd.Flags().GetBool("complete"); done {
			before := today.IsCompleted
			today, err = challenges.Complete(ctx, today.ID)
			if err != nil {
				return err
			}
			if before {
				fmt.Println("Already completed today, come back tomorrow!")
			} else {
				fmt.Println(styleSuccess.Render(fmt.Sprintf("Challenge complete! +%d XP", today.BonusXP)))
				if today.SpecialReward != "" {
					fmt.Println(styleSuccess.Render("Reward: " + today.SpecialReward))
				}
			}
		} else {
			fmt.Println(styleTitle.Render("Today's challenge: " + today.Title))
			fmt.Println(today.Description)
			fmt.Printf("Scenario: %s\n", today.Scenario.Title)
			fmt.Printf("Bonus: %d XP", today.BonusXP)
			if today.SpecialReward != "" {
				fmt.Printf(", %s", today.SpecialReward)
			}
			fmt.Println()
			if today.IsCompleted {
				fmt.Println(styleSuccess.Render("Completed ✓"))
			} else {
				fmt.Println(styleDim.Render("Run 'spelsmart challenge --complete' when you are done."))
			}
		}

		streak, err := challenges.Streak(ctx)
		if err != nil {
			return err
		}
		if streak > 0 {
			fmt.Printf("Challenge streak: %d day(s) 🔥\n", streak)
		}
		return nil
	},
}

func init() {
	challengeCmd.Flags().Bool("complete", false, "Mark today's challenge as completed")
}
