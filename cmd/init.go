package cmd

import (
	"fmt"

	"github.com/spelsmart/spelsmart/internal/profile"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create your player profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()
		ctx := cmd.Context()

		name, _ := cmd.Flags().GetString("name")
		age, _ := cmd.Flags().GetInt("age")
		pos, _ := cmd.Flags().GetString("position")
		position := profile.Position(pos)
		if !position.Valid() {
			return fmt.Errorf("unknown position %q (goalkeeper, defender, midfielder, forward)", position)
		}

		avatar := profile.NewAvatar(name, profile.AgeBandFromYears(age), position)
		if err := a.store.AvatarRepo().Save(ctx, avatar); err != nil {
			return fmt.Errorf("save avatar: %w", err)
		}

		fmt.Println(styleTitle.Render("Welcome to SpelSmart, " + name + "!"))
		fmt.Printf("Age group %s, favorite position %s.\n", avatar.AgeBand, position.DisplayName())
		fmt.Println(styleDim.Render("Run 'spelsmart drills' to see where to start."))
		return nil
	},
}

func init() {
	initCmd.Flags().String("name", "", "Player name")
	initCmd.Flags().Int("age", 10, "Player age in years")
	initCmd.Flags().String("position", "midfielder", "Favorite position")
	initCmd.MarkFlagRequired("name")
}
