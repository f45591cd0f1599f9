package cmd

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/spelsmart/spelsmart/internal/badges"
	"github.com/spf13/cobra"
)

var badgesCmd = &cobra.Command{
	Use:   "badges",
	Short: "Show the badge collection",
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
		unlocks, err := a.store.UnlockRepo().Unlocks(ctx)
		if err != nil {
			return err
		}

		fmt.Println(styleTitle.Render("Badges"))
		for _, b := range badges.DefaultCatalog() {
			rarity := lipgloss.NewStyle().Foreground(lipgloss.Color(b.Rarity.Color())).Render(b.Rarity.DisplayName())
			if p.HasBadge(b.ID) {
				line := fmt.Sprintf("  %s %s (%s)", b.Icon, b.Name, rarity)
				if at, ok := unlocks[b.ID]; ok {
					line += styleDim.Render(" earned " + at.Local().Format("2006-01-02"))
				}
				fmt.Println(styleSuccess.Render("✓") + line)
			} else {
				fmt.Printf("  %s %s (%s)\n", styleDim.Render(b.Icon+" "+b.Name), styleDim.Render(b.Description), rarity)
			}
		}
		return nil
	},
}
