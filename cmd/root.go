package cmd

import (
	"github.com/spelsmart/spelsmart/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "spelsmart",
	Short: "Tactical football trainer for kids",
	Long:  "SpelSmart — terminal companion for young footballers: record drill sessions, earn XP and badges, and get drill recommendations.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides SPELSMART_DB env var)")
	rootCmd.PersistentFlags().String("content", "", "Path to a directory with drills.json and scenarios.json (overrides SPELSMART_CONTENT env var)")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(trainCmd)
	rootCmd.AddCommand(drillsCmd)
	rootCmd.AddCommand(challengeCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(badgesCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then SPELSMART_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
