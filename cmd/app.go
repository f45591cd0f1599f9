package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spelsmart/spelsmart/internal/badges"
	"github.com/spelsmart/spelsmart/internal/challenge"
	"github.com/spelsmart/spelsmart/internal/content"
	"github.com/spelsmart/spelsmart/internal/profile"
	"github.com/spelsmart/spelsmart/internal/progression"
	"github.com/spelsmart/spelsmart/internal/store"
	"github.com/spf13/cobra"
)

// app bundles the store and catalogs every subcommand needs.
type app struct {
	store     *store.Store
	drills    *content.Drills
	scenarios *content.Scenarios
}

// openApp opens the store and loads the content catalogs. Callers must
// Close the returned app.
func openApp(cmd *cobra.Command) (*app, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	drills, scenarios, err := content.LoadDir(resolveContentDir(cmd))
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("load content: %w", err)
	}

	return &app{store: st, drills: drills, scenarios: scenarios}, nil
}

// Close releases the underlying store.
func (a *app) Close() error {
	return a.store.Close()
}

// progressionService builds the XP award pipeline: badge evaluation over
// the full session log, unlock stamping, snapshot persistence.
func (a *app) progressionService(ctx context.Context) (*progression.Service, error) {
	sessions, err := a.store.SessionRepo().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load sessions: %w", err)
	}
	eval := badges.NewEvaluator(badges.DefaultCatalog(), badges.NewHistoryCounter(sessions))
	return progression.NewService(a.store.ProgressRepo(), eval, a.store.UnlockRepo(), nil), nil
}

// challengeService wires the daily challenge flow to the progression
// service so completions award their bonus XP.
func (a *app) challengeService(svc *progression.Service) *challenge.Service {
	return challenge.NewService(a.store.ChallengeRepo(), svc, a.scenarios, nil)
}

// requireAvatar loads the stored avatar and fails with a hint when none
// exists yet.
func (a *app) requireAvatar(ctx context.Context) (*profile.Avatar, error) {
	av, err := a.store.AvatarRepo().Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load avatar: %w", err)
	}
	if av == nil {
		return nil, errors.New("no player profile yet, run 'spelsmart init' first")
	}
	return av, nil
}

// resolveContentDir returns the content directory using the --content
// flag, then the SPELSMART_CONTENT env var. Empty means built-in catalogs.
func resolveContentDir(cmd *cobra.Command) string {
	if dir, _ := cmd.Flags().GetString("content"); dir != "" {
		return dir
	}
	return os.Getenv("SPELSMART_CONTENT")
}
