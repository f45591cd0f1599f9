package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// UnlockRepo stamps badge unlock times. The first stamp wins; repeated
// unlocks of the same badge are no-ops.
type UnlockRepo struct {
	db *sql.DB
}

// RecordUnlock stores the unlock time for a badge if none exists yet.
func (r *UnlockRepo) RecordUnlock(ctx context.Context, badgeID string, at time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO badge_unlocks (badge_id, unlocked_at) VALUES (?, ?)`,
		badgeID, at.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("record unlock: %w", err)
	}
	return nil
}

// Unlocks returns the unlock time for every earned badge.
func (r *UnlockRepo) Unlocks(ctx context.Context) (map[string]time.Time, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT badge_id, unlocked_at FROM badge_unlocks`,
	)
	if err != nil {
		return nil, fmt.Errorf("query unlocks: %w", err)
	}
	defer rows.Close()

	out := make(map[string]time.Time)
	for rows.Next() {
		var id, at string
		if err := rows.Scan(&id, &at); err != nil {
			return nil, fmt.Errorf("scan unlock: %w", err)
		}
		t, err := time.Parse(time.RFC3339Nano, at)
		if err != nil {
			continue
		}
		out[id] = t
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate unlocks: %w", err)
	}
	return out, nil
}
