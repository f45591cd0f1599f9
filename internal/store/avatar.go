package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/spelsmart/spelsmart/internal/profile"
)

// AvatarRepo persists the player's avatar as a JSON snapshot row.
type AvatarRepo struct {
	db *sql.DB
}

// Load returns the stored avatar, or nil when none exists. Malformed
// rows are treated as missing.
func (r *AvatarRepo) Load(ctx context.Context) (*profile.Avatar, error) {
	var data string
	err := r.db.QueryRowContext(ctx,
		`SELECT data FROM avatar WHERE id = 1`,
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query avatar: %w", err)
	}

	var a profile.Avatar
	if err := json.Unmarshal([]byte(data), &a); err != nil {
		return nil, nil
	}
	return &a, nil
}

// Save upserts the avatar snapshot.
func (r *AvatarRepo) Save(ctx context.Context, a *profile.Avatar) error {
	data, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("encode avatar: %w", err)
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO avatar (id, data, updated_at) VALUES (1, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		string(data), time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("save avatar: %w", err)
	}
	return nil
}
