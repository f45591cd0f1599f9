package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/spelsmart/spelsmart/internal/progression"
)

// ProgressRepo persists the single player progress aggregate as a JSON
// snapshot row.
type ProgressRepo struct {
	db *sql.DB
}

// Load returns the stored aggregate, or nil when none exists. A row that
// fails to decode is treated as missing so the caller starts from a
// fresh aggregate instead of crashing.
func (r *ProgressRepo) Load(ctx context.Context) (*progression.PlayerProgress, error) {
	var data string
	err := r.db.QueryRowContext(ctx,
		`SELECT data FROM player_progress WHERE id = 1`,
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query progress: %w", err)
	}

	var p progression.PlayerProgress
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		// Malformed persisted state: recover locally, never propagate.
		return nil, nil
	}
	if p.SkillXP == nil {
		p.SkillXP = make(map[progression.Skill]int)
	}
	if p.EarnedBadges == nil {
		p.EarnedBadges = []string{}
	}
	return &p, nil
}

// Save upserts the aggregate snapshot.
func (r *ProgressRepo) Save(ctx context.Context, p *progression.PlayerProgress) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode progress: %w", err)
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO player_progress (id, data, updated_at) VALUES (1, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		string(data), time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}
