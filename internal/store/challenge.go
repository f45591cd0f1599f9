package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spelsmart/spelsmart/internal/challenge"
)

// ChallengeRepo persists the daily challenge history, one JSON row per
// calendar date.
type ChallengeRepo struct {
	db *sql.DB
}

// ByID returns a challenge, or nil when none exists for the id.
// Malformed rows are treated as missing.
func (r *ChallengeRepo) ByID(ctx context.Context, id string) (*challenge.DailyChallenge, error) {
	var data string
	err := r.db.QueryRowContext(ctx,
		`SELECT data FROM daily_challenges WHERE id = ?`, id,
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query challenge: %w", err)
	}

	var c challenge.DailyChallenge
	if err := json.Unmarshal([]byte(data), &c); err != nil {
		return nil, nil
	}
	return &c, nil
}

// Save upserts a challenge by id. The completed column mirrors the JSON
// payload so streak queries don't need to decode every row.
func (r *ChallengeRepo) Save(ctx context.Context, c *challenge.DailyChallenge) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode challenge: %w", err)
	}
	completed := 0
	if c.IsCompleted {
		completed = 1
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO daily_challenges (id, date, completed, data) VALUES (?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET date = excluded.date, completed = excluded.completed, data = excluded.data`,
		c.ID, c.Date.Format("2006-01-02"), completed, string(data),
	)
	if err != nil {
		return fmt.Errorf("save challenge: %w", err)
	}
	return nil
}

// CompletedByDateDesc returns completed challenges newest first,
// skipping rows that fail to decode.
func (r *ChallengeRepo) CompletedByDateDesc(ctx context.Context) ([]challenge.DailyChallenge, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT data FROM daily_challenges WHERE completed = 1 ORDER BY date DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("query completed challenges: %w", err)
	}
	defer rows.Close()

	var out []challenge.DailyChallenge
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("scan challenge: %w", err)
		}
		var c challenge.DailyChallenge
		if err := json.Unmarshal([]byte(data), &c); err != nil {
			continue
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate challenges: %w", err)
	}
	return out, nil
}
