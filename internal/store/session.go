package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/spelsmart/spelsmart/internal/profile"
	"github.com/spelsmart/spelsmart/internal/telemetry"
)

// SessionRepo is the append-only drill session log. Sessions are written
// once, after finalization, and never updated.
type SessionRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

// Append stores a finalized session with the next global sequence number.
func (r *SessionRepo) Append(ctx context.Context, s *telemetry.DrillSession) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO drill_sessions (id, sequence, drill_id, age_band, start_at, end_at, duration_sec, score, cones_collected, scans_count, touches_moved_count)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.ID.String(),
		seqNum,
		s.DrillID,
		string(s.AgeBand),
		s.StartAt.UTC().Format(time.RFC3339Nano),
		s.EndAt.UTC().Format(time.RFC3339Nano),
		s.DurationSec,
		s.Score,
		s.ConesCollected,
		s.ScansCount,
		s.TouchesMovedCount,
	)
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// List returns the full session history in chronological order.
func (r *SessionRepo) List(ctx context.Context) ([]telemetry.DrillSession, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, drill_id, age_band, start_at, end_at, duration_sec, score, cones_collected, scans_count, touches_moved_count
		 FROM drill_sessions ORDER BY sequence ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []telemetry.DrillSession
	for rows.Next() {
		var (
			s                    telemetry.DrillSession
			id, band, start, end string
		)
		if err := rows.Scan(&id, &s.DrillID, &band, &start, &end, &s.DurationSec, &s.Score, &s.ConesCollected, &s.ScansCount, &s.TouchesMovedCount); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		s.ID, _ = uuid.Parse(id)
		s.AgeBand = profile.AgeBand(band)
		s.StartAt, _ = time.Parse(time.RFC3339Nano, start)
		s.EndAt, _ = time.Parse(time.RFC3339Nano, end)
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sessions: %w", err)
	}
	return sessions, nil
}

// CountForDrill returns how many sessions exist for a drill id.
func (r *SessionRepo) CountForDrill(ctx context.Context, drillID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM drill_sessions WHERE drill_id = ?`, drillID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count sessions: %w", err)
	}
	return n, nil
}
