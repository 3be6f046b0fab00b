package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"
)

// ErrRoundNotFound is returned when no snapshot exists for a league/round pair.
var ErrRoundNotFound = errors.New("round snapshot not found")

// RoundRepository persists raw round payloads so a restart does not have to
// re-fetch every round file from the crawler host. The in-memory corpus cache
// stays the source of truth for a running session; this is only a fetch cache.
type RoundRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

func NewRoundRepository(sqlDB *sql.DB, logger zerolog.Logger) *RoundRepository {
	return &RoundRepository{db: sqlDB, logger: logger}
}

// Get returns the stored payload and the meta-index stamp it was fetched
// under. Callers compare the stamp against the current index to decide
// whether the snapshot is still fresh.
func (r *RoundRepository) Get(ctx context.Context, leagueID, spieltag string) ([]byte, string, error) {
	var payload []byte
	var lastUpdated string

	err := r.db.QueryRowContext(ctx,
		`SELECT payload, last_updated FROM rounds WHERE league_id = ? AND spieltag = ?`,
		leagueID, spieltag,
	).Scan(&payload, &lastUpdated)
	if err == sql.ErrNoRows {
		return nil, "", ErrRoundNotFound
	}
	if err != nil {
		r.logger.Error().Err(err).Str("league_id", leagueID).Str("spieltag", spieltag).Msg("failed to read round snapshot")
		return nil, "", err
	}

	return payload, lastUpdated, nil
}

// Put inserts or refreshes the snapshot for a league/round pair.
func (r *RoundRepository) Put(ctx context.Context, leagueID, spieltag, lastUpdated string, payload []byte) error {
	id, err := gonanoid.New()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO rounds (id, league_id, spieltag, last_updated, payload, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT (league_id, spieltag) DO UPDATE SET
		   last_updated = excluded.last_updated,
		   payload = excluded.payload,
		   updated_at = excluded.updated_at`,
		id, leagueID, spieltag, lastUpdated, payload, now, now,
	)
	if err != nil {
		r.logger.Error().Err(err).Str("league_id", leagueID).Str("spieltag", spieltag).Msg("failed to store round snapshot")
		return err
	}

	return nil
}

// DeleteLeague drops all snapshots for one league, used when a league is
// explicitly invalidated.
func (r *RoundRepository) DeleteLeague(ctx context.Context, leagueID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM rounds WHERE league_id = ?`, leagueID)
	if err != nil {
		r.logger.Error().Err(err).Str("league_id", leagueID).Msg("failed to delete round snapshots")
	}
	return err
}
