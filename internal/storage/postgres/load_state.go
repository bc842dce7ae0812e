package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"

	"content_syncer/internal/domain"
)

type LoadStateStore struct {
	db *sqlx.DB
}

func NewLoadStateStore(db *sqlx.DB) *LoadStateStore {
	return &LoadStateStore{db: db}
}

func (s *LoadStateStore) Get(ctx context.Context, sourceID string) (*domain.LoadState, error) {
	var state domain.LoadState
	query := `
		SELECT id, source_id, last_loaded_at, total_loaded
		FROM load_state
		WHERE source_id = $1`

	err := s.db.GetContext(ctx, &state, query, sourceID)
	if err == sql.ErrNoRows {
		// Return empty state for new sources
		return &domain.LoadState{
			SourceID:     sourceID,
			LastLoadedAt: time.Time{},
			TotalLoaded:  0,
		}, nil
	}
	if err != nil {
		return nil, err
	}
	return &state, nil
}

func (s *LoadStateStore) Update(ctx context.Context, state *domain.LoadState) error {
	query := `
		INSERT INTO load_state (source_id, last_loaded_at, total_loaded)
		VALUES ($1, $2, $3)
		ON CONFLICT (source_id) DO UPDATE SET
			last_loaded_at = EXCLUDED.last_loaded_at,
			total_loaded = EXCLUDED.total_loaded`

	_, err := s.db.ExecContext(ctx, query,
		state.SourceID,
		state.LastLoadedAt,
		state.TotalLoaded,
	)
	return err
}
