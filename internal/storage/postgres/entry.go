package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"

	"content_syncer/internal/domain"
)

// EntryStore persists content entries so the rendering layer can read them
// between syncer runs.
type EntryStore struct {
	db *sqlx.DB
}

func NewEntryStore(db *sqlx.DB) *EntryStore {
	return &EntryStore{db: db}
}

// Clear wipes all entries at the start of a load cycle.
func (s *EntryStore) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM entries")
	return err
}

// Set commits one entry, last write wins on duplicate identifiers.
func (s *EntryStore) Set(ctx context.Context, entry domain.Entry) error {
	data, err := json.Marshal(entry.Data)
	if err != nil {
		return fmt.Errorf("marshal entry data: %w", err)
	}

	query := `
		INSERT INTO entries (id, collection, data, body, rendered)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			collection = EXCLUDED.collection,
			data = EXCLUDED.data,
			body = EXCLUDED.body,
			rendered = EXCLUDED.rendered,
			loaded_at = now()`

	_, err = s.db.ExecContext(ctx, query,
		entry.ID,
		string(entry.Collection),
		data,
		entry.Body,
		entry.Rendered,
	)
	return err
}

// Get reads one entry by identifier. Data comes back as the raw JSON
// mapping.
func (s *EntryStore) Get(ctx context.Context, id string) (*domain.Entry, error) {
	var row struct {
		ID         string `db:"id"`
		Collection string `db:"collection"`
		Data       []byte `db:"data"`
		Body       string `db:"body"`
		Rendered   string `db:"rendered"`
	}

	query := `SELECT id, collection, data, body, rendered FROM entries WHERE id = $1`
	if err := s.db.GetContext(ctx, &row, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return &domain.Entry{
		ID:         row.ID,
		Collection: domain.Collection(row.Collection),
		Data:       json.RawMessage(row.Data),
		Body:       row.Body,
		Rendered:   row.Rendered,
	}, nil
}

// Count reports how many entries a collection holds.
func (s *EntryStore) Count(ctx context.Context, collection domain.Collection) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count,
		"SELECT COUNT(*) FROM entries WHERE collection = $1", string(collection))
	return count, err
}
