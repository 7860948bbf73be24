package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
)

type documentStore struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewDocumentStore creates a store keeping one JSONB document per collection key
func NewDocumentStore(db *sql.DB, logger *zap.Logger) *documentStore {
	return &documentStore{
		db:     db,
		logger: logger,
	}
}

func (s *documentStore) Load(ctx context.Context, key string, dst any) (bool, error) {
	query := `
		SELECT document
		FROM collections
		WHERE key = $1
	`

	var raw []byte
	err := s.db.QueryRowContext(ctx, query, key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		s.logger.Error("Failed to load document", zap.String("key", key), zap.Error(err))
		return false, err
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

func (s *documentStore) Save(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}

	query := `
		INSERT INTO collections (key, document, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE
		SET document = EXCLUDED.document, updated_at = EXCLUDED.updated_at
	`

	_, err = s.db.ExecContext(ctx, query, key, string(raw), time.Now())
	if err != nil {
		s.logger.Error("Failed to save document", zap.String("key", key), zap.Error(err))
		return err
	}
	return nil
}
