package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rsoares/roadmap/internal/db"
	"github.com/rsoares/roadmap/internal/domain"
)

// SQLiteTrackerConfigRepo implements TrackerConfigRepo. The table holds a
// single row; Save replaces it.
type SQLiteTrackerConfigRepo struct {
	db db.DBTX
}

func NewSQLiteTrackerConfigRepo(db db.DBTX) *SQLiteTrackerConfigRepo {
	return &SQLiteTrackerConfigRepo{db: db}
}

func (r *SQLiteTrackerConfigRepo) Get(ctx context.Context) (*domain.TrackerConfig, error) {
	query := `SELECT base_url, email, api_token, created_at, updated_at
		FROM tracker_config WHERE id = 1`
	var cfg domain.TrackerConfig
	var createdStr, updatedStr string
	err := r.db.QueryRowContext(ctx, query).
		Scan(&cfg.BaseURL, &cfg.Email, &cfg.APIToken, &createdStr, &updatedStr)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading tracker config: %w", err)
	}
	if cfg.CreatedAt, err = time.Parse(time.RFC3339, createdStr); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if cfg.UpdatedAt, err = time.Parse(time.RFC3339, updatedStr); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &cfg, nil
}

func (r *SQLiteTrackerConfigRepo) Save(ctx context.Context, cfg *domain.TrackerConfig) error {
	query := `INSERT INTO tracker_config (id, base_url, email, api_token, created_at, updated_at)
		VALUES (1, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			base_url = excluded.base_url,
			email = excluded.email,
			api_token = excluded.api_token,
			updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query,
		cfg.BaseURL, cfg.Email, cfg.APIToken,
		cfg.CreatedAt.Format(time.RFC3339), cfg.UpdatedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("saving tracker config: %w", err)
	}
	return nil
}
