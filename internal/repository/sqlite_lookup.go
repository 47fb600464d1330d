package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rsoares/roadmap/internal/db"
	"github.com/rsoares/roadmap/internal/domain"
)

// nameUsageRepo is the shared SQLite implementation behind the area and
// team repositories; both tables have the identical id/name/usage shape.
type nameUsageRepo struct {
	db    db.DBTX
	table string
}

type nameUsageRow struct {
	ID         string
	Name       string
	UsageCount int
	CreatedAt  time.Time
}

func (r *nameUsageRepo) create(ctx context.Context, row *nameUsageRow) error {
	query := fmt.Sprintf(
		`INSERT INTO %s (id, name, usage_count, created_at) VALUES (?, ?, ?, ?)`, r.table)
	_, err := r.db.ExecContext(ctx, query,
		row.ID, row.Name, row.UsageCount, row.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("inserting into %s: %w", r.table, err)
	}
	return nil
}

func (r *nameUsageRepo) getByName(ctx context.Context, name string) (*nameUsageRow, error) {
	query := fmt.Sprintf(
		`SELECT id, name, usage_count, created_at FROM %s WHERE name = ?`, r.table)
	var row nameUsageRow
	var createdStr string
	err := r.db.QueryRowContext(ctx, query, name).
		Scan(&row.ID, &row.Name, &row.UsageCount, &createdStr)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", r.table, err)
	}
	row.CreatedAt, err = time.Parse(time.RFC3339, createdStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &row, nil
}

func (r *nameUsageRepo) list(ctx context.Context) ([]*nameUsageRow, error) {
	query := fmt.Sprintf(
		`SELECT id, name, usage_count, created_at FROM %s
		 ORDER BY usage_count DESC, name`, r.table)
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", r.table, err)
	}
	defer rows.Close()

	var out []*nameUsageRow
	for rows.Next() {
		var row nameUsageRow
		var createdStr string
		if err := rows.Scan(&row.ID, &row.Name, &row.UsageCount, &createdStr); err != nil {
			return nil, fmt.Errorf("scanning %s row: %w", r.table, err)
		}
		if row.CreatedAt, err = time.Parse(time.RFC3339, createdStr); err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		out = append(out, &row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating %s: %w", r.table, err)
	}
	return out, nil
}

func (r *nameUsageRepo) incrementUsage(ctx context.Context, id string) error {
	query := fmt.Sprintf(
		`UPDATE %s SET usage_count = usage_count + 1 WHERE id = ?`, r.table)
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("incrementing %s usage: %w", r.table, err)
	}
	return nil
}

// SQLiteAreaRepo implements AreaRepo.
type SQLiteAreaRepo struct {
	inner nameUsageRepo
}

func NewSQLiteAreaRepo(db db.DBTX) *SQLiteAreaRepo {
	return &SQLiteAreaRepo{inner: nameUsageRepo{db: db, table: "areas"}}
}

func (r *SQLiteAreaRepo) Create(ctx context.Context, a *domain.AreaRecord) error {
	return r.inner.create(ctx, &nameUsageRow{
		ID: a.ID, Name: a.Name, UsageCount: a.UsageCount, CreatedAt: a.CreatedAt,
	})
}

func (r *SQLiteAreaRepo) GetByName(ctx context.Context, name string) (*domain.AreaRecord, error) {
	row, err := r.inner.getByName(ctx, name)
	if err != nil || row == nil {
		return nil, err
	}
	return &domain.AreaRecord{
		ID: row.ID, Name: row.Name, UsageCount: row.UsageCount, CreatedAt: row.CreatedAt,
	}, nil
}

func (r *SQLiteAreaRepo) List(ctx context.Context) ([]*domain.AreaRecord, error) {
	rows, err := r.inner.list(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*domain.AreaRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, &domain.AreaRecord{
			ID: row.ID, Name: row.Name, UsageCount: row.UsageCount, CreatedAt: row.CreatedAt,
		})
	}
	return out, nil
}

func (r *SQLiteAreaRepo) IncrementUsage(ctx context.Context, id string) error {
	return r.inner.incrementUsage(ctx, id)
}

// SQLiteTeamRepo implements TeamRepo.
type SQLiteTeamRepo struct {
	inner nameUsageRepo
}

func NewSQLiteTeamRepo(db db.DBTX) *SQLiteTeamRepo {
	return &SQLiteTeamRepo{inner: nameUsageRepo{db: db, table: "teams"}}
}

func (r *SQLiteTeamRepo) Create(ctx context.Context, tm *domain.Team) error {
	return r.inner.create(ctx, &nameUsageRow{
		ID: tm.ID, Name: tm.Name, UsageCount: tm.UsageCount, CreatedAt: tm.CreatedAt,
	})
}

func (r *SQLiteTeamRepo) GetByName(ctx context.Context, name string) (*domain.Team, error) {
	row, err := r.inner.getByName(ctx, name)
	if err != nil || row == nil {
		return nil, err
	}
	return &domain.Team{
		ID: row.ID, Name: row.Name, UsageCount: row.UsageCount, CreatedAt: row.CreatedAt,
	}, nil
}

func (r *SQLiteTeamRepo) List(ctx context.Context) ([]*domain.Team, error) {
	rows, err := r.inner.list(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*domain.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, &domain.Team{
			ID: row.ID, Name: row.Name, UsageCount: row.UsageCount, CreatedAt: row.CreatedAt,
		})
	}
	return out, nil
}

func (r *SQLiteTeamRepo) IncrementUsage(ctx context.Context, id string) error {
	return r.inner.incrementUsage(ctx, id)
}
