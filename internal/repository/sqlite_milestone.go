package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/rsoares/roadmap/internal/db"
	"github.com/rsoares/roadmap/internal/domain"
)

// SQLiteMilestoneRepo implements MilestoneRepo. Milestones are create-only
// in the current surface; no update or delete is exposed.
type SQLiteMilestoneRepo struct {
	db db.DBTX
}

func NewSQLiteMilestoneRepo(db db.DBTX) *SQLiteMilestoneRepo {
	return &SQLiteMilestoneRepo{db: db}
}

func (r *SQLiteMilestoneRepo) Create(ctx context.Context, m *domain.Milestone) error {
	query := `INSERT INTO milestones (id, name, date, area, created_at)
		VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		m.ID, m.Name, m.Date.Format(dateLayout), m.Area,
		m.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("inserting milestone: %w", err)
	}
	return nil
}

func (r *SQLiteMilestoneRepo) List(ctx context.Context) ([]*domain.Milestone, error) {
	query := `SELECT id, name, date, area, created_at FROM milestones ORDER BY date`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing milestones: %w", err)
	}
	defer rows.Close()

	var milestones []*domain.Milestone
	for rows.Next() {
		var m domain.Milestone
		var dateStr, createdStr string
		if err := rows.Scan(&m.ID, &m.Name, &dateStr, &m.Area, &createdStr); err != nil {
			return nil, fmt.Errorf("scanning milestone row: %w", err)
		}
		if m.Date, err = time.Parse(dateLayout, dateStr); err != nil {
			return nil, fmt.Errorf("parsing milestone date: %w", err)
		}
		if m.CreatedAt, err = time.Parse(time.RFC3339, createdStr); err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		milestones = append(milestones, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating milestones: %w", err)
	}
	return milestones, nil
}
