package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rsoares/roadmap/internal/db"
	"github.com/rsoares/roadmap/internal/domain"
)

// SQLiteAlertRepo implements AlertRepo. Alerts live until dismissed.
type SQLiteAlertRepo struct {
	db db.DBTX
}

func NewSQLiteAlertRepo(db db.DBTX) *SQLiteAlertRepo {
	return &SQLiteAlertRepo{db: db}
}

func (r *SQLiteAlertRepo) Create(ctx context.Context, a *domain.Alert) error {
	query := `INSERT INTO alerts (id, kind, title, description, item_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		a.ID, string(a.Kind), a.Title, a.Description,
		nullableStr(a.ItemID), a.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("inserting alert: %w", err)
	}
	return nil
}

func (r *SQLiteAlertRepo) List(ctx context.Context) ([]*domain.Alert, error) {
	query := `SELECT id, kind, title, description, item_id, created_at
		FROM alerts ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing alerts: %w", err)
	}
	defer rows.Close()

	var alerts []*domain.Alert
	for rows.Next() {
		var a domain.Alert
		var kindStr, createdStr string
		var itemID sql.NullString
		if err := rows.Scan(&a.ID, &kindStr, &a.Title, &a.Description, &itemID, &createdStr); err != nil {
			return nil, fmt.Errorf("scanning alert row: %w", err)
		}
		a.Kind = domain.AlertKind(kindStr)
		if !a.Kind.Valid() {
			return nil, fmt.Errorf("alert %s: unknown kind %q in storage", a.ID, kindStr)
		}
		if itemID.Valid {
			a.ItemID = &itemID.String
		}
		if a.CreatedAt, err = time.Parse(time.RFC3339, createdStr); err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		alerts = append(alerts, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating alerts: %w", err)
	}
	return alerts, nil
}

func (r *SQLiteAlertRepo) Dismiss(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM alerts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("dismissing alert: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking alert dismissal: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("alert not found")
	}
	return nil
}
