package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rsoares/roadmap/internal/db"
	"github.com/rsoares/roadmap/internal/domain"
)

// SQLiteItemRepo implements ItemRepo on SQLite.
type SQLiteItemRepo struct {
	db db.DBTX
}

func NewSQLiteItemRepo(db db.DBTX) *SQLiteItemRepo {
	return &SQLiteItemRepo{db: db}
}

const itemColumns = `id, name, area, team_id, team_name, start_date, end_date,
	progress, status, comments, links, source, is_manual_edit,
	dependencies, swimlane, created_at, updated_at`

func (r *SQLiteItemRepo) Create(ctx context.Context, it *domain.Item) error {
	query := `INSERT INTO items (` + itemColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		it.ID,
		it.Name,
		string(it.Area),
		nullableStr(it.TeamID),
		it.TeamName,
		it.StartDate.Format(dateLayout),
		it.EndDate.Format(dateLayout),
		it.Progress,
		string(it.Status),
		it.Comments,
		encodeStrings(it.Links),
		it.Source,
		boolToInt(it.ManualEdit),
		encodeStrings(it.DependencyIDs),
		it.Swimlane,
		it.CreatedAt.Format(time.RFC3339),
		it.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting item: %w", err)
	}
	return nil
}

func (r *SQLiteItemRepo) GetByID(ctx context.Context, id string) (*domain.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	it, err := scanItem(row.Scan)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("item not found")
	}
	return it, err
}

func (r *SQLiteItemRepo) List(ctx context.Context) ([]*domain.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	defer rows.Close()

	var items []*domain.Item
	for rows.Next() {
		it, err := scanItem(rows.Scan)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating items: %w", err)
	}
	return items, nil
}

func (r *SQLiteItemRepo) Update(ctx context.Context, it *domain.Item) error {
	query := `UPDATE items SET name = ?, area = ?, team_id = ?, team_name = ?,
		start_date = ?, end_date = ?, progress = ?, status = ?, comments = ?,
		links = ?, source = ?, is_manual_edit = ?, dependencies = ?,
		swimlane = ?, updated_at = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		it.Name,
		string(it.Area),
		nullableStr(it.TeamID),
		it.TeamName,
		it.StartDate.Format(dateLayout),
		it.EndDate.Format(dateLayout),
		it.Progress,
		string(it.Status),
		it.Comments,
		encodeStrings(it.Links),
		it.Source,
		boolToInt(it.ManualEdit),
		encodeStrings(it.DependencyIDs),
		it.Swimlane,
		it.UpdatedAt.Format(time.RFC3339),
		it.ID,
	)
	if err != nil {
		return fmt.Errorf("updating item: %w", err)
	}
	return nil
}

func (r *SQLiteItemRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting item: %w", err)
	}
	return nil
}

// UpsertFromTracker inserts or updates the item row carrying the same
// source label. A row whose manual-edit flag is set is left untouched:
// human edits always win over tracker data.
func (r *SQLiteItemRepo) UpsertFromTracker(ctx context.Context, it *domain.Item) (bool, error) {
	var existingID string
	var manualEdit int
	row := r.db.QueryRowContext(ctx,
		`SELECT id, is_manual_edit FROM items WHERE source = ?`, it.Source)
	err := row.Scan(&existingID, &manualEdit)

	switch {
	case err == sql.ErrNoRows:
		if err := r.Create(ctx, it); err != nil {
			return false, err
		}
		return true, nil
	case err != nil:
		return false, fmt.Errorf("looking up tracker item: %w", err)
	}

	if intToBool(manualEdit) {
		return false, nil
	}

	// Tracker-owned fields only; the row keeps its id and creation time.
	query := `UPDATE items SET name = ?, start_date = ?, end_date = ?,
		progress = ?, status = ?, updated_at = ?
		WHERE id = ? AND is_manual_edit = 0`
	res, err := r.db.ExecContext(ctx, query,
		it.Name,
		it.StartDate.Format(dateLayout),
		it.EndDate.Format(dateLayout),
		it.Progress,
		string(it.Status),
		it.UpdatedAt.Format(time.RFC3339),
		existingID,
	)
	if err != nil {
		return false, fmt.Errorf("updating tracker item: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("checking tracker item update: %w", err)
	}
	return n > 0, nil
}

// scanItem reads one item row through the given scan function, which
// works for both *sql.Row and *sql.Rows.
func scanItem(scan func(dest ...any) error) (*domain.Item, error) {
	var it domain.Item
	var areaStr, statusStr string
	var startStr, endStr, createdStr, updatedStr string
	var linksRaw, depsRaw string
	var teamID sql.NullString
	var manualEdit int

	err := scan(
		&it.ID, &it.Name, &areaStr, &teamID, &it.TeamName,
		&startStr, &endStr, &it.Progress, &statusStr, &it.Comments,
		&linksRaw, &it.Source, &manualEdit, &depsRaw, &it.Swimlane,
		&createdStr, &updatedStr,
	)
	if err != nil {
		return nil, err
	}

	it.Area = domain.Area(areaStr)
	it.Status = domain.ItemStatus(statusStr)
	if !it.Area.Valid() {
		return nil, fmt.Errorf("item %s: unknown area %q in storage", it.ID, areaStr)
	}
	if !it.Status.Valid() {
		return nil, fmt.Errorf("item %s: unknown status %q in storage", it.ID, statusStr)
	}

	if teamID.Valid {
		it.TeamID = &teamID.String
	}
	it.ManualEdit = intToBool(manualEdit)
	it.Links = decodeStrings(linksRaw)
	it.DependencyIDs = decodeStrings(depsRaw)

	var parseErr error
	if it.StartDate, parseErr = time.Parse(dateLayout, startStr); parseErr != nil {
		return nil, fmt.Errorf("parsing start_date: %w", parseErr)
	}
	if it.EndDate, parseErr = time.Parse(dateLayout, endStr); parseErr != nil {
		return nil, fmt.Errorf("parsing end_date: %w", parseErr)
	}
	if it.CreatedAt, parseErr = time.Parse(time.RFC3339, createdStr); parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	if it.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedStr); parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}

	return &it, nil
}
