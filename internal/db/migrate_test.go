package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	// Run migrations a second time — should succeed without error.
	err := Migrate(db)
	require.NoError(t, err)

	err = Migrate(db)
	require.NoError(t, err)
}

func TestMigrate_CreatesAllTables(t *testing.T) {
	db := openTestDB(t)

	expected := []string{"areas", "teams", "items", "milestones", "alerts", "tracker_issues", "tracker_config"}
	for _, table := range expected {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_CreatesIndexes(t *testing.T) {
	db := openTestDB(t)

	expected := []string{
		"idx_items_area",
		"idx_items_status",
		"idx_items_source",
		"idx_tracker_issues_synced",
	}
	for _, idx := range expected {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='index' AND name=?`, idx).Scan(&name)
		require.NoError(t, err, "index %s should exist", idx)
	}
}

func TestMigrate_ForeignKeysEnabled(t *testing.T) {
	db := openTestDB(t)

	var fk int
	err := db.QueryRow(`PRAGMA foreign_keys`).Scan(&fk)
	require.NoError(t, err)
	assert.Equal(t, 1, fk, "foreign keys should be enabled")
}

func TestMigrate_ItemCheckConstraints(t *testing.T) {
	db := openTestDB(t)

	insert := `INSERT INTO items (id, name, area, start_date, end_date, progress, status, created_at, updated_at)
		VALUES (?, 'Item', ?, '2025-01-01', '2025-06-30', ?, ?, '2025-01-01T00:00:00Z', '2025-01-01T00:00:00Z')`

	_, err := db.Exec(insert, "i1", "marketing", 0, "todo")
	assert.Error(t, err, "unknown area should be rejected by CHECK constraint")

	_, err = db.Exec(insert, "i2", "engineering", 150, "todo")
	assert.Error(t, err, "out-of-range progress should be rejected by CHECK constraint")

	_, err = db.Exec(insert, "i3", "engineering", 0, "blocked")
	assert.Error(t, err, "unknown status should be rejected by CHECK constraint")

	_, err = db.Exec(insert, "i4", "engineering", 50, "in_progress")
	assert.NoError(t, err)
}

func TestMigrate_TrackerConfigSingleRow(t *testing.T) {
	db := openTestDB(t)

	insert := `INSERT INTO tracker_config (id, base_url, email, api_token, created_at, updated_at)
		VALUES (?, 'https://x', 'a@b', 't', '2025-01-01T00:00:00Z', '2025-01-01T00:00:00Z')`

	_, err := db.Exec(insert, 1)
	require.NoError(t, err)

	_, err = db.Exec(insert, 2)
	assert.Error(t, err, "only row id 1 is allowed")
}

func TestMigrate_LookupNamesUnique(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO teams (id, name, created_at) VALUES ('t1', 'Platform', '2025-01-01T00:00:00Z')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO teams (id, name, created_at) VALUES ('t2', 'Platform', '2025-01-01T00:00:00Z')`)
	assert.Error(t, err, "duplicate team name should violate the unique constraint")
}
