package db

import (
	"database/sql"
	"fmt"
	"log/slog"
)

// migration is one additive schema step. Steps must be idempotent: they
// check the current schema before altering it, so re-running is safe.
type migration struct {
	version int
	name    string
	apply   func(db *sql.DB) error
}

// migrations lists the additive upgrades applied after create_tables.sql,
// in order. Databases created before a column existed get it here without
// losing rows; fresh databases already have every column and each step
// reduces to a no-op.
var migrations = []migration{
	{1, "add events.video_url", addColumn("events", "video_url", "TEXT")},
	{2, "add events.match_id", addColumn("events", "match_id", "INTEGER")},
}

// migrate creates the schema_migrations table, runs create_tables.sql,
// then applies any unapplied migrations in order.
//
// A failing additive step is logged and skipped rather than failing the
// open: the store stays usable with whatever columns exist, and features
// depending on the missing column degrade instead of crashing.
func migrate(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS schema_migrations (
		version INTEGER PRIMARY KEY
	)`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations: %w", err)
	}

	if _, err := db.Exec(CreateTablesSQL); err != nil {
		return fmt.Errorf("running create_tables: %w", err)
	}

	applied := make(map[int]bool)
	rows, err := db.Query("SELECT version FROM schema_migrations")
	if err != nil {
		return fmt.Errorf("querying schema_migrations: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var v int
		if err := rows.Scan(&v); err != nil {
			return fmt.Errorf("scanning migration version: %w", err)
		}
		applied[v] = true
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating migration versions: %w", err)
	}

	for _, m := range migrations {
		if applied[m.version] {
			continue
		}

		if err := m.apply(db); err != nil {
			slog.Warn("schema migration failed; continuing with current schema",
				"version", m.version, "name", m.name, "error", err)
			continue
		}

		if _, err := db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", m.version); err != nil {
			return fmt.Errorf("recording migration %d: %w", m.version, err)
		}
	}

	return nil
}

// addColumn returns a migration step that adds a column to a table if it
// isn't already present.
func addColumn(table, column, colType string) func(db *sql.DB) error {
	return func(db *sql.DB) error {
		exists, err := columnExists(db, table, column)
		if err != nil {
			return err
		}
		if exists {
			return nil
		}
		_, err = db.Exec(fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s", table, column, colType))
		return err
	}
}

// columnExists reports whether the table already has the named column.
func columnExists(db *sql.DB, table, column string) (bool, error) {
	rows, err := db.Query(fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return false, fmt.Errorf("reading table info for %s: %w", table, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			cid        int
			name       string
			colType    string
			notNull    int
			defaultVal sql.NullString
			pk         int
		)
		if err := rows.Scan(&cid, &name, &colType, &notNull, &defaultVal, &pk); err != nil {
			return false, fmt.Errorf("scanning table info: %w", err)
		}
		if name == column {
			return true, nil
		}
	}
	return false, rows.Err()
}
