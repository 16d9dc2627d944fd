package db

import (
	"fmt"

	log "github.com/sirupsen/logrus"
)

// RunMigrations applies any pending database migrations
func (db *DB) RunMigrations() error {
	if err := db.runKVTableMigration(); err != nil {
		return err
	}

	if err := db.runUpdatedAtMigration(); err != nil {
		return err
	}

	return nil
}

// runKVTableMigration creates the kv table in files that predate it
func (db *DB) runKVTableMigration() error {
	var count int
	err := db.conn.QueryRow(`
		SELECT COUNT(*)
		FROM sqlite_master
		WHERE type = 'table' AND name = 'kv'
	`).Scan(&count)
	if err != nil {
		return fmt.Errorf("checking for kv table: %w", err)
	}

	if count == 0 {
		log.Info("Running migration: creating kv table")
		if _, err := db.conn.Exec(`CREATE TABLE kv (key TEXT PRIMARY KEY, value TEXT NOT NULL)`); err != nil {
			return fmt.Errorf("creating kv table: %w", err)
		}
	}

	return nil
}

func (db *DB) runUpdatedAtMigration() error {
	var count int
	err := db.conn.QueryRow(`
		SELECT COUNT(*)
		FROM pragma_table_info('kv')
		WHERE name = 'updated_at'
	`).Scan(&count)
	if err != nil {
		return fmt.Errorf("checking for updated_at column: %w", err)
	}

	if count == 0 {
		log.Info("Running migration: adding kv.updated_at column")

		tx, err := db.conn.Begin()
		if err != nil {
			return fmt.Errorf("starting transaction: %w", err)
		}
		defer tx.Rollback()

		// SQLite refuses non-constant defaults on ADD COLUMN, so backfill instead
		_, err = tx.Exec(`ALTER TABLE kv ADD COLUMN updated_at DATETIME`)
		if err != nil && err.Error() != "duplicate column name: updated_at" {
			return fmt.Errorf("adding updated_at column: %w", err)
		}
		if _, err := tx.Exec(`UPDATE kv SET updated_at = CURRENT_TIMESTAMP WHERE updated_at IS NULL`); err != nil {
			return fmt.Errorf("backfilling updated_at: %w", err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("committing migration: %w", err)
		}

		log.Info("Migration completed successfully")
	}

	return nil
}
