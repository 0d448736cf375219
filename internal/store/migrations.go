package store

import (
	"database/sql"
	"fmt"

	"vasstra/internal/logging"
)

// Schema versions:
// v1: cart_items, wishlist_items, local_values
// v2: recently_viewed
// v3: addresses with normalized fingerprint for de-duplication
const CurrentSchemaVersion = 3

var schema = []string{
	`CREATE TABLE IF NOT EXISTS schema_version (
		version INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS cart_items (
		product_id     TEXT NOT NULL,
		name           TEXT NOT NULL,
		price          REAL NOT NULL,
		original_price REAL NOT NULL DEFAULT 0,
		image          TEXT NOT NULL DEFAULT '',
		size           TEXT NOT NULL DEFAULT '',
		color          TEXT NOT NULL DEFAULT '',
		category       TEXT NOT NULL DEFAULT '',
		quantity       INTEGER NOT NULL,
		added_at       DATETIME DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (product_id, size, color)
	)`,
	`CREATE TABLE IF NOT EXISTS wishlist_items (
		product_id     TEXT NOT NULL PRIMARY KEY,
		name           TEXT NOT NULL,
		price          REAL NOT NULL,
		original_price REAL NOT NULL DEFAULT 0,
		image          TEXT NOT NULL DEFAULT '',
		category       TEXT NOT NULL DEFAULT '',
		added_at       DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS local_values (
		key   TEXT NOT NULL PRIMARY KEY,
		value TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS recently_viewed (
		product_id TEXT NOT NULL PRIMARY KEY,
		name       TEXT NOT NULL,
		price      REAL NOT NULL,
		image      TEXT NOT NULL DEFAULT '',
		viewed_at  DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS addresses (
		id          TEXT NOT NULL PRIMARY KEY,
		name        TEXT NOT NULL DEFAULT '',
		street      TEXT NOT NULL,
		street2     TEXT NOT NULL DEFAULT '',
		city        TEXT NOT NULL,
		state       TEXT NOT NULL,
		zip         TEXT NOT NULL,
		country     TEXT NOT NULL,
		phone       TEXT NOT NULL DEFAULT '',
		fingerprint TEXT NOT NULL UNIQUE,
		created_at  DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,
}

// migrate creates missing tables and records the schema version.
func (s *LocalStore) migrate() error {
	for _, stmt := range schema {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("schema init failed: %w", err)
		}
	}

	version, err := s.schemaVersion()
	if err != nil {
		return err
	}
	if version == 0 {
		if _, err := s.db.Exec("INSERT INTO schema_version (version) VALUES (?)", CurrentSchemaVersion); err != nil {
			return fmt.Errorf("failed to record schema version: %w", err)
		}
		return nil
	}
	if version < CurrentSchemaVersion {
		logging.Store("Migrating local store schema v%d -> v%d", version, CurrentSchemaVersion)
		if _, err := s.db.Exec("UPDATE schema_version SET version = ?", CurrentSchemaVersion); err != nil {
			return fmt.Errorf("failed to bump schema version: %w", err)
		}
	}
	return nil
}

func (s *LocalStore) schemaVersion() (int, error) {
	var version int
	err := s.db.QueryRow("SELECT version FROM schema_version LIMIT 1").Scan(&version)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	return version, nil
}
