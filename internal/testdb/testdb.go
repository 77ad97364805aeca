// Package testdb opens a migrated, throwaway SQLite store for tests.
package testdb

import (
	"path/filepath"
	"testing"

	"fyyur/config"
	"fyyur/database"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func Open(t testing.TB) *gorm.DB {
	t.Helper()

	cfg := &config.Config{
		DBDriver: config.DriverSQLite,
		DBURL:    filepath.Join(t.TempDir(), "listings.db"),
		// one connection keeps SQLite writers from contending for the file lock
		DBMaxOpenConns: 1,
		DBMaxIdleConns: 1,
	}

	db, err := database.Open(cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() { _ = database.Close(db) })

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return db
}
