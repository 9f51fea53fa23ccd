// Package dbtest opens throwaway sqlite databases for repository and
// handler tests.
package dbtest

import (
	"path/filepath"
	"testing"

	"github.com/DhavalSuthar-24/matchday/config"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open creates a fresh database file under t.TempDir and migrates models
// into it in the order given.
func Open(t *testing.T, models ...interface{}) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(config.SQLiteDialector(path), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if len(models) > 0 {
		if err := db.AutoMigrate(models...); err != nil {
			t.Fatalf("migrate: %v", err)
		}
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql handle: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

// StubMatchTables creates bare versions of the tables other packages clean
// up on delete, for tests that do not migrate the real models.
func StubMatchTables(t *testing.T, db *gorm.DB) {
	t.Helper()
	for _, ddl := range []string{
		`CREATE TABLE IF NOT EXISTS matches (id INTEGER PRIMARY KEY, discipline_id INTEGER, venue_id INTEGER, referee_id INTEGER)`,
		`CREATE TABLE IF NOT EXISTS match_teams (id INTEGER PRIMARY KEY, match_id INTEGER, team_id INTEGER, role TEXT)`,
		`CREATE TABLE IF NOT EXISTS participants (id INTEGER PRIMARY KEY, team_id INTEGER)`,
	} {
		if err := db.Exec(ddl).Error; err != nil {
			t.Fatalf("stub tables: %v", err)
		}
	}
}
