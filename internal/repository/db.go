package repository

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/chinnidiwakar/sliptrack/backend/internal/models"
)

// Open connects to the SQLite database at path and migrates the event table.
// The path ":memory:" yields an ephemeral database, which the tests use.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database %q: %w", path, err)
	}

	if err := db.AutoMigrate(&models.Event{}); err != nil {
		return nil, fmt.Errorf("failed to migrate event table: %w", err)
	}

	return db, nil
}
