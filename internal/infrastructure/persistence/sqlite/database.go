// Package sqlite persists store states in an embedded SQLite database using
// a single key/value table. Suits desktop-style installs where one file
// should hold everything.
package sqlite

import (
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// StateModel is the GORM model holding one serialized store state per key.
type StateModel struct {
	Key       string `gorm:"primaryKey;size:128"`
	Data      []byte `gorm:"not null"`
	UpdatedAt time.Time
}

// TableName overrides the default table name.
func (StateModel) TableName() string {
	return "store_states"
}

// SetupDatabase opens and migrates the SQLite database. An empty path opens
// an in-memory database, used by tests.
func SetupDatabase(dbPath string, logLevel logger.LogLevel) (*gorm.DB, error) {
	if dbPath == "" {
		dbPath = ":memory:"
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&StateModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}
