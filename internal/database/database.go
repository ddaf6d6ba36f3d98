package database

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Manager handles database connections for the snapshot store.
type Manager struct {
	db *gorm.DB
}

// NewManager opens the configured database. SQLite gets a plain file
// handle; Postgres additionally gets connection pool settings.
func NewManager(config *Config) (*Manager, error) {
	var db *gorm.DB
	var err error

	switch config.Driver {
	case "sqlite":
		db, err = gorm.Open(sqlite.Open(config.Path), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite database: %w", err)
		}
	case "postgres":
		db, err = gorm.Open(postgres.Open(config.DSN()), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get underlying DB: %w", err)
		}
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
		sqlDB.SetConnMaxLifetime(time.Hour)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", config.Driver)
	}

	return &Manager{db: db}, nil
}

// DB returns the underlying GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}
