// Package storage persists the UserFinance snapshot as a single
// JSON-serialized blob under one named key. The whole snapshot is
// overwritten on every save; there are no partial updates and no
// versioning. A stored value that fails to decode or validate is
// discarded, never an error the caller has to handle.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hishab/internal/logger"
	"hishab/internal/models"
)

// SnapshotKey is the local key the serialized ledger lives under.
const SnapshotKey = "user_finance"

// SnapshotRecord is the key/blob row backing the snapshot store.
type SnapshotRecord struct {
	Key       string `gorm:"primaryKey"`
	Data      []byte `gorm:"not null"`
	UpdatedAt time.Time
}

// TableName overrides the GORM table name.
func (SnapshotRecord) TableName() string { return "snapshots" }

// SnapshotStore reads and writes the ledger snapshot through GORM.
type SnapshotStore struct {
	db  *gorm.DB
	key string
}

// NewSnapshotStore creates the store and ensures its table exists.
func NewSnapshotStore(db *gorm.DB) (*SnapshotStore, error) {
	if err := db.AutoMigrate(&SnapshotRecord{}); err != nil {
		return nil, fmt.Errorf("migrating snapshot table: %w", err)
	}
	return &SnapshotStore{db: db, key: SnapshotKey}, nil
}

// Load returns the persisted snapshot, or (nil, nil) when none is usable.
// A missing row, an undecodable blob, and a structurally invalid snapshot
// all read as absent: the ledger store seeds its defaults in every case.
func (s *SnapshotStore) Load() (*models.UserFinance, error) {
	var record SnapshotRecord
	if err := s.db.Where("key = ?", s.key).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}

	var finance models.UserFinance
	if err := json.Unmarshal(record.Data, &finance); err != nil {
		logger.Get().Warnw("discarding undecodable snapshot", "key", s.key, "error", err)
		return nil, nil
	}
	finance.Normalize()
	if !finance.Validate() {
		logger.Get().Warnw("discarding structurally invalid snapshot", "key", s.key)
		return nil, nil
	}
	return &finance, nil
}

// Save serializes the snapshot and overwrites the stored blob wholesale.
func (s *SnapshotStore) Save(finance *models.UserFinance) error {
	data, err := json.Marshal(finance)
	if err != nil {
		return fmt.Errorf("serializing snapshot: %w", err)
	}

	record := SnapshotRecord{Key: s.key, Data: data, UpdatedAt: time.Now().UTC()}
	err = s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&record).Error
	if err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	return nil
}
