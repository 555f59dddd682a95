// Package storage provides durable on-device persistence for store
// snapshots.
//
// Each store saves its serialized state as an opaque blob keyed by a store
// name; the last write wins. There is no history and no transactional
// guarantee beyond the single-row upsert.
//
// # Usage
//
//	store, err := storage.Open(cfg.Database.Path)
//	data, err := store.LoadSnapshot("user-store")
package storage

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Snapshot is one persisted store state blob.
type Snapshot struct {
	Name      string    `gorm:"primaryKey;size:64" json:"name"`
	Data      []byte    `gorm:"type:blob" json:"data"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Snapshot) TableName() string {
	return "snapshots"
}

// Store is a sqlite-backed snapshot store.
type Store struct {
	db *gorm.DB
}

// Open opens (creating if needed) the snapshot database at path.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&Snapshot{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &Store{db: db}, nil
}

// LoadSnapshot returns the blob saved under name, or nil if none exists.
func (s *Store) LoadSnapshot(name string) ([]byte, error) {
	var snap Snapshot
	err := s.db.Where("name = ?", name).First(&snap).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return snap.Data, nil
}

// SaveSnapshot creates or replaces the blob saved under name.
func (s *Store) SaveSnapshot(name string, data []byte) error {
	var snap Snapshot
	result := s.db.Where("name = ?", name).First(&snap)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		snap = Snapshot{Name: name, Data: data}
		return s.db.Create(&snap).Error
	} else if result.Error != nil {
		return result.Error
	}

	snap.Data = data
	return s.db.Save(&snap).Error
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
