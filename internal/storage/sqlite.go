package storage

import (
	"context"
	"errors"
	"time"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/burnproductions/billingdesk/internal/observability/logger"
)

type kvRecord struct {
	Key       string    `gorm:"primaryKey;column:key"`
	Value     []byte    `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (kvRecord) TableName() string { return "kv_records" }

// SQLiteBackend stores each collection as one row in a key-value table.
type SQLiteBackend struct {
	db  *gorm.DB
	log *zap.Logger
}

// OpenSQLite opens (or creates) the database file and migrates the
// key-value table. Pass ":memory:" for an ephemeral database.
func OpenSQLite(path string, log *zap.Logger) (*SQLiteBackend, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.NewGormLogger(logger.DefaultGormLoggerConfig()),
	})
	if err != nil {
		return nil, &PersistenceError{Op: "open", Key: path, Err: err}
	}
	if err := db.AutoMigrate(&kvRecord{}); err != nil {
		return nil, &PersistenceError{Op: "migrate", Key: path, Err: err}
	}
	return &SQLiteBackend{db: db, log: log.Named("storage.sqlite")}, nil
}

func (b *SQLiteBackend) Load(ctx context.Context, key string) ([]byte, bool, error) {
	var rec kvRecord
	err := b.db.WithContext(ctx).First(&rec, "key = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, &PersistenceError{Op: "load", Key: key, Err: err}
	}
	return rec.Value, true, nil
}

func (b *SQLiteBackend) Save(ctx context.Context, key string, value []byte) error {
	rec := kvRecord{Key: key, Value: value, UpdatedAt: time.Now().UTC()}
	err := b.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&rec).Error
	if err != nil {
		return &PersistenceError{Op: "save", Key: key, Err: err}
	}
	b.log.Debug("saved collection", zap.String("key", key), zap.Int("bytes", len(value)))
	return nil
}
