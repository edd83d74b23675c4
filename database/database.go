package database

import (
	"fmt"
	"path"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB wraps the gorm.DB instance.
type DB struct {
	db *gorm.DB
}

// New creates a new database connection and performs migrations.
func New(dbpath string) (*DB, error) {
	db, err := gorm.Open(sqlite.Open(path.Join(dbpath, "codetrail.db")), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	if err := migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &DB{db: db}, nil
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Notification{},
		&TrackSubscription{},
		&Tag{},
		&Tutorial{},
		&Comment{},
		&Track{},
		&TrackItem{},
		&Feedback{},
	)
}

// Close closes the underlying database connection.
func (d *DB) Close() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
