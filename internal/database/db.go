package database

import (
	"context"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"gigboard/internal/model"
)

// Open connects to postgres through GORM and verifies the connection.
func Open(dsn string, maxOpen, maxIdle int, connLifetime time.Duration) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		// Shows keep their venue_id after a venue is removed (past shows are
		// retained as history), so the schema carries no DB-level FK constraints.
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, err
	}

	// Pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(maxIdle)
	sqlDB.SetConnMaxLifetime(connLifetime)

	// Ping with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates or updates the venues, artists and shows tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Venue{},
		&model.Artist{},
		&model.Show{},
	)
}
