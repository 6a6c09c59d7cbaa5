package cmd

import (
	"context"
	"fmt"
	"time"

	"medidrone/internal/adapters/out/imagestore"
	"medidrone/internal/adapters/out/postgres"
	"medidrone/internal/core/ports"

	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenDatabase connects to the configured driver and migrates the schema.
func OpenDatabase(config Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch config.DBDriver {
	case DriverSQLite:
		dialector = sqlite.Open(config.SQLitePath + "?_foreign_keys=on")
	default:
		dialector = gormpostgres.Open(config.PostgresDSN())
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)})
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", config.DBDriver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}
	if config.DBDriver == DriverSQLite {
		// sqlite allows a single writer
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
	}

	if err = postgres.Migrate(db); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

// OpenImageStorage builds the local or the S3 image store.
func OpenImageStorage(ctx context.Context, config Config) (ports.ImageStorage, error) {
	if config.ImageStorage == StorageS3 {
		client, err := imagestore.NewS3Client(ctx, imagestore.S3Config{
			Region:    config.S3Region,
			Endpoint:  config.S3Endpoint,
			AccessKey: config.S3AccessKey,
			SecretKey: config.S3SecretKey,
		})
		if err != nil {
			return nil, err
		}
		store, err := imagestore.NewS3Storage(client, config.S3Bucket, config.S3PublicURL)
		if err != nil {
			return nil, err
		}
		return store, nil
	}

	store, err := imagestore.NewLocalStorage(config.ImagesDir, config.ImagesBaseURL, ImagesPublicPath)
	if err != nil {
		return nil, err
	}
	return store, nil
}
