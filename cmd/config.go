package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"medidrone/internal/pkg/errs"

	"github.com/docker/go-units"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	StorageLocal = "local"
	StorageS3    = "s3"

	// ImagesPublicPath is where the local image store is served.
	ImagesPublicPath = "/static/medication_images"
)

type Config struct {
	HTTPPort string
	LogLevel string

	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
	SQLitePath string

	ImageStorage          string
	ImagesDir             string
	ImagesBaseURL         string
	ImageFileSizeLimitMiB string

	S3Bucket    string
	S3Region    string
	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string
	S3PublicURL string

	BatteryLogFile     string
	BatteryLogSchedule string
}

// ConfigFromEnv fills a Config through getenv, falling back to the defaults for unset keys.
func ConfigFromEnv(getenv func(string) string) Config {
	get := func(key, fallback string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return fallback
	}

	return Config{
		HTTPPort:              get("HTTP_PORT", "8000"),
		LogLevel:              get("LOG_LEVEL", "info"),
		DBDriver:              get("DB_DRIVER", DriverPostgres),
		DBHost:                get("DB_HOST", "localhost"),
		DBPort:                get("DB_PORT", "5432"),
		DBUser:                get("DB_USER", "postgres"),
		DBPassword:            get("DB_PASSWORD", "postgres"),
		DBName:                get("DB_NAME", "drones"),
		DBSslMode:             get("DB_SSLMODE", "disable"),
		SQLitePath:            get("SQLITE_PATH", "drones.db"),
		ImageStorage:          get("IMAGE_STORAGE", StorageLocal),
		ImagesDir:             get("IMAGES_DIR", "static/medication_images"),
		ImagesBaseURL:         get("IMAGES_BASE_URL", "http://127.0.0.1:8000"),
		ImageFileSizeLimitMiB: get("IMAGE_FILE_SIZE_LIMIT_MB", "3"),
		S3Bucket:              get("S3_BUCKET", ""),
		S3Region:              get("S3_REGION", "us-east-1"),
		S3Endpoint:            get("S3_ENDPOINT", ""),
		S3AccessKey:           get("S3_ACCESS_KEY", ""),
		S3SecretKey:           get("S3_SECRET_KEY", ""),
		S3PublicURL:           get("S3_PUBLIC_URL", ""),
		BatteryLogFile:        get("BATTERY_LOG_FILE", "battery_levels.log"),
		BatteryLogSchedule:    get("BATTERY_LOG_SCHEDULE", "@every 1m"),
	}
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var err error

	if _, portErr := strconv.ParseUint(c.HTTPPort, 10, 16); portErr != nil {
		err = errors.Join(err, errs.NewValueIsInvalidErrorWithCause("HTTP_PORT", portErr))
	}
	if _, levelErr := c.SlogLevel(); levelErr != nil {
		err = errors.Join(err, levelErr)
	}

	switch c.DBDriver {
	case DriverPostgres, DriverSQLite:
	default:
		err = errors.Join(err, errs.NewValueIsInvalidErrorWithCause("DB_DRIVER",
			fmt.Errorf("%q is not one of %s, %s", c.DBDriver, DriverPostgres, DriverSQLite)))
	}

	switch c.ImageStorage {
	case StorageLocal:
	case StorageS3:
		if c.S3Bucket == "" {
			err = errors.Join(err, errs.NewValueIsRequiredError("S3_BUCKET"))
		}
		if c.S3PublicURL == "" {
			err = errors.Join(err, errs.NewValueIsRequiredError("S3_PUBLIC_URL"))
		}
	default:
		err = errors.Join(err, errs.NewValueIsInvalidErrorWithCause("IMAGE_STORAGE",
			fmt.Errorf("%q is not one of %s, %s", c.ImageStorage, StorageLocal, StorageS3)))
	}

	if _, limitErr := c.ImageSizeLimit(); limitErr != nil {
		err = errors.Join(err, limitErr)
	}
	if c.BatteryLogFile == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("BATTERY_LOG_FILE"))
	}

	return err
}

// ImageSizeLimit is IMAGE_FILE_SIZE_LIMIT_MB converted to bytes.
func (c Config) ImageSizeLimit() (int64, error) {
	mib, err := strconv.ParseInt(c.ImageFileSizeLimitMiB, 10, 64)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("IMAGE_FILE_SIZE_LIMIT_MB", err)
	}
	if mib <= 0 {
		return 0, errs.NewValueIsOutOfRangeError("IMAGE_FILE_SIZE_LIMIT_MB", mib, 1, "unbounded")
	}
	return mib * units.MiB, nil
}

// SlogLevel parses LOG_LEVEL (debug, info, warn, error).
func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, errs.NewValueIsInvalidErrorWithCause("LOG_LEVEL", err)
	}
	return level, nil
}

// PostgresDSN renders the connection settings as a libpq keyword string.
func (c Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
