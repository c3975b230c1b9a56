package config

import (
	"fmt"

	"backoffice-api/models"

	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// InitDB opens the database connection and runs schema migration.
// TranslateError is required: the apperr adapter relies on gorm sentinel
// errors for unique and foreign key violations.
func InitDB(cfg *Config, log zerolog.Logger) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	}
	if cfg.IsDevelopment() {
		gormCfg.Logger = gormlogger.Default.LogMode(gormlogger.Warn)
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormCfg)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("accessing connection pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.DBMaxLifetime)

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Info().
		Str("host", cfg.DBHost).
		Str("database", cfg.DBName).
		Int("max_open_conns", cfg.DBMaxOpenConns).
		Msg("database connection established")

	return db, nil
}

// Migrate creates or updates the schema for all models.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Tag{},
		&models.Post{},
		&models.Event{},
		&models.JobOffer{},
		&models.Contact{},
		&models.Partnership{},
		&models.MediaItem{},
		&models.Testimonial{},
	)
	if err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	return nil
}
