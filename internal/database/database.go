package database

import (
	"fmt"
	"time"

	"glass-connect-backend/internal/database/models"
	applogger "glass-connect-backend/internal/logger"

	"github.com/cenkalti/backoff"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Options struct {
	LogLevel        logger.LogLevel
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	// ConnectTimeout bounds the retries of the initial connection. Zero means a
	// single attempt.
	ConnectTimeout time.Duration
	SkipMigrate    bool
}

// Models lists every table owned by the backend, in migration order.
func Models() []interface{} {
	return []interface{}{
		&models.Lab{},
		&models.Team{},
		&models.LabOfferProfile{},
		&models.LabOfferTaxonomyOption{},
		&models.ErcDisciplineOption{},
	}
}

// Initialize opens a Postgres connection and creates the schema from GORM models.
func Initialize(dsn string, opts *Options) (*gorm.DB, error) {
	// Defaults
	if opts == nil {
		opts = &Options{}
	}
	if opts.LogLevel == 0 {
		opts.LogLevel = logger.Error
	}
	if opts.MaxOpenConns == 0 {
		opts.MaxOpenConns = 20
	}
	if opts.MaxIdleConns == 0 {
		opts.MaxIdleConns = 10
	}
	if opts.ConnMaxLifetime == 0 {
		opts.ConnMaxLifetime = 30 * time.Minute
	}
	if opts.ConnMaxIdleTime == 0 {
		opts.ConnMaxIdleTime = 10 * time.Minute
	}

	db, err := connect(dsn, opts)
	if err != nil {
		return nil, err
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
		sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(opts.ConnMaxLifetime)
		sqlDB.SetConnMaxIdleTime(opts.ConnMaxIdleTime)
	}

	if !opts.SkipMigrate {
		if err := db.AutoMigrate(Models()...); err != nil {
			return nil, fmt.Errorf("auto-migrate: %w", err)
		}
	}

	return db, nil
}

// connect opens the database, retrying with exponential backoff while the
// server is not reachable yet.
func connect(dsn string, opts *Options) (*gorm.DB, error) {
	var b backoff.BackOff = &backoff.StopBackOff{}
	if opts.ConnectTimeout > 0 {
		bo := backoff.NewExponentialBackOff()
		bo.InitialInterval = 500 * time.Millisecond
		bo.MaxInterval = 5 * time.Second
		bo.MaxElapsedTime = opts.ConnectTimeout
		b = bo
	}

	var db *gorm.DB
	err := backoff.RetryNotify(func() error {
		var err error
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: logger.Default.LogMode(opts.LogLevel),
		})
		return err
	}, b, func(err error, next time.Duration) {
		applogger.New().WithField("retry_in", next.String()).Warnf("database not reachable: %v", err)
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	return db, nil
}
