package database

import (
	"context"
	"os"
	"strings"

	"DentalDesk/models"

	"github.com/glebarez/sqlite"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDB opens the single-file SQLite store, migrates the schema and seeds
// first-run data. Initialisation is idempotent: calling it on every process
// start neither errors nor duplicates structures, and existing data
// survives untouched.
//
// hashPassword is the credential hashing function used for seed identities;
// it is injected so the database layer stays free of crypto concerns.
func InitDB(ctx context.Context, path string, hashPassword func(string) (string, error)) (*gorm.DB, error) {
	logMode := logger.Silent
	if os.Getenv("ENV") == "development" {
		logMode = logger.Info
	}

	dsn := path
	if !strings.Contains(dsn, "?") {
		dsn += "?_pragma=foreign_keys(1)"
	}
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: false,
		Logger:                                   logger.Default.LogMode(logMode),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open database")
	}

	// One connection: the store is single-process, single-session; this
	// also keeps in-memory test databases on a single underlying handle.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get sql.DB from GORM")
	}
	sqlDB.SetMaxOpenConns(1)

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to ping database")
	}

	if err := runMigrations(db); err != nil {
		return nil, errors.Wrap(err, "failed to migrate schema")
	}
	if err := seedInitialData(db, hashPassword); err != nil {
		return nil, errors.Wrap(err, "failed to seed initial data")
	}
	return db, nil
}

// runMigrations materialises the relational structures with their
// uniqueness, referential and enumerated-value constraints.
func runMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Patient{},
		&models.Appointment{},
		&models.Treatment{},
		&models.TreatmentRecord{},
		&models.Invoice{},
		&models.InvoiceItem{},
		&models.Payment{},
	)
}

// seedInitialData populates first-run defaults: the bootstrap identities
// and the starter treatment catalog.
func seedInitialData(db *gorm.DB, hashPassword func(string) (string, error)) error {
	if err := models.SeedUsers(db, hashPassword); err != nil {
		return errors.Wrap(err, "failed to seed users")
	}
	if err := models.SeedTreatments(db); err != nil {
		return errors.Wrap(err, "failed to seed treatments")
	}
	return nil
}
