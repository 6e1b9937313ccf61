package database

import (
	"database/sql"
	"embed"
	"fmt"
	"log"
	"os"
	"time"

	"milano-insights/internal/config"

	"github.com/golang-migrate/migrate/v4"
	migratedb "github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

var (
	maxRetries    = 30
	retryInterval = 2 * time.Second
)

// MigrationRunner applies the embedded view migrations. The serving
// path opens the store read-only, so the runner gets its own
// read-write connection; it only ever creates the derived views, the
// base tables stay pipeline-owned.
type MigrationRunner struct {
	db         *sql.DB
	driverName string
}

// NewMigrationRunner creates a migration runner over a read-write
// connection. driverName is "sqlite3" or "postgres".
func NewMigrationRunner(db *sql.DB, driverName string) *MigrationRunner {
	return &MigrationRunner{
		db:         db,
		driverName: driverName,
	}
}

// WaitForDatabase waits for the database to be ready.
func (mr *MigrationRunner) WaitForDatabase() error {
	for i := 0; i < maxRetries; i++ {
		err := mr.db.Ping()
		if err == nil {
			return nil
		}

		log.Printf("Database not ready (attempt %d/%d): %v", i+1, maxRetries, err)
		time.Sleep(retryInterval)
	}

	return fmt.Errorf("database not ready after %d attempts", maxRetries)
}

func (mr *MigrationRunner) databaseDriver() (migratedb.Driver, error) {
	switch mr.driverName {
	case "sqlite3":
		return sqlite3.WithInstance(mr.db, &sqlite3.Config{})
	case "postgres":
		return postgres.WithInstance(mr.db, &postgres.Config{})
	default:
		return nil, fmt.Errorf("unsupported migration driver: %q", mr.driverName)
	}
}

func (mr *MigrationRunner) newMigrate() (*migrate.Migrate, error) {
	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded migrations: %w", err)
	}

	driver, err := mr.databaseDriver()
	if err != nil {
		return nil, err
	}

	m, err := migrate.NewWithInstance("iofs", source, mr.driverName, driver)
	if err != nil {
		return nil, fmt.Errorf("failed to create migration instance: %w", err)
	}
	return m, nil
}

// RunMigrations applies all pending view migrations.
func (mr *MigrationRunner) RunMigrations() error {
	m, err := mr.newMigrate()
	if err != nil {
		return err
	}

	version, dirty, err := m.Version()
	if err != nil && err != migrate.ErrNilVersion {
		return fmt.Errorf("failed to get migration version: %w", err)
	}

	if dirty {
		log.Printf("Warning: database is in dirty state at version %d, forcing version", version)
		if err := m.Force(int(version)); err != nil {
			return fmt.Errorf("failed to force version: %w", err)
		}
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("migration failed: %w", err)
	}

	if err == migrate.ErrNoChange {
		log.Println("No new migrations to apply")
	} else {
		newVersion, _, err := m.Version()
		if err != nil {
			return fmt.Errorf("failed to get new migration version: %w", err)
		}
		log.Printf("Successfully applied migrations. New version: %d", newVersion)
	}

	return nil
}

// GetMigrationStatus returns the current migration version.
func (mr *MigrationRunner) GetMigrationStatus() (version uint, dirty bool, err error) {
	m, err := mr.newMigrate()
	if err != nil {
		return 0, false, err
	}
	return m.Version()
}

// RunMigrationsIfEnabled runs the view migrations when AUTO_MIGRATE is
// set. It opens its own read-write connection because the serving path
// only holds a read-only one.
func RunMigrationsIfEnabled(cfg *config.DatabaseConfig) error {
	if os.Getenv("AUTO_MIGRATE") != "true" {
		return nil
	}

	var (
		driverName string
		dsn        string
	)
	switch cfg.Driver {
	case "sqlite":
		driverName = "sqlite3"
		dsn = fmt.Sprintf("file:%s?_busy_timeout=5000", cfg.SQLitePath)
	case "postgres":
		driverName = "postgres"
		dsn = cfg.DSN()
	default:
		return fmt.Errorf("unsupported database driver: %q", cfg.Driver)
	}

	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return fmt.Errorf("failed to open migration connection: %w", err)
	}
	defer db.Close()

	runner := NewMigrationRunner(db, driverName)
	if err := runner.WaitForDatabase(); err != nil {
		return err
	}

	log.Println("Auto-migration enabled, applying view migrations...")
	return runner.RunMigrations()
}
