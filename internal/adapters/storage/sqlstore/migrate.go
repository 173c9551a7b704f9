package sqlstore

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var migrationsFS embed.FS

// Migrator es lo que usamos de *migrate.Migrate.
type Migrator interface {
	Up() error
	Close() (error, error)
}

// MigrationEngine crea el migrator; en tests se reemplaza para no tocar DB.
type MigrationEngine func(driver, dsn string) (Migrator, error)

// DefaultEngine abre una conexión propia para migrar: migrate.Close cierra
// la DB que recibe, así que no le pasamos el pool de la app.
func DefaultEngine(driver, dsn string) (Migrator, error) {
	db, err := Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open for migrations: %w", err)
	}

	m, err := newMigrate(driver, db.DB)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return m, nil
}

func newMigrate(driver string, db *sql.DB) (*migrate.Migrate, error) {
	var (
		dir string
		drv database.Driver
		err error
	)
	switch driver {
	case DriverPostgres:
		dir = "migrations/postgres"
		drv, err = postgres.WithInstance(db, &postgres.Config{})
	case DriverSQLite:
		dir = "migrations/sqlite"
		drv, err = sqlite3.WithInstance(db, &sqlite3.Config{})
	default:
		return nil, fmt.Errorf("sqlstore: unsupported driver %q", driver)
	}
	if err != nil {
		return nil, fmt.Errorf("migration driver: %w", err)
	}

	src, err := iofs.New(migrationsFS, dir)
	if err != nil {
		return nil, fmt.Errorf("migration source: %w", err)
	}

	return migrate.NewWithInstance("iofs", src, driver, drv)
}

// Migrate aplica las migraciones pendientes. Sin cambios no es error.
func Migrate(engine MigrationEngine, driver, dsn string) (err error) {
	if engine == nil {
		engine = DefaultEngine
	}

	m, err := engine(driver, dsn)
	if err != nil {
		return err
	}
	defer func() {
		serr, dberr := m.Close()
		if serr != nil {
			err = errors.Join(err, fmt.Errorf("migration source: %w", serr))
		}
		if dberr != nil {
			err = errors.Join(err, fmt.Errorf("migration database: %w", dberr))
		}
	}()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration up: %w", err)
	}
	return nil
}
