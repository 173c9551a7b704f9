package sqlstore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pet-care-tracker/internal/platform/apperr"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	pgUniqueViolationCode = "23505"
	// clase 22: data exception (overflow numérico, fecha fuera de rango, ...)
	pgDataExceptionClass = "22"
)

// sqlDriverName traduce nuestro nombre de driver al registrado en database/sql.
func sqlDriverName(driver string) (string, error) {
	switch driver {
	case DriverPostgres:
		return "pgx", nil
	case DriverSQLite:
		return "sqlite3", nil
	default:
		return "", fmt.Errorf("sqlstore: unsupported driver %q", driver)
	}
}

// Open abre el pool (pgx o sqlite3 vía database/sql) y hace ping.
func Open(driver, dsn string) (*sqlx.DB, error) {
	name, err := sqlDriverName(driver)
	if err != nil {
		return nil, err
	}

	db, err := sqlx.Open(name, dsn)
	if err != nil {
		return nil, err
	}

	if driver == DriverSQLite {
		// sqlite serializa escrituras; una conexión evita "database is locked".
		db.SetMaxOpenConns(1)
	} else {
		// defaults razonables (ajustable luego)
		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(5)
		db.SetConnMaxIdleTime(5 * time.Minute)
		db.SetConnMaxLifetime(30 * time.Minute)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// storageErr envuelve fallas del driver como ErrStorageUnavailable.
func storageErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", apperr.ErrStorageUnavailable, op, err)
}

// isDataException: el valor pasó la validación pero no entra en la columna.
func isDataException(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && strings.HasPrefix(pgErr.Code, pgDataExceptionClass)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolationCode {
		return true
	}
	// sqlite3.Error solo existe con cgo; el mensaje es estable.
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
