// Package sqlstore implementa los repositorios sobre database/sql.
// Un mismo esquema y las mismas consultas sirven para SQLite (modernc, un
// archivo local con un único escritor) y Postgres (pgx).
package sqlstore

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pkg/errors"
	_ "modernc.org/sqlite"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "pgx"
)

// Timestamps como TEXT de ancho fijo en UTC: el orden lexicográfico coincide
// con el cronológico en ambos motores.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

const sqlitePragmas = "_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"

type DB struct {
	sql    *sql.DB
	driver string
}

// Open abre el pool y verifica la conexión. Para sqlite, dsn puede ser una
// ruta simple; se crea el directorio y se agregan los pragmas.
func Open(driver, dsn string) (*DB, error) {
	driver = strings.TrimSpace(driver)
	dsn = strings.TrimSpace(dsn)

	switch driver {
	case DriverSQLite:
		var err error
		if dsn, err = sqliteDSN(dsn); err != nil {
			return nil, err
		}
	case DriverPostgres:
	default:
		return nil, errors.Errorf("sqlstore: unsupported driver %q", driver)
	}

	sqlDB, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, errors.Wrapf(err, "sqlstore: open %s", driver)
	}

	if driver == DriverSQLite {
		// Un solo escritor: además evita que ":memory:" sea una base por conexión.
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(10)
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetConnMaxIdleTime(5 * time.Minute)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, errors.Wrapf(err, "sqlstore: ping %s", driver)
	}

	return &DB{sql: sqlDB, driver: driver}, nil
}

func (d *DB) Close() error {
	return d.sql.Close()
}

func (d *DB) Driver() string { return d.driver }

// Ping lo usa el health check.
func (d *DB) Ping(ctx context.Context) error {
	return d.sql.PingContext(ctx)
}

func (d *DB) conn() conn {
	return conn{q: d.sql, driver: d.driver}
}

func sqliteDSN(dsn string) (string, error) {
	if dsn == "" {
		return "", errors.New("sqlstore: empty sqlite dsn")
	}
	if strings.HasPrefix(dsn, "file:") || dsn == ":memory:" {
		if dsn == ":memory:" {
			dsn = "file::memory:"
		}
		sep := "?"
		if strings.Contains(dsn, "?") {
			sep = "&"
		}
		return dsn + sep + sqlitePragmas, nil
	}

	if dir := filepath.Dir(dsn); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", errors.Wrapf(err, "sqlstore: create dir %s", dir)
		}
	}
	return "file:" + dsn + "?" + sqlitePragmas, nil
}

// querier lo implementan *sql.DB y *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// conn escribe las consultas con "?" y las adapta al driver.
type conn struct {
	q      querier
	driver string
}

func (c conn) exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return c.q.ExecContext(ctx, c.rebind(query), args...)
}

func (c conn) query(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return c.q.QueryContext(ctx, c.rebind(query), args...)
}

func (c conn) queryRow(ctx context.Context, query string, args ...any) *sql.Row {
	return c.q.QueryRowContext(ctx, c.rebind(query), args...)
}

// rebind pasa "?" a "$1..$n" para Postgres. Las consultas de este paquete no
// tienen "?" dentro de literales.
func (c conn) rebind(query string) string {
	if c.driver != DriverPostgres || !strings.Contains(query, "?") {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "sqlstore: parse timestamp %q", s)
	}
	return t, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func fromNullString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

func nullFloat(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}

func fromNullFloat(nf sql.NullFloat64) *float64 {
	if !nf.Valid {
		return nil
	}
	f := nf.Float64
	return &f
}
