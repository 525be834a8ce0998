package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"
	"github.com/xo/dburl"

	"admin_backend/internal/models"
)

// SchemaRepository introspects the tables of one connection.
type SchemaRepository interface {
	TableExists(ctx context.Context, table string) (bool, error)
	ListColumns(ctx context.Context, table string) ([]string, error)
	DescribeColumns(ctx context.Context, table string) ([]models.Column, error)
	ListIndexes(ctx context.Context, table string) ([]models.Index, error)
	ListForeignKeys(ctx context.Context, table string) ([]models.ForeignKey, error)
	ColumnCount(ctx context.Context, table string) (int, error)
	Close()
}

// OpenSchemaRepository connects to urlstr and returns the matching backend.
// Accepted forms: postgres://, mysql://, sqlite:<path> and file:<path>.
func OpenSchemaRepository(ctx context.Context, urlstr string) (SchemaRepository, error) {
	if path, ok := sqlitePath(urlstr); ok {
		db, err := sqlx.ConnectContext(ctx, "sqlite", path)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite database: %w", err)
		}
		// every connection to :memory: is its own database
		db.SetMaxOpenConns(1)
		return NewSQLiteSchemaRepository(db), nil
	}

	u, err := dburl.Parse(urlstr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database url: %w", err)
	}

	switch u.Driver {
	case "postgres", "pgx":
		pool, err := pgxpool.New(ctx, urlstr)
		if err != nil {
			return nil, fmt.Errorf("failed to create pool: %w", err)
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, fmt.Errorf("failed to ping database: %w", err)
		}
		return NewPostgresSchemaRepository(pool, "public", true), nil
	case "mysql":
		db, err := sqlx.ConnectContext(ctx, "mysql", u.DSN)
		if err != nil {
			return nil, fmt.Errorf("failed to open mysql database: %w", err)
		}
		return NewMySQLSchemaRepository(db), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedDriver, u.Driver)
	}
}

func sqlitePath(urlstr string) (string, bool) {
	for _, prefix := range []string{"sqlite://", "sqlite3://", "sqlite:", "sqlite3:", "file:"} {
		if strings.HasPrefix(urlstr, prefix) {
			path := strings.TrimPrefix(strings.TrimPrefix(urlstr, prefix), "//")
			if path == ":memory:" {
				return path, true
			}
			return "file:" + path, true
		}
	}
	return "", false
}

// NormalizeTypeName reduces an engine type declaration to the short tag used
// by the generator, e.g. "character varying(255)" -> "varchar", "int4" -> "int".
func NormalizeTypeName(raw string) string {
	t := strings.ToLower(strings.TrimSpace(raw))
	if i := strings.IndexByte(t, '('); i >= 0 {
		t = strings.TrimSpace(t[:i])
	}
	t = strings.TrimSuffix(t, " unsigned")

	switch {
	case strings.HasPrefix(t, "timestamp"):
		return "timestamp"
	case strings.HasPrefix(t, "time "):
		return "time"
	}

	switch t {
	case "int4", "integer", "int", "mediumint", "serial":
		return "int"
	case "int8", "bigint", "bigserial":
		return "bigint"
	case "int2", "smallint", "smallserial":
		return "smallint"
	case "bool", "boolean":
		return "boolean"
	case "numeric", "decimal":
		return "decimal"
	case "float8", "double precision", "double":
		return "double"
	case "float4", "real", "float":
		return "float"
	case "character varying", "varchar":
		return "varchar"
	case "bpchar", "character", "char":
		return "char"
	case "tinytext", "mediumtext", "longtext", "text":
		return "text"
	case "timestamptz":
		return "timestamp"
	}
	return t
}
