package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"admin_backend/internal/models"
)

type PostgresSchemaRepository struct {
	pool   *pgxpool.Pool
	schema string
	owned  bool
}

// NewPostgresSchemaRepository introspects tables of schema. When owned is
// true Close also closes the pool.
func NewPostgresSchemaRepository(pool *pgxpool.Pool, schema string, owned bool) *PostgresSchemaRepository {
	if schema == "" {
		schema = "public"
	}
	return &PostgresSchemaRepository{pool: pool, schema: schema, owned: owned}
}

func (r *PostgresSchemaRepository) Close() {
	if r.owned {
		r.pool.Close()
	}
}

func (r *PostgresSchemaRepository) TableExists(ctx context.Context, table string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM information_schema.tables
			WHERE table_schema = $1 AND table_name = $2 AND table_type = 'BASE TABLE'
		)
	`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, r.schema, table).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresSchemaRepository) ListColumns(ctx context.Context, table string) ([]string, error) {
	query := `
		SELECT column_name
		FROM information_schema.columns
		WHERE table_schema = $1 AND table_name = $2
		ORDER BY ordinal_position
	`

	rows, err := r.pool.Query(ctx, query, r.schema, table)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var columns []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		columns = append(columns, name)
	}

	return columns, rows.Err()
}

// DescribeColumns returns columns in attribute order with the full declared
// type, e.g. "character varying(255)".
func (r *PostgresSchemaRepository) DescribeColumns(ctx context.Context, table string) ([]models.Column, error) {
	query := `
		SELECT a.attname, t.typname, format_type(a.atttypid, a.atttypmod), NOT a.attnotnull
		FROM pg_attribute a
		JOIN pg_class c ON c.oid = a.attrelid
		JOIN pg_namespace n ON n.oid = c.relnamespace
		JOIN pg_type t ON t.oid = a.atttypid
		WHERE n.nspname = $1 AND c.relname = $2
			AND a.attnum > 0 AND NOT a.attisdropped
		ORDER BY a.attnum
	`

	rows, err := r.pool.Query(ctx, query, r.schema, table)
	if err != nil {
		return nil, fmt.Errorf("failed to query columns: %w", err)
	}
	defer rows.Close()

	var columns []models.Column
	for rows.Next() {
		var col models.Column
		var typeName string
		if err := rows.Scan(&col.Name, &typeName, &col.RawType, &col.Nullable); err != nil {
			return nil, fmt.Errorf("failed to scan column: %w", err)
		}
		col.TypeName = NormalizeTypeName(typeName)
		columns = append(columns, col)
	}

	return columns, rows.Err()
}

// ListIndexes returns indexes in creation order, columns in key order.
func (r *PostgresSchemaRepository) ListIndexes(ctx context.Context, table string) ([]models.Index, error) {
	query := `
		SELECT ic.relname, ix.indisunique, array_agg(a.attname::text ORDER BY k.ord)
		FROM pg_index ix
		JOIN pg_class tc ON tc.oid = ix.indrelid
		JOIN pg_namespace n ON n.oid = tc.relnamespace
		JOIN pg_class ic ON ic.oid = ix.indexrelid
		CROSS JOIN LATERAL unnest(ix.indkey) WITH ORDINALITY AS k(attnum, ord)
		JOIN pg_attribute a ON a.attrelid = tc.oid AND a.attnum = k.attnum
		WHERE n.nspname = $1 AND tc.relname = $2
		GROUP BY ix.indexrelid, ic.relname, ix.indisunique
		ORDER BY ix.indexrelid
	`

	rows, err := r.pool.Query(ctx, query, r.schema, table)
	if err != nil {
		return nil, fmt.Errorf("failed to query indexes: %w", err)
	}
	defer rows.Close()

	var indexes []models.Index
	for rows.Next() {
		var idx models.Index
		if err := rows.Scan(&idx.Name, &idx.Unique, &idx.Columns); err != nil {
			return nil, fmt.Errorf("failed to scan index: %w", err)
		}
		indexes = append(indexes, idx)
	}

	return indexes, rows.Err()
}

func (r *PostgresSchemaRepository) ListForeignKeys(ctx context.Context, table string) ([]models.ForeignKey, error) {
	query := `
		SELECT
			con.conname,
			array_agg(la.attname::text ORDER BY k.ord),
			fc.relname,
			array_agg(fa.attname::text ORDER BY k.ord)
		FROM pg_constraint con
		JOIN pg_class c ON c.oid = con.conrelid
		JOIN pg_namespace n ON n.oid = c.relnamespace
		JOIN pg_class fc ON fc.oid = con.confrelid
		CROSS JOIN LATERAL unnest(con.conkey, con.confkey) WITH ORDINALITY AS k(local_attnum, foreign_attnum, ord)
		JOIN pg_attribute la ON la.attrelid = con.conrelid AND la.attnum = k.local_attnum
		JOIN pg_attribute fa ON fa.attrelid = con.confrelid AND fa.attnum = k.foreign_attnum
		WHERE con.contype = 'f' AND n.nspname = $1 AND c.relname = $2
		GROUP BY con.oid, con.conname, fc.relname
		ORDER BY con.oid
	`

	rows, err := r.pool.Query(ctx, query, r.schema, table)
	if err != nil {
		return nil, fmt.Errorf("failed to query foreign keys: %w", err)
	}
	defer rows.Close()

	var fks []models.ForeignKey
	for rows.Next() {
		var fk models.ForeignKey
		if err := rows.Scan(&fk.ConstraintName, &fk.LocalColumns, &fk.ReferencedTable, &fk.ReferencedColumns); err != nil {
			return nil, fmt.Errorf("failed to scan foreign key: %w", err)
		}
		fks = append(fks, fk)
	}

	return fks, rows.Err()
}

func (r *PostgresSchemaRepository) ColumnCount(ctx context.Context, table string) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM information_schema.columns
		WHERE table_schema = $1 AND table_name = $2
	`

	var count int
	if err := r.pool.QueryRow(ctx, query, r.schema, table).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
