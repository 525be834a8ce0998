package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"admin_backend/internal/models"
)

// SQLiteSchemaRepository introspects through the pragma table functions.
type SQLiteSchemaRepository struct {
	db *sqlx.DB
}

func NewSQLiteSchemaRepository(db *sqlx.DB) *SQLiteSchemaRepository {
	return &SQLiteSchemaRepository{db: db}
}

func (r *SQLiteSchemaRepository) Close() {
	r.db.Close()
}

func (r *SQLiteSchemaRepository) TableExists(ctx context.Context, table string) (bool, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?`, table)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *SQLiteSchemaRepository) ListColumns(ctx context.Context, table string) ([]string, error) {
	var columns []string
	err := r.db.SelectContext(ctx, &columns, `SELECT name FROM pragma_table_info(?) ORDER BY cid`, table)
	return columns, err
}

type sqliteColumn struct {
	Name    string `db:"name"`
	Type    string `db:"type"`
	NotNull int    `db:"notnull"`
	PK      int    `db:"pk"`
}

func (r *SQLiteSchemaRepository) DescribeColumns(ctx context.Context, table string) ([]models.Column, error) {
	var rows []sqliteColumn
	err := r.db.SelectContext(ctx, &rows, `SELECT name, type, "notnull", pk FROM pragma_table_info(?) ORDER BY cid`, table)
	if err != nil {
		return nil, fmt.Errorf("failed to query columns: %w", err)
	}

	columns := make([]models.Column, 0, len(rows))
	for _, row := range rows {
		columns = append(columns, models.Column{
			Name:     row.Name,
			TypeName: NormalizeTypeName(row.Type),
			RawType:  strings.ToLower(row.Type),
			Nullable: row.NotNull == 0 && row.PK == 0,
		})
	}
	return columns, nil
}

type sqliteIndex struct {
	Name   string `db:"name"`
	Unique int    `db:"unique"`
}

func (r *SQLiteSchemaRepository) ListIndexes(ctx context.Context, table string) ([]models.Index, error) {
	var rows []sqliteIndex
	if err := r.db.SelectContext(ctx, &rows, `SELECT name, "unique" FROM pragma_index_list(?) ORDER BY seq`, table); err != nil {
		return nil, fmt.Errorf("failed to query indexes: %w", err)
	}

	indexes := make([]models.Index, 0, len(rows))
	for _, row := range rows {
		var columns []string
		if err := r.db.SelectContext(ctx, &columns, `SELECT name FROM pragma_index_info(?) ORDER BY seqno`, row.Name); err != nil {
			return nil, fmt.Errorf("failed to query index %s: %w", row.Name, err)
		}
		indexes = append(indexes, models.Index{Name: row.Name, Columns: columns, Unique: row.Unique == 1})
	}
	return indexes, nil
}

type sqliteForeignKey struct {
	ID    int    `db:"id"`
	Table string `db:"table"`
	From  string `db:"from"`
	To    string `db:"to"`
}

func (r *SQLiteSchemaRepository) ListForeignKeys(ctx context.Context, table string) ([]models.ForeignKey, error) {
	var rows []sqliteForeignKey
	err := r.db.SelectContext(ctx, &rows,
		`SELECT id, "table", "from", COALESCE("to", '') AS "to" FROM pragma_foreign_key_list(?) ORDER BY id, seq`, table)
	if err != nil {
		return nil, fmt.Errorf("failed to query foreign keys: %w", err)
	}

	var fks []models.ForeignKey
	pos := map[int]int{}
	for _, row := range rows {
		to := row.To
		if to == "" {
			// a key declared without columns points at the primary key
			if to, err = r.primaryKey(ctx, row.Table); err != nil {
				return nil, err
			}
		}

		i, ok := pos[row.ID]
		if !ok {
			i = len(fks)
			pos[row.ID] = i
			fks = append(fks, models.ForeignKey{
				ConstraintName:  fmt.Sprintf("%s_fk_%d", table, row.ID),
				ReferencedTable: row.Table,
			})
		}
		fks[i].LocalColumns = append(fks[i].LocalColumns, row.From)
		fks[i].ReferencedColumns = append(fks[i].ReferencedColumns, to)
	}
	return fks, nil
}

func (r *SQLiteSchemaRepository) primaryKey(ctx context.Context, table string) (string, error) {
	var name string
	err := r.db.GetContext(ctx, &name, `SELECT name FROM pragma_table_info(?) WHERE pk = 1`, table)
	if errors.Is(err, sql.ErrNoRows) {
		// no declared primary key: the implicit rowid, aliased by an "id" column when present
		var hasID int
		if err := r.db.GetContext(ctx, &hasID,
			`SELECT COUNT(*) FROM pragma_table_info(?) WHERE name = 'id'`, table); err != nil {
			return "", fmt.Errorf("failed to resolve primary key of %s: %w", table, err)
		}
		if hasID > 0 {
			return "id", nil
		}
		return "rowid", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to resolve primary key of %s: %w", table, err)
	}
	return name, nil
}

func (r *SQLiteSchemaRepository) ColumnCount(ctx context.Context, table string) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM pragma_table_info(?)`, table)
	return count, err
}
