package repositories

import (
	"context"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"admin_backend/internal/models"
)

// MySQLSchemaRepository reads information_schema of the connection's current database.
type MySQLSchemaRepository struct {
	db *sqlx.DB
}

func NewMySQLSchemaRepository(db *sqlx.DB) *MySQLSchemaRepository {
	return &MySQLSchemaRepository{db: db}
}

func (r *MySQLSchemaRepository) Close() {
	r.db.Close()
}

func (r *MySQLSchemaRepository) TableExists(ctx context.Context, table string) (bool, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM information_schema.tables WHERE table_schema = DATABASE() AND table_name = ?`, table)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *MySQLSchemaRepository) ListColumns(ctx context.Context, table string) ([]string, error) {
	var columns []string
	err := r.db.SelectContext(ctx, &columns, `
		SELECT column_name FROM information_schema.columns
		WHERE table_schema = DATABASE() AND table_name = ?
		ORDER BY ordinal_position`, table)
	return columns, err
}

type mysqlColumn struct {
	Name       string `db:"name"`
	DataType   string `db:"data_type"`
	ColumnType string `db:"column_type"`
	IsNullable string `db:"is_nullable"`
}

func (r *MySQLSchemaRepository) DescribeColumns(ctx context.Context, table string) ([]models.Column, error) {
	var rows []mysqlColumn
	err := r.db.SelectContext(ctx, &rows, `
		SELECT column_name AS name, data_type AS data_type, column_type AS column_type, is_nullable AS is_nullable
		FROM information_schema.columns
		WHERE table_schema = DATABASE() AND table_name = ?
		ORDER BY ordinal_position`, table)
	if err != nil {
		return nil, fmt.Errorf("failed to query columns: %w", err)
	}

	columns := make([]models.Column, 0, len(rows))
	for _, row := range rows {
		columns = append(columns, models.Column{
			Name:     row.Name,
			TypeName: NormalizeTypeName(row.DataType),
			RawType:  row.ColumnType,
			Nullable: row.IsNullable == "YES",
		})
	}
	return columns, nil
}

type mysqlIndexColumn struct {
	Name      string `db:"name"`
	NonUnique int    `db:"non_unique"`
	Column    string `db:"column_name"`
}

func (r *MySQLSchemaRepository) ListIndexes(ctx context.Context, table string) ([]models.Index, error) {
	var rows []mysqlIndexColumn
	err := r.db.SelectContext(ctx, &rows, `
		SELECT index_name AS name, non_unique AS non_unique, column_name AS column_name
		FROM information_schema.statistics
		WHERE table_schema = DATABASE() AND table_name = ?
		ORDER BY index_name, seq_in_index`, table)
	if err != nil {
		return nil, fmt.Errorf("failed to query indexes: %w", err)
	}

	var indexes []models.Index
	pos := map[string]int{}
	for _, row := range rows {
		i, ok := pos[row.Name]
		if !ok {
			i = len(indexes)
			pos[row.Name] = i
			indexes = append(indexes, models.Index{Name: row.Name, Unique: row.NonUnique == 0})
		}
		indexes[i].Columns = append(indexes[i].Columns, row.Column)
	}
	return indexes, nil
}

type mysqlForeignKeyColumn struct {
	Name             string `db:"name"`
	Column           string `db:"column_name"`
	ReferencedTable  string `db:"referenced_table"`
	ReferencedColumn string `db:"referenced_column"`
}

func (r *MySQLSchemaRepository) ListForeignKeys(ctx context.Context, table string) ([]models.ForeignKey, error) {
	var rows []mysqlForeignKeyColumn
	err := r.db.SelectContext(ctx, &rows, `
		SELECT constraint_name AS name, column_name AS column_name,
			referenced_table_name AS referenced_table, referenced_column_name AS referenced_column
		FROM information_schema.key_column_usage
		WHERE table_schema = DATABASE() AND table_name = ? AND referenced_table_name IS NOT NULL
		ORDER BY constraint_name, ordinal_position`, table)
	if err != nil {
		return nil, fmt.Errorf("failed to query foreign keys: %w", err)
	}

	var fks []models.ForeignKey
	pos := map[string]int{}
	for _, row := range rows {
		i, ok := pos[row.Name]
		if !ok {
			i = len(fks)
			pos[row.Name] = i
			fks = append(fks, models.ForeignKey{ConstraintName: row.Name, ReferencedTable: row.ReferencedTable})
		}
		fks[i].LocalColumns = append(fks[i].LocalColumns, row.Column)
		fks[i].ReferencedColumns = append(fks[i].ReferencedColumns, row.ReferencedColumn)
	}
	return fks, nil
}

func (r *MySQLSchemaRepository) ColumnCount(ctx context.Context, table string) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM information_schema.columns WHERE table_schema = DATABASE() AND table_name = ?`, table)
	return count, err
}
