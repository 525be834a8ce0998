package generator

import (
	"context"
	"errors"

	"admin_backend/internal/models"
)

// memIntrospector serves table snapshots from memory.
type memIntrospector struct {
	tables map[string]models.Table
	err    error
}

func newMemIntrospector(tables ...models.Table) *memIntrospector {
	m := &memIntrospector{tables: map[string]models.Table{}}
	for _, t := range tables {
		if t.ColumnCount == 0 {
			t.ColumnCount = len(t.Columns)
		}
		m.tables[t.Name] = t
	}
	return m
}

func (m *memIntrospector) TableExists(_ context.Context, table string) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.tables[table]
	return ok, nil
}

func (m *memIntrospector) ListColumns(_ context.Context, table string) ([]string, error) {
	return m.tables[table].ColumnNames(), nil
}

func (m *memIntrospector) DescribeColumns(_ context.Context, table string) ([]models.Column, error) {
	return m.tables[table].Columns, nil
}

func (m *memIntrospector) ListIndexes(_ context.Context, table string) ([]models.Index, error) {
	return m.tables[table].Indexes, nil
}

func (m *memIntrospector) ListForeignKeys(_ context.Context, table string) ([]models.ForeignKey, error) {
	return m.tables[table].ForeignKeys, nil
}

func (m *memIntrospector) ColumnCount(_ context.Context, table string) (int, error) {
	t, ok := m.tables[table]
	if !ok {
		return 0, errors.New("no such table")
	}
	return t.ColumnCount, nil
}

func col(name, typeName, raw string, nullable bool) models.Column {
	return models.Column{Name: name, TypeName: typeName, RawType: raw, Nullable: nullable}
}

func rolesTable() models.Table {
	return models.Table{
		Name: "roles",
		Columns: []models.Column{
			col("id", "bigint", "bigint", false),
			col("name", "varchar", "varchar(255)", false),
			col("guard_name", "varchar", "varchar(255)", false),
			col("created_at", "timestamp", "timestamp", true),
			col("updated_at", "timestamp", "timestamp", true),
		},
		Indexes: []models.Index{
			{Name: "roles_pkey", Columns: []string{"id"}, Unique: true},
			{Name: "roles_name_guard_name_unique", Columns: []string{"name", "guard_name"}, Unique: true},
		},
	}
}

func fk(local, refTable, refCol string) models.ForeignKey {
	return models.ForeignKey{
		ConstraintName:    local + "_foreign",
		LocalColumns:      []string{local},
		ReferencedTable:   refTable,
		ReferencedColumns: []string{refCol},
	}
}
