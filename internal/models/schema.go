package models

// Column is one introspected column.
// TypeName is the normalized type tag ("varchar", "int", "decimal", ...),
// RawType is the engine's full declaration and may carry a length, e.g. "varchar(255)".
type Column struct {
	Name     string `json:"name" yaml:"name"`
	TypeName string `json:"type_name" yaml:"type_name"`
	RawType  string `json:"type" yaml:"type"`
	Nullable bool   `json:"nullable" yaml:"nullable"`
}

type Index struct {
	Name    string   `json:"name" yaml:"name"`
	Columns []string `json:"columns" yaml:"columns"`
	Unique  bool     `json:"unique" yaml:"unique"`
}

// ForeignKey mirrors a foreign key constraint. Composite keys keep every column
// but only the first local and referenced column drive relationship generation.
type ForeignKey struct {
	ConstraintName    string   `json:"name" yaml:"name"`
	LocalColumns      []string `json:"columns" yaml:"columns"`
	ReferencedTable   string   `json:"foreign_table" yaml:"foreign_table"`
	ReferencedColumns []string `json:"foreign_columns" yaml:"foreign_columns"`
}

func (fk ForeignKey) LocalColumn() string {
	if len(fk.LocalColumns) == 0 {
		return ""
	}
	return fk.LocalColumns[0]
}

func (fk ForeignKey) ReferencedColumn() string {
	if len(fk.ReferencedColumns) == 0 {
		return ""
	}
	return fk.ReferencedColumns[0]
}

// Table is a read-only snapshot of one table, rebuilt for every generation run.
type Table struct {
	Name        string       `json:"name" yaml:"name"`
	Columns     []Column     `json:"columns" yaml:"columns"`
	Indexes     []Index      `json:"indexes" yaml:"indexes"`
	ForeignKeys []ForeignKey `json:"foreign_keys" yaml:"foreign_keys"`
	ColumnCount int          `json:"column_count" yaml:"column_count"`
}

func (t Table) ColumnNames() []string {
	names := make([]string, 0, len(t.Columns))
	for _, col := range t.Columns {
		names = append(names, col.Name)
	}
	return names
}
