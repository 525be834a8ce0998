package generator

import (
	"testing"

	"admin_backend/internal/models"
)

func TestCastsCoverEveryColumn(t *testing.T) {
	table := models.Table{
		Name: "events",
		Columns: []models.Column{
			col("id", "bigint", "bigint", false),
			col("title", "varchar", "varchar(100)", false),
			col("capacity", "smallint", "smallint", false),
			col("fee", "double", "double", true),
			col("public", "bit", "bit(1)", false),
			col("starts_on", "date", "date", false),
			col("starts_at", "datetime", "datetime", false),
			col("created_at", "timestamp", "timestamp", true),
			col("meta", "json", "json", true),
		},
	}

	casts := Casts(NewGenerationContext(table, "Event", false))
	if len(casts) != len(table.Columns) {
		t.Fatalf("expected %d casts, got %d", len(table.Columns), len(casts))
	}

	want := []string{"integer", "string", "integer", "float", "boolean", "date", "datetime", "timestamp", "string"}
	for i, c := range casts {
		if c.Column != table.Columns[i].Name {
			t.Errorf("cast %d column = %s, want %s", i, c.Column, table.Columns[i].Name)
		}
		if c.Type != want[i] {
			t.Errorf("cast for %s = %s, want %s", c.Column, c.Type, want[i])
		}
	}
}

func TestFormatCasts(t *testing.T) {
	got := FormatCasts([]Cast{{Column: "id", Type: "integer"}})
	want := "[\n        'id' => 'integer',\n    ]"
	if got != want {
		t.Errorf("FormatCasts() = %q, want %q", got, want)
	}
}
