package generator

import (
	"fmt"
	"regexp"
	"strings"

	"admin_backend/internal/models"
)

var lengthPattern = regexp.MustCompile(`\((\d+)\)`)

// Rule is the validation expression of one column, e.g. "required|string|max:255".
type Rule struct {
	Column     string `json:"column" yaml:"column"`
	Expression string `json:"rule" yaml:"rule"`
}

// Rules derives one rule per non-housekeeping column, keeping table column order.
func Rules(gc GenerationContext) []Rule {
	uniqueIndexes := make([]models.Index, 0, len(gc.Table.Indexes))
	for _, idx := range gc.Table.Indexes {
		if idx.Unique {
			uniqueIndexes = append(uniqueIndexes, idx)
		}
	}

	rules := make([]Rule, 0, len(gc.Table.Columns))
	for _, col := range gc.Table.Columns {
		if isHousekeeping(col.Name) {
			continue
		}
		rules = append(rules, Rule{
			Column:     col.Name,
			Expression: columnRule(gc.Table.Name, col, uniqueIndexes),
		})
	}
	return rules
}

func columnRule(table string, col models.Column, uniqueIndexes []models.Index) string {
	parts := make([]string, 0, 4)

	if col.Nullable {
		parts = append(parts, "nullable")
	} else {
		parts = append(parts, "required")
	}

	switch strings.ToLower(col.TypeName) {
	case "nvarchar", "varchar", "char", "text":
		parts = append(parts, "string")
		if m := lengthPattern.FindStringSubmatch(col.RawType); m != nil {
			parts = append(parts, "max:"+m[1])
		}
	case "int", "bigint", "smallint", "tinyint":
		parts = append(parts, "integer")
	case "decimal", "float", "double":
		parts = append(parts, "numeric")
	case "date", "datetime", "timestamp":
		parts = append(parts, "date")
	case "bit", "boolean":
		parts = append(parts, "boolean")
	default:
		parts = append(parts, "string")
	}

	// first unique index in introspection order wins
	for _, idx := range uniqueIndexes {
		if containsColumn(idx.Columns, col.Name) {
			parts = append(parts, fmt.Sprintf("unique:%s,%s", table, col.Name))
			break
		}
	}

	return strings.Join(parts, "|")
}

func containsColumn(columns []string, name string) bool {
	for _, c := range columns {
		if c == name {
			return true
		}
	}
	return false
}
