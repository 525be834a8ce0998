package generator

import "strings"

type Cast struct {
	Column string `json:"column" yaml:"column"`
	Type   string `json:"cast" yaml:"cast"`
}

// Casts maps every column, housekeeping ones included, to a cast tag.
func Casts(gc GenerationContext) []Cast {
	casts := make([]Cast, 0, len(gc.Table.Columns))
	for _, col := range gc.Table.Columns {
		casts = append(casts, Cast{Column: col.Name, Type: castFor(col.TypeName)})
	}
	return casts
}

func castFor(typeName string) string {
	switch strings.ToLower(typeName) {
	case "int", "bigint", "smallint", "tinyint":
		return "integer"
	case "decimal", "float", "double":
		return "float"
	case "bit", "boolean":
		return "boolean"
	case "date":
		return "date"
	case "datetime":
		return "datetime"
	case "timestamp":
		return "timestamp"
	default:
		return "string"
	}
}
