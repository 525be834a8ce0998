package generator

// housekeeping columns are managed by the framework and never mass-assigned or validated.
var housekeepingColumns = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"deleted_at": true,
}

func isHousekeeping(column string) bool {
	return housekeepingColumns[column]
}

// Fillable returns the column names eligible for mass assignment, in table order.
func Fillable(columns []string) []string {
	fillable := make([]string, 0, len(columns))
	for _, col := range columns {
		if isHousekeeping(col) {
			continue
		}
		fillable = append(fillable, col)
	}
	return fillable
}
