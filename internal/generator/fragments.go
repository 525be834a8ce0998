package generator

import (
	"fmt"
	"strings"
)

// Fragments are the derived pieces of one generation run.
type Fragments struct {
	Fillable      []string       `json:"fillable" yaml:"fillable"`
	Rules         []Rule         `json:"rules" yaml:"rules"`
	Casts         []Cast         `json:"casts" yaml:"casts"`
	Relationships []Relationship `json:"relationships" yaml:"relationships"`
}

// Derive runs the four derivers. They are independent of each other and of
// call order.
func Derive(gc GenerationContext) Fragments {
	return Fragments{
		Fillable:      Fillable(gc.Table.ColumnNames()),
		Rules:         Rules(gc),
		Casts:         Casts(gc),
		Relationships: Relationships(gc),
	}
}

func FormatFillable(fillable []string) string {
	if len(fillable) == 0 {
		return "[]"
	}
	return "[\n    '" + strings.Join(fillable, "',\n    '") + "'\n]"
}

func FormatRules(rules []Rule) string {
	var sb strings.Builder
	sb.WriteString("[\n")
	for _, r := range rules {
		sb.WriteString(fmt.Sprintf("    '%s' => '%s',\n", r.Column, r.Expression))
	}
	sb.WriteString("]")
	return sb.String()
}

func FormatCasts(casts []Cast) string {
	var sb strings.Builder
	sb.WriteString("[\n")
	for _, c := range casts {
		sb.WriteString(fmt.Sprintf("        '%s' => '%s',\n", c.Column, c.Type))
	}
	sb.WriteString("    ]")
	return sb.String()
}

func FormatRelationships(relationships []Relationship) string {
	bodies := make([]string, 0, len(relationships))
	for _, r := range relationships {
		bodies = append(bodies, r.Body())
	}
	return strings.Join(bodies, "\n\n")
}
