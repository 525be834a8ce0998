package generator

import (
	"fmt"

	"admin_backend/internal/models"
)

type RelationshipKind string

const (
	BelongsTo     RelationshipKind = "belongsTo"
	HasMany       RelationshipKind = "hasMany"
	HasOne        RelationshipKind = "hasOne"
	BelongsToMany RelationshipKind = "belongsToMany"
	MorphTo       RelationshipKind = "morphTo"
	NoRelation    RelationshipKind = ""
)

const (
	pivotForeignKeys = 2
	maxPivotColumns  = 3
)

// Relationship is one accessor derived from a foreign key.
type Relationship struct {
	Kind             RelationshipKind `json:"kind" yaml:"kind"`
	Method           string           `json:"method" yaml:"method"`
	RelatedModel     string           `json:"related_model" yaml:"related_model"`
	LocalColumn      string           `json:"local_column" yaml:"local_column"`
	ReferencedColumn string           `json:"referenced_column" yaml:"referenced_column"`
}

// Body renders the accessor method for the model stub.
func (r Relationship) Body() string {
	return fmt.Sprintf("    public function %s()\n    {\n        return $this->%s(%s::class, '%s', '%s');\n    }",
		r.Method, r.Kind, r.RelatedModel, r.LocalColumn, r.ReferencedColumn)
}

// ClassifyRelationship decides the relationship kind of one foreign key of the
// owning table. The checks run in a fixed order and the first match wins.
// The pivot check can only be reached by self-referencing keys, so a real
// pivot table (two keys to two other tables) classifies as belongsTo twice.
func ClassifyRelationship(fk models.ForeignKey, owner models.Table) RelationshipKind {
	switch {
	case fk.ReferencedTable != owner.Name:
		return BelongsTo
	case fk.ReferencedColumn() == "id":
		return HasMany
	case isUniqueColumn(owner.Indexes, fk.LocalColumn()):
		return HasOne
	case isPivotTable(owner):
		return BelongsToMany
	case isPolymorphic(fk):
		return MorphTo
	default:
		return NoRelation
	}
}

func isUniqueColumn(indexes []models.Index, column string) bool {
	for _, idx := range indexes {
		if idx.Unique && containsColumn(idx.Columns, column) {
			return true
		}
	}
	return false
}

func isPivotTable(t models.Table) bool {
	return len(t.ForeignKeys) == pivotForeignKeys && t.ColumnCount <= maxPivotColumns
}

func isPolymorphic(fk models.ForeignKey) bool {
	return containsColumn(fk.LocalColumns, "morph_id") && containsColumn(fk.LocalColumns, "morph_type")
}

// Relationships classifies every foreign key of the table. Keys that match no
// rule produce no accessor. Accessor names are not de-duplicated.
func Relationships(gc GenerationContext) []Relationship {
	relationships := make([]Relationship, 0, len(gc.Table.ForeignKeys))
	for _, fk := range gc.Table.ForeignKeys {
		kind := ClassifyRelationship(fk, gc.Table)
		if kind == NoRelation {
			continue
		}

		method := Camel(Singular(fk.ReferencedTable))
		if kind == HasMany || kind == BelongsToMany {
			method = Camel(Plural(fk.ReferencedTable))
		}

		relationships = append(relationships, Relationship{
			Kind:             kind,
			Method:           method,
			RelatedModel:     Studly(Singular(fk.ReferencedTable)),
			LocalColumn:      fk.LocalColumn(),
			ReferencedColumn: fk.ReferencedColumn(),
		})
	}
	return relationships
}
