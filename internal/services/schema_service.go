package services

import (
	"context"
	"fmt"

	"admin_backend/internal/generator"
)

// TableColumns is what the admin UI needs to render a resource's form.
type TableColumns struct {
	Columns []string `json:"columns"`
	Model   string   `json:"model"`
	Table   string   `json:"table"`
	Route   string   `json:"route"`
}

type ScaffoldPreview struct {
	Names         generator.Names          `json:"names"`
	Fillable      []string                 `json:"fillable"`
	Rules         []generator.Rule         `json:"rules"`
	Casts         []generator.Cast         `json:"casts"`
	Relationships []generator.Relationship `json:"relationships"`
	Route         string                   `json:"route"`
	Rendered      map[string]string        `json:"rendered"`
}

type SchemaService struct {
	introspector generator.SchemaIntrospector
	generator    *generator.Generator
}

func NewSchemaService(introspector generator.SchemaIntrospector) *SchemaService {
	return &SchemaService{
		introspector: introspector,
		generator:    generator.New(introspector),
	}
}

// Columns lists the fillable columns of a live table.
func (s *SchemaService) Columns(ctx context.Context, table, model string) (*TableColumns, error) {
	exists, err := s.introspector.TableExists(ctx, table)
	if err != nil {
		return nil, fmt.Errorf("failed to check table %q: %w", table, err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", generator.ErrTableNotFound, table)
	}

	columns, err := s.introspector.ListColumns(ctx, table)
	if err != nil {
		return nil, fmt.Errorf("failed to list columns of %q: %w", table, err)
	}

	return &TableColumns{
		Columns: generator.Fillable(columns),
		Model:   model,
		Table:   table,
		Route:   "api/" + table,
	}, nil
}

// Scaffold derives everything make:api would generate for a table without
// touching the filesystem.
func (s *SchemaService) Scaffold(ctx context.Context, table, model string, softDeletes bool) (*ScaffoldPreview, error) {
	if model == "" {
		model = generator.Studly(generator.Singular(table))
	}

	gc, f, err := s.generator.Preview(ctx, table, model, softDeletes)
	if err != nil {
		return nil, err
	}

	params := generator.NewTemplateParams(gc, f)
	return &ScaffoldPreview{
		Names:         gc.Names,
		Fillable:      f.Fillable,
		Rules:         f.Rules,
		Casts:         f.Casts,
		Relationships: f.Relationships,
		Route:         generator.RouteLine(gc.Names),
		Rendered: map[string]string{
			"fillable":        params.Fillable,
			"validationRules": params.ValidationRules,
			"casts":           params.Casts,
			"relationships":   params.Relationships,
		},
	}, nil
}
