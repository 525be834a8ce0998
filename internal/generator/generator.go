package generator

import (
	"context"
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"

	"admin_backend/internal/models"
)

// SchemaIntrospector answers questions about one database connection.
type SchemaIntrospector interface {
	TableExists(ctx context.Context, table string) (bool, error)
	ListColumns(ctx context.Context, table string) ([]string, error)
	DescribeColumns(ctx context.Context, table string) ([]models.Column, error)
	ListIndexes(ctx context.Context, table string) ([]models.Index, error)
	ListForeignKeys(ctx context.Context, table string) ([]models.ForeignKey, error)
	ColumnCount(ctx context.Context, table string) (int, error)
}

// LoadTable builds a fresh snapshot of table. Nothing is cached between calls.
func LoadTable(ctx context.Context, si SchemaIntrospector, table string) (models.Table, error) {
	exists, err := si.TableExists(ctx, table)
	if err != nil {
		return models.Table{}, fmt.Errorf("failed to check table %s: %w", table, err)
	}
	if !exists {
		return models.Table{}, fmt.Errorf("%w: %s", ErrTableNotFound, table)
	}

	columns, err := si.DescribeColumns(ctx, table)
	if err != nil {
		return models.Table{}, fmt.Errorf("failed to describe columns: %w", err)
	}
	indexes, err := si.ListIndexes(ctx, table)
	if err != nil {
		return models.Table{}, fmt.Errorf("failed to list indexes: %w", err)
	}
	fks, err := si.ListForeignKeys(ctx, table)
	if err != nil {
		return models.Table{}, fmt.Errorf("failed to list foreign keys: %w", err)
	}
	count, err := si.ColumnCount(ctx, table)
	if err != nil {
		return models.Table{}, fmt.Errorf("failed to count columns: %w", err)
	}

	return models.Table{
		Name:        table,
		Columns:     columns,
		Indexes:     indexes,
		ForeignKeys: fks,
		ColumnCount: count,
	}, nil
}

type Options struct {
	Table       string `validate:"required"`
	Model       string `validate:"required"`
	BasePath    string `validate:"required"`
	SoftDeletes bool
	Stubs       StubLoader
}

type Report struct {
	Names       Names            `json:"names" yaml:"names"`
	Fragments   Fragments        `json:"fragments" yaml:"fragments"`
	Artifacts   []ArtifactResult `json:"artifacts" yaml:"artifacts"`
	Route       string           `json:"route" yaml:"route"`
	RouteStatus Status           `json:"route_status" yaml:"route_status"`
}

type Generator struct {
	introspector SchemaIntrospector
	validate     *validator.Validate
}

func New(si SchemaIntrospector) *Generator {
	return &Generator{
		introspector: si,
		validate:     validator.New(),
	}
}

// Preview derives the fragments for table without touching the file system.
func (g *Generator) Preview(ctx context.Context, table, model string, softDeletes bool) (GenerationContext, Fragments, error) {
	snapshot, err := LoadTable(ctx, g.introspector, table)
	if err != nil {
		return GenerationContext{}, Fragments{}, err
	}
	gc := NewGenerationContext(snapshot, model, softDeletes)
	return gc, Derive(gc), nil
}

// Generate renders every artifact first and only then writes. The route is
// appended only when all files were written. The returned report is non-nil
// whenever writing started, even if err is set.
func (g *Generator) Generate(ctx context.Context, opts Options) (*Report, error) {
	if err := g.validate.Struct(opts); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	stubs := opts.Stubs
	if stubs == nil {
		stubs = DefaultStubs()
	}

	gc, fragments, err := g.Preview(ctx, opts.Table, opts.Model, opts.SoftDeletes)
	if err != nil {
		return nil, err
	}

	params := NewTemplateParams(gc, fragments)
	artifacts, err := RenderArtifacts(stubs, params, gc.Names)
	if err != nil {
		return nil, err
	}

	report := &Report{
		Names:       gc.Names,
		Fragments:   fragments,
		Route:       RouteLine(gc.Names),
		RouteStatus: StatusSkipped,
	}

	report.Artifacts, err = WriteArtifacts(opts.BasePath, artifacts)
	if err != nil {
		log.Printf("make:api %s: some artifacts were not written", opts.Table)
		return report, err
	}

	report.RouteStatus, err = AppendRoute(opts.BasePath, report.Route)
	if err != nil {
		return report, err
	}
	return report, nil
}
