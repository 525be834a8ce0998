package generator

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"admin_backend/internal/models"
)

func TestGenerateWritesArtifactsAndRoute(t *testing.T) {
	base := t.TempDir()
	writeRouteFile(t, base, "<?php\n")

	g := New(newMemIntrospector(rolesTable()))
	report, err := g.Generate(context.Background(), Options{Table: "roles", Model: "role", BasePath: base, SoftDeletes: true})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if len(report.Artifacts) != 5 {
		t.Fatalf("expected 5 artifacts, got %d", len(report.Artifacts))
	}
	for _, a := range report.Artifacts {
		if a.Status != StatusWritten {
			t.Errorf("artifact %s status = %s", a.Name, a.Status)
		}
		if _, err := os.Stat(filepath.Join(base, a.Path)); err != nil {
			t.Errorf("artifact %s missing on disk: %v", a.Name, err)
		}
	}
	if report.RouteStatus != StatusAppended {
		t.Errorf("route status = %s", report.RouteStatus)
	}

	model, err := os.ReadFile(filepath.Join(base, "app", "Models", "Role.php"))
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"class Role extends Model",
		"protected $table = 'roles';",
		"'name' => 'required|string|max:255|unique:roles,name',",
		"'id' => 'integer',",
		"use SoftDeletes;",
	} {
		if !strings.Contains(string(model), want) {
			t.Errorf("model is missing %q", want)
		}
	}
	if strings.Contains(string(model), "{{") {
		t.Errorf("model still contains placeholders")
	}

	for _, p := range []string{
		"app/Http/Controllers/Api/RoleApiController.php",
		"app/Http/Requests/Api/CreateRoleApiRequest.php",
		"app/Http/Requests/Api/UpdateRoleApiRequest.php",
		"database/seeders/rolesTableSeeder.php",
	} {
		if _, err := os.Stat(filepath.Join(base, filepath.FromSlash(p))); err != nil {
			t.Errorf("expected %s: %v", p, err)
		}
	}

	report, err = g.Generate(context.Background(), Options{Table: "roles", Model: "role", BasePath: base})
	if err != nil {
		t.Fatalf("second Generate() error = %v", err)
	}
	if report.RouteStatus != StatusDuplicate {
		t.Errorf("second run route status = %s, want %s", report.RouteStatus, StatusDuplicate)
	}
}

func TestGenerateMissingTableWritesNothing(t *testing.T) {
	base := t.TempDir()
	g := New(newMemIntrospector(rolesTable()))

	_, err := g.Generate(context.Background(), Options{Table: "ghosts", Model: "Ghost", BasePath: base})
	if !errors.Is(err, ErrTableNotFound) {
		t.Fatalf("expected ErrTableNotFound, got %v", err)
	}

	entries, _ := os.ReadDir(base)
	if len(entries) != 0 {
		t.Errorf("expected empty base path, found %d entries", len(entries))
	}
}

func TestGenerateBadStubWritesNothing(t *testing.T) {
	base := t.TempDir()
	stubs := fstest.MapFS{}
	for _, name := range []string{StubModel, StubController, StubRequestCreate, StubRequestUpdate} {
		stubs[name+".stub"] = &fstest.MapFile{Data: []byte("{{ model }}")}
	}
	stubs[StubSeeder+".stub"] = &fstest.MapFile{Data: []byte("{{ seederName }}")}

	g := New(newMemIntrospector(rolesTable()))
	_, err := g.Generate(context.Background(), Options{
		Table:    "roles",
		Model:    "Role",
		BasePath: base,
		Stubs:    FSStubLoader{FS: stubs, Dir: "."},
	})
	if !errors.Is(err, ErrUnmatchedPlaceholder) {
		t.Fatalf("expected ErrUnmatchedPlaceholder, got %v", err)
	}

	entries, _ := os.ReadDir(base)
	if len(entries) != 0 {
		t.Errorf("nothing should be written when a stub fails to render")
	}
}

func TestGenerateUnwritablePathSkipsRoute(t *testing.T) {
	base := t.TempDir()
	routes := writeRouteFile(t, base, "<?php\n")
	// a regular file where the seeders directory should be
	if err := os.MkdirAll(filepath.Join(base, "database"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(base, "database", "seeders"), nil, 0o644); err != nil {
		t.Fatal(err)
	}

	g := New(newMemIntrospector(rolesTable()))
	report, err := g.Generate(context.Background(), Options{Table: "roles", Model: "Role", BasePath: base})
	if !errors.Is(err, ErrPathUnwritable) {
		t.Fatalf("expected ErrPathUnwritable, got %v", err)
	}
	if report == nil {
		t.Fatal("expected a partial report")
	}

	statuses := map[string]Status{}
	for _, a := range report.Artifacts {
		statuses[a.Name] = a.Status
	}
	if statuses["model"] != StatusWritten || statuses["seeder"] != StatusFailed {
		t.Errorf("unexpected statuses: %v", statuses)
	}
	if report.RouteStatus != StatusSkipped {
		t.Errorf("route status = %s, want %s", report.RouteStatus, StatusSkipped)
	}
	data, _ := os.ReadFile(routes)
	if string(data) != "<?php\n" {
		t.Errorf("route file should be untouched, got %q", data)
	}
}

func TestGenerateValidatesOptions(t *testing.T) {
	g := New(newMemIntrospector())
	if _, err := g.Generate(context.Background(), Options{Table: "roles"}); err == nil {
		t.Error("expected validation error")
	}
}

func TestPreviewIsPure(t *testing.T) {
	table := rolesTable()
	table.Columns = append(table.Columns, col("parent_id", "bigint", "bigint", true))
	table.ForeignKeys = []models.ForeignKey{fk("parent_id", "roles", "id")}
	g := New(newMemIntrospector(table))

	_, first, err := g.Preview(context.Background(), "roles", "Role", false)
	if err != nil {
		t.Fatal(err)
	}
	_, second, err := g.Preview(context.Background(), "roles", "Role", false)
	if err != nil {
		t.Fatal(err)
	}
	if FormatRules(first.Rules) != FormatRules(second.Rules) || FormatFillable(first.Fillable) != FormatFillable(second.Fillable) {
		t.Error("repeated previews should derive identical fragments")
	}
	if FormatCasts(first.Casts) != FormatCasts(second.Casts) {
		t.Errorf("casts differ between previews:\n%s\n%s", FormatCasts(first.Casts), FormatCasts(second.Casts))
	}
	if len(first.Relationships) == 0 || FormatRelationships(first.Relationships) != FormatRelationships(second.Relationships) {
		t.Errorf("relationships differ between previews: %+v vs %+v", first.Relationships, second.Relationships)
	}
}

func TestLoadTablePropagatesIntrospectionError(t *testing.T) {
	si := newMemIntrospector(models.Table{Name: "roles"})
	si.err = errors.New("connection refused")

	if _, err := LoadTable(context.Background(), si, "roles"); err == nil || errors.Is(err, ErrTableNotFound) {
		t.Errorf("expected wrapped connection error, got %v", err)
	}
}
