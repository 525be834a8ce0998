package generator

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"
)

func TestRenderSubstitutesPlaceholders(t *testing.T) {
	params := TemplateParams{Model: "Role", TableName: "roles"}
	got, err := Render("class {{ model }} { protected $table = '{{tableName}}'; }", params)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	want := "class Role { protected $table = 'roles'; }"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRenderDoesNotRescanValues(t *testing.T) {
	params := TemplateParams{Model: "{{ tableName }}", TableName: "roles"}
	got, err := Render("{{ model }}", params)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if got != "{{ tableName }}" {
		t.Errorf("substituted value was rendered again: %q", got)
	}
}

func TestRenderRejectsUnknownPlaceholder(t *testing.T) {
	_, err := Render("{{ model }} {{ routeName }} {{ apiVersion }}", TemplateParams{Model: "Role"})
	if !errors.Is(err, ErrUnmatchedPlaceholder) {
		t.Fatalf("expected ErrUnmatchedPlaceholder, got %v", err)
	}
	if !strings.Contains(err.Error(), "apiVersion, routeName") {
		t.Errorf("error should name the placeholders: %v", err)
	}
}

func TestSoftDeleteSnippets(t *testing.T) {
	gc := NewGenerationContext(rolesTable(), "Role", true)
	p := NewTemplateParams(gc, Derive(gc))
	if p.UseSoftDeletes != `use Illuminate\Database\Eloquent\SoftDeletes;` || p.SoftDeletesTrait != "use SoftDeletes;" {
		t.Errorf("unexpected soft delete snippets: %q %q", p.UseSoftDeletes, p.SoftDeletesTrait)
	}

	gc = NewGenerationContext(rolesTable(), "Role", false)
	p = NewTemplateParams(gc, Derive(gc))
	if p.UseSoftDeletes != "" || p.SoftDeletesTrait != "" {
		t.Errorf("soft delete snippets should be empty: %q %q", p.UseSoftDeletes, p.SoftDeletesTrait)
	}
}

func TestDefaultStubsRender(t *testing.T) {
	gc := NewGenerationContext(rolesTable(), "Role", false)
	params := NewTemplateParams(gc, Derive(gc))

	for _, name := range []string{StubModel, StubController, StubRequestCreate, StubRequestUpdate, StubSeeder} {
		tmpl, err := DefaultStubs().Load(name)
		if err != nil {
			t.Fatalf("Load(%s) error = %v", name, err)
		}
		if _, err := Render(tmpl, params); err != nil {
			t.Errorf("Render(%s) error = %v", name, err)
		}
	}
}

func TestFSStubLoaderMissingTemplate(t *testing.T) {
	loader := FSStubLoader{FS: fstest.MapFS{"stubs/model.stub": {Data: []byte("x")}}, Dir: "stubs"}

	if _, err := loader.Load(StubModel); err != nil {
		t.Fatalf("Load(model) error = %v", err)
	}
	if _, err := loader.Load(StubSeeder); !errors.Is(err, ErrTemplateMissing) {
		t.Errorf("expected ErrTemplateMissing, got %v", err)
	}
}
