package generator

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"regexp"
	"sort"
	"strings"
)

//go:embed stubs/api/*.stub
var embeddedStubs embed.FS

const (
	StubModel         = "model"
	StubController    = "controller"
	StubRequestCreate = "request-create"
	StubRequestUpdate = "request-update"
	StubSeeder        = "seeder"
)

var placeholderPattern = regexp.MustCompile(`\{\{\s*([A-Za-z_][A-Za-z0-9_]*)\s*\}\}`)

type StubLoader interface {
	Load(name string) (string, error)
}

// FSStubLoader reads "<dir>/<name>.stub" from a file system.
type FSStubLoader struct {
	FS  fs.FS
	Dir string
}

func (l FSStubLoader) Load(name string) (string, error) {
	p := path.Join(l.Dir, name+".stub")
	data, err := fs.ReadFile(l.FS, p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrTemplateMissing, p)
		}
		return "", fmt.Errorf("failed to read template %s: %w", p, err)
	}
	return string(data), nil
}

// DefaultStubs returns the stubs compiled into the binary.
func DefaultStubs() StubLoader {
	return FSStubLoader{FS: embeddedStubs, Dir: "stubs/api"}
}

// DirStubs returns a loader over a project's own stub directory.
func DirStubs(dir string) StubLoader {
	return FSStubLoader{FS: os.DirFS(dir), Dir: "."}
}

// TemplateParams are the values substituted into the stubs.
type TemplateParams struct {
	ModelNamespace      string
	ControllerNamespace string
	RequestNamespace    string
	Controller          string
	Model               string
	Variable            string
	VariablePlural      string
	TableName           string
	TableNameTitle      string
	CreateRequest       string
	UpdateRequest       string
	Fillable            string
	ValidationRules     string
	Casts               string
	Relationships       string
	UseSoftDeletes      string
	SoftDeletesTrait    string
}

func NewTemplateParams(gc GenerationContext, f Fragments) TemplateParams {
	p := TemplateParams{
		ModelNamespace:      ModelNamespace,
		ControllerNamespace: ControllerNamespace,
		RequestNamespace:    RequestNamespace,
		Controller:          gc.Names.Controller,
		Model:               gc.Names.Model,
		Variable:            gc.Names.Variable,
		VariablePlural:      gc.Names.Resource,
		TableName:           gc.Names.Table,
		TableNameTitle:      gc.Names.TableTitle,
		CreateRequest:       gc.Names.CreateRequest,
		UpdateRequest:       gc.Names.UpdateRequest,
		Fillable:            FormatFillable(f.Fillable),
		ValidationRules:     FormatRules(f.Rules),
		Casts:               FormatCasts(f.Casts),
		Relationships:       FormatRelationships(f.Relationships),
	}
	if gc.SoftDeletes {
		p.UseSoftDeletes = `use Illuminate\Database\Eloquent\SoftDeletes;`
		p.SoftDeletesTrait = "use SoftDeletes;"
	}
	return p
}

func (p TemplateParams) placeholders() map[string]string {
	return map[string]string{
		"modelNamespace":      p.ModelNamespace,
		"controllerNamespace": p.ControllerNamespace,
		"requestNamespace":    p.RequestNamespace,
		"controller":          p.Controller,
		"controlador":         p.Controller,
		"model":               p.Model,
		"variable":            p.Variable,
		"variable_plural":     p.VariablePlural,
		"tableName":           p.TableName,
		"tableNameM":          p.TableNameTitle,
		"createRequest":       p.CreateRequest,
		"updateRequest":       p.UpdateRequest,
		"fillable":            p.Fillable,
		"validationRules":     p.ValidationRules,
		"casts":               p.Casts,
		"relationships":       p.Relationships,
		"useSoftDeletes":      p.UseSoftDeletes,
		"softDeletesTrait":    p.SoftDeletesTrait,
	}
}

// Render substitutes every {{ name }} token in one pass. Substituted values are
// never scanned again. A token with no matching parameter fails the render.
func Render(tmpl string, params TemplateParams) (string, error) {
	values := params.placeholders()
	unknown := map[string]bool{}

	out := placeholderPattern.ReplaceAllStringFunc(tmpl, func(token string) string {
		name := placeholderPattern.FindStringSubmatch(token)[1]
		v, ok := values[name]
		if !ok {
			unknown[name] = true
			return token
		}
		return v
	})

	if len(unknown) > 0 {
		names := make([]string, 0, len(unknown))
		for n := range unknown {
			names = append(names, n)
		}
		sort.Strings(names)
		return "", fmt.Errorf("%w: %s", ErrUnmatchedPlaceholder, strings.Join(names, ", "))
	}
	return out, nil
}
