package generator

import (
	"strings"

	"admin_backend/internal/models"
)

const (
	ModelNamespace      = `App\Models`
	ControllerNamespace = `App\Http\Controllers\Api`
	RequestNamespace    = `App\Http\Requests\Api`
)

// Names holds every identifier derived from the table and model names.
type Names struct {
	Table         string `json:"table" yaml:"table"`
	TableTitle    string `json:"table_title" yaml:"table_title"`
	Model         string `json:"model" yaml:"model"`
	Variable      string `json:"variable" yaml:"variable"`
	Resource      string `json:"resource" yaml:"resource"`
	Controller    string `json:"controller" yaml:"controller"`
	CreateRequest string `json:"create_request" yaml:"create_request"`
	UpdateRequest string `json:"update_request" yaml:"update_request"`
	Seeder        string `json:"seeder" yaml:"seeder"`
}

func NewNames(table, model string) Names {
	studly := Studly(model)
	return Names{
		Table:         table,
		TableTitle:    ucfirst(table),
		Model:         studly,
		Variable:      strings.ToLower(studly),
		Resource:      Kebab(PluralStudly(studly)),
		Controller:    studly + "ApiController",
		CreateRequest: "Create" + studly + "ApiRequest",
		UpdateRequest: "Update" + studly + "ApiRequest",
		Seeder:        table + "TableSeeder",
	}
}

// GenerationContext is the immutable input of one generation run. Every
// deriver reads from it and none of them writes back.
type GenerationContext struct {
	Table       models.Table
	Names       Names
	SoftDeletes bool
}

func NewGenerationContext(table models.Table, model string, softDeletes bool) GenerationContext {
	return GenerationContext{
		Table:       table,
		Names:       NewNames(table.Name, model),
		SoftDeletes: softDeletes,
	}
}
