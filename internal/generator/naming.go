package generator

import (
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/jinzhu/inflection"
)

// Studly turns "menu_opciones" or "menu-opciones" into "MenuOpciones".
func Studly(s string) string {
	return strcase.ToCamel(s)
}

// Camel turns "menu_opciones" into "menuOpciones".
func Camel(s string) string {
	return strcase.ToLowerCamel(s)
}

// Kebab turns "MenuOpcions" into "menu-opcions".
func Kebab(s string) string {
	return strcase.ToKebab(s)
}

func Singular(s string) string {
	return inflection.Singular(s)
}

func Plural(s string) string {
	return inflection.Plural(s)
}

// PluralStudly pluralizes the last word of a studly name: "MenuOpcion" -> "MenuOpcions".
func PluralStudly(s string) string {
	return Plural(Studly(s))
}

func ucfirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
