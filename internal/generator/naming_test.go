package generator

import "testing"

func TestNewNames(t *testing.T) {
	tests := []struct {
		table, model string
		want         Names
	}{
		{
			table: "menu_opciones",
			model: "menu_opcion",
			want: Names{
				Table:         "menu_opciones",
				TableTitle:    "Menu_opciones",
				Model:         "MenuOpcion",
				Variable:      "menuopcion",
				Resource:      "menu-opcions",
				Controller:    "MenuOpcionApiController",
				CreateRequest: "CreateMenuOpcionApiRequest",
				UpdateRequest: "UpdateMenuOpcionApiRequest",
				Seeder:        "menu_opcionesTableSeeder",
			},
		},
		{
			table: "categories",
			model: "Category",
			want: Names{
				Table:         "categories",
				TableTitle:    "Categories",
				Model:         "Category",
				Variable:      "category",
				Resource:      "categories",
				Controller:    "CategoryApiController",
				CreateRequest: "CreateCategoryApiRequest",
				UpdateRequest: "UpdateCategoryApiRequest",
				Seeder:        "categoriesTableSeeder",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.table, func(t *testing.T) {
			if got := NewNames(tt.table, tt.model); got != tt.want {
				t.Errorf("NewNames() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestInflections(t *testing.T) {
	if got := Singular("permissions"); got != "permission" {
		t.Errorf("Singular(permissions) = %s", got)
	}
	if got := Camel(Plural("role_users")); got != "roleUsers" {
		t.Errorf("Camel(Plural(role_users)) = %s", got)
	}
	if got := Studly(Singular("user_roles")); got != "UserRole" {
		t.Errorf("Studly(Singular(user_roles)) = %s", got)
	}
}
