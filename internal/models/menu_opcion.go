package models

import "time"

// MenuOpcion is one entry of the admin navigation menu (menu_opciones table).
// OptionID points at the parent entry when the option is nested.
type MenuOpcion struct {
	ID            int64     `json:"id"`
	Titulo        string    `json:"titulo"`
	TituloSeccion *string   `json:"titulo_seccion"`
	Icono         *string   `json:"icono"`
	Ruta          *string   `json:"ruta"`
	Orden         int       `json:"orden"`
	Action        *string   `json:"action"`
	Subject       *string   `json:"subject"`
	OptionID      *int64    `json:"option_id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
