package models

import (
	"strings"
	"time"
)

// Permission matches the permissions table. Subject groups permissions for the
// admin UI ("roles", "menu-opcions", ...).
type Permission struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Subject   *string   `json:"subject"`
	GuardName string    `json:"guard_name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Permission) Prepare() {
	p.Name = strings.TrimSpace(p.Name)
	if p.GuardName == "" {
		p.GuardName = DefaultGuardName
	}
}
