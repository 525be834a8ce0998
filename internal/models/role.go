package models

import (
	"strings"
	"time"
)

const DefaultGuardName = "web"

// Role matches the roles table created in migrations.go.
// Columns: id, name (NOT NULL, UNIQUE with guard_name), guard_name, created_at, updated_at
type Role struct {
	ID          int64        `json:"id"`
	Name        string       `json:"name"`
	GuardName   string       `json:"guard_name"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
	Permissions []Permission `json:"permissions,omitempty"`
}

func (r *Role) Prepare() {
	r.Name = strings.TrimSpace(r.Name)
	if r.GuardName == "" {
		r.GuardName = DefaultGuardName
	}
}
