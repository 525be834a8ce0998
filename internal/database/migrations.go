package database

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

func RunMigrations(pool *pgxpool.Pool) error {
	ctx := context.Background()

	migrations := []string{
		createRolesTable,
		createPermissionsTable,
		createRoleHasPermissionsTable,
		createMenuOpcionesTable,
		addSubjectToPermissions,
	}

	for i, migration := range migrations {
		log.Printf("Running migration %d/%d", i+1, len(migrations))
		if _, err := pool.Exec(ctx, migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}

	log.Println("All migrations completed successfully")
	return nil
}

const createRolesTable = `
CREATE TABLE IF NOT EXISTS roles (
  id BIGSERIAL PRIMARY KEY,
  name VARCHAR(255) NOT NULL,
  guard_name VARCHAR(255) NOT NULL,
  created_at TIMESTAMP NOT NULL DEFAULT NOW(),
  updated_at TIMESTAMP NOT NULL DEFAULT NOW(),
  CONSTRAINT roles_name_guard_name_unique UNIQUE (name, guard_name)
);
`

const createPermissionsTable = `
CREATE TABLE IF NOT EXISTS permissions (
  id BIGSERIAL PRIMARY KEY,
  name VARCHAR(255) NOT NULL,
  guard_name VARCHAR(255) NOT NULL,
  created_at TIMESTAMP NOT NULL DEFAULT NOW(),
  updated_at TIMESTAMP NOT NULL DEFAULT NOW(),
  CONSTRAINT permissions_name_guard_name_unique UNIQUE (name, guard_name)
);
`

const createRoleHasPermissionsTable = `
CREATE TABLE IF NOT EXISTS role_has_permissions (
  permission_id BIGINT NOT NULL REFERENCES permissions(id) ON DELETE CASCADE,
  role_id BIGINT NOT NULL REFERENCES roles(id) ON DELETE CASCADE,
  PRIMARY KEY (permission_id, role_id)
);

CREATE INDEX IF NOT EXISTS idx_role_has_permissions_role_id ON role_has_permissions(role_id);
`

const createMenuOpcionesTable = `
CREATE TABLE IF NOT EXISTS menu_opciones (
  id BIGSERIAL PRIMARY KEY,
  titulo VARCHAR(255) NOT NULL,
  titulo_seccion VARCHAR(255) NULL,
  icono VARCHAR(255) NULL,
  ruta VARCHAR(255) NULL,
  orden INTEGER NOT NULL DEFAULT 0,
  action VARCHAR(255) NULL,
  subject VARCHAR(255) NULL,
  option_id BIGINT NULL REFERENCES menu_opciones(id) ON DELETE SET NULL,
  created_at TIMESTAMP NOT NULL DEFAULT NOW(),
  updated_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_menu_opciones_option_id ON menu_opciones(option_id);
`

const addSubjectToPermissions = `
-- subject groups permissions by the resource they guard
DO $$
BEGIN
  IF NOT EXISTS (
    SELECT 1 FROM information_schema.columns
    WHERE table_name = 'permissions' AND column_name = 'subject'
  ) THEN
    ALTER TABLE permissions ADD COLUMN subject VARCHAR(255) NULL;
  END IF;
END$$;
`
