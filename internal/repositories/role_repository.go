package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"admin_backend/internal/models"
)

var roleListQuery = listQuery{
	table:          "roles",
	columns:        "id, name, guard_name, created_at, updated_at",
	allowedFilters: []string{"name", "guard_name"},
	allowedSorts:   []string{"name", "guard_name", "created_at", "updated_at"},
	defaultSort:    "id",
}

type RoleRepository struct {
	pool *pgxpool.Pool
}

func NewRoleRepository(pool *pgxpool.Pool) *RoleRepository {
	return &RoleRepository{pool: pool}
}

// List returns one page of roles with their permissions loaded.
func (r *RoleRepository) List(ctx context.Context, params ListParams) ([]models.Role, int64, error) {
	countSQL, pageSQL, args, err := roleListQuery.build(params)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.pool.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count roles: %w", err)
	}

	rows, err := r.pool.Query(ctx, pageSQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list roles: %w", err)
	}
	defer rows.Close()

	var roles []models.Role
	for rows.Next() {
		var role models.Role
		if err := rows.Scan(&role.ID, &role.Name, &role.GuardName, &role.CreatedAt, &role.UpdatedAt); err != nil {
			return nil, 0, err
		}
		roles = append(roles, role)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	if err := r.loadPermissions(ctx, roles); err != nil {
		return nil, 0, err
	}
	return roles, total, nil
}

func (r *RoleRepository) loadPermissions(ctx context.Context, roles []models.Role) error {
	if len(roles) == 0 {
		return nil
	}

	ids := make([]int64, len(roles))
	byID := make(map[int64]int, len(roles))
	for i, role := range roles {
		ids[i] = role.ID
		byID[role.ID] = i
		roles[i].Permissions = []models.Permission{}
	}

	query := `
		SELECT rhp.role_id, p.id, p.name, p.subject, p.guard_name, p.created_at, p.updated_at
		FROM permissions p
		JOIN role_has_permissions rhp ON rhp.permission_id = p.id
		WHERE rhp.role_id = ANY($1)
		ORDER BY p.id
	`

	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		return fmt.Errorf("failed to load permissions: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var roleID int64
		var p models.Permission
		if err := rows.Scan(&roleID, &p.ID, &p.Name, &p.Subject, &p.GuardName, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return err
		}
		i := byID[roleID]
		roles[i].Permissions = append(roles[i].Permissions, p)
	}
	return rows.Err()
}

func (r *RoleRepository) GetByID(ctx context.Context, id int64) (*models.Role, error) {
	query := `SELECT id, name, guard_name, created_at, updated_at FROM roles WHERE id = $1`

	var role models.Role
	err := r.pool.QueryRow(ctx, query, id).Scan(&role.ID, &role.Name, &role.GuardName, &role.CreatedAt, &role.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	roles := []models.Role{role}
	if err := r.loadPermissions(ctx, roles); err != nil {
		return nil, err
	}
	return &roles[0], nil
}

// Create inserts role and assigns the permissions among permissionIDs that exist.
func (r *RoleRepository) Create(ctx context.Context, role *models.Role, permissionIDs []int64) error {
	role.Prepare()

	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		query := `
			INSERT INTO roles (name, guard_name, created_at, updated_at)
			VALUES ($1, $2, NOW(), NOW())
			RETURNING id, created_at, updated_at
		`
		if err := tx.QueryRow(ctx, query, role.Name, role.GuardName).Scan(&role.ID, &role.CreatedAt, &role.UpdatedAt); err != nil {
			return fmt.Errorf("failed to insert role: %w", err)
		}
		return syncRolePermissions(ctx, tx, role.ID, permissionIDs)
	})
}

// Update saves name and guard and replaces the role's permissions. An empty
// permissionIDs clears them.
func (r *RoleRepository) Update(ctx context.Context, role *models.Role, permissionIDs []int64) error {
	role.Prepare()

	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		query := `
			UPDATE roles SET name = $2, guard_name = $3, updated_at = NOW()
			WHERE id = $1
			RETURNING created_at, updated_at
		`
		err := tx.QueryRow(ctx, query, role.ID, role.Name, role.GuardName).Scan(&role.CreatedAt, &role.UpdatedAt)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to update role: %w", err)
		}
		return syncRolePermissions(ctx, tx, role.ID, permissionIDs)
	})
}

func syncRolePermissions(ctx context.Context, tx pgx.Tx, roleID int64, permissionIDs []int64) error {
	if _, err := tx.Exec(ctx, `DELETE FROM role_has_permissions WHERE role_id = $1`, roleID); err != nil {
		return fmt.Errorf("failed to clear permissions: %w", err)
	}
	if len(permissionIDs) == 0 {
		return nil
	}

	// unknown ids are dropped by the join against permissions
	query := `
		INSERT INTO role_has_permissions (permission_id, role_id)
		SELECT id, $1 FROM permissions WHERE id = ANY($2)
	`
	if _, err := tx.Exec(ctx, query, roleID, permissionIDs); err != nil {
		return fmt.Errorf("failed to assign permissions: %w", err)
	}
	return nil
}

func (r *RoleRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM roles WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *RoleRepository) Permissions(ctx context.Context, roleID int64) ([]models.Permission, error) {
	role, err := r.GetByID(ctx, roleID)
	if err != nil {
		return nil, err
	}
	return role.Permissions, nil
}
