package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"admin_backend/internal/models"
)

var permissionListQuery = listQuery{
	table:          "permissions",
	columns:        "id, name, subject, guard_name, created_at, updated_at",
	allowedFilters: []string{"name", "subject", "guard_name"},
	allowedSorts:   []string{"name", "subject", "guard_name"},
	defaultSort:    "id",
}

type PermissionRepository struct {
	pool *pgxpool.Pool
}

func NewPermissionRepository(pool *pgxpool.Pool) *PermissionRepository {
	return &PermissionRepository{pool: pool}
}

func scanPermission(row pgx.Row, p *models.Permission) error {
	return row.Scan(&p.ID, &p.Name, &p.Subject, &p.GuardName, &p.CreatedAt, &p.UpdatedAt)
}

func (r *PermissionRepository) List(ctx context.Context, params ListParams) ([]models.Permission, int64, error) {
	countSQL, pageSQL, args, err := permissionListQuery.build(params)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.pool.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count permissions: %w", err)
	}

	rows, err := r.pool.Query(ctx, pageSQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list permissions: %w", err)
	}
	defer rows.Close()

	var permissions []models.Permission
	for rows.Next() {
		var p models.Permission
		if err := scanPermission(rows, &p); err != nil {
			return nil, 0, err
		}
		permissions = append(permissions, p)
	}
	return permissions, total, rows.Err()
}

func (r *PermissionRepository) GetByID(ctx context.Context, id int64) (*models.Permission, error) {
	query := `SELECT id, name, subject, guard_name, created_at, updated_at FROM permissions WHERE id = $1`

	var p models.Permission
	if err := scanPermission(r.pool.QueryRow(ctx, query, id), &p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// Create inserts p and grants it to the roles among roleIDs that exist.
func (r *PermissionRepository) Create(ctx context.Context, p *models.Permission, roleIDs []int64) error {
	p.Prepare()

	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		query := `
			INSERT INTO permissions (name, subject, guard_name, created_at, updated_at)
			VALUES ($1, $2, $3, NOW(), NOW())
			RETURNING id, created_at, updated_at
		`
		if err := tx.QueryRow(ctx, query, p.Name, p.Subject, p.GuardName).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return fmt.Errorf("failed to insert permission: %w", err)
		}
		return grantToRoles(ctx, tx, p.ID, roleIDs)
	})
}

// Update saves p. When syncRoles is set the permission ends up granted to
// exactly the existing roles in roleIDs.
func (r *PermissionRepository) Update(ctx context.Context, p *models.Permission, roleIDs []int64, syncRoles bool) error {
	p.Prepare()

	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		query := `
			UPDATE permissions SET name = $2, subject = $3, guard_name = $4, updated_at = NOW()
			WHERE id = $1
			RETURNING created_at, updated_at
		`
		err := tx.QueryRow(ctx, query, p.ID, p.Name, p.Subject, p.GuardName).Scan(&p.CreatedAt, &p.UpdatedAt)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to update permission: %w", err)
		}
		if !syncRoles {
			return nil
		}

		current, err := roleIDsOf(ctx, tx, p.ID)
		if err != nil {
			return err
		}
		grant, revoke := DiffIDs(roleIDs, current)

		if len(revoke) > 0 {
			_, err := tx.Exec(ctx, `DELETE FROM role_has_permissions WHERE permission_id = $1 AND role_id = ANY($2)`, p.ID, revoke)
			if err != nil {
				return fmt.Errorf("failed to revoke permission: %w", err)
			}
		}
		return grantToRoles(ctx, tx, p.ID, grant)
	})
}

func grantToRoles(ctx context.Context, tx pgx.Tx, permissionID int64, roleIDs []int64) error {
	if len(roleIDs) == 0 {
		return nil
	}
	query := `
		INSERT INTO role_has_permissions (permission_id, role_id)
		SELECT $1, id FROM roles WHERE id = ANY($2)
		ON CONFLICT DO NOTHING
	`
	if _, err := tx.Exec(ctx, query, permissionID, roleIDs); err != nil {
		return fmt.Errorf("failed to grant permission: %w", err)
	}
	return nil
}

func roleIDsOf(ctx context.Context, tx pgx.Tx, permissionID int64) ([]int64, error) {
	rows, err := tx.Query(ctx, `SELECT role_id FROM role_has_permissions WHERE permission_id = $1`, permissionID)
	if err != nil {
		return nil, fmt.Errorf("failed to read granted roles: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// DiffIDs returns the ids of selected missing from current, and the ids of
// current missing from selected.
func DiffIDs(selected, current []int64) (grant, revoke []int64) {
	inSelected := make(map[int64]bool, len(selected))
	for _, id := range selected {
		inSelected[id] = true
	}
	inCurrent := make(map[int64]bool, len(current))
	for _, id := range current {
		inCurrent[id] = true
	}

	for _, id := range selected {
		if !inCurrent[id] {
			grant = append(grant, id)
			inCurrent[id] = true
		}
	}
	for _, id := range current {
		if !inSelected[id] {
			revoke = append(revoke, id)
		}
	}
	return grant, revoke
}

func (r *PermissionRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM permissions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PermissionRepository) Roles(ctx context.Context, permissionID int64) ([]models.Role, error) {
	if _, err := r.GetByID(ctx, permissionID); err != nil {
		return nil, err
	}

	query := `
		SELECT r.id, r.name, r.guard_name, r.created_at, r.updated_at
		FROM roles r
		JOIN role_has_permissions rhp ON rhp.role_id = r.id
		WHERE rhp.permission_id = $1
		ORDER BY r.id
	`
	rows, err := r.pool.Query(ctx, query, permissionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}
	defer rows.Close()

	roles := []models.Role{}
	for rows.Next() {
		var role models.Role
		if err := rows.Scan(&role.ID, &role.Name, &role.GuardName, &role.CreatedAt, &role.UpdatedAt); err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	return roles, rows.Err()
}
