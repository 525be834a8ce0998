package services

import (
	"context"
	"fmt"
	"strings"

	"admin_backend/internal/models"
	"admin_backend/internal/repositories"
)

type RoleStore interface {
	List(ctx context.Context, params repositories.ListParams) ([]models.Role, int64, error)
	GetByID(ctx context.Context, id int64) (*models.Role, error)
	Create(ctx context.Context, role *models.Role, permissionIDs []int64) error
	Update(ctx context.Context, role *models.Role, permissionIDs []int64) error
	Delete(ctx context.Context, id int64) error
	Permissions(ctx context.Context, roleID int64) ([]models.Permission, error)
}

// RoleAttributes is the "data" object of role create and update requests.
// Fields left out keep their current value on update.
type RoleAttributes struct {
	Name        *string `json:"name"`
	GuardName   *string `json:"guard_name"`
	Permissions []int64 `json:"permissions"`
}

type RoleRequest struct {
	Data *RoleAttributes `json:"data"`
}

func (a *RoleAttributes) empty() bool {
	return a == nil || (a.Name == nil && a.GuardName == nil && a.Permissions == nil)
}

type RoleService struct {
	roleRepo RoleStore
}

func NewRoleService(roleRepo RoleStore) *RoleService {
	return &RoleService{roleRepo: roleRepo}
}

func (s *RoleService) List(ctx context.Context, params repositories.ListParams) (models.Page[models.Role], error) {
	roles, total, err := s.roleRepo.List(ctx, params)
	if err != nil {
		return models.Page[models.Role]{}, err
	}
	return newPage(roles, params, total), nil
}

func (s *RoleService) Get(ctx context.Context, id int64) (*models.Role, error) {
	return s.roleRepo.GetByID(ctx, id)
}

// Create stores a role and assigns the listed permissions that exist.
func (s *RoleService) Create(ctx context.Context, attrs *RoleAttributes) (*models.Role, error) {
	if attrs.empty() {
		return nil, ErrEmptyPayload
	}
	if attrs.Name == nil || strings.TrimSpace(*attrs.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	role := &models.Role{Name: *attrs.Name}
	if attrs.GuardName != nil {
		role.GuardName = *attrs.GuardName
	}

	if err := s.roleRepo.Create(ctx, role, attrs.Permissions); err != nil {
		return nil, fmt.Errorf("failed to create role: %w", err)
	}
	return s.roleRepo.GetByID(ctx, role.ID)
}

// Update applies the given fields and replaces the role's permissions with
// attrs.Permissions. A missing or empty list removes every permission.
func (s *RoleService) Update(ctx context.Context, id int64, attrs *RoleAttributes) (*models.Role, error) {
	role, err := s.roleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if attrs == nil {
		attrs = &RoleAttributes{}
	}

	if attrs.Name != nil {
		role.Name = *attrs.Name
	}
	if attrs.GuardName != nil {
		role.GuardName = *attrs.GuardName
	}

	if err := s.roleRepo.Update(ctx, role, attrs.Permissions); err != nil {
		return nil, fmt.Errorf("failed to update role: %w", err)
	}
	return s.roleRepo.GetByID(ctx, id)
}

func (s *RoleService) Delete(ctx context.Context, id int64) error {
	return s.roleRepo.Delete(ctx, id)
}

func (s *RoleService) Permissions(ctx context.Context, id int64) ([]models.Permission, error) {
	return s.roleRepo.Permissions(ctx, id)
}

func newPage[T any](data []T, params repositories.ListParams, total int64) models.Page[T] {
	params = params.Normalized()
	return models.NewPage(data, params.Page, params.PerPage, total)
}
