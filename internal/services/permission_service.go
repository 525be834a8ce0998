package services

import (
	"context"
	"fmt"
	"strings"

	"admin_backend/internal/models"
	"admin_backend/internal/repositories"
)

type PermissionStore interface {
	List(ctx context.Context, params repositories.ListParams) ([]models.Permission, int64, error)
	GetByID(ctx context.Context, id int64) (*models.Permission, error)
	Create(ctx context.Context, p *models.Permission, roleIDs []int64) error
	Update(ctx context.Context, p *models.Permission, roleIDs []int64, syncRoles bool) error
	Delete(ctx context.Context, id int64) error
	Roles(ctx context.Context, permissionID int64) ([]models.Role, error)
}

type RoleRef struct {
	ID int64 `json:"id"`
}

type PermissionAttributes struct {
	Name      *string   `json:"name"`
	Subject   *string   `json:"subject"`
	GuardName *string   `json:"guard_name"`
	Roles     []RoleRef `json:"roles"`
}

type PermissionRequest struct {
	Data *PermissionAttributes `json:"data"`
}

func (a *PermissionAttributes) roleIDs() []int64 {
	ids := make([]int64, 0, len(a.Roles))
	for _, r := range a.Roles {
		ids = append(ids, r.ID)
	}
	return ids
}

type PermissionService struct {
	permissionRepo PermissionStore
}

func NewPermissionService(permissionRepo PermissionStore) *PermissionService {
	return &PermissionService{permissionRepo: permissionRepo}
}

func (s *PermissionService) List(ctx context.Context, params repositories.ListParams) (models.Page[models.Permission], error) {
	permissions, total, err := s.permissionRepo.List(ctx, params)
	if err != nil {
		return models.Page[models.Permission]{}, err
	}
	return newPage(permissions, params, total), nil
}

func (s *PermissionService) Get(ctx context.Context, id int64) (*models.Permission, error) {
	return s.permissionRepo.GetByID(ctx, id)
}

// Create stores a permission and grants it to the referenced roles.
func (s *PermissionService) Create(ctx context.Context, attrs *PermissionAttributes) (*models.Permission, error) {
	if attrs == nil {
		return nil, ErrEmptyPayload
	}
	if attrs.Name == nil || strings.TrimSpace(*attrs.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	p := &models.Permission{Name: *attrs.Name, Subject: attrs.Subject}
	if attrs.GuardName != nil {
		p.GuardName = *attrs.GuardName
	}

	if err := s.permissionRepo.Create(ctx, p, attrs.roleIDs()); err != nil {
		return nil, fmt.Errorf("failed to create permission: %w", err)
	}
	return p, nil
}

// Update applies the given fields. Roles are synchronised only when the
// request lists at least one; an empty or missing list leaves grants untouched.
func (s *PermissionService) Update(ctx context.Context, id int64, attrs *PermissionAttributes) (*models.Permission, error) {
	p, err := s.permissionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if attrs == nil {
		attrs = &PermissionAttributes{}
	}

	if attrs.Name != nil {
		p.Name = *attrs.Name
	}
	if attrs.Subject != nil {
		p.Subject = attrs.Subject
	}
	if attrs.GuardName != nil {
		p.GuardName = *attrs.GuardName
	}

	if err := s.permissionRepo.Update(ctx, p, attrs.roleIDs(), len(attrs.Roles) > 0); err != nil {
		return nil, fmt.Errorf("failed to update permission: %w", err)
	}
	return p, nil
}

func (s *PermissionService) Delete(ctx context.Context, id int64) error {
	return s.permissionRepo.Delete(ctx, id)
}

func (s *PermissionService) Roles(ctx context.Context, id int64) ([]models.Role, error) {
	return s.permissionRepo.Roles(ctx, id)
}
