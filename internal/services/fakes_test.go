package services

import (
	"context"

	"admin_backend/internal/models"
	"admin_backend/internal/repositories"
)

type fakeRoleStore struct {
	roles       map[int64]*models.Role
	permissions map[int64]models.Permission
	nextID      int64
	lastParams  repositories.ListParams
}

func newFakeRoleStore(perms ...models.Permission) *fakeRoleStore {
	s := &fakeRoleStore{roles: map[int64]*models.Role{}, permissions: map[int64]models.Permission{}}
	for _, p := range perms {
		s.permissions[p.ID] = p
	}
	return s
}

func (s *fakeRoleStore) List(_ context.Context, params repositories.ListParams) ([]models.Role, int64, error) {
	s.lastParams = params
	out := make([]models.Role, 0, len(s.roles))
	for id := int64(1); id <= s.nextID; id++ {
		if r, ok := s.roles[id]; ok {
			out = append(out, *r)
		}
	}
	return out, int64(len(out)), nil
}

func (s *fakeRoleStore) GetByID(_ context.Context, id int64) (*models.Role, error) {
	r, ok := s.roles[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	cp := *r
	return &cp, nil
}

func (s *fakeRoleStore) sync(role *models.Role, ids []int64) {
	role.Permissions = nil
	for _, id := range ids {
		if p, ok := s.permissions[id]; ok {
			role.Permissions = append(role.Permissions, p)
		}
	}
}

func (s *fakeRoleStore) Create(_ context.Context, role *models.Role, ids []int64) error {
	role.Prepare()
	s.nextID++
	role.ID = s.nextID
	s.sync(role, ids)
	cp := *role
	s.roles[role.ID] = &cp
	return nil
}

func (s *fakeRoleStore) Update(_ context.Context, role *models.Role, ids []int64) error {
	if _, ok := s.roles[role.ID]; !ok {
		return repositories.ErrNotFound
	}
	role.Prepare()
	s.sync(role, ids)
	cp := *role
	s.roles[role.ID] = &cp
	return nil
}

func (s *fakeRoleStore) Delete(_ context.Context, id int64) error {
	if _, ok := s.roles[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(s.roles, id)
	return nil
}

func (s *fakeRoleStore) Permissions(ctx context.Context, id int64) ([]models.Permission, error) {
	r, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return r.Permissions, nil
}

type permissionUpdate struct {
	roleIDs   []int64
	syncRoles bool
}

type fakePermissionStore struct {
	permissions map[int64]*models.Permission
	grants      map[int64][]int64
	updates     []permissionUpdate
	nextID      int64
}

func newFakePermissionStore() *fakePermissionStore {
	return &fakePermissionStore{permissions: map[int64]*models.Permission{}, grants: map[int64][]int64{}}
}

func (s *fakePermissionStore) List(_ context.Context, _ repositories.ListParams) ([]models.Permission, int64, error) {
	out := make([]models.Permission, 0, len(s.permissions))
	for id := int64(1); id <= s.nextID; id++ {
		if p, ok := s.permissions[id]; ok {
			out = append(out, *p)
		}
	}
	return out, int64(len(out)), nil
}

func (s *fakePermissionStore) GetByID(_ context.Context, id int64) (*models.Permission, error) {
	p, ok := s.permissions[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (s *fakePermissionStore) Create(_ context.Context, p *models.Permission, roleIDs []int64) error {
	p.Prepare()
	s.nextID++
	p.ID = s.nextID
	cp := *p
	s.permissions[p.ID] = &cp
	s.grants[p.ID] = roleIDs
	return nil
}

func (s *fakePermissionStore) Update(_ context.Context, p *models.Permission, roleIDs []int64, syncRoles bool) error {
	if _, ok := s.permissions[p.ID]; !ok {
		return repositories.ErrNotFound
	}
	p.Prepare()
	cp := *p
	s.permissions[p.ID] = &cp
	s.updates = append(s.updates, permissionUpdate{roleIDs: roleIDs, syncRoles: syncRoles})
	if syncRoles {
		s.grants[p.ID] = roleIDs
	}
	return nil
}

func (s *fakePermissionStore) Delete(_ context.Context, id int64) error {
	if _, ok := s.permissions[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(s.permissions, id)
	return nil
}

func (s *fakePermissionStore) Roles(_ context.Context, id int64) ([]models.Role, error) {
	if _, ok := s.permissions[id]; !ok {
		return nil, repositories.ErrNotFound
	}
	var roles []models.Role
	for _, rid := range s.grants[id] {
		roles = append(roles, models.Role{ID: rid})
	}
	return roles, nil
}

type fakeMenuStore struct {
	items     map[int64]*models.MenuOpcion
	nextID    int64
	reordered []repositories.OrderItem
}

func newFakeMenuStore() *fakeMenuStore {
	return &fakeMenuStore{items: map[int64]*models.MenuOpcion{}}
}

func (s *fakeMenuStore) List(_ context.Context, _ repositories.ListParams) ([]models.MenuOpcion, int64, error) {
	out := make([]models.MenuOpcion, 0, len(s.items))
	for _, m := range s.items {
		out = append(out, *m)
	}
	return out, int64(len(out)), nil
}

func (s *fakeMenuStore) GetByID(_ context.Context, id int64) (*models.MenuOpcion, error) {
	m, ok := s.items[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	cp := *m
	return &cp, nil
}

func (s *fakeMenuStore) Create(_ context.Context, m *models.MenuOpcion) error {
	s.nextID++
	m.ID = s.nextID
	cp := *m
	s.items[m.ID] = &cp
	return nil
}

func (s *fakeMenuStore) Update(_ context.Context, m *models.MenuOpcion) error {
	if _, ok := s.items[m.ID]; !ok {
		return repositories.ErrNotFound
	}
	cp := *m
	s.items[m.ID] = &cp
	return nil
}

func (s *fakeMenuStore) Delete(_ context.Context, id int64) error {
	if _, ok := s.items[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(s.items, id)
	return nil
}

func (s *fakeMenuStore) Reorder(_ context.Context, items []repositories.OrderItem) error {
	for _, it := range items {
		if _, ok := s.items[it.ID]; !ok {
			return repositories.ErrNotFound
		}
	}
	for _, it := range items {
		s.items[it.ID].Orden = it.Orden
	}
	s.reordered = items
	return nil
}

type fakeIntrospector struct {
	tables map[string]models.Table
}

func (f fakeIntrospector) TableExists(_ context.Context, table string) (bool, error) {
	_, ok := f.tables[table]
	return ok, nil
}

func (f fakeIntrospector) ListColumns(_ context.Context, table string) ([]string, error) {
	return f.tables[table].ColumnNames(), nil
}

func (f fakeIntrospector) DescribeColumns(_ context.Context, table string) ([]models.Column, error) {
	return f.tables[table].Columns, nil
}

func (f fakeIntrospector) ListIndexes(_ context.Context, table string) ([]models.Index, error) {
	return f.tables[table].Indexes, nil
}

func (f fakeIntrospector) ListForeignKeys(_ context.Context, table string) ([]models.ForeignKey, error) {
	return f.tables[table].ForeignKeys, nil
}

func (f fakeIntrospector) ColumnCount(_ context.Context, table string) (int, error) {
	return len(f.tables[table].Columns), nil
}

func strPtr(s string) *string { return &s }
