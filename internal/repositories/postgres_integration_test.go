package repositories

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"admin_backend/internal/database"
	"admin_backend/internal/models"
)

func startPostgres(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping postgres integration test in short mode")
	}

	ctx := context.Background()
	ctr, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("admin"),
		postgres.WithUsername("admin"),
		postgres.WithPassword("secret"),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		t.Fatalf("failed to start postgres: %v", err)
	}
	t.Cleanup(func() { _ = ctr.Terminate(context.Background()) })

	dsn, err := ctr.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatal(err)
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(pool.Close)

	if err := database.RunMigrations(pool); err != nil {
		t.Fatalf("migrations failed: %v", err)
	}
	return pool
}

func TestPostgresIntegration(t *testing.T) {
	pool := startPostgres(t)
	ctx := context.Background()

	t.Run("introspection", func(t *testing.T) {
		repo := NewPostgresSchemaRepository(pool, "", false)

		ok, err := repo.TableExists(ctx, "roles")
		if err != nil || !ok {
			t.Fatalf("roles: exists=%v err=%v", ok, err)
		}

		columns, err := repo.DescribeColumns(ctx, "roles")
		if err != nil {
			t.Fatal(err)
		}
		if columns[0].TypeName != "bigint" || columns[1].TypeName != "varchar" || columns[1].RawType != "character varying(255)" {
			t.Errorf("unexpected columns: %+v", columns[:2])
		}
		if columns[3].TypeName != "timestamp" {
			t.Errorf("created_at type = %s", columns[3].TypeName)
		}

		indexes, err := repo.ListIndexes(ctx, "roles")
		if err != nil {
			t.Fatal(err)
		}
		if len(indexes) != 2 || !reflect.DeepEqual(indexes[1].Columns, []string{"name", "guard_name"}) || !indexes[1].Unique {
			t.Errorf("unexpected indexes: %+v", indexes)
		}

		fks, err := repo.ListForeignKeys(ctx, "menu_opciones")
		if err != nil {
			t.Fatal(err)
		}
		if len(fks) != 1 || fks[0].LocalColumn() != "option_id" || fks[0].ReferencedTable != "menu_opciones" || fks[0].ReferencedColumn() != "id" {
			t.Errorf("unexpected foreign keys: %+v", fks)
		}

		count, err := repo.ColumnCount(ctx, "role_has_permissions")
		if err != nil || count != 2 {
			t.Errorf("ColumnCount() = %d, %v", count, err)
		}
	})

	roles := NewRoleRepository(pool)
	permissions := NewPermissionRepository(pool)

	p1 := &models.Permission{Name: "ver roles"}
	p2 := &models.Permission{Name: "editar roles"}
	for _, p := range []*models.Permission{p1, p2} {
		if err := permissions.Create(ctx, p, nil); err != nil {
			t.Fatal(err)
		}
	}

	t.Run("role permission sync", func(t *testing.T) {
		role := &models.Role{Name: "admin"}
		if err := roles.Create(ctx, role, []int64{p1.ID, 9999}); err != nil {
			t.Fatal(err)
		}
		if role.GuardName != models.DefaultGuardName {
			t.Errorf("guard = %s", role.GuardName)
		}

		got, err := roles.Permissions(ctx, role.ID)
		if err != nil || len(got) != 1 || got[0].ID != p1.ID {
			t.Fatalf("permissions after create = %+v, %v", got, err)
		}

		if err := roles.Update(ctx, role, nil); err != nil {
			t.Fatal(err)
		}
		got, _ = roles.Permissions(ctx, role.ID)
		if len(got) != 0 {
			t.Errorf("empty sync should clear permissions, got %+v", got)
		}

		page, total, err := roles.List(ctx, ListParams{Filters: map[string]string{"name": "adm"}})
		if err != nil || total != 1 || page[0].Name != "admin" {
			t.Errorf("List() = %+v, %d, %v", page, total, err)
		}

		if err := roles.Delete(ctx, role.ID); err != nil {
			t.Fatal(err)
		}
		if _, err := roles.GetByID(ctx, role.ID); !errors.Is(err, ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("permission role sync", func(t *testing.T) {
		editor := &models.Role{Name: "editor"}
		viewer := &models.Role{Name: "viewer"}
		for _, r := range []*models.Role{editor, viewer} {
			if err := roles.Create(ctx, r, nil); err != nil {
				t.Fatal(err)
			}
		}

		if err := permissions.Update(ctx, p2, []int64{editor.ID}, true); err != nil {
			t.Fatal(err)
		}
		if err := permissions.Update(ctx, p2, []int64{viewer.ID}, true); err != nil {
			t.Fatal(err)
		}

		got, err := permissions.Roles(ctx, p2.ID)
		if err != nil || len(got) != 1 || got[0].ID != viewer.ID {
			t.Errorf("roles after sync = %+v, %v", got, err)
		}
	})

	t.Run("menu reorder", func(t *testing.T) {
		menus := NewMenuOpcionRepository(pool)
		a := &models.MenuOpcion{Titulo: "Roles", Orden: 1}
		b := &models.MenuOpcion{Titulo: "Permisos", Orden: 2}
		for _, m := range []*models.MenuOpcion{a, b} {
			if err := menus.Create(ctx, m); err != nil {
				t.Fatal(err)
			}
		}

		err := menus.Reorder(ctx, []OrderItem{{ID: a.ID, Orden: 2}, {ID: 9999, Orden: 1}})
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
		got, _ := menus.GetByID(ctx, a.ID)
		if got.Orden != 1 {
			t.Errorf("failed reorder must roll back, orden = %d", got.Orden)
		}

		if err := menus.Reorder(ctx, []OrderItem{{ID: a.ID, Orden: 2}, {ID: b.ID, Orden: 1}}); err != nil {
			t.Fatal(err)
		}
		list, _, err := menus.List(ctx, ListParams{Sort: "orden"})
		if err != nil || list[0].ID != b.ID {
			t.Errorf("List(sort=orden) = %+v, %v", list, err)
		}
	})
}
