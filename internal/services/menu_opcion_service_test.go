package services

import (
	"context"
	"errors"
	"testing"

	"admin_backend/internal/repositories"
)

func TestMenuOpcionServiceCRUD(t *testing.T) {
	store := newFakeMenuStore()
	svc := NewMenuOpcionService(store)
	ctx := context.Background()

	m, err := svc.Create(ctx, MenuOpcionRequest{Titulo: "Roles", Ruta: strPtr("/roles"), Orden: 1})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := svc.Update(ctx, m.ID, MenuOpcionRequest{Titulo: "Roles y permisos", Orden: 2})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Titulo != "Roles y permisos" || updated.Ruta != nil {
		t.Errorf("updated = %+v, want full replacement", updated)
	}

	if err := svc.Delete(ctx, m.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.Get(ctx, m.ID); !errors.Is(err, repositories.ErrNotFound) {
		t.Errorf("Get after delete error = %v, want ErrNotFound", err)
	}
}

func TestMenuOpcionServiceRejectsSelfParent(t *testing.T) {
	store := newFakeMenuStore()
	svc := NewMenuOpcionService(store)
	ctx := context.Background()

	m, err := svc.Create(ctx, MenuOpcionRequest{Titulo: "Inicio"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	self := m.ID
	if _, err := svc.Update(ctx, m.ID, MenuOpcionRequest{Titulo: "Inicio", OptionID: &self}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("error = %v, want ErrInvalidInput", err)
	}
}

func TestMenuOpcionServiceReorder(t *testing.T) {
	store := newFakeMenuStore()
	svc := NewMenuOpcionService(store)
	ctx := context.Background()

	a, _ := svc.Create(ctx, MenuOpcionRequest{Titulo: "A", Orden: 1})
	b, _ := svc.Create(ctx, MenuOpcionRequest{Titulo: "B", Orden: 2})

	if err := svc.Reorder(ctx, nil); !errors.Is(err, ErrEmptyPayload) {
		t.Errorf("empty reorder error = %v, want ErrEmptyPayload", err)
	}

	err := svc.Reorder(ctx, []repositories.OrderItem{{ID: a.ID, Orden: 2}, {ID: b.ID, Orden: 1}})
	if err != nil {
		t.Fatalf("Reorder: %v", err)
	}
	if store.items[a.ID].Orden != 2 || store.items[b.ID].Orden != 1 {
		t.Errorf("orden a=%d b=%d, want 2 and 1", store.items[a.ID].Orden, store.items[b.ID].Orden)
	}

	if err := svc.Reorder(ctx, []repositories.OrderItem{{ID: 999, Orden: 1}}); !errors.Is(err, repositories.ErrNotFound) {
		t.Errorf("unknown id error = %v, want ErrNotFound", err)
	}
}
