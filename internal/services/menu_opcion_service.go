package services

import (
	"context"
	"fmt"

	"admin_backend/internal/models"
	"admin_backend/internal/repositories"
)

type MenuOpcionStore interface {
	List(ctx context.Context, params repositories.ListParams) ([]models.MenuOpcion, int64, error)
	GetByID(ctx context.Context, id int64) (*models.MenuOpcion, error)
	Create(ctx context.Context, m *models.MenuOpcion) error
	Update(ctx context.Context, m *models.MenuOpcion) error
	Delete(ctx context.Context, id int64) error
	Reorder(ctx context.Context, items []repositories.OrderItem) error
}

type MenuOpcionRequest struct {
	Titulo        string  `json:"titulo" binding:"required,max=255"`
	TituloSeccion *string `json:"titulo_seccion" binding:"omitempty,max=255"`
	Icono         *string `json:"icono" binding:"omitempty,max=255"`
	Ruta          *string `json:"ruta" binding:"omitempty,max=255"`
	Orden         int     `json:"orden"`
	Action        *string `json:"action" binding:"omitempty,max=255"`
	Subject       *string `json:"subject" binding:"omitempty,max=255"`
	OptionID      *int64  `json:"option_id" binding:"omitempty,min=1"`
}

func (r MenuOpcionRequest) apply(m *models.MenuOpcion) {
	m.Titulo = r.Titulo
	m.TituloSeccion = r.TituloSeccion
	m.Icono = r.Icono
	m.Ruta = r.Ruta
	m.Orden = r.Orden
	m.Action = r.Action
	m.Subject = r.Subject
	m.OptionID = r.OptionID
}

type ReorderRequest struct {
	Data []repositories.OrderItem `json:"data" binding:"required,dive"`
}

type MenuOpcionService struct {
	menuRepo MenuOpcionStore
}

func NewMenuOpcionService(menuRepo MenuOpcionStore) *MenuOpcionService {
	return &MenuOpcionService{menuRepo: menuRepo}
}

func (s *MenuOpcionService) List(ctx context.Context, params repositories.ListParams) (models.Page[models.MenuOpcion], error) {
	items, total, err := s.menuRepo.List(ctx, params)
	if err != nil {
		return models.Page[models.MenuOpcion]{}, err
	}
	return newPage(items, params, total), nil
}

func (s *MenuOpcionService) Get(ctx context.Context, id int64) (*models.MenuOpcion, error) {
	return s.menuRepo.GetByID(ctx, id)
}

func (s *MenuOpcionService) Create(ctx context.Context, req MenuOpcionRequest) (*models.MenuOpcion, error) {
	m := &models.MenuOpcion{}
	req.apply(m)
	if err := s.menuRepo.Create(ctx, m); err != nil {
		return nil, fmt.Errorf("failed to create menu option: %w", err)
	}
	return m, nil
}

func (s *MenuOpcionService) Update(ctx context.Context, id int64, req MenuOpcionRequest) (*models.MenuOpcion, error) {
	m, err := s.menuRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.OptionID != nil && *req.OptionID == id {
		return nil, fmt.Errorf("%w: a menu option cannot be its own parent", ErrInvalidInput)
	}

	req.apply(m)
	if err := s.menuRepo.Update(ctx, m); err != nil {
		return nil, fmt.Errorf("failed to update menu option: %w", err)
	}
	return m, nil
}

func (s *MenuOpcionService) Delete(ctx context.Context, id int64) error {
	return s.menuRepo.Delete(ctx, id)
}

// Reorder sets the position of every listed option in one transaction.
func (s *MenuOpcionService) Reorder(ctx context.Context, items []repositories.OrderItem) error {
	if len(items) == 0 {
		return ErrEmptyPayload
	}
	return s.menuRepo.Reorder(ctx, items)
}
