package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"admin_backend/internal/models"
)

var menuOpcionFields = []string{"titulo", "titulo_seccion", "icono", "ruta", "orden", "action", "subject", "option_id"}

var menuOpcionListQuery = listQuery{
	table:          "menu_opciones",
	columns:        "id, titulo, titulo_seccion, icono, ruta, orden, action, subject, option_id, created_at, updated_at",
	allowedFilters: menuOpcionFields,
	allowedSorts:   menuOpcionFields,
	defaultSort:    "-id",
}

// OrderItem moves one menu option to a new position.
type OrderItem struct {
	ID    int64 `json:"id" binding:"required"`
	Orden int   `json:"orden"`
}

type MenuOpcionRepository struct {
	pool *pgxpool.Pool
}

func NewMenuOpcionRepository(pool *pgxpool.Pool) *MenuOpcionRepository {
	return &MenuOpcionRepository{pool: pool}
}

func scanMenuOpcion(row pgx.Row, m *models.MenuOpcion) error {
	return row.Scan(
		&m.ID,
		&m.Titulo,
		&m.TituloSeccion,
		&m.Icono,
		&m.Ruta,
		&m.Orden,
		&m.Action,
		&m.Subject,
		&m.OptionID,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
}

func (r *MenuOpcionRepository) List(ctx context.Context, params ListParams) ([]models.MenuOpcion, int64, error) {
	countSQL, pageSQL, args, err := menuOpcionListQuery.build(params)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.pool.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count menu options: %w", err)
	}

	rows, err := r.pool.Query(ctx, pageSQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list menu options: %w", err)
	}
	defer rows.Close()

	var items []models.MenuOpcion
	for rows.Next() {
		var m models.MenuOpcion
		if err := scanMenuOpcion(rows, &m); err != nil {
			return nil, 0, err
		}
		items = append(items, m)
	}
	return items, total, rows.Err()
}

func (r *MenuOpcionRepository) GetByID(ctx context.Context, id int64) (*models.MenuOpcion, error) {
	query := `
		SELECT id, titulo, titulo_seccion, icono, ruta, orden, action, subject, option_id, created_at, updated_at
		FROM menu_opciones WHERE id = $1
	`

	var m models.MenuOpcion
	if err := scanMenuOpcion(r.pool.QueryRow(ctx, query, id), &m); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *MenuOpcionRepository) Create(ctx context.Context, m *models.MenuOpcion) error {
	query := `
		INSERT INTO menu_opciones (titulo, titulo_seccion, icono, ruta, orden, action, subject, option_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	return r.pool.QueryRow(ctx, query,
		m.Titulo,
		m.TituloSeccion,
		m.Icono,
		m.Ruta,
		m.Orden,
		m.Action,
		m.Subject,
		m.OptionID,
	).Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
}

func (r *MenuOpcionRepository) Update(ctx context.Context, m *models.MenuOpcion) error {
	query := `
		UPDATE menu_opciones SET
			titulo = $2, titulo_seccion = $3, icono = $4, ruta = $5, orden = $6,
			action = $7, subject = $8, option_id = $9, updated_at = NOW()
		WHERE id = $1
		RETURNING created_at, updated_at
	`

	err := r.pool.QueryRow(ctx, query,
		m.ID,
		m.Titulo,
		m.TituloSeccion,
		m.Icono,
		m.Ruta,
		m.Orden,
		m.Action,
		m.Subject,
		m.OptionID,
	).Scan(&m.CreatedAt, &m.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

func (r *MenuOpcionRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM menu_opciones WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Reorder applies every position change or none of them.
func (r *MenuOpcionRepository) Reorder(ctx context.Context, items []OrderItem) error {
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		for _, item := range items {
			result, err := tx.Exec(ctx, `UPDATE menu_opciones SET orden = $2, updated_at = NOW() WHERE id = $1`, item.ID, item.Orden)
			if err != nil {
				return fmt.Errorf("failed to reorder menu option %d: %w", item.ID, err)
			}
			if result.RowsAffected() == 0 {
				return fmt.Errorf("menu option %d: %w", item.ID, ErrNotFound)
			}
		}
		return nil
	})
}
