package handlers

import (
	"net/http"

	"admin_backend/internal/responses"
	"admin_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type MenuOpcionHandler struct {
	menuService   *services.MenuOpcionService
	schemaService *services.SchemaService
}

func NewMenuOpcionHandler(menuService *services.MenuOpcionService, schemaService *services.SchemaService) *MenuOpcionHandler {
	return &MenuOpcionHandler{
		menuService:   menuService,
		schemaService: schemaService,
	}
}

// ListMenuOpciones handles GET /api/v1/menu-opcions
func (h *MenuOpcionHandler) ListMenuOpciones(c *gin.Context) {
	page, err := h.menuService.List(c.Request.Context(), listParams(c))
	if err != nil {
		fail(c, "ListMenuOpciones", err, "Failed to list menu options")
		return
	}
	responses.Success(c, http.StatusOK, page, "Menu options retrieved successfully")
}

// CreateMenuOpcion handles POST /api/v1/menu-opcions
func (h *MenuOpcionHandler) CreateMenuOpcion(c *gin.Context) {
	var req services.MenuOpcionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusUnprocessableEntity, err, "Invalid request body")
		return
	}

	m, err := h.menuService.Create(c.Request.Context(), req)
	if err != nil {
		fail(c, "CreateMenuOpcion", err, "Failed to create menu option")
		return
	}
	responses.Success(c, http.StatusCreated, m, "Menu option created successfully")
}

func (h *MenuOpcionHandler) GetMenuOpcion(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	m, err := h.menuService.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, "GetMenuOpcion", err, "Failed to get menu option")
		return
	}
	responses.Success(c, http.StatusOK, m, "Menu option retrieved successfully")
}

func (h *MenuOpcionHandler) UpdateMenuOpcion(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req services.MenuOpcionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusUnprocessableEntity, err, "Invalid request body")
		return
	}

	m, err := h.menuService.Update(c.Request.Context(), id, req)
	if err != nil {
		fail(c, "UpdateMenuOpcion", err, "Failed to update menu option")
		return
	}
	responses.Success(c, http.StatusOK, m, "Menu option updated successfully")
}

func (h *MenuOpcionHandler) DeleteMenuOpcion(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.menuService.Delete(c.Request.Context(), id); err != nil {
		fail(c, "DeleteMenuOpcion", err, "Failed to delete menu option")
		return
	}
	responses.Success(c, http.StatusOK, nil, "Menu option deleted successfully")
}

// ReorderMenuOpciones handles POST /api/v1/menu-opcions/actualizar/orden
func (h *MenuOpcionHandler) ReorderMenuOpciones(c *gin.Context) {
	var req services.ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	if err := h.menuService.Reorder(c.Request.Context(), req.Data); err != nil {
		fail(c, "ReorderMenuOpciones", err, "Failed to reorder menu options")
		return
	}
	responses.Success(c, http.StatusOK, nil, "Menu order updated successfully")
}

func (h *MenuOpcionHandler) MenuOpcionColumns(c *gin.Context) {
	cols, err := h.schemaService.Columns(c.Request.Context(), "menu_opciones", "MenuOpcion")
	if err != nil {
		fail(c, "MenuOpcionColumns", err, "Failed to get menu option columns")
		return
	}
	responses.Success(c, http.StatusOK, cols, "Columns retrieved successfully")
}
