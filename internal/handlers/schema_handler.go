package handlers

import (
	"net/http"
	"strconv"

	"admin_backend/internal/responses"
	"admin_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type SchemaHandler struct {
	schemaService *services.SchemaService
}

func NewSchemaHandler(schemaService *services.SchemaService) *SchemaHandler {
	return &SchemaHandler{schemaService: schemaService}
}

// TableColumns handles GET /api/v1/schema/tables/:table/columns?model=
func (h *SchemaHandler) TableColumns(c *gin.Context) {
	cols, err := h.schemaService.Columns(c.Request.Context(), c.Param("table"), c.Query("model"))
	if err != nil {
		fail(c, "TableColumns", err, "Failed to get table columns")
		return
	}
	responses.Success(c, http.StatusOK, cols, "Columns retrieved successfully")
}

// ScaffoldPreview handles GET /api/v1/schema/tables/:table/scaffold?model=&soft_deletes=
func (h *SchemaHandler) ScaffoldPreview(c *gin.Context) {
	softDeletes, _ := strconv.ParseBool(c.DefaultQuery("soft_deletes", "false"))

	preview, err := h.schemaService.Scaffold(c.Request.Context(), c.Param("table"), c.Query("model"), softDeletes)
	if err != nil {
		fail(c, "ScaffoldPreview", err, "Failed to preview scaffold")
		return
	}
	responses.Success(c, http.StatusOK, preview, "Scaffold preview generated successfully")
}
