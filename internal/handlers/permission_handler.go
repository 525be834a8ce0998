package handlers

import (
	"net/http"

	"admin_backend/internal/responses"
	"admin_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type PermissionHandler struct {
	permissionService *services.PermissionService
	schemaService     *services.SchemaService
}

func NewPermissionHandler(permissionService *services.PermissionService, schemaService *services.SchemaService) *PermissionHandler {
	return &PermissionHandler{
		permissionService: permissionService,
		schemaService:     schemaService,
	}
}

// ListPermissions handles GET /api/v1/permissions
func (h *PermissionHandler) ListPermissions(c *gin.Context) {
	page, err := h.permissionService.List(c.Request.Context(), listParams(c))
	if err != nil {
		fail(c, "ListPermissions", err, "Failed to list permissions")
		return
	}
	responses.Success(c, http.StatusOK, page, "Permissions retrieved successfully")
}

// CreatePermission handles POST /api/v1/permissions
func (h *PermissionHandler) CreatePermission(c *gin.Context) {
	var req services.PermissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	permission, err := h.permissionService.Create(c.Request.Context(), req.Data)
	if err != nil {
		fail(c, "CreatePermission", err, "Failed to create permission")
		return
	}
	responses.Success(c, http.StatusCreated, permission, "Permission created successfully")
}

// GetPermission handles GET /api/v1/permissions/:id
func (h *PermissionHandler) GetPermission(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	permission, err := h.permissionService.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, "GetPermission", err, "Failed to get permission")
		return
	}
	responses.Success(c, http.StatusOK, permission, "Permission retrieved successfully")
}

// UpdatePermission handles PUT/PATCH /api/v1/permissions/:id
func (h *PermissionHandler) UpdatePermission(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req services.PermissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	permission, err := h.permissionService.Update(c.Request.Context(), id, req.Data)
	if err != nil {
		fail(c, "UpdatePermission", err, "Failed to update permission")
		return
	}
	responses.Success(c, http.StatusOK, permission, "Permission updated successfully")
}

// DeletePermission handles DELETE /api/v1/permissions/:id
func (h *PermissionHandler) DeletePermission(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.permissionService.Delete(c.Request.Context(), id); err != nil {
		fail(c, "DeletePermission", err, "Failed to delete permission")
		return
	}
	responses.Success(c, http.StatusOK, nil, "Permission deleted successfully")
}

// PermissionRoles handles GET /api/v1/permissions/:id/roles
func (h *PermissionHandler) PermissionRoles(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	roles, err := h.permissionService.Roles(c.Request.Context(), id)
	if err != nil {
		fail(c, "PermissionRoles", err, "Failed to get permission roles")
		return
	}
	responses.Success(c, http.StatusOK, roles, "Permission roles retrieved successfully")
}

// PermissionColumns handles GET /api/v1/permissions/columns
func (h *PermissionHandler) PermissionColumns(c *gin.Context) {
	cols, err := h.schemaService.Columns(c.Request.Context(), "permissions", "Permission")
	if err != nil {
		fail(c, "PermissionColumns", err, "Failed to get permission columns")
		return
	}
	responses.Success(c, http.StatusOK, cols, "Columns retrieved successfully")
}
