package handlers

import (
	"net/http"

	"admin_backend/internal/responses"
	"admin_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type RoleHandler struct {
	roleService   *services.RoleService
	schemaService *services.SchemaService
}

func NewRoleHandler(roleService *services.RoleService, schemaService *services.SchemaService) *RoleHandler {
	return &RoleHandler{
		roleService:   roleService,
		schemaService: schemaService,
	}
}

// ListRoles handles GET /api/v1/roles
func (h *RoleHandler) ListRoles(c *gin.Context) {
	page, err := h.roleService.List(c.Request.Context(), listParams(c))
	if err != nil {
		fail(c, "ListRoles", err, "Failed to list roles")
		return
	}
	responses.Success(c, http.StatusOK, page, "Roles retrieved successfully")
}

// CreateRole handles POST /api/v1/roles
func (h *RoleHandler) CreateRole(c *gin.Context) {
	var req services.RoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	role, err := h.roleService.Create(c.Request.Context(), req.Data)
	if err != nil {
		fail(c, "CreateRole", err, "Failed to create role")
		return
	}
	responses.Success(c, http.StatusCreated, role, "Role created successfully")
}

// GetRole handles GET /api/v1/roles/:id
func (h *RoleHandler) GetRole(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	role, err := h.roleService.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, "GetRole", err, "Failed to get role")
		return
	}
	responses.Success(c, http.StatusOK, role, "Role retrieved successfully")
}

// UpdateRole handles PUT/PATCH /api/v1/roles/:id
func (h *RoleHandler) UpdateRole(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req services.RoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	role, err := h.roleService.Update(c.Request.Context(), id, req.Data)
	if err != nil {
		fail(c, "UpdateRole", err, "Failed to update role")
		return
	}
	responses.Success(c, http.StatusOK, role, "Role updated successfully")
}

// DeleteRole handles DELETE /api/v1/roles/:id
func (h *RoleHandler) DeleteRole(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.roleService.Delete(c.Request.Context(), id); err != nil {
		fail(c, "DeleteRole", err, "Failed to delete role")
		return
	}
	responses.Success(c, http.StatusOK, nil, "Role deleted successfully")
}

// RolePermissions handles GET /api/v1/roles/:id/permissions
func (h *RoleHandler) RolePermissions(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	permissions, err := h.roleService.Permissions(c.Request.Context(), id)
	if err != nil {
		fail(c, "RolePermissions", err, "Failed to get role permissions")
		return
	}
	responses.Success(c, http.StatusOK, permissions, "Role permissions retrieved successfully")
}

// RoleColumns handles GET /api/v1/roles/columns
func (h *RoleHandler) RoleColumns(c *gin.Context) {
	cols, err := h.schemaService.Columns(c.Request.Context(), "roles", "Role")
	if err != nil {
		fail(c, "RoleColumns", err, "Failed to get role columns")
		return
	}
	responses.Success(c, http.StatusOK, cols, "Columns retrieved successfully")
}
