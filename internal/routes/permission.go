package routes

import (
	"admin_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

type PermissionRoutes struct {
	handler *handlers.PermissionHandler
}

func NewPermissionRoutes(handler *handlers.PermissionHandler) *PermissionRoutes {
	return &PermissionRoutes{handler: handler}
}

func (r *PermissionRoutes) RegisterRoutes(router *gin.RouterGroup) {
	permissions := router.Group("/permissions")
	{
		permissions.GET("/columns", r.handler.PermissionColumns)
		permissions.GET("", r.handler.ListPermissions)
		permissions.POST("", r.handler.CreatePermission)
		permissions.GET("/:id", r.handler.GetPermission)
		permissions.PUT("/:id", r.handler.UpdatePermission)
		permissions.PATCH("/:id", r.handler.UpdatePermission)
		permissions.DELETE("/:id", r.handler.DeletePermission)
		permissions.GET("/:id/roles", r.handler.PermissionRoles)
	}
}
