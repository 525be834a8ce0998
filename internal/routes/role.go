package routes

import (
	"admin_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

type RoleRoutes struct {
	handler *handlers.RoleHandler
}

func NewRoleRoutes(handler *handlers.RoleHandler) *RoleRoutes {
	return &RoleRoutes{handler: handler}
}

func (r *RoleRoutes) RegisterRoutes(router *gin.RouterGroup) {
	roles := router.Group("/roles")
	{
		roles.GET("/columns", r.handler.RoleColumns)
		roles.GET("", r.handler.ListRoles)
		roles.POST("", r.handler.CreateRole)
		roles.GET("/:id", r.handler.GetRole)
		roles.PUT("/:id", r.handler.UpdateRole)
		roles.PATCH("/:id", r.handler.UpdateRole)
		roles.DELETE("/:id", r.handler.DeleteRole)
		roles.GET("/:id/permissions", r.handler.RolePermissions)
	}
}
