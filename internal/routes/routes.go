package routes

import (
	"net/http"

	"admin_backend/internal/handlers"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Handlers struct {
	Role       *handlers.RoleHandler
	Permission *handlers.PermissionHandler
	MenuOpcion *handlers.MenuOpcionHandler
	Schema     *handlers.SchemaHandler
}

// RegisterRoutes mounts the admin API under /api/v1. auth, when not nil,
// guards every API route; the health and metrics endpoints stay public.
func RegisterRoutes(router *gin.Engine, h Handlers, auth gin.HandlerFunc) {
	api := router.Group("/api/v1")
	if auth != nil {
		api.Use(auth)
	}

	NewRoleRoutes(h.Role).RegisterRoutes(api)
	NewPermissionRoutes(h.Permission).RegisterRoutes(api)
	NewMenuOpcionRoutes(h.MenuOpcion).RegisterRoutes(api)
	NewSchemaRoutes(h.Schema).RegisterRoutes(api)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})
}
