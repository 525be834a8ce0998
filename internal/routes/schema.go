package routes

import (
	"admin_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

type SchemaRoutes struct {
	handler *handlers.SchemaHandler
}

func NewSchemaRoutes(handler *handlers.SchemaHandler) *SchemaRoutes {
	return &SchemaRoutes{handler: handler}
}

func (r *SchemaRoutes) RegisterRoutes(router *gin.RouterGroup) {
	schema := router.Group("/schema/tables/:table")
	{
		schema.GET("/columns", r.handler.TableColumns)
		schema.GET("/scaffold", r.handler.ScaffoldPreview)
	}
}
