package routes

import (
	"admin_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

type MenuOpcionRoutes struct {
	handler *handlers.MenuOpcionHandler
}

func NewMenuOpcionRoutes(handler *handlers.MenuOpcionHandler) *MenuOpcionRoutes {
	return &MenuOpcionRoutes{handler: handler}
}

func (r *MenuOpcionRoutes) RegisterRoutes(router *gin.RouterGroup) {
	menu := router.Group("/menu-opcions")
	{
		menu.GET("/columns", r.handler.MenuOpcionColumns)
		menu.POST("/actualizar/orden", r.handler.ReorderMenuOpciones)
		menu.GET("", r.handler.ListMenuOpciones)
		menu.POST("", r.handler.CreateMenuOpcion)
		menu.GET("/:id", r.handler.GetMenuOpcion)
		menu.PUT("/:id", r.handler.UpdateMenuOpcion)
		menu.PATCH("/:id", r.handler.UpdateMenuOpcion)
		menu.DELETE("/:id", r.handler.DeleteMenuOpcion)
	}
}
