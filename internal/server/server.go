package server

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"admin_backend/internal/config"
	"admin_backend/internal/database"
	"admin_backend/internal/handlers"
	"admin_backend/internal/middlewares"
	"admin_backend/internal/repositories"
	"admin_backend/internal/routes"
	"admin_backend/internal/services"
)

// NewServer connects to the default Postgres connection, runs migrations when
// enabled and returns the configured HTTP server.
func NewServer(cfg *config.Config) (*http.Server, error) {
	dsn, err := cfg.Connection("")
	if err != nil {
		return nil, err
	}

	if cfg.Database.CreateIfMissing {
		if err := database.EnsureDatabaseExists(dsn); err != nil {
			return nil, err
		}
	}

	pool, err := database.Connect(dsn)
	if err != nil {
		return nil, err
	}

	if cfg.Database.Migrate {
		if err := database.RunMigrations(pool); err != nil {
			database.Close()
			return nil, err
		}
	}

	// Dependency injection
	roleRepo := repositories.NewRoleRepository(pool)
	permissionRepo := repositories.NewPermissionRepository(pool)
	menuRepo := repositories.NewMenuOpcionRepository(pool)
	schemaRepo := repositories.NewPostgresSchemaRepository(pool, "public", false)

	schemaService := services.NewSchemaService(schemaRepo)
	roleService := services.NewRoleService(roleRepo)
	permissionService := services.NewPermissionService(permissionRepo)
	menuService := services.NewMenuOpcionService(menuRepo)

	h := routes.Handlers{
		Role:       handlers.NewRoleHandler(roleService, schemaService),
		Permission: handlers.NewPermissionHandler(permissionService, schemaService),
		MenuOpcion: handlers.NewMenuOpcionHandler(menuService, schemaService),
		Schema:     handlers.NewSchemaHandler(schemaService),
	}

	router := NewRouter(cfg, h)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	return server, nil
}

// NewRouter builds the gin engine with the middleware chain and every route.
func NewRouter(cfg *config.Config, h routes.Handlers) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(middlewares.RequestID(), middlewares.Metrics())
	router.Use(cors.New(corsConfig(cfg.Server.AllowedOrigins)))

	var auth gin.HandlerFunc
	if cfg.Auth.AccessTokenSecret != "" {
		auth = middlewares.Authenticate([]byte(cfg.Auth.AccessTokenSecret))
	} else {
		log.Println("WARNING: no access token secret configured, API routes are unauthenticated")
	}

	routes.RegisterRoutes(router, h, auth)
	return router
}

func corsConfig(origins []string) cors.Config {
	c := cors.DefaultConfig()
	c.AllowHeaders = append(c.AllowHeaders, "Authorization", "X-Request-ID")
	c.ExposeHeaders = []string{"X-Request-ID"}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = origins
	}
	return c
}
