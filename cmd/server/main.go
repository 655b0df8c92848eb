package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"contactnest/internal/config"
	"contactnest/internal/database"
	"contactnest/internal/handler"
	"contactnest/internal/middleware"
	"contactnest/internal/repository"
	"contactnest/internal/service"
	"contactnest/pkg/logger"
)

func main() {
	cfg := config.Load()
	log.Println("Config loaded successfully")

	if err := logger.Init(!(cfg.Environment == "production")); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Printf("Failed to close database: %v", err)
		}
	}()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	contactRepo := repository.NewContactRepository(db)

	// Services
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpiry)
	accessGuard := service.NewAccessGuard(userRepo, cfg.JWTSecret)
	userService := service.NewUserService(userRepo)
	contactService := service.NewContactService(contactRepo)

	// Handlers
	userHandler := handler.NewUserHandler(authService, userService)
	contactHandler := handler.NewContactHandler(contactService)

	router := setupRouter(cfg, accessGuard, userHandler, contactHandler)

	srv := &http.Server{
		Addr:    cfg.ServerPort,
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("Server starting on %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
}

func setupRouter(cfg *config.Config, guard *service.AccessGuard, userHandler *handler.UserHandler, contactHandler *handler.ContactHandler) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOriginFunc:  func(origin string) bool { return true },
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.HSTS(cfg.Environment == "production"))

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "nothing to see here"})
	})
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "Contact Nest API is running",
		})
	})

	auth := middleware.Authenticate(guard)
	admin := middleware.RequireAdmin(guard)
	selfOrAdmin := middleware.RequireSelfOrAdmin(guard)

	users := router.Group("/users")
	{
		users.POST("/register", userHandler.Register)
		users.POST("/auth", userHandler.Authenticate)
		users.GET("/profile", auth, userHandler.Profile)
		users.GET("/", auth, admin, userHandler.List)
		users.GET("/search", auth, admin, userHandler.Search)
		users.GET("/:id", auth, selfOrAdmin, userHandler.Get)
		users.PUT("/:id", auth, selfOrAdmin, userHandler.Update)
		users.DELETE("/:id", auth, admin, userHandler.Delete)
	}

	contacts := router.Group("/contacts", auth)
	{
		contacts.POST("/", contactHandler.Create)
		contacts.GET("/", contactHandler.List)
		contacts.GET("/search", contactHandler.Search)
		contacts.GET("/:id", contactHandler.Get)
		contacts.PUT("/:id", contactHandler.Update)
		contacts.DELETE("/:id", contactHandler.Delete)
	}

	return router
}
