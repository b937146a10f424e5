package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/applytrack/applytrack/internal/config"
	"github.com/applytrack/applytrack/internal/database"
	"github.com/applytrack/applytrack/internal/handlers"
	"github.com/applytrack/applytrack/internal/identity"
	"github.com/applytrack/applytrack/internal/middleware"
	"github.com/applytrack/applytrack/internal/services"
	"github.com/applytrack/applytrack/internal/web"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	cfg := config.Load()

	// 2. Database Handle
	// Construction is lazy: with the environment unset the server still
	// starts and every API call reports the misconfiguration instead.
	db := database.New(cfg)
	if _, err := db.Handle(); err != nil {
		log.Printf("⚠️  Database not ready: %v", err)
	} else {
		log.Println("✅ Database ready.")
	}

	// 3. Initialize Core Services
	appService := services.NewApplicationService(db)
	userService := services.NewUserService(db)

	// 4. Frontend Renderer
	renderer, err := web.NewRenderer()
	if err != nil {
		log.Fatal("Failed to parse templates:", err)
	}

	// 5. Initialize Handlers
	appHandler := handlers.NewApplicationHandler(appService)
	authHandler := handlers.NewAuthHandler(userService)
	pageHandler := handlers.NewPageHandler(appService, renderer)

	// 6. Setup Router, CORS & Sessions
	r := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true // For development only
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	sessionKey := cfg.SessionKey
	if sessionKey == "" {
		// throwaway key so pages still render; API calls report the
		// misconfiguration and sessions do not survive a restart
		sessionKey = uuid.NewString()
	}
	r.Use(sessions.Sessions(identity.SessionName, cookie.NewStore([]byte(sessionKey))))
	r.Use(middleware.SessionGuard())

	// 7. Define Routes
	r.StaticFS("/static", web.StaticFS())
	r.GET("/", pageHandler.Dashboard)
	r.GET("/login", pageHandler.Login)
	r.GET("/signup", pageHandler.Signup)

	auth := r.Group("/auth")
	{
		auth.POST("/signup", authHandler.Signup)
		auth.POST("/login", authHandler.Login)
		auth.POST("/logout", authHandler.Logout)
	}

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)

		api.GET("/applications", appHandler.List)
		api.POST("/applications", appHandler.Create)
		api.GET("/applications/:id", appHandler.Get)
		api.PUT("/applications/:id", appHandler.Update)
		api.DELETE("/applications/:id", appHandler.Delete)
	}

	log.Printf("🚀 Server starting on %s...", cfg.Addr)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
