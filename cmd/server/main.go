package main

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/websocket/v2"
	"github.com/joho/godotenv"
	"github.com/plasmadinah/cms-backend/internal/cache"
	"github.com/plasmadinah/cms-backend/internal/handlers"
	"github.com/plasmadinah/cms-backend/internal/middleware"
	"github.com/plasmadinah/cms-backend/internal/repository"
	"github.com/plasmadinah/cms-backend/internal/service"
	"github.com/plasmadinah/cms-backend/internal/storage"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	// Initialize Fiber app
	app := fiber.New(fiber.Config{
		AppName: "Plasmadinah CMS Backend",
		// Support cover-image uploads up to 8MB + overhead.
		BodyLimit: 10 * 1024 * 1024, // 10MB
	})

	// Middleware
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     os.Getenv("ALLOWED_ORIGINS"),
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-PD-CSRF",
		AllowMethods:     "GET, POST, PUT, DELETE, OPTIONS",
		AllowCredentials: true,
	}))

	// Initialize database connection
	db, err := repository.InitDB()
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Initialize Redis cache
	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}
	redisPassword := os.Getenv("REDIS_PASSWORD")
	redisDB := 0
	if dbStr := os.Getenv("REDIS_DB"); dbStr != "" {
		if parsedDB, err := strconv.Atoi(dbStr); err == nil {
			redisDB = parsedDB
		}
	}

	redisCache := cache.NewRedisCache(redisAddr, redisPassword, redisDB)
	if err := redisCache.Ping(); err != nil {
		log.Printf("WARNING: Redis connection failed: %v. Running without cache.", err)
		redisCache = nil
	} else {
		log.Println("Redis cache connected successfully")
	}

	contentCache := cache.NewContentCache(redisCache)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	articleRepo := repository.NewArticleRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	heroRepo := repository.NewHeroRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	messageRepo := repository.NewMessageRepository(db)

	// Seed admin account and default storefront content
	if err := repository.Seed(userRepo, heroRepo, serviceRepo); err != nil {
		log.Printf("WARNING: seeder failed: %v", err)
	}

	// Initialize services
	authService := service.NewAuthService(userRepo)
	articleService := service.NewArticleService(articleRepo)
	commentService := service.NewCommentService(commentRepo, articleRepo)
	contentService := service.NewContentService(heroRepo, serviceRepo)
	messageService := service.NewMessageService(messageRepo)

	// Initialize S3/MinIO storage (best-effort; upload endpoints return 503 if missing)
	var s3Store *storage.S3Storage
	if cfg, err := storage.LoadS3ConfigFromEnv(); err != nil {
		log.Printf("WARNING: S3 storage not configured: %v", err)
	} else if st, err := storage.NewS3Storage(cfg); err != nil {
		log.Printf("WARNING: Failed to initialize S3 storage: %v", err)
	} else {
		s3Store = st
		log.Printf("S3 storage initialized successfully (bucket=%s)", cfg.Bucket)
	}

	// Initialize handlers
	wsHandler := handlers.NewWebSocketHandler(commentService)
	hub := wsHandler.GetHub()
	authHandler := handlers.NewAuthHandler(authService)
	articleHandler := handlers.NewArticleHandler(articleService, commentService, s3Store, hub)
	commentHandler := handlers.NewCommentHandler(commentService, hub)
	contentHandler := handlers.NewContentHandler(contentService, contentCache, s3Store)
	messageHandler := handlers.NewMessageHandler(messageService)
	mediaHandler := handlers.NewMediaHandler(s3Store)

	// Public routes
	api := app.Group("/api", middleware.OriginAllowed())
	auth := api.Group("/auth", limiter.New(limiter.Config{
		Max:        20,
		Expiration: time.Minute,
	}))
	auth.Get("/csrf", authHandler.CSRF)
	auth.Post("/login", authHandler.Login)
	auth.Post("/logout", middleware.CSRFRequired(), authHandler.Logout)

	api.Get("/home", contentHandler.GetHome)
	api.Get("/articles", articleHandler.GetArticles)
	api.Get("/articles/:id", articleHandler.GetArticle)
	api.Get("/articles/:id/comments", commentHandler.GetComments)
	api.Post("/articles/:id/comments", limiter.New(limiter.Config{
		Max:        30,
		Expiration: time.Minute,
	}), commentHandler.CreateComment)
	api.Post("/contact", limiter.New(limiter.Config{
		Max:        10,
		Expiration: time.Minute,
	}), messageHandler.SendMessage)
	api.Get("/media/*", mediaHandler.GetMedia)

	// Admin routes
	admin := api.Group("/admin", middleware.AuthRequired(), middleware.CSRFRequired())
	admin.Post("/articles", articleHandler.CreateArticle)
	admin.Put("/articles/:id", articleHandler.UpdateArticle)
	admin.Delete("/articles/:id", articleHandler.DeleteArticle)
	admin.Put("/heroes/:id", contentHandler.UpdateHero)
	admin.Put("/services/:id", contentHandler.UpdateService)
	admin.Get("/messages", messageHandler.GetMessages)
	admin.Delete("/messages/:id", messageHandler.DeleteMessage)
	admin.Get("/rooms/:id/members", wsHandler.GetRoomMembers)

	// WebSocket route (websocket upgrade needs special handling)
	app.Use(
		"/ws",
		middleware.OriginAllowed(),
		func(c *fiber.Ctx) error {
			// Upgrade to WebSocket
			if websocket.IsWebSocketUpgrade(c) {
				return c.Next()
			}
			return fiber.ErrUpgradeRequired
		},
	)
	app.Get("/ws", websocket.New(wsHandler.HandleWebSocket))

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"message": "Plasmadinah CMS is running",
		})
	})

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s...", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
