package main

import (
	"context"
	"log"
	"time"

	"github.com/Yao1yuan/Tastegent/internal/auth"
	"github.com/Yao1yuan/Tastegent/internal/chat"
	"github.com/Yao1yuan/Tastegent/internal/config"
	"github.com/Yao1yuan/Tastegent/internal/db"
	"github.com/Yao1yuan/Tastegent/internal/menu"
	"github.com/Yao1yuan/Tastegent/internal/middleware"
	"github.com/Yao1yuan/Tastegent/internal/storage"
	"github.com/Yao1yuan/Tastegent/internal/upload"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {

	// ───────────────────────── CONFIG ─────────────────────────
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// ───────────────────────── GIN ─────────────────────────
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// ───────────────────────── MENU STORE ─────────────────────────
	var menuRepo menu.Repository
	if cfg.Store.DatabaseURL != "" {
		pool := db.ConnectPostgres(cfg.Store.DatabaseURL)
		defer pool.Close()
		menuRepo = menu.NewPostgresRepository(pool)
		log.Println("Menu store: PostgreSQL")
	} else {
		menuRepo = menu.NewFileRepository(cfg.Store.MenuFile)
		log.Printf("Menu store: file (%s)", cfg.Store.MenuFile)
	}

	menuService := menu.NewService(menuRepo)
	menuHandler := menu.NewHandler(menuService)
	adminMenuHandler := menu.NewAdminHandler(menuService)

	// ───────────────────────── UPLOAD STORAGE ─────────────────────────
	var store storage.Storage
	if cfg.UseR2() {
		r2Client, err := storage.NewR2Client(context.Background())
		if err != nil {
			log.Fatal("R2 init failed:", err)
		}
		store = r2Client
		log.Println("Upload storage: R2")
	} else {
		local, err := storage.NewLocalStorage(cfg.Storage.UploadDir)
		if err != nil {
			log.Fatal("upload dir init failed:", err)
		}
		store = local
		r.Static("/uploads", local.Dir())
		log.Printf("Upload storage: local (%s)", local.Dir())
	}

	uploadService := upload.NewService(store)
	uploadHandler := upload.NewHandler(uploadService)

	// ───────────────────────── AUTH ─────────────────────────
	authService := auth.NewService(cfg.Auth.AdminUsername, cfg.Auth.AdminPassword)
	authHandler := auth.NewHandler(authService)

	// ───────────────────────── CHAT ─────────────────────────
	dispatcher := chat.NewDispatcher(
		menuService,
		cfg.Chat.ProviderTimeout,
		chat.NewGeminiProvider(cfg.Chat.GeminiAPIKey, cfg.Chat.GeminiModel),
		chat.NewLLaMAProvider(cfg.Chat.LLaMAAPIKey, cfg.Chat.LLaMAModel, cfg.Chat.LLaMAAPIURL),
	)
	chatHandler := chat.NewHandler(dispatcher)

	// ───────────────────────── PUBLIC ROUTES ─────────────────────────
	r.GET("/menu", menuHandler.List)
	r.POST("/upload", uploadHandler.Upload)
	r.POST("/chat", chatHandler.Chat)
	r.POST("/token", authHandler.Token)

	// ───────────────────────── ADMIN ROUTES ─────────────────────────
	admin := r.Group("/admin")
	admin.Use(
		middleware.AuthMiddleware(),
		middleware.RequireRole("ADMIN"),
	)
	{
		admin.POST("/menu", adminMenuHandler.Create)
		admin.PUT("/menu/:id", adminMenuHandler.Update)
		admin.PUT("/menu/:id/image", adminMenuHandler.UpdateImage)
		admin.DELETE("/menu/:id", adminMenuHandler.Delete)
	}

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── START ─────────────────────────
	log.Printf("API running at http://localhost:%s", cfg.Server.Port)
	r.Run(":" + cfg.Server.Port)
}
