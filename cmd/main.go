package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"cityvoice/backend/internal/api/handler"
	"cityvoice/backend/internal/complaint"
	"cityvoice/backend/internal/config"
	"cityvoice/backend/internal/feedhub"
	"cityvoice/backend/internal/models"
	"cityvoice/backend/internal/notify"
	"cityvoice/backend/internal/storage"
	"cityvoice/backend/internal/uploads"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupDependencies(cfg *config.Config) (*gorm.DB, *redis.Client) {
	// 1. PostgreSQL
	db, err := gorm.Open(postgres.Open(cfg.PostgresDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect PostgreSQL: %v", err)
	}

	// 2. Redis
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})

	ctx := context.Background()
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect Redis: %v", err)
	}

	// 3. Migrations
	err = db.AutoMigrate(
		&models.User{},
		&models.Complaint{},
	)
	if err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Database and Redis connections established, migrations complete.")
	return db, rdb
}

func main() {
	log.Println("Starting CityVoice Backend...")

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file")
	}
	cfg := config.Load()

	// 1. Dependencies and seed
	db, rdb := setupDependencies(cfg)
	s := storage.NewStorageService(db, rdb)
	if err := s.EnsureDefaultAdmin(); err != nil {
		log.Fatalf("Failed to seed default admin: %v", err)
	}

	files, err := uploads.NewStore(cfg.UploadDir)
	if err != nil {
		log.Fatalf("Failed to prepare upload directory: %v", err)
	}

	// 2. Live feed hub
	hub := feedhub.NewManager(s)
	go hub.Run()
	hub.StartPubSubListener()

	// 3. Complaint service, with optional Telegram alerts
	complaintSvc := complaint.NewService(s, files)
	if cfg.TelegramBotToken != "" && cfg.TelegramAdminChatID != "" {
		notifier, err := notify.NewTelegramNotifier(cfg.TelegramBotToken, cfg.TelegramAdminChatID)
		if err != nil {
			log.Fatalf("Failed to start Telegram notifier: %v", err)
		}
		complaintSvc.Alerter = notifier
	}

	// 4. Gin setup and routing
	r := gin.Default()
	h := handler.NewHandler(complaintSvc, s, hub, cfg.JWTSecret)

	r.POST("/api/auth/login", h.Login)
	r.POST("/api/complaints", h.CreateComplaint)

	authed := r.Group("/api", h.RequireAuth())
	{
		authed.GET("/complaints", h.ListComplaints)
		authed.PUT("/complaints/:id/status", h.UpdateComplaintStatus)
		authed.DELETE("/complaints/:id", h.DeleteComplaint)
	}

	r.GET("/ws/feed", h.ServeFeed)

	// Uploaded images are public by design; the client links them directly.
	r.Static("/uploads", cfg.UploadDir)

	// The three client views
	r.StaticFile("/", "web/index.html")
	r.StaticFile("/login", "web/login.html")
	r.StaticFile("/manage", "web/manage.html")
	r.Static("/static", "web/static")

	// HTTP server
	server := &http.Server{
		Addr:           cfg.Addr,
		Handler:        r,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	log.Fatal(server.ListenAndServe())
}
