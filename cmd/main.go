package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/ZidiEya/holbertonschool-files-manager/internal/app"
	"github.com/ZidiEya/holbertonschool-files-manager/internal/auth"
	"github.com/ZidiEya/holbertonschool-files-manager/internal/file"
	"github.com/ZidiEya/holbertonschool-files-manager/internal/identity"
	"github.com/ZidiEya/holbertonschool-files-manager/internal/queue"
	"github.com/ZidiEya/holbertonschool-files-manager/internal/session"
	"github.com/ZidiEya/holbertonschool-files-manager/internal/storage"
	"github.com/ZidiEya/holbertonschool-files-manager/pkg/database"
	"github.com/ZidiEya/holbertonschool-files-manager/pkg/routes"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Print("No .env file found")
	}

	// Database
	db, err := database.Connect(postgresDSN())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Redis
	redisAddr := envOr("REDIS_ADDR", "localhost:6379")
	redisPassword := os.Getenv("REDIS_PASSWORD")
	redisClient := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPassword,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := redisClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Services
	sessions := session.New(redisClient, session.DefaultTTL)
	resolver := identity.NewResolver(sessions)
	contentStore := storage.New(envOr("FOLDER_PATH", "/tmp/files_manager"))
	dispatcher := queue.NewAsynqDispatcher(asynq.RedisClientOpt{
		Addr:     redisAddr,
		Password: redisPassword,
	})
	defer dispatcher.Close()

	users := auth.NewRepository(db)
	files := file.NewRepository(db)
	fileService := file.NewService(files, users, contentStore, dispatcher)

	// Handlers
	appHandler := app.NewHandler(sessions, database.NewProbe(db), users, files)
	authHandler := auth.NewHandler(users, sessions, resolver, dispatcher)
	fileHandler := file.NewHandler(fileService, resolver)

	router := gin.Default()
	routes.SetupRoutes(router, appHandler, authHandler, fileHandler)

	port := envOr("PORT", "5000")
	log.Printf("Server starting on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func postgresDSN() string {
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		return dsn
	}
	return fmt.Sprintf("host=%s port=%s dbname=%s user=%s password=%s sslmode=disable",
		envOr("DB_HOST", "localhost"),
		envOr("DB_PORT", "5432"),
		envOr("DB_DATABASE", "files_manager"),
		envOr("DB_USER", "postgres"),
		os.Getenv("DB_PASSWORD"),
	)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
