package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/iamasit07/4-in-a-row/engine/internal/config"
	"github.com/iamasit07/4-in-a-row/engine/internal/repository/redis"
	"github.com/iamasit07/4-in-a-row/engine/internal/service/bot"
	"github.com/iamasit07/4-in-a-row/engine/internal/service/cleanup"
	"github.com/iamasit07/4-in-a-row/engine/internal/service/game"
	transportHttp "github.com/iamasit07/4-in-a-row/engine/internal/transport/http"
	"github.com/iamasit07/4-in-a-row/engine/internal/transport/websocket"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../.env"); err != nil {
			log.Println("No .env file found")
		}
	}

	cfg := config.LoadConfig()

	// 1. Initialize Redis (optional move cache)
	if err := redis.InitRedis(cfg); err != nil {
		log.Printf("Failed to initialize Redis: %v", err)
	}
	defer redis.CloseRedis()

	var cache bot.CacheRepository
	if redis.IsRedisEnabled() && redis.RedisClient != nil {
		cache = redis.NewRedisCache(redis.RedisClient)
	}

	// 2. Initialize Services
	engine := bot.NewCachedEngine(cache, cfg.MoveCacheTTL)
	depths := bot.Depths{Easy: cfg.DepthEasy, Medium: cfg.DepthMedium, Hard: cfg.DepthHard}
	sessionManager := game.NewSessionManager(engine, depths, cfg.BotMoveDelay, cfg.SessionTTL)
	connManager := websocket.NewConnectionManager()

	// 3. Initialize Background Workers
	ctx, stop := context.WithCancel(context.Background())
	defer stop()
	cleanupWorker := cleanup.NewWorker(sessionManager, cfg.CleanupInterval)
	go cleanupWorker.Start(ctx)

	// 4. Initialize Handlers
	moveHandler := transportHttp.NewMoveHandler(engine, depths, cfg.MaxSearchDepth)
	wsHandler := websocket.NewHandler(connManager, sessionManager, cfg.AllowedOrigins)

	router := transportHttp.NewRouter(moveHandler, gin.WrapF(wsHandler.HandleWebSocket), cfg.AllowedOrigins)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s (depths easy=%d medium=%d hard=%d, max %d)",
			cfg.Port, depths.Easy, depths.Medium, depths.Hard, cfg.MaxSearchDepth)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("Server is shutting down...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited gracefully")
}
