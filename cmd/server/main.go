package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"villeh/bloglist/internal/api/controller"
	"villeh/bloglist/internal/api/repository"
	"villeh/bloglist/internal/api/service"
	"villeh/bloglist/internal/config"
	"villeh/bloglist/internal/db"
	"villeh/bloglist/internal/logger"
	"villeh/bloglist/internal/server"
	"villeh/bloglist/internal/telemetry"
)

func main() {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.NewServerConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	// Initialize telemetry
	shutdown, err := telemetry.InitOtel(cfg.OTLPEndpoint)
	if err != nil {
		log.Fatalf("failed to initialize telemetry: %v", err)
	}
	defer func() {
		if err := shutdown(ctx); err != nil {
			log.Printf("Error shutting down telemetry: %v", err)
		}
	}()

	// Initialize logging
	logger.Init(cfg.LogLevel)

	// Initialize SQLite DB
	pool, err := db.Connect(cfg.DBPath)
	if err != nil {
		log.Fatalf("failed to open sqlite db: %v", err)
	}
	defer pool.Close()

	if err := db.Migrate(pool); err != nil {
		log.Fatalf("failed to migrate sqlite db: %v", err)
	}

	// Create repositories
	blogRepo := repository.NewBlogRepository(pool)
	userRepo := repository.NewUserRepository(pool)

	// Create services
	blogService := service.NewBlogService(blogRepo)
	userService := service.NewUserService(userRepo)

	// Create controllers
	blogController := controller.NewBlogController(blogService)
	userController := controller.NewUserController(userService)

	// Create the Gin-based server
	srv := server.NewServer(blogController, userController)

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: srv.Engine(),
	}

	go func() {
		log.Printf("http server started on %s", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("ListenAndServe: %v", err)
		}
	}()

	<-stop

	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ServerShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}
