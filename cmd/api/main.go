package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"

	"github.com/uddugarg/email-microservice/internal/config"
	"github.com/uddugarg/email-microservice/internal/infrastructure/amqp"
	"github.com/uddugarg/email-microservice/internal/server"
	"github.com/uddugarg/email-microservice/internal/storage"
)

func main() {
	// Initialize logger
	log.SetFormatter(&log.JSONFormatter{})
	log.SetLevel(log.InfoLevel)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Create AMQP client
	amqpClient, err := amqp.NewClient(cfg.AMQPURL)
	if err != nil {
		log.Fatalf("Failed to create AMQP client: %v", err)
	}
	defer amqpClient.Close()

	ctx := context.Background()
	queue := amqp.NewQueue(amqpClient, cfg.Prefetch)
	if err := queue.Initialize(ctx); err != nil {
		log.Fatalf("Failed to setup AMQP topology: %v", err)
	}

	db, err := storage.NewPostgresDB(ctx, cfg.Database.Host, cfg.Database.Port, cfg.Database.User, cfg.Database.Password, cfg.Database.Name)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	logsStorage := storage.NewEmailLogsStorage(db)

	validate := validator.New()
	httpServer := server.NewHTTPServer(queue, logsStorage, validate)

	go func() {
		if err := httpServer.Start(cfg.HTTPAddr); err != nil {
			log.Errorf("HTTP server stopped: %v", err)
		}
	}()

	log.Info("Email API started successfully")

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Info("Shutting down email API...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Error shutting down HTTP server: %v", err)
	}
}
