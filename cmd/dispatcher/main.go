package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"

	"github.com/uddugarg/email-microservice/internal/client"
	"github.com/uddugarg/email-microservice/internal/config"
	"github.com/uddugarg/email-microservice/internal/core/domain"
	"github.com/uddugarg/email-microservice/internal/core/service"
	"github.com/uddugarg/email-microservice/internal/handler"
	"github.com/uddugarg/email-microservice/internal/infrastructure/amqp"
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

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	queue := amqp.NewQueue(amqpClient, cfg.Prefetch)
	if err := queue.Initialize(ctx); err != nil {
		log.Fatalf("Failed to setup AMQP topology: %v", err)
	}

	db, err := storage.NewPostgresDB(ctx, cfg.Database.Host, cfg.Database.Port, cfg.Database.User, cfg.Database.Password, cfg.Database.Name)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	accountsStorage := storage.NewAccountsStorage(db)
	quotaStorage := storage.NewQuotaStorage(db)
	logsStorage := storage.NewEmailLogsStorage(db)

	providers := client.NewProviderFactory()
	providers.Register(domain.ProviderSMTP, client.NewSMTPProvider)

	quotaService := service.NewQuotaService(accountsStorage, quotaStorage)
	recipientValidator := service.NewRecipientValidator(cfg.DisposableDomains...)
	pipeline := service.NewDeliveryPipeline(accountsStorage, logsStorage, quotaService, recipientValidator, providers)

	validate := validator.New()
	messageHandler := handler.NewAMQPConsumer(pipeline, queue, validate, cfg.Workers, cfg.QueueSize)
	messageHandler.Start(ctx)

	if err := queue.Subscribe(ctx, domain.TopicEmailOutbound, messageHandler); err != nil {
		log.Fatalf("Failed to start consumer: %v", err)
	}

	log.Info("Email dispatcher started successfully")
	log.Infof("Consuming messages from queue: %s", domain.TopicEmailOutbound)

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Info("Shutting down email dispatcher...")
	cancel()

	// Let in-flight deliveries settle before exiting.
	stopCtx, stopCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer stopCancel()
	messageHandler.Stop(stopCtx)
}
