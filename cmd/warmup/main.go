package main

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/uddugarg/email-microservice/internal/config"
	"github.com/uddugarg/email-microservice/internal/core/domain"
	"github.com/uddugarg/email-microservice/internal/core/service"
	"github.com/uddugarg/email-microservice/internal/storage"
)

// The warmup scheduler runs once per invocation (cron/CronJob) and advances
// the warmup stage of every account that earned it over the trailing week.
func main() {
	log.SetFormatter(&log.JSONFormatter{})
	log.SetLevel(log.InfoLevel)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	db, err := storage.NewPostgresDB(ctx, cfg.Database.Host, cfg.Database.Port, cfg.Database.User, cfg.Database.Password, cfg.Database.Name)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	accountsStorage := storage.NewAccountsStorage(db)
	quotaStorage := storage.NewQuotaStorage(db)
	quotaService := service.NewQuotaService(accountsStorage, quotaStorage)

	accounts, err := accountsStorage.ListByStatus(ctx, domain.AccountWarmingUp)
	if err != nil {
		log.Fatalf("Failed to list warming-up accounts: %v", err)
	}

	var advanced int
	for _, account := range accounts {
		ok, err := quotaService.AdvanceWarmupStage(ctx, account.ID)
		if err != nil {
			log.WithError(err).WithField("accountID", account.ID).Error("Warmup advancement failed")
			continue
		}
		if ok {
			advanced++
		}
	}

	log.WithFields(log.Fields{
		"examined": len(accounts),
		"advanced": advanced,
	}).Info("Warmup run complete")
}
