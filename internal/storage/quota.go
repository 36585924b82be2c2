package storage

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/uddugarg/email-microservice/internal/core/domain"
)

// QuotaStorage keeps one row per (account, calendar date). Multiple
// pipeline instances update it concurrently, so every mutation is a single
// atomic statement; correctness never relies on application-level locks.
type QuotaStorage struct {
	db *PostgresDB
}

func NewQuotaStorage(db *PostgresDB) *QuotaStorage {
	return &QuotaStorage{
		db: db,
	}
}

func (s *QuotaStorage) GetUsage(ctx context.Context, accountID uuid.UUID, date time.Time) (*domain.QuotaUsage, error) {
	usage := &domain.QuotaUsage{
		AccountID: accountID,
	}
	err := s.db.QueryRow(ctx,
		`SELECT usage_date, sent, failed, remaining, updated_at
		 FROM quota_usage
		 WHERE account_id = $1 AND usage_date = $2`,
		accountID, date,
	).Scan(&usage.Date, &usage.Sent, &usage.Failed, &usage.Remaining, &usage.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrUsageNotFound
	}
	if err != nil {
		return nil, err
	}
	return usage, nil
}

// CreateUsage seeds the day's row. ON CONFLICT DO NOTHING keeps the first
// writer's allowance under concurrent lazy initialization.
func (s *QuotaStorage) CreateUsage(ctx context.Context, usage *domain.QuotaUsage) error {
	_, err := s.db.Exec(ctx,
		`INSERT INTO quota_usage (account_id, usage_date, sent, failed, remaining, updated_at)
		 VALUES ($1, $2, $3, $4, $5, now())
		 ON CONFLICT (account_id, usage_date) DO NOTHING`,
		usage.AccountID,
		usage.Date,
		usage.Sent,
		usage.Failed,
		usage.Remaining,
	)
	return err
}

func (s *QuotaStorage) RecordSuccess(ctx context.Context, accountID uuid.UUID, date time.Time) error {
	_, err := s.db.Exec(ctx,
		`UPDATE quota_usage
		 SET sent = sent + 1,
		     remaining = GREATEST(remaining - 1, 0),
		     updated_at = now()
		 WHERE account_id = $1 AND usage_date = $2`,
		accountID, date)
	return err
}

func (s *QuotaStorage) RecordFailure(ctx context.Context, accountID uuid.UUID, date time.Time) error {
	_, err := s.db.Exec(ctx,
		`UPDATE quota_usage
		 SET failed = failed + 1,
		     updated_at = now()
		 WHERE account_id = $1 AND usage_date = $2`,
		accountID, date)
	return err
}

func (s *QuotaStorage) UsageHistory(ctx context.Context, accountID uuid.UUID, from, to time.Time) ([]domain.QuotaUsage, error) {
	rows, err := s.db.Query(ctx,
		`SELECT usage_date, sent, failed, remaining, updated_at
		 FROM quota_usage
		 WHERE account_id = $1 AND usage_date BETWEEN $2 AND $3
		 ORDER BY usage_date`,
		accountID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var history []domain.QuotaUsage
	for rows.Next() {
		usage := domain.QuotaUsage{AccountID: accountID}
		if err := rows.Scan(&usage.Date, &usage.Sent, &usage.Failed, &usage.Remaining, &usage.UpdatedAt); err != nil {
			return nil, err
		}
		history = append(history, usage)
	}
	return history, rows.Err()
}
