package storage

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/uddugarg/email-microservice/internal/core/domain"
)

// AccountsStorage persists sending accounts and resolves tenant users.
// Uniqueness on (tenant_id, user_id, provider) is enforced by the schema;
// Save upserts against that key so re-authorization refreshes in place.
type AccountsStorage struct {
	db *PostgresDB
}

func NewAccountsStorage(db *PostgresDB) *AccountsStorage {
	return &AccountsStorage{
		db: db,
	}
}

const accountColumns = `id, tenant_id, user_id, provider, sender_address, credentials,
	daily_limit, warmup_step, max_limit, current_stage, status, created_at, updated_at`

func (s *AccountsStorage) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	row := s.db.QueryRow(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE id = $1`, id)
	return scanAccount(row)
}

// GetByTenantUser returns the user's sending account. With multiple bound
// providers the most recently updated one wins.
func (s *AccountsStorage) GetByTenantUser(ctx context.Context, tenantID, userID uuid.UUID) (*domain.Account, error) {
	row := s.db.QueryRow(ctx,
		`SELECT `+accountColumns+`
		 FROM accounts
		 WHERE tenant_id = $1 AND user_id = $2
		 ORDER BY updated_at DESC
		 LIMIT 1`,
		tenantID, userID)
	return scanAccount(row)
}

func (s *AccountsStorage) Save(ctx context.Context, account *domain.Account) error {
	_, err := s.db.Exec(ctx,
		`INSERT INTO accounts (id, tenant_id, user_id, provider, sender_address, credentials,
		     daily_limit, warmup_step, max_limit, current_stage, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, now(), now())
		 ON CONFLICT (tenant_id, user_id, provider)
		 DO UPDATE SET
		     sender_address = EXCLUDED.sender_address,
		     credentials = EXCLUDED.credentials,
		     daily_limit = EXCLUDED.daily_limit,
		     warmup_step = EXCLUDED.warmup_step,
		     max_limit = EXCLUDED.max_limit,
		     status = EXCLUDED.status,
		     updated_at = now()`,
		account.ID,
		account.TenantID,
		account.UserID,
		account.Provider,
		account.SenderAddress,
		account.Credentials,
		account.Quota.DailyLimit,
		account.Quota.WarmupStep,
		account.Quota.MaxLimit,
		account.Quota.CurrentStage,
		account.Status,
	)
	return err
}

func (s *AccountsStorage) UpdateCredentials(ctx context.Context, id uuid.UUID, credentials domain.Credentials) error {
	_, err := s.db.Exec(ctx,
		`UPDATE accounts SET credentials = $2, updated_at = now() WHERE id = $1`,
		id, credentials)
	return err
}

func (s *AccountsStorage) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.AccountStatus) error {
	_, err := s.db.Exec(ctx,
		`UPDATE accounts SET status = $2, updated_at = now() WHERE id = $1`,
		id, status)
	return err
}

// UpdateWarmupStage only ever moves the stage forward; a stale scheduler
// run cannot regress a concurrently advanced account.
func (s *AccountsStorage) UpdateWarmupStage(ctx context.Context, id uuid.UUID, stage int) error {
	_, err := s.db.Exec(ctx,
		`UPDATE accounts SET current_stage = $2, updated_at = now()
		 WHERE id = $1 AND current_stage < $2`,
		id, stage)
	return err
}

func (s *AccountsStorage) ListByStatus(ctx context.Context, status domain.AccountStatus) ([]domain.Account, error) {
	rows, err := s.db.Query(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE status = $1 ORDER BY created_at`,
		status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, *account)
	}
	return accounts, rows.Err()
}

func (s *AccountsStorage) GetUserEmail(ctx context.Context, tenantID, userID uuid.UUID) (string, error) {
	var email string
	err := s.db.QueryRow(ctx,
		`SELECT email FROM users WHERE tenant_id = $1 AND id = $2`,
		tenantID, userID,
	).Scan(&email)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", domain.ErrUserNotFound
	}
	if err != nil {
		return "", err
	}
	return email, nil
}

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var account domain.Account
	var createdAt, updatedAt time.Time
	err := row.Scan(
		&account.ID,
		&account.TenantID,
		&account.UserID,
		&account.Provider,
		&account.SenderAddress,
		&account.Credentials,
		&account.Quota.DailyLimit,
		&account.Quota.WarmupStep,
		&account.Quota.MaxLimit,
		&account.Quota.CurrentStage,
		&account.Status,
		&createdAt,
		&updatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrAccountNotFound
	}
	if err != nil {
		return nil, err
	}
	account.CreatedAt = createdAt
	account.UpdatedAt = updatedAt
	return &account, nil
}
