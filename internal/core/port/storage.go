package port

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/uddugarg/email-microservice/internal/core/domain"
)

type AccountStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	GetByTenantUser(ctx context.Context, tenantID, userID uuid.UUID) (*domain.Account, error)
	Save(ctx context.Context, account *domain.Account) error
	UpdateCredentials(ctx context.Context, id uuid.UUID, credentials domain.Credentials) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.AccountStatus) error
	UpdateWarmupStage(ctx context.Context, id uuid.UUID, stage int) error
	ListByStatus(ctx context.Context, status domain.AccountStatus) ([]domain.Account, error)
	// GetUserEmail resolves the registered address of a tenant's user, used
	// when a send request carries no explicit recipient.
	GetUserEmail(ctx context.Context, tenantID, userID uuid.UUID) (string, error)
}

type QuotaStore interface {
	GetUsage(ctx context.Context, accountID uuid.UUID, date time.Time) (*domain.QuotaUsage, error)
	// CreateUsage inserts the day's row if absent; concurrent creators must
	// not clobber each other.
	CreateUsage(ctx context.Context, usage *domain.QuotaUsage) error
	// RecordSuccess atomically increments sent and decrements remaining,
	// floored at zero.
	RecordSuccess(ctx context.Context, accountID uuid.UUID, date time.Time) error
	// RecordFailure atomically increments failed; remaining is untouched.
	RecordFailure(ctx context.Context, accountID uuid.UUID, date time.Time) error
	UsageHistory(ctx context.Context, accountID uuid.UUID, from, to time.Time) ([]domain.QuotaUsage, error)
}

type EmailLogStore interface {
	Append(ctx context.Context, entry *domain.EmailLog) error
	// UpdateStatus mutates a log row in place. A row already in a terminal
	// status only accepts an update carrying the same status (a no-op), so
	// redeliveries cannot rewrite history.
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.EmailStatus, update domain.LogUpdate) error
	GetByEventID(ctx context.Context, eventID uuid.UUID) ([]domain.EmailLog, error)
	ListByTenantUser(ctx context.Context, tenantID, userID uuid.UUID, limit, offset int) ([]domain.EmailLog, error)
}
