package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrAccountNotFound       = errors.New("account not found")
	ErrUsageNotFound         = errors.New("quota usage not found")
	ErrUserNotFound          = errors.New("user not found")
	ErrProviderNotRegistered = errors.New("provider not registered")
)

// ProviderKind identifies a sending back-end. Accounts store exactly one
// of these values and the factory selects the implementation from it.
type ProviderKind string

const (
	ProviderGmail   ProviderKind = "GMAIL"
	ProviderOutlook ProviderKind = "OUTLOOK"
	ProviderSMTP    ProviderKind = "SMTP"
)

type AccountStatus string

const (
	AccountInactive  AccountStatus = "INACTIVE"
	AccountWarmingUp AccountStatus = "WARMING_UP"
	AccountActive    AccountStatus = "ACTIVE"
)

// Credentials is the opaque credential bundle handed to a provider.
// Keys are provider-specific (tokens, hosts, passwords).
type Credentials map[string]string

// QuotaSettings drives the daily allowance computation. CurrentStage starts
// at 1 and only ever moves forward.
type QuotaSettings struct {
	DailyLimit   int `json:"daily_limit"`
	WarmupStep   int `json:"warmup_step"`
	MaxLimit     int `json:"max_limit"`
	CurrentStage int `json:"current_stage"`
}

// Account binds a tenant+user to a sending identity. At most one account
// exists per (tenant, user, provider).
type Account struct {
	ID            uuid.UUID
	TenantID      uuid.UUID
	UserID        uuid.UUID
	Provider      ProviderKind
	SenderAddress string
	Credentials   Credentials
	Quota         QuotaSettings
	Status        AccountStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// QuotaUsage is one row per (account, calendar date). Remaining never goes
// negative; failed sends do not consume allowance.
type QuotaUsage struct {
	AccountID uuid.UUID
	Date      time.Time
	Sent      int
	Failed    int
	Remaining int
	UpdatedAt time.Time
}

type EmailStatus string

const (
	StatusQueued     EmailStatus = "QUEUED"
	StatusProcessing EmailStatus = "PROCESSING"
	StatusSent       EmailStatus = "SENT"
	StatusFailed     EmailStatus = "FAILED"
	StatusRejected   EmailStatus = "REJECTED"
	StatusRequeued   EmailStatus = "REQUEUED"
)

// Terminal reports whether a status ends the lifecycle of a send request.
func (s EmailStatus) Terminal() bool {
	switch s {
	case StatusSent, StatusFailed, StatusRejected:
		return true
	}
	return false
}

// EmailLog is the durable audit trail of one send request attempt cycle.
// It is created when the pipeline picks the message up and updated in place
// on every transition.
type EmailLog struct {
	ID               uuid.UUID
	EventID          uuid.UUID
	TenantID         uuid.UUID
	UserID           uuid.UUID
	FromAddress      string
	ToAddress        string
	Subject          string
	Status           EmailStatus
	StatusDetails    string
	ProviderResponse string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// LogUpdate carries the optional fields of a status update. Empty fields
// leave the stored value untouched.
type LogUpdate struct {
	Details          string
	FromAddress      string
	ProviderResponse string
}
