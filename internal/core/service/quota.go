package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/uddugarg/email-microservice/internal/core/domain"
	"github.com/uddugarg/email-microservice/internal/core/port"
)

const (
	quotaDeniedReason = "error checking quota"

	// warmupWindowDays is how much usage history a stage advancement looks at.
	warmupWindowDays = 7
	// warmupAdvanceThresholdPct: an account must have sent at least this
	// share of its cumulative allowance over the window to advance.
	warmupAdvanceThresholdPct = 80
)

type QuotaService struct {
	accounts port.AccountStore
	usage    port.QuotaStore
	// now is swappable for tests
	now func() time.Time
}

func NewQuotaService(accounts port.AccountStore, usage port.QuotaStore) *QuotaService {
	return &QuotaService{
		accounts: accounts,
		usage:    usage,
		now:      time.Now,
	}
}

// CheckQuota loads (or lazily creates) today's usage row and decides
// admission. Any store failure denies: sending must never bypass quota
// accounting on infrastructure failure.
func (s *QuotaService) CheckQuota(ctx context.Context, accountID uuid.UUID) domain.QuotaDecision {
	account, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		log.WithError(err).WithField("accountID", accountID).Error("Quota check failed loading account")
		return domain.QuotaDecision{Allowed: false, Reason: quotaDeniedReason}
	}

	usage, err := s.loadOrInitUsage(ctx, account, s.today())
	if err != nil {
		log.WithError(err).WithField("accountID", accountID).Error("Quota check failed loading usage")
		return domain.QuotaDecision{Allowed: false, Reason: quotaDeniedReason}
	}

	if usage.Remaining <= 0 {
		return domain.QuotaDecision{Allowed: false, Reason: "daily quota exhausted"}
	}
	return domain.QuotaDecision{Allowed: true}
}

// RecordOutcome books one terminal delivery outcome against today's row.
// Success consumes allowance; failure only counts, since no mail left.
func (s *QuotaService) RecordOutcome(ctx context.Context, accountID uuid.UUID, success bool) error {
	date := s.today()
	if success {
		return s.usage.RecordSuccess(ctx, accountID, date)
	}
	return s.usage.RecordFailure(ctx, accountID, date)
}

// AdvanceWarmupStage bumps the stage by one when the trailing week's sent
// volume reaches the advancement threshold. The stage saturates at the
// first stage whose allowance hits MaxLimit and never regresses.
func (s *QuotaService) AdvanceWarmupStage(ctx context.Context, accountID uuid.UUID) (bool, error) {
	account, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		return false, fmt.Errorf("failed to load account: %w", err)
	}
	if account.Status != domain.AccountWarmingUp {
		return false, nil
	}
	if account.Quota.CurrentStage >= maxStage(account.Quota) {
		return false, nil
	}

	to := s.today()
	from := to.AddDate(0, 0, -(warmupWindowDays - 1))
	history, err := s.usage.UsageHistory(ctx, accountID, from, to)
	if err != nil {
		return false, fmt.Errorf("failed to load usage history: %w", err)
	}

	var sent, allowance int
	for _, u := range history {
		sent += u.Sent
		allowance += u.Sent + u.Remaining
	}
	if allowance == 0 || sent*100 < allowance*warmupAdvanceThresholdPct {
		return false, nil
	}

	next := account.Quota.CurrentStage + 1
	if err := s.accounts.UpdateWarmupStage(ctx, accountID, next); err != nil {
		return false, fmt.Errorf("failed to advance warmup stage: %w", err)
	}

	log.WithFields(log.Fields{
		"accountID": accountID,
		"stage":     next,
		"sent":      sent,
		"allowance": allowance,
	}).Info("Warmup stage advanced")
	return true, nil
}

func (s *QuotaService) loadOrInitUsage(ctx context.Context, account *domain.Account, date time.Time) (*domain.QuotaUsage, error) {
	usage, err := s.usage.GetUsage(ctx, account.ID, date)
	if err == nil {
		return usage, nil
	}
	if !errors.Is(err, domain.ErrUsageNotFound) {
		return nil, err
	}

	// First check of the day: seed the row with the computed allowance.
	// The insert is conflict-free under concurrent consumers, then re-read
	// so everyone observes the winner.
	seed := &domain.QuotaUsage{
		AccountID: account.ID,
		Date:      date,
		Remaining: DailyAllowance(account),
	}
	if err := s.usage.CreateUsage(ctx, seed); err != nil {
		return nil, err
	}
	return s.usage.GetUsage(ctx, account.ID, date)
}

func (s *QuotaService) today() time.Time {
	y, m, d := s.now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DailyAllowance computes the account's sending allowance for one day:
// nothing while inactive, the full cap once active, and a stage-ramped
// value during warmup.
func DailyAllowance(account *domain.Account) int {
	q := account.Quota
	switch account.Status {
	case domain.AccountInactive:
		return 0
	case domain.AccountActive:
		return q.MaxLimit
	default:
		allowance := q.DailyLimit + q.WarmupStep*(q.CurrentStage-1)
		if allowance > q.MaxLimit {
			return q.MaxLimit
		}
		return allowance
	}
}

// maxStage is the first stage whose warmup allowance reaches MaxLimit.
func maxStage(q domain.QuotaSettings) int {
	if q.WarmupStep <= 0 || q.DailyLimit >= q.MaxLimit {
		return 1
	}
	steps := (q.MaxLimit - q.DailyLimit + q.WarmupStep - 1) / q.WarmupStep
	return steps + 1
}
