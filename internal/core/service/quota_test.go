package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/uddugarg/email-microservice/internal/core/domain"
	"github.com/uddugarg/email-microservice/mocks"
)

type QuotaServiceTestSuite struct {
	suite.Suite
	accounts *mocks.AccountStore
	usage    *mocks.QuotaStore
	svc      *QuotaService
	today    time.Time
}

func (s *QuotaServiceTestSuite) SetupTest() {
	s.accounts = mocks.NewAccountStore(s.T())
	s.usage = mocks.NewQuotaStore(s.T())
	s.svc = NewQuotaService(s.accounts, s.usage)
	s.svc.now = func() time.Time {
		return time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	}
	s.today = time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
}

func TestQuotaServiceTestSuite(t *testing.T) {
	suite.Run(t, new(QuotaServiceTestSuite))
}

func (s *QuotaServiceTestSuite) warmupAccount(stage int) *domain.Account {
	return &domain.Account{
		ID:     uuid.New(),
		Status: domain.AccountWarmingUp,
		Quota: domain.QuotaSettings{
			DailyLimit:   50,
			WarmupStep:   10,
			MaxLimit:     500,
			CurrentStage: stage,
		},
	}
}

func (s *QuotaServiceTestSuite) TestCheckQuotaAllowed() {
	account := s.warmupAccount(1)
	s.accounts.EXPECT().GetByID(mock.Anything, account.ID).Return(account, nil)
	s.usage.EXPECT().GetUsage(mock.Anything, account.ID, s.today).
		Return(&domain.QuotaUsage{AccountID: account.ID, Date: s.today, Sent: 38, Remaining: 12}, nil)

	dec := s.svc.CheckQuota(context.Background(), account.ID)

	s.True(dec.Allowed)
	s.Empty(dec.Reason)
}

func (s *QuotaServiceTestSuite) TestCheckQuotaSeedsFirstUsageOfDay() {
	account := s.warmupAccount(1)
	s.accounts.EXPECT().GetByID(mock.Anything, account.ID).Return(account, nil)
	s.usage.EXPECT().GetUsage(mock.Anything, account.ID, s.today).
		Return(nil, domain.ErrUsageNotFound).Once()
	s.usage.EXPECT().CreateUsage(mock.Anything, mock.MatchedBy(func(u *domain.QuotaUsage) bool {
		return u.AccountID == account.ID && u.Date.Equal(s.today) && u.Remaining == 50
	})).Return(nil)
	s.usage.EXPECT().GetUsage(mock.Anything, account.ID, s.today).
		Return(&domain.QuotaUsage{AccountID: account.ID, Date: s.today, Remaining: 50}, nil).Once()

	dec := s.svc.CheckQuota(context.Background(), account.ID)

	s.True(dec.Allowed)
}

func (s *QuotaServiceTestSuite) TestCheckQuotaDeniedWhenExhausted() {
	account := s.warmupAccount(1)
	s.accounts.EXPECT().GetByID(mock.Anything, account.ID).Return(account, nil)
	s.usage.EXPECT().GetUsage(mock.Anything, account.ID, s.today).
		Return(&domain.QuotaUsage{AccountID: account.ID, Date: s.today, Sent: 50, Remaining: 0}, nil)

	dec := s.svc.CheckQuota(context.Background(), account.ID)

	s.False(dec.Allowed)
	s.Equal("daily quota exhausted", dec.Reason)
}

func (s *QuotaServiceTestSuite) TestCheckQuotaDeniedForInactiveAccount() {
	account := s.warmupAccount(1)
	account.Status = domain.AccountInactive
	s.accounts.EXPECT().GetByID(mock.Anything, account.ID).Return(account, nil)
	s.usage.EXPECT().GetUsage(mock.Anything, account.ID, s.today).
		Return(nil, domain.ErrUsageNotFound).Once()
	s.usage.EXPECT().CreateUsage(mock.Anything, mock.MatchedBy(func(u *domain.QuotaUsage) bool {
		return u.Remaining == 0
	})).Return(nil)
	s.usage.EXPECT().GetUsage(mock.Anything, account.ID, s.today).
		Return(&domain.QuotaUsage{AccountID: account.ID, Date: s.today, Remaining: 0}, nil).Once()

	dec := s.svc.CheckQuota(context.Background(), account.ID)

	s.False(dec.Allowed)
	s.Equal("daily quota exhausted", dec.Reason)
}

func (s *QuotaServiceTestSuite) TestCheckQuotaFailsClosedOnAccountError() {
	accountID := uuid.New()
	s.accounts.EXPECT().GetByID(mock.Anything, accountID).Return(nil, errors.New("connection refused"))

	dec := s.svc.CheckQuota(context.Background(), accountID)

	s.False(dec.Allowed)
	s.Equal("error checking quota", dec.Reason)
}

func (s *QuotaServiceTestSuite) TestCheckQuotaFailsClosedOnUsageError() {
	account := s.warmupAccount(1)
	s.accounts.EXPECT().GetByID(mock.Anything, account.ID).Return(account, nil)
	s.usage.EXPECT().GetUsage(mock.Anything, account.ID, s.today).
		Return(nil, errors.New("connection refused"))

	dec := s.svc.CheckQuota(context.Background(), account.ID)

	s.False(dec.Allowed)
	s.Equal("error checking quota", dec.Reason)
}

func (s *QuotaServiceTestSuite) TestRecordOutcomeSuccess() {
	accountID := uuid.New()
	s.usage.EXPECT().RecordSuccess(mock.Anything, accountID, s.today).Return(nil)

	s.NoError(s.svc.RecordOutcome(context.Background(), accountID, true))
}

func (s *QuotaServiceTestSuite) TestRecordOutcomeFailure() {
	accountID := uuid.New()
	s.usage.EXPECT().RecordFailure(mock.Anything, accountID, s.today).Return(nil)

	s.NoError(s.svc.RecordOutcome(context.Background(), accountID, false))
}

func (s *QuotaServiceTestSuite) TestAdvanceWarmupStageAtThreshold() {
	account := s.warmupAccount(1)
	from := s.today.AddDate(0, 0, -6)
	s.accounts.EXPECT().GetByID(mock.Anything, account.ID).Return(account, nil)
	s.usage.EXPECT().UsageHistory(mock.Anything, account.ID, from, s.today).Return([]domain.QuotaUsage{
		{Sent: 40, Remaining: 10},
		{Sent: 40, Remaining: 10},
	}, nil)
	s.accounts.EXPECT().UpdateWarmupStage(mock.Anything, account.ID, 2).Return(nil)

	advanced, err := s.svc.AdvanceWarmupStage(context.Background(), account.ID)

	s.NoError(err)
	s.True(advanced)
}

func (s *QuotaServiceTestSuite) TestAdvanceWarmupStageBelowThreshold() {
	account := s.warmupAccount(1)
	from := s.today.AddDate(0, 0, -6)
	s.accounts.EXPECT().GetByID(mock.Anything, account.ID).Return(account, nil)
	s.usage.EXPECT().UsageHistory(mock.Anything, account.ID, from, s.today).Return([]domain.QuotaUsage{
		{Sent: 39, Remaining: 11},
		{Sent: 40, Remaining: 10},
	}, nil)

	advanced, err := s.svc.AdvanceWarmupStage(context.Background(), account.ID)

	s.NoError(err)
	s.False(advanced)
}

func (s *QuotaServiceTestSuite) TestAdvanceWarmupStageSkipsEmptyHistory() {
	account := s.warmupAccount(1)
	from := s.today.AddDate(0, 0, -6)
	s.accounts.EXPECT().GetByID(mock.Anything, account.ID).Return(account, nil)
	s.usage.EXPECT().UsageHistory(mock.Anything, account.ID, from, s.today).Return(nil, nil)

	advanced, err := s.svc.AdvanceWarmupStage(context.Background(), account.ID)

	s.NoError(err)
	s.False(advanced)
}

func (s *QuotaServiceTestSuite) TestAdvanceWarmupStageIgnoresActiveAccount() {
	account := s.warmupAccount(1)
	account.Status = domain.AccountActive
	s.accounts.EXPECT().GetByID(mock.Anything, account.ID).Return(account, nil)

	advanced, err := s.svc.AdvanceWarmupStage(context.Background(), account.ID)

	s.NoError(err)
	s.False(advanced)
}

func (s *QuotaServiceTestSuite) TestAdvanceWarmupStageSaturates() {
	// Stage 46 is the first stage whose allowance reaches MaxLimit for
	// dailyLimit=50, step=10, max=500.
	account := s.warmupAccount(46)
	s.accounts.EXPECT().GetByID(mock.Anything, account.ID).Return(account, nil)

	advanced, err := s.svc.AdvanceWarmupStage(context.Background(), account.ID)

	s.NoError(err)
	s.False(advanced)
}

func (s *QuotaServiceTestSuite) TestAdvanceWarmupStagePropagatesUpdateError() {
	account := s.warmupAccount(1)
	from := s.today.AddDate(0, 0, -6)
	s.accounts.EXPECT().GetByID(mock.Anything, account.ID).Return(account, nil)
	s.usage.EXPECT().UsageHistory(mock.Anything, account.ID, from, s.today).Return([]domain.QuotaUsage{
		{Sent: 50, Remaining: 0},
	}, nil)
	s.accounts.EXPECT().UpdateWarmupStage(mock.Anything, account.ID, 2).Return(errors.New("connection refused"))

	advanced, err := s.svc.AdvanceWarmupStage(context.Background(), account.ID)

	s.Error(err)
	s.False(advanced)
}

func TestDailyAllowance(t *testing.T) {
	tests := []struct {
		name     string
		status   domain.AccountStatus
		stage    int
		expected int
	}{
		{"inactive sends nothing", domain.AccountInactive, 3, 0},
		{"active gets the full cap", domain.AccountActive, 1, 500},
		{"warmup stage one starts at the daily limit", domain.AccountWarmingUp, 1, 50},
		{"warmup ramps by step per stage", domain.AccountWarmingUp, 4, 80},
		{"warmup allowance caps at the max limit", domain.AccountWarmingUp, 100, 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			account := &domain.Account{
				Status: tt.status,
				Quota: domain.QuotaSettings{
					DailyLimit:   50,
					WarmupStep:   10,
					MaxLimit:     500,
					CurrentStage: tt.stage,
				},
			}
			if got := DailyAllowance(account); got != tt.expected {
				t.Errorf("DailyAllowance() = %d, want %d", got, tt.expected)
			}
		})
	}
}
