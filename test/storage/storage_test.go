package storage

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/ory/dockertest/v3"
	"github.com/stretchr/testify/suite"

	"github.com/uddugarg/email-microservice/internal/core/domain"
	"github.com/uddugarg/email-microservice/internal/storage"
	"github.com/uddugarg/email-microservice/test"
)

// Fixture identifiers from sql/fixtures.sql.
var (
	fixtureTenantID      = uuid.MustParse("20000000-0000-0000-0000-000000000001")
	fixtureAliceUserID   = uuid.MustParse("10000000-0000-0000-0000-000000000001")
	fixtureBobUserID     = uuid.MustParse("10000000-0000-0000-0000-000000000002")
	fixtureWarmupAccount = uuid.MustParse("30000000-0000-0000-0000-000000000001")
	fixtureActiveAccount = uuid.MustParse("30000000-0000-0000-0000-000000000002")
)

func TestStorage(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

type StorageSuite struct {
	suite.Suite
	dockerPool       *dockertest.Pool
	postgresResource *dockertest.Resource
	postgresDB       *sql.DB

	accounts *storage.AccountsStorage
	quota    *storage.QuotaStorage
	logs     *storage.EmailLogsStorage
}

func (suite *StorageSuite) SetupSuite() {
	pool, err := dockertest.NewPool("")
	if err != nil {
		suite.T().Fatalf("Could not connect to docker: %s", err)
	}
	suite.dockerPool = pool
	db, port, postgresResource := test.SetupPostgresDB(suite.T(), pool)
	suite.postgresDB = db
	suite.postgresResource = postgresResource

	if !suite.T().Failed() {
		ctx := context.Background()
		postgresDB, err := storage.NewPostgresDB(ctx, test.PostgresHost, port, test.PostgresUser, test.PostgresPassword, test.PostgresDB)
		if err != nil {
			suite.T().Fatalf("Failed to connect to database: %v", err)
		}

		suite.accounts = storage.NewAccountsStorage(postgresDB)
		suite.quota = storage.NewQuotaStorage(postgresDB)
		suite.logs = storage.NewEmailLogsStorage(postgresDB)
	}
}

func (suite *StorageSuite) SetupTest() {
	test.ExecFile(suite.T(), suite.postgresDB, "../../sql/create_tables.sql")
	test.ExecFile(suite.T(), suite.postgresDB, "../../sql/fixtures.sql")

	if suite.T().Failed() {
		suite.TearDownSuite()
		suite.T().FailNow()
	}
}

func (suite *StorageSuite) TearDownSuite() {
	if suite.postgresDB != nil {
		_ = suite.postgresDB.Close()
	}
	if suite.dockerPool != nil {
		if suite.postgresResource != nil {
			_ = suite.dockerPool.Purge(suite.postgresResource)
		}
	}
}

func (suite *StorageSuite) today() time.Time {
	y, m, d := time.Now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (suite *StorageSuite) TestGetByTenantUser_OK() {
	ctx := context.Background()
	account, err := suite.accounts.GetByTenantUser(ctx, fixtureTenantID, fixtureAliceUserID)

	suite.NoError(err)
	suite.Equal(fixtureWarmupAccount, account.ID)
	suite.Equal(domain.ProviderSMTP, account.Provider)
	suite.Equal(domain.AccountWarmingUp, account.Status)
	suite.Equal(50, account.Quota.DailyLimit)
	suite.Equal("smtp.example.com", account.Credentials["host"])
}

func (suite *StorageSuite) TestGetByID_NotFound() {
	ctx := context.Background()
	_, err := suite.accounts.GetByID(ctx, uuid.New())

	suite.ErrorIs(err, domain.ErrAccountNotFound)
}

func (suite *StorageSuite) TestSave_UpsertsExistingBinding() {
	ctx := context.Background()
	account := &domain.Account{
		ID:            uuid.New(),
		TenantID:      fixtureTenantID,
		UserID:        fixtureAliceUserID,
		Provider:      domain.ProviderSMTP,
		SenderAddress: "alice.new@example.com",
		Credentials:   domain.Credentials{"host": "smtp2.example.com", "username": "alice"},
		Quota:         domain.QuotaSettings{DailyLimit: 60, WarmupStep: 10, MaxLimit: 500, CurrentStage: 1},
		Status:        domain.AccountWarmingUp,
	}

	suite.NoError(suite.accounts.Save(ctx, account))

	// The conflict target keeps the original row and id.
	saved, err := suite.accounts.GetByID(ctx, fixtureWarmupAccount)
	suite.NoError(err)
	suite.Equal("alice.new@example.com", saved.SenderAddress)
	suite.Equal(60, saved.Quota.DailyLimit)
	suite.Equal("smtp2.example.com", saved.Credentials["host"])
}

func (suite *StorageSuite) TestUpdateWarmupStage_NeverRegresses() {
	ctx := context.Background()

	suite.NoError(suite.accounts.UpdateWarmupStage(ctx, fixtureWarmupAccount, 3))
	account, err := suite.accounts.GetByID(ctx, fixtureWarmupAccount)
	suite.NoError(err)
	suite.Equal(3, account.Quota.CurrentStage)

	suite.NoError(suite.accounts.UpdateWarmupStage(ctx, fixtureWarmupAccount, 2))
	account, err = suite.accounts.GetByID(ctx, fixtureWarmupAccount)
	suite.NoError(err)
	suite.Equal(3, account.Quota.CurrentStage)
}

func (suite *StorageSuite) TestListByStatus_OK() {
	ctx := context.Background()
	warming, err := suite.accounts.ListByStatus(ctx, domain.AccountWarmingUp)

	suite.NoError(err)
	suite.Len(warming, 1)
	suite.Equal(fixtureWarmupAccount, warming[0].ID)
}

func (suite *StorageSuite) TestGetUserEmail_OK() {
	ctx := context.Background()
	email, err := suite.accounts.GetUserEmail(ctx, fixtureTenantID, fixtureAliceUserID)

	suite.NoError(err)
	suite.Equal("alice@example.com", email)
}

func (suite *StorageSuite) TestGetUserEmail_NotFound() {
	ctx := context.Background()
	_, err := suite.accounts.GetUserEmail(ctx, fixtureTenantID, uuid.New())

	suite.ErrorIs(err, domain.ErrUserNotFound)
}

func (suite *StorageSuite) TestCreateUsage_KeepsFirstWriter() {
	ctx := context.Background()
	date := suite.today()

	suite.NoError(suite.quota.CreateUsage(ctx, &domain.QuotaUsage{
		AccountID: fixtureWarmupAccount, Date: date, Remaining: 50,
	}))
	suite.NoError(suite.quota.CreateUsage(ctx, &domain.QuotaUsage{
		AccountID: fixtureWarmupAccount, Date: date, Remaining: 99,
	}))

	usage, err := suite.quota.GetUsage(ctx, fixtureWarmupAccount, date)
	suite.NoError(err)
	suite.Equal(50, usage.Remaining)
}

func (suite *StorageSuite) TestGetUsage_NotFound() {
	ctx := context.Background()
	_, err := suite.quota.GetUsage(ctx, fixtureActiveAccount, suite.today())

	suite.ErrorIs(err, domain.ErrUsageNotFound)
}

func (suite *StorageSuite) TestRecordSuccess_FloorsRemainingAtZero() {
	ctx := context.Background()
	date := suite.today()
	suite.NoError(suite.quota.CreateUsage(ctx, &domain.QuotaUsage{
		AccountID: fixtureWarmupAccount, Date: date, Remaining: 1,
	}))

	suite.NoError(suite.quota.RecordSuccess(ctx, fixtureWarmupAccount, date))
	suite.NoError(suite.quota.RecordSuccess(ctx, fixtureWarmupAccount, date))

	usage, err := suite.quota.GetUsage(ctx, fixtureWarmupAccount, date)
	suite.NoError(err)
	suite.Equal(2, usage.Sent)
	suite.Equal(0, usage.Remaining)
}

func (suite *StorageSuite) TestRecordFailure_DoesNotConsumeAllowance() {
	ctx := context.Background()
	date := suite.today()
	suite.NoError(suite.quota.CreateUsage(ctx, &domain.QuotaUsage{
		AccountID: fixtureWarmupAccount, Date: date, Remaining: 5,
	}))

	suite.NoError(suite.quota.RecordFailure(ctx, fixtureWarmupAccount, date))

	usage, err := suite.quota.GetUsage(ctx, fixtureWarmupAccount, date)
	suite.NoError(err)
	suite.Equal(1, usage.Failed)
	suite.Equal(5, usage.Remaining)
}

func (suite *StorageSuite) TestUsageHistory_OrderedWindow() {
	ctx := context.Background()
	today := suite.today()
	for i := 0; i < 3; i++ {
		suite.NoError(suite.quota.CreateUsage(ctx, &domain.QuotaUsage{
			AccountID: fixtureWarmupAccount,
			Date:      today.AddDate(0, 0, -i),
			Sent:      10 * i,
			Remaining: 50 - 10*i,
		}))
	}

	history, err := suite.quota.UsageHistory(ctx, fixtureWarmupAccount, today.AddDate(0, 0, -1), today)

	suite.NoError(err)
	suite.Len(history, 2)
	suite.Equal(10, history[0].Sent)
	suite.Equal(0, history[1].Sent)
}

func (suite *StorageSuite) TestUpdateStatus_TerminalIsSticky() {
	ctx := context.Background()
	entry := &domain.EmailLog{
		ID:        uuid.New(),
		EventID:   uuid.New(),
		TenantID:  fixtureTenantID,
		UserID:    fixtureAliceUserID,
		ToAddress: "recipient@example.com",
		Subject:   "hello",
		Status:    domain.StatusQueued,
	}
	suite.NoError(suite.logs.Append(ctx, entry))

	suite.NoError(suite.logs.UpdateStatus(ctx, entry.ID, domain.StatusSent, domain.LogUpdate{Details: "delivered"}))
	// A redelivered attempt must not reopen a finished request.
	suite.NoError(suite.logs.UpdateStatus(ctx, entry.ID, domain.StatusRequeued, domain.LogUpdate{Details: "retrying"}))

	logs, err := suite.logs.GetByEventID(ctx, entry.EventID)
	suite.NoError(err)
	suite.Len(logs, 1)
	suite.Equal(domain.StatusSent, logs[0].Status)
	suite.Equal("delivered", logs[0].StatusDetails)
}

func (suite *StorageSuite) TestUpdateStatus_EmptyFieldsKeepStoredValues() {
	ctx := context.Background()
	entry := &domain.EmailLog{
		ID:        uuid.New(),
		EventID:   uuid.New(),
		TenantID:  fixtureTenantID,
		UserID:    fixtureBobUserID,
		ToAddress: "recipient@example.com",
		Subject:   "hello",
		Status:    domain.StatusQueued,
	}
	suite.NoError(suite.logs.Append(ctx, entry))

	suite.NoError(suite.logs.UpdateStatus(ctx, entry.ID, domain.StatusProcessing, domain.LogUpdate{FromAddress: "bob@example.com"}))
	suite.NoError(suite.logs.UpdateStatus(ctx, entry.ID, domain.StatusRequeued, domain.LogUpdate{Details: "daily quota exhausted"}))

	logs, err := suite.logs.GetByEventID(ctx, entry.EventID)
	suite.NoError(err)
	suite.Len(logs, 1)
	suite.Equal(domain.StatusRequeued, logs[0].Status)
	suite.Equal("bob@example.com", logs[0].FromAddress)
	suite.Equal("daily quota exhausted", logs[0].StatusDetails)
}

func (suite *StorageSuite) TestListByTenantUser_AppliesDefaultLimit() {
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		suite.NoError(suite.logs.Append(ctx, &domain.EmailLog{
			ID:       uuid.New(),
			EventID:  uuid.New(),
			TenantID: fixtureTenantID,
			UserID:   fixtureAliceUserID,
			Subject:  "hello",
			Status:   domain.StatusQueued,
		}))
	}

	logs, err := suite.logs.ListByTenantUser(ctx, fixtureTenantID, fixtureAliceUserID, 0, 0)

	suite.NoError(err)
	suite.Len(logs, 3)
}
