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
	// quotaDeferDelay is how long a quota-exhausted message waits before
	// re-attempting. Not a failure: the retry budget is untouched.
	quotaDeferDelay = time.Hour

	unexpectedBackoffUnit = 30 * time.Second
)

// DeliveryPipeline drives one send request through
// QUEUED → PROCESSING → {REJECTED | REQUEUED | SENT | FAILED}.
// Every transition is written to the email log before the decision is
// returned, so the audit trail survives crashes between decision and ack.
type DeliveryPipeline struct {
	accounts  port.AccountStore
	logs      port.EmailLogStore
	quota     port.QuotaService
	validator port.RecipientValidator
	providers port.ProviderFactory
}

func NewDeliveryPipeline(
	accounts port.AccountStore,
	logs port.EmailLogStore,
	quota port.QuotaService,
	validator port.RecipientValidator,
	providers port.ProviderFactory,
) *DeliveryPipeline {
	return &DeliveryPipeline{
		accounts:  accounts,
		logs:      logs,
		quota:     quota,
		validator: validator,
		providers: providers,
	}
}

// Process runs one attempt cycle and returns the terminal queue action.
// It never panics outward; an escaped panic is folded into the generic
// retry path like any other unexpected processing error.
func (p *DeliveryPipeline) Process(ctx context.Context, req *domain.SendRequest) (decision domain.DeliveryDecision) {
	logID := p.openLog(ctx, req)

	defer func() {
		if r := recover(); r != nil {
			decision = p.unexpected(ctx, req, logID, fmt.Errorf("panic during processing: %v", r))
		}
	}()

	return p.run(ctx, req, logID)
}

func (p *DeliveryPipeline) run(ctx context.Context, req *domain.SendRequest, logID uuid.UUID) domain.DeliveryDecision {
	// 1. Recipient resolution. A resolution failure is an infrastructure
	// problem, not a verdict on the recipient, so it consumes retry budget
	// instead of rejecting.
	to := req.To
	if to == "" {
		resolved, err := p.accounts.GetUserEmail(ctx, req.TenantID, req.UserID)
		if err != nil {
			return p.unexpected(ctx, req, logID, fmt.Errorf("failed to resolve recipient: %w", err))
		}
		to = resolved
	}

	// 2. Validation short-circuits before any account or quota work.
	// Both classifications are permanent.
	if res := p.validator.Validate(ctx, to); !res.Valid {
		p.updateLog(ctx, logID, domain.StatusRejected, domain.LogUpdate{Details: res.Reason})
		return ack()
	}

	// 3. Account lookup.
	account, err := p.accounts.GetByTenantUser(ctx, req.TenantID, req.UserID)
	if errors.Is(err, domain.ErrAccountNotFound) {
		p.updateLog(ctx, logID, domain.StatusRejected, domain.LogUpdate{Details: "no sending account for user"})
		return ack()
	}
	if err != nil {
		return p.unexpected(ctx, req, logID, fmt.Errorf("failed to load account: %w", err))
	}
	if account.Status == domain.AccountInactive {
		p.updateLog(ctx, logID, domain.StatusRejected, domain.LogUpdate{Details: "sending account is inactive"})
		return ack()
	}

	// 4. Quota admission. Exhaustion is backpressure, not an error:
	// the message is deferred with its retry count untouched.
	if dec := p.quota.CheckQuota(ctx, account.ID); !dec.Allowed {
		p.updateLog(ctx, logID, domain.StatusRequeued, domain.LogUpdate{
			Details:     dec.Reason,
			FromAddress: account.SenderAddress,
		})
		return requeue(quotaDeferDelay, req)
	}

	p.updateLog(ctx, logID, domain.StatusProcessing, domain.LogUpdate{FromAddress: account.SenderAddress})

	// 5. Credential validation, with a single refresh attempt. Credential
	// failures need operator intervention, so they are never auto-retried.
	provider, err := p.providers.For(account)
	if err != nil {
		return p.unexpected(ctx, req, logID, fmt.Errorf("failed to build provider: %w", err))
	}
	if err := provider.Initialize(ctx, account.Credentials); err != nil {
		return p.unexpected(ctx, req, logID, fmt.Errorf("failed to initialize provider: %w", err))
	}

	valid, err := provider.ValidateCredentials(ctx)
	if err != nil {
		return p.unexpected(ctx, req, logID, fmt.Errorf("failed to validate credentials: %w", err))
	}
	if !valid {
		if !provider.SupportsRefresh() {
			p.updateLog(ctx, logID, domain.StatusFailed, domain.LogUpdate{Details: "invalid credentials and provider does not support refresh"})
			return ack()
		}
		creds, err := provider.RefreshCredentials(ctx)
		if err != nil {
			p.updateLog(ctx, logID, domain.StatusFailed, domain.LogUpdate{Details: fmt.Sprintf("credential refresh failed: %v", err)})
			return ack()
		}
		if err := p.accounts.UpdateCredentials(ctx, account.ID, creds); err != nil {
			return p.unexpected(ctx, req, logID, fmt.Errorf("failed to persist refreshed credentials: %w", err))
		}
		if err := provider.Initialize(ctx, creds); err != nil {
			return p.unexpected(ctx, req, logID, fmt.Errorf("failed to re-initialize provider: %w", err))
		}
		valid, err = provider.ValidateCredentials(ctx)
		if err != nil {
			return p.unexpected(ctx, req, logID, fmt.Errorf("failed to validate refreshed credentials: %w", err))
		}
		if !valid {
			p.updateLog(ctx, logID, domain.StatusFailed, domain.LogUpdate{Details: "credentials still invalid after refresh"})
			return ack()
		}
	}

	// 6. Dispatch.
	sendReq := *req
	sendReq.To = to
	result, err := provider.SendEmail(ctx, account.SenderAddress, &sendReq)
	if err != nil {
		return p.unexpected(ctx, req, logID, fmt.Errorf("provider send failed: %w", err))
	}

	if result.Success {
		// The only code path that records a successful outcome, so a sent
		// mail is booked exactly once per successful attempt.
		if err := p.quota.RecordOutcome(ctx, account.ID, true); err != nil {
			log.WithError(err).WithField("accountID", account.ID).Error("Failed to record quota success")
		}
		p.updateLog(ctx, logID, domain.StatusSent, domain.LogUpdate{
			Details:          fmt.Sprintf("delivered, provider message id %s", result.MessageID),
			ProviderResponse: result.RawResponse,
		})
		return ack()
	}

	if err := p.quota.RecordOutcome(ctx, account.ID, false); err != nil {
		log.WithError(err).WithField("accountID", account.ID).Error("Failed to record quota failure")
	}

	provErr := result.Err
	if provErr == nil {
		provErr = &domain.ProviderError{Code: domain.ErrCodeUnknown, Message: "provider reported failure without error"}
	}

	if provErr.Code.Temporary() && req.RetryCount < domain.MaxRetries {
		delay := providerBackoff(req.RetryCount)
		next := *req
		next.RetryCount++
		p.updateLog(ctx, logID, domain.StatusRequeued, domain.LogUpdate{
			Details:          fmt.Sprintf("%s: %s (retry %d in %s)", provErr.Code, provErr.Message, next.RetryCount, delay),
			ProviderResponse: result.RawResponse,
		})
		return requeue(delay, &next)
	}

	p.updateLog(ctx, logID, domain.StatusFailed, domain.LogUpdate{
		Details:          fmt.Sprintf("%s: %s", provErr.Code, provErr.Message),
		ProviderResponse: result.RawResponse,
	})
	return ack()
}

// unexpected is the shared fallback for processing errors outside the
// provider's classified vocabulary. It draws on the same retry budget as
// temporary provider failures but backs off linearly.
func (p *DeliveryPipeline) unexpected(ctx context.Context, req *domain.SendRequest, logID uuid.UUID, cause error) domain.DeliveryDecision {
	log.WithError(cause).WithFields(log.Fields{
		"eventID":    req.ID,
		"retryCount": req.RetryCount,
	}).Error("Unexpected delivery processing error")

	if req.RetryCount < domain.MaxRetries {
		delay := unexpectedBackoff(req.RetryCount)
		next := *req
		next.RetryCount++
		p.updateLog(ctx, logID, domain.StatusRequeued, domain.LogUpdate{
			Details: fmt.Sprintf("processing error: %v (retry %d in %s)", cause, next.RetryCount, delay),
		})
		return requeue(delay, &next)
	}

	p.updateLog(ctx, logID, domain.StatusFailed, domain.LogUpdate{
		Details: fmt.Sprintf("processing error after %d retries: %v", domain.MaxRetries, cause),
	})
	return ack()
}

// openLog records the QUEUED→PROCESSING entry for this attempt cycle.
// Log store failures are logged and swallowed; they never block delivery.
func (p *DeliveryPipeline) openLog(ctx context.Context, req *domain.SendRequest) uuid.UUID {
	entry := &domain.EmailLog{
		ID:        uuid.New(),
		EventID:   req.ID,
		TenantID:  req.TenantID,
		UserID:    req.UserID,
		ToAddress: req.To,
		Subject:   req.Subject,
		Status:    domain.StatusQueued,
		CreatedAt: time.Now().UTC(),
	}
	if err := p.logs.Append(ctx, entry); err != nil {
		log.WithError(err).WithField("eventID", req.ID).Error("Failed to append email log")
	}
	p.updateLog(ctx, entry.ID, domain.StatusProcessing, domain.LogUpdate{})
	return entry.ID
}

func (p *DeliveryPipeline) updateLog(ctx context.Context, logID uuid.UUID, status domain.EmailStatus, update domain.LogUpdate) {
	if err := p.logs.UpdateStatus(ctx, logID, status, update); err != nil {
		log.WithError(err).WithFields(log.Fields{
			"logID":  logID,
			"status": status,
		}).Error("Failed to update email log")
	}
}

// providerBackoff doubles per attempt: 2, 4, 8 minutes.
func providerBackoff(retryCount int) time.Duration {
	return time.Duration(1<<uint(retryCount+1)) * time.Minute
}

// unexpectedBackoff grows linearly: 30, 60, 90 seconds.
func unexpectedBackoff(retryCount int) time.Duration {
	return time.Duration(retryCount+1) * unexpectedBackoffUnit
}

func ack() domain.DeliveryDecision {
	return domain.DeliveryDecision{}
}

func requeue(delay time.Duration, req *domain.SendRequest) domain.DeliveryDecision {
	return domain.DeliveryDecision{Requeue: true, Delay: delay, Request: req}
}
