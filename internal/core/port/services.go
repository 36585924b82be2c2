package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/uddugarg/email-microservice/internal/core/domain"
)

type QuotaService interface {
	// CheckQuota decides admission for one account. Any store failure during
	// the check denies (fail closed); sending never bypasses accounting.
	CheckQuota(ctx context.Context, accountID uuid.UUID) domain.QuotaDecision
	RecordOutcome(ctx context.Context, accountID uuid.UUID, success bool) error
	// AdvanceWarmupStage examines the trailing week of usage and bumps the
	// stage when the account sent at least 80% of its allowance. Invoked by
	// the warmup scheduler, never by the per-message pipeline.
	AdvanceWarmupStage(ctx context.Context, accountID uuid.UUID) (bool, error)
}

type DeliveryService interface {
	Process(ctx context.Context, req *domain.SendRequest) domain.DeliveryDecision
}

// ValidationResult classifies a recipient address. Invalid is permanent:
// the pipeline rejects without retrying.
type ValidationResult struct {
	Valid  bool
	Reason string
}

type RecipientValidator interface {
	Validate(ctx context.Context, address string) ValidationResult
}
