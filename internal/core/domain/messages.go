package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	EmailExchange = "email"

	// Topic names double as queue names and routing keys on the email
	// exchange. The wait queue holds delayed redeliveries, the dlq holds
	// abandoned messages.
	TopicEmailOutbound = "email.outbound"
	TopicOutboundWait  = "email.outbound.wait"
	TopicOutboundDLQ   = "email.outbound.dlq"
)

// MaxRetries is the shared retry budget for provider failures and
// unexpected processing errors. Quota deferrals do not consume it.
const MaxRetries = 3

type Attachment struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	Content     []byte `json:"content"`
}

type EmailMetadata struct {
	Priority    string       `json:"priority,omitempty"`
	CC          []string     `json:"cc,omitempty"`
	BCC         []string     `json:"bcc,omitempty"`
	ReplyTo     string       `json:"reply_to,omitempty"`
	Attachments []Attachment `json:"attachments,omitempty"`
}

// SendRequest is the queue message for one email intent. RetryCount rides
// on the message itself so any consumer can re-derive backoff without a
// separate retry store.
type SendRequest struct {
	ID         uuid.UUID     `json:"id" validate:"required"`
	TenantID   uuid.UUID     `json:"tenant_id" validate:"required"`
	UserID     uuid.UUID     `json:"user_id" validate:"required"`
	To         string        `json:"to,omitempty"`
	Subject    string        `json:"subject"`
	Body       string        `json:"body"`
	Metadata   EmailMetadata `json:"metadata,omitempty"`
	RetryCount int           `json:"retry_count" validate:"gte=0"`
	EnqueuedAt time.Time     `json:"enqueued_at"`
}

// ProviderErrorCode is the closed vocabulary providers must map their
// failures onto. Retry classification depends on exactly this set.
type ProviderErrorCode string

const (
	ErrCodeRateLimit    ProviderErrorCode = "RATE_LIMIT_EXCEEDED"
	ErrCodeTemporary    ProviderErrorCode = "TEMPORARY_ERROR"
	ErrCodeConnection   ProviderErrorCode = "CONNECTION_ERROR"
	ErrCodeTimeout      ProviderErrorCode = "TIMEOUT"
	ErrCodeServer       ProviderErrorCode = "SERVER_ERROR"
	ErrCodeUnauthorized ProviderErrorCode = "UNAUTHORIZED"
	ErrCodeForbidden    ProviderErrorCode = "FORBIDDEN"
	ErrCodeNotFound     ProviderErrorCode = "NOT_FOUND"
	ErrCodeUnknown      ProviderErrorCode = "UNKNOWN_ERROR"
)

// Temporary reports whether a code is worth retrying under the budget.
func (c ProviderErrorCode) Temporary() bool {
	switch c {
	case ErrCodeRateLimit, ErrCodeTemporary, ErrCodeConnection, ErrCodeTimeout, ErrCodeServer:
		return true
	}
	return false
}

type ProviderError struct {
	Code    ProviderErrorCode `json:"code"`
	Message string            `json:"message"`
}

// ProviderResult is the outcome of one dispatch attempt.
type ProviderResult struct {
	Success     bool           `json:"success"`
	MessageID   string         `json:"message_id,omitempty"`
	Err         *ProviderError `json:"error,omitempty"`
	RawResponse string         `json:"raw_response,omitempty"`
}

// QuotaDecision is the admission verdict for one account.
type QuotaDecision struct {
	Allowed bool
	Reason  string
}

// DeliveryDecision is the terminal queue action for one processing attempt.
// Requeue carries the (possibly retry-incremented) request to re-publish
// after Delay; otherwise the message is acked.
type DeliveryDecision struct {
	Requeue bool
	Delay   time.Duration
	Request *SendRequest
}
