package port

import (
	"context"
	"time"

	"github.com/uddugarg/email-microservice/internal/core/domain"
)

// Message is a broker-agnostic handle on one delivered queue message.
// Receipt holds the broker-specific acknowledgment token and is only
// touched by the Queue implementation that produced it.
type Message struct {
	ID      string
	Topic   string
	Body    []byte
	Receipt any
}

type MessageHandler interface {
	Handle(ctx context.Context, msg *Message)
}

// Queue is the durable broker abstraction. Delivery is at-least-once:
// handlers must tolerate redelivery after a crash or nack.
type Queue interface {
	// Initialize declares the broker topology. Idempotent.
	Initialize(ctx context.Context) error
	Publish(ctx context.Context, topic string, message any) error
	Subscribe(ctx context.Context, topic string, handler MessageHandler) error
	Ack(ctx context.Context, msg *Message) error
	// Nack with requeue=false routes the message to the dead-letter path.
	// With requeue=true and no delay the message becomes immediately
	// re-deliverable. With a delay the message is re-published to a delay
	// path and the original removed; delays are clamped to the broker's
	// maximum single-delay window, so longer waits must be re-derived on
	// each redelivery.
	Nack(ctx context.Context, msg *Message, requeue bool, delay time.Duration) error
}

// EmailProvider is the transport collaborator. Implementations enforce
// their own call timeouts and surface them as TIMEOUT results.
type EmailProvider interface {
	Initialize(ctx context.Context, credentials domain.Credentials) error
	SendEmail(ctx context.Context, from string, req *domain.SendRequest) (*domain.ProviderResult, error)
	ValidateCredentials(ctx context.Context) (bool, error)
	// SupportsRefresh reports whether RefreshCredentials is implemented.
	SupportsRefresh() bool
	RefreshCredentials(ctx context.Context) (domain.Credentials, error)
}

// ProviderFactory builds a provider for an account's stored kind.
type ProviderFactory interface {
	For(account *domain.Account) (EmailProvider, error)
}
