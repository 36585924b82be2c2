package amqp

import (
	"context"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	log "github.com/sirupsen/logrus"

	"github.com/uddugarg/email-microservice/internal/core/domain"
	"github.com/uddugarg/email-microservice/internal/core/port"
)

// MaxPublishDelay is the longest single-delay window this binding will
// schedule through the wait queue. Callers needing longer deferrals
// (the 1h quota backoff) re-derive the delay on each redelivery.
const MaxPublishDelay = 15 * time.Minute

// Queue is the RabbitMQ binding of the queue port. Topics map one-to-one
// onto durable queues bound to the email exchange under the same name.
type Queue struct {
	client    *Client
	publisher *Publisher
	topology  *TopologyManager
	prefetch  int
}

func NewQueue(client *Client, prefetch int) *Queue {
	return &Queue{
		client:    client,
		publisher: NewPublisher(client),
		topology:  NewTopologyManager(client),
		prefetch:  prefetch,
	}
}

// Initialize declares the exchange, work, wait, and dead-letter queues.
func (q *Queue) Initialize(ctx context.Context) error {
	return q.topology.Setup()
}

func (q *Queue) Publish(ctx context.Context, topic string, message any) error {
	return q.publisher.Publish(ctx, domain.EmailExchange, topic, message)
}

func (q *Queue) Subscribe(ctx context.Context, topic string, handler port.MessageHandler) error {
	consumer := NewConsumer(q.client, handler, q.prefetch)
	return consumer.Consume(ctx, topic)
}

func (q *Queue) Ack(ctx context.Context, msg *port.Message) error {
	delivery, err := q.receipt(msg)
	if err != nil {
		return err
	}
	return q.client.withChannel(func(ch *amqp.Channel) error {
		return ch.Ack(delivery.DeliveryTag, false)
	})
}

// Nack settles a message negatively. requeue=false dead-letters it.
// requeue=true without delay makes it immediately re-deliverable. With a
// delay the current body is re-published onto the wait queue with a
// per-message TTL (clamped to MaxPublishDelay) and the original acked, so
// the redelivered message carries whatever retry state the handler wrote
// into msg.Body.
func (q *Queue) Nack(ctx context.Context, msg *port.Message, requeue bool, delay time.Duration) error {
	delivery, err := q.receipt(msg)
	if err != nil {
		return err
	}

	if !requeue || delay <= 0 {
		return q.client.withChannel(func(ch *amqp.Channel) error {
			return ch.Nack(delivery.DeliveryTag, false, requeue)
		})
	}

	if delay > MaxPublishDelay {
		log.WithFields(log.Fields{
			"requested": delay.String(),
			"clamped":   MaxPublishDelay.String(),
		}).Debug("Clamping redelivery delay to broker window")
		delay = MaxPublishDelay
	}

	// Publish to the wait queue through the default exchange, then remove
	// the original. Publish-first keeps the at-least-once guarantee: a
	// crash in between yields a duplicate, never a loss.
	if err := q.publisher.PublishBytes(ctx, "", domain.TopicOutboundWait, msg.Body, delay); err != nil {
		return fmt.Errorf("failed to schedule delayed redelivery: %w", err)
	}
	return q.client.withChannel(func(ch *amqp.Channel) error {
		return ch.Ack(delivery.DeliveryTag, false)
	})
}

func (q *Queue) receipt(msg *port.Message) (*amqp.Delivery, error) {
	delivery, ok := msg.Receipt.(*amqp.Delivery)
	if !ok {
		return nil, fmt.Errorf("message receipt is not an AMQP delivery")
	}
	return delivery, nil
}
