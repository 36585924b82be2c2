package amqp

import (
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	log "github.com/sirupsen/logrus"

	"github.com/uddugarg/email-microservice/internal/core/domain"
)

// TopologyManager declares the exchanges, queues, and bindings for the
// outbound delivery pipeline:
//
//	email.outbound      main work queue, dead-letters to email.outbound.dlq
//	email.outbound.wait delay queue; expired messages re-enter email.outbound
//	email.outbound.dlq  terminal parking for abandoned messages
//
// Delayed redelivery relies on per-message TTLs on the wait queue, so all
// delays published there are clamped to MaxPublishDelay to keep expiry
// ordering sane (RabbitMQ only expires from the queue head).
type TopologyManager struct {
	client *Client
}

func NewTopologyManager(client *Client) *TopologyManager {
	return &TopologyManager{
		client: client,
	}
}

// Setup declares all exchanges, queues, and bindings. Idempotent.
func (t *TopologyManager) Setup() error {
	return t.client.withChannel(func(ch *amqp.Channel) error {
		if err := t.declareExchange(ch, domain.EmailExchange); err != nil {
			return err
		}

		if err := t.declareQueue(ch, domain.TopicOutboundDLQ, nil); err != nil {
			return err
		}

		// Nacked messages leave the main queue through the default exchange
		// straight into the dlq.
		if err := t.declareQueue(ch, domain.TopicEmailOutbound, amqp.Table{
			"x-dead-letter-exchange":    "",
			"x-dead-letter-routing-key": domain.TopicOutboundDLQ,
		}); err != nil {
			return err
		}

		// Expired waiters flow back onto the main queue.
		if err := t.declareQueue(ch, domain.TopicOutboundWait, amqp.Table{
			"x-dead-letter-exchange":    domain.EmailExchange,
			"x-dead-letter-routing-key": domain.TopicEmailOutbound,
		}); err != nil {
			return err
		}

		if err := t.bindQueue(ch, domain.TopicEmailOutbound, domain.EmailExchange, domain.TopicEmailOutbound); err != nil {
			return err
		}

		log.Info("AMQP topology setup completed successfully")
		return nil
	})
}

// declareExchange declares a topic exchange
func (t *TopologyManager) declareExchange(ch *amqp.Channel, name string) error {
	err := ch.ExchangeDeclare(
		name,
		"topic", // type
		true,    // durable
		false,   // auto-deleted
		false,   // internal
		false,   // no-wait
		nil,     // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to declare exchange '%s': %w", name, err)
	}

	log.WithField("exchange", name).Debug("Exchange declared")
	return nil
}

// declareQueue declares a durable queue
func (t *TopologyManager) declareQueue(ch *amqp.Channel, name string, args amqp.Table) error {
	_, err := ch.QueueDeclare(
		name,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		args,
	)
	if err != nil {
		return fmt.Errorf("failed to declare queue '%s': %w", name, err)
	}

	log.WithField("queue", name).Debug("Queue declared")
	return nil
}

// bindQueue binds a queue to an exchange with a routing key
func (t *TopologyManager) bindQueue(ch *amqp.Channel, queueName, exchangeName, routingKey string) error {
	err := ch.QueueBind(
		queueName,
		routingKey,
		exchangeName,
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to bind queue '%s' to exchange '%s' with routing key '%s': %w",
			queueName, exchangeName, routingKey, err)
	}

	log.WithFields(log.Fields{
		"queue":      queueName,
		"exchange":   exchangeName,
		"routingKey": routingKey,
	}).Debug("Queue bound to exchange")
	return nil
}
