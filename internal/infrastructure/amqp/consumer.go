package amqp

import (
	"context"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	log "github.com/sirupsen/logrus"

	"github.com/uddugarg/email-microservice/internal/core/port"
)

// Consumer consumes messages from RabbitMQ and hands them to a
// broker-agnostic handler. A panicking handler never kills the consume
// loop; the message is dead-lettered instead.
type Consumer struct {
	client   *Client
	handler  port.MessageHandler
	prefetch int
}

func NewConsumer(client *Client, handler port.MessageHandler, prefetch int) *Consumer {
	if prefetch <= 0 {
		prefetch = 1
	}
	return &Consumer{
		client:   client,
		handler:  handler,
		prefetch: prefetch,
	}
}

// Consume starts consuming messages from a queue. The prefetch count bounds
// how many unacked messages this consumer holds at once.
func (c *Consumer) Consume(ctx context.Context, queueName string) error {
	ch := c.client.Channel()

	err := ch.Qos(
		c.prefetch, // prefetch count
		0,          // prefetch size
		false,      // global
	)
	if err != nil {
		return fmt.Errorf("failed to set QoS: %w", err)
	}

	msgs, err := ch.Consume(
		queueName,
		"",    // consumer tag (auto-generated)
		false, // auto-ack (we'll manually ack)
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	log.WithField("queue", queueName).Info("Started consuming messages")

	go func() {
		for {
			select {
			case <-ctx.Done():
				log.Info("Consumer stopped due to context cancellation")
				return
			case msg, ok := <-msgs:
				if !ok {
					log.Warn("Message channel closed")
					return
				}
				c.handleMessage(ctx, &msg)
			}
		}
	}()

	return nil
}

// handleMessage processes a single message. A panic in the handler is an
// implicit nack(requeue=false): the delivery routes to the dead-letter
// queue unless the handler already issued a terminal ack/nack, in which
// case the duplicate nack fails and is ignored.
func (c *Consumer) handleMessage(ctx context.Context, delivery *amqp.Delivery) {
	log.WithFields(log.Fields{
		"routingKey": delivery.RoutingKey,
		"messageId":  delivery.MessageId,
	}).Debug("Processing message")

	defer func() {
		if r := recover(); r != nil {
			log.Errorf("handler panic, dead-lettering message: %v", r)
			err := c.client.withChannel(func(ch *amqp.Channel) error {
				return ch.Nack(delivery.DeliveryTag, false, false)
			})
			if err != nil {
				log.WithError(err).Debug("nack after panic failed (message likely settled)")
			}
		}
	}()

	c.handler.Handle(ctx, &port.Message{
		ID:      delivery.MessageId,
		Topic:   delivery.RoutingKey,
		Body:    delivery.Body,
		Receipt: delivery,
	})
}
