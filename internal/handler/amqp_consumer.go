package handler

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"

	"github.com/uddugarg/email-microservice/internal/core/domain"
	"github.com/uddugarg/email-microservice/internal/core/port"
)

type deliveryJob struct {
	msg *port.Message
	req domain.SendRequest
}

// AMQPConsumer feeds send requests from the outbound queue through the
// delivery pipeline on a bounded worker pool and settles each message with
// the queue action the pipeline decided. Handlers share no in-memory state;
// everything shared lives in the store.
type AMQPConsumer struct {
	pipeline   port.DeliveryService
	queue      port.Queue
	validate   *validator.Validate
	jobQueue   chan deliveryJob
	wg         sync.WaitGroup
	numWorkers int
}

func NewAMQPConsumer(
	pipeline port.DeliveryService,
	queue port.Queue,
	validate *validator.Validate,
	numWorkers int,
	queueSize int,
) *AMQPConsumer {
	return &AMQPConsumer{
		pipeline:   pipeline,
		queue:      queue,
		validate:   validate,
		jobQueue:   make(chan deliveryJob, queueSize),
		numWorkers: numWorkers,
	}
}

// Start launches the worker pool. Call this before consuming messages.
func (c *AMQPConsumer) Start(ctx context.Context) {
	for i := range c.numWorkers {
		c.wg.Add(1)
		go c.worker(ctx, i)
	}
	log.Infof("Started %d delivery workers", c.numWorkers)
}

// Stop gracefully shuts down workers after draining the queue.
func (c *AMQPConsumer) Stop(ctx context.Context) {
	close(c.jobQueue)

	workersDone := make(chan struct{})
	go func() {
		c.wg.Wait()
		close(workersDone)
	}()

	select {
	case <-workersDone:
		log.Info("All delivery workers stopped after drained.")
	case <-ctx.Done():
		log.Info("Delivery workers stopped on shutdown deadline.")
	}
}

func (c *AMQPConsumer) worker(ctx context.Context, workerID int) {
	defer c.wg.Done()
	for {
		select {
		case <-ctx.Done():
			log.Warnf("[DeliveryWorker %d] Context cancelled, stopping", workerID)
			return
		case job, ok := <-c.jobQueue:
			if !ok {
				log.Infof("[DeliveryWorker %d] Queue closed, stopping", workerID)
				return
			}
			jobCtx, cancel := context.WithTimeout(ctx, 5*time.Minute)
			decision := c.pipeline.Process(jobCtx, &job.req)
			c.settle(jobCtx, job.msg, decision)
			cancel()
		}
	}
}

func (c *AMQPConsumer) Handle(ctx context.Context, msg *port.Message) {
	var req domain.SendRequest

	if err := json.Unmarshal(msg.Body, &req); err != nil {
		log.Errorf("failed to unmarshal send request, dead-lettering: %v", err)
		c.deadLetter(ctx, msg)
		return
	}

	if err := c.validate.Struct(req); err != nil {
		log.Errorf("send request validation failed, dead-lettering: %v", err)
		c.deadLetter(ctx, msg)
		return
	}

	log.WithFields(log.Fields{
		"eventID":    req.ID,
		"tenantID":   req.TenantID,
		"userID":     req.UserID,
		"retryCount": req.RetryCount,
	}).Info("Received send request")

	// Submit to worker pool (blocks if queue is full, providing backpressure)
	c.jobQueue <- deliveryJob{msg: msg, req: req}
}

// settle executes the pipeline's terminal queue action. A requeue carries
// the pipeline's updated retry count back onto the wire.
func (c *AMQPConsumer) settle(ctx context.Context, msg *port.Message, decision domain.DeliveryDecision) {
	if decision.Requeue {
		if decision.Request != nil {
			body, err := json.Marshal(decision.Request)
			if err != nil {
				log.WithError(err).Error("Failed to marshal requeued request, keeping original body")
			} else {
				msg.Body = body
			}
		}
		if err := c.queue.Nack(ctx, msg, true, decision.Delay); err != nil {
			// The broker redelivers unacked messages after the connection
			// drops, so a failed nack degrades to a duplicate, not a loss.
			log.WithError(err).Error("Failed to requeue message")
		}
		return
	}

	if err := c.queue.Ack(ctx, msg); err != nil {
		log.WithError(err).Error("Failed to ack message")
	}
}

func (c *AMQPConsumer) deadLetter(ctx context.Context, msg *port.Message) {
	if err := c.queue.Nack(ctx, msg, false, 0); err != nil {
		log.WithError(err).Error("Failed to dead-letter message")
	}
}
