package handler

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/uddugarg/email-microservice/internal/core/domain"
	"github.com/uddugarg/email-microservice/internal/core/port"
	"github.com/uddugarg/email-microservice/mocks"
)

func validBody(t *testing.T, retryCount int) ([]byte, domain.SendRequest) {
	t.Helper()
	req := domain.SendRequest{
		ID:         uuid.New(),
		TenantID:   uuid.New(),
		UserID:     uuid.New(),
		To:         "recipient@example.com",
		Subject:    "hello",
		Body:       "hi",
		RetryCount: retryCount,
	}
	body, err := json.Marshal(req)
	require.NoError(t, err)
	return body, req
}

func TestHandleDeadLettersMalformedJSON(t *testing.T) {
	pipeline := mocks.NewDeliveryService(t)
	queue := mocks.NewQueue(t)
	consumer := NewAMQPConsumer(pipeline, queue, validator.New(), 1, 4)

	msg := &port.Message{ID: "1", Topic: domain.TopicEmailOutbound, Body: []byte("{not json")}
	queue.EXPECT().Nack(mock.Anything, msg, false, time.Duration(0)).Return(nil)

	consumer.Handle(context.Background(), msg)

	pipeline.AssertNotCalled(t, "Process", mock.Anything, mock.Anything)
}

func TestHandleDeadLettersInvalidRequest(t *testing.T) {
	pipeline := mocks.NewDeliveryService(t)
	queue := mocks.NewQueue(t)
	consumer := NewAMQPConsumer(pipeline, queue, validator.New(), 1, 4)

	// Missing tenant and user IDs fails struct validation.
	body, err := json.Marshal(domain.SendRequest{ID: uuid.New()})
	require.NoError(t, err)
	msg := &port.Message{ID: "2", Topic: domain.TopicEmailOutbound, Body: body}
	queue.EXPECT().Nack(mock.Anything, msg, false, time.Duration(0)).Return(nil)

	consumer.Handle(context.Background(), msg)

	pipeline.AssertNotCalled(t, "Process", mock.Anything, mock.Anything)
}

func TestWorkerAcksOnTerminalDecision(t *testing.T) {
	pipeline := mocks.NewDeliveryService(t)
	queue := mocks.NewQueue(t)
	consumer := NewAMQPConsumer(pipeline, queue, validator.New(), 1, 4)

	body, req := validBody(t, 0)
	msg := &port.Message{ID: "3", Topic: domain.TopicEmailOutbound, Body: body}

	pipeline.EXPECT().Process(mock.Anything, mock.MatchedBy(func(r *domain.SendRequest) bool {
		return r.ID == req.ID
	})).Return(domain.DeliveryDecision{})
	queue.EXPECT().Ack(mock.Anything, msg).Return(nil)

	ctx := context.Background()
	consumer.Start(ctx)
	consumer.Handle(ctx, msg)

	stopCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	consumer.Stop(stopCtx)
}

func TestWorkerRequeuesWithUpdatedRetryCount(t *testing.T) {
	pipeline := mocks.NewDeliveryService(t)
	queue := mocks.NewQueue(t)
	consumer := NewAMQPConsumer(pipeline, queue, validator.New(), 1, 4)

	body, req := validBody(t, 0)
	msg := &port.Message{ID: "4", Topic: domain.TopicEmailOutbound, Body: body}

	next := req
	next.RetryCount = 1
	pipeline.EXPECT().Process(mock.Anything, mock.Anything).
		Return(domain.DeliveryDecision{Requeue: true, Delay: 2 * time.Minute, Request: &next})
	queue.EXPECT().Nack(mock.Anything, msg, true, 2*time.Minute).
		Run(func(_ context.Context, m *port.Message, _ bool, _ time.Duration) {
			var onWire domain.SendRequest
			require.NoError(t, json.Unmarshal(m.Body, &onWire))
			require.Equal(t, 1, onWire.RetryCount)
			require.Equal(t, req.ID, onWire.ID)
		}).Return(nil)

	ctx := context.Background()
	consumer.Start(ctx)
	consumer.Handle(ctx, msg)

	stopCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	consumer.Stop(stopCtx)
}
