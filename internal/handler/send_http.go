package handler

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"github.com/uddugarg/email-microservice/internal/core/domain"
	"github.com/uddugarg/email-microservice/internal/core/port"
)

// SendHTTPHandler accepts send requests at the API boundary and publishes
// them onto the outbound queue. Everything after that happens in the
// dispatcher.
type SendHTTPHandler struct {
	queue    port.Queue
	validate *validator.Validate
}

type SendEmailRequest struct {
	TenantID uuid.UUID            `json:"tenant_id" validate:"required"`
	UserID   uuid.UUID            `json:"user_id" validate:"required"`
	To       string               `json:"to,omitempty" validate:"omitempty,email"`
	Subject  string               `json:"subject" validate:"required"`
	Body     string               `json:"body" validate:"required"`
	Metadata domain.EmailMetadata `json:"metadata,omitempty"`
}

type SendEmailResponse struct {
	Message string    `json:"message"`
	EventID uuid.UUID `json:"event_id"`
}

func NewSendHTTPHandler(queue port.Queue, validate *validator.Validate) *SendHTTPHandler {
	return &SendHTTPHandler{
		queue:    queue,
		validate: validate,
	}
}

func (h *SendHTTPHandler) Handle() echo.HandlerFunc {
	return func(c echo.Context) error {
		var req SendEmailRequest

		if err := c.Bind(&req); err != nil {
			log.WithError(err).Error("Failed to bind send request")
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": "Invalid request payload",
			})
		}
		if err := h.validate.Struct(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": err.Error(),
			})
		}

		message := &domain.SendRequest{
			ID:         uuid.New(),
			TenantID:   req.TenantID,
			UserID:     req.UserID,
			To:         req.To,
			Subject:    req.Subject,
			Body:       req.Body,
			Metadata:   req.Metadata,
			RetryCount: 0,
			EnqueuedAt: time.Now().UTC(),
		}

		if err := h.queue.Publish(c.Request().Context(), domain.TopicEmailOutbound, message); err != nil {
			log.WithError(err).WithField("eventID", message.ID).Error("Failed to enqueue send request")
			return c.JSON(http.StatusServiceUnavailable, map[string]string{
				"error": "Failed to enqueue send request",
			})
		}

		return c.JSON(http.StatusAccepted, SendEmailResponse{
			Message: "Send request accepted",
			EventID: message.ID,
		})
	}
}
