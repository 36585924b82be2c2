package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/uddugarg/email-microservice/internal/core/domain"
	"github.com/uddugarg/email-microservice/mocks"
)

func postSend(t *testing.T, handler echo.HandlerFunc, payload string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/emails/send", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, handler(e.NewContext(req, rec)))
	return rec
}

func TestSendHandlerEnqueuesRequest(t *testing.T) {
	queue := mocks.NewQueue(t)
	handler := NewSendHTTPHandler(queue, validator.New()).Handle()

	tenantID := uuid.New()
	userID := uuid.New()
	queue.EXPECT().Publish(mock.Anything, domain.TopicEmailOutbound, mock.MatchedBy(func(m *domain.SendRequest) bool {
		return m.TenantID == tenantID && m.UserID == userID && m.RetryCount == 0 && m.ID != uuid.Nil
	})).Return(nil)

	payload := fmt.Sprintf(`{"tenant_id":%q,"user_id":%q,"to":"recipient@example.com","subject":"hello","body":"hi"}`, tenantID, userID)
	rec := postSend(t, handler, payload)

	assert.Equal(t, http.StatusAccepted, rec.Code)
	var resp SendEmailResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEqual(t, uuid.Nil, resp.EventID)
}

func TestSendHandlerAcceptsEmptyRecipient(t *testing.T) {
	queue := mocks.NewQueue(t)
	handler := NewSendHTTPHandler(queue, validator.New()).Handle()

	queue.EXPECT().Publish(mock.Anything, domain.TopicEmailOutbound, mock.MatchedBy(func(m *domain.SendRequest) bool {
		return m.To == ""
	})).Return(nil)

	payload := fmt.Sprintf(`{"tenant_id":%q,"user_id":%q,"subject":"hello","body":"hi"}`, uuid.New(), uuid.New())
	rec := postSend(t, handler, payload)

	assert.Equal(t, http.StatusAccepted, rec.Code)
}

func TestSendHandlerRejectsMissingSubject(t *testing.T) {
	queue := mocks.NewQueue(t)
	handler := NewSendHTTPHandler(queue, validator.New()).Handle()

	payload := fmt.Sprintf(`{"tenant_id":%q,"user_id":%q,"body":"hi"}`, uuid.New(), uuid.New())
	rec := postSend(t, handler, payload)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	queue.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
}

func TestSendHandlerRejectsMalformedRecipient(t *testing.T) {
	queue := mocks.NewQueue(t)
	handler := NewSendHTTPHandler(queue, validator.New()).Handle()

	payload := fmt.Sprintf(`{"tenant_id":%q,"user_id":%q,"to":"not-an-address","subject":"hello","body":"hi"}`, uuid.New(), uuid.New())
	rec := postSend(t, handler, payload)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSendHandlerReportsQueueOutage(t *testing.T) {
	queue := mocks.NewQueue(t)
	handler := NewSendHTTPHandler(queue, validator.New()).Handle()

	queue.EXPECT().Publish(mock.Anything, domain.TopicEmailOutbound, mock.Anything).
		Return(fmt.Errorf("broker unreachable"))

	payload := fmt.Sprintf(`{"tenant_id":%q,"user_id":%q,"subject":"hello","body":"hi"}`, uuid.New(), uuid.New())
	rec := postSend(t, handler, payload)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
