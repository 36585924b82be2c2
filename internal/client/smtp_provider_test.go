package client

import (
	"context"
	"errors"
	"net"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uddugarg/email-microservice/internal/core/domain"
)

type timeoutErr struct{}

func (timeoutErr) Error() string   { return "i/o timeout" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

func TestClassifySMTPError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want domain.ProviderErrorCode
	}{
		{"network timeout", timeoutErr{}, domain.ErrCodeTimeout},
		{"service unavailable", &textproto.Error{Code: 421, Msg: "closing channel"}, domain.ErrCodeTemporary},
		{"mailbox busy", &textproto.Error{Code: 450, Msg: "try again"}, domain.ErrCodeTemporary},
		{"local error", &textproto.Error{Code: 451, Msg: "local error"}, domain.ErrCodeTemporary},
		{"insufficient storage", &textproto.Error{Code: 452, Msg: "too many recipients"}, domain.ErrCodeRateLimit},
		{"auth rejected", &textproto.Error{Code: 535, Msg: "authentication failed"}, domain.ErrCodeUnauthorized},
		{"other transient reply", &textproto.Error{Code: 454, Msg: "tls unavailable"}, domain.ErrCodeTemporary},
		{"permanent reply", &textproto.Error{Code: 550, Msg: "mailbox unavailable"}, domain.ErrCodeServer},
		{"connection refused", &net.OpError{Op: "dial", Err: errors.New("connection refused")}, domain.ErrCodeConnection},
		{"anything else", errors.New("boom"), domain.ErrCodeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifySMTPError(tt.err))
		})
	}
}

func TestInitializeRequiresCoreCredentials(t *testing.T) {
	provider := NewSMTPProvider()

	err := provider.Initialize(context.Background(), domain.Credentials{
		"host": "smtp.example.com",
	})
	assert.Error(t, err)

	err = provider.Initialize(context.Background(), domain.Credentials{
		"host":     "smtp.example.com",
		"username": "sender",
		"password": "secret",
	})
	assert.NoError(t, err)
}

func TestInitializeDefaultsSubmissionPort(t *testing.T) {
	provider := &SMTPProvider{}
	require.NoError(t, provider.Initialize(context.Background(), domain.Credentials{
		"host":     "smtp.example.com",
		"username": "sender",
		"password": "secret",
	}))
	assert.Equal(t, "587", provider.port)
}

func TestSMTPProviderDoesNotSupportRefresh(t *testing.T) {
	provider := NewSMTPProvider()
	assert.False(t, provider.SupportsRefresh())

	_, err := provider.RefreshCredentials(context.Background())
	assert.Error(t, err)
}

func TestBuildMessageHeaders(t *testing.T) {
	req := &domain.SendRequest{
		To:      "recipient@example.com",
		Subject: "hello",
		Body:    "hi there",
		Metadata: domain.EmailMetadata{
			CC:      []string{"cc@example.com"},
			ReplyTo: "replies@example.com",
		},
	}

	msg := string(buildMessage("sender@corp.example", req))

	assert.Contains(t, msg, "From: sender@corp.example\r\n")
	assert.Contains(t, msg, "To: recipient@example.com\r\n")
	assert.Contains(t, msg, "Cc: cc@example.com\r\n")
	assert.Contains(t, msg, "Reply-To: replies@example.com\r\n")
	assert.Contains(t, msg, "Subject: hello\r\n")
	assert.Contains(t, msg, "\r\n\r\nhi there")
}
