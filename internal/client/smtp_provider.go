package client

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/smtp"
	"net/textproto"
	"strings"
	"time"

	"github.com/uddugarg/email-microservice/internal/core/domain"
	"github.com/uddugarg/email-microservice/internal/core/port"
)

const smtpDialTimeout = 15 * time.Second

// SMTPProvider is the reference transport back-end: plain authenticated
// SMTP against the relay named in the account credentials. OAuth-based
// back-ends (Gmail, Outlook) live out of tree and register themselves
// through the factory.
//
// Credential keys: host, port, username, password.
type SMTPProvider struct {
	host     string
	port     string
	username string
	password string
}

func NewSMTPProvider() port.EmailProvider {
	return &SMTPProvider{}
}

func (p *SMTPProvider) Initialize(_ context.Context, credentials domain.Credentials) error {
	p.host = credentials["host"]
	p.port = credentials["port"]
	p.username = credentials["username"]
	p.password = credentials["password"]
	if p.host == "" || p.username == "" || p.password == "" {
		return fmt.Errorf("smtp credentials incomplete")
	}
	if p.port == "" {
		p.port = "587"
	}
	return nil
}

// ValidateCredentials dials the relay and authenticates without sending.
func (p *SMTPProvider) ValidateCredentials(ctx context.Context) (bool, error) {
	client, err := p.dial(ctx)
	if err != nil {
		return false, err
	}
	defer client.Close()

	if err := p.auth(client); err != nil {
		var protoErr *textproto.Error
		if errors.As(err, &protoErr) && protoErr.Code == 535 {
			return false, nil
		}
		return false, err
	}
	_ = client.Quit()
	return true, nil
}

// SupportsRefresh is false: password credentials cannot be rotated without
// operator intervention.
func (p *SMTPProvider) SupportsRefresh() bool {
	return false
}

func (p *SMTPProvider) RefreshCredentials(context.Context) (domain.Credentials, error) {
	return nil, fmt.Errorf("smtp provider does not support credential refresh")
}

func (p *SMTPProvider) SendEmail(ctx context.Context, from string, req *domain.SendRequest) (*domain.ProviderResult, error) {
	client, err := p.dial(ctx)
	if err != nil {
		return failureResult(err), nil
	}
	defer client.Close()

	if err := p.auth(client); err != nil {
		return failureResult(err), nil
	}

	recipients := append([]string{req.To}, req.Metadata.CC...)
	recipients = append(recipients, req.Metadata.BCC...)

	if err := client.Mail(from); err != nil {
		return failureResult(err), nil
	}
	for _, rcpt := range recipients {
		if err := client.Rcpt(rcpt); err != nil {
			return failureResult(err), nil
		}
	}

	w, err := client.Data()
	if err != nil {
		return failureResult(err), nil
	}
	if _, err := w.Write(buildMessage(from, req)); err != nil {
		w.Close()
		return failureResult(err), nil
	}
	if err := w.Close(); err != nil {
		return failureResult(err), nil
	}
	_ = client.Quit()

	return &domain.ProviderResult{
		Success:     true,
		MessageID:   req.ID.String(),
		RawResponse: "250 accepted",
	}, nil
}

func (p *SMTPProvider) dial(ctx context.Context) (*smtp.Client, error) {
	dialer := net.Dialer{Timeout: smtpDialTimeout}
	if deadline, ok := ctx.Deadline(); ok {
		dialer.Deadline = deadline
	}
	addr := net.JoinHostPort(p.host, p.port)
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, err
	}
	// Bound every subsequent SMTP exchange; a stalled relay surfaces as
	// a timeout result, never an indefinite block.
	_ = conn.SetDeadline(time.Now().Add(smtpDialTimeout))
	client, err := smtp.NewClient(conn, p.host)
	if err != nil {
		conn.Close()
		return nil, err
	}
	return client, nil
}

func (p *SMTPProvider) auth(client *smtp.Client) error {
	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(nil); err != nil {
			return err
		}
	}
	return client.Auth(smtp.PlainAuth("", p.username, p.password, p.host))
}

func buildMessage(from string, req *domain.SendRequest) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", req.To)
	if len(req.Metadata.CC) > 0 {
		fmt.Fprintf(&b, "Cc: %s\r\n", strings.Join(req.Metadata.CC, ", "))
	}
	if req.Metadata.ReplyTo != "" {
		fmt.Fprintf(&b, "Reply-To: %s\r\n", req.Metadata.ReplyTo)
	}
	fmt.Fprintf(&b, "Subject: %s\r\n", req.Subject)
	b.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n")
	b.WriteString(req.Body)
	return []byte(b.String())
}

// failureResult maps transport errors onto the closed provider error
// vocabulary the pipeline's retry classification depends on.
func failureResult(err error) *domain.ProviderResult {
	return &domain.ProviderResult{
		Success:     false,
		Err:         &domain.ProviderError{Code: classifySMTPError(err), Message: err.Error()},
		RawResponse: err.Error(),
	}
}

func classifySMTPError(err error) domain.ProviderErrorCode {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return domain.ErrCodeTimeout
	}

	var protoErr *textproto.Error
	if errors.As(err, &protoErr) {
		switch {
		case protoErr.Code == 421 || protoErr.Code == 450 || protoErr.Code == 451:
			return domain.ErrCodeTemporary
		case protoErr.Code == 452:
			return domain.ErrCodeRateLimit
		case protoErr.Code == 535:
			return domain.ErrCodeUnauthorized
		case protoErr.Code >= 400 && protoErr.Code < 500:
			return domain.ErrCodeTemporary
		case protoErr.Code >= 500:
			return domain.ErrCodeServer
		}
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return domain.ErrCodeConnection
	}

	return domain.ErrCodeUnknown
}
