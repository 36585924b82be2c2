package service

import (
	"context"
	"net/mail"
	"strings"

	"github.com/uddugarg/email-microservice/internal/core/port"
)

// defaultDisposableDomains are well-known throwaway mail providers.
// Matching is on the address's domain part, case-insensitive.
var defaultDisposableDomains = []string{
	"10minutemail.com",
	"guerrillamail.com",
	"mailinator.com",
	"maildrop.cc",
	"sharklasers.com",
	"tempmail.com",
	"temp-mail.org",
	"throwawaymail.com",
	"trashmail.com",
	"yopmail.com",
}

// RecipientValidator applies the permanent recipient classifications:
// malformed addresses and disposable domains are rejected, never retried.
type RecipientValidator struct {
	disposable map[string]struct{}
}

// NewRecipientValidator builds a validator covering the default disposable
// domains plus any extras from configuration.
func NewRecipientValidator(extraDomains ...string) *RecipientValidator {
	disposable := make(map[string]struct{}, len(defaultDisposableDomains)+len(extraDomains))
	for _, d := range defaultDisposableDomains {
		disposable[d] = struct{}{}
	}
	for _, d := range extraDomains {
		d = strings.ToLower(strings.TrimSpace(d))
		if d != "" {
			disposable[d] = struct{}{}
		}
	}
	return &RecipientValidator{disposable: disposable}
}

func (v *RecipientValidator) Validate(_ context.Context, address string) port.ValidationResult {
	addr, err := mail.ParseAddress(address)
	if err != nil {
		return port.ValidationResult{Valid: false, Reason: "invalid recipient address format"}
	}

	at := strings.LastIndex(addr.Address, "@")
	if at < 0 || at == len(addr.Address)-1 {
		return port.ValidationResult{Valid: false, Reason: "invalid recipient address format"}
	}
	domainPart := strings.ToLower(addr.Address[at+1:])
	if !strings.Contains(domainPart, ".") {
		return port.ValidationResult{Valid: false, Reason: "recipient domain is not routable"}
	}

	if _, ok := v.disposable[domainPart]; ok {
		return port.ValidationResult{Valid: false, Reason: "disposable recipient domain"}
	}

	return port.ValidationResult{Valid: true}
}
