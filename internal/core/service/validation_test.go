package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecipientValidator(t *testing.T) {
	validator := NewRecipientValidator("blocked.example.com")

	tests := []struct {
		name    string
		address string
		valid   bool
		reason  string
	}{
		{"plain address", "user@example.com", true, ""},
		{"display name form", "Jordan Lee <jordan@example.com>", true, ""},
		{"missing at sign", "userexample.com", false, "invalid recipient address format"},
		{"empty address", "", false, "invalid recipient address format"},
		{"missing local part", "@example.com", false, "invalid recipient address format"},
		{"bare hostname domain", "user@localhost", false, "recipient domain is not routable"},
		{"disposable domain", "user@mailinator.com", false, "disposable recipient domain"},
		{"disposable domain is case insensitive", "user@MAILINATOR.com", false, "disposable recipient domain"},
		{"configured extra domain", "user@blocked.example.com", false, "disposable recipient domain"},
		{"subdomain of disposable is allowed", "user@sub.mailinator.com", true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := validator.Validate(context.Background(), tt.address)
			assert.Equal(t, tt.valid, res.Valid)
			assert.Equal(t, tt.reason, res.Reason)
		})
	}
}
