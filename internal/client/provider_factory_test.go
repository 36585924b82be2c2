package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uddugarg/email-microservice/internal/core/domain"
	"github.com/uddugarg/email-microservice/internal/core/port"
)

func TestProviderFactoryBuildsRegisteredKind(t *testing.T) {
	factory := NewProviderFactory()
	factory.Register(domain.ProviderSMTP, NewSMTPProvider)

	provider, err := factory.For(&domain.Account{Provider: domain.ProviderSMTP})

	require.NoError(t, err)
	assert.IsType(t, &SMTPProvider{}, provider)
}

func TestProviderFactoryBuildsFreshInstances(t *testing.T) {
	factory := NewProviderFactory()
	factory.Register(domain.ProviderSMTP, NewSMTPProvider)
	account := &domain.Account{Provider: domain.ProviderSMTP}

	first, err := factory.For(account)
	require.NoError(t, err)
	second, err := factory.For(account)
	require.NoError(t, err)

	assert.NotSame(t, first.(*SMTPProvider), second.(*SMTPProvider))
}

func TestProviderFactoryRejectsUnregisteredKind(t *testing.T) {
	factory := NewProviderFactory()
	factory.Register(domain.ProviderSMTP, func() port.EmailProvider { return &SMTPProvider{} })

	_, err := factory.For(&domain.Account{Provider: domain.ProviderGmail})

	assert.ErrorIs(t, err, domain.ErrProviderNotRegistered)
}
