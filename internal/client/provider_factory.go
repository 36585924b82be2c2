package client

import (
	"fmt"
	"sync"

	"github.com/uddugarg/email-microservice/internal/core/domain"
	"github.com/uddugarg/email-microservice/internal/core/port"
)

// ProviderConstructor builds a fresh, uninitialized provider instance.
// The pipeline initializes it with the account's credentials per message.
type ProviderConstructor func() port.EmailProvider

// ProviderFactory selects a sending back-end from the account's stored
// provider kind. Back-ends register themselves at startup; an account
// referencing an unregistered kind cannot be dispatched.
type ProviderFactory struct {
	mu           sync.RWMutex
	constructors map[domain.ProviderKind]ProviderConstructor
}

func NewProviderFactory() *ProviderFactory {
	return &ProviderFactory{
		constructors: make(map[domain.ProviderKind]ProviderConstructor),
	}
}

func (f *ProviderFactory) Register(kind domain.ProviderKind, constructor ProviderConstructor) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.constructors[kind] = constructor
}

func (f *ProviderFactory) For(account *domain.Account) (port.EmailProvider, error) {
	f.mu.RLock()
	constructor, ok := f.constructors[account.Provider]
	f.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrProviderNotRegistered, account.Provider)
	}
	return constructor(), nil
}
