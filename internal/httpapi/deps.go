package httpapi

import (
	"context"
	"sync/atomic"

	"go.uber.org/zap"

	"enrich-engine/internal/config"
	"enrich-engine/internal/domain"
	"enrich-engine/internal/events"
)

// Enricher is the lookup surface the handlers drive. *enrich.Service
// satisfies it; tests substitute a fake.
type Enricher interface {
	Contact(ctx context.Context, fullText, apiKey, hintedCompany string) (*domain.Contact, error)
	Company(ctx context.Context, nameOrDomain, apiKey string) (*domain.Company, error)
	TestKey(ctx context.Context, apiKey string) (int, error)
}

type Deps struct {
	Log *zap.Logger

	Hub *events.Hub

	Enricher Enricher

	// Atomic store, holds config.Config
	CfgVal *atomic.Value

	// Config persistence
	UserCfgPath string
	LoadCfg     func() (config.Config, error)

	// Keychain access (inject for testability)
	GetAPIKey func() (string, error)
	SetAPIKey func(key string) error
}
