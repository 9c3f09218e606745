package outbound

import (
	"github.com/paydeck/paydeck/internal/model"
)

// ProviderRegistryPort resolves provider identifiers to adapter
// instances. Lookups for providers without the requested capability
// return an error, never a nil adapter.
type ProviderRegistryPort interface {
	// DepositProvider returns the deposit adapter registered for a
	// provider.
	DepositProvider(p model.Provider) (DepositProviderPort, error)

	// PayoutProvider returns the payout adapter registered for a
	// provider.
	PayoutProvider(p model.Provider) (PayoutProviderPort, error)

	// DepositProviders returns all providers with a registered deposit
	// adapter.
	DepositProviders() []model.Provider

	// PayoutProviders returns all providers with a registered payout
	// adapter.
	PayoutProviders() []model.Provider
}
