package payprovider

import (
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/paydeck/paydeck/internal/model"
	"github.com/paydeck/paydeck/internal/port/outbound"
)

// ErrUnknownProvider is returned when a provider identifier has no
// adapter constructor. It signals a configuration mistake, not a
// runtime provider failure.
var ErrUnknownProvider = errors.New("unknown provider")

// NewDepositProvider constructs the deposit adapter for a provider
// identifier with the given credential.
func NewDepositProvider(p model.Provider, client *http.Client, secretKey string) (outbound.DepositProviderPort, error) {
	switch p {
	case model.ProviderFlutterwave:
		return NewFlutterwaveAdapter(client, secretKey), nil
	case model.ProviderPaystack:
		return NewPaystackAdapter(client, secretKey), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, p)
	}
}

// NewPayoutProvider constructs the payout adapter for a provider
// identifier with the given credential.
func NewPayoutProvider(p model.Provider, client *http.Client, secretKey string) (outbound.PayoutProviderPort, error) {
	switch p {
	case model.ProviderPaystack:
		return NewPaystackPayoutAdapter(client, secretKey), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, p)
	}
}

// Secrets carries the per-provider API credentials the default registry
// wires into its adapters.
type Secrets struct {
	FlutterwaveSecretKey string
	PaystackSecretKey    string
}

// Registry manages provider adapter instances by capability.
type Registry struct {
	mu       sync.RWMutex
	deposits map[model.Provider]outbound.DepositProviderPort
	payouts  map[model.Provider]outbound.PayoutProviderPort
}

// NewRegistry creates an empty provider registry.
func NewRegistry() *Registry {
	return &Registry{
		deposits: make(map[model.Provider]outbound.DepositProviderPort),
		payouts:  make(map[model.Provider]outbound.PayoutProviderPort),
	}
}

// NewDefaultRegistry creates a registry with every built-in adapter
// registered using the given HTTP client and credentials.
func NewDefaultRegistry(client *http.Client, secrets Secrets) outbound.ProviderRegistryPort {
	r := NewRegistry()
	r.RegisterDeposit(NewFlutterwaveAdapter(client, secrets.FlutterwaveSecretKey))
	r.RegisterDeposit(NewPaystackAdapter(client, secrets.PaystackSecretKey))
	r.RegisterPayout(NewPaystackPayoutAdapter(client, secrets.PaystackSecretKey))
	return r
}

// RegisterDeposit registers a deposit adapter under its own name.
func (r *Registry) RegisterDeposit(adapter outbound.DepositProviderPort) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.deposits[model.Provider(adapter.Name())] = adapter
}

// RegisterPayout registers a payout adapter under its own name.
func (r *Registry) RegisterPayout(adapter outbound.PayoutProviderPort) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.payouts[model.Provider(adapter.Name())] = adapter
}

// DepositProvider returns the deposit adapter registered for a provider.
func (r *Registry) DepositProvider(p model.Provider) (outbound.DepositProviderPort, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	adapter, ok := r.deposits[p]
	if !ok {
		return nil, fmt.Errorf("no deposit adapter registered for provider: %s", p)
	}
	return adapter, nil
}

// PayoutProvider returns the payout adapter registered for a provider.
func (r *Registry) PayoutProvider(p model.Provider) (outbound.PayoutProviderPort, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	adapter, ok := r.payouts[p]
	if !ok {
		return nil, fmt.Errorf("no payout adapter registered for provider: %s", p)
	}
	return adapter, nil
}

// DepositProviders returns all providers with a registered deposit
// adapter.
func (r *Registry) DepositProviders() []model.Provider {
	r.mu.RLock()
	defer r.mu.RUnlock()

	providers := make([]model.Provider, 0, len(r.deposits))
	for p := range r.deposits {
		providers = append(providers, p)
	}
	return providers
}

// PayoutProviders returns all providers with a registered payout
// adapter.
func (r *Registry) PayoutProviders() []model.Provider {
	r.mu.RLock()
	defer r.mu.RUnlock()

	providers := make([]model.Provider, 0, len(r.payouts))
	for p := range r.payouts {
		providers = append(providers, p)
	}
	return providers
}

// Compile-time interface assertions
var _ outbound.ProviderRegistryPort = (*Registry)(nil)
