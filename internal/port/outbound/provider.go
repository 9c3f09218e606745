package outbound

import (
	"context"

	"github.com/paydeck/paydeck/internal/model"
)

// DepositProviderPort is the deposit capability set implemented once per
// provider. Implementations are stateless after construction and safe
// for concurrent use; each operation is a single synchronous exchange
// returning exactly one envelope.
type DepositProviderPort interface {
	// Name returns the stable provider identifier.
	Name() string

	// SupportsPaymentMethods reports whether every requested method is in
	// the provider's declared set. Pure function, no I/O.
	SupportsPaymentMethods(methods []model.PaymentMethod) bool

	// InitiateCheckout creates a provider-hosted checkout session.
	InitiateCheckout(ctx context.Context, req *model.CheckoutRequest) model.Response[*model.CheckoutResponseData]

	// GetTransactionStatus looks up and normalizes a transaction.
	GetTransactionStatus(ctx context.Context, transactionID string) model.Response[*model.TransactionData]
}

// PayoutProviderPort is the payout capability set. Providers that do not
// yet implement an operation must return a NOT_IMPLEMENTED envelope,
// never a nil result.
type PayoutProviderPort interface {
	// Name returns the stable provider identifier.
	Name() string

	// SupportsPaymentMethods reports whether every requested method is in
	// the provider's declared payout set.
	SupportsPaymentMethods(methods []model.PaymentMethod) bool

	// ListBanks returns the provider's bank directory, optionally
	// filtered by country.
	ListBanks(ctx context.Context, req *model.BanksRequest) model.Response[[]model.Bank]

	// InitiatePayout starts a transfer to a bank account.
	InitiatePayout(ctx context.Context, req *model.PayoutRequest) model.Response[*model.TransactionData]

	// FetchTransaction looks up a payout by merchant reference.
	FetchTransaction(ctx context.Context, merchantReference string) model.Response[*model.TransactionData]
}
