package payprovider

import (
	"context"
	"net/http"
	"net/url"

	"github.com/paydeck/paydeck/internal/model"
	"github.com/paydeck/paydeck/internal/port/outbound"
)

// paystackPayoutMethods is the payout channel table. Transfers go to
// resolved bank accounts only.
var paystackPayoutMethods = map[model.PaymentMethod]string{
	model.MethodBankAccount: "bank",
}

// PaystackPayoutAdapter implements the payout contract for Paystack.
// Bank listing is live; transfer initiation and lookup report
// NOT_IMPLEMENTED until the transfer recipient flow lands.
type PaystackPayoutAdapter struct {
	*BaseAdapter
	client    *http.Client
	baseURL   string
	secretKey string
}

// NewPaystackPayoutAdapter creates a Paystack payout adapter bound to
// the given credential.
func NewPaystackPayoutAdapter(client *http.Client, secretKey string) *PaystackPayoutAdapter {
	return newPaystackPayoutAdapter(client, paystackBaseURL, secretKey)
}

func newPaystackPayoutAdapter(client *http.Client, baseURL, secretKey string) *PaystackPayoutAdapter {
	return &PaystackPayoutAdapter{
		BaseAdapter: NewBaseAdapter(paystackPayoutMethods),
		client:      client,
		baseURL:     baseURL,
		secretKey:   secretKey,
	}
}

// Name returns the stable provider identifier.
func (a *PaystackPayoutAdapter) Name() string {
	return string(model.ProviderPaystack)
}

// ListBanks returns Paystack's bank directory for a country. The ISO
// country code resolves through the provider country table before the
// query; codes outside the table are rejected locally.
func (a *PaystackPayoutAdapter) ListBanks(ctx context.Context, req *model.BanksRequest) model.Response[[]model.Bank] {
	endpoint := a.baseURL + "/bank"
	if req.CountryCode != "" {
		country, ok := providerCountryName(model.ProviderPaystack, req.CountryCode)
		if !ok {
			return model.Error[[]model.Bank](
				model.ErrCodeUnsupportedCountry,
				"country "+req.CountryCode+" is not supported by Paystack",
			)
		}
		endpoint += "?country=" + url.QueryEscape(country)
	}

	var resp struct {
		Status  bool   `json:"status"`
		Message string `json:"message"`
		Data    []struct {
			Name string `json:"name"`
			Code string `json:"code"`
		} `json:"data"`
	}
	err := doJSON(ctx, a.client, http.MethodGet, endpoint, a.secretKey, nil, &resp)
	if err != nil {
		return model.Error[[]model.Bank](
			model.ErrCodeProviderError,
			"failed to list banks from Paystack: "+err.Error(),
		)
	}

	if !resp.Status {
		return model.ProviderError[[]model.Bank](
			model.ErrCodeProviderError,
			"Paystack request failed",
			"error",
			resp.Message,
		)
	}

	banks := make([]model.Bank, 0, len(resp.Data))
	for _, b := range resp.Data {
		banks = append(banks, model.Bank{
			Code:        b.Code,
			Name:        b.Name,
			CountryCode: req.CountryCode,
		})
	}
	return model.Success(banks)
}

// InitiatePayout reports NOT_IMPLEMENTED. Paystack transfers need a
// recipient created ahead of the transfer call; that flow is not wired
// yet.
func (a *PaystackPayoutAdapter) InitiatePayout(ctx context.Context, req *model.PayoutRequest) model.Response[*model.TransactionData] {
	return model.Error[*model.TransactionData](
		model.ErrCodeNotImplemented,
		"payout initiation is not implemented for Paystack",
	)
}

// FetchTransaction reports NOT_IMPLEMENTED alongside InitiatePayout.
func (a *PaystackPayoutAdapter) FetchTransaction(ctx context.Context, merchantReference string) model.Response[*model.TransactionData] {
	return model.Error[*model.TransactionData](
		model.ErrCodeNotImplemented,
		"payout lookup is not implemented for Paystack",
	)
}

// Compile-time interface assertion
var _ outbound.PayoutProviderPort = (*PaystackPayoutAdapter)(nil)
