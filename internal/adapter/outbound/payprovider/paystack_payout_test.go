package payprovider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paydeck/paydeck/internal/model"
)

func TestPaystackPayoutAdapter_ListBanks(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bank", r.URL.Path)
		gotQuery = r.URL.Query().Get("country")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"status": true,
			"message": "Banks retrieved",
			"data": [
				{"name": "Access Bank", "code": "044"},
				{"name": "GTBank", "code": "058"}
			]
		}`))
	}))
	defer srv.Close()

	adapter := newPaystackPayoutAdapter(srv.Client(), srv.URL, "sk_test")
	res := adapter.ListBanks(context.Background(), &model.BanksRequest{CountryCode: "NG"})

	require.True(t, res.Success)
	// The ISO code resolves to Paystack's country naming
	assert.Equal(t, "Nigeria", gotQuery)

	require.Len(t, res.Data, 2)
	assert.Equal(t, model.Bank{Code: "044", Name: "Access Bank", CountryCode: "NG"}, res.Data[0])
	assert.Equal(t, model.Bank{Code: "058", Name: "GTBank", CountryCode: "NG"}, res.Data[1])
}

func TestPaystackPayoutAdapter_ListBanks_NoCountry(t *testing.T) {
	var gotRawQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRawQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status": true, "message": "Banks retrieved", "data": []}`))
	}))
	defer srv.Close()

	adapter := newPaystackPayoutAdapter(srv.Client(), srv.URL, "sk_test")
	res := adapter.ListBanks(context.Background(), &model.BanksRequest{})

	require.True(t, res.Success)
	assert.Empty(t, gotRawQuery)
	assert.Empty(t, res.Data)
}

func TestPaystackPayoutAdapter_ListBanks_UnsupportedCountry(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer srv.Close()

	adapter := newPaystackPayoutAdapter(srv.Client(), srv.URL, "sk_test")
	res := adapter.ListBanks(context.Background(), &model.BanksRequest{CountryCode: "FR"})

	assert.False(t, res.Success)
	require.NotNil(t, res.Error)
	assert.Equal(t, model.ErrCodeUnsupportedCountry, res.Error.Code)
	assert.Equal(t, 0, calls)
}

func TestPaystackPayoutAdapter_ListBanks_ProviderFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status": false, "message": "Invalid key"}`))
	}))
	defer srv.Close()

	adapter := newPaystackPayoutAdapter(srv.Client(), srv.URL, "sk_bad")
	res := adapter.ListBanks(context.Background(), &model.BanksRequest{CountryCode: "NG"})

	assert.False(t, res.Success)
	require.NotNil(t, res.Error)
	assert.Equal(t, model.ErrCodeProviderError, res.Error.Code)
	assert.Equal(t, "Invalid key", res.Error.ProviderMessage)
}

func TestPaystackPayoutAdapter_InitiatePayout_NotImplemented(t *testing.T) {
	adapter := NewPaystackPayoutAdapter(http.DefaultClient, "sk_test")

	res := adapter.InitiatePayout(context.Background(), &model.PayoutRequest{
		Reference:     "payout-1",
		Amount:        decimal.RequireFromString("50"),
		Currency:      "NGN",
		BankCode:      "058",
		AccountNumber: "0123456789",
	})

	assert.False(t, res.Success)
	require.NotNil(t, res.Error)
	assert.Equal(t, model.ErrCodeNotImplemented, res.Error.Code)
	assert.Nil(t, res.Data)
}

func TestPaystackPayoutAdapter_FetchTransaction_NotImplemented(t *testing.T) {
	adapter := NewPaystackPayoutAdapter(http.DefaultClient, "sk_test")

	res := adapter.FetchTransaction(context.Background(), "payout-1")

	assert.False(t, res.Success)
	require.NotNil(t, res.Error)
	assert.Equal(t, model.ErrCodeNotImplemented, res.Error.Code)
}

func TestPaystackPayoutAdapter_SupportsPaymentMethods(t *testing.T) {
	adapter := NewPaystackPayoutAdapter(http.DefaultClient, "sk_test")

	assert.True(t, adapter.SupportsPaymentMethods([]model.PaymentMethod{model.MethodBankAccount}))
	assert.False(t, adapter.SupportsPaymentMethods([]model.PaymentMethod{model.MethodCard}))
}
