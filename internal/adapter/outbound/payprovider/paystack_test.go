package payprovider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paydeck/paydeck/internal/model"
)

func TestPaystackAdapter_Name(t *testing.T) {
	adapter := NewPaystackAdapter(http.DefaultClient, "sk_test")
	assert.Equal(t, "paystack", adapter.Name())
}

func TestPaystackAdapter_InitiateCheckout_Success(t *testing.T) {
	var gotPayload map[string]any
	var gotAuth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/transaction/initialize", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"status": true,
			"message": "Authorization URL created",
			"data": {"authorization_url": "https://checkout.paystack.com/abc", "access_code": "abc", "reference": "ref-1"}
		}`))
	}))
	defer srv.Close()

	adapter := newPaystackAdapter(srv.Client(), srv.URL, "sk_test")

	req := checkoutRequest()
	req.Amount = decimal.RequireFromString("100.00")
	res := adapter.InitiateCheckout(context.Background(), req)

	require.True(t, res.Success)
	require.NotNil(t, res.Data)
	assert.Equal(t, "https://checkout.paystack.com/abc", res.Data.CheckoutURL)
	assert.Equal(t, "ref-1", res.Data.TransactionID)
	assert.Equal(t, "abc", res.Data.ProviderReference)

	assert.Equal(t, "Bearer sk_test", gotAuth)
	// Paystack wires amounts in the minor unit
	assert.Equal(t, float64(10000), gotPayload["amount"])
	assert.Equal(t, "ada@example.com", gotPayload["email"])

	channels, ok := gotPayload["channels"].([]any)
	require.True(t, ok)
	assert.Equal(t, []any{"card", "ussd"}, channels)

	customer, ok := gotPayload["customer"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "ada@example.com", customer["email"])
	assert.Equal(t, "+2348000000000", customer["phone"])
	assert.Equal(t, "Ada", customer["first_name"])
	assert.Equal(t, "Obi", customer["last_name"])

	customization, ok := gotPayload["customization"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Order 1", customization["title"])
}

func TestPaystackAdapter_InitiateCheckout_UnsupportedMethod(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer srv.Close()

	adapter := newPaystackAdapter(srv.Client(), srv.URL, "sk_test")

	req := checkoutRequest()
	req.PaymentMethods = []model.PaymentMethod{model.MethodQR}
	res := adapter.InitiateCheckout(context.Background(), req)

	assert.False(t, res.Success)
	require.NotNil(t, res.Error)
	assert.Equal(t, model.ErrCodeUnsupportedPaymentMethod, res.Error.Code)
	assert.Equal(t, 0, calls)
}

func TestPaystackAdapter_InitiateCheckout_ProviderFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status": false, "message": "Invalid key"}`))
	}))
	defer srv.Close()

	adapter := newPaystackAdapter(srv.Client(), srv.URL, "sk_bad")
	res := adapter.InitiateCheckout(context.Background(), checkoutRequest())

	assert.False(t, res.Success)
	require.NotNil(t, res.Error)
	assert.Equal(t, model.ErrCodeProviderError, res.Error.Code)
	assert.Equal(t, "Paystack request failed", res.Error.Message)
	assert.Equal(t, "Invalid key", res.Error.ProviderMessage)
}

func paystackVerifyBody(overrides map[string]any) []byte {
	data := map[string]any{
		"id":               9001,
		"reference":        "ref-1",
		"status":           "success",
		"amount":           10000,
		"fees":             150,
		"currency":         "NGN",
		"paid_at":          "2024-03-01T10:15:00.000Z",
		"created_at":       "2024-03-01T10:14:00.000Z",
		"channel":          "card",
		"gateway_response": "Successful",
		"authorization": map[string]any{
			"authorization_code": "AUTH_x",
			"card_type":          "visa",
			"last4":              "4081",
		},
	}
	for k, v := range overrides {
		if v == nil {
			delete(data, k)
		} else {
			data[k] = v
		}
	}
	body, _ := json.Marshal(map[string]any{
		"status":  true,
		"message": "Verification successful",
		"data":    data,
	})
	return body
}

func TestPaystackAdapter_GetTransactionStatus_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/transaction/verify/ref-1", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(paystackVerifyBody(nil))
	}))
	defer srv.Close()

	adapter := newPaystackAdapter(srv.Client(), srv.URL, "sk_test")
	res := adapter.GetTransactionStatus(context.Background(), "ref-1")

	require.True(t, res.Success)
	require.NotNil(t, res.Data)
	assert.Equal(t, "9001", res.Data.TransactionID)
	assert.Equal(t, "ref-1", res.Data.MerchantReference)
	assert.Equal(t, "AUTH_x", res.Data.ProviderReference)
	assert.Equal(t, model.StatusSuccessful, res.Data.Status)

	// Minor unit amounts normalize to the major unit
	assert.True(t, res.Data.Amount.Equal(decimal.RequireFromString("100")))
	assert.True(t, res.Data.ChargedAmount.Equal(decimal.RequireFromString("100")))
	assert.True(t, res.Data.SettledAmount.Equal(decimal.RequireFromString("100")))
	assert.True(t, res.Data.FeeAmount.Equal(decimal.RequireFromString("1.5")))

	assert.Equal(t, "card", res.Data.PaymentMethod)
	assert.Equal(t, 2024, res.Data.TransactionDate.Year())
	assert.Equal(t, "visa", res.Data.ProviderMetadata["card_type"])
	assert.Equal(t, "4081", res.Data.ProviderMetadata["last4"])
	assert.Equal(t, "card", res.Data.ProviderMetadata["channel"])
}

func TestPaystackAdapter_GetTransactionStatus_AbandonedMapsToCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(paystackVerifyBody(map[string]any{"status": "abandoned"}))
	}))
	defer srv.Close()

	adapter := newPaystackAdapter(srv.Client(), srv.URL, "sk_test")
	res := adapter.GetTransactionStatus(context.Background(), "ref-1")

	require.True(t, res.Success)
	assert.Equal(t, model.StatusCancelled, res.Data.Status)
}

func TestPaystackAdapter_GetTransactionStatus_MissingAmount(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(paystackVerifyBody(map[string]any{"amount": nil}))
	}))
	defer srv.Close()

	adapter := newPaystackAdapter(srv.Client(), srv.URL, "sk_test")
	res := adapter.GetTransactionStatus(context.Background(), "ref-1")

	assert.False(t, res.Success)
	require.NotNil(t, res.Error)
	assert.Equal(t, "malformed_response", res.Error.ProviderCode)
	assert.Contains(t, res.Error.ProviderMessage, "amount")
}

func TestPaystackAdapter_GetTransactionStatus_VerificationFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status": false, "message": "Transaction reference not found"}`))
	}))
	defer srv.Close()

	adapter := newPaystackAdapter(srv.Client(), srv.URL, "sk_test")
	res := adapter.GetTransactionStatus(context.Background(), "missing")

	assert.False(t, res.Success)
	require.NotNil(t, res.Error)
	assert.Equal(t, model.ErrCodeProviderError, res.Error.Code)
	assert.Equal(t, "Transaction reference not found", res.Error.ProviderMessage)
}
