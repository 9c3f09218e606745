package payprovider

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/paydeck/paydeck/internal/model"
	"github.com/paydeck/paydeck/internal/port/outbound"
)

const paystackBaseURL = "https://api.paystack.co"

// paystackMethods is Paystack's channel encoding table. QR is
// deliberately absent: Paystack's QR channel requires a dynamic QR
// integration this adapter does not drive.
var paystackMethods = map[model.PaymentMethod]string{
	model.MethodCard:         "card",
	model.MethodBankTransfer: "bank_transfer",
	model.MethodUSSD:         "ussd",
	model.MethodMobileMoney:  "mobile_money",
	model.MethodBankAccount:  "bank",
}

var paystackStatuses = map[string]model.TransactionStatus{
	"success":   model.StatusSuccessful,
	"failed":    model.StatusFailed,
	"abandoned": model.StatusCancelled,
	"pending":   model.StatusPending,
}

// PaystackAdapter implements the deposit contract for Paystack. Paystack
// wires amounts in the minor currency unit, so the adapter converts on
// both directions of every exchange.
type PaystackAdapter struct {
	*BaseAdapter
	client    *http.Client
	baseURL   string
	secretKey string
}

// NewPaystackAdapter creates a Paystack deposit adapter bound to the
// given credential.
func NewPaystackAdapter(client *http.Client, secretKey string) *PaystackAdapter {
	return newPaystackAdapter(client, paystackBaseURL, secretKey)
}

func newPaystackAdapter(client *http.Client, baseURL, secretKey string) *PaystackAdapter {
	return &PaystackAdapter{
		BaseAdapter: NewBaseAdapter(paystackMethods),
		client:      client,
		baseURL:     baseURL,
		secretKey:   secretKey,
	}
}

// Name returns the stable provider identifier.
func (a *PaystackAdapter) Name() string {
	return string(model.ProviderPaystack)
}

// InitiateCheckout creates a Paystack hosted payment page.
func (a *PaystackAdapter) InitiateCheckout(ctx context.Context, req *model.CheckoutRequest) model.Response[*model.CheckoutResponseData] {
	if !a.SupportsPaymentMethods(req.PaymentMethods) {
		return model.Error[*model.CheckoutResponseData](
			model.ErrCodeUnsupportedPaymentMethod,
			"one or more of the requested payment methods is not supported by Paystack",
		)
	}

	payload := map[string]any{
		"reference":    req.Reference,
		"amount":       req.Amount.Mul(decimal.NewFromInt(100)).IntPart(),
		"currency":     req.Currency,
		"email":        req.Customer.Email,
		"channels":     a.EncodeMethods(req.PaymentMethods),
		"callback_url": req.Customization.ReturnURL,
		"customer": map[string]string{
			"email":      req.Customer.Email,
			"phone":      req.Customer.PhoneNumber,
			"first_name": req.Customer.FirstName,
			"last_name":  req.Customer.LastName,
		},
		"customization": map[string]string{
			"title":       req.Customization.Title,
			"description": req.Customization.Description,
			"logo":        req.Customization.LogoURL,
		},
		"metadata": req.Metadata,
	}

	var resp struct {
		Status  bool   `json:"status"`
		Message string `json:"message"`
		Data    struct {
			AuthorizationURL string `json:"authorization_url"`
			AccessCode       string `json:"access_code"`
			Reference        string `json:"reference"`
		} `json:"data"`
	}
	err := doJSON(ctx, a.client, http.MethodPost, a.baseURL+"/transaction/initialize", a.secretKey, payload, &resp)
	if err != nil {
		return model.Error[*model.CheckoutResponseData](
			model.ErrCodeProviderError,
			"failed to communicate with Paystack: "+err.Error(),
		)
	}

	if !resp.Status {
		return model.ProviderError[*model.CheckoutResponseData](
			model.ErrCodeProviderError,
			"Paystack request failed",
			"error",
			resp.Message,
		)
	}

	return model.Success(&model.CheckoutResponseData{
		CheckoutURL:       resp.Data.AuthorizationURL,
		TransactionID:     resp.Data.Reference,
		ProviderReference: resp.Data.AccessCode,
		ProviderMetadata: map[string]string{
			"access_code": resp.Data.AccessCode,
			"reference":   resp.Data.Reference,
		},
	})
}

// GetTransactionStatus verifies a transaction and normalizes the result.
func (a *PaystackAdapter) GetTransactionStatus(ctx context.Context, transactionID string) model.Response[*model.TransactionData] {
	var resp struct {
		Status  bool                `json:"status"`
		Message string              `json:"message"`
		Data    paystackTransaction `json:"data"`
	}
	err := doJSON(ctx, a.client, http.MethodGet, a.baseURL+"/transaction/verify/"+transactionID, a.secretKey, nil, &resp)
	if err != nil {
		return model.Error[*model.TransactionData](
			model.ErrCodeProviderError,
			"failed to get transaction status from Paystack: "+err.Error(),
		)
	}

	if !resp.Status {
		return model.ProviderError[*model.TransactionData](
			model.ErrCodeProviderError,
			"Paystack transaction verification failed",
			"error",
			resp.Message,
		)
	}

	return a.normalizeTransaction(&resp.Data)
}

type paystackTransaction struct {
	ID              json.Number  `json:"id"`
	Reference       string       `json:"reference"`
	Status          string       `json:"status"`
	Amount          *json.Number `json:"amount"`
	Fees            *json.Number `json:"fees"`
	Currency        string       `json:"currency"`
	PaidAt          string       `json:"paid_at"`
	CreatedAt       string       `json:"created_at"`
	Channel         string       `json:"channel"`
	GatewayResponse string       `json:"gateway_response"`
	Authorization   struct {
		AuthorizationCode string `json:"authorization_code"`
		CardType          string `json:"card_type"`
		Last4             string `json:"last4"`
	} `json:"authorization"`
}

func (a *PaystackAdapter) normalizeTransaction(tx *paystackTransaction) model.Response[*model.TransactionData] {
	malformed := func(err error) model.Response[*model.TransactionData] {
		return model.ProviderError[*model.TransactionData](
			model.ErrCodeProviderError,
			"Paystack returned a malformed transaction payload",
			"malformed_response",
			err.Error(),
		)
	}

	amountMinor, err := requireAmount(tx.Amount, "amount")
	if err != nil {
		return malformed(err)
	}
	feesMinor, err := requireAmount(tx.Fees, "fees")
	if err != nil {
		return malformed(err)
	}

	amount := amountMinor.Shift(-2)
	fee := feesMinor.Shift(-2)

	when := tx.PaidAt
	if when == "" {
		when = tx.CreatedAt
	}

	// Paystack's verify payload has no settled figure; the gross amount
	// stands in for it.
	return model.Success(&model.TransactionData{
		TransactionID:     tx.ID.String(),
		MerchantReference: tx.Reference,
		ProviderReference: tx.Authorization.AuthorizationCode,
		Status:            mapStatus(paystackStatuses, tx.Status),
		Amount:            amount,
		ChargedAmount:     amount,
		SettledAmount:     amount,
		FeeAmount:         fee,
		Currency:          tx.Currency,
		TransactionDate:   parseTimestamp(when),
		PaymentMethod:     tx.Channel,
		ProviderMetadata: map[string]string{
			"gateway_response":   tx.GatewayResponse,
			"authorization_code": tx.Authorization.AuthorizationCode,
			"card_type":          tx.Authorization.CardType,
			"last4":              tx.Authorization.Last4,
			"channel":            tx.Channel,
		},
	})
}

// Compile-time interface assertion
var _ outbound.DepositProviderPort = (*PaystackAdapter)(nil)
