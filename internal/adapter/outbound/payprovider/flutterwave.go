package payprovider

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/paydeck/paydeck/internal/model"
	"github.com/paydeck/paydeck/internal/port/outbound"
)

const flutterwaveBaseURL = "https://api.flutterwave.com/v3"

// flutterwaveMethods is Flutterwave's payment method encoding table; its
// keys are the declared supported set.
var flutterwaveMethods = map[model.PaymentMethod]string{
	model.MethodCard:         "card",
	model.MethodBankTransfer: "banktransfer",
	model.MethodUSSD:         "ussd",
	model.MethodMobileMoney:  "mobilemoney",
}

// flutterwaveStatuses maps Flutterwave transaction statuses to the
// canonical taxonomy. Anything else fails closed.
var flutterwaveStatuses = map[string]model.TransactionStatus{
	"successful": model.StatusSuccessful,
	"failed":     model.StatusFailed,
	"cancelled":  model.StatusCancelled,
	"pending":    model.StatusPending,
}

// FlutterwaveAdapter implements the deposit contract for Flutterwave.
type FlutterwaveAdapter struct {
	*BaseAdapter
	client    *http.Client
	baseURL   string
	secretKey string
}

// NewFlutterwaveAdapter creates a Flutterwave adapter bound to the given
// credential and Flutterwave's fixed base endpoint.
func NewFlutterwaveAdapter(client *http.Client, secretKey string) *FlutterwaveAdapter {
	return newFlutterwaveAdapter(client, flutterwaveBaseURL, secretKey)
}

func newFlutterwaveAdapter(client *http.Client, baseURL, secretKey string) *FlutterwaveAdapter {
	return &FlutterwaveAdapter{
		BaseAdapter: NewBaseAdapter(flutterwaveMethods),
		client:      client,
		baseURL:     baseURL,
		secretKey:   secretKey,
	}
}

// Name returns the stable provider identifier.
func (a *FlutterwaveAdapter) Name() string {
	return string(model.ProviderFlutterwave)
}

// InitiateCheckout creates a Flutterwave hosted payment page.
func (a *FlutterwaveAdapter) InitiateCheckout(ctx context.Context, req *model.CheckoutRequest) model.Response[*model.CheckoutResponseData] {
	if !a.SupportsPaymentMethods(req.PaymentMethods) {
		return model.Error[*model.CheckoutResponseData](
			model.ErrCodeUnsupportedPaymentMethod,
			"one or more of the requested payment methods is not supported by Flutterwave",
		)
	}

	var resp struct {
		Status  string `json:"status"`
		Message string `json:"message"`
		Data    struct {
			Link          string `json:"link"`
			TransactionID string `json:"transaction_id"`
			FlwRef        string `json:"flw_ref"`
			TxRef         string `json:"tx_ref"`
		} `json:"data"`
	}
	err := doJSON(ctx, a.client, http.MethodPost, a.baseURL+"/payments", a.secretKey, a.buildCheckoutPayload(req), &resp)
	if err != nil {
		return model.Error[*model.CheckoutResponseData](
			model.ErrCodeProviderError,
			"failed to communicate with Flutterwave: "+err.Error(),
		)
	}

	if !strings.EqualFold(resp.Status, "success") {
		return model.ProviderError[*model.CheckoutResponseData](
			model.ErrCodeProviderError,
			"Flutterwave request failed",
			resp.Status,
			resp.Message,
		)
	}

	return model.Success(&model.CheckoutResponseData{
		CheckoutURL:       resp.Data.Link,
		TransactionID:     resp.Data.TransactionID,
		ProviderReference: resp.Data.FlwRef,
		ProviderMetadata: map[string]string{
			"flw_ref": resp.Data.FlwRef,
			"tx_ref":  resp.Data.TxRef,
		},
	})
}

// GetTransactionStatus verifies a transaction and normalizes the result.
func (a *FlutterwaveAdapter) GetTransactionStatus(ctx context.Context, transactionID string) model.Response[*model.TransactionData] {
	var resp struct {
		Status  string                 `json:"status"`
		Message string                 `json:"message"`
		Data    flutterwaveTransaction `json:"data"`
	}
	err := doJSON(ctx, a.client, http.MethodGet, a.baseURL+"/transactions/"+transactionID+"/verify", a.secretKey, nil, &resp)
	if err != nil {
		return model.Error[*model.TransactionData](
			model.ErrCodeProviderError,
			"failed to get transaction status from Flutterwave: "+err.Error(),
		)
	}

	if !strings.EqualFold(resp.Status, "success") {
		return model.ProviderError[*model.TransactionData](
			model.ErrCodeProviderError,
			"Flutterwave transaction verification failed",
			resp.Status,
			resp.Message,
		)
	}

	return a.normalizeTransaction(&resp.Data)
}

func (a *FlutterwaveAdapter) buildCheckoutPayload(req *model.CheckoutRequest) map[string]any {
	return map[string]any{
		"tx_ref":          req.Reference,
		"amount":          req.Amount.String(),
		"currency":        req.Currency,
		"payment_options": strings.Join(a.EncodeMethods(req.PaymentMethods), ","),
		"redirect_url":    req.Customization.ReturnURL,
		"customer": map[string]string{
			"email":        req.Customer.Email,
			"phone_number": req.Customer.PhoneNumber,
			"name":         strings.TrimSpace(req.Customer.FirstName + " " + req.Customer.LastName),
		},
		"customizations": map[string]string{
			"title":       req.Customization.Title,
			"description": req.Customization.Description,
			"logo":        req.Customization.LogoURL,
		},
		"meta": req.Metadata,
	}
}

type flutterwaveTransaction struct {
	ID                json.Number  `json:"id"`
	TxRef             string       `json:"tx_ref"`
	FlwRef            string       `json:"flw_ref"`
	Status            string       `json:"status"`
	Amount            *json.Number `json:"amount"`
	ChargedAmount     *json.Number `json:"charged_amount"`
	AmountSettled     *json.Number `json:"amount_settled"`
	AppFee            *json.Number `json:"app_fee"`
	Currency          string       `json:"currency"`
	CreatedAt         string       `json:"created_at"`
	PaymentType       string       `json:"payment_type"`
	ProcessorResponse string       `json:"processor_response"`
}

func (a *FlutterwaveAdapter) normalizeTransaction(tx *flutterwaveTransaction) model.Response[*model.TransactionData] {
	malformed := func(err error) model.Response[*model.TransactionData] {
		return model.ProviderError[*model.TransactionData](
			model.ErrCodeProviderError,
			"Flutterwave returned a malformed transaction payload",
			"malformed_response",
			err.Error(),
		)
	}

	amount, err := requireAmount(tx.Amount, "amount")
	if err != nil {
		return malformed(err)
	}
	charged, err := requireAmount(tx.ChargedAmount, "charged_amount")
	if err != nil {
		return malformed(err)
	}
	settled, err := requireAmount(tx.AmountSettled, "amount_settled")
	if err != nil {
		return malformed(err)
	}
	fee, err := requireAmount(tx.AppFee, "app_fee")
	if err != nil {
		return malformed(err)
	}

	return model.Success(&model.TransactionData{
		TransactionID:     tx.ID.String(),
		MerchantReference: tx.TxRef,
		ProviderReference: tx.FlwRef,
		Status:            mapStatus(flutterwaveStatuses, tx.Status),
		Amount:            amount,
		ChargedAmount:     charged,
		SettledAmount:     settled,
		FeeAmount:         fee,
		Currency:          tx.Currency,
		TransactionDate:   parseTimestamp(tx.CreatedAt),
		PaymentMethod:     tx.PaymentType,
		ProviderMetadata: map[string]string{
			"flw_ref":            tx.FlwRef,
			"processor_response": tx.ProcessorResponse,
		},
	})
}

// Compile-time interface assertion
var _ outbound.DepositProviderPort = (*FlutterwaveAdapter)(nil)
