package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Provider identifies a supported payment provider.
type Provider string

const (
	ProviderFlutterwave Provider = "flutterwave"
	ProviderPaystack    Provider = "paystack"
)

// PaymentMethod is the canonical payment method taxonomy. Each provider
// declares the subset it accepts together with its own string encoding.
type PaymentMethod string

const (
	MethodCard         PaymentMethod = "CARD"
	MethodBankTransfer PaymentMethod = "BANK_TRANSFER"
	MethodUSSD         PaymentMethod = "USSD"
	MethodMobileMoney  PaymentMethod = "MOBILE_MONEY"
	MethodBankAccount  PaymentMethod = "BANK_ACCOUNT"
	MethodQR           PaymentMethod = "QR"
)

// TransactionStatus is the canonical transaction status taxonomy.
// Provider statuses outside an adapter's mapping table normalize to
// StatusFailed, never to an optimistic state.
type TransactionStatus string

const (
	StatusSuccessful TransactionStatus = "SUCCESSFUL"
	StatusFailed     TransactionStatus = "FAILED"
	StatusCancelled  TransactionStatus = "CANCELLED"
	StatusPending    TransactionStatus = "PENDING"
)

// Customer carries customer details for a checkout. All fields are
// optional; validation is a caller responsibility.
type Customer struct {
	FirstName   string `json:"first_name,omitempty"`
	LastName    string `json:"last_name,omitempty"`
	Email       string `json:"email,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
	CountryCode string `json:"country_code,omitempty"`
}

// CheckoutCustomization holds the presentation and redirect settings for
// a hosted checkout page.
type CheckoutCustomization struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	LogoURL     string `json:"logo_url,omitempty"`
	ReturnURL   string `json:"return_url,omitempty"`
	CancelURL   string `json:"cancel_url,omitempty"`
	WebhookURL  string `json:"webhook_url,omitempty"`
}

// CheckoutRequest is the canonical request for initiating a hosted
// checkout. Amount is expressed in the major currency unit; adapters own
// any minor-unit conversion a provider's wire format requires. Reference
// is the caller-assigned merchant reference and must be unique per
// attempt, since it doubles as the idempotency key for the caller's
// retry policy.
type CheckoutRequest struct {
	Reference      string                `json:"reference"`
	Amount         decimal.Decimal       `json:"amount"`
	Currency       string                `json:"currency"`
	Customer       Customer              `json:"customer"`
	PaymentMethods []PaymentMethod       `json:"payment_methods"`
	Metadata       map[string]string     `json:"metadata,omitempty"`
	Customization  CheckoutCustomization `json:"customization"`
}

// CheckoutResponseData is the normalized result of a checkout
// initiation. ProviderMetadata keeps provider-specific identifiers
// verbatim for forward compatibility.
type CheckoutResponseData struct {
	CheckoutURL       string            `json:"checkout_url"`
	TransactionID     string            `json:"transaction_id"`
	ProviderReference string            `json:"provider_reference"`
	ProviderMetadata  map[string]string `json:"provider_metadata,omitempty"`
}

// TransactionData is the normalized view of a provider transaction. All
// monetary fields are in the major currency unit.
type TransactionData struct {
	TransactionID     string            `json:"transaction_id"`
	ProviderReference string            `json:"provider_reference"`
	MerchantReference string            `json:"merchant_reference"`
	Status            TransactionStatus `json:"status"`
	Amount            decimal.Decimal   `json:"amount"`
	ChargedAmount     decimal.Decimal   `json:"charged_amount"`
	SettledAmount     decimal.Decimal   `json:"settled_amount"`
	FeeAmount         decimal.Decimal   `json:"fee_amount"`
	Currency          string            `json:"currency"`
	TransactionDate   time.Time         `json:"transaction_date"`
	PaymentMethod     string            `json:"payment_method"`
	ProviderMetadata  map[string]string `json:"provider_metadata,omitempty"`
}

// Bank is one entry in a provider's bank directory.
type Bank struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	CountryCode string `json:"country_code,omitempty"`
}

// BanksRequest filters a bank listing. CountryCode is an ISO 3166-1
// alpha-2 code; adapters resolve it to the provider's own country
// vocabulary before querying.
type BanksRequest struct {
	CountryCode string `json:"country_code,omitempty"`
}

// PayoutRequest is the canonical request for initiating a payout to a
// bank account.
type PayoutRequest struct {
	Reference     string            `json:"reference"`
	Amount        decimal.Decimal   `json:"amount"`
	Currency      string            `json:"currency"`
	BankCode      string            `json:"bank_code"`
	AccountNumber string            `json:"account_number"`
	AccountName   string            `json:"account_name,omitempty"`
	Narration     string            `json:"narration,omitempty"`
	Customer      Customer          `json:"customer"`
	Metadata      map[string]string `json:"metadata,omitempty"`
}
