package model

// ErrorCode is the closed set of stable error codes callers branch on.
type ErrorCode string

const (
	// ErrCodeUnsupportedPaymentMethod signals a local rejection before any
	// network call: the requested methods are not a subset of the
	// provider's declared set.
	ErrCodeUnsupportedPaymentMethod ErrorCode = "UNSUPPORTED_PAYMENT_METHOD"

	// ErrCodeUnsupportedCountry signals a local rejection: the provider
	// has no entry for the requested country.
	ErrCodeUnsupportedCountry ErrorCode = "UNSUPPORTED_COUNTRY"

	// ErrCodeProviderError covers transport failures, provider-reported
	// business failures, and malformed provider payloads.
	ErrCodeProviderError ErrorCode = "PROVIDER_ERROR"

	// ErrCodeNotImplemented is returned by providers that declare an
	// operation they do not yet support.
	ErrCodeNotImplemented ErrorCode = "NOT_IMPLEMENTED"
)

// ErrorData carries failure detail. ProviderCode and ProviderMessage are
// set only when the failure originates from the remote provider, so
// callers can distinguish local validation from provider rejection.
type ErrorData struct {
	Code            ErrorCode `json:"code"`
	Message         string    `json:"message"`
	ProviderCode    string    `json:"provider_code,omitempty"`
	ProviderMessage string    `json:"provider_message,omitempty"`
}

// Response is the envelope every adapter operation returns: exactly one
// of the success or error variants, never a raised failure for expected
// conditions.
type Response[T any] struct {
	Success bool       `json:"success"`
	Data    T          `json:"data,omitempty"`
	Error   *ErrorData `json:"error,omitempty"`
}

// Success wraps typed data in a success envelope.
func Success[T any](data T) Response[T] {
	return Response[T]{Success: true, Data: data}
}

// Error builds an error envelope for a failure detected locally.
func Error[T any](code ErrorCode, message string) Response[T] {
	return Response[T]{
		Success: false,
		Error:   &ErrorData{Code: code, Message: message},
	}
}

// ProviderError builds an error envelope for a failure reported by the
// remote provider, preserving the provider's raw status and message for
// diagnostics.
func ProviderError[T any](code ErrorCode, message, providerCode, providerMessage string) Response[T] {
	return Response[T]{
		Success: false,
		Error: &ErrorData{
			Code:            code,
			Message:         message,
			ProviderCode:    providerCode,
			ProviderMessage: providerMessage,
		},
	}
}
