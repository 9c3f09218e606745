package payprovider

import (
	"github.com/paydeck/paydeck/internal/model"
)

// BaseAdapter provides the capability check and method encoding shared
// by provider adapters. The encoding table doubles as the declared
// supported set, so an encoding can never be requested for a method that
// passed no capability check.
type BaseAdapter struct {
	encodings map[model.PaymentMethod]string
}

// NewBaseAdapter creates a base adapter from a provider's method
// encoding table.
func NewBaseAdapter(encodings map[model.PaymentMethod]string) *BaseAdapter {
	table := make(map[model.PaymentMethod]string, len(encodings))
	for m, enc := range encodings {
		table[m] = enc
	}
	return &BaseAdapter{encodings: table}
}

// SupportsPaymentMethods reports whether methods is a subset of the
// provider's declared set.
func (b *BaseAdapter) SupportsPaymentMethods(methods []model.PaymentMethod) bool {
	for _, m := range methods {
		if _, ok := b.encodings[m]; !ok {
			return false
		}
	}
	return true
}

// EncodeMethod returns the provider's encoding for a supported method.
// Callers must pass SupportsPaymentMethods first.
func (b *BaseAdapter) EncodeMethod(m model.PaymentMethod) string {
	return b.encodings[m]
}

// EncodeMethods encodes a method set in request order.
func (b *BaseAdapter) EncodeMethods(methods []model.PaymentMethod) []string {
	encoded := make([]string, 0, len(methods))
	for _, m := range methods {
		encoded = append(encoded, b.encodings[m])
	}
	return encoded
}

// SupportedMethods returns the provider's declared method set.
func (b *BaseAdapter) SupportedMethods() []model.PaymentMethod {
	methods := make([]model.PaymentMethod, 0, len(b.encodings))
	for m := range b.encodings {
		methods = append(methods, m)
	}
	return methods
}
