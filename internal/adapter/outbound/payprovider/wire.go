package payprovider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/paydeck/paydeck/internal/model"
)

// doJSON performs an authenticated JSON exchange against a provider
// endpoint and decodes the response body into out. Network failures,
// timeouts, and non-2xx statuses all come back as errors; adapters
// surface them as PROVIDER_ERROR envelopes.
func doJSON(ctx context.Context, client *http.Client, method, url, secretKey string, body, out any) error {
	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+secretKey)

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("provider returned status %d: %s", resp.StatusCode, string(respBody))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// requireAmount parses a provider monetary field. An absent field is an
// error rather than zero: financial amounts are never fabricated.
func requireAmount(n *json.Number, field string) (decimal.Decimal, error) {
	if n == nil {
		return decimal.Decimal{}, fmt.Errorf("missing field %q", field)
	}
	d, err := decimal.NewFromString(n.String())
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid value %q for field %q", n.String(), field)
	}
	return d, nil
}

// mapStatus normalizes a provider status string through the adapter's
// mapping table. Unknown statuses fail closed to FAILED.
func mapStatus(table map[string]model.TransactionStatus, raw string) model.TransactionStatus {
	if status, ok := table[strings.ToLower(raw)]; ok {
		return status
	}
	return model.StatusFailed
}

// parseTimestamp parses a provider transaction timestamp. When the value
// does not match the provider's documented format the call still
// succeeds with the current time: timestamp precision is sacrificed
// rather than discarding an otherwise-valid record.
func parseTimestamp(raw string) time.Time {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return time.Now()
}
