package httpclient

import (
	"net/http"
	"sync"

	"github.com/sony/gobreaker/v2"

	"github.com/paydeck/paydeck/internal/infra/config"
)

// BreakerTransport wraps a RoundTripper with one circuit breaker per
// host. Only transport-level failures count against the breaker; a
// response with an error status is still a completed exchange and
// passes through untouched.
type BreakerTransport struct {
	next http.RoundTripper
	cfg  config.BreakerConfig

	mu       sync.Mutex
	breakers map[string]*gobreaker.CircuitBreaker[*http.Response]
}

// NewBreakerTransport wraps next with per-host circuit breaking.
func NewBreakerTransport(next http.RoundTripper, cfg config.BreakerConfig) *BreakerTransport {
	if next == nil {
		next = http.DefaultTransport
	}
	return &BreakerTransport{
		next:     next,
		cfg:      cfg,
		breakers: make(map[string]*gobreaker.CircuitBreaker[*http.Response]),
	}
}

// RoundTrip implements http.RoundTripper.
func (t *BreakerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	return t.breakerFor(req.URL.Host).Execute(func() (*http.Response, error) {
		return t.next.RoundTrip(req)
	})
}

func (t *BreakerTransport) breakerFor(host string) *gobreaker.CircuitBreaker[*http.Response] {
	t.mu.Lock()
	defer t.mu.Unlock()

	cb, ok := t.breakers[host]
	if !ok {
		threshold := t.cfg.FailureThreshold
		cb = gobreaker.NewCircuitBreaker[*http.Response](gobreaker.Settings{
			Name:        host,
			MaxRequests: t.cfg.MaxRequests,
			Interval:    t.cfg.Interval,
			Timeout:     t.cfg.Timeout,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= threshold
			},
		})
		t.breakers[host] = cb
	}
	return cb
}
