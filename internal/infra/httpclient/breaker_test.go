package httpclient

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paydeck/paydeck/internal/infra/config"
)

func breakerConfig() config.BreakerConfig {
	return config.BreakerConfig{
		Enabled:          true,
		MaxRequests:      1,
		Interval:         time.Minute,
		Timeout:          time.Minute,
		FailureThreshold: 2,
	}
}

func TestNew_AppliesTimeout(t *testing.T) {
	client := New(config.HTTPClientConfig{ResponseTimeout: 5 * time.Second})
	assert.Equal(t, 5*time.Second, client.Timeout)
	assert.NotNil(t, client.Transport)
}

func TestNewWithBreaker_Disabled(t *testing.T) {
	client := NewWithBreaker(config.HTTPClientConfig{}, config.BreakerConfig{Enabled: false})
	_, ok := client.Transport.(*BreakerTransport)
	assert.False(t, ok)
}

func TestBreakerTransport_PassesThroughResponses(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	client := srv.Client()
	client.Transport = NewBreakerTransport(client.Transport, breakerConfig())

	// Error statuses are completed exchanges, not breaker failures
	for i := 0; i < 5; i++ {
		resp, err := client.Get(srv.URL)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusTeapot, resp.StatusCode)
	}
}

func TestBreakerTransport_OpensOnTransportFailures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	client := &http.Client{
		Transport: NewBreakerTransport(http.DefaultTransport, breakerConfig()),
	}

	// First failures pass through to the dead server
	for i := 0; i < 2; i++ {
		_, err := client.Get(url)
		require.Error(t, err)
	}

	// The breaker is now open and rejects without dialing
	_, err := client.Get(url)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "circuit breaker is open")
}
