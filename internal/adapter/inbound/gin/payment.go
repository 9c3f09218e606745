package gin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/paydeck/paydeck/internal/model"
	"github.com/paydeck/paydeck/internal/port/inbound"
	"github.com/paydeck/paydeck/internal/port/outbound"
)

// depositAdapter implements inbound.DepositHttpPort.
type depositAdapter struct {
	registry outbound.ProviderRegistryPort
}

// NewDepositAdapter creates a new deposit HTTP adapter.
func NewDepositAdapter(registry outbound.ProviderRegistryPort) inbound.DepositHttpPort {
	return &depositAdapter{registry: registry}
}

// RegisterDepositRoutes registers deposit routes under a provider group.
func RegisterDepositRoutes(r *gin.RouterGroup, adapter inbound.DepositHttpPort) {
	r.POST("/checkout", adapter.InitiateCheckout)
	r.GET("/transactions/:id", adapter.GetTransactionStatus)
}

func (a *depositAdapter) InitiateCheckout(c *gin.Context) {
	provider, ok := a.depositProvider(c)
	if !ok {
		return
	}

	var req model.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	respond(c, provider.InitiateCheckout(c.Request.Context(), &req))
}

func (a *depositAdapter) GetTransactionStatus(c *gin.Context) {
	provider, ok := a.depositProvider(c)
	if !ok {
		return
	}

	respond(c, provider.GetTransactionStatus(c.Request.Context(), c.Param("id")))
}

func (a *depositAdapter) depositProvider(c *gin.Context) (outbound.DepositProviderPort, bool) {
	name := c.Param("provider")
	provider, err := a.registry.DepositProvider(model.Provider(name))
	if err != nil {
		providerNotFound(c, name)
		return nil, false
	}
	return provider, true
}

// Compile-time check
var _ inbound.DepositHttpPort = (*depositAdapter)(nil)

// --- Payout Adapter ---

// payoutAdapter implements inbound.PayoutHttpPort.
type payoutAdapter struct {
	registry outbound.ProviderRegistryPort
}

// NewPayoutAdapter creates a new payout HTTP adapter.
func NewPayoutAdapter(registry outbound.ProviderRegistryPort) inbound.PayoutHttpPort {
	return &payoutAdapter{registry: registry}
}

// RegisterPayoutRoutes registers payout routes under a provider group.
func RegisterPayoutRoutes(r *gin.RouterGroup, adapter inbound.PayoutHttpPort) {
	r.GET("/banks", adapter.ListBanks)
	r.POST("/payouts", adapter.InitiatePayout)
	r.GET("/payouts/:reference", adapter.FetchTransaction)
}

func (a *payoutAdapter) ListBanks(c *gin.Context) {
	provider, ok := a.payoutProvider(c)
	if !ok {
		return
	}

	req := model.BanksRequest{CountryCode: c.Query("country")}
	respond(c, provider.ListBanks(c.Request.Context(), &req))
}

func (a *payoutAdapter) InitiatePayout(c *gin.Context) {
	provider, ok := a.payoutProvider(c)
	if !ok {
		return
	}

	var req model.PayoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	respond(c, provider.InitiatePayout(c.Request.Context(), &req))
}

func (a *payoutAdapter) FetchTransaction(c *gin.Context) {
	provider, ok := a.payoutProvider(c)
	if !ok {
		return
	}

	respond(c, provider.FetchTransaction(c.Request.Context(), c.Param("reference")))
}

func (a *payoutAdapter) payoutProvider(c *gin.Context) (outbound.PayoutProviderPort, bool) {
	name := c.Param("provider")
	provider, err := a.registry.PayoutProvider(model.Provider(name))
	if err != nil {
		providerNotFound(c, name)
		return nil, false
	}
	return provider, true
}

// Compile-time check
var _ inbound.PayoutHttpPort = (*payoutAdapter)(nil)

// --- Provider Discovery Adapter ---

// providerAdapter implements inbound.ProviderHttpPort.
type providerAdapter struct {
	registry outbound.ProviderRegistryPort
}

// NewProviderAdapter creates a new provider discovery adapter.
func NewProviderAdapter(registry outbound.ProviderRegistryPort) inbound.ProviderHttpPort {
	return &providerAdapter{registry: registry}
}

// RegisterProviderRoutes registers provider discovery routes.
func RegisterProviderRoutes(r *gin.RouterGroup, adapter inbound.ProviderHttpPort) {
	r.GET("/providers", adapter.ListProviders)
}

func (a *providerAdapter) ListProviders(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"deposit": a.registry.DepositProviders(),
			"payout":  a.registry.PayoutProviders(),
		},
	})
}

// Compile-time check
var _ inbound.ProviderHttpPort = (*providerAdapter)(nil)
