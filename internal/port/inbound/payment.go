package inbound

import (
	"github.com/gin-gonic/gin"
)

// DepositHttpPort handles deposit HTTP endpoints.
type DepositHttpPort interface {
	InitiateCheckout(c *gin.Context)
	GetTransactionStatus(c *gin.Context)
}

// PayoutHttpPort handles payout HTTP endpoints.
type PayoutHttpPort interface {
	ListBanks(c *gin.Context)
	InitiatePayout(c *gin.Context)
	FetchTransaction(c *gin.Context)
}

// ProviderHttpPort handles provider discovery endpoints.
type ProviderHttpPort interface {
	ListProviders(c *gin.Context)
}
