package gin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/paydeck/paydeck/internal/model"
)

// respond writes an envelope with the HTTP status implied by its
// outcome. Local validation failures are client errors, provider
// failures are upstream errors.
func respond[T any](c *gin.Context, res model.Response[T]) {
	if res.Success {
		c.JSON(http.StatusOK, res)
		return
	}

	status := http.StatusInternalServerError
	if res.Error != nil {
		switch res.Error.Code {
		case model.ErrCodeUnsupportedPaymentMethod, model.ErrCodeUnsupportedCountry:
			status = http.StatusBadRequest
		case model.ErrCodeNotImplemented:
			status = http.StatusNotImplemented
		case model.ErrCodeProviderError:
			status = http.StatusBadGateway
		}
	}
	c.JSON(status, res)
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "invalid_input",
			"message": message,
		},
	})
}

func providerNotFound(c *gin.Context, name string) {
	c.JSON(http.StatusNotFound, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "provider_not_found",
			"message": "no adapter registered for provider: " + name,
		},
	})
}
