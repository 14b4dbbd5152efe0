package storefrontserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	checkoutports "github.com/wollylully/storefront/internal/domains/checkout/ports"
)

// CheckoutAPI wires HTTP transport with the checkout bounded context
// service.
type CheckoutAPI struct {
	service checkoutports.Service
}

// NewCheckoutAPI creates a CheckoutAPI backed by the provided service.
func NewCheckoutAPI(service checkoutports.Service) CheckoutAPI {
	return CheckoutAPI{service: service}
}

// Get /v1/checkout/summary
// Order summary for the visitor's cart, demo order when empty
func (api *CheckoutAPI) GetCheckoutSummary(c *gin.Context) {
	summary, err := api.service.Summary(c.Request.Context(), sessionKey(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
