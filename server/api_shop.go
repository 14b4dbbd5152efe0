package storefrontserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	catalogtypes "github.com/wollylully/storefront/internal/domains/catalog/application/types"
	catalogdomain "github.com/wollylully/storefront/internal/domains/catalog/domain"
	catalogports "github.com/wollylully/storefront/internal/domains/catalog/ports"
)

// ShopAPI wires HTTP transport with the catalog bounded context service.
type ShopAPI struct {
	service catalogports.Service
}

// NewShopAPI creates a ShopAPI backed by the provided service.
func NewShopAPI(service catalogports.Service) ShopAPI {
	return ShopAPI{service: service}
}

// Get /v1/shop/products
// Shop grid rendered for the pristine filter state
func (api *ShopAPI) ListProducts(c *gin.Context) {
	result, err := api.service.Apply(c.Request.Context(), catalogtypes.ApplyInput{
		State: catalogdomain.NewFilterState(),
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Post /v1/shop/view
// Apply a filter action and render the resulting grid
func (api *ShopAPI) ApplyShopView(c *gin.Context) {
	var input catalogtypes.ApplyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	result, err := api.service.Apply(c.Request.Context(), input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
