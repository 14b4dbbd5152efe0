package storefrontserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	carttypes "github.com/wollylully/storefront/internal/domains/cart/application/types"
	cartdomain "github.com/wollylully/storefront/internal/domains/cart/domain"
	cartports "github.com/wollylully/storefront/internal/domains/cart/ports"
	chromeports "github.com/wollylully/storefront/internal/domains/chrome/ports"
)

// CartAPI wires HTTP transport with the cart bounded context service. The
// chrome service receives the notices that accompany cart outcomes.
type CartAPI struct {
	service cartports.Service
	chrome  chromeports.Service
}

// NewCartAPI creates a CartAPI backed by the provided services.
func NewCartAPI(service cartports.Service, chrome chromeports.Service) CartAPI {
	return CartAPI{service: service, chrome: chrome}
}

// AddCartItemPayload is the add-to-cart request body. Field names follow
// the stored cart line layout.
type AddCartItemPayload struct {
	ProductID   string  `json:"id" binding:"required"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Size        string  `json:"size"`
	Colour      string  `json:"colour"`
	Composition string  `json:"composition"`
	Fit         string  `json:"fit"`
	Image       string  `json:"image"`
}

// ChangeQuantityPayload adjusts a line by a signed step.
type ChangeQuantityPayload struct {
	Delta int `json:"delta" binding:"required"`
}

// CartResponse bundles the drawer and the header badge so one round trip
// refreshes both.
type CartResponse struct {
	Drawer *carttypes.DrawerView `json:"drawer"`
	Badge  *carttypes.BadgeView  `json:"badge"`
}

// Get /v1/cart
// Current cart drawer and badge
func (api *CartAPI) GetCart(c *gin.Context) {
	key := sessionKey(c)
	drawer, err := api.service.Drawer(c.Request.Context(), key)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	api.respondCart(c, key, drawer)
}

// Get /v1/cart/badge
// Header badge only, for lightweight polling
func (api *CartAPI) GetCartBadge(c *gin.Context) {
	badge, err := api.service.Badge(c.Request.Context(), sessionKey(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, badge)
}

// Post /v1/cart/items
// Add an item to the cart
func (api *CartAPI) AddCartItem(c *gin.Context) {
	var payload AddCartItemPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	key := sessionKey(c)
	drawer, err := api.service.AddItem(c.Request.Context(), carttypes.AddItemInput{
		CartKey: key,
		Item: cartdomain.LineItem{
			ProductID:   payload.ProductID,
			Name:        payload.Name,
			Price:       payload.Price,
			Size:        payload.Size,
			Colour:      payload.Colour,
			Composition: payload.Composition,
			Fit:         payload.Fit,
			Image:       payload.Image,
		},
	})
	if err != nil {
		api.notifyRejection(c, key, err)
		respondServiceError(c, err)
		return
	}
	api.respondCart(c, key, drawer)
}

// Patch /v1/cart/items/:productId/:size
// Adjust a line's quantity by a signed delta
func (api *CartAPI) ChangeCartItemQuantity(c *gin.Context) {
	var payload ChangeQuantityPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	key := sessionKey(c)
	drawer, err := api.service.ChangeQuantity(c.Request.Context(), carttypes.ChangeQuantityInput{
		LineRef: carttypes.LineRef{
			CartKey:   key,
			ProductID: c.Param("productId"),
			Size:      c.Param("size"),
		},
		Delta: payload.Delta,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	api.respondCart(c, key, drawer)
}

// Delete /v1/cart/items/:productId/:size
// Remove a line entirely
func (api *CartAPI) RemoveCartItem(c *gin.Context) {
	key := sessionKey(c)
	drawer, err := api.service.RemoveItem(c.Request.Context(), carttypes.LineRef{
		CartKey:   key,
		ProductID: c.Param("productId"),
		Size:      c.Param("size"),
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	api.respondCart(c, key, drawer)
}

// Delete /v1/cart
// Empty the cart
func (api *CartAPI) ClearCart(c *gin.Context) {
	key := sessionKey(c)
	if err := api.service.Clear(c.Request.Context(), key); err != nil {
		respondServiceError(c, err)
		return
	}
	drawer, err := api.service.Drawer(c.Request.Context(), key)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	api.respondCart(c, key, drawer)
}

func (api *CartAPI) respondCart(c *gin.Context, key string, drawer *carttypes.DrawerView) {
	badge, err := api.service.Badge(c.Request.Context(), key)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, CartResponse{Drawer: drawer, Badge: badge})
}

// notifyRejection mirrors the size-gate rejection into the chrome notice
// center so a subsequent UI state fetch sees it too.
func (api *CartAPI) notifyRejection(c *gin.Context, key string, err error) {
	if api.chrome == nil {
		return
	}
	if problem := sizeGateNotice(err); problem != "" {
		_, _ = api.chrome.Notify(c.Request.Context(), key, problem, "shake")
	}
}
