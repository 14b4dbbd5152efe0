// Package storefrontserver exposes the storefront interactivity layer over
// HTTP. Handlers are thin: they resolve the visitor session, bind payloads
// and delegate to the bounded context services.
package storefrontserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionCookie identifies the visitor across requests. The cart slot and
// the UI chrome state are both keyed by it.
const SessionCookie = "cart_session"

const sessionCookieMaxAge = 30 * 24 * 60 * 60

// Route is the information for every API endpoint.
type Route struct {
	Name        string
	Method      string
	Pattern     string
	HandlerFunc gin.HandlerFunc
}

// Routes is a map of defined API endpoints.
type Routes map[string][]Route

// ApiHandleFunctions holds the API handler groups.
type ApiHandleFunctions struct {
	CartAPI     CartAPI
	ShopAPI     ShopAPI
	CheckoutAPI CheckoutAPI
	UIAPI       UIAPI
}

// NewRouter returns a new router with all API routes attached.
func NewRouter(handleFunctions ApiHandleFunctions) *gin.Engine {
	return NewRouterWithGinEngine(gin.Default(), handleFunctions)
}

// NewRouterWithGinEngine attaches the API routes to an existing engine.
func NewRouterWithGinEngine(router *gin.Engine, handleFunctions ApiHandleFunctions) *gin.Engine {
	for _, routes := range getRoutes(handleFunctions) {
		for _, route := range routes {
			if route.HandlerFunc == nil {
				route.HandlerFunc = defaultHandleFunc
			}
			switch route.Method {
			case http.MethodGet:
				router.GET(route.Pattern, route.HandlerFunc)
			case http.MethodPost:
				router.POST(route.Pattern, route.HandlerFunc)
			case http.MethodPatch:
				router.PATCH(route.Pattern, route.HandlerFunc)
			case http.MethodDelete:
				router.DELETE(route.Pattern, route.HandlerFunc)
			}
		}
	}
	return router
}

func defaultHandleFunc(c *gin.Context) {
	c.String(http.StatusNotImplemented, "501 not implemented")
}

func getRoutes(handleFunctions ApiHandleFunctions) Routes {
	return Routes{
		"CartAPI": {
			{"GetCart", http.MethodGet, "/v1/cart", handleFunctions.CartAPI.GetCart},
			{"GetCartBadge", http.MethodGet, "/v1/cart/badge", handleFunctions.CartAPI.GetCartBadge},
			{"AddCartItem", http.MethodPost, "/v1/cart/items", handleFunctions.CartAPI.AddCartItem},
			{"ChangeCartItemQuantity", http.MethodPatch, "/v1/cart/items/:productId/:size", handleFunctions.CartAPI.ChangeCartItemQuantity},
			{"RemoveCartItem", http.MethodDelete, "/v1/cart/items/:productId/:size", handleFunctions.CartAPI.RemoveCartItem},
			{"ClearCart", http.MethodDelete, "/v1/cart", handleFunctions.CartAPI.ClearCart},
		},
		"ShopAPI": {
			{"ListProducts", http.MethodGet, "/v1/shop/products", handleFunctions.ShopAPI.ListProducts},
			{"ApplyShopView", http.MethodPost, "/v1/shop/view", handleFunctions.ShopAPI.ApplyShopView},
		},
		"CheckoutAPI": {
			{"GetCheckoutSummary", http.MethodGet, "/v1/checkout/summary", handleFunctions.CheckoutAPI.GetCheckoutSummary},
		},
		"UIAPI": {
			{"GetUIState", http.MethodGet, "/v1/ui/state", handleFunctions.UIAPI.GetUIState},
			{"GetHeaderState", http.MethodGet, "/v1/ui/header", handleFunctions.UIAPI.GetHeaderState},
			{"OpenPanel", http.MethodPost, "/v1/ui/panels/:panel/open", handleFunctions.UIAPI.OpenPanel},
			{"ClosePanel", http.MethodPost, "/v1/ui/panels/:panel/close", handleFunctions.UIAPI.ClosePanel},
			{"UpdateSelection", http.MethodPost, "/v1/ui/selection", handleFunctions.UIAPI.UpdateSelection},
			{"ToggleAccordion", http.MethodPost, "/v1/ui/accordions/:group/toggle", handleFunctions.UIAPI.ToggleAccordion},
		},
	}
}

// sessionKey resolves the visitor session from the request cookie, minting
// and setting a fresh one on first contact.
func sessionKey(c *gin.Context) string {
	if key, err := c.Cookie(SessionCookie); err == nil && key != "" {
		return key
	}
	key := uuid.NewString()
	c.SetCookie(SessionCookie, key, sessionCookieMaxAge, "/", "", false, true)
	return key
}
