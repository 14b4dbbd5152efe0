//go:build pact
// +build pact

package provider_test

import (
	"errors"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	pacttest "github.com/wollylully/storefront/test/pact"

	cartmemory "github.com/wollylully/storefront/internal/domains/cart/adapters/memory"
	cartobs "github.com/wollylully/storefront/internal/domains/cart/adapters/observability"
	cartapp "github.com/wollylully/storefront/internal/domains/cart/application"
	catalogmemory "github.com/wollylully/storefront/internal/domains/catalog/adapters/memory"
	catalogobs "github.com/wollylully/storefront/internal/domains/catalog/adapters/observability"
	catalogapp "github.com/wollylully/storefront/internal/domains/catalog/application"
	checkoutapp "github.com/wollylully/storefront/internal/domains/checkout/application"
	chromememory "github.com/wollylully/storefront/internal/domains/chrome/adapters/memory"
	chromeapp "github.com/wollylully/storefront/internal/domains/chrome/application"
	storefrontserver "github.com/wollylully/storefront/server"

	"github.com/gin-gonic/gin"
	"github.com/pact-foundation/pact-go/v2/models"
	pactprovider "github.com/pact-foundation/pact-go/v2/provider"
	"github.com/stretchr/testify/require"
)

func TestStorefrontProviderPact(t *testing.T) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	app := newContractProviderApp(t)
	pactFile := filepath.ToSlash(pacttest.PactFile(t))
	if _, err := os.Stat(pactFile); errors.Is(err, os.ErrNotExist) {
		t.Fatalf("pact file not found at %s - run the pact consumer tests first", pactFile)
	} else {
		require.NoError(t, err)
	}

	verifier := pactprovider.NewVerifier()

	// Requests without a session cookie get a fresh cart slot, so both
	// states hold without touching provider storage.
	stateHandlers := models.StateHandlers{
		pacttest.StateCartBaseline: func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
			return nil, nil
		},
		pacttest.StateCheckoutDemo: func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
			return nil, nil
		},
	}

	err := verifier.VerifyProvider(t, pactprovider.VerifyRequest{
		ProviderBaseURL: app.server.URL,
		Provider:        pacttest.ProviderName,
		PactFiles:       []string{pactFile},
		StateHandlers:   stateHandlers,
	})
	require.NoError(t, err)
}

type contractProviderApp struct {
	carts  *cartmemory.Store
	server *httptest.Server
}

func newContractProviderApp(t testing.TB) *contractProviderApp {
	t.Helper()

	cartStore := cartmemory.NewStore()
	cartService := cartobs.New(cartapp.NewService(cartStore))
	catalogService := catalogobs.New(catalogapp.NewService(catalogmemory.NewRepository()))
	checkoutService := checkoutapp.NewService(cartStore)
	chromeService := chromeapp.NewService(chromememory.NewStore())

	handlers := storefrontserver.ApiHandleFunctions{
		CartAPI:     storefrontserver.NewCartAPI(cartService, chromeService),
		ShopAPI:     storefrontserver.NewShopAPI(catalogService),
		CheckoutAPI: storefrontserver.NewCheckoutAPI(checkoutService),
		UIAPI:       storefrontserver.NewUIAPI(chromeService),
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router = storefrontserver.NewRouterWithGinEngine(router, handlers)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &contractProviderApp{
		carts:  cartStore,
		server: server,
	}
}
