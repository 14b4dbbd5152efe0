package api

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	storefrontserver "github.com/wollylully/storefront/server"

	cartmemory "github.com/wollylully/storefront/internal/domains/cart/adapters/memory"
	cartobs "github.com/wollylully/storefront/internal/domains/cart/adapters/observability"
	cartpostgres "github.com/wollylully/storefront/internal/domains/cart/adapters/persistence/postgres"
	cartapp "github.com/wollylully/storefront/internal/domains/cart/application"
	cartports "github.com/wollylully/storefront/internal/domains/cart/ports"

	catalogmemory "github.com/wollylully/storefront/internal/domains/catalog/adapters/memory"
	catalogobs "github.com/wollylully/storefront/internal/domains/catalog/adapters/observability"
	catalogpostgres "github.com/wollylully/storefront/internal/domains/catalog/adapters/persistence/postgres"
	catalogapp "github.com/wollylully/storefront/internal/domains/catalog/application"
	catalogports "github.com/wollylully/storefront/internal/domains/catalog/ports"

	checkoutapp "github.com/wollylully/storefront/internal/domains/checkout/application"

	chromememory "github.com/wollylully/storefront/internal/domains/chrome/adapters/memory"
	chromeapp "github.com/wollylully/storefront/internal/domains/chrome/application"

	platformmigrations "github.com/wollylully/storefront/internal/platform/migrations"
	platformobservability "github.com/wollylully/storefront/internal/platform/observability"
	platformpostgres "github.com/wollylully/storefront/internal/platform/postgres"
)

// Run boots the storefront HTTP API with observability and persistence
// wired. Without a reachable Postgres the process still serves everything
// from memory, which is how the prototype deployment runs.
func Run(ctx context.Context) error {
	const serviceName = "storefront-api"
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}

	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	cartStore, catalogRepo, cleanup := buildPersistence(ctx, logger)
	defer cleanup()

	cartService := cartobs.New(
		cartapp.NewService(cartStore),
		cartobs.WithLogger(logger),
		cartobs.WithTracer(instruments.Tracer("internal.cart.application")),
		cartobs.WithMeter(instruments.Meter("internal.cart.application")),
	)
	catalogService := catalogobs.New(
		catalogapp.NewService(catalogRepo),
		catalogobs.WithLogger(logger),
		catalogobs.WithTracer(instruments.Tracer("internal.catalog.application")),
		catalogobs.WithMeter(instruments.Meter("internal.catalog.application")),
	)
	checkoutService := checkoutapp.NewService(cartStore)
	chromeService := chromeapp.NewService(chromememory.NewStore())

	handlers := storefrontserver.ApiHandleFunctions{
		CartAPI:     storefrontserver.NewCartAPI(cartService, chromeService),
		ShopAPI:     storefrontserver.NewShopAPI(catalogService),
		CheckoutAPI: storefrontserver.NewCheckoutAPI(checkoutService),
		UIAPI:       storefrontserver.NewUIAPI(chromeService),
	}

	router := storefrontserver.NewRouter(handlers)
	router.Use(otelgin.Middleware(serviceName))
	addr := ":" + cfg.Port
	logger.Info("storefront API listening", slog.String("addr", addr), slog.String("environment", cfg.Environment))
	if err := router.Run(addr); err != nil {
		logger.Error("storefront API server exited", slog.String("addr", addr), slog.String("error", err.Error()))
		return err
	}
	return nil
}

// buildPersistence wires the Postgres-backed cart store and catalog, or
// their in-memory counterparts when no database is reachable. The catalog
// is seeded with the prototype cards either way.
func buildPersistence(ctx context.Context, logger *slog.Logger) (cartports.Store, catalogports.Repository, func()) {
	db, cleanup := platformpostgres.ConnectFromEnv(ctx, logger)
	if db == nil {
		return cartmemory.NewStore(), catalogmemory.NewRepository(), cleanup
	}
	if err := platformmigrations.Run(db); err != nil {
		logger.Warn("failed to run migrations, falling back to memory", slog.String("error", err.Error()))
		cleanup()
		return cartmemory.NewStore(), catalogmemory.NewRepository(), func() {}
	}
	catalogRepo := catalogpostgres.NewRepository(db)
	if err := catalogRepo.Seed(ctx, catalogmemory.SeedCards()); err != nil {
		logger.Warn("failed to seed catalog", slog.String("error", err.Error()))
	}
	logger.Info("persistence configured with postgres")
	return cartpostgres.NewStore(db, logger), catalogRepo, cleanup
}
