package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	cartpostgres "github.com/wollylully/storefront/internal/domains/cart/adapters/persistence/postgres"
	platformpostgres "github.com/wollylully/storefront/internal/platform/postgres"
)

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	db, cleanup := platformpostgres.ConnectFromEnv(ctx, logger)
	defer cleanup()
	if db == nil {
		log.Fatal("POSTGRES_DSN not set or connection failed; cannot purge carts")
	}

	store := cartpostgres.NewStore(db, logger)
	purged, err := store.PurgeStale(ctx, cartTTLFromEnv())
	if err != nil {
		log.Fatalf("failed to purge stale carts: %v", err)
	}
	log.Printf("cart purge completed, removed %d stale carts", purged)
}

func cartTTLFromEnv() time.Duration {
	raw := strings.TrimSpace(os.Getenv("CART_TTL_HOURS"))
	if raw == "" {
		return cartpostgres.DefaultCartTTL
	}
	hours, err := strconv.Atoi(raw)
	if err != nil || hours <= 0 {
		return cartpostgres.DefaultCartTTL
	}
	return time.Duration(hours) * time.Hour
}
