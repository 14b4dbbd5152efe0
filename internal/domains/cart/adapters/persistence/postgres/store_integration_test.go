//go:build integration
// +build integration

// To enable gopls support for this file, add the following to your VSCode settings.json:
// "gopls": {
//   "buildFlags": ["-tags=integration"]
// }

package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	cartpostgres "github.com/wollylully/storefront/internal/domains/cart/adapters/persistence/postgres"
	"github.com/wollylully/storefront/internal/domains/cart/domain"
	"github.com/wollylully/storefront/internal/platform/migrations"
)

func setupPostgresContainer(t *testing.T) (*gorm.DB, func()) {
	ctx := context.Background()

	pgContainer, err := tcpostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcpostgres.WithDatabase("storefront_test"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	err = migrations.Run(db)
	require.NoError(t, err)

	cleanup := func() {
		sqlDB, _ := db.DB()
		if sqlDB != nil {
			sqlDB.Close()
		}
		pgContainer.Terminate(ctx)
	}

	return db, cleanup
}

func TestPostgresStore_SaveAndLoad(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	store := cartpostgres.NewStore(db, nil)
	ctx := context.Background()

	cart := domain.Cart{
		{ProductID: "navy-cashmere-crewneck", Size: "M", Name: "Navy Cashmere Crewneck", Price: 285, Quantity: 2},
		{ProductID: "grey-cashmere-beanie", Size: "One Size", Name: "Grey Cashmere Beanie", Price: 185, Quantity: 1},
	}
	require.NoError(t, store.Save(ctx, "visitor-1", cart))

	loaded, err := store.Load(ctx, "visitor-1")
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, 2, loaded[0].Quantity)
	assert.Equal(t, 285.0, loaded[0].Price)
}

func TestPostgresStore_MissingKeyLoadsEmpty(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	store := cartpostgres.NewStore(db, nil)

	loaded, err := store.Load(context.Background(), "never-seen")
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestPostgresStore_SaveReplacesSlot(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	store := cartpostgres.NewStore(db, nil)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "visitor-1", domain.Cart{
		{ProductID: "p1", Size: "M", Price: 100, Quantity: 1},
	}))
	require.NoError(t, store.Save(ctx, "visitor-1", domain.Cart{}))

	loaded, err := store.Load(ctx, "visitor-1")
	require.NoError(t, err)
	assert.Empty(t, loaded, "second save replaced the slot wholesale")
}

func TestPostgresStore_CorruptPayloadLoadsEmpty(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	store := cartpostgres.NewStore(db, nil)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "visitor-1", domain.Cart{
		{ProductID: "p1", Size: "M", Price: 100, Quantity: 1},
	}))
	require.NoError(t, db.Exec(`UPDATE carts SET payload = '"not a cart"'::jsonb WHERE cart_key = 'visitor-1'`).Error)

	loaded, err := store.Load(ctx, "visitor-1")
	require.NoError(t, err, "corrupt payload recovers silently")
	assert.Empty(t, loaded)
}

func TestPostgresStore_PurgeStale(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	store := cartpostgres.NewStore(db, nil)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "stale", domain.Cart{{ProductID: "p1", Size: "M", Price: 100, Quantity: 1}}))
	require.NoError(t, store.Save(ctx, "fresh", domain.Cart{{ProductID: "p2", Size: "L", Price: 200, Quantity: 1}}))
	require.NoError(t, db.Exec(`UPDATE carts SET updated_at = NOW() - INTERVAL '40 days' WHERE cart_key = 'stale'`).Error)

	purged, err := store.PurgeStale(ctx, cartpostgres.DefaultCartTTL)
	require.NoError(t, err)
	assert.Equal(t, int64(1), purged)

	remaining, err := store.Load(ctx, "fresh")
	require.NoError(t, err)
	assert.Len(t, remaining, 1)
}
