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

	catalogmemory "github.com/wollylully/storefront/internal/domains/catalog/adapters/memory"
	catalogpostgres "github.com/wollylully/storefront/internal/domains/catalog/adapters/persistence/postgres"
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

func TestPostgresRepository_SeedAndList(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	repo := catalogpostgres.NewRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Seed(ctx, catalogmemory.SeedCards()))

	cards, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, cards, 8)
	assert.Equal(t, "navy-cashmere-crewneck", cards[0].ID, "featured order preserved")
	assert.Equal(t, []string{"XS", "S", "M", "L", "XL"}, cards[0].Sizes)
}

func TestPostgresRepository_SeedIsIdempotent(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	repo := catalogpostgres.NewRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Seed(ctx, catalogmemory.SeedCards()))
	require.NoError(t, repo.Seed(ctx, catalogmemory.SeedCards()))

	cards, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, cards, 8)
}

func TestPostgresRepository_SeedUpdatesExistingCards(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	repo := catalogpostgres.NewRepository(db)
	ctx := context.Background()

	cards := catalogmemory.SeedCards()
	require.NoError(t, repo.Seed(ctx, cards))

	cards[0].Price = 299
	require.NoError(t, repo.Seed(ctx, cards[:1]))

	listed, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 299.0, listed[0].Price)
}
