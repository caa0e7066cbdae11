package postgres_test

import (
	"context"
	"encoding/json"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-ledger/internal/infrastructure/postgres"
	"github.com/jhoicas/tienda-ledger/pkg/config"
)

// Requiere una base con migrations/001_tenant_collections.sql aplicada.
func newTestRepo(t *testing.T) *postgres.CollectionRepo {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL no definido")
	}
	pool, err := postgres.NewPool(context.Background(), config.DBConfig{DatabaseURL: dsn})
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return postgres.NewCollectionRepository(pool, postgres.NewTxRunner(pool))
}

func TestCollectionRepo_LoadInexistente(t *testing.T) {
	repo := newTestRepo(t)
	v, err := repo.Load(context.Background(), uuid.NewString(), "products")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestCollectionRepo_SaveManyReemplazaValores(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	owner := uuid.NewString()

	require.NoError(t, repo.SaveMany(ctx, owner, map[string]json.RawMessage{
		"products": json.RawMessage(`[{"id":"P","quantity":"10"}]`),
		"sales":    json.RawMessage(`[]`),
	}))
	require.NoError(t, repo.SaveMany(ctx, owner, map[string]json.RawMessage{
		"products": json.RawMessage(`[{"id":"P","quantity":"7"}]`),
	}))

	v, err := repo.Load(ctx, owner, "products")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"P","quantity":"7"}]`, string(v))

	v, err = repo.Load(ctx, owner, "sales")
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(v))
}
