package session

import (
	"context"
	"encoding/json"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/tienda-ledger/internal/domain/entity"
	"github.com/jhoicas/tienda-ledger/internal/domain/repository"
)

// loadSnapshot lee todas las colecciones del tenant en paralelo. El primer error cancela el resto.
func loadSnapshot(ctx context.Context, store repository.CollectionStore, ownerID string) (entity.Snapshot, error) {
	raws := make([]json.RawMessage, len(entity.LedgerKeys))
	g, gctx := errgroup.WithContext(ctx)
	for i, key := range entity.LedgerKeys {
		g.Go(func() error {
			raw, err := store.Load(gctx, ownerID, key)
			if err != nil {
				return err
			}
			raws[i] = raw
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return entity.Snapshot{}, err
	}
	values := make(map[string]json.RawMessage, len(raws))
	for i, key := range entity.LedgerKeys {
		values[key] = raws[i]
	}
	return DecodeSnapshot(values)
}
