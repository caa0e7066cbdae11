package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/tienda-ledger/internal/domain/repository"
)

var _ repository.CollectionStore = (*CollectionRepo)(nil)

// CollectionRepo guarda cada colección de un tenant como una fila jsonb de tenant_collections.
type CollectionRepo struct {
	q  Querier
	tx *TxRunner
}

// NewCollectionRepository construye el adaptador. q se usa para lecturas; tx para SaveMany.
func NewCollectionRepository(q Querier, tx *TxRunner) *CollectionRepo {
	return &CollectionRepo{q: q, tx: tx}
}

// Load obtiene el valor de una colección. Devuelve nil si no hay fila.
func (r *CollectionRepo) Load(ctx context.Context, ownerID, key string) (json.RawMessage, error) {
	query := `SELECT value FROM tenant_collections WHERE owner_id = $1 AND key = $2`
	var raw []byte
	err := r.q.QueryRow(ctx, query, ownerID, key).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		if isUndefinedTable(err) {
			return nil, fmt.Errorf("load %s: tabla tenant_collections inexistente, ejecutar migrations/: %w", key, err)
		}
		return nil, fmt.Errorf("load %s: %w", key, err)
	}
	return json.RawMessage(raw), nil
}

// SaveMany reemplaza todas las colecciones indicadas en una sola transacción.
// Las claves se escriben en orden para que dos guardados concurrentes bloqueen filas en el mismo orden.
func (r *CollectionRepo) SaveMany(ctx context.Context, ownerID string, values map[string]json.RawMessage) error {
	if len(values) == 0 {
		return nil
	}
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	query := `
		INSERT INTO tenant_collections (owner_id, key, value, updated_at)
		VALUES ($1, $2, $3::jsonb, now())
		ON CONFLICT (owner_id, key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`
	return r.tx.Run(ctx, func(q Querier) error {
		for _, k := range keys {
			if _, err := q.Exec(ctx, query, ownerID, k, string(values[k])); err != nil {
				return fmt.Errorf("save %s: %w", k, err)
			}
		}
		return nil
	})
}
