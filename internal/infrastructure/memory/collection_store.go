// Package memory implementa el almacén de colecciones en el proceso (modo desarrollo y tests).
package memory

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/jhoicas/tienda-ledger/internal/domain/repository"
)

var _ repository.CollectionStore = (*CollectionStore)(nil)

// CollectionStore guarda los valores en un mapa owner → clave → JSON.
type CollectionStore struct {
	mu     sync.RWMutex
	values map[string]map[string]json.RawMessage
}

// NewCollectionStore construye un almacén vacío.
func NewCollectionStore() *CollectionStore {
	return &CollectionStore{values: map[string]map[string]json.RawMessage{}}
}

// Load devuelve una copia del valor o nil si no existe.
func (s *CollectionStore) Load(ctx context.Context, ownerID, key string) (json.RawMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[ownerID][key]
	if !ok {
		return nil, nil
	}
	return append(json.RawMessage(nil), v...), nil
}

// SaveMany reemplaza todas las claves bajo un único lock.
func (s *CollectionStore) SaveMany(ctx context.Context, ownerID string, values map[string]json.RawMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	owner, ok := s.values[ownerID]
	if !ok {
		owner = map[string]json.RawMessage{}
		s.values[ownerID] = owner
	}
	for k, v := range values {
		owner[k] = append(json.RawMessage(nil), v...)
	}
	return nil
}
