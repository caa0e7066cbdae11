package repository

import (
	"context"
	"encoding/json"
)

// CollectionStore puerto de persistencia por colección (DIP): un valor JSON completo por
// clave y por tenant. Cada escritura reemplaza el valor entero (last-write-wins).
type CollectionStore interface {
	// Load devuelve el valor guardado o nil si la clave no existe.
	Load(ctx context.Context, ownerID, key string) (json.RawMessage, error)
	// SaveMany escribe varias claves de un tenant como una sola operación atómica.
	SaveMany(ctx context.Context, ownerID string, values map[string]json.RawMessage) error
}
