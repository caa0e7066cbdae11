// Package redis implementa el almacén de colecciones sobre Redis: una clave string por
// colección y por tenant (<prefijo>:<owner>:<colección>).
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/jhoicas/tienda-ledger/internal/domain/repository"
	"github.com/jhoicas/tienda-ledger/pkg/config"
)

var _ repository.CollectionStore = (*CollectionStore)(nil)

// CollectionStore adaptador go-redis.
type CollectionStore struct {
	client *goredis.Client
	prefix string
}

// NewClient crea el cliente y verifica la conexión.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

// NewCollectionStore construye el adaptador; prefix vacío usa "shop".
func NewCollectionStore(client *goredis.Client, prefix string) *CollectionStore {
	if prefix == "" {
		prefix = "shop"
	}
	return &CollectionStore{client: client, prefix: prefix}
}

func (s *CollectionStore) key(ownerID, key string) string {
	return s.prefix + ":" + ownerID + ":" + key
}

// Load devuelve el valor o nil si la clave no existe.
func (s *CollectionStore) Load(ctx context.Context, ownerID, key string) (json.RawMessage, error) {
	raw, err := s.client.Get(ctx, s.key(ownerID, key)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("load %s: %w", key, err)
	}
	return json.RawMessage(raw), nil
}

// SaveMany escribe todas las claves en un MULTI/EXEC.
func (s *CollectionStore) SaveMany(ctx context.Context, ownerID string, values map[string]json.RawMessage) error {
	if len(values) == 0 {
		return nil
	}
	_, err := s.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		for k, v := range values {
			pipe.Set(ctx, s.key(ownerID, k), []byte(v), 0)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("save collections: %w", err)
	}
	return nil
}
