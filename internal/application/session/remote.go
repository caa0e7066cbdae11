package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jhoicas/tienda-ledger/internal/domain/entity"
	"github.com/jhoicas/tienda-ledger/internal/domain/repository"
)

var _ repository.RemoteOrderReader = (*RemoteOrders)(nil)

// RemoteOrders lee colecciones de otro tenant directamente del almacén,
// sin abrir una sesión ni escribir nada en él.
type RemoteOrders struct {
	store   repository.CollectionStore
	timeout time.Duration
}

// NewRemoteOrders construye el lector.
func NewRemoteOrders(store repository.CollectionStore, timeout time.Duration) *RemoteOrders {
	return &RemoteOrders{store: store, timeout: timeout}
}

// Orders pedidos del tenant remoto; vacío si no tiene ninguno.
func (r *RemoteOrders) Orders(ctx context.Context, remoteOwnerID string) ([]entity.Order, error) {
	var orders []entity.Order
	if err := r.load(ctx, remoteOwnerID, entity.KeyOrders, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// Customers clientes del tenant remoto; vacío si no tiene ninguno.
func (r *RemoteOrders) Customers(ctx context.Context, remoteOwnerID string) ([]entity.Customer, error) {
	var customers []entity.Customer
	if err := r.load(ctx, remoteOwnerID, entity.KeyCustomers, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *RemoteOrders) load(ctx context.Context, remoteOwnerID, key string, dst any) error {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}
	raw, err := r.store.Load(ctx, remoteOwnerID, key)
	if err != nil {
		return fmt.Errorf("%s remotos de %s: %w", key, remoteOwnerID, err)
	}
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decode %s remotos: %w", key, err)
	}
	return nil
}
