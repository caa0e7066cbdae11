package repository

import (
	"context"

	"github.com/jhoicas/tienda-ledger/internal/domain/entity"
)

// RemoteOrderReader acceso de sólo lectura a los pedidos de otra tienda (B2B) y a los
// clientes a los que van dirigidos. Nunca escribe en el tenant remoto.
type RemoteOrderReader interface {
	Orders(ctx context.Context, remoteOwnerID string) ([]entity.Order, error)
	Customers(ctx context.Context, remoteOwnerID string) ([]entity.Customer, error)
}
