package inventory

import (
	"context"

	"github.com/jhoicas/tienda-ledger/internal/application/session"
)

// SessionProvider entrega la sesión en memoria de un tenant. Lo implementa *session.Manager.
type SessionProvider interface {
	Session(ctx context.Context, ownerID string) (*session.Session, error)
}
