package billing

import (
	"context"

	"github.com/jhoicas/tienda-ledger/internal/application/session"
	"github.com/jhoicas/tienda-ledger/internal/domain"
)

// SessionProvider entrega la sesión en memoria de un tenant. Lo implementa *session.Manager.
type SessionProvider interface {
	Session(ctx context.Context, ownerID string) (*session.Session, error)
}

func openSession(ctx context.Context, sessions SessionProvider, ownerID string) (*session.Session, error) {
	if ownerID == "" {
		return nil, domain.ErrUnauthorized
	}
	return sessions.Session(ctx, ownerID)
}
