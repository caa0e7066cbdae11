package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-ledger/internal/application/session"
	"github.com/jhoicas/tienda-ledger/internal/domain"
)

// sessionSource lo implementa *session.Manager.
type sessionSource interface {
	Session(ctx context.Context, ownerID string) (*session.Session, error)
}

// SyncHandler expone el estado de sincronización de la sesión del tenant (protegido).
type SyncHandler struct {
	sessions sessionSource
}

// NewSyncHandler construye el handler.
func NewSyncHandler(sessions sessionSource) *SyncHandler {
	return &SyncHandler{sessions: sessions}
}

func (h *SyncHandler) session(c *fiber.Ctx) (*session.Session, error) {
	ownerID := GetOwnerID(c)
	if ownerID == "" {
		return nil, domain.ErrUnauthorized
	}
	return h.sessions.Session(c.UserContext(), ownerID)
}

// Status GET /api/sync/status
func (h *SyncHandler) Status(c *fiber.Ctx) error {
	s, err := h.session(c)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(s.Status())
}

// Flush POST /api/sync/flush guarda ya los cambios pendientes. Un fallo de guardado no es un
// error de la petición: se informa en el estado devuelto.
func (h *SyncHandler) Flush(c *fiber.Ctx) error {
	s, err := h.session(c)
	if err != nil {
		return respondError(c, err)
	}
	_ = s.Flush(c.UserContext())
	return c.JSON(s.Status())
}
