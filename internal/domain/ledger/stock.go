package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-ledger/internal/domain"
	"github.com/jhoicas/tienda-ledger/internal/domain/entity"
)

// ApplyStockDelta ajuste manual de existencias: quantity = max(0, quantity + delta).
// Los servicios no se modifican.
func (l *Ledger) ApplyStockDelta(productID string, delta decimal.Decimal) (Result, error) {
	return l.exec(func(w *work) error {
		if w.product(productID) == nil {
			return domain.ErrProductNotFound
		}
		w.applyStockDelta(productID, delta)
		return nil
	})
}

// applyStockDelta aplica un delta con piso en cero. El piso hace que el ledger no sea una ley
// de conservación estricta: un exceso de salida se pierde en lugar de dejar stock negativo.
// Un producto inexistente (borrado del catálogo) se ignora.
func (w *work) applyStockDelta(productID string, delta decimal.Decimal) {
	p := w.product(productID)
	if p == nil || p.IsService() || delta.IsZero() {
		return
	}
	p.Quantity = decimal.Max(decimal.Zero, p.Quantity.Add(delta))
	w.touch(entity.KeyProducts)
}
