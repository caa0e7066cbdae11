package inventory

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-ledger/internal/application/dto"
	"github.com/jhoicas/tienda-ledger/internal/domain"
	"github.com/jhoicas/tienda-ledger/internal/domain/entity"
	"github.com/jhoicas/tienda-ledger/internal/domain/ledger"
)

// ReplenishmentUseCase genera la lista de reposición de productos bajo su stock mínimo.
type ReplenishmentUseCase struct {
	sessions SessionProvider
}

// NewReplenishmentUseCase construye el caso de uso de reposición.
func NewReplenishmentUseCase(sessions SessionProvider) *ReplenishmentUseCase {
	return &ReplenishmentUseCase{sessions: sessions}
}

// GenerateReplenishmentList devuelve los productos bajo su mínimo con la cantidad sugerida
// (hasta 1.5 × mínimo) y el último proveedor que los entregó, ordenados por déficit relativo.
func (uc *ReplenishmentUseCase) GenerateReplenishmentList(ctx context.Context, ownerID string) ([]dto.ReplenishmentSuggestionDTO, error) {
	if ownerID == "" {
		return nil, domain.ErrUnauthorized
	}
	s, err := uc.sessions.Session(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	var (
		low []entity.Product
		txs []entity.Transaction
	)
	s.Read(func(l *ledger.Ledger) {
		low = l.LowStock()
		txs = l.Transactions()
	})
	if len(low) == 0 {
		return []dto.ReplenishmentSuggestionDTO{}, nil
	}

	// Último proveedor por producto según las entradas activas más recientes.
	lastSupplier := map[string]entity.Transaction{}
	for _, tx := range txs {
		if tx.Type != entity.TransactionIn || tx.Status.IsDeleted() || tx.SupplierID == "" {
			continue
		}
		if prev, ok := lastSupplier[tx.ProductID]; !ok || !tx.Date.Before(prev.Date) {
			lastSupplier[tx.ProductID] = tx
		}
	}

	idealFactor := decimal.NewFromFloat(1.5)
	suggestions := make([]dto.ReplenishmentSuggestionDTO, 0, len(low))
	for _, p := range low {
		suggested := p.MinStock.Mul(idealFactor).Sub(p.Quantity)
		if suggested.IsNegative() {
			suggested = decimal.Zero
		}
		suggestions = append(suggestions, dto.ReplenishmentSuggestionDTO{
			ProductID:          p.ID,
			ProductName:        p.Name,
			CurrentStock:       p.Quantity,
			MinStock:           p.MinStock,
			SuggestedOrderQty:  suggested,
			UnitCost:           p.Cost,
			EstimatedOrderCost: suggested.Mul(p.Cost),
			LastSupplierID:     lastSupplier[p.ID].SupplierID,
		})
	}

	// Mayor déficit relativo primero (stock / mínimo más bajo); empate por nombre.
	sort.SliceStable(suggestions, func(i, j int) bool {
		a, b := suggestions[i], suggestions[j]
		ra := a.CurrentStock.Div(a.MinStock)
		rb := b.CurrentStock.Div(b.MinStock)
		if !ra.Equal(rb) {
			return ra.LessThan(rb)
		}
		return a.ProductName < b.ProductName
	})
	for i := range suggestions {
		suggestions[i].Priority = i + 1
	}
	return suggestions, nil
}
