package billing

import (
	"context"

	"github.com/jhoicas/tienda-ledger/internal/application/dto"
	"github.com/jhoicas/tienda-ledger/internal/domain/entity"
	"github.com/jhoicas/tienda-ledger/internal/domain/ledger"
)

// CashUseCase movimientos de caja y saldo.
type CashUseCase struct {
	sessions SessionProvider
}

// NewCashUseCase construye el caso de uso.
func NewCashUseCase(sessions SessionProvider) *CashUseCase {
	return &CashUseCase{sessions: sessions}
}

// List movimientos de caja.
func (uc *CashUseCase) List(ctx context.Context, ownerID string) ([]entity.CashEntry, error) {
	s, err := openSession(ctx, uc.sessions, ownerID)
	if err != nil {
		return nil, err
	}
	var out []entity.CashEntry
	s.Read(func(l *ledger.Ledger) { out = l.CashEntries() })
	return out, nil
}

// Balance Σ ingresos − Σ egresos.
func (uc *CashUseCase) Balance(ctx context.Context, ownerID string) (dto.CashBalanceResponse, error) {
	s, err := openSession(ctx, uc.sessions, ownerID)
	if err != nil {
		return dto.CashBalanceResponse{}, err
	}
	var out dto.CashBalanceResponse
	s.Read(func(l *ledger.Ledger) { out.Balance = l.CashBalance() })
	return out, nil
}

// Add registra un movimiento; los pagos de clientes y a proveedores reducen su deuda.
func (uc *CashUseCase) Add(ctx context.Context, ownerID, employeeID string, in dto.CashEntryRequest) (entity.CashEntry, error) {
	if err := dto.Validate(in); err != nil {
		return entity.CashEntry{}, err
	}
	s, err := openSession(ctx, uc.sessions, ownerID)
	if err != nil {
		return entity.CashEntry{}, err
	}
	var stored entity.CashEntry
	err = s.Mutate(func(l *ledger.Ledger) (ledger.Result, error) {
		e, res, err := l.AddCashEntry(entity.CashEntry{
			Type:        entity.CashEntryType(in.Type),
			Amount:      in.Amount,
			Category:    in.Category,
			CustomerID:  in.CustomerID,
			SupplierID:  in.SupplierID,
			Description: in.Description,
			EmployeeID:  employeeID,
		})
		stored = e
		return res, err
	})
	return stored, err
}
