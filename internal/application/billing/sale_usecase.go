package billing

import (
	"context"

	"github.com/jhoicas/tienda-ledger/internal/application/dto"
	"github.com/jhoicas/tienda-ledger/internal/domain/entity"
	"github.com/jhoicas/tienda-ledger/internal/domain/ledger"
)

// SaleUseCase ciclo de vida de ventas: alta, edición completa y anulación.
type SaleUseCase struct {
	sessions SessionProvider
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(sessions SessionProvider) *SaleUseCase {
	return &SaleUseCase{sessions: sessions}
}

func saleFromRequest(in dto.SaleRequest) entity.Sale {
	sale := entity.Sale{
		Items:         make([]entity.SaleItem, 0, len(in.Items)),
		Total:         in.Total,
		PaymentMethod: entity.PaymentMethod(in.PaymentMethod),
		CustomerID:    in.CustomerID,
	}
	for _, it := range in.Items {
		item := entity.SaleItem{ProductID: it.ProductID, Quantity: it.Quantity, Price: it.Price}
		if it.Cost != nil {
			item.Cost = *it.Cost
			item.CostSet = true
		}
		sale.Items = append(sale.Items, item)
	}
	return sale
}

// List ventas del tenant; includeDeleted incluye las anuladas.
func (uc *SaleUseCase) List(ctx context.Context, ownerID string, includeDeleted bool) ([]entity.Sale, error) {
	s, err := openSession(ctx, uc.sessions, ownerID)
	if err != nil {
		return nil, err
	}
	var all []entity.Sale
	s.Read(func(l *ledger.Ledger) { all = l.Sales() })
	if includeDeleted {
		return all, nil
	}
	out := make([]entity.Sale, 0, len(all))
	for _, sale := range all {
		if !sale.Status.IsDeleted() {
			out = append(out, sale)
		}
	}
	return out, nil
}

// Create registra una venta.
func (uc *SaleUseCase) Create(ctx context.Context, ownerID, employeeID string, in dto.SaleRequest) (entity.Sale, error) {
	if err := dto.Validate(in); err != nil {
		return entity.Sale{}, err
	}
	s, err := openSession(ctx, uc.sessions, ownerID)
	if err != nil {
		return entity.Sale{}, err
	}
	draft := saleFromRequest(in)
	draft.EmployeeID = employeeID
	var created entity.Sale
	err = s.Mutate(func(l *ledger.Ledger) (ledger.Result, error) {
		sale, res, err := l.CreateSale(draft)
		created = sale
		return res, err
	})
	return created, err
}

// Update reemplaza una venta activa revirtiendo la original y aplicando la nueva.
func (uc *SaleUseCase) Update(ctx context.Context, ownerID, saleID string, in dto.SaleRequest) (entity.Sale, error) {
	if err := dto.Validate(in); err != nil {
		return entity.Sale{}, err
	}
	s, err := openSession(ctx, uc.sessions, ownerID)
	if err != nil {
		return entity.Sale{}, err
	}
	next := saleFromRequest(in)
	next.ID = saleID
	var updated entity.Sale
	err = s.Mutate(func(l *ledger.Ledger) (ledger.Result, error) {
		sale, res, err := l.UpdateSale(next)
		updated = sale
		return res, err
	})
	return updated, err
}

// Cancel anula una venta (sin reversión de caja).
func (uc *SaleUseCase) Cancel(ctx context.Context, ownerID, saleID string) error {
	s, err := openSession(ctx, uc.sessions, ownerID)
	if err != nil {
		return err
	}
	return s.Mutate(func(l *ledger.Ledger) (ledger.Result, error) {
		return l.CancelSale(saleID)
	})
}
