package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-ledger/internal/domain"
	"github.com/jhoicas/tienda-ledger/internal/domain/entity"
)

// CreateSale registra una venta: descuenta stock por línea y, si es a crédito, aumenta la
// deuda del cliente; si no, genera un ingreso de caja en la categoría de ventas.
func (l *Ledger) CreateSale(sale entity.Sale) (entity.Sale, Result, error) {
	var stored entity.Sale
	res, err := l.exec(func(w *work) error {
		var err error
		stored, err = w.createSale(sale)
		return err
	})
	return stored, res, err
}

// CancelSale anula (borrado lógico) una venta: repone stock y revierte la deuda.
// Anular una venta ya anulada no hace nada. El ingreso de caja de una venta
// en efectivo o tarjeta no se revierte.
func (l *Ledger) CancelSale(id string) (Result, error) {
	return l.exec(func(w *work) error {
		s := w.sale(id)
		if s == nil {
			return domain.ErrNotFound
		}
		if s.Status.IsDeleted() {
			return nil
		}
		w.reverseSale(*s)
		s.Status = entity.StatusDeleted
		w.touch(entity.KeySales)
		return nil
	})
}

// UpdateSale edita una venta revirtiendo por completo la versión anterior y aplicando la nueva,
// nunca como diferencia. Funciona igual si cambian a la vez método de pago, cliente,
// cantidades o precios.
func (l *Ledger) UpdateSale(updated entity.Sale) (entity.Sale, Result, error) {
	var stored entity.Sale
	res, err := l.exec(func(w *work) error {
		current := w.sale(updated.ID)
		if current == nil {
			return domain.ErrNotFound
		}
		if current.Status.IsDeleted() {
			return domain.ErrAlreadyDeleted
		}
		old := current.Clone()
		next := normalizeSale(w, updated, &old)
		if err := validateSale(next); err != nil {
			return err
		}
		next.ID = old.ID
		next.Status = entity.StatusActive
		if updated.Date.IsZero() {
			next.Date = old.Date
		}
		if next.EmployeeID == "" {
			next.EmployeeID = old.EmployeeID
		}

		w.reverseSale(old)
		if err := w.applySale(next); err != nil {
			return err
		}
		*current = next
		w.touch(entity.KeySales)
		stored = next.Clone()
		return nil
	})
	return stored, res, err
}

func (w *work) createSale(sale entity.Sale) (entity.Sale, error) {
	sale = normalizeSale(w, sale, nil)
	if err := validateSale(sale); err != nil {
		return entity.Sale{}, err
	}
	if sale.ID == "" {
		sale.ID = w.newID()
	} else if w.sale(sale.ID) != nil {
		return entity.Sale{}, domain.ErrDuplicate
	}
	if sale.Date.IsZero() {
		sale.Date = w.now()
	}
	sale.Status = entity.StatusActive

	if err := w.applySale(sale); err != nil {
		return entity.Sale{}, err
	}
	if sale.PaymentMethod != entity.PaymentDebt {
		w.addCashEntry(entity.CashEntry{
			Type:       entity.CashIncome,
			Amount:     sale.Total,
			Category:   entity.CategorySale,
			CustomerID: sale.CustomerID,
			EmployeeID: sale.EmployeeID,
			Date:       sale.Date,
		})
	}
	w.snap.Sales = append(w.snap.Sales, sale)
	w.touch(entity.KeySales)
	return sale.Clone(), nil
}

// applySale transformación directa sobre (stock, deuda).
func (w *work) applySale(sale entity.Sale) error {
	for _, it := range sale.Items {
		w.applyStockDelta(it.ProductID, it.Quantity.Neg())
	}
	if sale.IsDebt() {
		return w.increaseCustomerDebt(sale.CustomerID, sale.Total)
	}
	return nil
}

// reverseSale inversa de applySale; compartida por anulación y edición.
func (w *work) reverseSale(sale entity.Sale) {
	for _, it := range sale.Items {
		w.applyStockDelta(it.ProductID, it.Quantity)
	}
	if sale.IsDebt() {
		w.decreaseCustomerDebt(sale.CustomerID, sale.Total)
	}
}

// normalizeSale completa costo congelado y total cuando el llamador no los envía.
// En una edición, una línea sin costo conserva el costo congelado de la versión
// anterior para el mismo producto; sólo si no existe se toma el costo actual.
func normalizeSale(w *work, sale entity.Sale, previous *entity.Sale) entity.Sale {
	sale = sale.Clone()
	frozen := map[string]decimal.Decimal{}
	if previous != nil {
		for _, it := range previous.Items {
			if _, ok := frozen[it.ProductID]; !ok {
				frozen[it.ProductID] = it.Cost
			}
		}
	}
	for i, it := range sale.Items {
		if !it.HasCost() {
			if cost, ok := frozen[it.ProductID]; ok {
				sale.Items[i].Cost = cost
			} else if p := w.product(it.ProductID); p != nil {
				sale.Items[i].Cost = p.Cost
			}
		}
		sale.Items[i].CostSet = false
	}
	if sale.Total.IsZero() {
		for _, it := range sale.Items {
			sale.Total = sale.Total.Add(it.Quantity.Mul(it.Price))
		}
	}
	return sale
}

func validateSale(sale entity.Sale) error {
	if !sale.PaymentMethod.Valid() || len(sale.Items) == 0 || sale.Total.IsNegative() {
		return domain.ErrInvalidInput
	}
	for _, it := range sale.Items {
		if it.ProductID == "" || !it.Quantity.IsPositive() || it.Price.IsNegative() {
			return domain.ErrInvalidInput
		}
	}
	if sale.PaymentMethod == entity.PaymentDebt && sale.CustomerID == "" {
		return domain.ErrCustomerRequired
	}
	return nil
}
