package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-ledger/internal/domain"
	"github.com/jhoicas/tienda-ledger/internal/domain/entity"
)

// AddCashEntry registra un movimiento de caja.
// Un ingreso con cliente (fuera de la categoría de ventas) es un pago de deuda del cliente;
// un egreso con proveedor es un pago de deuda al proveedor. Ambos con piso en cero.
func (l *Ledger) AddCashEntry(entry entity.CashEntry) (entity.CashEntry, Result, error) {
	if entry.Type != entity.CashIncome && entry.Type != entity.CashExpense {
		return entity.CashEntry{}, Result{}, domain.ErrInvalidInput
	}
	if entry.Amount.IsNegative() {
		return entity.CashEntry{}, Result{}, domain.ErrInvalidInput
	}
	var stored entity.CashEntry
	res, err := l.exec(func(w *work) error {
		stored = w.addCashEntry(entry)
		return nil
	})
	return stored, res, err
}

func (w *work) addCashEntry(entry entity.CashEntry) entity.CashEntry {
	if entry.ID == "" {
		entry.ID = w.newID()
	}
	if entry.Date.IsZero() {
		entry.Date = w.now()
	}
	w.snap.CashEntries = append(w.snap.CashEntries, entry)
	w.touch(entity.KeyCashEntries)

	switch {
	case entry.Type == entity.CashIncome && entry.CustomerID != "" && !entity.IsSaleCategory(entry.Category):
		w.decreaseCustomerDebt(entry.CustomerID, entry.Amount)
	case entry.Type == entity.CashExpense && entry.SupplierID != "":
		w.decreaseSupplierDebt(entry.SupplierID, entry.Amount)
	}
	return entry
}

// CashBalance saldo de caja: Σ ingresos − Σ egresos.
func (l *Ledger) CashBalance() decimal.Decimal {
	balance := decimal.Zero
	for _, e := range l.snap.CashEntries {
		switch e.Type {
		case entity.CashIncome:
			balance = balance.Add(e.Amount)
		case entity.CashExpense:
			balance = balance.Sub(e.Amount)
		}
	}
	return balance
}
