package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-ledger/internal/domain"
	"github.com/jhoicas/tienda-ledger/internal/domain/entity"
)

// Cuentas de deuda: por cobrar (clientes) y por pagar (proveedores).
// Los aumentos exigen que la contraparte exista; las disminuciones sobre una contraparte
// inexistente se ignoran para no bloquear anulaciones de registros antiguos.

func (w *work) increaseCustomerDebt(customerID string, amount decimal.Decimal) error {
	c := w.customer(customerID)
	if c == nil {
		return domain.ErrCustomerNotFound
	}
	c.Increase(amount)
	w.touch(entity.KeyCustomers)
	return nil
}

func (w *work) decreaseCustomerDebt(customerID string, amount decimal.Decimal) {
	c := w.customer(customerID)
	if c == nil {
		return
	}
	c.Decrease(amount)
	w.touch(entity.KeyCustomers)
}

func (w *work) increaseSupplierDebt(supplierID string, amount decimal.Decimal) error {
	s := w.supplier(supplierID)
	if s == nil {
		return domain.ErrSupplierNotFound
	}
	s.Increase(amount)
	w.touch(entity.KeySuppliers)
	return nil
}

func (w *work) decreaseSupplierDebt(supplierID string, amount decimal.Decimal) {
	s := w.supplier(supplierID)
	if s == nil {
		return
	}
	s.Decrease(amount)
	w.touch(entity.KeySuppliers)
}
