package ledger

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-ledger/internal/domain"
	"github.com/jhoicas/tienda-ledger/internal/domain/entity"
)

// CreateProduct agrega un producto al catálogo. Un servicio siempre queda con stock cero.
func (l *Ledger) CreateProduct(p entity.Product) (entity.Product, Result, error) {
	p.Name = strings.TrimSpace(p.Name)
	if p.Type == "" {
		p.Type = entity.ProductTypeProduct
	}
	if p.Name == "" || (p.Type != entity.ProductTypeProduct && p.Type != entity.ProductTypeService) {
		return entity.Product{}, Result{}, domain.ErrInvalidInput
	}
	if p.Quantity.IsNegative() || p.Cost.IsNegative() || p.Price.IsNegative() || p.MinStock.IsNegative() {
		return entity.Product{}, Result{}, domain.ErrInvalidInput
	}
	if p.IsService() {
		p.Quantity = decimal.Zero
	}
	res, err := l.exec(func(w *work) error {
		if p.ID == "" {
			p.ID = w.newID()
		} else if w.product(p.ID) != nil {
			return domain.ErrDuplicate
		}
		if p.CreatedAt.IsZero() {
			p.CreatedAt = w.now()
		}
		w.snap.Products = append(w.snap.Products, p)
		w.touch(entity.KeyProducts)
		return nil
	})
	if err != nil {
		return entity.Product{}, Result{}, err
	}
	return p, res, nil
}

// CreateCustomer agrega un cliente, opcionalmente con deuda inicial.
func (l *Ledger) CreateCustomer(c entity.Customer) (entity.Customer, Result, error) {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" || c.Debt.IsNegative() {
		return entity.Customer{}, Result{}, domain.ErrInvalidInput
	}
	res, err := l.exec(func(w *work) error {
		if c.ID == "" {
			c.ID = w.newID()
		} else if w.customer(c.ID) != nil {
			return domain.ErrDuplicate
		}
		if c.CreatedAt.IsZero() {
			c.CreatedAt = w.now()
		}
		w.snap.Customers = append(w.snap.Customers, c)
		w.touch(entity.KeyCustomers)
		return nil
	})
	if err != nil {
		return entity.Customer{}, Result{}, err
	}
	return c, res, nil
}

// CreateSupplier agrega un proveedor, opcionalmente vinculado a otra tienda.
func (l *Ledger) CreateSupplier(s entity.Supplier) (entity.Supplier, Result, error) {
	s.Name = strings.TrimSpace(s.Name)
	if s.Name == "" || s.Debt.IsNegative() {
		return entity.Supplier{}, Result{}, domain.ErrInvalidInput
	}
	res, err := l.exec(func(w *work) error {
		if s.ID == "" {
			s.ID = w.newID()
		} else if w.supplier(s.ID) != nil {
			return domain.ErrDuplicate
		}
		if s.CreatedAt.IsZero() {
			s.CreatedAt = w.now()
		}
		w.snap.Suppliers = append(w.snap.Suppliers, s)
		w.touch(entity.KeySuppliers)
		return nil
	})
	if err != nil {
		return entity.Supplier{}, Result{}, err
	}
	return s, res, nil
}
