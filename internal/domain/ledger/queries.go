package ledger

import "github.com/jhoicas/tienda-ledger/internal/domain/entity"

// Consultas: devuelven copias, nunca referencias al estado interno.

func (l *Ledger) Products() []entity.Product {
	return append([]entity.Product(nil), l.snap.Products...)
}

func (l *Ledger) Customers() []entity.Customer {
	return append([]entity.Customer(nil), l.snap.Customers...)
}

func (l *Ledger) Suppliers() []entity.Supplier {
	return append([]entity.Supplier(nil), l.snap.Suppliers...)
}

func (l *Ledger) CashEntries() []entity.CashEntry {
	return append([]entity.CashEntry(nil), l.snap.CashEntries...)
}

func (l *Ledger) Sales() []entity.Sale {
	return l.Snapshot().Sales
}

func (l *Ledger) Orders() []entity.Order {
	return l.Snapshot().Orders
}

func (l *Ledger) Transactions() []entity.Transaction {
	return l.Snapshot().Transactions
}

// Product busca un producto por ID.
func (l *Ledger) Product(id string) (entity.Product, bool) {
	for _, p := range l.snap.Products {
		if p.ID == id {
			return p, true
		}
	}
	return entity.Product{}, false
}

// Sale busca una venta por ID.
func (l *Ledger) Sale(id string) (entity.Sale, bool) {
	for _, s := range l.snap.Sales {
		if s.ID == id {
			return s.Clone(), true
		}
	}
	return entity.Sale{}, false
}

// Order busca un pedido por ID.
func (l *Ledger) Order(id string) (entity.Order, bool) {
	for _, o := range l.snap.Orders {
		if o.ID == id {
			return o.Clone(), true
		}
	}
	return entity.Order{}, false
}

// Customer busca un cliente por ID.
func (l *Ledger) Customer(id string) (entity.Customer, bool) {
	for _, c := range l.snap.Customers {
		if c.ID == id {
			return c, true
		}
	}
	return entity.Customer{}, false
}

// Supplier busca un proveedor por ID.
func (l *Ledger) Supplier(id string) (entity.Supplier, bool) {
	for _, s := range l.snap.Suppliers {
		if s.ID == id {
			return s, true
		}
	}
	return entity.Supplier{}, false
}

// LowStock productos con existencias por debajo del mínimo.
func (l *Ledger) LowStock() []entity.Product {
	var out []entity.Product
	for _, p := range l.snap.Products {
		if p.IsLowStock() {
			out = append(out, p)
		}
	}
	return out
}
