package entity

// Claves de persistencia: una por colección y por tenant.
const (
	KeyProducts        = "products"
	KeySales           = "sales"
	KeyTransactions    = "transactions"
	KeyCashEntries     = "cashEntries"
	KeySuppliers       = "suppliers"
	KeyCustomers       = "customers"
	KeyOrders          = "orders"
	KeyProductMappings = "productMappings"
)

// LedgerKeys colecciones que maneja el ledger.
var LedgerKeys = []string{
	KeyProducts, KeySales, KeyOrders, KeyTransactions,
	KeyCashEntries, KeyCustomers, KeySuppliers, KeyProductMappings,
}

// ProductMappings tabla privada remoteOwnerId_remoteProductId → productId local.
type ProductMappings map[string]string

// MappingKey construye la clave de la tabla de mapeos.
func MappingKey(remoteOwnerID, remoteProductID string) string {
	return remoteOwnerID + "_" + remoteProductID
}

// Snapshot estado completo de un tenant que maneja el ledger.
type Snapshot struct {
	Products        []Product
	Sales           []Sale
	Orders          []Order
	Transactions    []Transaction
	CashEntries     []CashEntry
	Customers       []Customer
	Suppliers       []Supplier
	ProductMappings ProductMappings
}

// Clone copia profunda: el resultado no comparte slices ni mapas con el original.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{
		Products:        append([]Product(nil), s.Products...),
		Sales:           make([]Sale, len(s.Sales)),
		Orders:          make([]Order, len(s.Orders)),
		Transactions:    make([]Transaction, len(s.Transactions)),
		CashEntries:     append([]CashEntry(nil), s.CashEntries...),
		Customers:       append([]Customer(nil), s.Customers...),
		Suppliers:       append([]Supplier(nil), s.Suppliers...),
		ProductMappings: make(ProductMappings, len(s.ProductMappings)),
	}
	for i, sale := range s.Sales {
		out.Sales[i] = sale.Clone()
	}
	for i, o := range s.Orders {
		out.Orders[i] = o.Clone()
	}
	for i, t := range s.Transactions {
		out.Transactions[i] = t.Clone()
	}
	for k, v := range s.ProductMappings {
		out.ProductMappings[k] = v
	}
	return out
}
