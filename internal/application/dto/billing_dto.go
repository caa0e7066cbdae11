package dto

import "github.com/shopspring/decimal"

// SaleItemRequest línea de venta. Sin cost, una venta nueva toma el costo actual del
// producto y una edición conserva el costo congelado de la línea original.
type SaleItemRequest struct {
	ProductID string           `json:"productId" validate:"required"`
	Quantity  decimal.Decimal  `json:"quantity" validate:"gt=0"`
	Price     decimal.Decimal  `json:"price" validate:"gte=0"`
	Cost      *decimal.Decimal `json:"cost" validate:"omitempty,gte=0"`
}

// SaleRequest body para POST /api/sales y PUT /api/sales/:id.
type SaleRequest struct {
	Items         []SaleItemRequest `json:"items" validate:"required,min=1,dive"`
	PaymentMethod string            `json:"paymentMethod" validate:"required,oneof=CASH CARD DEBT"`
	CustomerID    string            `json:"customerId" validate:"required_if=PaymentMethod DEBT"`
	Total         decimal.Decimal   `json:"total" validate:"gte=0"`
}

// OrderItemRequest línea de pedido.
type OrderItemRequest struct {
	ProductID string          `json:"productId" validate:"required"`
	Name      string          `json:"name" validate:"max=200"`
	Quantity  decimal.Decimal `json:"quantity" validate:"gt=0"`
	Price     decimal.Decimal `json:"price" validate:"gte=0"`
}

// CreateOrderRequest body para POST /api/orders.
type CreateOrderRequest struct {
	CustomerID    string             `json:"customerId"`
	Items         []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
	PaymentMethod string             `json:"paymentMethod" validate:"omitempty,oneof=CASH CARD DEBT"`
	Note          string             `json:"note" validate:"max=500"`
}

// EditOrderRequest body para PUT /api/orders/:id.
type EditOrderRequest struct {
	Items         []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
	PaymentMethod string             `json:"paymentMethod" validate:"omitempty,oneof=CASH CARD DEBT"`
	Note          *string            `json:"note" validate:"omitempty,max=500"`
}

// CashEntryRequest body para POST /api/cash.
type CashEntryRequest struct {
	Type        string          `json:"type" validate:"required,oneof=INCOME EXPENSE"`
	Amount      decimal.Decimal `json:"amount" validate:"gt=0"`
	Category    string          `json:"category" validate:"required,max=100"`
	CustomerID  string          `json:"customerId"`
	SupplierID  string          `json:"supplierId"`
	Description string          `json:"description" validate:"max=500"`
}

// CashBalanceResponse saldo de caja.
type CashBalanceResponse struct {
	Balance decimal.Decimal `json:"balance"`
}

// CreateCustomerRequest body para POST /api/customers.
// LinkedOwnerID identifica a la tienda cliente cuando también usa el sistema (B2B).
type CreateCustomerRequest struct {
	Name          string          `json:"name" validate:"required,min=1,max=200"`
	Phone         string          `json:"phone" validate:"max=40"`
	LinkedOwnerID string          `json:"linkedOwnerId" validate:"max=100"`
	Debt          decimal.Decimal `json:"debt" validate:"gte=0"`
}

// CreateSupplierRequest body para POST /api/suppliers. LinkedOwnerID vincula otra tienda (B2B).
type CreateSupplierRequest struct {
	Name          string          `json:"name" validate:"required,min=1,max=200"`
	Phone         string          `json:"phone" validate:"max=40"`
	LinkedOwnerID string          `json:"linkedOwnerId"`
	Debt          decimal.Decimal `json:"debt" validate:"gte=0"`
}
