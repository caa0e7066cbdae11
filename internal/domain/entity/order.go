package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un pedido. CONFIRMED y CANCELLED son terminales.
type OrderStatus string

const (
	OrderStatusNew       OrderStatus = "NEW"
	OrderStatusAccepted  OrderStatus = "ACCEPTED"
	OrderStatusConfirmed OrderStatus = "CONFIRMED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// IsTerminal indica si el pedido ya no admite transiciones.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusConfirmed || s == OrderStatusCancelled
}

// OrderItem línea de pedido (sin costo: el costo se toma al confirmar).
// Name es una copia informativa del nombre del producto al momento del pedido.
type OrderItem struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name,omitempty"`
	Quantity  decimal.Decimal `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// Order pedido de un cliente (o de otra tienda en modo B2B).
// Note sirve como canal de contacto cuando no existe ficha de cliente.
type Order struct {
	ID            string          `json:"id"`
	CustomerID    string          `json:"customerId,omitempty"`
	Items         []OrderItem     `json:"items"`
	Total         decimal.Decimal `json:"total"`
	Status        OrderStatus     `json:"status"`
	PaymentMethod PaymentMethod   `json:"paymentMethod,omitempty"`
	Note          string          `json:"note,omitempty"`
	Date          time.Time       `json:"date"`
}

// OrderTotal Σ(cantidad × precio) de las líneas.
func OrderTotal(items []OrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Quantity.Mul(it.Price))
	}
	return total
}

// Clone copia profunda del pedido.
func (o Order) Clone() Order {
	out := o
	out.Items = append([]OrderItem(nil), o.Items...)
	return out
}
