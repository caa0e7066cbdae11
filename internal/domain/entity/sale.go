package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Métodos de pago.
type PaymentMethod string

const (
	PaymentCash PaymentMethod = "CASH"
	PaymentCard PaymentMethod = "CARD"
	PaymentDebt PaymentMethod = "DEBT" // a crédito: genera deuda del cliente o con el proveedor
)

// Valid indica si el método de pago es conocido.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentDebt:
		return true
	}
	return false
}

// SaleItem línea de venta. Cost se congela al momento de la venta para que el
// margen histórico no cambie cuando cambia el costo del producto.
// CostSet marca un costo enviado explícitamente (incluso cero); no se persiste.
type SaleItem struct {
	ProductID string          `json:"productId"`
	Quantity  decimal.Decimal `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Cost      decimal.Decimal `json:"cost"`
	CostSet   bool            `json:"-"`
}

// HasCost indica si la línea trae su propio costo.
func (it SaleItem) HasCost() bool {
	return it.CostSet || !it.Cost.IsZero()
}

// Sale representa una venta del punto de venta.
type Sale struct {
	ID            string          `json:"id"`
	Items         []SaleItem      `json:"items"`
	Total         decimal.Decimal `json:"total"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	CustomerID    string          `json:"customerId,omitempty"`
	Status        RecordStatus    `json:"status"`
	EmployeeID    string          `json:"employeeId,omitempty"`
	Date          time.Time       `json:"date"`
}

// IsDebt indica si la venta afecta la deuda de un cliente.
func (s Sale) IsDebt() bool {
	return s.PaymentMethod == PaymentDebt && s.CustomerID != ""
}

// Profit margen de la venta con los costos congelados.
func (s Sale) Profit() decimal.Decimal {
	profit := decimal.Zero
	for _, it := range s.Items {
		profit = profit.Add(it.Quantity.Mul(it.Price.Sub(it.Cost)))
	}
	return profit
}

// Clone copia profunda de la venta.
func (s Sale) Clone() Sale {
	out := s
	out.Items = append([]SaleItem(nil), s.Items...)
	return out
}
