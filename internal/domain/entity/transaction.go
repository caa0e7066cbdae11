package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de transacción de inventario.
type TransactionType string

const (
	TransactionIn        TransactionType = "IN"         // entrada de proveedor
	TransactionOut       TransactionType = "OUT"        // salida / baja
	TransactionPendingIn TransactionType = "PENDING_IN" // envío B2B pendiente de conciliar
)

// Transaction movimiento de inventario. Las entradas publicadas juntas comparten BatchID;
// las filas PENDING_IN se agrupan por OrderID (pedido en el tenant remoto).
type Transaction struct {
	ID            string           `json:"id"`
	ProductID     string           `json:"productId"`
	SupplierID    string           `json:"supplierId,omitempty"`
	Type          TransactionType  `json:"type"`
	Quantity      decimal.Decimal  `json:"quantity"`
	PricePerUnit  *decimal.Decimal `json:"pricePerUnit,omitempty"`
	PaymentMethod PaymentMethod    `json:"paymentMethod,omitempty"`
	BatchID       string           `json:"batchId,omitempty"`
	OrderID       string           `json:"orderId,omitempty"`
	RemoteOwnerID string           `json:"remoteOwnerId,omitempty"`
	Note          string           `json:"note,omitempty"`
	Status        RecordStatus     `json:"status"`
	EmployeeID    string           `json:"employeeId,omitempty"`
	Date          time.Time        `json:"date"`
}

// UnitPrice devuelve PricePerUnit o cero.
func (t Transaction) UnitPrice() decimal.Decimal {
	if t.PricePerUnit == nil {
		return decimal.Zero
	}
	return *t.PricePerUnit
}

// Clone copia la transacción sin compartir el puntero de precio.
func (t Transaction) Clone() Transaction {
	out := t
	if t.PricePerUnit != nil {
		p := *t.PricePerUnit
		out.PricePerUnit = &p
	}
	return out
}
