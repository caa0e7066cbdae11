package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ImportShipmentRequest body para POST /api/b2b/import: un pedido de otra tienda.
type ImportShipmentRequest struct {
	RemoteOwnerID string `json:"remoteOwnerId" validate:"required"`
	OrderID       string `json:"orderId" validate:"required"`
	SupplierID    string `json:"supplierId"`
}

// NewProductRequest producto creado durante la conciliación; Name vacío usa el nombre remoto.
type NewProductRequest struct {
	Name     string `json:"name" validate:"max=200"`
	Category string `json:"category" validate:"max=100"`
	Unit     string `json:"unit" validate:"max=20"`
}

// ReconcileLineRequest decisión para una fila pendiente: producto existente o nuevo.
type ReconcileLineRequest struct {
	TransactionID string             `json:"transactionId" validate:"required"`
	ProductID     string             `json:"productId" validate:"excluded_with=Create"`
	Create        *NewProductRequest `json:"create"`
}

// ReconcileRequest body para POST /api/b2b/reconcile.
type ReconcileRequest struct {
	OrderID       string                 `json:"orderId" validate:"required"`
	SupplierID    string                 `json:"supplierId"`
	PaymentMethod string                 `json:"paymentMethod" validate:"required,oneof=CASH DEBT"`
	Date          *time.Time             `json:"date"`
	Lines         []ReconcileLineRequest `json:"lines" validate:"dive"`
}

// PendingLineDTO fila pendiente de conciliación.
type PendingLineDTO struct {
	TransactionID      string          `json:"transactionId"`
	RemoteProductID    string          `json:"remoteProductId"`
	Label              string          `json:"label"`
	Quantity           decimal.Decimal `json:"quantity"`
	UnitCost           decimal.Decimal `json:"unitCost"`
	SuggestedProductID string          `json:"suggestedProductId,omitempty"`
}

// PendingGroupDTO pedido remoto pendiente de conciliación.
type PendingGroupDTO struct {
	OrderID       string           `json:"orderId"`
	RemoteOwnerID string           `json:"remoteOwnerId"`
	SupplierID    string           `json:"supplierId,omitempty"`
	Date          time.Time        `json:"date"`
	Lines         []PendingLineDTO `json:"lines"`
}
