package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// IntakeLineRequest línea de una entrada de proveedor.
type IntakeLineRequest struct {
	ProductID string          `json:"productId" validate:"required"`
	Quantity  decimal.Decimal `json:"quantity" validate:"gt=0"`
	UnitCost  decimal.Decimal `json:"unitCost" validate:"gte=0"`
}

// IntakeRequest body para POST /api/transactions/intake. Sin date el lote se fecha ahora.
type IntakeRequest struct {
	SupplierID    string              `json:"supplierId" validate:"required"`
	PaymentMethod string              `json:"paymentMethod" validate:"required,oneof=CASH DEBT"`
	Date          *time.Time          `json:"date"`
	Note          string              `json:"note" validate:"max=500"`
	Lines         []IntakeLineRequest `json:"lines" validate:"required,min=1,dive"`
}

// DateOrZero fecha elegida o cero (el ledger usa su reloj).
func DateOrZero(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}

// WriteOffRequest body para POST /api/transactions/write-off.
type WriteOffRequest struct {
	ProductID string          `json:"productId" validate:"required"`
	Quantity  decimal.Decimal `json:"quantity" validate:"gt=0"`
	Note      string          `json:"note" validate:"max=500"`
}

// BatchResponse ID del lote de entradas publicado.
type BatchResponse struct {
	BatchID string `json:"batchId"`
}

// ReplenishmentSuggestionDTO sugerencia de reposición para un producto bajo su mínimo.
type ReplenishmentSuggestionDTO struct {
	ProductID          string          `json:"productId"`
	ProductName        string          `json:"productName"`
	CurrentStock       decimal.Decimal `json:"currentStock"`
	MinStock           decimal.Decimal `json:"minStock"`
	SuggestedOrderQty  decimal.Decimal `json:"suggestedOrderQty"`  // MinStock*1.5 - CurrentStock
	UnitCost           decimal.Decimal `json:"unitCost"`           // último costo de compra
	EstimatedOrderCost decimal.Decimal `json:"estimatedOrderCost"` // SuggestedOrderQty * UnitCost
	LastSupplierID     string          `json:"lastSupplierId,omitempty"`
	Priority           int             `json:"priority"` // 1 = más urgente
}
