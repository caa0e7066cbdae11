package dto

import "github.com/shopspring/decimal"

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name     string          `json:"name" validate:"required,min=1,max=200"`
	Category string          `json:"category" validate:"max=100"`
	Unit     string          `json:"unit" validate:"max=20"`
	Type     string          `json:"type" validate:"omitempty,oneof=PRODUCT SERVICE"`
	Quantity decimal.Decimal `json:"quantity" validate:"gte=0"`
	Cost     decimal.Decimal `json:"cost" validate:"gte=0"`
	Price    decimal.Decimal `json:"price" validate:"gte=0"`
	MinStock decimal.Decimal `json:"minStock" validate:"gte=0"`
}

// StockDeltaRequest ajuste manual de existencias (positivo o negativo).
type StockDeltaRequest struct {
	Delta decimal.Decimal `json:"delta" validate:"ne=0"`
}
