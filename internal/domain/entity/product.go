package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de artículo del catálogo.
type ProductType string

const (
	ProductTypeProduct ProductType = "PRODUCT" // artículo con existencias
	ProductTypeService ProductType = "SERVICE" // servicio: el stock nunca se modifica
)

// Product representa un artículo del catálogo de la tienda.
// Quantity es el stock actual; para SERVICE no tiene significado y permanece intacto.
type Product struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Category  string          `json:"category,omitempty"`
	Unit      string          `json:"unit,omitempty"`
	Type      ProductType     `json:"type"`
	Quantity  decimal.Decimal `json:"quantity"`
	Cost      decimal.Decimal `json:"cost"`  // último costo de compra
	Price     decimal.Decimal `json:"price"` // precio de venta
	MinStock  decimal.Decimal `json:"minStock"`
	CreatedAt time.Time       `json:"createdAt"`
}

// IsService indica si el artículo está exento del ledger de stock.
func (p Product) IsService() bool {
	return p.Type == ProductTypeService
}

// IsLowStock indica si un artículo con existencias está por debajo de su mínimo.
func (p Product) IsLowStock() bool {
	return !p.IsService() && p.Quantity.LessThan(p.MinStock)
}
