package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de caja.
type CashEntryType string

const (
	CashIncome  CashEntryType = "INCOME"
	CashExpense CashEntryType = "EXPENSE"
)

// CategorySale categoría reservada de los ingresos generados por ventas.
// Esos ingresos nunca se interpretan como pago de deuda.
const CategorySale = "Sale"

// legacyCategorySale nombre de la categoría reservada en datos históricos.
const legacyCategorySale = "Продажа"

// IsSaleCategory indica si la categoría es la reservada para ventas.
func IsSaleCategory(category string) bool {
	return category == CategorySale || category == legacyCategorySale
}

// CashEntry movimiento de caja (ingreso o egreso).
type CashEntry struct {
	ID          string          `json:"id"`
	Type        CashEntryType   `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	CustomerID  string          `json:"customerId,omitempty"`
	SupplierID  string          `json:"supplierId,omitempty"`
	Description string          `json:"description,omitempty"`
	EmployeeID  string          `json:"employeeId,omitempty"`
	Date        time.Time       `json:"date"`
}
