package entity

import "github.com/shopspring/decimal"

// DebtAccount saldo de deuda de una contraparte (por cobrar o por pagar).
// El saldo nunca queda por debajo de cero: las disminuciones se truncan en cero.
type DebtAccount struct {
	Debt decimal.Decimal `json:"debt"`
}

// Increase suma amount a la deuda.
func (a *DebtAccount) Increase(amount decimal.Decimal) {
	a.Debt = decimal.Max(decimal.Zero, a.Debt.Add(amount))
}

// Decrease resta amount a la deuda con piso en cero.
func (a *DebtAccount) Decrease(amount decimal.Decimal) {
	a.Debt = decimal.Max(decimal.Zero, a.Debt.Sub(amount))
}
