package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-ledger/internal/domain"
	"github.com/jhoicas/tienda-ledger/internal/domain/entity"
)

func TestAddCashEntry_PagoDeClienteConPisoEnCero(t *testing.T) {
	snap := baseSnapshot()
	snap.Customers[0].Debt = dec("30")
	l := newLedger(t, snap)

	entry, res, err := l.AddCashEntry(entity.CashEntry{Type: entity.CashIncome, CustomerID: "C", Category: "Pago", Amount: dec("50")})
	require.NoError(t, err)
	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, testNow, entry.Date)
	assertDec(t, "0", customerDebt(t, l, "C"))
	assert.ElementsMatch(t, []string{entity.KeyCashEntries, entity.KeyCustomers}, res.Changed)
}

func TestAddCashEntry_CategoriaVentaNoReduceDeuda(t *testing.T) {
	snap := baseSnapshot()
	snap.Customers[0].Debt = dec("30")
	l := newLedger(t, snap)

	for _, category := range []string{entity.CategorySale, "Продажа"} {
		_, _, err := l.AddCashEntry(entity.CashEntry{Type: entity.CashIncome, CustomerID: "C", Category: category, Amount: dec("10")})
		require.NoError(t, err)
	}
	assertDec(t, "30", customerDebt(t, l, "C"))
	assert.Len(t, l.CashEntries(), 2)
}

func TestAddCashEntry_EgresoAProveedorReduceDeuda(t *testing.T) {
	snap := baseSnapshot()
	snap.Suppliers[0].Debt = dec("86")
	l := newLedger(t, snap)

	_, _, err := l.AddCashEntry(entity.CashEntry{Type: entity.CashExpense, SupplierID: "S", Category: "Proveedor", Amount: dec("50")})
	require.NoError(t, err)
	assertDec(t, "36", supplierDebt(t, l, "S"))

	// Un ingreso con proveedor no toca su deuda.
	_, _, err = l.AddCashEntry(entity.CashEntry{Type: entity.CashIncome, SupplierID: "S", Category: "Devolución", Amount: dec("10")})
	require.NoError(t, err)
	assertDec(t, "36", supplierDebt(t, l, "S"))
}

func TestAddCashEntry_ContraparteInexistenteSeRegistraIgual(t *testing.T) {
	l := newLedger(t, baseSnapshot())
	_, _, err := l.AddCashEntry(entity.CashEntry{Type: entity.CashIncome, CustomerID: "NOPE", Category: "Pago", Amount: dec("5")})
	require.NoError(t, err)
	assert.Len(t, l.CashEntries(), 1)
}

func TestAddCashEntry_Invalida(t *testing.T) {
	l := newLedger(t, baseSnapshot())
	_, _, err := l.AddCashEntry(entity.CashEntry{Type: "TRANSFER", Amount: dec("5")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, _, err = l.AddCashEntry(entity.CashEntry{Type: entity.CashIncome, Amount: dec("-5")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, l.CashEntries())
}

func TestCashBalance(t *testing.T) {
	l := newLedger(t, baseSnapshot())
	for _, e := range []entity.CashEntry{
		{Type: entity.CashIncome, Category: "Otros", Amount: dec("100")},
		{Type: entity.CashExpense, Category: "Alquiler", Amount: dec("30.5")},
		{Type: entity.CashIncome, Category: entity.CategorySale, Amount: dec("12")},
	} {
		_, _, err := l.AddCashEntry(e)
		require.NoError(t, err)
	}
	assertDec(t, "81.5", l.CashBalance())
}
