package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-ledger/internal/domain"
	"github.com/jhoicas/tienda-ledger/internal/domain/entity"
	"github.com/jhoicas/tienda-ledger/internal/domain/ledger"
)

func cashSale(items ...entity.SaleItem) entity.Sale {
	return entity.Sale{Items: items, PaymentMethod: entity.PaymentCash}
}

func TestCreateSale_EfectivoDescuentaStockYGeneraIngreso(t *testing.T) {
	l := newLedger(t, baseSnapshot())

	sale, res, err := l.CreateSale(entity.Sale{
		Items:         []entity.SaleItem{{ProductID: "P", Quantity: dec("3"), Price: dec("8"), Cost: dec("5")}},
		PaymentMethod: entity.PaymentCash,
		Total:         dec("24"),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusActive, sale.Status)
	assertDec(t, "7", qty(t, l, "P"))
	assert.ElementsMatch(t, []string{entity.KeyProducts, entity.KeySales, entity.KeyCashEntries}, res.Changed)

	entries := l.CashEntries()
	require.Len(t, entries, 1)
	assert.Equal(t, entity.CashIncome, entries[0].Type)
	assert.Equal(t, entity.CategorySale, entries[0].Category)
	assertDec(t, "24", entries[0].Amount)

	_, err = l.CancelSale(sale.ID)
	require.NoError(t, err)
	assertDec(t, "10", qty(t, l, "P"), "la anulación repone el stock")
	assert.Len(t, l.CashEntries(), 1, "el ingreso de la venta no se revierte")

	got, _ := l.Sale(sale.ID)
	assert.True(t, got.Status.IsDeleted())
}

func TestCreateSale_CreditoAumentaDeudaYPagoLaReduce(t *testing.T) {
	l := newLedger(t, baseSnapshot())

	_, _, err := l.CreateSale(entity.Sale{
		Items:         []entity.SaleItem{{ProductID: "P", Quantity: dec("1"), Price: dec("100")}},
		CustomerID:    "C",
		PaymentMethod: entity.PaymentDebt,
		Total:         dec("100"),
	})
	require.NoError(t, err)
	assertDec(t, "100", customerDebt(t, l, "C"))
	assert.Empty(t, l.CashEntries(), "una venta a crédito no genera ingreso de caja")

	_, _, err = l.AddCashEntry(entity.CashEntry{Type: entity.CashIncome, CustomerID: "C", Category: "Payment", Amount: dec("40")})
	require.NoError(t, err)
	assertDec(t, "60", customerDebt(t, l, "C"))
}

func TestCreateSale_CreditoSinCliente_NoMuta(t *testing.T) {
	l := newLedger(t, baseSnapshot())
	before := l.Snapshot()

	_, _, err := l.CreateSale(entity.Sale{
		Items:         []entity.SaleItem{{ProductID: "P", Quantity: dec("2"), Price: dec("8")}},
		PaymentMethod: entity.PaymentDebt,
	})
	assert.ErrorIs(t, err, domain.ErrCustomerRequired)
	assert.Equal(t, before, l.Snapshot())
}

func TestCreateSale_ClienteInexistente_NoMuta(t *testing.T) {
	l := newLedger(t, baseSnapshot())
	before := l.Snapshot()

	_, _, err := l.CreateSale(entity.Sale{
		Items:         []entity.SaleItem{{ProductID: "P", Quantity: dec("2"), Price: dec("8")}},
		CustomerID:    "NOPE",
		PaymentMethod: entity.PaymentDebt,
	})
	assert.ErrorIs(t, err, domain.ErrCustomerNotFound)
	assert.Equal(t, before, l.Snapshot(), "el stock no se descuenta si falla la deuda")
}

func TestCreateSale_CongelaCostoYCalculaTotal(t *testing.T) {
	l := newLedger(t, baseSnapshot())

	sale, _, err := l.CreateSale(cashSale(entity.SaleItem{ProductID: "P", Quantity: dec("2"), Price: dec("8")}))
	require.NoError(t, err)
	assertDec(t, "5", sale.Items[0].Cost)
	assertDec(t, "16", sale.Total)
	assertDec(t, "6", sale.Profit())
}

func TestCreateSale_IDDuplicado(t *testing.T) {
	l := newLedger(t, baseSnapshot())
	s := cashSale(entity.SaleItem{ProductID: "P", Quantity: dec("1"), Price: dec("8")})
	s.ID = "S-1"
	_, _, err := l.CreateSale(s)
	require.NoError(t, err)

	_, _, err = l.CreateSale(s)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assertDec(t, "9", qty(t, l, "P"))
}

func TestCancelSale_CreditoRestauraStockYDeuda(t *testing.T) {
	snap := baseSnapshot()
	snap.Customers[0].Debt = dec("15")
	l := newLedger(t, snap)

	sale, _, err := l.CreateSale(entity.Sale{
		Items: []entity.SaleItem{
			{ProductID: "P", Quantity: dec("3"), Price: dec("8")},
			{ProductID: "Q", Quantity: dec("1"), Price: dec("6")},
		},
		CustomerID:    "C",
		PaymentMethod: entity.PaymentDebt,
	})
	require.NoError(t, err)
	assertDec(t, "45", customerDebt(t, l, "C"))

	_, err = l.CancelSale(sale.ID)
	require.NoError(t, err)
	assertDec(t, "10", qty(t, l, "P"))
	assertDec(t, "4", qty(t, l, "Q"))
	assertDec(t, "15", customerDebt(t, l, "C"))
}

func TestCancelSale_YaAnulada_NoHaceNada(t *testing.T) {
	l := newLedger(t, baseSnapshot())
	sale, _, err := l.CreateSale(cashSale(entity.SaleItem{ProductID: "P", Quantity: dec("3"), Price: dec("8")}))
	require.NoError(t, err)
	_, err = l.CancelSale(sale.ID)
	require.NoError(t, err)

	res, err := l.CancelSale(sale.ID)
	require.NoError(t, err)
	assert.Empty(t, res.Changed)
	assertDec(t, "10", qty(t, l, "P"), "una segunda anulación no repone dos veces")
}

func TestCancelSale_NoExiste(t *testing.T) {
	l := newLedger(t, baseSnapshot())
	_, err := l.CancelSale("nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateSale_EquivaleAAnularYCrear(t *testing.T) {
	s1 := entity.Sale{
		ID:            "S1",
		Items:         []entity.SaleItem{{ProductID: "P", Quantity: dec("3"), Price: dec("8")}},
		CustomerID:    "C",
		PaymentMethod: entity.PaymentDebt,
	}
	s2 := entity.Sale{
		ID: "S1",
		Items: []entity.SaleItem{
			{ProductID: "P", Quantity: dec("1"), Price: dec("9")},
			{ProductID: "Q", Quantity: dec("2"), Price: dec("6")},
		},
		CustomerID:    "C2",
		PaymentMethod: entity.PaymentDebt,
	}

	edited := newLedger(t, baseSnapshot())
	_, _, err := edited.CreateSale(s1)
	require.NoError(t, err)
	_, _, err = edited.UpdateSale(s2)
	require.NoError(t, err)

	replayed := newLedger(t, baseSnapshot())
	_, _, err = replayed.CreateSale(s1)
	require.NoError(t, err)
	_, err = replayed.CancelSale("S1")
	require.NoError(t, err)
	s2b := s2
	s2b.ID = "S2"
	_, _, err = replayed.CreateSale(s2b)
	require.NoError(t, err)

	for _, id := range []string{"P", "Q"} {
		assertDec(t, qty(t, replayed, id).String(), qty(t, edited, id), id)
	}
	for _, id := range []string{"C", "C2"} {
		assertDec(t, customerDebt(t, replayed, id).String(), customerDebt(t, edited, id), id)
	}
	assertDec(t, "9", qty(t, edited, "P"))
	assertDec(t, "2", qty(t, edited, "Q"))
	assertDec(t, "0", customerDebt(t, edited, "C"))
	assertDec(t, "21", customerDebt(t, edited, "C2"))
}

func TestUpdateSale_DeCreditoAEfectivo(t *testing.T) {
	l := newLedger(t, baseSnapshot())
	sale, _, err := l.CreateSale(entity.Sale{
		Items:         []entity.SaleItem{{ProductID: "P", Quantity: dec("2"), Price: dec("8")}},
		CustomerID:    "C",
		PaymentMethod: entity.PaymentDebt,
	})
	require.NoError(t, err)

	sale.PaymentMethod = entity.PaymentCash
	sale.Total = dec("0")
	updated, _, err := l.UpdateSale(sale)
	require.NoError(t, err)
	assertDec(t, "16", updated.Total)
	assertDec(t, "0", customerDebt(t, l, "C"))
	assertDec(t, "8", qty(t, l, "P"))
	assert.Equal(t, sale.Date, updated.Date)
}

func TestUpdateSale_Anulada(t *testing.T) {
	l := newLedger(t, baseSnapshot())
	sale, _, err := l.CreateSale(cashSale(entity.SaleItem{ProductID: "P", Quantity: dec("1"), Price: dec("8")}))
	require.NoError(t, err)
	_, err = l.CancelSale(sale.ID)
	require.NoError(t, err)

	_, _, err = l.UpdateSale(sale)
	assert.ErrorIs(t, err, domain.ErrAlreadyDeleted)
}

func TestUpdateSale_ConservaCostoCongelado(t *testing.T) {
	l := newLedger(t, baseSnapshot())
	sale, _, err := l.CreateSale(cashSale(entity.SaleItem{ProductID: "P", Quantity: dec("2"), Price: dec("8")}))
	require.NoError(t, err)
	assertDec(t, "5", sale.Items[0].Cost)

	_, _, err = l.PostIntake(ledger.IntakeCommand{
		SupplierID:    "S",
		PaymentMethod: entity.PaymentCash,
		Lines:         []ledger.IntakeLine{{ProductID: "P", Quantity: dec("1"), UnitCost: dec("9")}},
	})
	require.NoError(t, err)
	p, _ := l.Product("P")
	assertDec(t, "9", p.Cost)

	edit := sale
	edit.Total = dec("0")
	edit.Items = []entity.SaleItem{
		{ProductID: "P", Quantity: dec("3"), Price: dec("8")},
		{ProductID: "Q", Quantity: dec("1"), Price: dec("6")},
	}
	updated, _, err := l.UpdateSale(edit)
	require.NoError(t, err)
	assertDec(t, "5", updated.Items[0].Cost, "la edición no reescribe el costo histórico")
	assertDec(t, "3", updated.Items[1].Cost, "una línea nueva toma el costo actual")
	assertDec(t, "12", updated.Profit())

	stored, _ := l.Sale(sale.ID)
	assertDec(t, "5", stored.Items[0].Cost)
}

func TestSale_CostoCeroExplicito(t *testing.T) {
	l := newLedger(t, baseSnapshot())
	sale, _, err := l.CreateSale(cashSale(entity.SaleItem{ProductID: "P", Quantity: dec("1"), Price: dec("0"), CostSet: true}))
	require.NoError(t, err)
	assertDec(t, "0", sale.Items[0].Cost, "una muestra gratis puede costar cero")
	assert.False(t, sale.Items[0].CostSet)

	edit := sale
	edit.Items = []entity.SaleItem{{ProductID: "P", Quantity: dec("2"), Price: dec("0")}}
	updated, _, err := l.UpdateSale(edit)
	require.NoError(t, err)
	assertDec(t, "0", updated.Items[0].Cost)

	edit.Items = []entity.SaleItem{{ProductID: "P", Quantity: dec("2"), Price: dec("8"), Cost: dec("4")}}
	updated, _, err = l.UpdateSale(edit)
	require.NoError(t, err)
	assertDec(t, "4", updated.Items[0].Cost, "un costo explícito reemplaza al congelado")
}

func TestUpdateSale_FallaAlReaplicar_NoMuta(t *testing.T) {
	l := newLedger(t, baseSnapshot())
	sale, _, err := l.CreateSale(cashSale(entity.SaleItem{ProductID: "P", Quantity: dec("4"), Price: dec("8")}))
	require.NoError(t, err)
	before := l.Snapshot()

	sale.PaymentMethod = entity.PaymentDebt
	sale.CustomerID = "NOPE"
	_, _, err = l.UpdateSale(sale)
	assert.ErrorIs(t, err, domain.ErrCustomerNotFound)
	assert.Equal(t, before, l.Snapshot(), "la reversión no se publica si la reaplicación falla")
}

func TestSale_ServicioNoCambiaStock(t *testing.T) {
	l := newLedger(t, baseSnapshot())
	sale, _, err := l.CreateSale(cashSale(
		entity.SaleItem{ProductID: "SRV", Quantity: dec("5"), Price: dec("2")},
	))
	require.NoError(t, err)
	assertDec(t, "0", qty(t, l, "SRV"))

	sale.Items[0].Quantity = dec("7")
	_, _, err = l.UpdateSale(sale)
	require.NoError(t, err)
	assertDec(t, "0", qty(t, l, "SRV"))

	_, err = l.CancelSale(sale.ID)
	require.NoError(t, err)
	assertDec(t, "0", qty(t, l, "SRV"))
}

// El piso en cero pierde el déficit: vender 15 con stock 10 deja 0 y anular deja 15.
func TestSale_StockNuncaNegativo_PisoConPerdida(t *testing.T) {
	l := newLedger(t, baseSnapshot())
	sale, _, err := l.CreateSale(cashSale(entity.SaleItem{ProductID: "P", Quantity: dec("15"), Price: dec("8")}))
	require.NoError(t, err)
	assertDec(t, "0", qty(t, l, "P"))

	_, err = l.CancelSale(sale.ID)
	require.NoError(t, err)
	assertDec(t, "15", qty(t, l, "P"))
}

func TestSale_ProductoBorradoNoBloquea(t *testing.T) {
	l := newLedger(t, baseSnapshot())
	_, _, err := l.CreateSale(cashSale(entity.SaleItem{ProductID: "GONE", Quantity: dec("1"), Price: dec("3")}))
	require.NoError(t, err)
	assert.Len(t, l.Sales(), 1)
}

func TestCreateSale_EntradaInvalida(t *testing.T) {
	l := newLedger(t, baseSnapshot())
	cases := []entity.Sale{
		{PaymentMethod: entity.PaymentCash},
		{Items: []entity.SaleItem{{ProductID: "P", Quantity: dec("0"), Price: dec("1")}}, PaymentMethod: entity.PaymentCash},
		{Items: []entity.SaleItem{{ProductID: "P", Quantity: dec("1"), Price: dec("1")}}, PaymentMethod: "BARTER"},
		{Items: []entity.SaleItem{{ProductID: "", Quantity: dec("1"), Price: dec("1")}}, PaymentMethod: entity.PaymentCard},
	}
	for _, c := range cases {
		_, _, err := l.CreateSale(c)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
	assert.Empty(t, l.Sales())
}
