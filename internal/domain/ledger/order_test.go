package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-ledger/internal/domain"
	"github.com/jhoicas/tienda-ledger/internal/domain/entity"
	"github.com/jhoicas/tienda-ledger/internal/domain/ledger"
)

func newOrder(t *testing.T, l *ledger.Ledger, pm entity.PaymentMethod) entity.Order {
	t.Helper()
	o, _, err := l.CreateOrder(entity.Order{
		CustomerID: "C",
		Items: []entity.OrderItem{
			{ProductID: "P", Quantity: dec("2"), Price: dec("8")},
			{ProductID: "Q", Quantity: dec("1"), Price: dec("6")},
		},
		PaymentMethod: pm,
	})
	require.NoError(t, err)
	return o
}

func TestCreateOrder_EstadoNuevoYTotal(t *testing.T) {
	l := newLedger(t, baseSnapshot())
	o := newOrder(t, l, "")

	assert.Equal(t, entity.OrderStatusNew, o.Status)
	assertDec(t, "22", o.Total)
	assertDec(t, "10", qty(t, l, "P"), "un pedido no reserva stock")
	assertDec(t, "0", customerDebt(t, l, "C"))
}

func TestConfirmOrder_CreditoAumentaDeudaYCreaUnaVenta(t *testing.T) {
	l := newLedger(t, baseSnapshot())
	o := newOrder(t, l, entity.PaymentDebt)
	_, err := l.AcceptOrder(o.ID)
	require.NoError(t, err)

	sale, res, err := l.ConfirmOrder(o.ID, "emp-1")
	require.NoError(t, err)

	assert.Equal(t, ledger.SaleIDForOrder(o.ID), sale.ID)
	assert.Equal(t, "C", sale.CustomerID)
	assert.Equal(t, "emp-1", sale.EmployeeID)
	assertDec(t, "22", customerDebt(t, l, "C"))
	assert.Len(t, l.Sales(), 1)
	assertDec(t, "8", qty(t, l, "P"))
	assertDec(t, "3", qty(t, l, "Q"))
	assert.True(t, res.Touches(entity.KeyOrders))

	got, _ := l.Order(o.ID)
	assert.Equal(t, entity.OrderStatusConfirmed, got.Status)
}

func TestConfirmOrder_SinMetodoUsaCreditoYCostoActual(t *testing.T) {
	snap := baseSnapshot()
	l := newLedger(t, snap)
	o := newOrder(t, l, "")
	_, err := l.AcceptOrder(o.ID)
	require.NoError(t, err)

	// El costo cambia entre el pedido y la confirmación: se usa el actual.
	_, _, err = l.PostIntake(ledger.IntakeCommand{
		SupplierID:    "S",
		PaymentMethod: entity.PaymentCash,
		Lines:         []ledger.IntakeLine{{ProductID: "P", Quantity: dec("1"), UnitCost: dec("6.5")}},
	})
	require.NoError(t, err)

	sale, _, err := l.ConfirmOrder(o.ID, "")
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentDebt, sale.PaymentMethod)
	assertDec(t, "6.5", sale.Items[0].Cost)
	assertDec(t, "3", sale.Items[1].Cost)
}

func TestConfirmOrder_EfectivoGeneraIngreso(t *testing.T) {
	l := newLedger(t, baseSnapshot())
	o := newOrder(t, l, entity.PaymentCash)
	_, err := l.AcceptOrder(o.ID)
	require.NoError(t, err)

	_, _, err = l.ConfirmOrder(o.ID, "")
	require.NoError(t, err)
	assertDec(t, "0", customerDebt(t, l, "C"))
	assertDec(t, "22", l.CashBalance())
}

func TestConfirmOrder_EstadoTerminal(t *testing.T) {
	l := newLedger(t, baseSnapshot())
	o := newOrder(t, l, entity.PaymentDebt)
	_, err := l.AcceptOrder(o.ID)
	require.NoError(t, err)
	_, _, err = l.ConfirmOrder(o.ID, "")
	require.NoError(t, err)

	_, _, err = l.ConfirmOrder(o.ID, "")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	assert.Len(t, l.Sales(), 1, "una segunda confirmación no crea otra venta")
	assertDec(t, "22", customerDebt(t, l, "C"))

	_, err = l.CancelOrder(o.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestConfirmOrder_CreditoSinCliente_NoMuta(t *testing.T) {
	l := newLedger(t, baseSnapshot())
	o, _, err := l.CreateOrder(entity.Order{
		Items: []entity.OrderItem{{ProductID: "P", Quantity: dec("1"), Price: dec("8")}},
		Note:  "tel. 555-1234",
	})
	require.NoError(t, err)
	_, err = l.AcceptOrder(o.ID)
	require.NoError(t, err)
	before := l.Snapshot()

	_, _, err = l.ConfirmOrder(o.ID, "")
	assert.ErrorIs(t, err, domain.ErrCustomerRequired)
	assert.Equal(t, before, l.Snapshot())
}

func TestCancelOrder_DesdeNuevoYAceptado(t *testing.T) {
	l := newLedger(t, baseSnapshot())
	o1 := newOrder(t, l, "")
	o2 := newOrder(t, l, "")
	_, err := l.AcceptOrder(o2.ID)
	require.NoError(t, err)

	_, err = l.CancelOrder(o1.ID)
	require.NoError(t, err)
	_, err = l.CancelOrder(o2.ID)
	require.NoError(t, err)

	for _, id := range []string{o1.ID, o2.ID} {
		got, _ := l.Order(id)
		assert.Equal(t, entity.OrderStatusCancelled, got.Status)
	}
	assertDec(t, "10", qty(t, l, "P"))

	_, err = l.AcceptOrder(o1.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestEditOrder_SoloAceptadoYRecalculaTotal(t *testing.T) {
	l := newLedger(t, baseSnapshot())
	o := newOrder(t, l, "")
	items := []entity.OrderItem{{ProductID: "P", Quantity: dec("5"), Price: dec("7")}}

	_, _, err := l.EditOrder(o.ID, ledger.OrderEdit{Items: items})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition, "un pedido NEW no se edita")

	_, err = l.AcceptOrder(o.ID)
	require.NoError(t, err)
	note := "entregar el lunes"
	edited, _, err := l.EditOrder(o.ID, ledger.OrderEdit{Items: items, PaymentMethod: entity.PaymentCard, Note: &note})
	require.NoError(t, err)
	assertDec(t, "35", edited.Total)
	assert.Equal(t, entity.PaymentCard, edited.PaymentMethod)
	assert.Equal(t, note, edited.Note)
	assertDec(t, "10", qty(t, l, "P"))
}
