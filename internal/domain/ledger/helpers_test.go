package ledger_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-ledger/internal/domain/entity"
	"github.com/jhoicas/tienda-ledger/internal/domain/ledger"
)

var testNow = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func ptr(d decimal.Decimal) *decimal.Decimal {
	return &d
}

// baseSnapshot tienda con un producto P, un servicio SRV, un cliente C y un proveedor S.
func baseSnapshot() entity.Snapshot {
	return entity.Snapshot{
		Products: []entity.Product{
			{ID: "P", Name: "Harina", Type: entity.ProductTypeProduct, Quantity: dec("10"), Cost: dec("5"), Price: dec("8"), MinStock: dec("2")},
			{ID: "Q", Name: "Azúcar", Type: entity.ProductTypeProduct, Quantity: dec("4"), Cost: dec("3"), Price: dec("6")},
			{ID: "SRV", Name: "Entrega", Type: entity.ProductTypeService, Quantity: decimal.Zero, Price: dec("2")},
		},
		Customers: []entity.Customer{
			{ID: "C", Name: "Ana"},
			{ID: "C2", Name: "Luis"},
		},
		Suppliers: []entity.Supplier{
			{ID: "S", Name: "Mayorista"},
		},
	}
}

// newLedger ledger con reloj fijo e IDs secuenciales (id-1, id-2, ...).
func newLedger(t *testing.T, snap entity.Snapshot) *ledger.Ledger {
	t.Helper()
	n := 0
	return ledger.New(snap,
		ledger.WithClock(func() time.Time { return testNow }),
		ledger.WithIDGenerator(func() string {
			n++
			return fmt.Sprintf("id-%d", n)
		}),
	)
}

func qty(t *testing.T, l *ledger.Ledger, productID string) decimal.Decimal {
	t.Helper()
	p, ok := l.Product(productID)
	require.True(t, ok, "producto %s debe existir", productID)
	return p.Quantity
}

func customerDebt(t *testing.T, l *ledger.Ledger, id string) decimal.Decimal {
	t.Helper()
	c, ok := l.Customer(id)
	require.True(t, ok, "cliente %s debe existir", id)
	return c.Debt
}

func supplierDebt(t *testing.T, l *ledger.Ledger, id string) decimal.Decimal {
	t.Helper()
	s, ok := l.Supplier(id)
	require.True(t, ok, "proveedor %s debe existir", id)
	return s.Debt
}

func assertDec(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	require.Truef(t, dec(want).Equal(got), "esperado %s, obtenido %s %v", want, got, msgAndArgs)
}
