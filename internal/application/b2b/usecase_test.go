package b2b_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-ledger/internal/application/b2b"
	"github.com/jhoicas/tienda-ledger/internal/application/dto"
	"github.com/jhoicas/tienda-ledger/internal/application/session"
	"github.com/jhoicas/tienda-ledger/internal/domain"
	"github.com/jhoicas/tienda-ledger/internal/domain/entity"
	"github.com/jhoicas/tienda-ledger/internal/domain/ledger"
	"github.com/jhoicas/tienda-ledger/internal/infrastructure/memory"
)

const (
	buyer  = "shop-A"
	seller = "shop-B"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// setup: shop-B tiene los pedidos R1 y R2 dirigidos a su cliente vinculado con shop-A,
// R3 dirigido a un cliente sin vínculo y R4 sin cliente; shop-A tiene al proveedor
// vinculado a shop-B y el producto local "Leche".
func setup(t *testing.T) (*b2b.B2BUseCase, *session.Manager, *memory.CollectionStore, string) {
	t.Helper()
	store := memory.NewCollectionStore()
	line := []entity.OrderItem{{ProductID: "rp1", Quantity: d("1"), Price: d("1")}}
	remote := []entity.Order{{
		ID:         "R1",
		CustomerID: "C-A",
		Status:     entity.OrderStatusConfirmed,
		Items: []entity.OrderItem{
			{ProductID: "rp1", Name: "Leche", Quantity: d("4"), Price: d("2.5")},
			{ProductID: "rp2", Name: "Pan", Quantity: d("2"), Price: d("1")},
		},
	},
		{ID: "R2", CustomerID: "C-A", Status: entity.OrderStatusCancelled, Items: line},
		{ID: "R3", CustomerID: "C-Z", Status: entity.OrderStatusConfirmed, Items: line},
		{ID: "R4", Status: entity.OrderStatusConfirmed, Items: line},
	}
	customers := []entity.Customer{
		{ID: "C-A", Name: "Tienda A", LinkedOwnerID: buyer},
		{ID: "C-Z", Name: "Mostrador"},
	}
	rawOrders, err := json.Marshal(remote)
	require.NoError(t, err)
	rawCustomers, err := json.Marshal(customers)
	require.NoError(t, err)
	require.NoError(t, store.SaveMany(context.Background(), seller, map[string]json.RawMessage{
		entity.KeyOrders:    rawOrders,
		entity.KeyCustomers: rawCustomers,
	}))

	m := session.NewManager(store, session.Options{Debounce: time.Hour, RefetchInterval: time.Hour, Timeout: time.Second}, nil)
	t.Cleanup(func() { _ = m.Close(context.Background()) })
	s, err := m.Session(context.Background(), buyer)
	require.NoError(t, err)
	var milkID string
	require.NoError(t, s.Mutate(func(l *ledger.Ledger) (ledger.Result, error) {
		if _, _, err := l.CreateSupplier(entity.Supplier{ID: "S", Name: "Tienda B", LinkedOwnerID: seller}); err != nil {
			return ledger.Result{}, err
		}
		p, res, err := l.CreateProduct(entity.Product{Name: "Leche", Quantity: d("1"), Cost: d("2")})
		milkID = p.ID
		res.Changed = append(res.Changed, entity.KeySuppliers)
		return res, err
	}))
	return b2b.NewB2BUseCase(m, session.NewRemoteOrders(store, time.Second)), m, store, milkID
}

func TestB2B_ImportarYConciliar(t *testing.T) {
	ctx := context.Background()
	uc, m, store, milkID := setup(t)

	groups, err := uc.Import(ctx, buyer, "emp-1", dto.ImportShipmentRequest{RemoteOwnerID: seller, OrderID: "R1"})
	require.NoError(t, err)
	require.Len(t, groups, 1)
	require.Len(t, groups[0].Lines, 2)
	assert.Equal(t, "Leche", groups[0].Lines[0].Label)

	pending, err := uc.Pending(ctx, buyer)
	require.NoError(t, err)
	require.Len(t, pending, 1)

	arrival := time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)
	batch, err := uc.Reconcile(ctx, buyer, "emp-1", dto.ReconcileRequest{
		OrderID:       "R1",
		PaymentMethod: "DEBT",
		Date:          &arrival,
		Lines: []dto.ReconcileLineRequest{
			{TransactionID: pending[0].Lines[0].TransactionID, ProductID: milkID},
			{TransactionID: pending[0].Lines[1].TransactionID, Create: &dto.NewProductRequest{Category: "Panadería"}},
		},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, batch.BatchID)

	s, err := m.Session(ctx, buyer)
	require.NoError(t, err)
	s.Read(func(l *ledger.Ledger) {
		milk, _ := l.Product(milkID)
		assert.True(t, d("5").Equal(milk.Quantity))
		sup, _ := l.Supplier("S")
		assert.True(t, d("12").Equal(sup.Debt))
		assert.Len(t, l.Products(), 2)
		assert.Empty(t, l.PendingGroups())
		for _, tx := range l.Transactions() {
			if tx.Type == entity.TransactionIn {
				assert.True(t, arrival.Equal(tx.Date), "el lote usa la fecha elegida")
			}
		}
	})
	assert.Contains(t, s.Status().DirtyKeys, entity.KeyProductMappings)

	// La tienda remota no se modifica.
	raw, err := store.Load(ctx, seller, entity.KeyTransactions)
	require.NoError(t, err)
	assert.Nil(t, raw)

	_, err = uc.Import(ctx, buyer, "", dto.ImportShipmentRequest{RemoteOwnerID: seller, OrderID: "R1"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestB2B_ErroresDeImportacion(t *testing.T) {
	ctx := context.Background()
	uc, _, _, _ := setup(t)

	_, err := uc.Import(ctx, buyer, "", dto.ImportShipmentRequest{RemoteOwnerID: seller, OrderID: "NOPE"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Import(ctx, buyer, "", dto.ImportShipmentRequest{RemoteOwnerID: seller, OrderID: "R2"})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	_, err = uc.Import(ctx, buyer, "", dto.ImportShipmentRequest{RemoteOwnerID: buyer, OrderID: "R1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Import(ctx, buyer, "", dto.ImportShipmentRequest{OrderID: "R1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestB2B_ImportarPedidoAjeno(t *testing.T) {
	ctx := context.Background()
	uc, _, _, _ := setup(t)

	groups, err := uc.Import(ctx, "shop-X", "", dto.ImportShipmentRequest{RemoteOwnerID: seller, OrderID: "R1"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Nil(t, groups, "no se exponen las líneas del pedido")

	pending, err := uc.Pending(ctx, "shop-X")
	require.NoError(t, err)
	assert.Empty(t, pending)

	_, err = uc.Import(ctx, buyer, "", dto.ImportShipmentRequest{RemoteOwnerID: seller, OrderID: "R3"})
	assert.ErrorIs(t, err, domain.ErrForbidden, "cliente remoto sin vínculo")

	_, err = uc.Import(ctx, buyer, "", dto.ImportShipmentRequest{RemoteOwnerID: seller, OrderID: "R4"})
	assert.ErrorIs(t, err, domain.ErrForbidden, "pedido sin cliente")
}

func TestB2B_ConciliarLineaSinProducto(t *testing.T) {
	ctx := context.Background()
	uc, _, _, _ := setup(t)
	_, err := uc.Import(ctx, buyer, "", dto.ImportShipmentRequest{RemoteOwnerID: seller, OrderID: "R1"})
	require.NoError(t, err)

	_, err = uc.Reconcile(ctx, buyer, "", dto.ReconcileRequest{OrderID: "R1", PaymentMethod: "CASH"})
	assert.ErrorIs(t, err, domain.ErrUnmappedLine)

	pending, err := uc.Pending(ctx, buyer)
	require.NoError(t, err)
	assert.Len(t, pending, 1, "el pedido sigue pendiente")
}
