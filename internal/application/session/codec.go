package session

import (
	"encoding/json"
	"fmt"

	"github.com/jhoicas/tienda-ledger/internal/domain/entity"
)

// field devuelve el destino de decodificación de cada clave del snapshot.
func field(snap *entity.Snapshot, key string) (any, bool) {
	switch key {
	case entity.KeyProducts:
		return &snap.Products, true
	case entity.KeySales:
		return &snap.Sales, true
	case entity.KeyOrders:
		return &snap.Orders, true
	case entity.KeyTransactions:
		return &snap.Transactions, true
	case entity.KeyCashEntries:
		return &snap.CashEntries, true
	case entity.KeyCustomers:
		return &snap.Customers, true
	case entity.KeySuppliers:
		return &snap.Suppliers, true
	case entity.KeyProductMappings:
		return &snap.ProductMappings, true
	}
	return nil, false
}

// DecodeSnapshot arma un snapshot a partir de los valores guardados. Una clave ausente
// (nil) o con JSON null queda como colección vacía.
func DecodeSnapshot(values map[string]json.RawMessage) (entity.Snapshot, error) {
	var snap entity.Snapshot
	for key, raw := range values {
		dst, ok := field(&snap, key)
		if !ok || len(raw) == 0 {
			continue
		}
		if err := json.Unmarshal(raw, dst); err != nil {
			return entity.Snapshot{}, fmt.Errorf("decode %s: %w", key, err)
		}
	}
	if snap.ProductMappings == nil {
		snap.ProductMappings = entity.ProductMappings{}
	}
	return snap, nil
}

// EncodeSnapshot serializa las colecciones indicadas. Una colección vacía se escribe como []
// (o {} para los mapeos), nunca como null.
func EncodeSnapshot(snap entity.Snapshot, keys []string) (map[string]json.RawMessage, error) {
	out := make(map[string]json.RawMessage, len(keys))
	for _, key := range keys {
		var v any
		switch key {
		case entity.KeyProducts:
			v = nonNil(snap.Products)
		case entity.KeySales:
			v = nonNil(snap.Sales)
		case entity.KeyOrders:
			v = nonNil(snap.Orders)
		case entity.KeyTransactions:
			v = nonNil(snap.Transactions)
		case entity.KeyCashEntries:
			v = nonNil(snap.CashEntries)
		case entity.KeyCustomers:
			v = nonNil(snap.Customers)
		case entity.KeySuppliers:
			v = nonNil(snap.Suppliers)
		case entity.KeyProductMappings:
			m := snap.ProductMappings
			if m == nil {
				m = entity.ProductMappings{}
			}
			v = m
		default:
			return nil, fmt.Errorf("encode: clave desconocida %q", key)
		}
		raw, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", key, err)
		}
		out[key] = raw
	}
	return out, nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
