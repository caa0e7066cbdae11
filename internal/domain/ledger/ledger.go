// Package ledger implementa el motor de consistencia de inventario, ventas, caja y deudas
// de un tenant. Todas las operaciones son transiciones puras sobre un entity.Snapshot en memoria:
// validan, aplican sobre una copia de trabajo y la publican sólo si no hubo error.
package ledger

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/tienda-ledger/internal/domain/entity"
)

// Result colecciones modificadas por un comando (claves de persistencia).
type Result struct {
	Changed []string
}

// Touches indica si el resultado modificó la colección key.
func (r Result) Touches(key string) bool {
	for _, k := range r.Changed {
		if k == key {
			return true
		}
	}
	return false
}

// Option configura el Ledger.
type Option func(*Ledger)

// WithClock reemplaza el reloj (tests).
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) { l.now = now }
}

// WithIDGenerator reemplaza el generador de IDs (tests).
func WithIDGenerator(newID func() string) Option {
	return func(l *Ledger) { l.newID = newID }
}

// Ledger dueño de las colecciones de un tenant. Los llamadores nunca mutan las colecciones
// directamente: sólo a través de los comandos. No es seguro para uso concurrente; la capa
// de sesión serializa el acceso.
type Ledger struct {
	snap  entity.Snapshot
	now   func() time.Time
	newID func() string
}

// New construye el ledger sobre una copia de snap.
func New(snap entity.Snapshot, opts ...Option) *Ledger {
	l := &Ledger{
		snap:  snap.Clone(),
		now:   time.Now,
		newID: func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.snap.ProductMappings == nil {
		l.snap.ProductMappings = entity.ProductMappings{}
	}
	return l
}

// Snapshot devuelve una copia del estado actual.
func (l *Ledger) Snapshot() entity.Snapshot {
	return l.snap.Clone()
}

// Replace sustituye el estado completo (recarga desde el almacén).
func (l *Ledger) Replace(snap entity.Snapshot) {
	l.snap = snap.Clone()
	if l.snap.ProductMappings == nil {
		l.snap.ProductMappings = entity.ProductMappings{}
	}
}

// exec ejecuta fn sobre una copia de trabajo y la publica sólo si fn no falla.
// Así un error de validación nunca deja el estado a medio aplicar.
func (l *Ledger) exec(fn func(w *work) error) (Result, error) {
	w := &work{snap: l.snap.Clone(), changed: map[string]bool{}, now: l.now, newID: l.newID}
	if err := fn(w); err != nil {
		return Result{}, err
	}
	l.snap = w.snap
	return w.result(), nil
}

// work copia de trabajo de un comando en curso.
type work struct {
	snap    entity.Snapshot
	changed map[string]bool
	now     func() time.Time
	newID   func() string
}

func (w *work) touch(keys ...string) {
	for _, k := range keys {
		w.changed[k] = true
	}
}

func (w *work) result() Result {
	keys := make([]string, 0, len(w.changed))
	for k := range w.changed {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return Result{Changed: keys}
}

func (w *work) product(id string) *entity.Product {
	for i := range w.snap.Products {
		if w.snap.Products[i].ID == id {
			return &w.snap.Products[i]
		}
	}
	return nil
}

func (w *work) sale(id string) *entity.Sale {
	for i := range w.snap.Sales {
		if w.snap.Sales[i].ID == id {
			return &w.snap.Sales[i]
		}
	}
	return nil
}

func (w *work) order(id string) *entity.Order {
	for i := range w.snap.Orders {
		if w.snap.Orders[i].ID == id {
			return &w.snap.Orders[i]
		}
	}
	return nil
}

func (w *work) transaction(id string) *entity.Transaction {
	for i := range w.snap.Transactions {
		if w.snap.Transactions[i].ID == id {
			return &w.snap.Transactions[i]
		}
	}
	return nil
}

func (w *work) customer(id string) *entity.Customer {
	for i := range w.snap.Customers {
		if w.snap.Customers[i].ID == id {
			return &w.snap.Customers[i]
		}
	}
	return nil
}

func (w *work) supplier(id string) *entity.Supplier {
	for i := range w.snap.Suppliers {
		if w.snap.Suppliers[i].ID == id {
			return &w.snap.Suppliers[i]
		}
	}
	return nil
}
