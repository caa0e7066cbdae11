package ledger

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/tienda-ledger/internal/domain"
	"github.com/jhoicas/tienda-ledger/internal/domain/entity"
)

// pendingNotePrefix marca las notas de filas PENDING_IN: "b2b:<remoteProductId>:<nombre>".
const pendingNotePrefix = "b2b:"

// newProductMarkup precio de venta por defecto de un producto creado en conciliación.
var newProductMarkup = decimal.NewFromFloat(1.5)

// EncodePendingNote codifica el producto remoto en la nota de una fila PENDING_IN.
func EncodePendingNote(remoteProductID, label string) string {
	return pendingNotePrefix + remoteProductID + ":" + label
}

// ParsePendingNote extrae el ID y el nombre del producto remoto de la nota.
// Es el único texto libre que interpreta el ledger.
func ParsePendingNote(note string) (remoteProductID, label string, ok bool) {
	if !strings.HasPrefix(note, pendingNotePrefix) {
		return "", strings.TrimSpace(norm.NFC.String(note)), false
	}
	rest := strings.TrimPrefix(note, pendingNotePrefix)
	id, name, found := strings.Cut(rest, ":")
	if !found || id == "" {
		return "", strings.TrimSpace(norm.NFC.String(rest)), false
	}
	return id, strings.TrimSpace(norm.NFC.String(name)), true
}

// PendingShipment envío de otra tienda: su pedido (leído del tenant remoto) se convierte en
// filas PENDING_IN locales a la espera de conciliación.
type PendingShipment struct {
	RemoteOwnerID string
	SupplierID    string
	Order         entity.Order
	EmployeeID    string
}

// PendingLine fila PENDING_IN con los datos decodificados de su nota.
type PendingLine struct {
	TransactionID      string
	RemoteProductID    string
	Label              string
	Quantity           decimal.Decimal
	UnitCost           decimal.Decimal
	SuggestedProductID string
}

// PendingGroup filas PENDING_IN de un mismo pedido remoto.
type PendingGroup struct {
	OrderID       string
	RemoteOwnerID string
	SupplierID    string
	Date          time.Time
	Lines         []PendingLine
}

// NewProductSpec datos de un producto local creado durante la conciliación.
type NewProductSpec struct {
	Name     string
	Category string
	Unit     string
}

// LineResolution decisión del operador para una fila pendiente: producto existente
// (ProductID) o producto nuevo (Create). Sin decisión se usa el mapeo guardado.
type LineResolution struct {
	TransactionID string
	ProductID     string
	Create        *NewProductSpec
}

// ReconcileCommand conciliación de un pedido remoto completo.
type ReconcileCommand struct {
	OrderID       string
	SupplierID    string
	PaymentMethod entity.PaymentMethod
	Date          time.Time
	EmployeeID    string
	Lines         []LineResolution
}

// RecordPendingShipment crea una fila PENDING_IN por línea del pedido remoto.
// Un pedido ya importado (pendiente o conciliado) se rechaza como duplicado.
func (l *Ledger) RecordPendingShipment(in PendingShipment) (Result, error) {
	if in.RemoteOwnerID == "" || in.Order.ID == "" {
		return Result{}, domain.ErrInvalidInput
	}
	if err := validateOrderItems(in.Order.Items); err != nil {
		return Result{}, err
	}
	return l.exec(func(w *work) error {
		if in.SupplierID != "" && w.supplier(in.SupplierID) == nil {
			return domain.ErrSupplierNotFound
		}
		for _, tx := range w.snap.Transactions {
			if tx.OrderID == in.Order.ID && tx.RemoteOwnerID == in.RemoteOwnerID && !tx.Status.IsDeleted() {
				return domain.ErrDuplicate
			}
		}
		now := w.now()
		for _, it := range in.Order.Items {
			price := it.Price
			w.snap.Transactions = append(w.snap.Transactions, entity.Transaction{
				ID:            w.newID(),
				ProductID:     w.snap.ProductMappings[entity.MappingKey(in.RemoteOwnerID, it.ProductID)],
				SupplierID:    in.SupplierID,
				Type:          entity.TransactionPendingIn,
				Quantity:      it.Quantity,
				PricePerUnit:  &price,
				OrderID:       in.Order.ID,
				RemoteOwnerID: in.RemoteOwnerID,
				Note:          EncodePendingNote(it.ProductID, it.Name),
				Status:        entity.StatusActive,
				EmployeeID:    in.EmployeeID,
				Date:          now,
			})
		}
		w.touch(entity.KeyTransactions)
		return nil
	})
}

// PendingGroups filas PENDING_IN activas agrupadas por pedido, con el producto local
// sugerido según los mapeos guardados.
func (l *Ledger) PendingGroups() []PendingGroup {
	byOrder := map[string]*PendingGroup{}
	var ids []string
	for _, tx := range l.snap.Transactions {
		if tx.Type != entity.TransactionPendingIn || tx.Status.IsDeleted() {
			continue
		}
		g, ok := byOrder[tx.OrderID]
		if !ok {
			g = &PendingGroup{OrderID: tx.OrderID, RemoteOwnerID: tx.RemoteOwnerID, SupplierID: tx.SupplierID, Date: tx.Date}
			byOrder[tx.OrderID] = g
			ids = append(ids, tx.OrderID)
		}
		remoteID, label, _ := ParsePendingNote(tx.Note)
		suggested := l.snap.ProductMappings[entity.MappingKey(tx.RemoteOwnerID, remoteID)]
		if suggested == "" {
			suggested = tx.ProductID
		}
		g.Lines = append(g.Lines, PendingLine{
			TransactionID:      tx.ID,
			RemoteProductID:    remoteID,
			Label:              label,
			Quantity:           tx.Quantity,
			UnitCost:           tx.UnitPrice(),
			SuggestedProductID: suggested,
		})
	}
	sort.Strings(ids)
	out := make([]PendingGroup, 0, len(ids))
	for _, id := range ids {
		out = append(out, *byOrder[id])
	}
	return out
}

// Reconcile concilia un pedido remoto como un único lote atómico:
// crea los productos pedidos, guarda los mapeos remoto → local, convierte cada fila PENDING_IN
// en una entrada IN del mismo lote y elimina las filas pendientes. Cualquier error deja
// el estado intacto.
func (l *Ledger) Reconcile(cmd ReconcileCommand) (string, Result, error) {
	if cmd.OrderID == "" {
		return "", Result{}, domain.ErrInvalidInput
	}
	var batchID string
	res, err := l.exec(func(w *work) error {
		var pending []entity.Transaction
		for _, tx := range w.snap.Transactions {
			if tx.Type == entity.TransactionPendingIn && tx.OrderID == cmd.OrderID && !tx.Status.IsDeleted() {
				pending = append(pending, tx)
			}
		}
		if len(pending) == 0 {
			return domain.ErrNoPendingLines
		}

		resolutions := make(map[string]LineResolution, len(cmd.Lines))
		inGroup := make(map[string]bool, len(pending))
		for _, tx := range pending {
			inGroup[tx.ID] = true
		}
		for _, r := range cmd.Lines {
			if !inGroup[r.TransactionID] {
				return fmt.Errorf("%w: línea %s no pertenece al pedido", domain.ErrInvalidInput, r.TransactionID)
			}
			resolutions[r.TransactionID] = r
		}

		lines := make([]IntakeLine, 0, len(pending))
		for _, tx := range pending {
			remoteID, label, _ := ParsePendingNote(tx.Note)
			cost := tx.UnitPrice()
			localID, err := w.resolvePendingLine(tx, resolutions[tx.ID], remoteID, label, cost)
			if err != nil {
				return err
			}
			if remoteID != "" && tx.RemoteOwnerID != "" {
				w.snap.ProductMappings[entity.MappingKey(tx.RemoteOwnerID, remoteID)] = localID
				w.touch(entity.KeyProductMappings)
			}
			lines = append(lines, IntakeLine{ProductID: localID, Quantity: tx.Quantity, UnitCost: cost})
		}

		supplierID := cmd.SupplierID
		if supplierID == "" {
			supplierID = pending[0].SupplierID
		}
		if supplierID == "" {
			supplierID = w.linkedSupplier(pending[0].RemoteOwnerID)
		}

		batchID = w.newID()
		err := w.postIntake(IntakeCommand{
			SupplierID:    supplierID,
			PaymentMethod: cmd.PaymentMethod,
			Date:          cmd.Date,
			EmployeeID:    cmd.EmployeeID,
			Lines:         lines,
		}, batchID, func(i int, tx *entity.Transaction) {
			tx.OrderID = pending[i].OrderID
			tx.RemoteOwnerID = pending[i].RemoteOwnerID
			tx.Note = pending[i].Note
		})
		if err != nil {
			return err
		}

		kept := w.snap.Transactions[:0]
		for _, tx := range w.snap.Transactions {
			if !inGroup[tx.ID] {
				kept = append(kept, tx)
			}
		}
		w.snap.Transactions = kept
		w.touch(entity.KeyTransactions)
		return nil
	})
	return batchID, res, err
}

// resolvePendingLine decide el producto local de una fila: decisión explícita del operador,
// luego el mapeo guardado, luego el producto sugerido en la propia fila.
func (w *work) resolvePendingLine(tx entity.Transaction, r LineResolution, remoteID, label string, cost decimal.Decimal) (string, error) {
	switch {
	case r.ProductID != "":
		if w.product(r.ProductID) == nil {
			return "", domain.ErrProductNotFound
		}
		return r.ProductID, nil
	case r.Create != nil:
		name := strings.TrimSpace(r.Create.Name)
		if name == "" {
			name = label
		}
		if name == "" {
			return "", fmt.Errorf("%w: nombre de producto vacío", domain.ErrInvalidInput)
		}
		p := entity.Product{
			ID:        w.newID(),
			Name:      name,
			Category:  r.Create.Category,
			Unit:      r.Create.Unit,
			Type:      entity.ProductTypeProduct,
			Quantity:  decimal.Zero,
			Cost:      cost,
			Price:     cost.Mul(newProductMarkup),
			MinStock:  decimal.Zero,
			CreatedAt: w.now(),
		}
		w.snap.Products = append(w.snap.Products, p)
		w.touch(entity.KeyProducts)
		return p.ID, nil
	}
	if mapped := w.snap.ProductMappings[entity.MappingKey(tx.RemoteOwnerID, remoteID)]; mapped != "" && w.product(mapped) != nil {
		return mapped, nil
	}
	if tx.ProductID != "" && w.product(tx.ProductID) != nil {
		return tx.ProductID, nil
	}
	return "", fmt.Errorf("%w: %s", domain.ErrUnmappedLine, tx.ID)
}

// linkedSupplier proveedor local vinculado a un tenant remoto.
func (w *work) linkedSupplier(remoteOwnerID string) string {
	if remoteOwnerID == "" {
		return ""
	}
	for _, s := range w.snap.Suppliers {
		if s.LinkedOwnerID == remoteOwnerID {
			return s.ID
		}
	}
	return ""
}
