package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-ledger/internal/domain"
	"github.com/jhoicas/tienda-ledger/internal/domain/entity"
)

// IntakeLine línea de un lote de entrada de proveedor.
type IntakeLine struct {
	ProductID string
	Quantity  decimal.Decimal
	UnitCost  decimal.Decimal
}

// IntakeCommand lote de entradas de un proveedor; todas las transacciones comparten BatchID.
type IntakeCommand struct {
	SupplierID    string
	PaymentMethod entity.PaymentMethod // CASH o DEBT
	Date          time.Time
	EmployeeID    string
	Note          string
	Lines         []IntakeLine
}

// WriteOffCommand baja de existencias (transacción OUT).
type WriteOffCommand struct {
	ProductID  string
	Quantity   decimal.Decimal
	Note       string
	EmployeeID string
	Date       time.Time
}

// PostIntake publica un lote de entradas: una transacción IN por línea, stock sumado por
// producto, costo del producto = último costo visto en el lote (sin promediar) y, si el lote
// es a crédito, deuda con el proveedor += Σ(cantidad × costo). No valida niveles de stock
// ni de deuda.
func (l *Ledger) PostIntake(cmd IntakeCommand) (string, Result, error) {
	var batchID string
	res, err := l.exec(func(w *work) error {
		batchID = w.newID()
		return w.postIntake(cmd, batchID, nil)
	})
	return batchID, res, err
}

// postIntake núcleo compartido con la conciliación B2B. decorate permite completar cada
// transacción generada (por índice de línea) antes de guardarla.
func (w *work) postIntake(cmd IntakeCommand, batchID string, decorate func(i int, tx *entity.Transaction)) error {
	if cmd.SupplierID == "" {
		return domain.ErrSupplierRequired
	}
	if w.supplier(cmd.SupplierID) == nil {
		return domain.ErrSupplierNotFound
	}
	if cmd.PaymentMethod != entity.PaymentCash && cmd.PaymentMethod != entity.PaymentDebt {
		return domain.ErrInvalidInput
	}
	if len(cmd.Lines) == 0 {
		return domain.ErrInvalidInput
	}
	for _, line := range cmd.Lines {
		if !line.Quantity.IsPositive() || line.UnitCost.IsNegative() {
			return domain.ErrInvalidInput
		}
		if w.product(line.ProductID) == nil {
			return domain.ErrProductNotFound
		}
	}

	date := cmd.Date
	if date.IsZero() {
		date = w.now()
	}
	var (
		order    []string
		qty      = map[string]decimal.Decimal{}
		lastCost = map[string]decimal.Decimal{}
		total    = decimal.Zero
	)
	for i, line := range cmd.Lines {
		cost := line.UnitCost
		tx := entity.Transaction{
			ID:            w.newID(),
			ProductID:     line.ProductID,
			SupplierID:    cmd.SupplierID,
			Type:          entity.TransactionIn,
			Quantity:      line.Quantity,
			PricePerUnit:  &cost,
			PaymentMethod: cmd.PaymentMethod,
			BatchID:       batchID,
			Note:          cmd.Note,
			Status:        entity.StatusActive,
			EmployeeID:    cmd.EmployeeID,
			Date:          date,
		}
		if decorate != nil {
			decorate(i, &tx)
		}
		w.snap.Transactions = append(w.snap.Transactions, tx)

		if _, seen := qty[line.ProductID]; !seen {
			order = append(order, line.ProductID)
			qty[line.ProductID] = decimal.Zero
		}
		qty[line.ProductID] = qty[line.ProductID].Add(line.Quantity)
		lastCost[line.ProductID] = line.UnitCost
		total = total.Add(line.Quantity.Mul(line.UnitCost))
	}
	w.touch(entity.KeyTransactions)

	for _, productID := range order {
		w.applyStockDelta(productID, qty[productID])
		w.product(productID).Cost = lastCost[productID]
	}
	w.touch(entity.KeyProducts)

	if cmd.PaymentMethod == entity.PaymentDebt {
		return w.increaseSupplierDebt(cmd.SupplierID, total)
	}
	return nil
}

// PostWriteOff registra una salida de stock sin efecto en deudas.
func (l *Ledger) PostWriteOff(cmd WriteOffCommand) (entity.Transaction, Result, error) {
	if !cmd.Quantity.IsPositive() {
		return entity.Transaction{}, Result{}, domain.ErrInvalidInput
	}
	var stored entity.Transaction
	res, err := l.exec(func(w *work) error {
		if w.product(cmd.ProductID) == nil {
			return domain.ErrProductNotFound
		}
		date := cmd.Date
		if date.IsZero() {
			date = w.now()
		}
		stored = entity.Transaction{
			ID:         w.newID(),
			ProductID:  cmd.ProductID,
			Type:       entity.TransactionOut,
			Quantity:   cmd.Quantity,
			Note:       cmd.Note,
			Status:     entity.StatusActive,
			EmployeeID: cmd.EmployeeID,
			Date:       date,
		}
		w.snap.Transactions = append(w.snap.Transactions, stored)
		w.touch(entity.KeyTransactions)
		w.applyStockDelta(cmd.ProductID, cmd.Quantity.Neg())
		return nil
	})
	return stored, res, err
}

// DeleteTransaction anula una transacción revirtiendo su efecto en stock y, para entradas
// a crédito, en la deuda con el proveedor. El costo sobrescrito del producto no se restaura.
// Anular una transacción ya anulada no hace nada.
func (l *Ledger) DeleteTransaction(id string) (Result, error) {
	return l.exec(func(w *work) error {
		tx := w.transaction(id)
		if tx == nil {
			return domain.ErrNotFound
		}
		if tx.Status.IsDeleted() {
			return nil
		}
		switch tx.Type {
		case entity.TransactionIn:
			w.applyStockDelta(tx.ProductID, tx.Quantity.Neg())
			if tx.PaymentMethod == entity.PaymentDebt && tx.SupplierID != "" {
				w.decreaseSupplierDebt(tx.SupplierID, tx.Quantity.Mul(tx.UnitPrice()))
			}
		case entity.TransactionOut:
			w.applyStockDelta(tx.ProductID, tx.Quantity)
		}
		tx.Status = entity.StatusDeleted
		w.touch(entity.KeyTransactions)
		return nil
	})
}
