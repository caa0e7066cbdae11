package ledger

import (
	"github.com/jhoicas/tienda-ledger/internal/domain"
	"github.com/jhoicas/tienda-ledger/internal/domain/entity"
)

// SaleIDForOrder ID de la venta generada al confirmar un pedido.
func SaleIDForOrder(orderID string) string {
	return "order-" + orderID
}

// OrderEdit cambios permitidos sobre un pedido aceptado.
type OrderEdit struct {
	Items         []entity.OrderItem
	PaymentMethod entity.PaymentMethod
	Note          *string
}

// CreateOrder registra un pedido en estado NEW. Los pedidos nunca tocan stock ni deuda
// hasta su confirmación.
func (l *Ledger) CreateOrder(order entity.Order) (entity.Order, Result, error) {
	if err := validateOrderItems(order.Items); err != nil {
		return entity.Order{}, Result{}, err
	}
	if order.PaymentMethod != "" && !order.PaymentMethod.Valid() {
		return entity.Order{}, Result{}, domain.ErrInvalidInput
	}
	var stored entity.Order
	res, err := l.exec(func(w *work) error {
		o := order.Clone()
		if o.ID == "" {
			o.ID = w.newID()
		} else if w.order(o.ID) != nil {
			return domain.ErrDuplicate
		}
		if o.Date.IsZero() {
			o.Date = w.now()
		}
		o.Status = entity.OrderStatusNew
		o.Total = entity.OrderTotal(o.Items)
		w.snap.Orders = append(w.snap.Orders, o)
		w.touch(entity.KeyOrders)
		stored = o.Clone()
		return nil
	})
	return stored, res, err
}

// AcceptOrder NEW → ACCEPTED.
func (l *Ledger) AcceptOrder(id string) (Result, error) {
	return l.exec(func(w *work) error {
		o := w.order(id)
		if o == nil {
			return domain.ErrNotFound
		}
		if o.Status != entity.OrderStatusNew {
			return domain.ErrInvalidTransition
		}
		o.Status = entity.OrderStatusAccepted
		w.touch(entity.KeyOrders)
		return nil
	})
}

// EditOrder modifica líneas, método de pago o nota de un pedido ACCEPTED y recalcula el total.
// Es un cambio local al pedido.
func (l *Ledger) EditOrder(id string, edit OrderEdit) (entity.Order, Result, error) {
	if err := validateOrderItems(edit.Items); err != nil {
		return entity.Order{}, Result{}, err
	}
	if edit.PaymentMethod != "" && !edit.PaymentMethod.Valid() {
		return entity.Order{}, Result{}, domain.ErrInvalidInput
	}
	var stored entity.Order
	res, err := l.exec(func(w *work) error {
		o := w.order(id)
		if o == nil {
			return domain.ErrNotFound
		}
		if o.Status != entity.OrderStatusAccepted {
			return domain.ErrInvalidTransition
		}
		o.Items = append([]entity.OrderItem(nil), edit.Items...)
		o.Total = entity.OrderTotal(o.Items)
		if edit.PaymentMethod != "" {
			o.PaymentMethod = edit.PaymentMethod
		}
		if edit.Note != nil {
			o.Note = *edit.Note
		}
		w.touch(entity.KeyOrders)
		stored = o.Clone()
		return nil
	})
	return stored, res, err
}

// ConfirmOrder convierte el pedido en venta y lo marca CONFIRMED.
// La venta toma los costos actuales de los productos, usa DEBT si el pedido no tiene
// método de pago y delega en CreateSale. No verifica existencias: el piso en cero del
// ledger absorbe la diferencia. Que el pedido esté ACCEPTED lo controla la interfaz;
// aquí sólo se rechazan pedidos en estado terminal.
func (l *Ledger) ConfirmOrder(id, employeeID string) (entity.Sale, Result, error) {
	var sale entity.Sale
	res, err := l.exec(func(w *work) error {
		o := w.order(id)
		if o == nil {
			return domain.ErrNotFound
		}
		if o.Status.IsTerminal() {
			return domain.ErrInvalidTransition
		}
		pm := o.PaymentMethod
		if pm == "" {
			pm = entity.PaymentDebt
		}
		draft := entity.Sale{
			ID:            SaleIDForOrder(o.ID),
			Items:         make([]entity.SaleItem, 0, len(o.Items)),
			Total:         o.Total,
			PaymentMethod: pm,
			CustomerID:    o.CustomerID,
			EmployeeID:    employeeID,
		}
		for _, it := range o.Items {
			item := entity.SaleItem{ProductID: it.ProductID, Quantity: it.Quantity, Price: it.Price}
			if p := w.product(it.ProductID); p != nil {
				item.Cost = p.Cost
			}
			draft.Items = append(draft.Items, item)
		}
		var err error
		sale, err = w.createSale(draft)
		if err != nil {
			return err
		}
		// createSale puede haber crecido w.snap.Sales, no w.snap.Orders: o sigue siendo válido.
		o.Status = entity.OrderStatusConfirmed
		w.touch(entity.KeyOrders)
		return nil
	})
	return sale, res, err
}

// CancelOrder rechaza un pedido NEW o ACCEPTED. Sin efecto en stock ni deuda porque
// nada se reservó al crear el pedido.
func (l *Ledger) CancelOrder(id string) (Result, error) {
	return l.exec(func(w *work) error {
		o := w.order(id)
		if o == nil {
			return domain.ErrNotFound
		}
		if o.Status.IsTerminal() {
			return domain.ErrInvalidTransition
		}
		o.Status = entity.OrderStatusCancelled
		w.touch(entity.KeyOrders)
		return nil
	})
}

func validateOrderItems(items []entity.OrderItem) error {
	if len(items) == 0 {
		return domain.ErrInvalidInput
	}
	for _, it := range items {
		if it.ProductID == "" || !it.Quantity.IsPositive() || it.Price.IsNegative() {
			return domain.ErrInvalidInput
		}
	}
	return nil
}
