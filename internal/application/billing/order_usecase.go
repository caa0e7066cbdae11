package billing

import (
	"context"

	"github.com/jhoicas/tienda-ledger/internal/application/dto"
	"github.com/jhoicas/tienda-ledger/internal/domain/entity"
	"github.com/jhoicas/tienda-ledger/internal/domain/ledger"
)

// OrderUseCase flujo de pedidos NEW → ACCEPTED → CONFIRMED | CANCELLED.
type OrderUseCase struct {
	sessions SessionProvider
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(sessions SessionProvider) *OrderUseCase {
	return &OrderUseCase{sessions: sessions}
}

func orderItems(in []dto.OrderItemRequest) []entity.OrderItem {
	out := make([]entity.OrderItem, 0, len(in))
	for _, it := range in {
		out = append(out, entity.OrderItem{ProductID: it.ProductID, Name: it.Name, Quantity: it.Quantity, Price: it.Price})
	}
	return out
}

// List pedidos del tenant; status vacío devuelve todos.
func (uc *OrderUseCase) List(ctx context.Context, ownerID string, status entity.OrderStatus) ([]entity.Order, error) {
	s, err := openSession(ctx, uc.sessions, ownerID)
	if err != nil {
		return nil, err
	}
	var all []entity.Order
	s.Read(func(l *ledger.Ledger) { all = l.Orders() })
	if status == "" {
		return all, nil
	}
	out := make([]entity.Order, 0, len(all))
	for _, o := range all {
		if o.Status == status {
			out = append(out, o)
		}
	}
	return out, nil
}

// Create registra un pedido NEW.
func (uc *OrderUseCase) Create(ctx context.Context, ownerID string, in dto.CreateOrderRequest) (entity.Order, error) {
	if err := dto.Validate(in); err != nil {
		return entity.Order{}, err
	}
	s, err := openSession(ctx, uc.sessions, ownerID)
	if err != nil {
		return entity.Order{}, err
	}
	var created entity.Order
	err = s.Mutate(func(l *ledger.Ledger) (ledger.Result, error) {
		o, res, err := l.CreateOrder(entity.Order{
			CustomerID:    in.CustomerID,
			Items:         orderItems(in.Items),
			PaymentMethod: entity.PaymentMethod(in.PaymentMethod),
			Note:          in.Note,
		})
		created = o
		return res, err
	})
	return created, err
}

// Accept NEW → ACCEPTED.
func (uc *OrderUseCase) Accept(ctx context.Context, ownerID, orderID string) (entity.Order, error) {
	return uc.transition(ctx, ownerID, orderID, (*ledger.Ledger).AcceptOrder)
}

// Cancel rechaza un pedido NEW o ACCEPTED.
func (uc *OrderUseCase) Cancel(ctx context.Context, ownerID, orderID string) (entity.Order, error) {
	return uc.transition(ctx, ownerID, orderID, (*ledger.Ledger).CancelOrder)
}

func (uc *OrderUseCase) transition(ctx context.Context, ownerID, orderID string, fn func(*ledger.Ledger, string) (ledger.Result, error)) (entity.Order, error) {
	s, err := openSession(ctx, uc.sessions, ownerID)
	if err != nil {
		return entity.Order{}, err
	}
	var out entity.Order
	err = s.Mutate(func(l *ledger.Ledger) (ledger.Result, error) {
		res, err := fn(l, orderID)
		if err != nil {
			return res, err
		}
		out, _ = l.Order(orderID)
		return res, nil
	})
	return out, err
}

// Edit modifica un pedido ACCEPTED.
func (uc *OrderUseCase) Edit(ctx context.Context, ownerID, orderID string, in dto.EditOrderRequest) (entity.Order, error) {
	if err := dto.Validate(in); err != nil {
		return entity.Order{}, err
	}
	s, err := openSession(ctx, uc.sessions, ownerID)
	if err != nil {
		return entity.Order{}, err
	}
	var out entity.Order
	err = s.Mutate(func(l *ledger.Ledger) (ledger.Result, error) {
		o, res, err := l.EditOrder(orderID, ledger.OrderEdit{
			Items:         orderItems(in.Items),
			PaymentMethod: entity.PaymentMethod(in.PaymentMethod),
			Note:          in.Note,
		})
		out = o
		return res, err
	})
	return out, err
}

// Confirm convierte el pedido en venta.
func (uc *OrderUseCase) Confirm(ctx context.Context, ownerID, employeeID, orderID string) (entity.Sale, error) {
	s, err := openSession(ctx, uc.sessions, ownerID)
	if err != nil {
		return entity.Sale{}, err
	}
	var sale entity.Sale
	err = s.Mutate(func(l *ledger.Ledger) (ledger.Result, error) {
		out, res, err := l.ConfirmOrder(orderID, employeeID)
		sale = out
		return res, err
	})
	return sale, err
}
