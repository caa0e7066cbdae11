// Package b2b importa envíos de otras tiendas como filas pendientes y los concilia contra
// el catálogo local.
package b2b

import (
	"context"
	"fmt"

	"github.com/jhoicas/tienda-ledger/internal/application/dto"
	"github.com/jhoicas/tienda-ledger/internal/domain"
	"github.com/jhoicas/tienda-ledger/internal/domain/entity"
	"github.com/jhoicas/tienda-ledger/internal/domain/ledger"
	"github.com/jhoicas/tienda-ledger/internal/domain/repository"
)

// B2BUseCase importación y conciliación de envíos entre tiendas.
type B2BUseCase struct {
	sessions SessionProvider
	remote   repository.RemoteOrderReader
}

// NewB2BUseCase construye el caso de uso.
func NewB2BUseCase(sessions SessionProvider, remote repository.RemoteOrderReader) *B2BUseCase {
	return &B2BUseCase{sessions: sessions, remote: remote}
}

// Import lee el pedido de la tienda remota y lo registra como filas PENDING_IN locales.
func (uc *B2BUseCase) Import(ctx context.Context, ownerID, employeeID string, in dto.ImportShipmentRequest) ([]dto.PendingGroupDTO, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	if ownerID == "" {
		return nil, domain.ErrUnauthorized
	}
	if in.RemoteOwnerID == ownerID {
		return nil, fmt.Errorf("%w: una tienda no puede importar sus propios pedidos", domain.ErrInvalidInput)
	}
	orders, err := uc.remote.Orders(ctx, in.RemoteOwnerID)
	if err != nil {
		return nil, err
	}
	var order *entity.Order
	for i := range orders {
		if orders[i].ID == in.OrderID {
			order = &orders[i]
			break
		}
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.checkBuyer(ctx, in.RemoteOwnerID, ownerID, *order); err != nil {
		return nil, err
	}
	if order.Status == entity.OrderStatusCancelled {
		return nil, fmt.Errorf("%w: el pedido remoto está cancelado", domain.ErrInvalidTransition)
	}

	s, err := uc.sessions.Session(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	var groups []ledger.PendingGroup
	err = s.Mutate(func(l *ledger.Ledger) (ledger.Result, error) {
		res, err := l.RecordPendingShipment(ledger.PendingShipment{
			RemoteOwnerID: in.RemoteOwnerID,
			SupplierID:    in.SupplierID,
			Order:         *order,
			EmployeeID:    employeeID,
		})
		if err != nil {
			return res, err
		}
		groups = l.PendingGroups()
		return res, nil
	})
	if err != nil {
		return nil, err
	}
	return filterGroup(toDTO(groups), in.OrderID), nil
}

// checkBuyer exige que el pedido remoto esté dirigido a un cliente vinculado al tenant
// que importa.
func (uc *B2BUseCase) checkBuyer(ctx context.Context, remoteOwnerID, ownerID string, order entity.Order) error {
	if order.CustomerID == "" {
		return fmt.Errorf("%w: el pedido remoto no tiene cliente", domain.ErrForbidden)
	}
	customers, err := uc.remote.Customers(ctx, remoteOwnerID)
	if err != nil {
		return err
	}
	for _, c := range customers {
		if c.ID == order.CustomerID {
			if c.LinkedOwnerID == ownerID {
				return nil
			}
			break
		}
	}
	return fmt.Errorf("%w: el pedido remoto no está dirigido a esta tienda", domain.ErrForbidden)
}

// Pending pedidos remotos pendientes de conciliación.
func (uc *B2BUseCase) Pending(ctx context.Context, ownerID string) ([]dto.PendingGroupDTO, error) {
	if ownerID == "" {
		return nil, domain.ErrUnauthorized
	}
	s, err := uc.sessions.Session(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	var groups []ledger.PendingGroup
	s.Read(func(l *ledger.Ledger) { groups = l.PendingGroups() })
	return toDTO(groups), nil
}

// Reconcile convierte un pedido pendiente en un lote de entradas.
func (uc *B2BUseCase) Reconcile(ctx context.Context, ownerID, employeeID string, in dto.ReconcileRequest) (dto.BatchResponse, error) {
	if err := dto.Validate(in); err != nil {
		return dto.BatchResponse{}, err
	}
	if ownerID == "" {
		return dto.BatchResponse{}, domain.ErrUnauthorized
	}
	s, err := uc.sessions.Session(ctx, ownerID)
	if err != nil {
		return dto.BatchResponse{}, err
	}
	cmd := ledger.ReconcileCommand{
		OrderID:       in.OrderID,
		SupplierID:    in.SupplierID,
		PaymentMethod: entity.PaymentMethod(in.PaymentMethod),
		Date:          dto.DateOrZero(in.Date),
		EmployeeID:    employeeID,
		Lines:         make([]ledger.LineResolution, 0, len(in.Lines)),
	}
	for _, line := range in.Lines {
		r := ledger.LineResolution{TransactionID: line.TransactionID, ProductID: line.ProductID}
		if line.Create != nil {
			r.Create = &ledger.NewProductSpec{Name: line.Create.Name, Category: line.Create.Category, Unit: line.Create.Unit}
		}
		cmd.Lines = append(cmd.Lines, r)
	}
	var batchID string
	err = s.Mutate(func(l *ledger.Ledger) (ledger.Result, error) {
		id, res, err := l.Reconcile(cmd)
		batchID = id
		return res, err
	})
	return dto.BatchResponse{BatchID: batchID}, err
}

func toDTO(groups []ledger.PendingGroup) []dto.PendingGroupDTO {
	out := make([]dto.PendingGroupDTO, 0, len(groups))
	for _, g := range groups {
		item := dto.PendingGroupDTO{
			OrderID:       g.OrderID,
			RemoteOwnerID: g.RemoteOwnerID,
			SupplierID:    g.SupplierID,
			Date:          g.Date,
			Lines:         make([]dto.PendingLineDTO, 0, len(g.Lines)),
		}
		for _, line := range g.Lines {
			item.Lines = append(item.Lines, dto.PendingLineDTO{
				TransactionID:      line.TransactionID,
				RemoteProductID:    line.RemoteProductID,
				Label:              line.Label,
				Quantity:           line.Quantity,
				UnitCost:           line.UnitCost,
				SuggestedProductID: line.SuggestedProductID,
			})
		}
		out = append(out, item)
	}
	return out
}

func filterGroup(groups []dto.PendingGroupDTO, orderID string) []dto.PendingGroupDTO {
	for _, g := range groups {
		if g.OrderID == orderID {
			return []dto.PendingGroupDTO{g}
		}
	}
	return []dto.PendingGroupDTO{}
}
