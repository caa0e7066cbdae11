package inventory

import (
	"context"

	"github.com/jhoicas/tienda-ledger/internal/application/dto"
	"github.com/jhoicas/tienda-ledger/internal/application/session"
	"github.com/jhoicas/tienda-ledger/internal/domain"
	"github.com/jhoicas/tienda-ledger/internal/domain/entity"
	"github.com/jhoicas/tienda-ledger/internal/domain/ledger"
)

// InventoryUseCase catálogo, ajustes de stock y movimientos de proveedor de un tenant.
type InventoryUseCase struct {
	sessions SessionProvider
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(sessions SessionProvider) *InventoryUseCase {
	return &InventoryUseCase{sessions: sessions}
}

func (uc *InventoryUseCase) session(ctx context.Context, ownerID string) (*session.Session, error) {
	if ownerID == "" {
		return nil, domain.ErrUnauthorized
	}
	return uc.sessions.Session(ctx, ownerID)
}

// ListProducts catálogo completo.
func (uc *InventoryUseCase) ListProducts(ctx context.Context, ownerID string) ([]entity.Product, error) {
	s, err := uc.session(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	var out []entity.Product
	s.Read(func(l *ledger.Ledger) { out = l.Products() })
	return out, nil
}

// LowStock productos con existencias por debajo de su mínimo.
func (uc *InventoryUseCase) LowStock(ctx context.Context, ownerID string) ([]entity.Product, error) {
	s, err := uc.session(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	var out []entity.Product
	s.Read(func(l *ledger.Ledger) { out = l.LowStock() })
	return out, nil
}

// CreateProduct agrega un producto al catálogo.
func (uc *InventoryUseCase) CreateProduct(ctx context.Context, ownerID string, in dto.CreateProductRequest) (entity.Product, error) {
	if err := dto.Validate(in); err != nil {
		return entity.Product{}, err
	}
	s, err := uc.session(ctx, ownerID)
	if err != nil {
		return entity.Product{}, err
	}
	var created entity.Product
	err = s.Mutate(func(l *ledger.Ledger) (ledger.Result, error) {
		p, res, err := l.CreateProduct(entity.Product{
			Name:     in.Name,
			Category: in.Category,
			Unit:     in.Unit,
			Type:     entity.ProductType(in.Type),
			Quantity: in.Quantity,
			Cost:     in.Cost,
			Price:    in.Price,
			MinStock: in.MinStock,
		})
		created = p
		return res, err
	})
	return created, err
}

// AdjustStock aplica un ajuste manual con piso en cero.
func (uc *InventoryUseCase) AdjustStock(ctx context.Context, ownerID, productID string, in dto.StockDeltaRequest) (entity.Product, error) {
	if err := dto.Validate(in); err != nil {
		return entity.Product{}, err
	}
	s, err := uc.session(ctx, ownerID)
	if err != nil {
		return entity.Product{}, err
	}
	var out entity.Product
	err = s.Mutate(func(l *ledger.Ledger) (ledger.Result, error) {
		res, err := l.ApplyStockDelta(productID, in.Delta)
		if err != nil {
			return res, err
		}
		out, _ = l.Product(productID)
		return res, nil
	})
	return out, err
}

// PostIntake publica un lote de entradas de proveedor.
func (uc *InventoryUseCase) PostIntake(ctx context.Context, ownerID, employeeID string, in dto.IntakeRequest) (dto.BatchResponse, error) {
	if err := dto.Validate(in); err != nil {
		return dto.BatchResponse{}, err
	}
	s, err := uc.session(ctx, ownerID)
	if err != nil {
		return dto.BatchResponse{}, err
	}
	cmd := ledger.IntakeCommand{
		SupplierID:    in.SupplierID,
		PaymentMethod: entity.PaymentMethod(in.PaymentMethod),
		Date:          dto.DateOrZero(in.Date),
		EmployeeID:    employeeID,
		Note:          in.Note,
		Lines:         make([]ledger.IntakeLine, 0, len(in.Lines)),
	}
	for _, line := range in.Lines {
		cmd.Lines = append(cmd.Lines, ledger.IntakeLine{ProductID: line.ProductID, Quantity: line.Quantity, UnitCost: line.UnitCost})
	}
	var batchID string
	err = s.Mutate(func(l *ledger.Ledger) (ledger.Result, error) {
		id, res, err := l.PostIntake(cmd)
		batchID = id
		return res, err
	})
	return dto.BatchResponse{BatchID: batchID}, err
}

// PostWriteOff registra una baja de existencias.
func (uc *InventoryUseCase) PostWriteOff(ctx context.Context, ownerID, employeeID string, in dto.WriteOffRequest) (entity.Transaction, error) {
	if err := dto.Validate(in); err != nil {
		return entity.Transaction{}, err
	}
	s, err := uc.session(ctx, ownerID)
	if err != nil {
		return entity.Transaction{}, err
	}
	var tx entity.Transaction
	err = s.Mutate(func(l *ledger.Ledger) (ledger.Result, error) {
		out, res, err := l.PostWriteOff(ledger.WriteOffCommand{
			ProductID:  in.ProductID,
			Quantity:   in.Quantity,
			Note:       in.Note,
			EmployeeID: employeeID,
		})
		tx = out
		return res, err
	})
	return tx, err
}

// DeleteTransaction anula una entrada o salida revirtiendo su efecto.
func (uc *InventoryUseCase) DeleteTransaction(ctx context.Context, ownerID, transactionID string) error {
	s, err := uc.session(ctx, ownerID)
	if err != nil {
		return err
	}
	return s.Mutate(func(l *ledger.Ledger) (ledger.Result, error) {
		return l.DeleteTransaction(transactionID)
	})
}

// ListTransactions movimientos de inventario; includeDeleted incluye los anulados.
func (uc *InventoryUseCase) ListTransactions(ctx context.Context, ownerID string, includeDeleted bool) ([]entity.Transaction, error) {
	s, err := uc.session(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	var all []entity.Transaction
	s.Read(func(l *ledger.Ledger) { all = l.Transactions() })
	if includeDeleted {
		return all, nil
	}
	out := make([]entity.Transaction, 0, len(all))
	for _, tx := range all {
		if !tx.Status.IsDeleted() {
			out = append(out, tx)
		}
	}
	return out, nil
}
