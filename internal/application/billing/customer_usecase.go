package billing

import (
	"context"

	"github.com/jhoicas/tienda-ledger/internal/application/dto"
	"github.com/jhoicas/tienda-ledger/internal/domain/entity"
	"github.com/jhoicas/tienda-ledger/internal/domain/ledger"
)

// CustomerUseCase clientes y proveedores con sus cuentas de deuda.
type CustomerUseCase struct {
	sessions SessionProvider
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(sessions SessionProvider) *CustomerUseCase {
	return &CustomerUseCase{sessions: sessions}
}

// Create crea un nuevo cliente.
func (uc *CustomerUseCase) Create(ctx context.Context, ownerID string, in dto.CreateCustomerRequest) (entity.Customer, error) {
	if err := dto.Validate(in); err != nil {
		return entity.Customer{}, err
	}
	s, err := openSession(ctx, uc.sessions, ownerID)
	if err != nil {
		return entity.Customer{}, err
	}
	var out entity.Customer
	err = s.Mutate(func(l *ledger.Ledger) (ledger.Result, error) {
		c, res, err := l.CreateCustomer(entity.Customer{
			Name:          in.Name,
			Phone:         in.Phone,
			LinkedOwnerID: in.LinkedOwnerID,
			DebtAccount:   entity.DebtAccount{Debt: in.Debt},
		})
		out = c
		return res, err
	})
	return out, err
}

// List lista clientes.
func (uc *CustomerUseCase) List(ctx context.Context, ownerID string) ([]entity.Customer, error) {
	s, err := openSession(ctx, uc.sessions, ownerID)
	if err != nil {
		return nil, err
	}
	var out []entity.Customer
	s.Read(func(l *ledger.Ledger) { out = l.Customers() })
	return out, nil
}

// CreateSupplier crea un proveedor, opcionalmente vinculado a otra tienda.
func (uc *CustomerUseCase) CreateSupplier(ctx context.Context, ownerID string, in dto.CreateSupplierRequest) (entity.Supplier, error) {
	if err := dto.Validate(in); err != nil {
		return entity.Supplier{}, err
	}
	s, err := openSession(ctx, uc.sessions, ownerID)
	if err != nil {
		return entity.Supplier{}, err
	}
	var out entity.Supplier
	err = s.Mutate(func(l *ledger.Ledger) (ledger.Result, error) {
		sup, res, err := l.CreateSupplier(entity.Supplier{
			Name:          in.Name,
			Phone:         in.Phone,
			LinkedOwnerID: in.LinkedOwnerID,
			DebtAccount:   entity.DebtAccount{Debt: in.Debt},
		})
		out = sup
		return res, err
	})
	return out, err
}

// ListSuppliers lista proveedores.
func (uc *CustomerUseCase) ListSuppliers(ctx context.Context, ownerID string) ([]entity.Supplier, error) {
	s, err := openSession(ctx, uc.sessions, ownerID)
	if err != nil {
		return nil, err
	}
	var out []entity.Supplier
	s.Read(func(l *ledger.Ledger) { out = l.Suppliers() })
	return out, nil
}
