package dto_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-ledger/internal/application/dto"
	"github.com/jhoicas/tienda-ledger/internal/domain"
)

func TestValidate_VentaValida(t *testing.T) {
	in := dto.SaleRequest{
		PaymentMethod: "CASH",
		Items:         []dto.SaleItemRequest{{ProductID: "P", Quantity: decimal.NewFromInt(2), Price: decimal.NewFromInt(8)}},
	}
	assert.NoError(t, dto.Validate(in))
}

func TestValidate_CreditoSinClienteYCantidadCero(t *testing.T) {
	in := dto.SaleRequest{
		PaymentMethod: "DEBT",
		Items:         []dto.SaleItemRequest{{ProductID: "P", Quantity: decimal.Zero, Price: decimal.NewFromInt(8)}},
	}
	err := dto.Validate(in)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "customerId")
	assert.Contains(t, err.Error(), "quantity")
}

func TestValidate_MetodoDePagoDeEntrada(t *testing.T) {
	in := dto.IntakeRequest{
		SupplierID:    "S",
		PaymentMethod: "CARD",
		Lines:         []dto.IntakeLineRequest{{ProductID: "P", Quantity: decimal.NewFromInt(1)}},
	}
	err := dto.Validate(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "paymentMethod")
}

func TestValidate_AjusteDeStockCero(t *testing.T) {
	assert.ErrorIs(t, dto.Validate(dto.StockDeltaRequest{}), domain.ErrInvalidInput)
	assert.NoError(t, dto.Validate(dto.StockDeltaRequest{Delta: decimal.NewFromInt(-3)}))
}
