package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")

	// Validación previa a cualquier mutación del ledger.
	ErrCustomerRequired = errors.New("se requiere cliente para una venta a crédito")
	ErrSupplierRequired = errors.New("se requiere proveedor")
	ErrCustomerNotFound = errors.New("cliente no encontrado")
	ErrSupplierNotFound = errors.New("proveedor no encontrado")
	ErrProductNotFound  = errors.New("producto no encontrado")

	// Ciclo de vida de registros.
	ErrInvalidTransition = errors.New("transición de estado no permitida")
	ErrAlreadyDeleted    = errors.New("el registro ya fue eliminado")

	// Conciliación B2B.
	ErrNoPendingLines = errors.New("no hay líneas pendientes para el pedido")
	ErrUnmappedLine   = errors.New("línea pendiente sin producto local asignado")
)
