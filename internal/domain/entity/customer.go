package entity

import "time"

// Customer representa un cliente de la tienda; Debt es la cuenta por cobrar.
// LinkedOwnerID es el tenant del cliente cuando es otra tienda del sistema (modo B2B):
// sólo ese tenant puede importar los pedidos dirigidos a este cliente.
type Customer struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Phone         string    `json:"phone,omitempty"`
	LinkedOwnerID string    `json:"linkedOwnerId,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	DebtAccount
}

// Supplier representa un proveedor; Debt es la cuenta por pagar.
// LinkedOwnerID es el tenant remoto cuando el proveedor también usa el sistema (modo B2B).
type Supplier struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Phone         string    `json:"phone,omitempty"`
	LinkedOwnerID string    `json:"linkedOwnerId,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	DebtAccount
}
