package entity

// RecordStatus estado de vida de ventas y transacciones.
// La única transición válida es active → deleted; deleted es terminal.
type RecordStatus string

const (
	StatusActive  RecordStatus = "active"
	StatusDeleted RecordStatus = "deleted"
)

// IsDeleted indica si el registro fue anulado. Un estado vacío (datos antiguos) cuenta como activo.
func (s RecordStatus) IsDeleted() bool {
	return s == StatusDeleted
}
