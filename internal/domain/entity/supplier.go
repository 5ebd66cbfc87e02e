package entity

import "time"

// Supplier representa un proveedor del sistema Supir.
// La identidad es el Code (inmutable tras la creación); la relación con los
// artículos es unidireccional: el artículo guarda el código del proveedor y
// cualquier vista "artículos de un proveedor" es una consulta derivada.
type Supplier struct {
	Code             string
	Name             string
	RecentSupplyDate *time.Time // nil = sin fecha de último suministro
}

// Equal compara por identidad (código), igual que la clave del almacén.
func (s *Supplier) Equal(other *Supplier) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.Code == other.Code
}
