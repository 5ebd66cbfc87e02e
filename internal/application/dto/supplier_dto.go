package dto

// CreateSupplierRequest alta de proveedor. La fecha es ISO (2006-01-02),
// "N/A" o vacía para "sin fecha".
type CreateSupplierRequest struct {
	Code             string `json:"code"`
	Name             string `json:"name"`
	RecentSupplyDate string `json:"recent_supply_date"`
}

// UpdateSupplierRequest actualización parcial; el código es inmutable.
type UpdateSupplierRequest struct {
	Name             *string `json:"name"`
	RecentSupplyDate *string `json:"recent_supply_date"` // "" o "N/A" limpia la fecha
}

// SupplierResponse representación de salida de un proveedor.
type SupplierResponse struct {
	Code             string `json:"code"`
	Name             string `json:"name"`
	RecentSupplyDate string `json:"recent_supply_date,omitempty"` // ISO o ausente
}

// SupplierListResponse listado completo ordenado por nombre.
type SupplierListResponse struct {
	Items []SupplierResponse `json:"items"`
	Total int                `json:"total"`
}
