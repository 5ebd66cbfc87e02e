package dto

// CreateSupplyItemRequest alta de artículo. ExpirationDate es ISO, "N/A" o
// vacía; SupplierCode vacío significa "sin proveedor".
type CreateSupplyItemRequest struct {
	Barcode        string `json:"barcode"`
	ProductTitle   string `json:"product_title"`
	ProductDetails string `json:"product_details"`
	Category       string `json:"category"`
	AvailableUnits int    `json:"available_units"`
	ThresholdStock int    `json:"threshold_stock"`
	ExpirationDate string `json:"expiration_date"`
	SupplierCode   string `json:"supplier_code"`
}

// UpdateSupplyItemRequest actualización parcial; el barcode es inmutable.
type UpdateSupplyItemRequest struct {
	ProductTitle   *string `json:"product_title"`
	ProductDetails *string `json:"product_details"`
	Category       *string `json:"category"`
	AvailableUnits *int    `json:"available_units"`
	ThresholdStock *int    `json:"threshold_stock"`
	ExpirationDate *string `json:"expiration_date"` // "" o "N/A" limpia la fecha
	SupplierCode   *string `json:"supplier_code"`   // "" desvincula el proveedor
}

// SupplyItemResponse representación de salida de un artículo, con el
// proveedor ya resuelto (código y nombre) cuando existe.
type SupplyItemResponse struct {
	Barcode        string `json:"barcode"`
	ProductTitle   string `json:"product_title"`
	ProductDetails string `json:"product_details,omitempty"`
	Category       string `json:"category"`
	AvailableUnits int    `json:"available_units"`
	ThresholdStock int    `json:"threshold_stock"`
	ExpirationDate string `json:"expiration_date,omitempty"` // ISO o ausente
	SupplierCode   string `json:"supplier_code,omitempty"`
	SupplierName   string `json:"supplier_name,omitempty"`
	LowStock       bool   `json:"low_stock"`
}

// SupplyItemListResponse listado de artículos.
type SupplyItemListResponse struct {
	Items []SupplyItemResponse `json:"items"`
	Total int                  `json:"total"`
}
