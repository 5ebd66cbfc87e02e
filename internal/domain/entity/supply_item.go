package entity

import "time"

// SupplyItem representa un artículo de inventario identificado por su Barcode.
// ExpirationDate nil significa "sin vencimiento" (se persiste como "N/A").
// Supplier se resuelve eager en lectura; nil si el artículo no tiene proveedor.
type SupplyItem struct {
	Barcode        string
	ProductTitle   string
	ProductDetails string
	Category       string
	AvailableUnits int
	ThresholdStock int
	ExpirationDate *time.Time
	Supplier       *Supplier
}

// SupplierCode devuelve el código del proveedor vinculado, o "" si no hay.
func (i *SupplyItem) SupplierCode() string {
	if i.Supplier == nil {
		return ""
	}
	return i.Supplier.Code
}

// LowStock indica si el artículo está en stock bajo: unidades disponibles
// a la altura o por debajo del umbral, con umbral positivo. Un umbral 0
// significa "sin alerta" y nunca marca el artículo.
func (i *SupplyItem) LowStock() bool {
	return i.ThresholdStock > 0 && i.AvailableUnits <= i.ThresholdStock
}
