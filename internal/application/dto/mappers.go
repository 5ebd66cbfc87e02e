package dto

import (
	"github.com/supir/suministros-api/internal/application/feed"
	"github.com/supir/suministros-api/internal/domain/entity"
)

// ToSupplierResponse mapea la entidad a su representación de salida.
func ToSupplierResponse(s *entity.Supplier) *SupplierResponse {
	if s == nil {
		return nil
	}
	return &SupplierResponse{
		Code:             s.Code,
		Name:             s.Name,
		RecentSupplyDate: entity.FormatOptionalDate(s.RecentSupplyDate),
	}
}

// ToSupplierListResponse mapea el listado de proveedores.
func ToSupplierListResponse(list []*entity.Supplier) *SupplierListResponse {
	items := make([]SupplierResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *ToSupplierResponse(s))
	}
	return &SupplierListResponse{Items: items, Total: len(items)}
}

// ToSupplyItemResponse mapea la entidad a su representación de salida, con el
// proveedor resuelto cuando existe.
func ToSupplyItemResponse(i *entity.SupplyItem) *SupplyItemResponse {
	if i == nil {
		return nil
	}
	out := &SupplyItemResponse{
		Barcode:        i.Barcode,
		ProductTitle:   i.ProductTitle,
		ProductDetails: i.ProductDetails,
		Category:       i.Category,
		AvailableUnits: i.AvailableUnits,
		ThresholdStock: i.ThresholdStock,
		ExpirationDate: entity.FormatOptionalDate(i.ExpirationDate),
		LowStock:       i.LowStock(),
	}
	if i.Supplier != nil {
		out.SupplierCode = i.Supplier.Code
		out.SupplierName = i.Supplier.Name
	}
	return out
}

// ToSupplyItemListResponse mapea el listado de artículos.
func ToSupplyItemListResponse(list []*entity.SupplyItem) *SupplyItemListResponse {
	items := make([]SupplyItemResponse, 0, len(list))
	for _, i := range list {
		items = append(items, *ToSupplyItemResponse(i))
	}
	return &SupplyItemListResponse{Items: items, Total: len(items)}
}

// ToImportResponse mapea el resultado de una corrida de importación.
func ToImportResponse(r *feed.Result) *ImportResponse {
	if r == nil {
		return nil
	}
	return &ImportResponse{
		RunID:          r.RunID,
		OverallSuccess: r.OverallSuccess(),
		Severity:       r.Severity(),
		Suppliers: ImportCounters{
			Added:   r.SuppliersAdded(),
			Updated: r.SuppliersUpdated(),
			Failed:  r.SuppliersFailed(),
		},
		Items: ImportCounters{
			Added:   r.ItemsAdded(),
			Updated: r.ItemsUpdated(),
			Failed:  r.ItemsFailed(),
		},
		Messages: r.Messages(),
		Summary:  r.Summary(),
	}
}

// ToDeleteManyResponse mapea el resultado por clave de un borrado en lote.
func ToDeleteManyResponse(results map[string]error) *DeleteManyResponse {
	out := make(map[string]string, len(results))
	for key, err := range results {
		if err != nil {
			out[key] = err.Error()
		} else {
			out[key] = ""
		}
	}
	return &DeleteManyResponse{Results: out}
}
