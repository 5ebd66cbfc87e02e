package repository

import "github.com/supir/suministros-api/internal/domain/entity"

// SupplyItemRepository define el puerto de persistencia para SupplyItem.
// GetByBarcode devuelve (nil, nil) cuando el artículo no existe.
// CountBySupplier alimenta la guarda referencial del borrado de proveedores.
type SupplyItemRepository interface {
	ListAll() ([]*entity.SupplyItem, error)
	GetByBarcode(barcode string) (*entity.SupplyItem, error)
	Create(item *entity.SupplyItem) error
	Update(item *entity.SupplyItem) error
	Delete(barcode string) error
	CountBySupplier(supplierCode string) (int, error)

	// Consultas derivadas de alertas (solo lectura).
	LowStock() ([]*entity.SupplyItem, error)
	NearExpiration(daysAhead int) ([]*entity.SupplyItem, error)
}
