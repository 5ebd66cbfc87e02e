package repository

import "github.com/supir/suministros-api/internal/domain/entity"

// SupplierRepository define el puerto de persistencia para Supplier (DIP).
// GetByCode devuelve (nil, nil) cuando el proveedor no existe.
type SupplierRepository interface {
	ListAll() ([]*entity.Supplier, error)
	GetByCode(code string) (*entity.Supplier, error)
	Create(supplier *entity.Supplier) error
	Update(supplier *entity.Supplier) error
	Delete(code string) error
}
