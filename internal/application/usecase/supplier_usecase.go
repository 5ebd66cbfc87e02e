package usecase

import (
	"strings"

	"github.com/supir/suministros-api/internal/domain"
	"github.com/supir/suministros-api/internal/domain/entity"
	"github.com/supir/suministros-api/internal/domain/repository"
)

// SupplierUseCase reglas de negocio de proveedores: claves no vacías,
// unicidad del código y guarda referencial en el borrado. Necesita el
// repositorio de artículos para contar referencias antes de borrar.
type SupplierUseCase struct {
	suppliers repository.SupplierRepository
	items     repository.SupplyItemRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(suppliers repository.SupplierRepository, items repository.SupplyItemRepository) *SupplierUseCase {
	return &SupplierUseCase{suppliers: suppliers, items: items}
}

// List devuelve todos los proveedores ordenados por nombre.
func (uc *SupplierUseCase) List() ([]*entity.Supplier, error) {
	return uc.suppliers.ListAll()
}

// Get obtiene un proveedor por código; (nil, nil) si no existe o el código es vacío.
func (uc *SupplierUseCase) Get(code string) (*entity.Supplier, error) {
	if strings.TrimSpace(code) == "" {
		return nil, nil
	}
	return uc.suppliers.GetByCode(code)
}

// Add crea un proveedor nuevo. Devuelve ErrInvalidInput con código o nombre
// vacíos y ErrDuplicate si el código ya existe (nunca sobreescribe).
func (uc *SupplierUseCase) Add(s *entity.Supplier) error {
	if s == nil || strings.TrimSpace(s.Code) == "" || strings.TrimSpace(s.Name) == "" {
		return domain.ErrInvalidInput
	}
	existing, err := uc.suppliers.GetByCode(s.Code)
	if err != nil {
		return err
	}
	if existing != nil {
		return domain.ErrDuplicate
	}
	return uc.suppliers.Create(s)
}

// Save actualiza nombre y fecha de último suministro de un proveedor
// existente; el código es inmutable. ErrNotFound si el código no existe.
func (uc *SupplierUseCase) Save(s *entity.Supplier) error {
	if s == nil || strings.TrimSpace(s.Code) == "" || strings.TrimSpace(s.Name) == "" {
		return domain.ErrInvalidInput
	}
	return uc.suppliers.Update(s)
}

// Remove borra un proveedor por código. La guarda referencial corre SIEMPRE
// antes del DELETE: si algún artículo referencia el código devuelve
// ErrSupplierReferenced y no toca el almacén.
func (uc *SupplierUseCase) Remove(code string) error {
	if strings.TrimSpace(code) == "" {
		return domain.ErrInvalidInput
	}
	refs, err := uc.items.CountBySupplier(code)
	if err != nil {
		return err
	}
	if refs > 0 {
		return domain.ErrSupplierReferenced
	}
	return uc.suppliers.Delete(code)
}

// RemoveMany borra un lote de códigos, registrando el resultado por código
// (nil = borrado OK). Un fallo no detiene el resto del lote.
func (uc *SupplierUseCase) RemoveMany(codes []string) map[string]error {
	results := make(map[string]error, len(codes))
	for _, code := range codes {
		results[code] = uc.Remove(code)
	}
	return results
}
