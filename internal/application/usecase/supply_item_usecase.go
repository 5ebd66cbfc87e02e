package usecase

import (
	"strings"

	"github.com/supir/suministros-api/internal/domain"
	"github.com/supir/suministros-api/internal/domain/entity"
	"github.com/supir/suministros-api/internal/domain/repository"
)

// DefaultNearExpirationDays ventana por defecto del aviso de vencimiento.
const DefaultNearExpirationDays = 30

// SupplyItemUseCase reglas de negocio de artículos: claves no vacías,
// cantidades no negativas e integridad referencial con proveedores en cada
// escritura (la referencia se valida contra el almacén, no de forma continua).
type SupplyItemUseCase struct {
	items     repository.SupplyItemRepository
	suppliers repository.SupplierRepository
}

// NewSupplyItemUseCase construye el caso de uso.
func NewSupplyItemUseCase(items repository.SupplyItemRepository, suppliers repository.SupplierRepository) *SupplyItemUseCase {
	return &SupplyItemUseCase{items: items, suppliers: suppliers}
}

// List devuelve todos los artículos ordenados por título.
func (uc *SupplyItemUseCase) List() ([]*entity.SupplyItem, error) {
	return uc.items.ListAll()
}

// Get obtiene un artículo por barcode; (nil, nil) si no existe o el barcode es vacío.
func (uc *SupplyItemUseCase) Get(barcode string) (*entity.SupplyItem, error) {
	if strings.TrimSpace(barcode) == "" {
		return nil, nil
	}
	return uc.items.GetByBarcode(barcode)
}

// validate reglas compartidas de alta y actualización.
func (uc *SupplyItemUseCase) validate(item *entity.SupplyItem) error {
	if item == nil || strings.TrimSpace(item.Barcode) == "" ||
		strings.TrimSpace(item.ProductTitle) == "" || strings.TrimSpace(item.Category) == "" {
		return domain.ErrInvalidInput
	}
	if item.AvailableUnits < 0 || item.ThresholdStock < 0 {
		return domain.ErrInvalidInput
	}
	return nil
}

// checkSupplierRef valida la referencia al proveedor antes de cualquier
// escritura: un código no vacío debe resolver a un proveedor existente.
func (uc *SupplyItemUseCase) checkSupplierRef(item *entity.SupplyItem) error {
	code := item.SupplierCode()
	if strings.TrimSpace(code) == "" {
		return nil
	}
	supplier, err := uc.suppliers.GetByCode(code)
	if err != nil {
		return err
	}
	if supplier == nil {
		return domain.ErrSupplierNotFound
	}
	return nil
}

// Add crea un artículo nuevo. ErrDuplicate si el barcode ya existe,
// ErrSupplierNotFound si referencia un proveedor inexistente.
func (uc *SupplyItemUseCase) Add(item *entity.SupplyItem) error {
	if err := uc.validate(item); err != nil {
		return err
	}
	existing, err := uc.items.GetByBarcode(item.Barcode)
	if err != nil {
		return err
	}
	if existing != nil {
		return domain.ErrDuplicate
	}
	if err := uc.checkSupplierRef(item); err != nil {
		return err
	}
	return uc.items.Create(item)
}

// Save actualiza un artículo existente; el barcode es inmutable.
// ErrNotFound si no existe, ErrSupplierNotFound si la referencia no resuelve.
func (uc *SupplyItemUseCase) Save(item *entity.SupplyItem) error {
	if err := uc.validate(item); err != nil {
		return err
	}
	if err := uc.checkSupplierRef(item); err != nil {
		return err
	}
	return uc.items.Update(item)
}

// Remove borra un artículo por barcode.
func (uc *SupplyItemUseCase) Remove(barcode string) error {
	if strings.TrimSpace(barcode) == "" {
		return domain.ErrInvalidInput
	}
	return uc.items.Delete(barcode)
}

// RemoveMany borra un lote de barcodes; resultado por clave (nil = OK).
func (uc *SupplyItemUseCase) RemoveMany(barcodes []string) map[string]error {
	results := make(map[string]error, len(barcodes))
	for _, barcode := range barcodes {
		results[barcode] = uc.Remove(barcode)
	}
	return results
}

// LowStock artículos con unidades <= umbral y umbral > 0, por título.
func (uc *SupplyItemUseCase) LowStock() ([]*entity.SupplyItem, error) {
	return uc.items.LowStock()
}

// NearExpiration artículos que vencen en [hoy, hoy+daysAhead] inclusive,
// ascendente por fecha. daysAhead <= 0 usa la ventana por defecto.
func (uc *SupplyItemUseCase) NearExpiration(daysAhead int) ([]*entity.SupplyItem, error) {
	if daysAhead <= 0 {
		daysAhead = DefaultNearExpirationDays
	}
	return uc.items.NearExpiration(daysAhead)
}
