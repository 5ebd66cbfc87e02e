package usecase_test

import (
	"sort"

	"github.com/supir/suministros-api/internal/domain"
	"github.com/supir/suministros-api/internal/domain/entity"
	"github.com/supir/suministros-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios en memoria para los tests de casos de uso. Respetan el mismo
// contrato que los adaptadores de PostgreSQL: GetBy* devuelve (nil, nil) si la
// clave no existe, Create falla con ErrDuplicate y Update/Delete con
// ErrNotFound.
// ──────────────────────────────────────────────────────────────────────────────

var (
	_ repository.SupplierRepository   = (*memSupplierRepo)(nil)
	_ repository.SupplyItemRepository = (*memSupplyItemRepo)(nil)
)

type memSupplierRepo struct {
	byCode map[string]*entity.Supplier
}

func newMemSupplierRepo() *memSupplierRepo {
	return &memSupplierRepo{byCode: make(map[string]*entity.Supplier)}
}

func (r *memSupplierRepo) ListAll() ([]*entity.Supplier, error) {
	out := make([]*entity.Supplier, 0, len(r.byCode))
	for _, s := range r.byCode {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *memSupplierRepo) GetByCode(code string) (*entity.Supplier, error) {
	s, ok := r.byCode[code]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *memSupplierRepo) Create(s *entity.Supplier) error {
	if _, ok := r.byCode[s.Code]; ok {
		return domain.ErrDuplicate
	}
	cp := *s
	r.byCode[s.Code] = &cp
	return nil
}

func (r *memSupplierRepo) Update(s *entity.Supplier) error {
	if _, ok := r.byCode[s.Code]; !ok {
		return domain.ErrNotFound
	}
	cp := *s
	r.byCode[s.Code] = &cp
	return nil
}

func (r *memSupplierRepo) Delete(code string) error {
	if _, ok := r.byCode[code]; !ok {
		return domain.ErrNotFound
	}
	delete(r.byCode, code)
	return nil
}

type memSupplyItemRepo struct {
	byBarcode map[string]*entity.SupplyItem

	// lastNearExpirationDays registra el último argumento recibido para poder
	// verificar la ventana por defecto desde el caso de uso.
	lastNearExpirationDays int
}

func newMemSupplyItemRepo() *memSupplyItemRepo {
	return &memSupplyItemRepo{byBarcode: make(map[string]*entity.SupplyItem)}
}

func (r *memSupplyItemRepo) ListAll() ([]*entity.SupplyItem, error) {
	out := make([]*entity.SupplyItem, 0, len(r.byBarcode))
	for _, it := range r.byBarcode {
		out = append(out, it)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ProductTitle < out[j].ProductTitle })
	return out, nil
}

func (r *memSupplyItemRepo) GetByBarcode(barcode string) (*entity.SupplyItem, error) {
	it, ok := r.byBarcode[barcode]
	if !ok {
		return nil, nil
	}
	cp := *it
	return &cp, nil
}

func (r *memSupplyItemRepo) Create(item *entity.SupplyItem) error {
	if _, ok := r.byBarcode[item.Barcode]; ok {
		return domain.ErrDuplicate
	}
	cp := *item
	r.byBarcode[item.Barcode] = &cp
	return nil
}

func (r *memSupplyItemRepo) Update(item *entity.SupplyItem) error {
	if _, ok := r.byBarcode[item.Barcode]; !ok {
		return domain.ErrNotFound
	}
	cp := *item
	r.byBarcode[item.Barcode] = &cp
	return nil
}

func (r *memSupplyItemRepo) Delete(barcode string) error {
	if _, ok := r.byBarcode[barcode]; !ok {
		return domain.ErrNotFound
	}
	delete(r.byBarcode, barcode)
	return nil
}

func (r *memSupplyItemRepo) CountBySupplier(supplierCode string) (int, error) {
	count := 0
	for _, it := range r.byBarcode {
		if it.SupplierCode() == supplierCode {
			count++
		}
	}
	return count, nil
}

func (r *memSupplyItemRepo) LowStock() ([]*entity.SupplyItem, error) {
	all, _ := r.ListAll()
	var out []*entity.SupplyItem
	for _, it := range all {
		if it.LowStock() {
			out = append(out, it)
		}
	}
	return out, nil
}

func (r *memSupplyItemRepo) NearExpiration(daysAhead int) ([]*entity.SupplyItem, error) {
	r.lastNearExpirationDays = daysAhead
	return nil, nil
}
