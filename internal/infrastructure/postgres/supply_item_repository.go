package postgres

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog/log"

	"github.com/supir/suministros-api/internal/domain"
	"github.com/supir/suministros-api/internal/domain/entity"
	"github.com/supir/suministros-api/internal/domain/repository"
)

var _ repository.SupplyItemRepository = (*SupplyItemRepo)(nil)

// SupplyItemRepo implementación del puerto SupplyItemRepository sobre
// PostgreSQL. En lectura resuelve eager el proveedor vía SupplierRepository;
// la columna expiration_date es texto con el centinela "N/A".
type SupplyItemRepo struct {
	q         Querier
	suppliers repository.SupplierRepository
}

// NewSupplyItemRepository construye el adaptador. Necesita el repo de
// proveedores para la resolución eager de la referencia.
func NewSupplyItemRepository(q Querier, suppliers repository.SupplierRepository) *SupplyItemRepo {
	return &SupplyItemRepo{q: q, suppliers: suppliers}
}

const supplyItemColumns = `barcode, product_title, product_details, category,
		available_units, threshold_stock, expiration_date, supplier_code`

// scanItem mapea una fila a SupplyItem, decodificando la fecha de vencimiento
// y resolviendo el proveedor por código cuando no está en blanco.
func (r *SupplyItemRepo) scanItem(row pgx.Row) (*entity.SupplyItem, error) {
	var item entity.SupplyItem
	var expiration string
	var supplierCode *string
	if err := row.Scan(
		&item.Barcode, &item.ProductTitle, &item.ProductDetails, &item.Category,
		&item.AvailableUnits, &item.ThresholdStock, &expiration, &supplierCode,
	); err != nil {
		return nil, err
	}
	item.ExpirationDate = decodeExpiration(item.Barcode, expiration)

	if supplierCode != nil && strings.TrimSpace(*supplierCode) != "" {
		supplier, err := r.suppliers.GetByCode(*supplierCode)
		if err != nil {
			return nil, fmt.Errorf("resolver proveedor '%s': %w", *supplierCode, err)
		}
		item.Supplier = supplier
	}
	return &item, nil
}

// decodeExpiration interpreta la columna de vencimiento: vacío, "N/A" o un
// valor malformado deserializan a nil. La degradación silenciosa del valor
// malformado es comportamiento documentado; se deja constancia en el log.
func decodeExpiration(barcode, stored string) *time.Time {
	date, err := entity.ParseOptionalDate(stored)
	if err != nil {
		log.Warn().Str("barcode", barcode).Str("expiration_date", stored).
			Msg("fecha de vencimiento almacenada malformada; se trata como sin vencimiento")
		return nil
	}
	return date
}

// encodeExpiration serializa la fecha de vencimiento; nil se guarda como "N/A".
func encodeExpiration(t *time.Time) string {
	if t == nil {
		return entity.NoDateSentinel
	}
	return t.Format(entity.DateLayout)
}

// encodeSupplierCode serializa la referencia; sin proveedor → NULL.
func encodeSupplierCode(item *entity.SupplyItem) *string {
	code := item.SupplierCode()
	if strings.TrimSpace(code) == "" {
		return nil
	}
	return &code
}

// ListAll devuelve todos los artículos ordenados por título.
func (r *SupplyItemRepo) ListAll() ([]*entity.SupplyItem, error) {
	query := `SELECT ` + supplyItemColumns + ` FROM supply_items ORDER BY product_title`
	return r.queryItems(query)
}

func (r *SupplyItemRepo) queryItems(query string, args ...any) ([]*entity.SupplyItem, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list supply items: %w", err)
	}
	defer rows.Close()
	var list []*entity.SupplyItem
	for rows.Next() {
		item, err := r.scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan supply item: %w", err)
		}
		list = append(list, item)
	}
	return list, rows.Err()
}

// GetByBarcode obtiene un artículo por barcode; (nil, nil) si no existe.
func (r *SupplyItemRepo) GetByBarcode(barcode string) (*entity.SupplyItem, error) {
	query := `SELECT ` + supplyItemColumns + ` FROM supply_items WHERE barcode = $1`
	item, err := r.scanItem(r.q.QueryRow(context.Background(), query, barcode))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supply item: %w", err)
	}
	return item, nil
}

// Create persiste un artículo nuevo; ErrDuplicate si el barcode ya existe.
func (r *SupplyItemRepo) Create(item *entity.SupplyItem) error {
	query := `
		INSERT INTO supply_items (barcode, product_title, product_details, category,
			available_units, threshold_stock, expiration_date, supplier_code)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		item.Barcode, item.ProductTitle, item.ProductDetails, item.Category,
		item.AvailableUnits, item.ThresholdStock, encodeExpiration(item.ExpirationDate),
		encodeSupplierCode(item),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert supply item: %w", err)
	}
	return nil
}

// Update actualiza todos los campos mutables; el barcode es inmutable.
// ErrNotFound si el artículo no existe.
func (r *SupplyItemRepo) Update(item *entity.SupplyItem) error {
	query := `
		UPDATE supply_items SET product_title = $2, product_details = $3, category = $4,
			available_units = $5, threshold_stock = $6, expiration_date = $7, supplier_code = $8
		WHERE barcode = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		item.Barcode, item.ProductTitle, item.ProductDetails, item.Category,
		item.AvailableUnits, item.ThresholdStock, encodeExpiration(item.ExpirationDate),
		encodeSupplierCode(item),
	)
	if err != nil {
		return fmt.Errorf("update supply item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete borra un artículo por barcode; ErrNotFound si no existía.
func (r *SupplyItemRepo) Delete(barcode string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM supply_items WHERE barcode = $1`, barcode)
	if err != nil {
		return fmt.Errorf("delete supply item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CountBySupplier cuenta los artículos que referencian un código de
// proveedor; alimenta la guarda referencial del borrado.
func (r *SupplyItemRepo) CountBySupplier(supplierCode string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM supply_items WHERE supplier_code = $1`, supplierCode,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count items by supplier: %w", err)
	}
	return count, nil
}

// LowStock artículos con unidades <= umbral y umbral > 0, por título.
// Un umbral 0 nunca marca el artículo, tenga las unidades que tenga.
func (r *SupplyItemRepo) LowStock() ([]*entity.SupplyItem, error) {
	query := `SELECT ` + supplyItemColumns + ` FROM supply_items
		WHERE available_units <= threshold_stock AND threshold_stock > 0
		ORDER BY product_title`
	return r.queryItems(query)
}

// NearExpiration artículos cuyo vencimiento cae en [hoy, hoy+daysAhead]
// inclusive, ascendente por fecha. La columna es texto (con centinela y
// posibles valores malformados), así que el filtro corre en memoria sobre el
// listado completo; los artículos sin fecha quedan excluidos y el comparador
// los ordena al final si apareciera un conjunto mixto.
func (r *SupplyItemRepo) NearExpiration(daysAhead int) ([]*entity.SupplyItem, error) {
	all, err := r.ListAll()
	if err != nil {
		return nil, err
	}
	now := time.Now()
	// Fecha civil de hoy en UTC, el mismo marco en que se parsean las fechas almacenadas.
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return nearExpirationWindow(all, today, daysAhead), nil
}

// nearExpirationWindow filtra los artículos cuyo vencimiento cae en
// [today, today+daysAhead] inclusive y los ordena ascendente por fecha.
func nearExpirationWindow(all []*entity.SupplyItem, today time.Time, daysAhead int) []*entity.SupplyItem {
	limit := today.AddDate(0, 0, daysAhead)

	var near []*entity.SupplyItem
	for _, item := range all {
		if item.ExpirationDate == nil {
			continue
		}
		exp := *item.ExpirationDate
		if !exp.Before(today) && !exp.After(limit) {
			near = append(near, item)
		}
	}
	sort.SliceStable(near, func(i, j int) bool {
		a, b := near[i].ExpirationDate, near[j].ExpirationDate
		switch {
		case a == nil && b == nil:
			return false
		case a == nil:
			return false // sin fecha al final
		case b == nil:
			return true
		default:
			return a.Before(*b)
		}
	})
	return near
}
