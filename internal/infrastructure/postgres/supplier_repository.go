package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/supir/suministros-api/internal/domain"
	"github.com/supir/suministros-api/internal/domain/entity"
	"github.com/supir/suministros-api/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementación del puerto SupplierRepository sobre PostgreSQL
// (usable con pool o tx). La guarda referencial del borrado NO vive aquí:
// corre en el caso de uso, antes del DELETE.
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador de persistencia para proveedores.
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

// ListAll devuelve todos los proveedores ordenados por nombre.
func (r *SupplierRepo) ListAll() ([]*entity.Supplier, error) {
	query := `
		SELECT supplier_code, supplier_name, recent_supply_date
		FROM suppliers ORDER BY supplier_name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Supplier
	for rows.Next() {
		var s entity.Supplier
		if err := rows.Scan(&s.Code, &s.Name, &s.RecentSupplyDate); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// GetByCode obtiene un proveedor por código; (nil, nil) si no existe.
func (r *SupplierRepo) GetByCode(code string) (*entity.Supplier, error) {
	query := `
		SELECT supplier_code, supplier_name, recent_supply_date
		FROM suppliers WHERE supplier_code = $1`
	var s entity.Supplier
	err := r.q.QueryRow(context.Background(), query, code).Scan(&s.Code, &s.Name, &s.RecentSupplyDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return &s, nil
}

// Create persiste un proveedor nuevo; ErrDuplicate si el código ya existe.
func (r *SupplierRepo) Create(supplier *entity.Supplier) error {
	query := `
		INSERT INTO suppliers (supplier_code, supplier_name, recent_supply_date)
		VALUES ($1, $2, $3)`
	_, err := r.q.Exec(context.Background(), query,
		supplier.Code, supplier.Name, supplier.RecentSupplyDate,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

// Update actualiza nombre y fecha; el código es inmutable. ErrNotFound si no existe.
func (r *SupplierRepo) Update(supplier *entity.Supplier) error {
	query := `
		UPDATE suppliers SET supplier_name = $2, recent_supply_date = $3
		WHERE supplier_code = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		supplier.Code, supplier.Name, supplier.RecentSupplyDate,
	)
	if err != nil {
		return fmt.Errorf("update supplier: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete borra un proveedor por código; ErrNotFound si no existía.
func (r *SupplierRepo) Delete(code string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM suppliers WHERE supplier_code = $1`, code)
	if err != nil {
		return fmt.Errorf("delete supplier: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
