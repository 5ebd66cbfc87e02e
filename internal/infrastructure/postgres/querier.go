package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier abstrae *pgxpool.Pool y pgx.Tx: los repos funcionan igual sobre el
// pool o dentro de una transacción.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// uniqueViolation código SQLSTATE de violación de clave única.
const uniqueViolation = "23505"

// isUniqueViolation indica si err (o algo en su cadena) es una violación de
// clave única; los adaptadores la traducen al error de dominio que toque
// (ErrDuplicate para proveedores y artículos, ErrEmailAlreadyExists para
// usuarios).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
