package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/securepass-api/internal/domain"
)

// Querier abstrae pgxpool.Pool y pgx.Tx para que los repositorios funcionen dentro o fuera de una transacción.
// Begin sobre una pgx.Tx abre un savepoint.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}

// uniqueError traduce una violación de unicidad al error de dominio del constraint; si no aplica, envuelve err con op.
func uniqueError(err error, op, detail string, byConstraint map[string]error) error {
	if !isUniqueViolation(err) {
		return fmt.Errorf("%s: %w", op, err)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if target, ok := byConstraint[pgErr.ConstraintName]; ok {
			return fmt.Errorf("%w: %s", target, detail)
		}
	}
	return fmt.Errorf("%w: %s", domain.ErrDuplicate, detail)
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// strs evita escribir NULL en columnas text[] NOT NULL.
func strs(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}
