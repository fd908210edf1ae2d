package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// noRows normaliza "no encontrado" a (nil, nil) para los Get*.
func noRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// validID informa si id puede compararse con una columna UUID.
// Los Get* tratan un id mal formado como inexistente sin consultar la base.
func validID(id string) bool {
	return uuid.Validate(id) == nil
}

// limitArg LIMIT NULL equivale a sin límite en PostgreSQL.
func limitArg(page repository.Page) any {
	if page.Limit <= 0 {
		return nil
	}
	return page.Limit
}

// mustAffect convierte 0 filas afectadas en err (ErrNotFound o ErrStaleVersion según el caso).
func mustAffect(tag pgconn.CommandTag, err error) error {
	if tag.RowsAffected() == 0 {
		return err
	}
	return nil
}

// whereBuilder arma cláusulas WHERE con placeholders numerados.
type whereBuilder struct {
	conds []string
	args  []any
}

func newWhere(args ...any) *whereBuilder {
	return &whereBuilder{args: args}
}

func (w *whereBuilder) add(cond string, arg any) {
	w.args = append(w.args, arg)
	w.conds = append(w.conds, fmt.Sprintf(cond, len(w.args)))
}

func (w *whereBuilder) sql() string {
	if len(w.conds) == 0 {
		return ""
	}
	return " AND " + strings.Join(w.conds, " AND ")
}

// next placeholder libre para LIMIT/OFFSET.
func (w *whereBuilder) next() int {
	return len(w.args) + 1
}
