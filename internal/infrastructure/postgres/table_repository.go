package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
)

var _ repository.TableRepository = (*TableRepo)(nil)

// TableRepo mesas sobre PostgreSQL. Las escrituras comparan version (compare-and-set).
type TableRepo struct {
	q Querier
}

// NewTableRepository construye el adaptador de mesas. Pasar pool o tx (Querier).
func NewTableRepository(q Querier) *TableRepo {
	return &TableRepo{q: q}
}

const tableColumns = `id, restaurante_id, numero, capacidad, ubicacion, estado, mesero_id::TEXT, activo, version, created_at, updated_at`

func scanTable(row rowScanner) (*entity.Table, error) {
	var t entity.Table
	err := row.Scan(&t.ID, &t.RestauranteID, &t.Numero, &t.Capacidad, &t.Ubicacion, &t.Estado, &t.MeseroID,
		&t.Active, &t.Version, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Create persiste una mesa. El número es único entre activas del restaurante.
func (r *TableRepo) Create(ctx context.Context, t *entity.Table) error {
	query := `
		INSERT INTO mesas (id, restaurante_id, numero, capacidad, ubicacion, estado, mesero_id, activo, version, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		t.ID, t.RestauranteID, t.Numero, t.Capacidad, t.Ubicacion, t.Estado, t.MeseroID,
		t.Active, t.Version, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert mesa: %w", err)
	}
	return nil
}

func (r *TableRepo) getOne(ctx context.Context, op, where string, args ...any) (*entity.Table, error) {
	t, err := scanTable(r.q.QueryRow(ctx, `SELECT `+tableColumns+` FROM mesas WHERE `+where, args...))
	if err != nil {
		if noRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return t, nil
}

// GetByID obtiene una mesa activa.
func (r *TableRepo) GetByID(ctx context.Context, restauranteID, id string) (*entity.Table, error) {
	if !validID(id) {
		return nil, nil
	}
	return r.getOne(ctx, "get mesa", `id = $1 AND restaurante_id = $2 AND activo`, id, restauranteID)
}

// GetByNumero obtiene la mesa activa con ese número.
func (r *TableRepo) GetByNumero(ctx context.Context, restauranteID string, numero int) (*entity.Table, error) {
	return r.getOne(ctx, "get mesa by numero", `restaurante_id = $1 AND numero = $2 AND activo`, restauranteID, numero)
}

// GetForUpdate bloquea la fila de la mesa hasta el fin de la transacción.
func (r *TableRepo) GetForUpdate(ctx context.Context, restauranteID, id string) (*entity.Table, error) {
	if !validID(id) {
		return nil, nil
	}
	return r.getOne(ctx, "lock mesa", `id = $1 AND restaurante_id = $2 AND activo FOR UPDATE`, id, restauranteID)
}

// Update persiste número, capacidad, ubicación y mesero si la versión no cambió.
func (r *TableRepo) Update(ctx context.Context, t *entity.Table) error {
	query := `
		UPDATE mesas SET numero = $4, capacidad = $5, ubicacion = $6, mesero_id = $7, updated_at = $8, version = version + 1
		WHERE id = $1 AND restaurante_id = $2 AND version = $3 AND activo`
	tag, err := r.q.Exec(ctx, query,
		t.ID, t.RestauranteID, t.Version, t.Numero, t.Capacidad, t.Ubicacion, t.MeseroID, t.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("update mesa: %w", err)
	}
	if err := mustAffect(tag, domain.ErrStaleVersion); err != nil {
		return err
	}
	t.Version++
	return nil
}

// UpdateStatus cambia el estado si la versión no cambió.
func (r *TableRepo) UpdateStatus(ctx context.Context, t *entity.Table, estado string) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE mesas SET estado = $4, updated_at = $5, version = version + 1
		WHERE id = $1 AND restaurante_id = $2 AND version = $3 AND activo`,
		t.ID, t.RestauranteID, t.Version, estado, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update estado mesa: %w", err)
	}
	if err := mustAffect(tag, domain.ErrStaleVersion); err != nil {
		return err
	}
	t.Estado = estado
	t.Version++
	return nil
}

// List mesas activas ordenadas por número.
func (r *TableRepo) List(ctx context.Context, restauranteID string, f repository.TableFilter, page repository.Page) ([]*entity.Table, int, error) {
	w := newWhere(restauranteID)
	if f.Estado != "" {
		w.add("estado = $%d", f.Estado)
	}
	if f.Ubicacion != "" {
		w.add("ubicacion = $%d", f.Ubicacion)
	}
	if f.MeseroID != "" {
		w.add("mesero_id::TEXT = $%d", f.MeseroID)
	}
	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM mesas WHERE restaurante_id = $1 AND activo`+w.sql(), w.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count mesas: %w", err)
	}
	n := w.next()
	query := fmt.Sprintf(`SELECT %s FROM mesas WHERE restaurante_id = $1 AND activo%s ORDER BY numero LIMIT $%d OFFSET $%d`,
		tableColumns, w.sql(), n, n+1)
	rows, err := r.q.Query(ctx, query, append(w.args, limitArg(page), page.Offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("list mesas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Table
	for rows.Next() {
		t, err := scanTable(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan mesa: %w", err)
		}
		list = append(list, t)
	}
	return list, total, rows.Err()
}

// SoftDelete desactiva la mesa si la versión no cambió; su número queda libre.
func (r *TableRepo) SoftDelete(ctx context.Context, t *entity.Table) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE mesas SET activo = FALSE, updated_at = now(), version = version + 1
		WHERE id = $1 AND restaurante_id = $2 AND version = $3 AND activo`,
		t.ID, t.RestauranteID, t.Version,
	)
	if err != nil {
		return fmt.Errorf("delete mesa: %w", err)
	}
	if err := mustAffect(tag, domain.ErrStaleVersion); err != nil {
		return err
	}
	t.Version++
	t.Active = false
	return nil
}

// ClearWaiter desasigna al mesero de sus mesas activas; cada mesa afectada sube de versión.
func (r *TableRepo) ClearWaiter(ctx context.Context, restauranteID, meseroID string, at time.Time) (int, error) {
	tag, err := r.q.Exec(ctx,
		`UPDATE mesas SET mesero_id = NULL, updated_at = $3, version = version + 1
		WHERE restaurante_id = $1 AND mesero_id = $2 AND activo`,
		restauranteID, meseroID, at,
	)
	if err != nil {
		return 0, fmt.Errorf("desasignar mesero: %w", err)
	}
	return int(tag.RowsAffected()), nil
}
