package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
	"github.com/jhoicas/Restaurante-api/pkg/normalize"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo insumos y movimientos de stock sobre PostgreSQL. Pasar pool o tx (Querier).
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador de inventario.
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

const itemColumns = `id, restaurante_id, nombre, categoria, cantidad, unidad, cantidad_minima, precio_unitario, fecha_vencimiento, proveedor, activo, created_at, updated_at`

func scanItem(row rowScanner) (*entity.InventoryItem, error) {
	var i entity.InventoryItem
	err := row.Scan(&i.ID, &i.RestauranteID, &i.Nombre, &i.Categoria, &i.Cantidad, &i.Unidad, &i.CantidadMinima,
		&i.PrecioUnitario, &i.FechaVencimiento, &i.Proveedor, &i.Active, &i.CreatedAt, &i.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &i, nil
}

// Create persiste un insumo.
func (r *InventoryRepo) Create(ctx context.Context, i *entity.InventoryItem) error {
	query := `
		INSERT INTO insumos (id, restaurante_id, nombre, nombre_clave, categoria, cantidad, unidad, cantidad_minima, precio_unitario, fecha_vencimiento, proveedor, activo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(ctx, query,
		i.ID, i.RestauranteID, i.Nombre, normalize.Key(i.Nombre), i.Categoria, i.Cantidad, i.Unidad, i.CantidadMinima,
		i.PrecioUnitario, i.FechaVencimiento, i.Proveedor, i.Active, i.CreatedAt, i.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert insumo: %w", err)
	}
	return nil
}

func (r *InventoryRepo) getOne(ctx context.Context, op, where string, args ...any) (*entity.InventoryItem, error) {
	i, err := scanItem(r.q.QueryRow(ctx, `SELECT `+itemColumns+` FROM insumos WHERE `+where, args...))
	if err != nil {
		if noRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return i, nil
}

// GetByID obtiene un insumo activo.
func (r *InventoryRepo) GetByID(ctx context.Context, restauranteID, id string) (*entity.InventoryItem, error) {
	if !validID(id) {
		return nil, nil
	}
	return r.getOne(ctx, "get insumo", `id = $1 AND restaurante_id = $2 AND activo`, id, restauranteID)
}

// GetByName obtiene un insumo activo por nombre normalizado.
func (r *InventoryRepo) GetByName(ctx context.Context, restauranteID, nombre string) (*entity.InventoryItem, error) {
	return r.getOne(ctx, "get insumo by name", `restaurante_id = $1 AND nombre_clave = $2 AND activo`, restauranteID, normalize.Key(nombre))
}

// GetForUpdate bloquea la fila hasta el fin de la transacción.
func (r *InventoryRepo) GetForUpdate(ctx context.Context, restauranteID, id string) (*entity.InventoryItem, error) {
	if !validID(id) {
		return nil, nil
	}
	return r.getOne(ctx, "lock insumo", `id = $1 AND restaurante_id = $2 AND activo FOR UPDATE`, id, restauranteID)
}

// Update actualiza los datos descriptivos. La cantidad solo cambia vía UpdateQuantity.
func (r *InventoryRepo) Update(ctx context.Context, i *entity.InventoryItem) error {
	query := `
		UPDATE insumos SET nombre = $3, nombre_clave = $4, categoria = $5, unidad = $6, cantidad_minima = $7,
		       precio_unitario = $8, fecha_vencimiento = $9, proveedor = $10, updated_at = $11
		WHERE id = $1 AND restaurante_id = $2 AND activo`
	tag, err := r.q.Exec(ctx, query,
		i.ID, i.RestauranteID, i.Nombre, normalize.Key(i.Nombre), i.Categoria, i.Unidad, i.CantidadMinima,
		i.PrecioUnitario, i.FechaVencimiento, i.Proveedor, i.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("update insumo: %w", err)
	}
	return mustAffect(tag, domain.ErrNotFound)
}

// UpdateQuantity fija cantidad y precio unitario tras un ajuste.
func (r *InventoryRepo) UpdateQuantity(ctx context.Context, restauranteID, id string, cantidad, precioUnitario decimal.Decimal) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE insumos SET cantidad = $3, precio_unitario = $4, updated_at = now() WHERE id = $1 AND restaurante_id = $2 AND activo`,
		id, restauranteID, cantidad, precioUnitario,
	)
	if err != nil {
		return fmt.Errorf("update cantidad insumo: %w", err)
	}
	return mustAffect(tag, domain.ErrNotFound)
}

// List insumos activos ordenados por creación. El estado derivado se filtra en la aplicación.
func (r *InventoryRepo) List(ctx context.Context, restauranteID string, f repository.InventoryFilter) ([]*entity.InventoryItem, error) {
	w := newWhere(restauranteID)
	if f.Categoria != "" {
		w.add("categoria = $%d", f.Categoria)
	}
	if q := normalize.Key(f.Busqueda); q != "" {
		w.add("(nombre_clave || ' ' || lower(proveedor)) LIKE '%%' || $%d || '%%'", q)
	}
	query := `SELECT ` + itemColumns + ` FROM insumos WHERE restaurante_id = $1 AND activo` + w.sql() + ` ORDER BY created_at`
	rows, err := r.q.Query(ctx, query, w.args...)
	if err != nil {
		return nil, fmt.Errorf("list insumos: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryItem
	for rows.Next() {
		i, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan insumo: %w", err)
		}
		list = append(list, i)
	}
	return list, rows.Err()
}

// SoftDelete desactiva el insumo; su historial se conserva.
func (r *InventoryRepo) SoftDelete(ctx context.Context, restauranteID, id string) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE insumos SET activo = FALSE, updated_at = now() WHERE id = $1 AND restaurante_id = $2 AND activo`,
		id, restauranteID,
	)
	if err != nil {
		return fmt.Errorf("delete insumo: %w", err)
	}
	return mustAffect(tag, domain.ErrNotFound)
}

// CreateMovement registra un movimiento de stock.
func (r *InventoryRepo) CreateMovement(ctx context.Context, m *entity.StockMovement) error {
	query := `
		INSERT INTO movimientos_stock (id, restaurante_id, insumo_id, tipo, cantidad, cantidad_anterior, cantidad_nueva, motivo, usuario_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		m.ID, m.RestauranteID, m.ItemID, m.Tipo, m.Cantidad, m.CantidadAnterior, m.CantidadNueva, m.Motivo, m.UsuarioID, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert movimiento: %w", err)
	}
	return nil
}

// ListMovements historial del insumo, del más reciente al más antiguo.
func (r *InventoryRepo) ListMovements(ctx context.Context, restauranteID, itemID string, page repository.Page) ([]*entity.StockMovement, int, error) {
	var total int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM movimientos_stock WHERE restaurante_id = $1 AND insumo_id = $2`,
		restauranteID, itemID).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count movimientos: %w", err)
	}
	query := `
		SELECT id, restaurante_id, insumo_id, tipo, cantidad, cantidad_anterior, cantidad_nueva, motivo, usuario_id, created_at
		FROM movimientos_stock
		WHERE restaurante_id = $1 AND insumo_id = $2
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(ctx, query, restauranteID, itemID, limitArg(page), page.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list movimientos: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		if err := rows.Scan(&m.ID, &m.RestauranteID, &m.ItemID, &m.Tipo, &m.Cantidad, &m.CantidadAnterior,
			&m.CantidadNueva, &m.Motivo, &m.UsuarioID, &m.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan movimiento: %w", err)
		}
		list = append(list, &m)
	}
	return list, total, rows.Err()
}
