package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
	"github.com/jhoicas/Restaurante-api/internal/domain/rules"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// itemRow forma JSONB de una línea del pedido; las claves las usan también las consultas de estadísticas.
type itemRow struct {
	ProductoID     string          `json:"productoId"`
	Nombre         string          `json:"nombre"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precioUnitario"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	Notas          string          `json:"notas,omitempty"`
}

type statusRow struct {
	Estado    string    `json:"estado"`
	Fecha     time.Time `json:"fecha"`
	UsuarioID string    `json:"usuarioId"`
}

func toItemRows(items []entity.OrderItem) []itemRow {
	out := make([]itemRow, len(items))
	for i, it := range items {
		out[i] = itemRow(it)
	}
	return out
}

func toStatusRows(h []entity.StatusChange) []statusRow {
	out := make([]statusRow, len(h))
	for i, s := range h {
		out[i] = statusRow(s)
	}
	return out
}

// OrderRepo pedidos sobre PostgreSQL. Items e historial se guardan como JSONB.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador de pedidos. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

const orderColumns = `id, restaurante_id, numero, mesa_id, mesero_id, items, subtotal, impuesto, propina, total, estado, historial, notas, entregado_at, activo, version, created_at, updated_at`

func scanOrder(row rowScanner) (*entity.Order, error) {
	var (
		o       entity.Order
		items   []itemRow
		history []statusRow
	)
	err := row.Scan(&o.ID, &o.RestauranteID, &o.Numero, &o.MesaID, &o.MeseroID, &items, &o.Subtotal, &o.Impuesto,
		&o.Propina, &o.Total, &o.Estado, &history, &o.Notas, &o.EntregadoAt, &o.Active, &o.Version, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	o.Items = make([]entity.OrderItem, len(items))
	for i, it := range items {
		o.Items[i] = entity.OrderItem(it)
	}
	o.Historial = make([]entity.StatusChange, len(history))
	for i, s := range history {
		o.Historial[i] = entity.StatusChange(s)
	}
	return &o, nil
}

func (r *OrderRepo) scanAll(ctx context.Context, op, query string, args ...any) ([]*entity.Order, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan pedido: %w", err)
		}
		list = append(list, o)
	}
	return list, rows.Err()
}

// Create persiste el pedido. Un número repetido devuelve domain.ErrConflict para que el caso de uso reintente.
func (r *OrderRepo) Create(ctx context.Context, o *entity.Order) error {
	query := `
		INSERT INTO pedidos (id, restaurante_id, numero, mesa_id, mesero_id, items, subtotal, impuesto, propina, total, estado, historial, notas, entregado_at, activo, version, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`
	_, err := r.q.Exec(ctx, query,
		o.ID, o.RestauranteID, o.Numero, o.MesaID, o.MeseroID, toItemRows(o.Items), o.Subtotal, o.Impuesto,
		o.Propina, o.Total, o.Estado, toStatusRows(o.Historial), o.Notas, o.EntregadoAt, o.Active, o.Version,
		o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: número de pedido %s", domain.ErrConflict, o.Numero)
		}
		return fmt.Errorf("insert pedido: %w", err)
	}
	return nil
}

// GetByID obtiene un pedido activo.
func (r *OrderRepo) GetByID(ctx context.Context, restauranteID, id string) (*entity.Order, error) {
	if !validID(id) {
		return nil, nil
	}
	o, err := scanOrder(r.q.QueryRow(ctx,
		`SELECT `+orderColumns+` FROM pedidos WHERE id = $1 AND restaurante_id = $2 AND activo`, id, restauranteID))
	if err != nil {
		if noRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pedido: %w", err)
	}
	return o, nil
}

// Update persiste items, totales y notas si la versión no cambió.
func (r *OrderRepo) Update(ctx context.Context, o *entity.Order) error {
	query := `
		UPDATE pedidos SET items = $4, subtotal = $5, impuesto = $6, propina = $7, total = $8, notas = $9,
		       updated_at = $10, version = version + 1
		WHERE id = $1 AND restaurante_id = $2 AND version = $3 AND activo`
	tag, err := r.q.Exec(ctx, query,
		o.ID, o.RestauranteID, o.Version, toItemRows(o.Items), o.Subtotal, o.Impuesto, o.Propina, o.Total, o.Notas, o.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update pedido: %w", err)
	}
	if err := mustAffect(tag, domain.ErrStaleVersion); err != nil {
		return err
	}
	o.Version++
	return nil
}

// UpdateStatus persiste estado, historial, entregado_at y activo si la versión no cambió.
func (r *OrderRepo) UpdateStatus(ctx context.Context, o *entity.Order) error {
	query := `
		UPDATE pedidos SET estado = $4, historial = $5, entregado_at = $6, activo = $7, updated_at = $8, version = version + 1
		WHERE id = $1 AND restaurante_id = $2 AND version = $3 AND activo`
	tag, err := r.q.Exec(ctx, query,
		o.ID, o.RestauranteID, o.Version, o.Estado, toStatusRows(o.Historial), o.EntregadoAt, o.Active, o.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update estado pedido: %w", err)
	}
	if err := mustAffect(tag, domain.ErrStaleVersion); err != nil {
		return err
	}
	o.Version++
	return nil
}

// List pedidos activos del más reciente al más antiguo.
func (r *OrderRepo) List(ctx context.Context, restauranteID string, f repository.OrderFilter, page repository.Page) ([]*entity.Order, int, error) {
	w := newWhere(restauranteID)
	if f.Estado != "" {
		w.add("estado = $%d", f.Estado)
	}
	if f.MesaID != "" {
		w.add("mesa_id::TEXT = $%d", f.MesaID)
	}
	if f.MeseroID != "" {
		w.add("mesero_id::TEXT = $%d", f.MeseroID)
	}
	if f.Desde != nil {
		w.add("created_at >= $%d", *f.Desde)
	}
	if f.Hasta != nil {
		w.add("created_at < $%d", *f.Hasta)
	}
	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM pedidos WHERE restaurante_id = $1 AND activo`+w.sql(), w.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count pedidos: %w", err)
	}
	n := w.next()
	query := fmt.Sprintf(`SELECT %s FROM pedidos WHERE restaurante_id = $1 AND activo%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		orderColumns, w.sql(), n, n+1)
	list, err := r.scanAll(ctx, "list pedidos", query, append(w.args, limitArg(page), page.Offset)...)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// ListKitchen cola de cocina: pedidos activos no terminales por orden de llegada.
func (r *OrderRepo) ListKitchen(ctx context.Context, restauranteID string) ([]*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM pedidos
		WHERE restaurante_id = $1 AND activo AND estado NOT IN ('entregado', 'cancelado')
		ORDER BY created_at`
	return r.scanAll(ctx, "list cocina", query, restauranteID)
}

// CountActiveByTable pedidos abiertos de la mesa.
func (r *OrderRepo) CountActiveByTable(ctx context.Context, restauranteID, mesaID string) (int, error) {
	var n int
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM pedidos WHERE restaurante_id = $1 AND mesa_id = $2 AND activo AND estado NOT IN ('entregado', 'cancelado')`,
		restauranteID, mesaID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count pedidos mesa: %w", err)
	}
	return n, nil
}

// MaxSequence mayor consecutivo usado en el día, leído del sufijo NNNN del número.
func (r *OrderRepo) MaxSequence(ctx context.Context, restauranteID string, day time.Time) (int, error) {
	prefix := rules.FormatOrderNumber(day, 0)
	prefix = prefix[:len(prefix)-4]
	var n int
	err := r.q.QueryRow(ctx,
		`SELECT COALESCE(MAX(CAST(SUBSTRING(numero FROM $3) AS INT)), 0) FROM pedidos WHERE restaurante_id = $1 AND numero LIKE $2 || '%'`,
		restauranteID, prefix, len(prefix)+1,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("max consecutivo: %w", err)
	}
	return n, nil
}
