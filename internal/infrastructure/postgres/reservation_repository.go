package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
)

var _ repository.ReservationRepository = (*ReservationRepo)(nil)

// ReservationRepo reservaciones sobre PostgreSQL. Update y UpdateStatus comparan version.
type ReservationRepo struct {
	q Querier
}

// NewReservationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewReservationRepository(q Querier) *ReservationRepo {
	return &ReservationRepo{q: q}
}

const reservationColumns = `id, restaurante_id, cliente_nombre, cliente_telefono, cliente_email,
	to_char(fecha, 'YYYY-MM-DD'), to_char(hora, 'HH24:MI'), fecha_hora, personas, mesa_id::TEXT, estado, ocasion,
	notas, activo, version, created_at, updated_at`

func scanReservation(row rowScanner) (*entity.Reservation, error) {
	var x entity.Reservation
	err := row.Scan(&x.ID, &x.RestauranteID, &x.ClienteNombre, &x.ClienteTelefono, &x.ClienteEmail,
		&x.Fecha, &x.Hora, &x.FechaHora, &x.Personas, &x.MesaID, &x.Estado, &x.Ocasion,
		&x.Notas, &x.Active, &x.Version, &x.CreatedAt, &x.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &x, nil
}

func (r *ReservationRepo) scanAll(ctx context.Context, op, query string, args ...any) ([]*entity.Reservation, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()
	var list []*entity.Reservation
	for rows.Next() {
		x, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan reservación: %w", err)
		}
		list = append(list, x)
	}
	return list, rows.Err()
}

// Create persiste una reservación.
func (r *ReservationRepo) Create(ctx context.Context, x *entity.Reservation) error {
	query := `
		INSERT INTO reservaciones (id, restaurante_id, cliente_nombre, cliente_telefono, cliente_email, fecha, hora, fecha_hora,
		                           personas, mesa_id, estado, ocasion, notas, activo, version, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6::DATE, $7::TIME, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err := r.q.Exec(ctx, query,
		x.ID, x.RestauranteID, x.ClienteNombre, x.ClienteTelefono, x.ClienteEmail, x.Fecha, x.Hora, x.FechaHora,
		x.Personas, x.MesaID, x.Estado, x.Ocasion, x.Notas, x.Active, x.Version, x.CreatedAt, x.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert reservación: %w", err)
	}
	return nil
}

// GetByID obtiene una reservación activa.
func (r *ReservationRepo) GetByID(ctx context.Context, restauranteID, id string) (*entity.Reservation, error) {
	if !validID(id) {
		return nil, nil
	}
	x, err := scanReservation(r.q.QueryRow(ctx,
		`SELECT `+reservationColumns+` FROM reservaciones WHERE id = $1 AND restaurante_id = $2 AND activo`, id, restauranteID))
	if err != nil {
		if noRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get reservación: %w", err)
	}
	return x, nil
}

// Update persiste la reservación completa si la versión no cambió.
func (r *ReservationRepo) Update(ctx context.Context, x *entity.Reservation) error {
	query := `
		UPDATE reservaciones SET cliente_nombre = $4, cliente_telefono = $5, cliente_email = $6, fecha = $7::DATE,
		       hora = $8::TIME, fecha_hora = $9, personas = $10, mesa_id = $11, estado = $12, ocasion = $13,
		       notas = $14, activo = $15, updated_at = $16, version = version + 1
		WHERE id = $1 AND restaurante_id = $2 AND version = $3 AND activo`
	tag, err := r.q.Exec(ctx, query,
		x.ID, x.RestauranteID, x.Version, x.ClienteNombre, x.ClienteTelefono, x.ClienteEmail, x.Fecha,
		x.Hora, x.FechaHora, x.Personas, x.MesaID, x.Estado, x.Ocasion,
		x.Notas, x.Active, x.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update reservación: %w", err)
	}
	if err := mustAffect(tag, domain.ErrStaleVersion); err != nil {
		return err
	}
	x.Version++
	return nil
}

// UpdateStatus persiste estado y activo si la versión no cambió.
func (r *ReservationRepo) UpdateStatus(ctx context.Context, x *entity.Reservation) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE reservaciones SET estado = $4, activo = $5, updated_at = $6, version = version + 1
		WHERE id = $1 AND restaurante_id = $2 AND version = $3 AND activo`,
		x.ID, x.RestauranteID, x.Version, x.Estado, x.Active, x.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update estado reservación: %w", err)
	}
	if err := mustAffect(tag, domain.ErrStaleVersion); err != nil {
		return err
	}
	x.Version++
	return nil
}

// List reservaciones activas por fecha y hora.
func (r *ReservationRepo) List(ctx context.Context, restauranteID string, f repository.ReservationFilter, page repository.Page) ([]*entity.Reservation, int, error) {
	w := newWhere(restauranteID)
	if f.Fecha != "" {
		w.add("fecha = $%d::DATE", f.Fecha)
	}
	if f.Estado != "" {
		w.add("estado = $%d", f.Estado)
	}
	if f.MesaID != "" {
		w.add("mesa_id::TEXT = $%d", f.MesaID)
	}
	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM reservaciones WHERE restaurante_id = $1 AND activo`+w.sql(), w.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count reservaciones: %w", err)
	}
	n := w.next()
	query := fmt.Sprintf(`SELECT %s FROM reservaciones WHERE restaurante_id = $1 AND activo%s ORDER BY fecha_hora LIMIT $%d OFFSET $%d`,
		reservationColumns, w.sql(), n, n+1)
	list, err := r.scanAll(ctx, "list reservaciones", query, append(w.args, limitArg(page), page.Offset)...)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// ListActiveByTableBetween reservaciones que ocupan la mesa con fecha_hora en [from, to].
func (r *ReservationRepo) ListActiveByTableBetween(ctx context.Context, restauranteID, mesaID string, from, to time.Time, excludeID string) ([]*entity.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservaciones
		WHERE restaurante_id = $1 AND mesa_id = $2 AND activo
		  AND estado IN ('pendiente', 'confirmada', 'sentada')
		  AND fecha_hora BETWEEN $3 AND $4
		  AND id::TEXT <> $5
		ORDER BY fecha_hora`
	return r.scanAll(ctx, "list reservaciones mesa", query, restauranteID, mesaID, from, to, excludeID)
}
