// Package reservations agenda de reservaciones con control de capacidad y de choques por mesa.
package reservations

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/application/ports"
	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
	"github.com/jhoicas/Restaurante-api/internal/domain/rules"
)

// ReservationUseCase casos de uso de reservaciones.
type ReservationUseCase struct {
	txRunner repository.TxRunner
	repo     repository.ReservationRepository
	stats    repository.StatsRepository
	clock    ports.Clock
}

// NewReservationUseCase construye el caso de uso.
func NewReservationUseCase(txRunner repository.TxRunner, repo repository.ReservationRepository, stats repository.StatsRepository, clock ports.Clock) *ReservationUseCase {
	return &ReservationUseCase{txRunner: txRunner, repo: repo, stats: stats, clock: clock}
}

// Create registra una reservación pendiente. Con mesa se verifican capacidad y choques de horario.
func (uc *ReservationUseCase) Create(ctx context.Context, restauranteID string, in dto.CreateReservationRequest) (*dto.ReservationResponse, error) {
	if in.Ocasion == "" {
		in.Ocasion = entity.OccasionNinguna
	}
	in.ClienteEmail = strings.ToLower(strings.TrimSpace(in.ClienteEmail))
	var v domain.Violations
	v.Required("clienteNombre", in.ClienteNombre)
	v.Required("clienteTelefono", in.ClienteTelefono)
	if in.ClienteEmail != "" {
		v.Email("clienteEmail", in.ClienteEmail)
	}
	v.Range("personas", in.Personas, entity.ReservationMinPersonas, entity.ReservationMaxPersonas)
	v.OneOf("ocasion", in.Ocasion, entity.ReservationOccasions)
	if err := v.Err(); err != nil {
		return nil, err
	}
	at, err := rules.ParseReservationTime(in.Fecha, in.Hora, uc.clock.Location())
	if err != nil {
		return nil, err
	}
	now := uc.clock.Now()
	if err := rules.ValidateNotPast(at, now); err != nil {
		return nil, err
	}

	r := &entity.Reservation{
		ID:              uuid.New().String(),
		RestauranteID:   restauranteID,
		ClienteNombre:   strings.TrimSpace(in.ClienteNombre),
		ClienteTelefono: strings.TrimSpace(in.ClienteTelefono),
		ClienteEmail:    in.ClienteEmail,
		Fecha:           rules.FormatDate(at),
		Hora:            at.Format("15:04"),
		FechaHora:       at,
		Personas:        in.Personas,
		Estado:          entity.ReservationPendiente,
		Ocasion:         in.Ocasion,
		Notas:           strings.TrimSpace(in.Notas),
		Active:          true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if in.MesaID != nil && *in.MesaID != "" {
		mesaID := *in.MesaID
		r.MesaID = &mesaID
	}
	err = uc.txRunner.Run(ctx, func(tx repository.TxRepos) error {
		if err := checkTable(ctx, tx, r); err != nil {
			return err
		}
		return tx.Reservations.Create(ctx, r)
	})
	if err != nil {
		return nil, err
	}
	return toReservationResponse(r), nil
}

// GetByID obtiene una reservación.
func (uc *ReservationUseCase) GetByID(ctx context.Context, restauranteID, id string) (*dto.ReservationResponse, error) {
	r, err := load(ctx, uc.repo, restauranteID, id)
	if err != nil {
		return nil, err
	}
	return toReservationResponse(r), nil
}

// List lista reservaciones por fecha y hora.
func (uc *ReservationUseCase) List(ctx context.Context, restauranteID string, in dto.ReservationListRequest) (*dto.ReservationListResponse, error) {
	in.DefaultPage()
	var v domain.Violations
	if in.Estado != "" {
		v.OneOf("estado", in.Estado, entity.ReservationStatuses)
	}
	if in.Fecha != "" {
		_, err := time.Parse("2006-01-02", in.Fecha)
		v.Check(err == nil, "fecha", "formato esperado YYYY-MM-DD")
	}
	if err := v.Err(); err != nil {
		return nil, err
	}
	f := repository.ReservationFilter{Fecha: in.Fecha, Estado: in.Estado, MesaID: in.MesaID}
	list, total, err := uc.repo.List(ctx, restauranteID, f, repository.Page{Limit: in.Limit, Offset: in.Offset})
	if err != nil {
		return nil, err
	}
	out := &dto.ReservationListResponse{
		Items: make([]dto.ReservationResponse, 0, len(list)),
		Page:  dto.PageResponse{Limit: in.Limit, Offset: in.Offset, Total: total},
	}
	for _, r := range list {
		out.Items = append(out.Items, *toReservationResponse(r))
	}
	return out, nil
}

// Today agenda del día en la zona del restaurante.
func (uc *ReservationUseCase) Today(ctx context.Context, restauranteID string) ([]dto.ReservationResponse, error) {
	today := rules.FormatDate(rules.DayStart(uc.clock.Now(), uc.clock.Location()))
	list, _, err := uc.repo.List(ctx, restauranteID, repository.ReservationFilter{Fecha: today}, repository.Page{})
	if err != nil {
		return nil, err
	}
	out := make([]dto.ReservationResponse, 0, len(list))
	for _, r := range list {
		out = append(out, *toReservationResponse(r))
	}
	return out, nil
}

// Update cambia datos del cliente, fecha, hora o personas mientras la reservación está pendiente o confirmada.
func (uc *ReservationUseCase) Update(ctx context.Context, restauranteID, id string, in dto.UpdateReservationRequest) (*dto.ReservationResponse, error) {
	var out *entity.Reservation
	err := uc.txRunner.Run(ctx, func(tx repository.TxRepos) error {
		r, err := load(ctx, tx.Reservations, restauranteID, id)
		if err != nil {
			return err
		}
		if err := editable(r); err != nil {
			return err
		}
		var v domain.Violations
		if in.ClienteNombre != nil {
			v.Required("clienteNombre", *in.ClienteNombre)
			r.ClienteNombre = strings.TrimSpace(*in.ClienteNombre)
		}
		if in.ClienteTelefono != nil {
			v.Required("clienteTelefono", *in.ClienteTelefono)
			r.ClienteTelefono = strings.TrimSpace(*in.ClienteTelefono)
		}
		if in.ClienteEmail != nil {
			r.ClienteEmail = strings.ToLower(strings.TrimSpace(*in.ClienteEmail))
			if r.ClienteEmail != "" {
				v.Email("clienteEmail", r.ClienteEmail)
			}
		}
		if in.Personas != nil {
			v.Range("personas", *in.Personas, entity.ReservationMinPersonas, entity.ReservationMaxPersonas)
			r.Personas = *in.Personas
		}
		if in.Ocasion != nil {
			v.OneOf("ocasion", *in.Ocasion, entity.ReservationOccasions)
			r.Ocasion = *in.Ocasion
		}
		if in.Notas != nil {
			r.Notas = strings.TrimSpace(*in.Notas)
		}
		if err := v.Err(); err != nil {
			return err
		}
		if in.Fecha != nil || in.Hora != nil {
			fecha, hora := r.Fecha, r.Hora
			if in.Fecha != nil {
				fecha = *in.Fecha
			}
			if in.Hora != nil {
				hora = *in.Hora
			}
			at, err := rules.ParseReservationTime(fecha, hora, uc.clock.Location())
			if err != nil {
				return err
			}
			if err := rules.ValidateNotPast(at, uc.clock.Now()); err != nil {
				return err
			}
			r.FechaHora, r.Fecha, r.Hora = at, rules.FormatDate(at), at.Format("15:04")
		}
		if err := checkTable(ctx, tx, r); err != nil {
			return err
		}
		r.UpdatedAt = uc.clock.Now()
		if err := tx.Reservations.Update(ctx, r); err != nil {
			return err
		}
		out = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toReservationResponse(out), nil
}

// AssignTable asigna o libera la mesa de una reservación pendiente o confirmada.
func (uc *ReservationUseCase) AssignTable(ctx context.Context, restauranteID, id string, in dto.AssignTableRequest) (*dto.ReservationResponse, error) {
	var out *entity.Reservation
	err := uc.txRunner.Run(ctx, func(tx repository.TxRepos) error {
		r, err := load(ctx, tx.Reservations, restauranteID, id)
		if err != nil {
			return err
		}
		if err := editable(r); err != nil {
			return err
		}
		r.MesaID = nil
		if in.MesaID != nil && *in.MesaID != "" {
			mesaID := *in.MesaID
			r.MesaID = &mesaID
		}
		if err := checkTable(ctx, tx, r); err != nil {
			return err
		}
		r.UpdatedAt = uc.clock.Now()
		if err := tx.Reservations.Update(ctx, r); err != nil {
			return err
		}
		out = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toReservationResponse(out), nil
}

// ChangeStatus aplica la transición; sentada ocupa la mesa y completada la pasa a limpieza, en la misma transacción.
func (uc *ReservationUseCase) ChangeStatus(ctx context.Context, restauranteID, id, estado string) (*dto.ReservationResponse, error) {
	var out *entity.Reservation
	err := uc.txRunner.Run(ctx, func(tx repository.TxRepos) error {
		r, err := load(ctx, tx.Reservations, restauranteID, id)
		if err != nil {
			return err
		}
		if err := rules.ValidateReservationTransition(r.Estado, estado); err != nil {
			return err
		}
		now := uc.clock.Now()
		if tableEstado, ok := rules.ReservationTableEffect(estado); ok && r.MesaID != nil {
			t, err := tx.Tables.GetForUpdate(ctx, restauranteID, *r.MesaID)
			if err != nil {
				return err
			}
			if t != nil && t.Estado != tableEstado {
				t.UpdatedAt = now
				if err := tx.Tables.UpdateStatus(ctx, t, tableEstado); err != nil {
					return err
				}
			}
		}
		r.Estado = estado
		if estado == entity.ReservationCancelada {
			r.Active = false
		}
		r.UpdatedAt = now
		if err := tx.Reservations.UpdateStatus(ctx, r); err != nil {
			return err
		}
		out = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toReservationResponse(out), nil
}

// Cancel cancela la reservación (soft delete).
func (uc *ReservationUseCase) Cancel(ctx context.Context, restauranteID, id string) (*dto.ReservationResponse, error) {
	return uc.ChangeStatus(ctx, restauranteID, id, entity.ReservationCancelada)
}

// Stats reservaciones del período por estado y total de comensales.
func (uc *ReservationUseCase) Stats(ctx context.Context, restauranteID, desde, hasta string) (*dto.ReservationStatsResponse, error) {
	from, to, err := rules.Period(desde, hasta, uc.clock.Now(), uc.clock.Location())
	if err != nil {
		return nil, err
	}
	groups, err := uc.stats.ReservationsByStatus(ctx, restauranteID, from, to)
	if err != nil {
		return nil, err
	}
	out := &dto.ReservationStatsResponse{Desde: from, Hasta: to, PorEstado: make([]dto.GroupCountResponse, 0, len(groups))}
	for _, g := range groups {
		out.Total += g.Count
		out.TotalPersonas += int(g.Sum.IntPart())
		out.PorEstado = append(out.PorEstado, dto.GroupCountResponse{Clave: g.Key, Cantidad: g.Count})
	}
	return out, nil
}

func editable(r *entity.Reservation) error {
	if r.Estado != entity.ReservationPendiente && r.Estado != entity.ReservationConfirmada {
		return fmt.Errorf("%w: solo se modifica una reservación pendiente o confirmada (estado actual %s)", domain.ErrConflict, r.Estado)
	}
	return nil
}

// checkTable verifica capacidad y que no haya otra reservación activa de la mesa a menos de 2 horas.
// Bloquea la fila de la mesa para serializar reservaciones concurrentes sobre ella.
func checkTable(ctx context.Context, tx repository.TxRepos, r *entity.Reservation) error {
	if r.MesaID == nil {
		return nil
	}
	t, err := tx.Tables.GetForUpdate(ctx, r.RestauranteID, *r.MesaID)
	if err != nil {
		return err
	}
	if t == nil {
		return fmt.Errorf("%w: mesa %s", domain.ErrNotFound, *r.MesaID)
	}
	if t.Capacidad < r.Personas {
		return domain.NewValidationError("personas", fmt.Sprintf("la mesa %d admite %d personas", t.Numero, t.Capacidad))
	}
	others, err := tx.Reservations.ListActiveByTableBetween(ctx, r.RestauranteID, t.ID,
		r.FechaHora.Add(-rules.ConflictWindow), r.FechaHora.Add(rules.ConflictWindow), r.ID)
	if err != nil {
		return err
	}
	for _, o := range others {
		if rules.ReservationsConflict(o.FechaHora, r.FechaHora) {
			return fmt.Errorf("%w: la mesa %d ya está reservada a las %s", domain.ErrConflict, t.Numero, o.Hora)
		}
	}
	return nil
}

func load(ctx context.Context, repo repository.ReservationRepository, restauranteID, id string) (*entity.Reservation, error) {
	r, err := repo.GetByID(ctx, restauranteID, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, fmt.Errorf("%w: reservación %s", domain.ErrNotFound, id)
	}
	return r, nil
}

func toReservationResponse(r *entity.Reservation) *dto.ReservationResponse {
	return &dto.ReservationResponse{
		ID:              r.ID,
		RestauranteID:   r.RestauranteID,
		ClienteNombre:   r.ClienteNombre,
		ClienteTelefono: r.ClienteTelefono,
		ClienteEmail:    r.ClienteEmail,
		Fecha:           r.Fecha,
		Hora:            r.Hora,
		FechaHora:       r.FechaHora,
		Personas:        r.Personas,
		MesaID:          r.MesaID,
		Estado:          r.Estado,
		Ocasion:         r.Ocasion,
		Notas:           r.Notas,
		Activo:          r.Active,
		Version:         r.Version,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}
