// Package rules contiene la lógica pura del dominio: guardas de transición de estados,
// estado derivado del stock, totales de pedidos, consecutivos y conflictos de reservas.
// Nada aquí hace I/O.
package rules

import (
	"fmt"

	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
)

var tableTransitions = map[string][]string{
	entity.TableDisponible: {entity.TableOcupada, entity.TableReservada, entity.TableLimpieza},
	entity.TableOcupada:    {entity.TableLimpieza},
	entity.TableReservada:  {entity.TableDisponible, entity.TableOcupada},
	entity.TableLimpieza:   {entity.TableDisponible},
}

var reservationTransitions = map[string][]string{
	entity.ReservationPendiente:  {entity.ReservationConfirmada, entity.ReservationCancelada},
	entity.ReservationConfirmada: {entity.ReservationSentada, entity.ReservationNoShow, entity.ReservationCancelada},
	entity.ReservationSentada:    {entity.ReservationCompletada},
	entity.ReservationCompletada: nil,
	entity.ReservationCancelada:  nil,
	entity.ReservationNoShow:     nil,
}

// Efecto de una reservación sobre su mesa asignada.
var reservationTableEffects = map[string]string{
	entity.ReservationSentada:    entity.TableOcupada,
	entity.ReservationCompletada: entity.TableLimpieza,
}

// OneOf informa si v pertenece a la lista.
func OneOf(v string, list []string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

// CanTransitionTable informa si la mesa puede pasar de from a to.
func CanTransitionTable(from, to string) bool {
	return OneOf(to, tableTransitions[from])
}

// ValidateTableTransition valida el cambio de estado de una mesa.
func ValidateTableTransition(from, to string) error {
	if !OneOf(to, entity.TableStatuses) {
		return domain.NewValidationError("estado", fmt.Sprintf("estado de mesa desconocido: %q", to))
	}
	if !CanTransitionTable(from, to) {
		return fmt.Errorf("%w: mesa %s -> %s", domain.ErrInvalidTransition, from, to)
	}
	return nil
}

// ValidateOrderTransition valida el cambio de estado de un pedido.
// Entregado y cancelado son terminales; un estado no terminal puede pasar a cualquier otro distinto.
func ValidateOrderTransition(from, to string) error {
	if !OneOf(to, entity.OrderStatuses) {
		return domain.NewValidationError("estado", fmt.Sprintf("estado de pedido desconocido: %q", to))
	}
	if from == entity.OrderEntregado || from == entity.OrderCancelado || from == to {
		return fmt.Errorf("%w: pedido %s -> %s", domain.ErrInvalidTransition, from, to)
	}
	return nil
}

// ValidateReservationTransition valida el cambio de estado de una reservación.
func ValidateReservationTransition(from, to string) error {
	if !OneOf(to, entity.ReservationStatuses) {
		return domain.NewValidationError("estado", fmt.Sprintf("estado de reservación desconocido: %q", to))
	}
	if !OneOf(to, reservationTransitions[from]) {
		return fmt.Errorf("%w: reservación %s -> %s", domain.ErrInvalidTransition, from, to)
	}
	return nil
}

// ReservationTableEffect devuelve el estado que se impone a la mesa cuando la reservación pasa a `to`.
func ReservationTableEffect(to string) (string, bool) {
	s, ok := reservationTableEffects[to]
	return s, ok
}
