package entity

import "time"

// Estados de reservación.
const (
	ReservationPendiente  = "pendiente"
	ReservationConfirmada = "confirmada"
	ReservationSentada    = "sentada"
	ReservationCompletada = "completada"
	ReservationCancelada  = "cancelada"
	ReservationNoShow     = "no_show"
)

// ReservationStatuses estados válidos.
var ReservationStatuses = []string{
	ReservationPendiente, ReservationConfirmada, ReservationSentada,
	ReservationCompletada, ReservationCancelada, ReservationNoShow,
}

// ReservationActiveStatuses estados que ocupan la mesa para el chequeo de conflictos.
var ReservationActiveStatuses = []string{ReservationPendiente, ReservationConfirmada, ReservationSentada}

// Ocasiones de la reservación.
const (
	OccasionNinguna     = "ninguna"
	OccasionCumpleanos  = "cumpleanos"
	OccasionAniversario = "aniversario"
	OccasionNegocios    = "negocios"
	OccasionOtra        = "otra"
)

// ReservationOccasions ocasiones válidas.
var ReservationOccasions = []string{OccasionNinguna, OccasionCumpleanos, OccasionAniversario, OccasionNegocios, OccasionOtra}

// Límites de tamaño del grupo.
const (
	ReservationMinPersonas = 1
	ReservationMaxPersonas = 30
)

// Reservation reserva de un cliente. FechaHora es el instante absoluto de Fecha+Hora en la zona del restaurante.
type Reservation struct {
	ID              string
	RestauranteID   string
	ClienteNombre   string
	ClienteTelefono string
	ClienteEmail    string
	Fecha           string // YYYY-MM-DD
	Hora            string // HH:MM
	FechaHora       time.Time
	Personas        int
	MesaID          *string
	Estado          string
	Ocasion         string
	Notas           string
	Active          bool
	Version         int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsActive informa si la reservación bloquea la mesa.
func (r *Reservation) IsActive() bool {
	if !r.Active {
		return false
	}
	for _, s := range ReservationActiveStatuses {
		if r.Estado == s {
			return true
		}
	}
	return false
}
