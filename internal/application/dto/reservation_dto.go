package dto

import "time"

// CreateReservationRequest alta de una reservación.
type CreateReservationRequest struct {
	ClienteNombre   string  `json:"clienteNombre"`
	ClienteTelefono string  `json:"clienteTelefono"`
	ClienteEmail    string  `json:"clienteEmail"`
	Fecha           string  `json:"fecha"` // YYYY-MM-DD
	Hora            string  `json:"hora"`  // HH:MM
	Personas        int     `json:"personas"`
	MesaID          *string `json:"mesaId"`
	Ocasion         string  `json:"ocasion"`
	Notas           string  `json:"notas"`
}

// UpdateReservationRequest actualización parcial (solo pendiente o confirmada).
type UpdateReservationRequest struct {
	ClienteNombre   *string `json:"clienteNombre"`
	ClienteTelefono *string `json:"clienteTelefono"`
	ClienteEmail    *string `json:"clienteEmail"`
	Fecha           *string `json:"fecha"`
	Hora            *string `json:"hora"`
	Personas        *int    `json:"personas"`
	Ocasion         *string `json:"ocasion"`
	Notas           *string `json:"notas"`
}

// AssignTableRequest asignación de mesa. MesaID nulo o vacío libera la asignación.
type AssignTableRequest struct {
	MesaID *string `json:"mesaId"`
}

// ReservationListRequest filtros del listado de reservaciones.
type ReservationListRequest struct {
	PageRequest
	Fecha  string
	Estado string
	MesaID string
}

// ReservationResponse salida de una reservación.
type ReservationResponse struct {
	ID              string    `json:"id"`
	RestauranteID   string    `json:"restauranteId"`
	ClienteNombre   string    `json:"clienteNombre"`
	ClienteTelefono string    `json:"clienteTelefono"`
	ClienteEmail    string    `json:"clienteEmail"`
	Fecha           string    `json:"fecha"`
	Hora            string    `json:"hora"`
	FechaHora       time.Time `json:"fechaHora"`
	Personas        int       `json:"personas"`
	MesaID          *string   `json:"mesaId"`
	Estado          string    `json:"estado"`
	Ocasion         string    `json:"ocasion"`
	Notas           string    `json:"notas"`
	Activo          bool      `json:"activo"`
	Version         int       `json:"version"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// ReservationListResponse lista paginada de reservaciones.
type ReservationListResponse struct {
	Items []ReservationResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}

// ReservationStatsResponse estadísticas de reservaciones del período.
type ReservationStatsResponse struct {
	Desde         time.Time            `json:"desde"`
	Hasta         time.Time            `json:"hasta"`
	Total         int                  `json:"total"`
	PorEstado     []GroupCountResponse `json:"porEstado"`
	TotalPersonas int                  `json:"totalPersonas"`
}
