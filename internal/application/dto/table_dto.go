package dto

import "time"

// CreateTableRequest alta de una mesa.
type CreateTableRequest struct {
	Numero    int     `json:"numero"`
	Capacidad int     `json:"capacidad"`
	Ubicacion string  `json:"ubicacion"`
	MeseroID  *string `json:"meseroId"`
}

// UpdateTableRequest actualización parcial de una mesa (el estado cambia vía /estado).
type UpdateTableRequest struct {
	Numero    *int    `json:"numero"`
	Capacidad *int    `json:"capacidad"`
	Ubicacion *string `json:"ubicacion"`
}

// ChangeStatusRequest cambio de estado (mesas, pedidos, reservaciones).
type ChangeStatusRequest struct {
	Estado string `json:"estado"`
}

// AssignWaiterRequest asignación de mesero. MeseroID nulo o vacío desasigna.
type AssignWaiterRequest struct {
	MeseroID *string `json:"meseroId"`
}

// TableListRequest filtros del listado de mesas.
type TableListRequest struct {
	PageRequest
	Estado    string
	Ubicacion string
	MeseroID  string
}

// TableResponse salida de una mesa.
type TableResponse struct {
	ID            string    `json:"id"`
	RestauranteID string    `json:"restauranteId"`
	Numero        int       `json:"numero"`
	Capacidad     int       `json:"capacidad"`
	Ubicacion     string    `json:"ubicacion"`
	Estado        string    `json:"estado"`
	MeseroID      *string   `json:"meseroId"`
	Activo        bool      `json:"activo"`
	Version       int       `json:"version"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// TableListResponse lista paginada de mesas.
type TableListResponse struct {
	Items []TableResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}

// TableStatsResponse estadísticas de mesas.
type TableStatsResponse struct {
	Total     int                  `json:"total"`
	PorEstado []GroupCountResponse `json:"porEstado"`
	Ocupacion float64              `json:"ocupacion"` // porcentaje de mesas ocupadas
}
