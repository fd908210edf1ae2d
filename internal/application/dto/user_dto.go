package dto

import "time"

// CreateUserRequest alta de un empleado por el admin.
type CreateUserRequest struct {
	Nombre   string `json:"nombre"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Rol      string `json:"rol"`
	Telefono string `json:"telefono"`
}

// UpdateUserRequest actualización parcial de un empleado.
type UpdateUserRequest struct {
	Nombre   *string `json:"nombre"`
	Telefono *string `json:"telefono"`
	Rol      *string `json:"rol"`
	Activo   *bool   `json:"activo"`
}

// UserResponse salida de un usuario (sin hash).
type UserResponse struct {
	ID            string    `json:"id"`
	RestauranteID string    `json:"restauranteId"`
	Nombre        string    `json:"nombre"`
	Email         string    `json:"email"`
	Rol           string    `json:"rol"`
	Telefono      string    `json:"telefono"`
	Activo        bool      `json:"activo"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// UserListResponse lista paginada de usuarios.
type UserListResponse struct {
	Items []UserResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

// UserStatsResponse estadísticas de empleados.
type UserStatsResponse struct {
	Total  int                  `json:"total"`
	PorRol []GroupCountResponse `json:"porRol"`
}

// UserListRequest filtros del listado de empleados.
type UserListRequest struct {
	PageRequest
	Rol    string
	Activo *bool
}
