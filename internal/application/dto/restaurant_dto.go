package dto

import "time"

// UpdateRestaurantRequest actualización parcial del restaurante.
type UpdateRestaurantRequest struct {
	Nombre    *string `json:"nombre"`
	Direccion *string `json:"direccion"`
	Telefono  *string `json:"telefono"`
	Email     *string `json:"email"`
	Horario   *string `json:"horario"`
	Moneda    *string `json:"moneda"`
}

// RestaurantResponse salida del restaurante.
type RestaurantResponse struct {
	ID        string    `json:"id"`
	Nombre    string    `json:"nombre"`
	Direccion string    `json:"direccion"`
	Telefono  string    `json:"telefono"`
	Email     string    `json:"email"`
	Horario   string    `json:"horario"`
	Moneda    string    `json:"moneda"`
	AdminID   string    `json:"adminId"`
	Activo    bool      `json:"activo"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
