package dto

// RegisterRequest alta de un restaurante con su primer administrador.
type RegisterRequest struct {
	Restaurante RegisterRestaurantRequest `json:"restaurante"`
	Nombre      string                    `json:"nombre"`
	Email       string                    `json:"email"`
	Password    string                    `json:"password"`
	Telefono    string                    `json:"telefono"`
}

// RegisterRestaurantRequest datos del restaurante en el registro.
type RegisterRestaurantRequest struct {
	Nombre    string `json:"nombre"`
	Direccion string `json:"direccion"`
	Telefono  string `json:"telefono"`
	Email     string `json:"email"`
	Horario   string `json:"horario"`
	Moneda    string `json:"moneda"`
}

// LoginRequest credenciales. RestauranteID opcional restringe la búsqueda a un restaurante.
type LoginRequest struct {
	Email         string `json:"email"`
	Password      string `json:"password"`
	RestauranteID string `json:"restauranteId"`
}

// LoginResponse token JWT + usuario autenticado.
type LoginResponse struct {
	Token       string              `json:"token"`
	Usuario     UserResponse        `json:"usuario"`
	Restaurante *RestaurantResponse `json:"restaurante,omitempty"`
	Permisos    []string            `json:"permisos"`
}

// UpdateProfileRequest campos editables por el propio usuario.
type UpdateProfileRequest struct {
	Nombre   *string `json:"nombre"`
	Telefono *string `json:"telefono"`
}

// ChangePasswordRequest cambio de contraseña (requiere la actual).
type ChangePasswordRequest struct {
	PasswordActual string `json:"passwordActual"`
	PasswordNueva  string `json:"passwordNueva"`
}
