package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin    = "admin"
	RoleMesero   = "mesero"
	RoleCocinero = "cocinero"
	RoleCajero   = "cajero"
	RoleHost     = "host"
)

// Roles lista ordenada de roles válidos.
var Roles = []string{RoleAdmin, RoleMesero, RoleCocinero, RoleCajero, RoleHost}

// User representa un empleado del restaurante (pertenece a un Restaurant).
type User struct {
	ID            string
	RestauranteID string
	Nombre        string
	Email         string // único dentro del restaurante
	PasswordHash  string // bcrypt hash, nunca plano en dominio después de persistir
	Role          string
	Telefono      string
	Active        bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsActiveWaiter informa si el usuario puede atender mesas.
func (u *User) IsActiveWaiter() bool {
	return u != nil && u.Active && u.Role == RoleMesero
}
