package entity

import "time"

// MonedaPorDefecto moneda ISO 4217 asignada al registrar un restaurante.
const MonedaPorDefecto = "COP"

// Restaurant es el tenant: cada restaurante aísla sus datos del resto.
type Restaurant struct {
	ID        string
	Nombre    string
	Direccion string
	Telefono  string
	Email     string
	Horario   string // texto libre, ej. "Lun-Sab 12:00-22:00"
	Moneda    string
	AdminID   string // usuario admin creado en el registro
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
