package entity

import "time"

// Estados de mesa.
const (
	TableDisponible = "disponible"
	TableOcupada    = "ocupada"
	TableReservada  = "reservada"
	TableLimpieza   = "en_limpieza"
)

// TableStatuses estados válidos.
var TableStatuses = []string{TableDisponible, TableOcupada, TableReservada, TableLimpieza}

// Ubicaciones de mesa.
const (
	LocationInterior = "interior"
	LocationTerraza  = "terraza"
	LocationBarra    = "barra"
	LocationPrivado  = "privado"
	LocationExterior = "exterior"
)

// TableLocations ubicaciones válidas.
var TableLocations = []string{LocationInterior, LocationTerraza, LocationBarra, LocationPrivado, LocationExterior}

// Límites de capacidad de una mesa.
const (
	TableMinCapacity = 1
	TableMaxCapacity = 20
)

// Table mesa del salón. MeseroID, si existe, apunta a un mesero activo del mismo restaurante.
type Table struct {
	ID            string
	RestauranteID string
	Numero        int // único por restaurante entre activas
	Capacidad     int
	Ubicacion     string
	Estado        string
	MeseroID      *string
	Active        bool
	Version       int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
