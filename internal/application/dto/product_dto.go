package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto del menú.
type CreateProductRequest struct {
	Nombre      string          `json:"nombre"`
	Descripcion string          `json:"descripcion"`
	Categoria   string          `json:"categoria"`
	Precio      decimal.Decimal `json:"precio"`
	Disponible  *bool           `json:"disponible"`
	Destacado   bool            `json:"destacado"`
	Etiquetas   []string        `json:"etiquetas"`
}

// UpdateProductRequest actualización parcial de un producto.
type UpdateProductRequest struct {
	Nombre      *string          `json:"nombre"`
	Descripcion *string          `json:"descripcion"`
	Categoria   *string          `json:"categoria"`
	Precio      *decimal.Decimal `json:"precio"`
	Disponible  *bool            `json:"disponible"`
	Destacado   *bool            `json:"destacado"`
	Etiquetas   []string         `json:"etiquetas"`
}

// ToggleAvailabilityRequest cambio de disponibilidad. Sin cuerpo se invierte el valor actual.
type ToggleAvailabilityRequest struct {
	Disponible *bool `json:"disponible"`
}

// ProductListRequest filtros del listado de productos.
type ProductListRequest struct {
	PageRequest
	Categoria  string
	Disponible *bool
	Destacado  *bool
	Busqueda   string
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID            string          `json:"id"`
	RestauranteID string          `json:"restauranteId"`
	Nombre        string          `json:"nombre"`
	Descripcion   string          `json:"descripcion"`
	Categoria     string          `json:"categoria"`
	Precio        decimal.Decimal `json:"precio"`
	Disponible    bool            `json:"disponible"`
	Destacado     bool            `json:"destacado"`
	Etiquetas     []string        `json:"etiquetas"`
	Activo        bool            `json:"activo"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// ProductStatsResponse estadísticas del menú.
type ProductStatsResponse struct {
	Total        int                  `json:"total"`
	PorCategoria []GroupCountResponse `json:"porCategoria"`
}
