package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Categorías de producto del menú.
const (
	ProductEntrada        = "entrada"
	ProductPlatoPrincipal = "plato_principal"
	ProductPostre         = "postre"
	ProductBebida         = "bebida"
	ProductAcompanamiento = "acompanamiento"
	ProductOtro           = "otro"
)

// ProductCategories categorías válidas.
var ProductCategories = []string{
	ProductEntrada, ProductPlatoPrincipal, ProductPostre, ProductBebida, ProductAcompanamiento, ProductOtro,
}

// Product representa un ítem del menú.
type Product struct {
	ID            string
	RestauranteID string
	Nombre        string // único por restaurante entre activos
	Descripcion   string
	Categoria     string
	Precio        decimal.Decimal
	Disponible    bool
	Destacado     bool
	Etiquetas     []string
	Active        bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Orderable informa si el producto puede agregarse a un pedido.
func (p *Product) Orderable() bool {
	return p != nil && p.Active && p.Disponible
}
