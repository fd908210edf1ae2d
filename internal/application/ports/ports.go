package ports

import (
	"context"
	"time"

	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
)

// Clock reloj de la aplicación. Location es la zona horaria de los restaurantes
// (define el día del consecutivo de pedidos y la hora de las reservaciones).
type Clock interface {
	Now() time.Time
	Location() *time.Location
}

// SystemClock reloj real en una zona horaria fija.
type SystemClock struct {
	Loc *time.Location
}

// Now hora actual en la zona configurada.
func (c SystemClock) Now() time.Time {
	if c.Loc == nil {
		return time.Now()
	}
	return time.Now().In(c.Loc)
}

// Location zona configurada (time.Local si no hay).
func (c SystemClock) Location() *time.Location {
	if c.Loc == nil {
		return time.Local
	}
	return c.Loc
}

// TicketData datos necesarios para imprimir la cuenta de un pedido.
type TicketData struct {
	Restaurant *entity.Restaurant
	Order      *entity.Order
	MesaNumero int
	Mesero     string
	EmitidoAt  time.Time
}

// TicketRenderer puerto de salida para generar el ticket (PDF) de un pedido.
type TicketRenderer interface {
	RenderTicket(ctx context.Context, data TicketData) ([]byte, error)
}

// QRGenerator puerto de salida para generar imágenes PNG de códigos QR.
type QRGenerator interface {
	PNG(content string, size int) ([]byte, error)
}
