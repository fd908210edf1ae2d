package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Restaurante-api/internal/application/ports"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
)

func TestRenderTicket(t *testing.T) {
	data := ports.TicketData{
		Restaurant: &entity.Restaurant{Nombre: "La Fonda", Direccion: "Cra 7 # 12-30", Moneda: "COP"},
		Order: &entity.Order{
			Numero: "P-260510-0001",
			Items: []entity.OrderItem{
				{Nombre: "Bandeja paisa", Cantidad: 2, PrecioUnitario: decimal.NewFromInt(25000), Subtotal: decimal.NewFromInt(50000), Notas: "sin chicharrón"},
				{Nombre: "Limonada", Cantidad: 1, PrecioUnitario: decimal.NewFromInt(6000), Subtotal: decimal.NewFromInt(6000)},
			},
			Subtotal: decimal.NewFromInt(56000),
			Propina:  decimal.NewFromInt(5600),
			Total:    decimal.NewFromInt(61600),
		},
		MesaNumero: 4,
		Mesero:     "Mario",
		EmitidoAt:  time.Date(2026, 5, 10, 20, 15, 0, 0, time.UTC),
	}
	out, err := NewTicketRenderer().RenderTicket(context.Background(), data)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestRenderTicket_MissingData(t *testing.T) {
	_, err := NewTicketRenderer().RenderTicket(context.Background(), ports.TicketData{})
	assert.Error(t, err)
}

func TestMesaLabel(t *testing.T) {
	assert.Equal(t, "-", mesaLabel(0))
	assert.Equal(t, "12", mesaLabel(12))
}
