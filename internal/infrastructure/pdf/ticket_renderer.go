// Package pdf genera el ticket (cuenta) de un pedido en PDF.
//
// Layout del ticket (80 mm de ancho):
//
//	┌──────────────────────────────┐
//	│  Restaurante + contacto       │
//	│  Pedido / Mesa / Mesero       │
//	│  ──────────────────────────   │
//	│  Cant | Producto | Subtotal   │
//	│  ──────────────────────────   │
//	│  Subtotal / Impuesto /        │
//	│  Propina / TOTAL              │
//	│  Pie                          │
//	└──────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Restaurante-api/internal/application/ports"
	"github.com/jhoicas/Restaurante-api/pkg/money"
)

const (
	ticketWidth  = 80.0 // mm
	ticketMargin = 4.0
	baseHeight   = 120.0
	rowHeight    = 5.0
)

var colorGray = &props.Color{Red: 100, Green: 100, Blue: 100}

var _ ports.TicketRenderer = (*TicketRenderer)(nil)

// TicketRenderer implementa ports.TicketRenderer con Maroto v2.
type TicketRenderer struct{}

// NewTicketRenderer construye el generador.
func NewTicketRenderer() *TicketRenderer { return &TicketRenderer{} }

// RenderTicket genera el PDF y devuelve sus bytes. El alto de la página crece con las líneas del pedido.
func (g *TicketRenderer) RenderTicket(_ context.Context, data ports.TicketData) ([]byte, error) {
	if data.Restaurant == nil || data.Order == nil {
		return nil, fmt.Errorf("pdf: ticket sin restaurante o pedido")
	}
	height := baseHeight + float64(len(data.Order.Items))*rowHeight*2
	cfg := config.NewBuilder().
		WithDimensions(ticketWidth, height).
		WithLeftMargin(ticketMargin).WithRightMargin(ticketMargin).
		WithTopMargin(ticketMargin).WithBottomMargin(ticketMargin).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle("Ticket "+data.Order.Numero, true).
		WithAuthor(data.Restaurant.Nombre, true).
		Build()

	m := maroto.New(cfg)
	m.AddRows(headerRows(data)...)
	m.AddRows(line.NewRow(2, props.Line{Thickness: 0.3}))
	m.AddRows(itemHeaderRow())
	m.AddRows(itemRows(data)...)
	m.AddRows(line.NewRow(2, props.Line{Thickness: 0.3}))
	m.AddRows(totalRows(data)...)
	m.AddRows(row.New(8).Add(col.New(12).Add(
		text.New("¡Gracias por su visita!", props.Text{Align: align.Center, Top: 3, Style: fontstyle.Italic}),
	)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar ticket: %w", err)
	}
	return doc.GetBytes(), nil
}

func centered(s string, size float64, style fontstyle.Type) core.Row {
	return row.New(size/2 + 2).Add(col.New(12).Add(
		text.New(s, props.Text{Size: size, Style: style, Align: align.Center}),
	))
}

func headerRows(data ports.TicketData) []core.Row {
	r, o := data.Restaurant, data.Order
	rows := []core.Row{centered(r.Nombre, 11, fontstyle.Bold)}
	for _, s := range []string{r.Direccion, r.Telefono} {
		if s != "" {
			rows = append(rows, centered(s, 7, fontstyle.Normal))
		}
	}
	rows = append(rows, row.New(3))
	rows = append(rows, labelValue("Pedido", o.Numero))
	rows = append(rows, labelValue("Mesa", mesaLabel(data.MesaNumero)))
	if data.Mesero != "" {
		rows = append(rows, labelValue("Mesero", data.Mesero))
	}
	rows = append(rows, labelValue("Fecha", data.EmitidoAt.Format("02/01/2006 15:04")))
	return rows
}

func mesaLabel(n int) string {
	if n <= 0 {
		return "-"
	}
	return strconv.Itoa(n)
}

func labelValue(label, value string) core.Row {
	return row.New(rowHeight).Add(
		col.New(4).Add(text.New(label+":", props.Text{Style: fontstyle.Bold})),
		col.New(8).Add(text.New(value, props.Text{Align: align.Right})),
	)
}

func itemHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{Style: fontstyle.Bold, Align: a}))
	}
	return row.New(rowHeight).Add(
		h("Cant", 2, align.Left),
		h("Producto", 6, align.Left),
		h("Subtotal", 4, align.Right),
	)
}

func itemRows(data ports.TicketData) []core.Row {
	moneda := data.Restaurant.Moneda
	rows := make([]core.Row, 0, len(data.Order.Items)*2)
	for _, it := range data.Order.Items {
		rows = append(rows, row.New(rowHeight).Add(
			col.New(2).Add(text.New(strconv.Itoa(it.Cantidad), props.Text{})),
			col.New(6).Add(text.New(it.Nombre, props.Text{})),
			col.New(4).Add(text.New(money.Format(it.Subtotal, moneda), props.Text{Align: align.Right})),
		))
		detail := "c/u " + money.Format(it.PrecioUnitario, moneda)
		if notas := strings.TrimSpace(it.Notas); notas != "" {
			detail += " · " + notas
		}
		rows = append(rows, row.New(rowHeight-1).Add(
			col.New(2),
			col.New(10).Add(text.New(detail, props.Text{Size: 6.5, Color: colorGray})),
		))
	}
	return rows
}

func totalRows(data ports.TicketData) []core.Row {
	o, moneda := data.Order, data.Restaurant.Moneda
	amountRow := func(label string, v decimal.Decimal, bold bool) core.Row {
		style, size := fontstyle.Normal, 8.0
		if bold {
			style, size = fontstyle.Bold, 10
		}
		return row.New(size/2+2).Add(
			col.New(6).Add(text.New(label, props.Text{Style: style, Size: size})),
			col.New(6).Add(text.New(money.Format(v, moneda), props.Text{Style: style, Size: size, Align: align.Right})),
		)
	}
	return []core.Row{
		amountRow("Subtotal", o.Subtotal, false),
		amountRow("Impuesto", o.Impuesto, false),
		amountRow("Propina", o.Propina, false),
		amountRow("TOTAL", o.Total, true),
	}
}
