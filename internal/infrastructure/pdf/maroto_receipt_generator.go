// Package pdf genera la ricevuta di prenotazione de una orden del marketplace.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Popé Market            │  N° prenotazione + Fecha  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PARTES: Produttore │ Grossista                              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Prodotto | Colli | Prezzo bloccato | Totale          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TRACCIABILITÀ: azienda / zona / trattamenti / residui       │
//	│  FOOTER: QR con el id de la orden + estado                   │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/pope-market/internal/application/orders"
	"github.com/jhoicas/pope-market/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 46, Green: 125, Blue: 50}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ orders.ReceiptPDFGenerator = (*MarotoReceiptGenerator)(nil)

// MarotoReceiptGenerator implementa orders.ReceiptPDFGenerator usando Maroto v2.
type MarotoReceiptGenerator struct{}

// NewMarotoReceiptGenerator construye el generador.
func NewMarotoReceiptGenerator() *MarotoReceiptGenerator { return &MarotoReceiptGenerator{} }

// GenerateReceiptPDF genera el PDF de la prenotazione. product puede ser nil si el lote ya no existe.
func (g *MarotoReceiptGenerator) GenerateReceiptPDF(
	_ context.Context,
	order *entity.Order,
	product *entity.Product,
) ([]byte, error) {
	if order == nil {
		return nil, fmt.Errorf("pdf: orden nil")
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Ricevuta di prenotazione", true).
		WithAuthor("Popé Market", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(order))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(partiesRow(order))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableDetailRow(order))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(order))

	if product != nil {
		m.AddRows(line.NewRow(3))
		for _, r := range traceabilityRows(product) {
			m.AddRows(r)
		}
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(order))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(order *entity.Order) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New("Popé Market", props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New("Marketplace ortofrutticolo B2B", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("RICEVUTA DI PRENOTAZIONE", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("N° "+strings.ToUpper(shortID(order.ID)), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Data: "+order.CreatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

func partiesRow(order *entity.Order) core.Row {
	party := func(title, name string) core.Col {
		return col.New(6).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(name, "-"), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
		)
	}
	return row.New(14).Add(
		party("PRODUTTORE", order.ProducerName),
		party("GROSSISTA", order.WholesalerName),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Prodotto", 5, align.Left),
		h("Colli", 2, align.Center),
		h("Prezzo bloccato", 2, align.Right),
		h("Totale", 3, align.Right),
	)
}

func tableDetailRow(order *entity.Order) core.Row {
	return row.New(7).Add(
		col.New(5).Add(text.New(order.ProductName,
			props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
		col.New(2).Add(text.New(fmt.Sprintf("%d", order.Quantity),
			props.Text{Size: 8, Align: align.Center, Top: 1})),
		col.New(2).Add(text.New(formatEuro(order.LockedDailyPrice),
			props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		col.New(3).Add(text.New(formatEuro(order.Total()),
			props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
	)
}

func totalRow(order *entity.Order) core.Row {
	return row.New(10).Add(
		col.New(6),
		col.New(3).Add(text.New("TOTALE:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2, Top: 2,
		})),
		col.New(3).Add(text.New(formatEuro(order.Total()), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1, Top: 2,
		})),
	)
}

func traceabilityRows(p *entity.Product) []core.Row {
	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New("TRACCIABILITÀ", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
		)),
	}
	fields := []struct{ label, value string }{
		{"Azienda", p.Traceability.Company},
		{"Zona di coltivazione", p.Traceability.Area},
		{"Trattamenti", p.Traceability.Treatments},
		{"Analisi residui", p.Traceability.ResidueAnalysis},
		{"Data raccolta", p.HarvestDate},
	}
	for _, f := range fields {
		rows = append(rows, row.New(5).Add(
			col.New(4).Add(text.New(f.label+":", props.Text{Style: fontstyle.Bold, Size: 8, Top: 1})),
			col.New(8).Add(text.New(nonEmpty(f.value, "-"), props.Text{Size: 8, Top: 1, Color: colorGray})),
		))
	}
	return rows
}

func footerRow(order *entity.Order) core.Row {
	return row.New(40).Add(
		col.New(4).Add(code.NewQr(order.ID, props.Rect{
			Percent: 95,
			Center:  true,
		})),
		col.New(8).Add(
			text.New("Stato: "+string(order.Status), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 4, Left: 3, Color: colorPrimary,
			}),
			text.New("Il prezzo indicato è bloccato al momento della prenotazione.", props.Text{
				Size: 8, Top: 14, Left: 3, Color: colorGray,
			}),
			text.New("ID: "+order.ID, props.Text{
				Size: 7, Top: 22, Left: 3, Color: colorGray,
			}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if strings.TrimSpace(s) != "" {
		return s
	}
	return fallback
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// formatEuro formatea con separador de miles '.' y decimales ','.
// Ej: 1234.5 → "€ 1.234,50"
func formatEuro(d decimal.Decimal) string {
	s := d.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	intPart, frac, _ := strings.Cut(s, ".")

	n := len(intPart)
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	out := "€ " + string(buf) + "," + frac
	if neg {
		out = "-" + out
	}
	return out
}
