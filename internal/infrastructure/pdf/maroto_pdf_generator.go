// Package pdf implementa la planilla de ocupación imprimible de una cámara.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre cámara + código  │  Sala + Fecha            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: racks totales / vacíos / parciales / llenos       │
//	│           % de ocupación / cantidad total almacenada        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Piso | Rack | Estado | Cantidad | Amad | Marca      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: leyenda de recálculo                               │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
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

	"github.com/ganeshsutar/coldstrg-sub001/internal/domain/entity"
	"github.com/ganeshsutar/coldstrg-sub001/internal/domain/occupancy"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 170, Green: 40, Blue: 40}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa report.OccupancyPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateOccupancyPDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateOccupancyPDF(
	_ context.Context,
	chamber *entity.Chamber,
	stats occupancy.ChamberStats,
	racks []occupancy.RackOccupancy,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Planilla de ocupación "+chamber.Code, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(chamber))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(stats))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableRackRows(racks) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre + código (izq) y sala + fecha (der).
func headerRow(chamber *entity.Chamber) core.Row {
	fecha := time.Now().Format("02/01/2006 15:04")

	return row.New(18).Add(
		col.New(7).Add(
			text.New(chamber.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Código: "+chamber.Code, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("PLANILLA DE OCUPACIÓN", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Sala: "+nonEmpty(chamber.RoomNumber, "—"), props.Text{
				Size: 9, Align: align.Right, Top: 7,
			}),
			text.New("Generada: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// summaryRow: el resumen derivado de la cámara en una sola franja.
func summaryRow(stats occupancy.ChamberStats) core.Row {
	metric := func(size int, label, value string) core.Col {
		return col.New(size).Add(
			text.New(label, props.Text{
				Style: fontstyle.Bold, Size: 7, Align: align.Center,
				Color: colorGray, Top: 1,
			}),
			text.New(value, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Center,
				Color: colorPrimary, Top: 6,
			}),
		)
	}
	return row.New(14).Add(
		metric(2, "RACKS", fmt.Sprintf("%d", stats.TotalRacks)),
		metric(2, "VACÍOS", fmt.Sprintf("%d", stats.EmptyRacks)),
		metric(2, "PARCIALES", fmt.Sprintf("%d", stats.PartialRacks)),
		metric(2, "LLENOS", fmt.Sprintf("%d", stats.FullRacks)),
		metric(2, "OCUPACIÓN", stats.OccupancyPct.StringFixed(1)+"%"),
		metric(2, "CANTIDAD", stats.TotalQuantity.StringFixed(0)),
	)
}

// tableHeaderRow: cabecera de la tabla de racks.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Piso", 1, align.Center),
		h("Rack", 1, align.Center),
		h("Estado", 2, align.Center),
		h("Cantidad", 2, align.Right),
		h("Amads en el rack", 4, align.Left),
		h("Marca", 2, align.Center),
	)
}

// tableRackRows: una fila por rack, en el orden del recorrido por pisos.
func tableRackRows(racks []occupancy.RackOccupancy) []core.Row {
	result := make([]core.Row, 0, len(racks))
	for i := range racks {
		r := &racks[i]
		stateColor := colorGray
		if r.Status == occupancy.StatusFULL || r.Override != "" {
			stateColor = colorAlert
		}
		result = append(result, row.New(6).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", r.FloorNumber),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", r.RackNumber),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				r.Status,
				props.Text{Size: 8, Align: align.Center, Top: 1, Color: stateColor},
			)),
			col.New(2).Add(text.New(
				r.NetQuantity.StringFixed(0),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(4).Add(text.New(
				lotsLabel(r.Lots),
				props.Text{Size: 7.5, Align: align.Left, Top: 1, Left: 1, Color: colorGray},
			)),
			col.New(2).Add(text.New(
				nonEmpty(r.Override, ""),
				props.Text{Size: 7.5, Align: align.Center, Top: 1, Color: colorAlert},
			)),
		))
	}
	return result
}

// footerRow: leyenda de recálculo.
func footerRow() core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(
			"Esta planilla se recalcula del libro de movimientos al momento de su "+
				"generación. Los saldos reflejan cargas, descargas y traslados "+
				"comprometidos hasta la fecha indicada en el encabezado.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// lotsLabel arma "amad-1: 60, amad-2: 40" con las porciones del rack.
func lotsLabel(lots []occupancy.LotShare) string {
	if len(lots) == 0 {
		return "—"
	}
	out := ""
	for i, share := range lots {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("%s: %s", share.AmadID, share.Quantity.StringFixed(0))
	}
	return out
}
