// Package pdf implementa la representación imprimible del reporte de pipeline
// de ventas del CRM.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: CRM Pro │ Dueño + fecha de generación              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Estado | N° Leads | Valor total                      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: leads totales / valor total del pipeline           │
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
	"github.com/shopspring/decimal"

	"github.com/jhoicas/crm-api/internal/application/crm"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

var _ crm.LeadReportPDFGenerator = (*MarotoReportGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa crm.LeadReportPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateLeadReportPDF genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateLeadReportPDF(
	_ context.Context,
	owner *entity.User,
	rows []repository.LeadStatusStat,
	generatedAt time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de pipeline de ventas", true).
		WithAuthor(owner.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(owner, generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	if len(rows) == 0 {
		m.AddRows(emptyRow())
	}
	for _, r := range statusRows(rows) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(totalsRow(rows))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y dueño + fecha de generación (der).
func headerRow(owner *entity.User, generatedAt time.Time) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New("REPORTE DE PIPELINE DE VENTAS", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Distribución de leads por estado", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(owner.Name, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 2,
			}),
			text.New("Generado: "+generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de estados.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Estado", 5, align.Left),
		h("N° Leads", 3, align.Right),
		h("Valor total", 4, align.Right),
	)
}

// statusRows: una fila por estado presente en las distribuciones.
func statusRows(rows []repository.LeadStatusStat) []core.Row {
	result := make([]core.Row, 0, len(rows))
	for _, r := range rows {
		result = append(result, row.New(7).Add(
			col.New(5).Add(text.New(
				string(r.Status),
				props.Text{Size: 9, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(3).Add(text.New(
				fmt.Sprintf("%d", r.Count),
				props.Text{Size: 9, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(4).Add(text.New(
				"$"+r.TotalValue.StringFixed(2),
				props.Text{Size: 9, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// emptyRow: marcador cuando el dueño no tiene leads.
func emptyRow() core.Row {
	return row.New(7).Add(
		col.New(12).Add(text.New("Sin leads registrados", props.Text{
			Size: 9, Align: align.Center, Top: 1, Color: colorGray,
		})),
	)
}

// totalsRow: totales del pipeline (suma de conteos y valores de todos los estados).
func totalsRow(rows []repository.LeadStatusStat) core.Row {
	totalCount := 0
	totalValue := decimal.Zero
	for _, r := range rows {
		totalCount += r.Count
		totalValue = totalValue.Add(r.TotalValue)
	}
	return row.New(9).Add(
		col.New(5).Add(text.New("TOTAL", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Left, Top: 2, Left: 1,
		})),
		col.New(3).Add(text.New(fmt.Sprintf("%d", totalCount), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 2, Right: 1,
		})),
		col.New(4).Add(text.New("$"+totalValue.StringFixed(2), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 2, Right: 1,
		})),
	)
}
