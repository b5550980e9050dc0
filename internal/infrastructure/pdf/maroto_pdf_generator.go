// Package pdf implementa el reporte de inventario en PDF con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del reporte     │  Fecha de generación       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  KPIs: Valor | Bajo stock | Por vencer | Cuentas por pagar   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DISTRIBUCIÓN: Categoría | Valor | %                         │
//	│  TOP: Ingrediente | Categoría | Valor                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DETALLE: Nombre | Cat. | Stock | Costo | Valor | Vence | Estado │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

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

	"github.com/jhoicas/restaurant-ops/internal/application/dto"
	"github.com/jhoicas/restaurant-ops/internal/application/export"
	"github.com/jhoicas/restaurant-ops/internal/domain/entity"
	"github.com/jhoicas/restaurant-ops/pkg/money"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 16, Green: 185, Blue: 129} // #10b981
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorDanger  = &props.Color{Red: 239, Green: 68, Blue: 68}  // #ef4444
	colorWarning = &props.Color{Red: 245, Green: 158, Blue: 11} // #f59e0b
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa export.ReportGenerator usando Maroto v2.
type MarotoReportGenerator struct {
	format *money.Formatter
	author string
}

var _ export.ReportGenerator = (*MarotoReportGenerator)(nil)

// NewMarotoReportGenerator construye el generador. author aparece en los metadatos del PDF.
func NewMarotoReportGenerator(format *money.Formatter, author string) *MarotoReportGenerator {
	return &MarotoReportGenerator{format: format, author: author}
}

// GenerateInventoryReport genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateInventoryReport(_ context.Context, report *export.InventoryReport) ([]byte, error) {
	if report == nil || report.Overview == nil {
		return nil, fmt.Errorf("pdf: reporte vacío")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(report.Title, true).
		WithAuthor(g.author, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(g.statsRow(report.Overview))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	if len(report.Overview.CategoryDistribution) > 0 {
		m.AddRows(sectionTitle("Category distribution"))
		m.AddRows(tableHeaderRow(
			headerCell{"Category", 6, align.Left},
			headerCell{"Value", 4, align.Right},
			headerCell{"Share", 2, align.Right},
		))
		for _, r := range g.distributionRows(report.Overview.CategoryDistribution) {
			m.AddRows(r)
		}
	}

	if len(report.Overview.TopItems) > 0 {
		m.AddRows(sectionTitle("Top items by value"))
		m.AddRows(tableHeaderRow(
			headerCell{"Ingredient", 6, align.Left},
			headerCell{"Category", 3, align.Left},
			headerCell{"Value", 3, align.Right},
		))
		for _, r := range g.topRows(report.Overview.TopItems) {
			m.AddRows(r)
		}
	}

	m.AddRows(sectionTitle("Inventory"))
	m.AddRows(tableHeaderRow(
		headerCell{"Name", 3, align.Left},
		headerCell{"Category", 2, align.Left},
		headerCell{"Stock", 1, align.Right},
		headerCell{"Unit cost", 2, align.Right},
		headerCell{"Value", 2, align.Right},
		headerCell{"Expiry", 1, align.Center},
		headerCell{"Status", 1, align.Center},
	))
	for _, r := range g.detailRows(report.Lines) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y fecha de generación (der).
func headerRow(report *export.InventoryReport) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New(report.Title, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(4).Add(
			text.New("Generated: "+report.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 5, Color: colorGray,
			}),
		),
	)
}

// statsRow: las cuatro tarjetas de KPIs.
func (g *MarotoReportGenerator) statsRow(o *dto.DashboardOverviewDTO) core.Row {
	card := func(label, value string) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Size: 7, Color: colorGray, Top: 1}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 11, Top: 6}),
		)
	}
	return row.New(16).Add(
		card("Total inventory value", g.format.Format(o.Stats.TotalInventoryValue)),
		card("Low stock items", strconv.Itoa(o.Stats.LowStockItems)),
		card("Expiring soon", strconv.Itoa(o.Stats.ExpiringSoon)),
		card("Pending payables", g.format.Format(o.Stats.PendingPayables)),
	)
}

func sectionTitle(title string) core.Row {
	return row.New(9).Add(col.New(12).Add(
		text.New(title, props.Text{Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 3}),
	))
}

type headerCell struct {
	label string
	size  int
	align align.Type
}

// tableHeaderRow: cabecera de tabla en negrita.
func tableHeaderRow(cells ...headerCell) core.Row {
	cols := make([]core.Col, 0, len(cells))
	for _, c := range cells {
		cols = append(cols, col.New(c.size).Add(text.New(c.label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: c.align, Top: 1, Left: 1, Right: 1,
		})))
	}
	return row.New(6).Add(cols...)
}

func cell(size int, s string, a align.Type) core.Col {
	return col.New(size).Add(text.New(s, props.Text{Size: 8, Align: a, Top: 1, Left: 1, Right: 1}))
}

func (g *MarotoReportGenerator) distributionRows(shares []dto.CategoryShareDTO) []core.Row {
	result := make([]core.Row, 0, len(shares))
	for _, s := range shares {
		result = append(result, row.New(6).Add(
			cell(6, s.Label, align.Left),
			cell(4, g.format.Format(s.Value), align.Right),
			cell(2, s.Percentage.StringFixed(1)+"%", align.Right),
		))
	}
	return result
}

func (g *MarotoReportGenerator) topRows(items []dto.TopIngredientDTO) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		result = append(result, row.New(6).Add(
			cell(6, it.Name, align.Left),
			cell(3, it.Category, align.Left),
			cell(3, g.format.Format(it.Value), align.Right),
		))
	}
	return result
}

// detailRows: una fila por ingrediente; el estado se colorea si requiere atención.
func (g *MarotoReportGenerator) detailRows(lines []export.ReportLine) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		status := props.Text{Size: 7, Align: align.Center, Top: 1, Style: fontstyle.Bold}
		switch entity.StockStatus(l.Status) {
		case entity.StockStatusExpired, entity.StockStatusOutOfStock:
			status.Color = colorDanger
		case entity.StockStatusLowStock:
			status.Color = colorWarning
		}
		result = append(result, row.New(6).Add(
			cell(3, l.Name, align.Left),
			cell(2, l.Category, align.Left),
			cell(1, g.format.Number(l.Stock)+" "+l.Unit, align.Right),
			cell(2, g.format.Format(l.UnitCost), align.Right),
			cell(2, g.format.Format(l.Value), align.Right),
			cell(1, nonEmpty(l.ExpiryDate, "—"), align.Center),
			col.New(1).Add(text.New(l.Status, status)),
		))
	}
	return result
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
