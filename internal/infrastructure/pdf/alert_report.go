// Package pdf genera el reporte imprimible de alertas de inventario:
// artículos en stock bajo y artículos próximos a vencer.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del reporte + fecha de generación            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  STOCK BAJO: Barcode | Título | Unidades | Umbral            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PRÓXIMOS A VENCER: Barcode | Título | Vence | Proveedor     │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
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

	"github.com/supir/suministros-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// AlertReportGenerator genera el reporte de alertas usando Maroto v2.
type AlertReportGenerator struct{}

// NewAlertReportGenerator construye el generador.
func NewAlertReportGenerator() *AlertReportGenerator { return &AlertReportGenerator{} }

// Generate genera el PDF y devuelve sus bytes.
func (g *AlertReportGenerator) Generate(lowStock, nearExpiration []*entity.SupplyItem, daysAhead int) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Alertas de Inventario", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(sectionTitleRow(fmt.Sprintf("Stock bajo (%d artículos)", len(lowStock))))
	m.AddRows(lowStockHeaderRow())
	for _, item := range lowStock {
		m.AddRows(lowStockRow(item))
	}
	if len(lowStock) == 0 {
		m.AddRows(emptyRow("Ningún artículo por debajo de su umbral."))
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionTitleRow(fmt.Sprintf("Próximos a vencer en %d días (%d artículos)", daysAhead, len(nearExpiration))))
	m.AddRows(expirationHeaderRow())
	for _, item := range nearExpiration {
		m.AddRows(expirationRow(item))
	}
	if len(nearExpiration) == 0 {
		m.AddRows(emptyRow("Ningún artículo vence dentro de la ventana."))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow() core.Row {
	fecha := time.Now().Format("02/01/2006 15:04")
	return row.New(14).Add(
		col.New(8).Add(
			text.New("Reporte de Alertas de Inventario", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+fecha, props.Text{
				Size: 9, Top: 3, Color: colorGray, Align: align.Right,
			}),
		),
	)
}

func sectionTitleRow(title string) core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New(title, props.Text{Style: fontstyle.Bold, Size: 11, Color: colorPrimary, Top: 2}),
		),
	)
}

func lowStockHeaderRow() core.Row {
	return row.New(7).Add(
		headerCell(3, "Barcode"),
		headerCell(5, "Título"),
		headerCell(2, "Unidades"),
		headerCell(2, "Umbral"),
	)
}

func lowStockRow(item *entity.SupplyItem) core.Row {
	return row.New(6).Add(
		bodyCell(3, item.Barcode),
		bodyCell(5, item.ProductTitle),
		bodyCell(2, fmt.Sprintf("%d", item.AvailableUnits)),
		bodyCell(2, fmt.Sprintf("%d", item.ThresholdStock)),
	)
}

func expirationHeaderRow() core.Row {
	return row.New(7).Add(
		headerCell(3, "Barcode"),
		headerCell(4, "Título"),
		headerCell(2, "Vence"),
		headerCell(3, "Proveedor"),
	)
}

func expirationRow(item *entity.SupplyItem) core.Row {
	supplier := "-"
	if item.Supplier != nil {
		supplier = item.Supplier.Name
	}
	return row.New(6).Add(
		bodyCell(3, item.Barcode),
		bodyCell(4, item.ProductTitle),
		bodyCell(2, entity.FormatOptionalDate(item.ExpirationDate)),
		bodyCell(3, supplier),
	)
}

func emptyRow(msg string) core.Row {
	return row.New(6).Add(
		col.New(12).Add(text.New(msg, props.Text{Size: 9, Color: colorGray})),
	)
}

func headerCell(size int, label string) core.Col {
	return col.New(size).Add(text.New(label, props.Text{Style: fontstyle.Bold, Size: 9}))
}

func bodyCell(size int, value string) core.Col {
	return col.New(size).Add(text.New(value, props.Text{Size: 9}))
}
