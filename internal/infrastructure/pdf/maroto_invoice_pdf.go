// Package pdf genera la representación descargable de una factura del
// portal: una página A4 con el encabezado del servicio, los datos del
// cliente y el detalle del período facturado.
package pdf

import (
	"context"
	"fmt"

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

	"github.com/albrtaraya/facturas-api/internal/application/billing"
	"github.com/albrtaraya/facturas-api/internal/domain/entity"
	"github.com/albrtaraya/facturas-api/internal/domain/filter"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ billing.InvoicePDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa billing.InvoicePDFGenerator con Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateInvoicePDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateInvoicePDF(_ context.Context, inv *entity.Invoice) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Factura "+inv.InvoiceNumber, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(inv))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(inv))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(detailHeaderRow())
	m.AddRows(detailRow(inv))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(totalRow(inv))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título del documento (izq) y número + vencimiento (der).
func headerRow(inv *entity.Invoice) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New("Factura de servicios", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Servicio: "+inv.Service, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("N° "+inv.InvoiceNumber, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 1,
			}),
			text.New("Vence: "+inv.DueDate, props.Text{
				Size: 9, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// customerRow: datos del cliente.
func customerRow(inv *entity.Invoice) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("Cliente: "+inv.CustomerName, props.Text{Style: fontstyle.Bold, Size: 10, Top: 1}),
			text.New("Código de cliente: "+inv.CustomerID, props.Text{Size: 9, Top: 7, Color: colorGray}),
		),
	)
}

func detailHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary}
	headerRight := props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Align: align.Right}
	return row.New(8).Add(
		text.NewCol(5, "Concepto", header),
		text.NewCol(3, "Período", header),
		text.NewCol(2, "Estado", header),
		text.NewCol(2, "Importe", headerRight),
	)
}

func detailRow(inv *entity.Invoice) core.Row {
	return row.New(8).Add(
		text.NewCol(5, inv.Service, props.Text{Size: 9}),
		text.NewCol(3, inv.Period, props.Text{Size: 9}),
		text.NewCol(2, filter.DisplayValue(filter.KeyStatus, inv.Status), props.Text{Size: 9}),
		text.NewCol(2, amountLabel(inv), props.Text{Size: 9, Align: align.Right}),
	)
}

func totalRow(inv *entity.Invoice) core.Row {
	return row.New(10).Add(
		text.NewCol(10, "TOTAL A PAGAR", props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right, Color: colorPrimary, Top: 2,
		}),
		text.NewCol(2, amountLabel(inv), props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 2,
		}),
	)
}

// amountLabel formatea el importe con el marcador de moneda del portal.
func amountLabel(inv *entity.Invoice) string {
	return filter.DisplayValue(filter.KeyMinAmount, inv.Amount.StringFixed(2))
}
