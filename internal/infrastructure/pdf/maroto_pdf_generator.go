// Package pdf renders the printable invoice sent to clients.
//
// A4 page layout:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Firm name + PIN     │  Invoice number + dates      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FIRM: address / email                                      │
//	│  BILL TO: client name + PIN + contact                       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLE: Qty | Description | Unit amount | Line total        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALS: Subtotal / VAT (16%) / TOTAL DUE                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: payment terms + notes                              │
//	└─────────────────────────────────────────────────────────────┘
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
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/wanjiru-dev/consultpro-api/internal/application/billing"
	"github.com/wanjiru-dev/consultpro-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 16, Green: 78, Blue: 102}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// amountPrinter inserts thousand separators in rendered amounts.
var amountPrinter = message.NewPrinter(language.English)

var _ billing.InvoicePDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implements billing.InvoicePDFGenerator using Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator builds the generator.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateInvoicePDF renders the invoice and returns the PDF bytes.
func (g *MarotoPDFGenerator) GenerateInvoicePDF(
	_ context.Context,
	invoice *entity.Invoice,
	client *entity.Client,
	firm billing.FirmDetails,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Invoice "+invoice.Number, true).
		WithAuthor(firm.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(invoice, firm))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(firmRow(firm))
	m.AddRows(billToRow(client))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(invoice.Items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(invoice, firm.Currency))

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	for _, r := range footerRows(invoice) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate document: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: firm name + tax PIN (left), invoice number + dates (right).
func headerRow(invoice *entity.Invoice, firm billing.FirmDetails) core.Row {
	issued := invoice.IssueDate.Format("02/01/2006")
	due := invoice.DueDate.Format("02/01/2006")

	return row.New(18).Add(
		col.New(7).Add(
			text.New(firm.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("PIN: "+firm.TaxID, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("TAX INVOICE", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(invoice.Number, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New(fmt.Sprintf("Issued: %s   Due: %s", issued, due), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

func firmRow(firm billing.FirmDetails) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("FROM", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Address: %s   |   Email: %s",
				nonEmpty(firm.Address, "—"),
				nonEmpty(firm.Email, "—"),
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

func billToRow(client *entity.Client) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("BILL TO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(client.Name, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("PIN: %s   |   Email: %s   |   Tel: %s",
				nonEmpty(client.TaxID, "—"),
				nonEmpty(client.Email, "—"),
				nonEmpty(client.Phone, "—"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
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
		h("Qty", 1, align.Center),
		h("Description", 6, align.Left),
		h("Unit Amount", 2, align.Right),
		h("Line Total", 3, align.Right),
	)
}

func tableItemRows(items []entity.InvoiceItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				it.Quantity.StringFixed(0),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(6).Add(text.New(
				it.Description,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				formatAmount(it.UnitAmount),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				formatAmount(it.LineTotal),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

func totalsRow(invoice *entity.Invoice, currency string) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	return row.New(26).Add(
		col.New(3),
		col.New(4).Add(
			label("Subtotal:"),
			label("VAT (16%):"),
			grandLabel("TOTAL DUE ("+currency+"):"),
		),
		col.New(4).Add(
			value(formatAmount(invoice.Subtotal)),
			value(formatAmount(invoice.Tax)),
			grandValue(formatAmount(invoice.Total)),
		),
		col.New(1),
	)
}

func footerRows(invoice *entity.Invoice) []core.Row {
	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New("PAYMENT TERMS", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
		)),
		row.New(5).Add(col.New(12).Add(
			text.New(
				fmt.Sprintf("Payment is due on or before %s. Quote invoice number %s on all remittances.",
					invoice.DueDate.Format("02 January 2006"), invoice.Number),
				props.Text{Size: 7.5, Color: colorGray, Top: 1},
			),
		)),
	}

	if invoice.Notes != "" {
		rows = append(rows, row.New(8).Add(col.New(12).Add(
			text.New("Notes: "+invoice.Notes, props.Text{Size: 7.5, Color: colorGray, Top: 2}),
		)))
	}

	return rows
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatAmount renders a decimal with two places and thousand separators,
// e.g. 116000 -> "116,000.00".
func formatAmount(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	return amountPrinter.Sprintf("%.2f", f)
}
