package pdf

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	appconfig "github.com/burnproductions/billingdesk/internal/config"
	documentdomain "github.com/burnproductions/billingdesk/internal/document/domain"
	invoicedomain "github.com/burnproductions/billingdesk/internal/invoice/domain"
	"github.com/burnproductions/billingdesk/internal/observability/metrics"
	quotedomain "github.com/burnproductions/billingdesk/internal/quote/domain"
	summarydomain "github.com/burnproductions/billingdesk/internal/summary/domain"
)

type MarotoProvider struct {
	profile *appconfig.ProfileHolder
	metrics *metrics.Metrics
}

func New(profile *appconfig.ProfileHolder, m *metrics.Metrics) Provider {
	return &MarotoProvider{profile: profile, metrics: m}
}

// documentData is the common shape of a printable quote or invoice.
type documentData struct {
	Title          string
	Number         string
	Date           documentdomain.Date
	SecondaryLabel string
	SecondaryDate  documentdomain.Date
	Business       documentdomain.Party
	Client         documentdomain.Party
	Items          []documentdomain.LineItem
	Discount       float64
	Subtotal       float64
	Total          float64
	Notes          string
	Status         string
}

func (p *MarotoProvider) RenderQuote(ctx context.Context, q quotedomain.Quote) (io.Reader, error) {
	r, err := p.renderDocument(documentData{
		Title:          "Quote",
		Number:         q.Number,
		Date:           q.Date,
		SecondaryLabel: "Valid until",
		SecondaryDate:  q.ValidUntil,
		Business:       q.BusinessInfo,
		Client:         q.ClientInfo,
		Items:          q.Items,
		Discount:       q.Discount,
		Subtotal:       q.Subtotal,
		Total:          q.Total,
		Notes:          q.Notes,
		Status:         string(q.Status),
	})
	if err == nil {
		p.metrics.DocumentRendered("quote")
	}
	return r, err
}

func (p *MarotoProvider) RenderInvoice(ctx context.Context, inv invoicedomain.Invoice) (io.Reader, error) {
	r, err := p.renderDocument(documentData{
		Title:          "Invoice",
		Number:         inv.Number,
		Date:           inv.Date,
		SecondaryLabel: "Due date",
		SecondaryDate:  inv.DueDate,
		Business:       inv.BusinessInfo,
		Client:         inv.ClientInfo,
		Items:          inv.Items,
		Discount:       inv.Discount,
		Subtotal:       inv.Subtotal,
		Total:          inv.Total,
		Notes:          inv.Notes,
		Status:         string(inv.Status),
	})
	if err == nil {
		p.metrics.DocumentRendered("invoice")
	}
	return r, err
}

func (p *MarotoProvider) renderDocument(data documentData) (io.Reader, error) {
	symbol := p.profile.Get().CurrencySymbol
	m := newMaroto()

	m.AddRow(12,
		text.NewCol(8, data.Title, props.Text{
			Size:  20,
			Style: fontstyle.Bold,
			Align: align.Left,
		}),
		text.NewCol(4, data.Number, props.Text{
			Size:  14,
			Align: align.Right,
			Top:   2,
		}),
	)

	m.AddRow(14,
		col.New(6).Add(
			text.New("Date: "+formatDate(data.Date), props.Text{Top: 0}),
			text.New(data.SecondaryLabel+": "+formatDate(data.SecondaryDate), props.Text{Top: 5}),
			text.New("Status: "+data.Status, props.Text{Top: 10}),
		),
		col.New(6),
	)

	m.AddRow(35,
		col.New(6).Add(partyLines("From", data.Business)...),
		col.New(6).Add(partyLines("Bill to", data.Client)...),
	)

	m.AddRow(10,
		text.NewCol(6, "Description", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(2, "Qty", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "Unit price", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "Amount", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)

	for _, item := range data.Items {
		m.AddRow(8,
			text.NewCol(6, item.Description, props.Text{Size: 9}),
			text.NewCol(2, trimFloat(item.Quantity), props.Text{Size: 9, Align: align.Right}),
			text.NewCol(2, FormatMoney(symbol, item.Price), props.Text{Size: 9, Align: align.Right}),
			text.NewCol(2, FormatMoney(symbol, item.Quantity*item.Price), props.Text{Size: 9, Align: align.Right}),
		)
	}

	m.AddRow(8,
		col.New(8),
		text.NewCol(2, "Subtotal", props.Text{Size: 9}),
		text.NewCol(2, FormatMoney(symbol, data.Subtotal), props.Text{Size: 9, Align: align.Right}),
	)
	if data.Discount != 0 {
		m.AddRow(8,
			col.New(8),
			text.NewCol(2, fmt.Sprintf("Discount (%s%%)", trimFloat(data.Discount)), props.Text{Size: 9}),
			text.NewCol(2, FormatMoney(symbol, data.Subtotal-data.Total), props.Text{Size: 9, Align: align.Right}),
		)
	}
	m.AddRow(10,
		col.New(8),
		text.NewCol(2, "Total", props.Text{Style: fontstyle.Bold, Size: 10}),
		text.NewCol(2, FormatMoney(symbol, data.Total), props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right}),
	)

	if data.Notes != "" {
		m.AddRow(20,
			text.NewCol(12, "Notes: "+data.Notes, props.Text{Size: 9, Top: 4}),
		)
	}

	return generate(m)
}

// RenderTransactionsReport prints the cash position summary followed by
// the merged activity feed.
func (p *MarotoProvider) RenderTransactionsReport(ctx context.Context, sum summarydomain.TransactionSummary, feed []summarydomain.Transaction) (io.Reader, error) {
	symbol := p.profile.Get().CurrencySymbol
	m := newMaroto()

	m.AddRow(12,
		text.NewCol(12, "Transactions Report", props.Text{
			Size:  20,
			Style: fontstyle.Bold,
			Align: align.Left,
		}),
	)

	m.AddRow(24,
		col.New(3).Add(
			text.New("Total income", props.Text{Size: 9, Style: fontstyle.Bold}),
			text.New(FormatMoney(symbol, sum.TotalIncome), props.Text{Size: 11, Top: 6}),
		),
		col.New(3).Add(
			text.New("Total expenses", props.Text{Size: 9, Style: fontstyle.Bold}),
			text.New(FormatMoney(symbol, sum.TotalExpenses), props.Text{Size: 11, Top: 6}),
		),
		col.New(3).Add(
			text.New("Net profit", props.Text{Size: 9, Style: fontstyle.Bold}),
			text.New(FormatMoney(symbol, sum.NetProfit), props.Text{Size: 11, Top: 6}),
		),
		col.New(3).Add(
			text.New("Outstanding", props.Text{Size: 9, Style: fontstyle.Bold}),
			text.New(FormatMoney(symbol, sum.Outstanding), props.Text{Size: 11, Top: 6}),
		),
	)

	m.AddRow(10,
		text.NewCol(2, "Date", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(2, "Type", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(2, "Number", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(3, "Party", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(1, "Status", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(2, "Amount", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)

	for _, tx := range feed {
		m.AddRow(7,
			text.NewCol(2, formatDate(tx.Date), props.Text{Size: 8}),
			text.NewCol(2, string(tx.Type), props.Text{Size: 8}),
			text.NewCol(2, tx.Number, props.Text{Size: 8}),
			text.NewCol(3, tx.Party, props.Text{Size: 8}),
			text.NewCol(1, tx.Status, props.Text{Size: 8}),
			text.NewCol(2, FormatMoney(symbol, tx.Total), props.Text{Size: 8, Align: align.Right}),
		)
	}

	r, err := generate(m)
	if err == nil {
		p.metrics.DocumentRendered("transactions_report")
	}
	return r, err
}

func newMaroto() core.Maroto {
	cfg := config.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
		}).
		Build()
	return maroto.New(cfg)
}

func generate(m core.Maroto) (io.Reader, error) {
	doc, err := m.Generate()
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(doc.GetBytes()), nil
}

func partyLines(label string, party documentdomain.Party) []core.Component {
	lines := []core.Component{
		text.New(label, props.Text{Style: fontstyle.Bold}),
		text.New(party.Name, props.Text{Top: 5}),
	}
	top := 10.0
	for _, detail := range []string{party.Address, party.Email, party.Phone} {
		if detail == "" {
			continue
		}
		lines = append(lines, text.New(detail, props.Text{Top: top, Size: 9}))
		top += 5
	}
	return lines
}

func formatDate(d documentdomain.Date) string {
	if d.IsZero() {
		return "-"
	}
	return d.Format("2006-01-02")
}

// trimFloat prints a float without trailing zeros, so quantities read
// "2" rather than "2.000000".
func trimFloat(f float64) string {
	return fmt.Sprintf("%g", f)
}
