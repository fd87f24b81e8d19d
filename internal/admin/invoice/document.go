package invoice

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"nainikaessentials.in/admin/internal/admin/views/helpers"
)

// Document renders the printable HTML invoice for the computed model.
func Document(inv Invoice) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := &printer{w: w}

		p.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		p.raw(`<title>`)
		p.text(fmt.Sprintf("Invoice #%d", inv.OrderID))
		p.raw(`</title><style>` + documentCSS + `</style></head><body>`)

		p.raw(`<header class="letterhead"><h1>NainikaEssentials</h1>`)
		p.raw(`<p class="invoice-no">`)
		p.text(fmt.Sprintf("Invoice #%d", inv.OrderID))
		p.raw(`</p></header>`)

		if inv.Customer.Name != "" {
			p.raw(`<section class="bill-to"><h2>Bill To</h2><p>`)
			p.text(inv.Customer.Name)
			p.raw(`<br>`)
			p.text(inv.Customer.Street)
			p.raw(`<br>`)
			p.text(fmt.Sprintf("%s, %s %s", inv.Customer.City, inv.Customer.State, inv.Customer.Pincode))
			p.raw(`<br>`)
			p.text(inv.Customer.Phone)
			p.raw(`</p></section>`)
		}

		p.raw(`<table class="lines"><thead><tr><th>Item</th><th>Qty</th><th>Unit Price</th><th>Amount</th></tr></thead><tbody>`)
		for _, line := range inv.Lines {
			p.raw(`<tr><td>`)
			p.text(line.ProductName)
			p.raw(`</td><td>`)
			p.text(fmt.Sprintf("%d", line.Quantity))
			p.raw(`</td><td>`)
			p.text(helpers.Rupees(line.UnitPrice))
			p.raw(`</td><td>`)
			p.text(helpers.Rupees(line.LineTotal))
			p.raw(`</td></tr>`)
		}
		if len(inv.Lines) == 0 {
			p.raw(`<tr><td colspan="4" class="empty">No items</td></tr>`)
		}
		p.raw(`</tbody></table>`)

		p.raw(`<table class="totals"><tr><td>Subtotal</td><td>`)
		p.text(helpers.Rupees(inv.Subtotal))
		p.raw(`</td></tr><tr><td>GST (18%)</td><td>`)
		p.text(helpers.Rupees(inv.Tax))
		p.raw(`</td></tr><tr class="grand"><td>Total</td><td>`)
		p.text(helpers.Rupees(inv.Total))
		p.raw(`</td></tr></table>`)

		p.raw(`</body></html>`)
		return p.err
	})
}

// printer accumulates writes so the component body stays linear instead of
// checking every io error inline.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) raw(s string) {
	if p.err != nil {
		return
	}
	_, p.err = io.WriteString(p.w, s)
}

func (p *printer) text(s string) {
	p.raw(templ.EscapeString(s))
}

const documentCSS = `body{font-family:Inter,sans-serif;margin:40px;color:#0f172a}
.letterhead{display:flex;justify-content:space-between;align-items:baseline;border-bottom:2px solid #1d4ed8;padding-bottom:8px}
.letterhead h1{color:#1d4ed8;margin:0}
.bill-to{margin-top:24px}
table.lines{width:100%;border-collapse:collapse;margin-top:24px}
table.lines th,table.lines td{padding:8px 12px;border-bottom:1px solid #e5e7eb;text-align:left}
table.lines th{background:#f1f5ff;color:#1d4ed8}
td.empty{color:#64748b;text-align:center}
table.totals{margin-top:16px;margin-left:auto}
table.totals td{padding:4px 12px;text-align:right}
tr.grand td{font-weight:700;border-top:1px solid #0f172a}`
