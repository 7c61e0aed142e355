package orders

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/data-center-bgp/po-bunker/frontend/shared/html"
	"github.com/data-center-bgp/po-bunker/frontend/shared/nav"
)

// OrdersPage renders the paginated orders table plus the create-order
// modal when it is open.
func OrdersPage(data PageData) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := nav.TopNav(data.Nav).Render(ctx, w); err != nil {
			return err
		}

		var b strings.Builder
		b.WriteString(`<main class="page"><div class="page-head"><h2>Orders</h2>` +
			`<a class="btn btn-primary" href="/dashboard/orders?new=1">Add New Order</a></div>`)

		if data.Status != "" {
			b.WriteString(`<div class="banner banner-ok">` + templ.EscapeString(data.Status) + `</div>`)
		}
		if data.FetchError != "" {
			b.WriteString(`<div class="banner banner-error">` + templ.EscapeString(data.FetchError) + `</div>`)
		}

		writeOrdersTable(&b, data.Rows)
		writePagination(&b, data.Window, len(data.Rows))
		b.WriteString(`</main>`)

		if data.Form.Open {
			writeOrderForm(&b, data.Form)
		}

		_, err := io.WriteString(w, b.String())
		return err
	})
	return html.Page("Orders - PO Bunker", body)
}

func writeOrdersTable(b *strings.Builder, rows []OrderRow) {
	b.WriteString(`<div class="card table-wrap"><table><thead><tr>` +
		`<th>PO Number</th><th>PO Type</th><th>Order Date</th><th>Planned Date</th>` +
		`<th>Customer</th><th>Vessel Name</th><th>Product</th><th>Quantity</th><th>Status</th>` +
		`</tr></thead><tbody>`)

	if len(rows) == 0 {
		b.WriteString(`<tr><td colspan="9" class="empty">No orders found. Create your first order to get started.</td></tr>`)
	}
	for _, row := range rows {
		b.WriteString(`<tr>` +
			`<td class="strong">` + templ.EscapeString(row.Name) + `</td>` +
			`<td>` + templ.EscapeString(row.OrderType) + `</td>` +
			`<td>` + templ.EscapeString(row.DateOrder) + `</td>` +
			`<td>` + templ.EscapeString(row.DatePlanned) + `</td>` +
			`<td>` + templ.EscapeString(row.Customer) + `</td>` +
			`<td>` + templ.EscapeString(row.VesselName) + `</td>` +
			`<td>` + templ.EscapeString(row.ProductName) + `</td>` +
			`<td>` + templ.EscapeString(row.Quantity) + `</td>` +
			`<td><span class="` + StatusBadgeClass(row.State) + `">` + templ.EscapeString(StatusLabel(row.State)) + `</span></td>` +
			`</tr>`)
	}
	b.WriteString(`</tbody></table></div>`)
}

func writePagination(b *strings.Builder, w Window, shown int) {
	b.WriteString(`<div class="card pagination"><p>` + fmt.Sprintf(
		"Showing %d to %d of %d orders", w.StartItem(shown), w.EndItem(shown), w.TotalCount) + `</p><div class="pages">`)

	if w.HasPrev() {
		b.WriteString(fmt.Sprintf(`<a class="pagebtn" href="/dashboard/orders?page=%d">Previous</a>`, w.Page-1))
	} else {
		b.WriteString(`<span class="pagebtn disabled">Previous</span>`)
	}

	for _, page := range w.Pages() {
		if page == w.Page {
			b.WriteString(fmt.Sprintf(`<span class="pagebtn current">%d</span>`, page))
		} else {
			b.WriteString(fmt.Sprintf(`<a class="pagebtn" href="/dashboard/orders?page=%d">%d</a>`, page, page))
		}
	}

	if w.HasNext() {
		b.WriteString(fmt.Sprintf(`<a class="pagebtn" href="/dashboard/orders?page=%d">Next</a>`, w.Page+1))
	} else {
		b.WriteString(`<span class="pagebtn disabled">Next</span>`)
	}
	b.WriteString(`</div></div>`)
}

func writeOrderForm(b *strings.Builder, form FormData) {
	b.WriteString(`<div class="modal-backdrop"><div class="modal"><div class="modal-head">` +
		`<h3>Create New Order</h3><a class="modal-close" href="/dashboard/orders" title="Close">&times;</a></div>` +
		`<div class="modal-body">`)

	if form.Error != "" {
		b.WriteString(`<div class="banner banner-error">` + templ.EscapeString(form.Error) + `</div>`)
	}
	if form.VesselsError != "" {
		b.WriteString(`<div class="banner banner-error">` + templ.EscapeString(form.VesselsError) + `</div>`)
	}

	v := form.Values
	b.WriteString(`<form method="POST" action="/dashboard/orders" class="grid2">`)

	b.WriteString(`<label>Customer<input type="number" name="partner_id" placeholder="Enter customer ID" value="` +
		templ.EscapeString(v.PartnerID) + `" required><small>Enter customer ID</small></label>`)

	b.WriteString(`<label>Order Type<select name="order_type" required>` +
		`<option value="">Select order type</option>` +
		orderTypeOption("logistic", "Logistic", v.OrderType) +
		orderTypeOption("bbm", "BBM", v.OrderType) +
		orderTypeOption("fresh_water", "Fresh Water", v.OrderType) +
		`</select></label>`)

	b.WriteString(`<label>Order Date<input type="date" name="date_order" value="` +
		templ.EscapeString(v.DateOrder) + `" required></label>`)
	b.WriteString(`<label>Planned Date<input type="date" name="date_planned" value="` +
		templ.EscapeString(v.DatePlanned) + `" required></label>`)

	b.WriteString(`<label>Product<input type="number" name="product_id" placeholder="Enter product ID" value="` +
		templ.EscapeString(v.ProductID) + `" required><small>Enter product ID</small></label>`)

	b.WriteString(`<label>Vessel<select name="vessel_id" required>` +
		`<option value="">Select vessel</option>`)
	for _, opt := range form.Vessels {
		selected := ""
		if v.VesselID == fmt.Sprintf("%d", opt.ID) {
			selected = ` selected`
		}
		b.WriteString(fmt.Sprintf(`<option value="%d"%s>%s</option>`, opt.ID, selected, templ.EscapeString(opt.Label)))
	}
	b.WriteString(`</select></label>`)

	b.WriteString(`<label>Quantity<input type="number" step="0.01" name="quantity" placeholder="Enter quantity" value="` +
		templ.EscapeString(v.Quantity) + `" required></label>`)
	b.WriteString(`<label>Unit Price<input type="number" step="0.01" name="unit_price" placeholder="Enter unit price" value="` +
		templ.EscapeString(v.UnitPrice) + `" required></label>`)

	b.WriteString(`<div class="modal-foot"><a class="btn btn-outline" href="/dashboard/orders">Cancel</a>` +
		`<button type="submit" class="btn btn-primary">Create Order</button></div>`)
	b.WriteString(`</form></div></div></div>`)
}

func orderTypeOption(value, label, selected string) string {
	attr := ""
	if value == selected {
		attr = ` selected`
	}
	return `<option value="` + value + `"` + attr + `>` + label + `</option>`
}
