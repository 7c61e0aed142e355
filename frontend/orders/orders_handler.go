package orders

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	sessioncontext "github.com/data-center-bgp/po-bunker/frontend/shared/context"
	"github.com/data-center-bgp/po-bunker/frontend/shared/nav"
	"github.com/data-center-bgp/po-bunker/infrastructure/activity"
	"github.com/data-center-bgp/po-bunker/infrastructure/backend"
	"github.com/data-center-bgp/po-bunker/infrastructure/cache"
	"github.com/data-center-bgp/po-bunker/models"
)

// PageLimit is the fixed page size of the orders listing.
const PageLimit = 10

// OrdersPageQueryHandler renders one page of orders. `?new=1` opens the
// create-order modal, which also loads the vessel selector.
func OrdersPageQueryHandler(client *backend.Client, vessels *cache.VesselCache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := parsePage(r.URL.Query().Get("page"))

		form := FormData{}
		if r.URL.Query().Get("new") == "1" {
			form.Open = true
			populateVessels(r.Context(), client, vessels, &form)
		}

		renderOrdersPage(w, r, client, page, form, r.URL.Query().Get("status"))
	}
}

// CreateOrderCommandHandler maps the submitted form to a creation request.
// On success it redirects to a fresh listing; on failure it re-renders with
// the error and the submitted values kept for retry.
func CreateOrderCommandHandler(client *backend.Client, vessels *cache.VesselCache, activitySvc *activity.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Redirect(w, r, "/dashboard/orders?new=1&status="+url.QueryEscape("Invalid form data"), http.StatusSeeOther)
			return
		}

		values := FormValues{
			PartnerID:   r.FormValue("partner_id"),
			OrderType:   r.FormValue("order_type"),
			DateOrder:   r.FormValue("date_order"),
			DatePlanned: r.FormValue("date_planned"),
			ProductID:   r.FormValue("product_id"),
			VesselID:    r.FormValue("vessel_id"),
			Quantity:    r.FormValue("quantity"),
			UnitPrice:   r.FormValue("unit_price"),
		}

		req, err := BuildCreateOrderRequest(values)
		if err != nil {
			rerenderWithFormError(w, r, client, vessels, values, err.Error())
			return
		}

		created, err := client.CreateOrder(r.Context(), req)
		if err != nil {
			rerenderWithFormError(w, r, client, vessels, values, err.Error())
			return
		}

		if session, ok := sessioncontext.GetSessionFromContext(r.Context()); ok {
			activitySvc.Record(r.Context(), session.UserID, "order.create", created.Name)
		}

		http.Redirect(w, r, "/dashboard/orders?status="+url.QueryEscape("Order created: "+created.Name), http.StatusSeeOther)
	}
}

func rerenderWithFormError(w http.ResponseWriter, r *http.Request, client *backend.Client, vessels *cache.VesselCache, values FormValues, message string) {
	form := FormData{Open: true, Values: values, Error: message}
	populateVessels(r.Context(), client, vessels, &form)
	renderOrdersPage(w, r, client, 1, form, "")
}

func renderOrdersPage(w http.ResponseWriter, r *http.Request, client *backend.Client, page int, form FormData, statusMessage string) {
	data := PageData{
		Window: Window{Page: page, Limit: PageLimit},
		Form:   form,
		Status: statusMessage,
	}
	if session, ok := sessioncontext.GetSessionFromContext(r.Context()); ok {
		data.Nav = nav.BuildTopNavData(session, "orders")
	}

	resp, err := client.ListOrders(r.Context(), page, PageLimit)
	if err != nil {
		data.FetchError = err.Error()
	} else {
		data.Window.TotalCount = resp.TotalCount
		data.Rows = buildRows(resp.PurchaseOrders)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := OrdersPage(data).Render(r.Context(), w); err != nil {
		http.Error(w, "failed to render orders page", http.StatusInternalServerError)
	}
}

func buildRows(orders []models.PurchaseOrder) []OrderRow {
	rows := make([]OrderRow, 0, len(orders))
	for _, order := range orders {
		row := OrderRow{
			ID:          order.ID,
			Name:        order.Name,
			OrderType:   order.OrderType,
			DateOrder:   formatDisplayDate(order.DateOrder),
			DatePlanned: formatDisplayDate(order.DatePlanned),
			Customer:    refName(order.Partner),
			VesselName:  "-",
			ProductName: "-",
			Quantity:    "-",
			State:       order.State,
		}
		if len(order.Lines) > 0 {
			first := order.Lines[0]
			row.VesselName = refName(first.Vessel)
			row.ProductName = refName(first.Product)
			if first.Quantity != 0 {
				row.Quantity = strconv.FormatFloat(first.Quantity, 'f', -1, 64)
			}
		}
		rows = append(rows, row)
	}
	return rows
}

func refName(r models.Ref) string {
	if r.Name == "" {
		return "-"
	}
	return r.Name
}

// formatDisplayDate renders a backend timestamp as e.g. "Nov 10, 2025".
// Unparseable values pass through raw.
func formatDisplayDate(raw string) string {
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("Jan 2, 2006")
		}
	}
	return raw
}

func parsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

func populateVessels(ctx context.Context, client *backend.Client, vessels *cache.VesselCache, form *FormData) {
	list, ok := vessels.Get()
	if !ok {
		fetched, err := client.ListVessels(ctx)
		if err != nil {
			form.VesselsError = err.Error()
			return
		}
		vessels.Set(fetched)
		list = fetched
	}

	options := make([]VesselOption, 0, len(list))
	for _, v := range list {
		options = append(options, VesselOption{ID: v.ID, Label: v.Label()})
	}
	form.Vessels = options
}
