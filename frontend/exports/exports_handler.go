package exports

import (
	"encoding/csv"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/data-center-bgp/po-bunker/infrastructure/backend"
	"github.com/data-center-bgp/po-bunker/models"
)

// exportPageSize is the page size used when walking the full listing.
const exportPageSize = 100

// OrdersExportCSVHandler streams every purchase order as CSV, walking the
// paginated listing sequentially.
func OrdersExportCSVHandler(client *backend.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orders, err := fetchAllOrders(r, client)
		if err != nil {
			exportError(w, err)
			return
		}

		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="orders.csv"`)

		cw := csv.NewWriter(w)
		_ = cw.Write([]string{"PO Number", "PO Type", "Order Date", "Planned Date", "Customer", "Vessel", "Product", "Quantity", "Unit Price", "Status"})
		for _, order := range orders {
			_ = cw.Write(orderCSVRecord(order))
		}
		cw.Flush()
	}
}

// OrderVoucherPDFHandler renders one order as a PDF voucher with a barcode
// of the PO number.
func OrderVoucherPDFHandler(client *backend.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orderID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil || orderID <= 0 {
			http.Error(w, "invalid order id", http.StatusBadRequest)
			return
		}

		order, found, err := findOrderByID(r, client, orderID)
		if err != nil {
			exportError(w, err)
			return
		}
		if !found {
			http.Error(w, "order not found", http.StatusNotFound)
			return
		}

		pdfBytes, err := renderOrderVoucherPDF(order)
		if err != nil {
			http.Error(w, "failed to render order voucher", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="order-%d.pdf"`, order.ID))
		_, _ = w.Write(pdfBytes)
	}
}

// fetchAllOrders walks pages 1..totalPages in order, so a page fetched
// later never clobbers an earlier one.
func fetchAllOrders(r *http.Request, client *backend.Client) ([]models.PurchaseOrder, error) {
	var all []models.PurchaseOrder
	for page := 1; ; page++ {
		resp, err := client.ListOrders(r.Context(), page, exportPageSize)
		if err != nil {
			return nil, err
		}
		all = append(all, resp.PurchaseOrders...)

		totalPages := (resp.TotalCount + exportPageSize - 1) / exportPageSize
		if page >= totalPages || len(resp.PurchaseOrders) == 0 {
			return all, nil
		}
	}
}

func findOrderByID(r *http.Request, client *backend.Client, orderID int64) (models.PurchaseOrder, bool, error) {
	orders, err := fetchAllOrders(r, client)
	if err != nil {
		return models.PurchaseOrder{}, false, err
	}
	for _, order := range orders {
		if order.ID == orderID {
			return order, true, nil
		}
	}
	return models.PurchaseOrder{}, false, nil
}

func orderCSVRecord(order models.PurchaseOrder) []string {
	vessel, product, qty, price := "", "", "", ""
	if len(order.Lines) > 0 {
		first := order.Lines[0]
		vessel = first.Vessel.Name
		product = first.Product.Name
		qty = strconv.FormatFloat(first.Quantity, 'f', -1, 64)
		price = strconv.FormatFloat(first.PriceUnit, 'f', -1, 64)
	}
	return []string{
		order.Name,
		order.OrderType,
		order.DateOrder,
		order.DatePlanned,
		order.Partner.Name,
		vessel,
		product,
		qty,
		price,
		order.State,
	}
}

func exportError(w http.ResponseWriter, err error) {
	status := http.StatusBadGateway
	if errors.Is(err, backend.ErrUnauthorized) || errors.Is(err, backend.ErrNoToken) {
		status = http.StatusUnauthorized
	}
	http.Error(w, err.Error(), status)
}
