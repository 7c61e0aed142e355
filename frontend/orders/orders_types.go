package orders

import "github.com/data-center-bgp/po-bunker/frontend/shared/nav"

// OrderRow is one rendered table row. Summary columns come from the first
// order line.
type OrderRow struct {
	ID          int64
	Name        string
	OrderType   string
	DateOrder   string
	DatePlanned string
	Customer    string
	VesselName  string
	ProductName string
	Quantity    string
	State       string
}

// VesselOption is one entry of the form's vessel selector.
type VesselOption struct {
	ID    int64
	Label string
}

// FormData drives the create-order modal.
type FormData struct {
	Open         bool
	Values       FormValues
	Error        string
	Vessels      []VesselOption
	VesselsError string
}

// PageData drives the orders page.
type PageData struct {
	Nav        nav.TopNavData
	Window     Window
	Rows       []OrderRow
	FetchError string
	Status     string
	Form       FormData
}
