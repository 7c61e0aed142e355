package orders

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/data-center-bgp/po-bunker/models"
)

// FormValues holds the raw order form strings as submitted.
type FormValues struct {
	PartnerID   string
	OrderType   string
	DateOrder   string
	DatePlanned string
	ProductID   string
	VesselID    string
	Quantity    string
	UnitPrice   string
}

const formDateLayout = "2006-01-02"

// BuildCreateOrderRequest maps the form strings to a typed creation
// request: integer parses for the three ids, decimal parses for quantity
// and unit price, and UTC ISO-8601 timestamps for the two dates. The order
// wraps a single line.
func BuildCreateOrderRequest(v FormValues) (models.CreateOrderRequest, error) {
	var req models.CreateOrderRequest

	required := []struct {
		field string
		value string
	}{
		{"customer", v.PartnerID},
		{"order type", v.OrderType},
		{"order date", v.DateOrder},
		{"planned date", v.DatePlanned},
		{"product", v.ProductID},
		{"vessel", v.VesselID},
		{"quantity", v.Quantity},
		{"unit price", v.UnitPrice},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return req, fmt.Errorf("%s is required", r.field)
		}
	}

	partnerID, err := strconv.ParseInt(strings.TrimSpace(v.PartnerID), 10, 64)
	if err != nil {
		return req, fmt.Errorf("customer id must be a number")
	}
	productID, err := strconv.ParseInt(strings.TrimSpace(v.ProductID), 10, 64)
	if err != nil {
		return req, fmt.Errorf("product id must be a number")
	}
	vesselID, err := strconv.ParseInt(strings.TrimSpace(v.VesselID), 10, 64)
	if err != nil {
		return req, fmt.Errorf("vessel id must be a number")
	}

	qty, err := decimal.NewFromString(strings.TrimSpace(v.Quantity))
	if err != nil {
		return req, fmt.Errorf("quantity must be a number")
	}
	price, err := decimal.NewFromString(strings.TrimSpace(v.UnitPrice))
	if err != nil {
		return req, fmt.Errorf("unit price must be a number")
	}

	dateOrder, err := parseFormDate(v.DateOrder)
	if err != nil {
		return req, fmt.Errorf("order date is invalid")
	}
	datePlanned, err := parseFormDate(v.DatePlanned)
	if err != nil {
		return req, fmt.Errorf("planned date is invalid")
	}

	req = models.CreateOrderRequest{
		PartnerID:   partnerID,
		OrderType:   strings.TrimSpace(v.OrderType),
		DateOrder:   dateOrder,
		DatePlanned: datePlanned,
		Lines: []models.CreateOrderLine{
			{
				ProductID: productID,
				Quantity:  qty.InexactFloat64(),
				PriceUnit: price.InexactFloat64(),
				VesselID:  vesselID,
			},
		},
	}
	return req, nil
}

func parseFormDate(raw string) (string, error) {
	t, err := time.Parse(formDateLayout, strings.TrimSpace(raw))
	if err != nil {
		return "", err
	}
	return t.UTC().Format(time.RFC3339), nil
}
