package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestRefUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Ref
	}{
		{name: "pair", in: `[42, "PT Ocean Star"]`, want: Ref{ID: 42, Name: "PT Ocean Star"}},
		{name: "false means unset", in: `false`, want: Ref{}},
		{name: "null means unset", in: `null`, want: Ref{}},
		{name: "id only", in: `[7]`, want: Ref{ID: 7}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Ref
			if err := json.Unmarshal([]byte(tt.in), &got); err != nil {
				t.Fatalf("unmarshal %s: %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRefUnmarshalRejectsGarbage(t *testing.T) {
	var got Ref
	if err := json.Unmarshal([]byte(`"oops"`), &got); err == nil {
		t.Fatalf("expected error for non-array ref")
	}
}

func TestOptStringUnmarshal(t *testing.T) {
	var v struct {
		CallSign OptString `json:"call_sign"`
		IMO      OptString `json:"imo_no"`
	}
	if err := json.Unmarshal([]byte(`{"call_sign": "YBAB2", "imo_no": false}`), &v); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if v.CallSign != "YBAB2" {
		t.Fatalf("call_sign = %q, want YBAB2", v.CallSign)
	}
	if v.IMO != "" {
		t.Fatalf("imo_no = %q, want empty for false", v.IMO)
	}
}

func TestPurchaseOrderDecode(t *testing.T) {
	payload := `{
		"id": 12,
		"name": "PO00012",
		"partner_id": [3, "Global Marine Ltd."],
		"order_type": "bbm",
		"date_order": "2025-11-10 08:00:00",
		"date_planned": "2025-11-12 08:00:00",
		"state": "to approve",
		"order_line": [
			{"product_id": [9, "Marine Fuel Oil"], "product_qty": 500.5, "price_unit": 12.25, "vessel_id": [4, "MV Harmony"]}
		]
	}`

	var order PurchaseOrder
	if err := json.Unmarshal([]byte(payload), &order); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if order.Name != "PO00012" {
		t.Fatalf("name = %q", order.Name)
	}
	if order.Partner.Name != "Global Marine Ltd." {
		t.Fatalf("partner = %+v", order.Partner)
	}
	if len(order.Lines) != 1 {
		t.Fatalf("lines = %d, want 1", len(order.Lines))
	}
	line := order.Lines[0]
	if line.Product.ID != 9 || line.Vessel.Name != "MV Harmony" {
		t.Fatalf("line refs = %+v", line)
	}
	if line.Quantity != 500.5 || line.PriceUnit != 12.25 {
		t.Fatalf("line numbers = %+v", line)
	}
}

func TestCreateOrderRequestEncode(t *testing.T) {
	req := CreateOrderRequest{
		PartnerID:   3,
		OrderType:   "fresh_water",
		DateOrder:   "2025-11-10T00:00:00Z",
		DatePlanned: "2025-11-12T00:00:00Z",
		Lines: []CreateOrderLine{
			{ProductID: 9, Quantity: 12.5, PriceUnit: 3.75, VesselID: 4},
		},
	}
	encoded, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, want := range []string{
		`"partner_id":3`,
		`"order_type":"fresh_water"`,
		`"order_lines":[{"product_id":9,"product_qty":12.5,"price_unit":3.75,"vessel_id":4}]`,
	} {
		if !strings.Contains(string(encoded), want) {
			t.Fatalf("encoded %s missing %s", encoded, want)
		}
	}
}

func TestVesselLabel(t *testing.T) {
	v := Vessel{Name: "MV Harmony", TypeName: "Tug Boat"}
	if got := v.Label(); got != "Tug Boat - MV Harmony" {
		t.Fatalf("label = %q", got)
	}
	if got := (Vessel{Name: "MV Harmony"}).Label(); got != "MV Harmony" {
		t.Fatalf("label without type = %q", got)
	}
}
