package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/uptrace/bun"
)

// Ref is the backend's two-element [id, "name"] relation encoding. The
// backend sends false (or null) when the relation is unset.
type Ref struct {
	ID   int64
	Name string
}

// IsSet reports whether the backend provided a relation value.
func (r Ref) IsSet() bool {
	return r.ID != 0 || r.Name != ""
}

func (r *Ref) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("false")) || bytes.Equal(trimmed, []byte("null")) {
		*r = Ref{}
		return nil
	}

	var parts []json.RawMessage
	if err := json.Unmarshal(trimmed, &parts); err != nil {
		return fmt.Errorf("decode ref pair: %w", err)
	}
	out := Ref{}
	if len(parts) > 0 {
		if err := json.Unmarshal(parts[0], &out.ID); err != nil {
			return fmt.Errorf("decode ref id: %w", err)
		}
	}
	if len(parts) > 1 {
		if err := json.Unmarshal(parts[1], &out.Name); err != nil {
			return fmt.Errorf("decode ref name: %w", err)
		}
	}
	*r = out
	return nil
}

func (r Ref) MarshalJSON() ([]byte, error) {
	if !r.IsSet() {
		return []byte("false"), nil
	}
	return json.Marshal([]any{r.ID, r.Name})
}

// OptString is a string field the backend encodes as either a string or the
// literal false. Absence decodes to the empty string.
type OptString string

func (s *OptString) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("false")) || bytes.Equal(trimmed, []byte("null")) {
		*s = ""
		return nil
	}
	var v string
	if err := json.Unmarshal(trimmed, &v); err != nil {
		return fmt.Errorf("decode optional string: %w", err)
	}
	*s = OptString(v)
	return nil
}

func (s OptString) String() string {
	return string(s)
}

// OrderLine is one product/vessel line of a purchase order. Line order is
// display-significant: summaries show the first line.
type OrderLine struct {
	Product   Ref     `json:"product_id"`
	Quantity  float64 `json:"product_qty"`
	PriceUnit float64 `json:"price_unit"`
	Vessel    Ref     `json:"vessel_id"`
}

// PurchaseOrder is a bunker supply order as the backend returns it.
// Read-only to the dashboard except for creation.
type PurchaseOrder struct {
	ID          int64       `json:"id"`
	Name        string      `json:"name"`
	Partner     Ref         `json:"partner_id"`
	OrderType   string      `json:"order_type"`
	DateOrder   string      `json:"date_order"`
	DatePlanned string      `json:"date_planned"`
	State       string      `json:"state"`
	Lines       []OrderLine `json:"order_line"`
}

// Vessel is a ship from the backend registry, fetched read-only for the
// order form selector.
type Vessel struct {
	ID                  int64     `json:"id"`
	Name                string    `json:"name"`
	TypeID              int64     `json:"type_id"`
	TypeName            string    `json:"type_name"`
	GrossTonnage        float64   `json:"gross_tonage"`
	CallSign            OptString `json:"call_sign"`
	IMONumber           OptString `json:"imo_no"`
	MMSINumber          OptString `json:"mmsi_no"`
	RegisteredYear      OptString `json:"registered_year"`
	RegisteredPlace     OptString `json:"registered_place"`
	OperatorID          *int64    `json:"operator_id"`
	OperatorName        *string   `json:"operator_name"`
	OwnerID             *int64    `json:"owner_id"`
	OwnerName           *string   `json:"owner_name"`
	BusinessUnitID      *int64    `json:"bussines_unit_id"`
	BusinessUnitName    *string   `json:"bussines_unit_id_name"`
	FlagID              *int64    `json:"flag_id"`
	FlagName            *string   `json:"flag_name"`
	LastDocking         *string   `json:"last_docking"`
	IntermediateDocking *string   `json:"intermediate_docking"`
	AnnualDocking       *string   `json:"annual_docking"`
	StatusDocOffice     string    `json:"status_doc_office"`
	Active              bool      `json:"active"`
	CreateDate          string    `json:"create_date"`
	WriteDate           string    `json:"write_date"`
}

// Label combines the vessel type and name for selector display.
func (v Vessel) Label() string {
	if v.TypeName == "" {
		return v.Name
	}
	return v.TypeName + " - " + v.Name
}

// CreateOrderLine is one line of an order creation request. All ids are
// resolved integers.
type CreateOrderLine struct {
	ProductID int64   `json:"product_id"`
	Quantity  float64 `json:"product_qty"`
	PriceUnit float64 `json:"price_unit"`
	VesselID  int64   `json:"vessel_id"`
}

// CreateOrderRequest is the order creation body. Dates are ISO-8601
// timestamps.
type CreateOrderRequest struct {
	PartnerID   int64             `json:"partner_id"`
	OrderType   string            `json:"order_type"`
	DateOrder   string            `json:"date_order"`
	DatePlanned string            `json:"date_planned"`
	Lines       []CreateOrderLine `json:"order_lines"`
}

// PurchaseOrdersResponse is one page of orders.
type PurchaseOrdersResponse struct {
	PurchaseOrders []PurchaseOrder `json:"purchase_orders"`
	TotalCount     int             `json:"total_count"`
	Page           int             `json:"page"`
	Limit          int             `json:"limit"`
}

// VesselsResponse wraps the vessel registry listing.
type VesselsResponse struct {
	ShippingVessels []Vessel `json:"shipping_vessels"`
}

// LoginResponse is the backend's answer to a successful login.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	UserID      int64  `json:"user_id"`
	Login       string `json:"login"`
}

// Session is the dashboard's backend identity: the bearer token plus the
// user it belongs to. Token presence implies user presence; the triple is
// written and cleared atomically.
type Session struct {
	Token  string
	UserID int64
	Email  string
}

// TokenEntry is one persisted key/value row of the token store.
type TokenEntry struct {
	bun.BaseModel `bun:"table:token_store,alias:ts"`

	Key       string    `bun:"key,pk"`
	Value     string    `bun:"value,notnull"`
	UpdatedAt time.Time `bun:"updated_at,notnull,default:current_timestamp"`
}

// ActivityLog records operator actions taken through the dashboard.
type ActivityLog struct {
	bun.BaseModel `bun:"table:activity_log,alias:al"`

	ID        int64     `bun:"id,pk,autoincrement"`
	UserID    int64     `bun:"user_id,notnull"`
	Action    string    `bun:"action,notnull"`
	Detail    string    `bun:"detail"`
	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
}
