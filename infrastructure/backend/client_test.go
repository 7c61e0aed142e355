package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/data-center-bgp/po-bunker/infrastructure/sqlite"
	"github.com/data-center-bgp/po-bunker/infrastructure/tokenstore"
	"github.com/data-center-bgp/po-bunker/models"
)

func newTestTokens(t *testing.T) *tokenstore.Store {
	t.Helper()
	db, err := sqlite.OpenDB(filepath.Join(t.TempDir(), "client-test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	if err := sqlite.ApplyMigrations(context.Background(), db); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	tokens, err := tokenstore.Open(context.Background(), db)
	if err != nil {
		t.Fatalf("open token store: %v", err)
	}
	return tokens
}

func TestLoginSendsCredentialsAndDB(t *testing.T) {
	var gotBody map[string]string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/login2" || r.Method != http.MethodPost {
			t.Fatalf("unexpected call %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Fatalf("content type = %q", ct)
		}
		decodeJSONBody(t, r, &gotBody)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token": "tok-1", "user_id": 5, "login": "ops@example.com"}`))
	}))
	defer ts.Close()

	client := New(ts.URL, "po-bunker", newTestTokens(t))
	resp, err := client.Login(context.Background(), "ops@example.com", "secret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if resp.AccessToken != "tok-1" || resp.UserID != 5 || resp.Login != "ops@example.com" {
		t.Fatalf("login response = %+v", resp)
	}
	if gotBody["login"] != "ops@example.com" || gotBody["password"] != "secret" || gotBody["db"] != "po-bunker" {
		t.Fatalf("login body = %+v", gotBody)
	}
}

func TestLoginFailureSurfacesBackendMessage(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"message": "account locked"}`))
	}))
	defer ts.Close()

	client := New(ts.URL, "po-bunker", newTestTokens(t))
	_, err := client.Login(context.Background(), "a@b.c", "bad")
	if err == nil || err.Error() != "account locked" {
		t.Fatalf("err = %v, want backend message", err)
	}
}

func TestLoginFailureFallsBackOnUnparseableBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`<html>nope</html>`))
	}))
	defer ts.Close()

	client := New(ts.URL, "po-bunker", newTestTokens(t))
	_, err := client.Login(context.Background(), "a@b.c", "bad")
	if err == nil || err.Error() != "Invalid email or password" {
		t.Fatalf("err = %v, want fixed fallback", err)
	}
}

func TestListOrdersRequiresTokenBeforeAnyCall(t *testing.T) {
	called := false
	ts := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		called = true
	}))
	defer ts.Close()

	client := New(ts.URL, "po-bunker", newTestTokens(t))
	_, err := client.ListOrders(context.Background(), 1, 10)
	if !errors.Is(err, ErrNoToken) {
		t.Fatalf("err = %v, want ErrNoToken", err)
	}
	if called {
		t.Fatalf("missing token must fail before the network call")
	}
}

func TestListOrdersAttachesBearerAndDecodesPage(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok-2" {
			t.Fatalf("authorization = %q", got)
		}
		if r.URL.Query().Get("page") != "2" || r.URL.Query().Get("limit") != "10" {
			t.Fatalf("query = %s", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"purchase_orders": [{"id": 1, "name": "PO001", "partner_id": [2, "ABC Shipping"], "order_type": "bbm", "state": "purchase", "order_line": []}],
			"total_count": 25, "page": 2, "limit": 10
		}`))
	}))
	defer ts.Close()

	tokens := newTestTokens(t)
	if err := tokens.SetSession(context.Background(), "tok-2", 1, "a@b.c"); err != nil {
		t.Fatalf("seed token: %v", err)
	}

	client := New(ts.URL, "po-bunker", tokens)
	resp, err := client.ListOrders(context.Background(), 2, 10)
	if err != nil {
		t.Fatalf("list orders: %v", err)
	}
	if resp.TotalCount != 25 || len(resp.PurchaseOrders) != 1 {
		t.Fatalf("response = %+v", resp)
	}
	if resp.PurchaseOrders[0].Partner.Name != "ABC Shipping" {
		t.Fatalf("partner ref = %+v", resp.PurchaseOrders[0].Partner)
	}
}

func TestUnauthorizedKeepsItsDistinctMessage(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer ts.Close()

	tokens := newTestTokens(t)
	if err := tokens.SetSession(context.Background(), "stale", 1, "a@b.c"); err != nil {
		t.Fatalf("seed token: %v", err)
	}

	client := New(ts.URL, "po-bunker", tokens)
	_, err := client.ListOrders(context.Background(), 1, 10)
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("err = %v, want ErrUnauthorized", err)
	}
	if err.Error() != "Unauthorized. Please login again." {
		t.Fatalf("message = %q", err.Error())
	}
}

func TestServerFailureSurfacesRawBodyThenFallback(t *testing.T) {
	body := "backend exploded"
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(body))
	}))
	defer ts.Close()

	tokens := newTestTokens(t)
	if err := tokens.SetSession(context.Background(), "tok", 1, "a@b.c"); err != nil {
		t.Fatalf("seed token: %v", err)
	}

	client := New(ts.URL, "po-bunker", tokens)
	_, err := client.ListOrders(context.Background(), 1, 10)
	if err == nil || err.Error() != "backend exploded" {
		t.Fatalf("err = %v, want raw body", err)
	}

	body = ""
	_, err = client.ListOrders(context.Background(), 1, 10)
	if err == nil || err.Error() != "Failed to fetch orders" {
		t.Fatalf("err = %v, want fallback", err)
	}
}

func TestCreateOrderPostsTypedBody(t *testing.T) {
	var got models.CreateOrderRequest
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/purchase-orders" {
			t.Fatalf("unexpected call %s %s", r.Method, r.URL.Path)
		}
		decodeJSONBody(t, r, &got)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": 99, "name": "PO099", "state": "draft", "partner_id": false, "order_line": []}`))
	}))
	defer ts.Close()

	tokens := newTestTokens(t)
	if err := tokens.SetSession(context.Background(), "tok", 1, "a@b.c"); err != nil {
		t.Fatalf("seed token: %v", err)
	}

	client := New(ts.URL, "po-bunker", tokens)
	created, err := client.CreateOrder(context.Background(), models.CreateOrderRequest{
		PartnerID:   3,
		OrderType:   "bbm",
		DateOrder:   "2025-11-10T00:00:00Z",
		DatePlanned: "2025-11-12T00:00:00Z",
		Lines:       []models.CreateOrderLine{{ProductID: 9, Quantity: 12.5, PriceUnit: 3.5, VesselID: 4}},
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	if created.ID != 99 || created.Name != "PO099" {
		t.Fatalf("created = %+v", created)
	}
	if got.PartnerID != 3 || len(got.Lines) != 1 || got.Lines[0].Quantity != 12.5 {
		t.Fatalf("posted body = %+v", got)
	}
}

func TestListVesselsDecodesRegistry(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/shipping_vessels" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"shipping_vessels": [
			{"id": 4, "name": "MV Harmony", "type_id": 1, "type_name": "Tug Boat", "call_sign": false, "active": true}
		]}`))
	}))
	defer ts.Close()

	tokens := newTestTokens(t)
	if err := tokens.SetSession(context.Background(), "tok", 1, "a@b.c"); err != nil {
		t.Fatalf("seed token: %v", err)
	}

	client := New(ts.URL, "po-bunker", tokens)
	vessels, err := client.ListVessels(context.Background())
	if err != nil {
		t.Fatalf("list vessels: %v", err)
	}
	if len(vessels) != 1 || vessels[0].Label() != "Tug Boat - MV Harmony" {
		t.Fatalf("vessels = %+v", vessels)
	}
	if vessels[0].CallSign != "" {
		t.Fatalf("call_sign should decode false as empty, got %q", vessels[0].CallSign)
	}
}

func decodeJSONBody(t *testing.T, r *http.Request, into any) {
	t.Helper()
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(into); err != nil {
		t.Fatalf("decode request body: %v", err)
	}
}
