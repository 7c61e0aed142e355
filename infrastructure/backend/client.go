// Package backend is the REST client for the external purchase-order API.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/data-center-bgp/po-bunker/infrastructure/tokenstore"
	"github.com/data-center-bgp/po-bunker/models"
)

// Sentinel failures the views branch on. The texts are shown to the
// operator verbatim.
var (
	ErrNoToken      = errors.New("No access token found")
	ErrUnauthorized = errors.New("Unauthorized. Please login again.")
)

// Client issues requests against the order backend, attaching the stored
// bearer token to authenticated calls. The token is read once at call start.
type Client struct {
	baseURL string
	db      string
	httpc   *http.Client
	tokens  *tokenstore.Store
}

// New returns a client for the backend at baseURL. db is the backend
// database name sent with login requests.
func New(baseURL, db string, tokens *tokenstore.Store) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		db:      db,
		httpc:   &http.Client{Timeout: 30 * time.Second},
		tokens:  tokens,
	}
}

// Login authenticates against the backend. On a non-2xx response the
// backend's message/error field is surfaced, falling back to a fixed
// invalid-credentials text when the body is not parseable.
func (c *Client) Login(ctx context.Context, email, password string) (models.LoginResponse, error) {
	body := map[string]string{
		"login":    email,
		"password": password,
		"db":       c.db,
	}

	var out models.LoginResponse
	resp, raw, err := c.do(ctx, http.MethodPost, "/api/login2", body, false)
	if err != nil {
		return out, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return out, errors.New(parseErrorMessage(raw, "Invalid email or password"))
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("decode login response: %w", err)
	}
	return out, nil
}

// ListOrders fetches one page of purchase orders.
func (c *Client) ListOrders(ctx context.Context, page, limit int) (models.PurchaseOrdersResponse, error) {
	var out models.PurchaseOrdersResponse
	path := "/api/purchase-orders?page=" + strconv.Itoa(page) + "&limit=" + strconv.Itoa(limit)
	resp, raw, err := c.do(ctx, http.MethodGet, path, nil, true)
	if err != nil {
		return out, err
	}
	if err := authedFailure(resp.StatusCode, raw, "Failed to fetch orders"); err != nil {
		return out, err
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("decode orders response: %w", err)
	}
	return out, nil
}

// CreateOrder submits a new purchase order. All referenced ids must be
// resolved integers and dates ISO-8601 timestamps.
func (c *Client) CreateOrder(ctx context.Context, req models.CreateOrderRequest) (models.PurchaseOrder, error) {
	var out models.PurchaseOrder
	resp, raw, err := c.do(ctx, http.MethodPost, "/api/purchase-orders", req, true)
	if err != nil {
		return out, err
	}
	if err := authedFailure(resp.StatusCode, raw, "Failed to create order"); err != nil {
		return out, err
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("decode created order: %w", err)
	}
	return out, nil
}

// ListVessels fetches the vessel registry for the order form selector.
func (c *Client) ListVessels(ctx context.Context) ([]models.Vessel, error) {
	resp, raw, err := c.do(ctx, http.MethodGet, "/api/shipping_vessels", nil, true)
	if err != nil {
		return nil, err
	}
	if err := authedFailure(resp.StatusCode, raw, "Failed to fetch vessels"); err != nil {
		return nil, err
	}
	var out models.VesselsResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode vessels response: %w", err)
	}
	return out.ShippingVessels, nil
}

func (c *Client) do(ctx context.Context, method, path string, body any, authed bool) (*http.Response, []byte, error) {
	var token string
	if authed {
		var ok bool
		token, ok = c.tokens.Token()
		if !ok {
			return nil, nil, ErrNoToken
		}
	}

	var payload io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, nil, fmt.Errorf("encode request body: %w", err)
		}
		payload = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return nil, nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if authed {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("call backend: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("read backend response: %w", err)
	}

	slog.Debug("backend call",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.String("request_id", requestID))
	return resp, raw, nil
}

// authedFailure maps a non-2xx status on an authenticated call: 401 keeps
// its distinct expired-session message, everything else surfaces the raw
// body text or the per-operation fallback.
func authedFailure(status int, raw []byte, fallback string) error {
	if status >= 200 && status <= 299 {
		return nil
	}
	if status == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	if text := strings.TrimSpace(string(raw)); text != "" {
		return errors.New(text)
	}
	return errors.New(fallback)
}

func parseErrorMessage(raw []byte, fallback string) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
	}
	return fallback
}
