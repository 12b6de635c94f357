package workflow

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lglucin/didero-takehome/internal/domain"
	apperrors "github.com/lglucin/didero-takehome/internal/errors"
)

// Client drives the order resource API and the supplier/item catalog for
// the order-entry workflow. It owns no server state: each call issues
// exactly one request and reflects exactly one response or one error.
// There is no caching, no retry and no optimistic update.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

func NewClient(baseURL string, logger *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
		logger:  logger,
	}
}

func (c *Client) ListOrders(ctx context.Context) ([]domain.PurchaseOrder, error) {
	var orders []domain.PurchaseOrder
	if err := c.do(ctx, http.MethodGet, "/orders", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// GetOrder returns nil without an error when the id is unknown; the API
// signals absence with a null data payload, not a fault.
func (c *Client) GetOrder(ctx context.Context, id int64) (*domain.PurchaseOrder, error) {
	var order *domain.PurchaseOrder
	if err := c.do(ctx, http.MethodGet, "/orders/"+strconv.FormatInt(id, 10), nil, &order); err != nil {
		return nil, err
	}
	return order, nil
}

func (c *Client) CreateOrder(ctx context.Context, order *domain.PurchaseOrder) (*domain.PurchaseOrder, error) {
	var created domain.PurchaseOrder
	if err := c.do(ctx, http.MethodPost, "/orders", order, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) PatchOrder(ctx context.Context, id int64, patch domain.OrderPatch) (*domain.PurchaseOrder, error) {
	var merged domain.PurchaseOrder
	if err := c.do(ctx, http.MethodPatch, "/orders/"+strconv.FormatInt(id, 10), patch, &merged); err != nil {
		return nil, err
	}
	return &merged, nil
}

// ChangeStatus is the single-field patch behind the status dropdown.
func (c *Client) ChangeStatus(ctx context.Context, id int64, status domain.OrderStatus) (*domain.PurchaseOrder, error) {
	return c.PatchOrder(ctx, id, domain.OrderPatch{OrderStatus: &status})
}

func (c *Client) DeleteOrder(ctx context.Context, id int64) (*domain.PurchaseOrder, error) {
	var removed domain.PurchaseOrder
	if err := c.do(ctx, http.MethodDelete, "/orders/"+strconv.FormatInt(id, 10), nil, &removed); err != nil {
		return nil, err
	}
	return &removed, nil
}

func (c *Client) ListSuppliers(ctx context.Context) ([]domain.Supplier, error) {
	var suppliers []domain.Supplier
	if err := c.do(ctx, http.MethodGet, "/suppliers", nil, &suppliers); err != nil {
		return nil, err
	}
	return suppliers, nil
}

func (c *Client) ListSupplierItems(ctx context.Context, supplierID int64) ([]domain.Item, error) {
	var items []domain.Item
	if err := c.do(ctx, http.MethodGet, "/suppliers/"+strconv.FormatInt(supplierID, 10)+"/items", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// do issues one request and decodes the {data}/{error} envelope into out.
// Non-2xx responses come back as the typed errors the API maps from.
func (c *Client) do(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.New().String())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("request failed", zap.String("method", method), zap.String("path", path), zap.Error(err))
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode >= 400 {
		return c.decodeError(resp.StatusCode, raw)
	}

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return fmt.Errorf("decoding response envelope: %w", err)
	}

	if out == nil || len(envelope.Data) == 0 || string(envelope.Data) == "null" {
		return nil
	}

	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("decoding response data: %w", err)
	}

	return nil
}

func (c *Client) decodeError(status int, raw []byte) error {
	var payload struct {
		Error   string                       `json:"error"`
		Message string                       `json:"message"`
		Details []apperrors.ValidationDetail `json:"details"`
	}
	_ = json.Unmarshal(raw, &payload)

	message := payload.Message
	if message == "" {
		message = payload.Error
	}
	if message == "" {
		message = http.StatusText(status)
	}

	switch status {
	case http.StatusNotFound:
		return apperrors.NewNotFoundError(message)
	case http.StatusBadRequest:
		return apperrors.NewValidationError(message, payload.Details...)
	case http.StatusConflict:
		return apperrors.NewConflictError(message)
	default:
		return apperrors.NewInternalError(message, nil)
	}
}
