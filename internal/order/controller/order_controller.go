package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lglucin/didero-takehome/internal/domain"
	apperrors "github.com/lglucin/didero-takehome/internal/errors"
)

type OrderRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.PurchaseOrder, error)
	ListAll(ctx context.Context) ([]*domain.PurchaseOrder, error)
	Insert(ctx context.Context, order *domain.PurchaseOrder) error
	MergePatch(ctx context.Context, id int64, patch domain.OrderPatch) (*domain.PurchaseOrder, error)
	Remove(ctx context.Context, id int64) (*domain.PurchaseOrder, error)
}

type LifecyclePolicy interface {
	Authorize(current, requested domain.OrderStatus) error
}

type OrderController struct {
	repo   OrderRepository
	policy LifecyclePolicy
	logger *zap.Logger
}

func NewOrderController(repo OrderRepository, policy LifecyclePolicy, logger *zap.Logger) *OrderController {
	return &OrderController{
		repo:   repo,
		policy: policy,
		logger: logger,
	}
}

type dataResponse struct {
	Data interface{} `json:"data"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// HandleList returns every order currently held. An empty store is a
// 200 with an empty data array, never an error.
func (c *OrderController) HandleList(w http.ResponseWriter, r *http.Request) {
	orders, err := c.repo.ListAll(r.Context())
	if err != nil {
		c.handleError(w, err, c.logger)
		return
	}

	c.writeJSON(w, http.StatusOK, dataResponse{Data: orders})
}

// HandleGet returns the order or a null data payload when the id is
// unknown. A well-formed miss is not a fault, to stay consistent with
// the list operation on an empty collection.
func (c *OrderController) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := c.parseID(r)
	if err != nil {
		ve, _ := apperrors.IsValidationError(err)
		c.writeValidationError(w, ve.Message, ve.Details...)
		return
	}

	order, err := c.repo.FindByID(r.Context(), id)
	if err != nil {
		if _, ok := apperrors.IsNotFoundError(err); ok {
			c.writeJSON(w, http.StatusOK, dataResponse{Data: nil})
			return
		}
		c.handleError(w, err, c.logger)
		return
	}

	c.writeJSON(w, http.StatusOK, dataResponse{Data: order})
}

// HandleCreate inserts an aggregate already assembled by the builder.
// The client validated the form before submitting, but client and API
// are independent trust domains, so the shape is validated again here.
func (c *OrderController) HandleCreate(w http.ResponseWriter, r *http.Request) {
	logger := c.logger.With(zap.String("traceId", uuid.New().String()))

	var order domain.PurchaseOrder
	if err := json.NewDecoder(r.Body).Decode(&order); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if err := c.validateNewOrder(&order); err != nil {
		ve, _ := apperrors.IsValidationError(err)
		logger.Warn("order rejected", zap.String("reason", ve.Message))
		c.writeValidationError(w, ve.Message, ve.Details...)
		return
	}

	if err := c.repo.Insert(r.Context(), &order); err != nil {
		c.handleError(w, err, logger)
		return
	}

	logger.Info("order created", zap.Int64("orderId", order.ID), zap.String("poNumber", order.PONumber))
	c.writeJSON(w, http.StatusCreated, dataResponse{Data: &order})
}

// HandlePatch merges a partial representation onto the stored aggregate.
// An empty or undecodable body is rejected outright; silently reporting
// success without mutating anything is exactly the failure mode this
// contract exists to rule out.
func (c *OrderController) HandlePatch(w http.ResponseWriter, r *http.Request) {
	logger := c.logger.With(zap.String("traceId", uuid.New().String()))

	id, err := c.parseID(r)
	if err != nil {
		ve, _ := apperrors.IsValidationError(err)
		c.writeValidationError(w, ve.Message, ve.Details...)
		return
	}

	var patch domain.OrderPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		logger.Warn("invalid PATCH body", zap.Int64("orderId", id), zap.Error(err))
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if patch.IsEmpty() {
		logger.Warn("empty PATCH body", zap.Int64("orderId", id))
		c.writeValidationError(w, "empty patch", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must contain at least one field to update",
		})
		return
	}

	if patch.OrderStatus != nil {
		current, err := c.repo.FindByID(r.Context(), id)
		if err != nil {
			c.handleError(w, err, logger)
			return
		}
		if err := c.policy.Authorize(current.OrderStatus, *patch.OrderStatus); err != nil {
			logger.Warn("status change rejected",
				zap.Int64("orderId", id),
				zap.String("from", string(current.OrderStatus)),
				zap.String("to", string(*patch.OrderStatus)),
			)
			c.handleError(w, err, logger)
			return
		}
	}

	merged, err := c.repo.MergePatch(r.Context(), id, patch)
	if err != nil {
		c.handleError(w, err, logger)
		return
	}

	logger.Info("order patched", zap.Int64("orderId", id))
	c.writeJSON(w, http.StatusOK, dataResponse{Data: merged})
}

// HandleDelete removes the aggregate permanently and returns it. There is
// no soft-delete; a repeat delete of the same id reports not-found.
func (c *OrderController) HandleDelete(w http.ResponseWriter, r *http.Request) {
	logger := c.logger.With(zap.String("traceId", uuid.New().String()))

	id, err := c.parseID(r)
	if err != nil {
		ve, _ := apperrors.IsValidationError(err)
		c.writeValidationError(w, ve.Message, ve.Details...)
		return
	}

	removed, err := c.repo.Remove(r.Context(), id)
	if err != nil {
		c.handleError(w, err, logger)
		return
	}

	logger.Info("order deleted", zap.Int64("orderId", id))
	c.writeJSON(w, http.StatusOK, dataResponse{Data: removed})
}

func (c *OrderController) parseID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, apperrors.NewValidationError("invalid id", apperrors.ValidationDetail{
			Field:   "id",
			Message: "id must be an integer",
		})
	}
	return id, nil
}

func (c *OrderController) validateNewOrder(order *domain.PurchaseOrder) error {
	var details []apperrors.ValidationDetail

	if order.ID <= 0 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "id",
			Message: "id must be a positive integer",
		})
	}
	if order.PONumber == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "poNumber",
			Message: "poNumber is required",
		})
	}
	if order.SupplierID <= 0 || order.Supplier == nil {
		details = append(details, apperrors.ValidationDetail{
			Field:   "supplier",
			Message: "a supplier is required",
		})
	}
	if len(order.Items) == 0 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "items",
			Message: "items must not be empty",
		})
	}
	for idx, li := range order.Items {
		if li.ItemID <= 0 || li.Item == nil {
			details = append(details, apperrors.ValidationDetail{
				Field:   "items[" + strconv.Itoa(idx) + "].item",
				Message: "a catalog item is required",
			})
		}
		if li.Quantity < 1 {
			details = append(details, apperrors.ValidationDetail{
				Field:   "items[" + strconv.Itoa(idx) + "].quantity",
				Message: "quantity must be a positive integer",
			})
		}
	}
	if order.OrderStatus == "" {
		order.OrderStatus = domain.OrderStatusDraft
	} else if !order.OrderStatus.IsValid() {
		details = append(details, apperrors.ValidationDetail{
			Field:   "orderStatus",
			Message: "orderStatus is not a recognized status",
		})
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("validation failed", details...)
	}

	return nil
}

func (c *OrderController) handleError(w http.ResponseWriter, err error, logger *zap.Logger) {
	if nfe, ok := apperrors.IsNotFoundError(err); ok {
		c.writeJSON(w, http.StatusNotFound, errorResponse{Error: nfe.Message})
		return
	}

	if ce, ok := apperrors.IsConflictError(err); ok {
		c.writeJSON(w, http.StatusConflict, errorResponse{Error: ce.Message})
		return
	}

	if de, ok := apperrors.IsDuplicateIDError(err); ok {
		c.writeJSON(w, http.StatusConflict, errorResponse{Error: de.Message})
		return
	}

	if ve, ok := apperrors.IsValidationError(err); ok {
		c.writeValidationError(w, ve.Message, ve.Details...)
		return
	}

	logger.Error("unexpected error", zap.Error(err))
	c.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "an unexpected error occurred"})
}

type validationErrorResponse struct {
	Error   string                       `json:"error"`
	Message string                       `json:"message"`
	Details []apperrors.ValidationDetail `json:"details"`
}

func (c *OrderController) writeValidationError(w http.ResponseWriter, message string, details ...apperrors.ValidationDetail) {
	c.writeJSON(w, http.StatusBadRequest, validationErrorResponse{
		Error:   "VALIDATION_ERROR",
		Message: message,
		Details: details,
	})
}

func (c *OrderController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
