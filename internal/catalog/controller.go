package catalog

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apperrors "github.com/lglucin/didero-takehome/internal/errors"
)

type Controller struct {
	repo   Repository
	logger *zap.Logger
}

func NewController(repo Repository, logger *zap.Logger) *Controller {
	return &Controller{
		repo:   repo,
		logger: logger,
	}
}

type dataResponse struct {
	Data interface{} `json:"data"`
}

func (c *Controller) HandleListSuppliers(w http.ResponseWriter, r *http.Request) {
	suppliers, err := c.repo.ListSuppliers(r.Context())
	if err != nil {
		c.logger.Error("listing suppliers failed", zap.Error(err))
		c.writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error": "an unexpected error occurred",
		})
		return
	}

	c.writeJSON(w, http.StatusOK, dataResponse{Data: suppliers})
}

func (c *Controller) HandleListSupplierItems(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "id")
	supplierID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		c.writeJSON(w, http.StatusBadRequest, validationErrorResponse{
			Error:   "VALIDATION_ERROR",
			Message: "invalid supplier id",
			Details: []apperrors.ValidationDetail{
				{Field: "id", Message: "id must be an integer"},
			},
		})
		return
	}

	items, err := c.repo.ListItemsBySupplier(r.Context(), supplierID)
	if err != nil {
		c.logger.Error("listing supplier items failed", zap.Int64("supplierId", supplierID), zap.Error(err))
		c.writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error": "an unexpected error occurred",
		})
		return
	}

	c.writeJSON(w, http.StatusOK, dataResponse{Data: items})
}

type validationErrorResponse struct {
	Error   string                       `json:"error"`
	Message string                       `json:"message"`
	Details []apperrors.ValidationDetail `json:"details"`
}

func (c *Controller) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
