package handler

import (
	"encoding/json"
	"net/http"

	"marketsquare/internal/model"
	"marketsquare/internal/service"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ShopHandler handles shop-related HTTP requests.
type ShopHandler struct {
	service service.ShopService
	logger  zerolog.Logger
}

// NewShopHandler creates a new shop handler.
func NewShopHandler(service service.ShopService, logger zerolog.Logger) *ShopHandler {
	return &ShopHandler{
		service: service,
		logger:  logger.With().Str("handler", "shop").Logger(),
	}
}

// Register handles POST /api/shops requests.
func (h *ShopHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req model.ShopRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	shop, err := h.service.Register(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err, "failed to register shop", h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, shop)
}

// GetByID handles GET /api/shops/{id} requests.
func (h *ShopHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	shopID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid shop ID format", h.logger)
		return
	}

	shop, err := h.service.GetByID(r.Context(), shopID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to retrieve shop", h.logger)
		return
	}

	if shop == nil {
		writeError(w, http.StatusNotFound, "shop not found", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, shop)
}

// Analytics handles GET /api/shops/{id}/analytics requests.
func (h *ShopHandler) Analytics(w http.ResponseWriter, r *http.Request) {
	shopID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid shop ID format", h.logger)
		return
	}

	analytics, err := h.service.Analytics(r.Context(), shopID)
	if err != nil {
		writeServiceError(w, err, "failed to aggregate analytics", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, analytics)
}
