package handler

import (
	"encoding/json"
	"net/http"

	"marketsquare/internal/model"
	"marketsquare/internal/service"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// FavoriteHandler handles favorites-related HTTP requests.
type FavoriteHandler struct {
	service service.FavoriteService
	logger  zerolog.Logger
}

// NewFavoriteHandler creates a new favorites handler.
func NewFavoriteHandler(service service.FavoriteService, logger zerolog.Logger) *FavoriteHandler {
	return &FavoriteHandler{
		service: service,
		logger:  logger.With().Str("handler", "favorite").Logger(),
	}
}

// Add handles POST /api/favorites requests.
func (h *FavoriteHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req model.FavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	if err := h.service.Add(r.Context(), &req); err != nil {
		writeServiceError(w, err, "failed to add favorite", h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// List handles GET /api/favorites?userId= requests.
func (h *FavoriteHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(r.URL.Query().Get("userId"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "userId query parameter is required", h.logger)
		return
	}

	favorites, err := h.service.ListByUser(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to retrieve favorites", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, favorites)
}

// Remove handles DELETE /api/favorites/{productId}?userId= requests.
func (h *FavoriteHandler) Remove(w http.ResponseWriter, r *http.Request) {
	productID, err := uuid.Parse(r.PathValue("productId"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid product ID format", h.logger)
		return
	}

	userID, err := uuid.Parse(r.URL.Query().Get("userId"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "userId query parameter is required", h.logger)
		return
	}

	if err := h.service.Remove(r.Context(), userID, productID); err != nil {
		writeServiceError(w, err, "failed to remove favorite", h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
