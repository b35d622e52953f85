package handler

import (
	"encoding/json"
	"net/http"

	"marketsquare/internal/model"
	"marketsquare/internal/service"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// AddressHandler handles address-related HTTP requests.
type AddressHandler struct {
	service service.AddressService
	logger  zerolog.Logger
}

// NewAddressHandler creates a new address handler.
func NewAddressHandler(service service.AddressService, logger zerolog.Logger) *AddressHandler {
	return &AddressHandler{
		service: service,
		logger:  logger.With().Str("handler", "address").Logger(),
	}
}

// Create handles POST /api/addresses requests.
func (h *AddressHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.AddressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	address, err := h.service.Create(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err, "failed to create address", h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, address)
}

// List handles GET /api/addresses?userId= requests.
func (h *AddressHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(r.URL.Query().Get("userId"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "userId query parameter is required", h.logger)
		return
	}

	addresses, err := h.service.ListByUser(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to retrieve addresses", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, addresses)
}

// Update handles PUT /api/addresses/{id} requests.
func (h *AddressHandler) Update(w http.ResponseWriter, r *http.Request) {
	addressID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid address ID format", h.logger)
		return
	}

	var req model.AddressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	address, err := h.service.Update(r.Context(), addressID, &req)
	if err != nil {
		writeServiceError(w, err, "failed to update address", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, address)
}

// Delete handles DELETE /api/addresses/{id} requests.
func (h *AddressHandler) Delete(w http.ResponseWriter, r *http.Request) {
	addressID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid address ID format", h.logger)
		return
	}

	if err := h.service.Delete(r.Context(), addressID); err != nil {
		writeServiceError(w, err, "failed to delete address", h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
