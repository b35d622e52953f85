package handler

import (
	"net/http"

	"marketsquare/internal/media"

	"github.com/rs/zerolog"
)

// maxUploadSize caps image uploads at 10 MiB.
const maxUploadSize = 10 << 20

// UploadHandler proxies image uploads to the media store.
type UploadHandler struct {
	storage media.Storage
	logger  zerolog.Logger
}

// NewUploadHandler creates a new upload handler.
func NewUploadHandler(storage media.Storage, logger zerolog.Logger) *UploadHandler {
	return &UploadHandler{
		storage: storage,
		logger:  logger.With().Str("handler", "upload").Logger(),
	}
}

// Create handles POST /api/uploads multipart requests. The image must be sent
// under the "image" form field.
func (h *UploadHandler) Create(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart request", h.logger)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusBadRequest, "image form field is required", h.logger)
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	switch contentType {
	case "image/jpeg", "image/png", "image/gif", "image/webp":
	default:
		writeError(w, http.StatusBadRequest, "unsupported image type", h.logger)
		return
	}

	url, err := h.storage.Store(r.Context(), header.Filename, contentType, file)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to store image", h.logger)
		return
	}

	h.logger.Info().
		Str("filename", header.Filename).
		Str("url", url).
		Msg("image uploaded")

	writeJSON(w, http.StatusCreated, map[string]string{"url": url})
}
