package rest

import (
	"net/http"
	"strconv"

	"github.com/heartmarshall/eventorias-backend/internal/adapter/memory"
)

type blobReader interface {
	Get(key string) (memory.Blob, bool)
}

// BlobHandler serves objects held by the in-memory blob driver so uploaded
// URLs resolve in development setups.
type BlobHandler struct {
	blobs blobReader
}

// NewBlobHandler creates a BlobHandler.
func NewBlobHandler(blobs blobReader) *BlobHandler {
	return &BlobHandler{blobs: blobs}
}

// Get handles GET /blobs/{key...}.
func (h *BlobHandler) Get(w http.ResponseWriter, r *http.Request) {
	b, ok := h.blobs.Get(r.PathValue("key"))
	if !ok {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	w.Header().Set("Content-Type", b.ContentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(b.Data)))
	w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	w.WriteHeader(http.StatusOK)
	w.Write(b.Data) //nolint:errcheck
}
