package rest

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/heartmarshall/eventorias-backend/internal/domain"
)

// multipartMemory is the part of a form kept in memory; larger files spill
// to temporary files.
const multipartMemory = 8 << 20

// parseMultipart limits the body to maxBytes and parses the form. It writes
// the error response itself and reports whether the handler may continue.
func parseMultipart(w http.ResponseWriter, r *http.Request, maxBytes int64) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return false
		}
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return false
	}
	return true
}

// formFile returns the named upload or nil when the field is absent. The
// returned closer must be called once the file has been consumed.
func formFile(r *http.Request, field string) (*domain.File, func(), error) {
	f, header, err := r.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, func() {}, nil
	}
	if err != nil {
		return nil, func() {}, err
	}
	return toDomainFile(f, header), func() { f.Close() }, nil //nolint:errcheck
}

func toDomainFile(f multipart.File, header *multipart.FileHeader) *domain.File {
	ct := header.Header.Get("Content-Type")
	if ct == "" {
		ct = "application/octet-stream"
	}
	return &domain.File{Name: header.Filename, ContentType: ct, Body: f}
}
