package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/eventorias-backend/pkg/ctxutil"
)

// Logger writes one "http.request" line per request. 5xx responses log at
// error level and 4xx at warn.
func Logger(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := &responseRecorder{ResponseWriter: w, status: http.StatusOK}
			began := time.Now()
			next.ServeHTTP(rw, r)

			attrs := make([]slog.Attr, 0, 7)
			attrs = append(attrs,
				slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", rw.status),
				slog.Int64("bytes", rw.written),
				slog.Duration("duration", time.Since(began)),
			)
			if rw.user != uuid.Nil {
				attrs = append(attrs, slog.String("user_id", rw.user.String()))
			}
			logger.LogAttrs(r.Context(), levelFor(rw.status), "http.request", attrs...)
		})
	}
}

func levelFor(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

// responseRecorder captures what the handler sent. Auth, running inside
// Logger, reports the resolved user through setUser.
type responseRecorder struct {
	http.ResponseWriter
	status  int
	written int64
	sent    bool
	user    uuid.UUID
}

type userRecorder interface {
	setUser(id uuid.UUID)
}

func (w *responseRecorder) setUser(id uuid.UUID) { w.user = id }

func (w *responseRecorder) WriteHeader(code int) {
	if !w.sent {
		w.status, w.sent = code, true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *responseRecorder) Write(b []byte) (int, error) {
	w.sent = true
	n, err := w.ResponseWriter.Write(b)
	w.written += int64(n)
	return n, err
}

// Flush keeps the SSE stream working behind the recorder.
func (w *responseRecorder) Flush() {
	w.sent = true
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (w *responseRecorder) Unwrap() http.ResponseWriter { return w.ResponseWriter }
