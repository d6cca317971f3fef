package dataloader

import "net/http"

// Middleware attaches fresh Loaders to every request, so batching and
// caching never cross request boundaries.
func Middleware(src photoSource) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			loaders := NewLoaders(src)
			next.ServeHTTP(w, r.WithContext(WithLoaders(r.Context(), loaders)))
		})
	}
}
