// Package dataloader provides per-request DataLoaders that batch the user
// lookups needed while rendering event lists. Loaders call the user service
// directly, so every creator avatar on a page costs one store query.
package dataloader

import (
	"context"
	"time"

	"github.com/graph-gophers/dataloader/v7"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

// photoSource resolves creator uids to avatar URLs. Unknown uids are absent
// from the result.
type photoSource interface {
	PhotoURLs(ctx context.Context, creatorIDs []string) (map[string]string, error)
}

// Loaders holds the per-request DataLoader instances.
type Loaders struct {
	CreatorPhotoByUID *dataloader.Loader[string, string]
}

// NewLoaders creates a new set of DataLoaders backed by src.
// Must be called per-request (loaders cache results within a single request).
func NewLoaders(src photoSource) *Loaders {
	return &Loaders{
		CreatorPhotoByUID: newLoader(newCreatorPhotoBatchFn(src)),
	}
}

// CreatorPhotos loads avatars for the given uids in one batch. Empty uids
// and lookup failures are left out of the map.
func (l *Loaders) CreatorPhotos(ctx context.Context, uids []string) map[string]string {
	keys := make([]string, 0, len(uids))
	for _, uid := range uids {
		if uid != "" {
			keys = append(keys, uid)
		}
	}
	out := make(map[string]string, len(keys))
	if len(keys) == 0 {
		return out
	}

	urls, errs := l.CreatorPhotoByUID.LoadMany(ctx, keys)()
	for i, key := range keys {
		if i < len(errs) && errs[i] != nil {
			continue
		}
		if i < len(urls) && urls[i] != "" {
			out[key] = urls[i]
		}
	}
	return out
}

func newLoader[V any](batchFn dataloader.BatchFunc[string, V]) *dataloader.Loader[string, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[string, V](wait),
		dataloader.WithBatchCapacity[string, V](maxBatch),
	)
}

func newCreatorPhotoBatchFn(src photoSource) dataloader.BatchFunc[string, string] {
	return func(ctx context.Context, keys []string) []*dataloader.Result[string] {
		urls, err := src.PhotoURLs(ctx, keys)
		if err != nil {
			return errorResults[string](len(keys), err)
		}
		results := make([]*dataloader.Result[string], len(keys))
		for i, key := range keys {
			results[i] = &dataloader.Result[string]{Data: urls[key]}
		}
		return results
	}
}

func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context, or nil when the
// middleware did not run.
func FromContext(ctx context.Context) *Loaders {
	l, _ := ctx.Value(loadersKey).(*Loaders)
	return l
}
