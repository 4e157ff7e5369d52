// Package store abstracts the slug-scoped key-value persistence that lets a
// transaction survive the external payment redirect. Implementations must
// complete writes before returning; the payment bridge relies on that
// ordering.
package store

import "context"

type Store interface {
	// Get returns the stored value and whether the key existed.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}
