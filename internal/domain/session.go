package domain

import "context"

// SessionStore is a generic key → string store for per-user session data
// (drafts, purchased tickets). Get returns ErrNotFound for missing keys.
type SessionStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}
