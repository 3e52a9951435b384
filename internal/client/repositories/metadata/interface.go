// Package metadata keeps small key/value facts of the local client, such as
// the session token, in the SQLite metadata table.
package metadata

import (
	"context"
)

// Well-known keys.
const (
	KeyToken    = "token"
	KeyUsername = "username"
)

type Repository interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	SetMany(ctx context.Context, values map[string]string) error
	Delete(ctx context.Context, key string) error
	DeleteMany(ctx context.Context, keys ...string) error
}
