// Package metadata is the client's key-value persistence: a handful of named
// byte values that must survive process restarts (the session token).
package metadata

import (
	"context"
)

// Repository stores values by key. Get returns (nil, nil) for a missing key;
// Delete of a missing key is not an error.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
