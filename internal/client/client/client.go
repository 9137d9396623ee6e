package client

import (
	"context"
)

// Client issues one request against the REST API.
//
// body, when non-nil, is encoded as JSON. out, when non-nil, receives the
// decoded JSON response.
type Client interface {
	Do(ctx context.Context, method, path string, body, out any) error
}

// TokenSource yields the bearer token to attach; "" means none.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}
