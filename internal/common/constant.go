// Package common contains constants shared by the blindmatch client packages.
package common

const (
	// AuthorizationHeaderName carries the bearer token on outbound API calls.
	AuthorizationHeaderName = "Authorization"

	// RequestIDHeaderName carries a per-call identifier for log correlation.
	RequestIDHeaderName = "X-Request-ID"

	// TokenKey is the metadata key holding the persisted session token.
	TokenKey = "token"
)
