// Package client is the transport layer of the blindmatch client.
//
// # Overview
//
// The package provides:
//  1. A transport contract (see the Client interface): one call issues one
//     request against a path relative to the configured base URL.
//  2. A net/http implementation (see HTTPClient) that encodes JSON bodies,
//     attaches the persisted bearer token, tags each call with a request id
//     and decodes JSON responses.
//
// HTTPClient does not retry, rate-limit or cache. Every call is a single
// round trip and failures reach the caller unchanged.
//
// # Error Handling
//
// Transport failures (no response at all) wrap ErrUnavailable. Responses with a
// non-2xx status become *RequestError, carrying the status and the optional
// "message" field of the body; for 401 and 403 errors.Is(err, ErrUnauthorized)
// also holds.
package client
