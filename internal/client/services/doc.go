// Package services contains the typed wrappers around each REST resource
// group of the dating API. Services shape requests and unwrap response
// envelopes; they hold no state and perform no retries.
package services
