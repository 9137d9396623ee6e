// Package store is the client's single state container.
//
// State is split into three slices, auth, match and chat, each owning one
// domain's data together with a loading flag and the last error message.
// Slices change only by folding actions; asynchronous operations are
// methods on Store that dispatch a pending action, call the API and then
// dispatch either a fulfilled or a rejected action.
//
// Actions are applied one at a time under the store's lock. Operations are
// not synchronized against each other beyond that: when two requests for
// the same slice overlap, whichever resolves last wins.
package store
