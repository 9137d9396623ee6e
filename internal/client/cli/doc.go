// Package cli provides the interactive blindmatch command-line client.
//
// It wires configuration, the local database, the API client and the state
// store, then runs a REPL whose commands drive store operations and print
// the resulting state. It stands in for the mobile screens: every command
// reads its result back from a store snapshot rather than from the API.
//
// Commands:
//   - register / login / logout
//   - profile, edit, location
//   - match, find, extend
//   - messages, send <text>
//   - interests, select <id>, unselect <id>
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
