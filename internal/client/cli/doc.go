// Package cli provides the interactive econdash command-line client.
//
// It wires configuration, local storage, the HTTP gateway, and the
// session/dashboard/bookmark stores into an interactive REPL. Typical flow:
// restore the session from the stored credential, start a background
// refresh watcher, and execute user commands.
//
// Key commands:
//   - login / register / logout / whoami / status
//   - dashboard: refresh all four resources, render partial results
//   - today: weekday theme and its metrics (weekly reflection on weekends)
//   - lists / select <id> / marks: bookmark list coordination
//   - settings: view and update display preferences
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
package cli
