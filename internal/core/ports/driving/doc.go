// Package driving defines interfaces that external actors (CLI, MCP
// server, TUI) use to interact with core services. These are the
// "driving" ports in hexagonal architecture terminology - they drive
// the application.
//
// Every operation returns typed errors from the domain package; no
// operation panics or surfaces raw infrastructure failures, so a
// conversational front end can always relay the failure and continue.
//
// Implementations of these interfaces live in internal/core/services.
package driving
