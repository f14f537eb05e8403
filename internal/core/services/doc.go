// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// Every service recovers expected domain failures (not found, empty
// ledger, challenge mismatch) into typed errors so driving adapters
// can relay them conversationally; nothing in this package panics.
package services
