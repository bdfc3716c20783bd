// Package driving defines interfaces that external actors (CLI, TUI)
// use to interact with core services. These are the "driving" ports in
// hexagonal architecture terminology - they drive the application.
//
// Implementations live in internal/core/services.
package driving
