// Package driven defines the interfaces that core calls OUT to
// infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
//   - KeyValueStore: durable string storage for the board (SQLite or memory)
//   - ConfigStore: application configuration (TOML file)
//   - ChangeWatcher: external writes to the shared store
//
// Import rules: this package may import domain only, never an adapter.
package driven
