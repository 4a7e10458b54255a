// Package store provides persistence for the single practice-state
// document. The document lives in one key-value slot behind the Port
// interface, which abstracts the underlying storage mechanism so the
// data layer stays independent of the database technology. The default
// port keeps the slot in a local SQLite database; tests use an in-memory
// port.
package store
