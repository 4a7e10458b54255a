// Package service contains the application-specific use cases over the
// persisted practice-state document. Every public operation performs a
// full load-mutate-save cycle against the document store and returns a
// view value; a single mutex serializes the cycles so concurrent hosts
// cannot interleave lost updates. The service layer depends on domain
// entities and the store's persistence port, never on a specific
// storage or delivery implementation.
package service
