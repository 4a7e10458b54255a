// Package domain contains the core business entities, value objects, and
// domain logic of the application: the persisted document schema, the
// static topic/tool registries, and the record types owned by the
// document. It is independent of any specific infrastructure or delivery
// mechanism.
package domain
