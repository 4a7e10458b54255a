package store

import "context"

// StorageKey is the fixed key of the single document slot.
const StorageKey = "practicelog-state"

// Port abstracts the key-value slot holding the serialized document.
// Implementations must be safe for use from a single logical caller;
// the service layer serializes access above this interface.
type Port interface {
	// Load reads the slot. The second return value reports whether the
	// slot currently holds a document.
	Load(ctx context.Context) ([]byte, bool, error)

	// Save overwrites the slot with the given payload.
	Save(ctx context.Context, data []byte) error

	// Delete empties the slot.
	Delete(ctx context.Context) error
}
