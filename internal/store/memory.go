package store

import "context"

// MemoryPort is an in-memory Port implementation used by tests and
// throwaway environments. The zero value is an empty slot.
type MemoryPort struct {
	data []byte
	full bool
}

// NewMemoryPort returns an empty in-memory slot.
func NewMemoryPort() *MemoryPort {
	return &MemoryPort{}
}

// Load implements Port.
func (p *MemoryPort) Load(ctx context.Context) ([]byte, bool, error) {
	if !p.full {
		return nil, false, nil
	}
	out := make([]byte, len(p.data))
	copy(out, p.data)
	return out, true, nil
}

// Save implements Port.
func (p *MemoryPort) Save(ctx context.Context, data []byte) error {
	p.data = make([]byte, len(data))
	copy(p.data, data)
	p.full = true
	return nil
}

// Delete implements Port.
func (p *MemoryPort) Delete(ctx context.Context) error {
	p.data = nil
	p.full = false
	return nil
}
