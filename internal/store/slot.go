package store

import (
	"context"
	"errors"
	"slices"
	"strconv"
	"sync"
)

// ErrConflict is returned by Slot.Store when the stored revision no longer
// matches the one the caller loaded.
var ErrConflict = errors.New("storage slot was modified concurrently")

// Slot is a single named cell holding one serialized collection.
//
// Load returns the current payload and an opaque revision token; an empty
// slot yields nil data and an empty revision. Store replaces the payload
// only if the slot still holds revision rev, otherwise it returns
// ErrConflict. Reset empties the slot.
type Slot interface {
	Load(ctx context.Context) (data []byte, rev string, err error)
	Store(ctx context.Context, data []byte, rev string) error
	Reset(ctx context.Context) error
	Close() error
}

// MemorySlot keeps the payload in process memory.
type MemorySlot struct {
	mu   sync.Mutex
	data []byte
	gen  int
}

func NewMemorySlot() *MemorySlot { return &MemorySlot{} }

func (m *MemorySlot) Load(_ context.Context) ([]byte, string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.data), m.revision(), nil
}

func (m *MemorySlot) Store(_ context.Context, data []byte, rev string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if rev != m.revision() {
		return ErrConflict
	}
	m.data = slices.Clone(data)
	m.gen++
	return nil
}

func (m *MemorySlot) Reset(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = nil
	m.gen++
	return nil
}

func (m *MemorySlot) Close() error { return nil }

func (m *MemorySlot) revision() string {
	if m.data == nil {
		return ""
	}
	return strconv.Itoa(m.gen)
}
