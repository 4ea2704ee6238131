package store

import (
	"context"
	"fmt"
	"strings"
)

// Storage drivers accepted by Open.
const (
	DriverBlob   = "blob"
	DriverSQLite = "sqlite"
	DriverMemory = "memory"
)

// Config selects and locates the storage slot.
type Config struct {
	Driver string
	// URL is the gocloud.dev bucket URL used by the blob driver.
	URL string
	// Path is the database file used by the sqlite driver.
	Path string
	// Key overrides DefaultKey.
	Key string
}

// OpenSlot opens the slot described by cfg.
func OpenSlot(ctx context.Context, cfg Config) (Slot, error) {
	key := strings.TrimSpace(cfg.Key)
	if key == "" {
		key = DefaultKey
	}
	switch strings.ToLower(strings.TrimSpace(cfg.Driver)) {
	case "", DriverBlob:
		return OpenBlobSlot(ctx, cfg.URL, key+".json")
	case DriverSQLite:
		return OpenSQLiteSlot(cfg.Path, key)
	case DriverMemory:
		return NewMemorySlot(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q (expected blob, sqlite or memory)", cfg.Driver)
	}
}

// Open opens the slot described by cfg and wraps it in a Store.
func Open(ctx context.Context, cfg Config, opts ...Option) (*Store, error) {
	slot, err := OpenSlot(ctx, cfg)
	if err != nil {
		return nil, err
	}
	logf("", "using %s storage", cfg.Driver)
	return New(slot, opts...), nil
}
