package forum

import "context"

// SlotStore is a small key-value store for JSON documents that are always
// read and written whole.
type SlotStore interface {
	// Load returns the slot's bytes. ok is false when the slot was never written.
	Load(ctx context.Context, slot string) (data []byte, ok bool, err error)

	// Save replaces the slot's bytes
	Save(ctx context.Context, slot string, data []byte) error
}
