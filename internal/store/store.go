// Package store provides the persistence boundary shared by every component:
// named collections of records with full-replace write semantics and a change
// broadcast so independent consumers of the same collection stay in sync.
package store

import (
	"context"
	"encoding/json"
	"log"
)

// Well-known collection names.
const (
	Products = "products"
	Orders   = "orders"
	Cart     = "cart"
)

type Store interface {
	// Read returns the raw payload of a collection, or nil if it has never
	// been written. A missing collection is not an error.
	Read(ctx context.Context, collection string) ([]byte, error)
	// Write replaces the whole collection and notifies subscribers.
	Write(ctx context.Context, collection string, data []byte) error
	// Subscribe returns a channel that receives a signal after every write
	// to the collection, and a function that cancels the subscription.
	// Signals are coalesced; a slow receiver sees at least one.
	Subscribe(collection string) (<-chan struct{}, func())
}

// Open picks the backend from configuration: Redis when a URL is given,
// otherwise JSON files under dataDir.
func Open(redisURL, dataDir string) (Store, error) {
	if redisURL != "" {
		log.Printf("[store] backend=redis")
		return NewRedis(redisURL)
	}
	log.Printf("[store] backend=file dir=%s", dataDir)
	return NewFile(dataDir)
}

// ReadJSON decodes a collection into records. A payload that fails to parse
// is logged and treated as an empty collection, never as a hard failure.
func ReadJSON[T any](ctx context.Context, s Store, collection string) ([]T, error) {
	raw, err := s.Read(ctx, collection)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, nil
	}
	var out []T
	if err := json.Unmarshal(raw, &out); err != nil {
		log.Printf("[store] collection %q is corrupt, treating as empty: %v", collection, err)
		return nil, nil
	}
	return out, nil
}

// WriteJSON encodes records and replaces the collection. A nil slice is
// written as an empty array so readers never see a null payload.
func WriteJSON[T any](ctx context.Context, s Store, collection string, records []T) error {
	if records == nil {
		records = []T{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return err
	}
	return s.Write(ctx, collection, data)
}
