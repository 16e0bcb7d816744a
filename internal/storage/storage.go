// Package storage provides the string-keyed snapshot store every collection
// persists into. Each key holds one JSON document that is replaced wholesale
// on write and treated as authoritative on read.
package storage

import "errors"

var (
	// ErrKeyNotFound means no snapshot has ever been written under the key.
	ErrKeyNotFound = errors.New("storage: key not found")
)

// Store is the persistence contract shared by all collections and the
// session. Keys are owned exclusively by one caller; readers replace their
// in-memory state with the loaded value, never merge.
type Store interface {
	// Get returns the raw JSON document under key, or ErrKeyNotFound.
	Get(key string) ([]byte, error)
	// Set replaces the document under key.
	Set(key string, value []byte) error
	// Delete removes the key. Deleting an absent key is not an error.
	Delete(key string) error
}
