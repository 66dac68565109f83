package checkpoint

import (
	"context"
	"errors"

	"github.com/hupe1980/fixgo/codec"
)

// ErrNotFound is returned by Get when no record exists under the key.
//
// Implementations must return an error that satisfies
// errors.Is(err, ErrNotFound).
var ErrNotFound = errors.New("checkpoint not found")

// Store is a keyed record store with overwrite semantics.
//
// Put replaces any existing record under key atomically: a reader never
// observes a record mixing two writes. Within a single job, writes to a
// key are strictly sequential.
type Store interface {
	// Put encodes record and overwrites the value under key.
	Put(ctx context.Context, key string, record any) error
	// Get decodes the value under key into record.
	// Returns ErrNotFound if the key does not exist.
	Get(ctx context.Context, key string, record any) error
	// Delete removes the value under key. Deleting a missing key is not
	// an error.
	Delete(ctx context.Context, key string) error
	// List returns all keys with the given prefix, sorted.
	List(ctx context.Context, prefix string) ([]string, error)
}

// Options configures record encoding for a store.
type Options struct {
	// Codec encodes record payloads. Defaults to codec.Default.
	Codec codec.Codec
	// Compression compresses encoded payloads. Defaults to none.
	Compression Compression
}

// DefaultOptions are the options used when none are supplied.
var DefaultOptions = Options{
	Codec:       codec.Default,
	Compression: CompressionNone,
}
