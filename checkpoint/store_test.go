package checkpoint

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRecord struct {
	Key    string    `json:"key"`
	Count  int       `json:"count"`
	Values []float64 `json:"values"`
}

func stores(t *testing.T) map[string]Store {
	t.Helper()
	local, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)
	return map[string]Store{
		"Local":  local,
		"Memory": NewMemoryStore(),
	}
}

func TestStorePutGet(t *testing.T) {
	ctx := context.Background()
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			want := testRecord{Key: "traverse_base_N_2_s_0", Count: 3, Values: []float64{0.9, -0.9}}
			require.NoError(t, store.Put(ctx, want.Key, want))

			var got testRecord
			require.NoError(t, store.Get(ctx, want.Key, &got))
			assert.Equal(t, want, got)
		})
	}
}

func TestStoreOverwrite(t *testing.T) {
	ctx := context.Background()
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.Put(ctx, "k", testRecord{Count: 1}))
			require.NoError(t, store.Put(ctx, "k", testRecord{Count: 2}))

			var got testRecord
			require.NoError(t, store.Get(ctx, "k", &got))
			assert.Equal(t, 2, got.Count)
		})
	}
}

func TestStoreNotFound(t *testing.T) {
	ctx := context.Background()
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			var got testRecord
			err := store.Get(ctx, "missing", &got)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestStoreDelete(t *testing.T) {
	ctx := context.Background()
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.Put(ctx, "k", testRecord{}))
			require.NoError(t, store.Delete(ctx, "k"))

			var got testRecord
			assert.ErrorIs(t, store.Get(ctx, "k", &got), ErrNotFound)

			// Deleting a missing key is not an error.
			assert.NoError(t, store.Delete(ctx, "k"))
		})
	}
}

func TestStoreList(t *testing.T) {
	ctx := context.Background()
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.Put(ctx, "traverse_base_N_2_s_0", testRecord{}))
			require.NoError(t, store.Put(ctx, "traverse_base_N_2_s_1", testRecord{}))
			require.NoError(t, store.Put(ctx, "baseline_base_N_2_s_0", testRecord{}))

			keys, err := store.List(ctx, "traverse_")
			require.NoError(t, err)
			assert.Equal(t, []string{"traverse_base_N_2_s_0", "traverse_base_N_2_s_1"}, keys)

			all, err := store.List(ctx, "")
			require.NoError(t, err)
			assert.Len(t, all, 3)
		})
	}
}

func TestRecordCompression(t *testing.T) {
	ctx := context.Background()
	want := testRecord{Key: "k", Count: 7, Values: make([]float64, 256)}

	for name, compression := range map[string]Compression{
		"None": CompressionNone,
		"Zstd": CompressionZstd,
		"LZ4":  CompressionLZ4,
	} {
		t.Run(name, func(t *testing.T) {
			store := NewMemoryStore(func(o *Options) { o.Compression = compression })
			require.NoError(t, store.Put(ctx, "k", want))

			var got testRecord
			require.NoError(t, store.Get(ctx, "k", &got))
			assert.Equal(t, want, got)
		})
	}
}

func TestDecodeRecordMalformed(t *testing.T) {
	var got testRecord
	assert.ErrorIs(t, DecodeRecord([]byte("bogus"), &got), ErrMalformedRecord)
	assert.ErrorIs(t, DecodeRecord(nil, &got), ErrMalformedRecord)
}

func TestRecordSelfDescribing(t *testing.T) {
	// A record written with compression can be read by a store configured
	// without it: the header carries everything needed to decode.
	ctx := context.Background()
	writer := NewMemoryStore(func(o *Options) { o.Compression = CompressionZstd })
	require.NoError(t, writer.Put(ctx, "k", testRecord{Count: 5}))

	data, err := EncodeRecord(Options{Compression: CompressionLZ4}, testRecord{Count: 9})
	require.NoError(t, err)

	var got testRecord
	require.NoError(t, DecodeRecord(data, &got))
	assert.Equal(t, 9, got.Count)
}

func TestLocalStoreAtomicOverwrite(t *testing.T) {
	// After a successful Put there is no temp file left behind.
	ctx := context.Background()
	dir := t.TempDir()
	store, err := NewLocalStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Put(ctx, "k", testRecord{Count: 1}))
	require.NoError(t, store.Put(ctx, "k", testRecord{Count: 2}))

	keys, err := store.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"k"}, keys)
}
