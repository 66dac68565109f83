package minio

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"

	"github.com/minio/minio-go/v7"

	"github.com/hupe1980/fixgo/checkpoint"
)

// Compile time check to ensure Store satisfies the checkpoint interface.
var _ checkpoint.Store = (*Store)(nil)

// Store implements checkpoint.Store for MinIO and S3-compatible storage.
type Store struct {
	client *minio.Client
	bucket string
	prefix string
	opts   checkpoint.Options
}

// NewStore creates a new MinIO checkpoint store.
// rootPrefix is prepended to all keys (e.g. "results/").
func NewStore(client *minio.Client, bucket, rootPrefix string, optFns ...func(o *checkpoint.Options)) *Store {
	opts := checkpoint.DefaultOptions
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Store{
		client: client,
		bucket: bucket,
		prefix: rootPrefix,
		opts:   opts,
	}
}

func (s *Store) key(name string) string {
	return path.Join(s.prefix, name)
}

// Put encodes record and overwrites the object under key.
func (s *Store) Put(ctx context.Context, key string, record any) error {
	data, err := checkpoint.EncodeRecord(s.opts, record)
	if err != nil {
		return err
	}
	_, err = s.client.PutObject(ctx, s.bucket, s.key(key), bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{})
	if err != nil {
		return fmt.Errorf("put checkpoint %s: %w", key, err)
	}
	return nil
}

// Get reads and decodes the object under key.
func (s *Store) Get(ctx context.Context, key string, record any) error {
	obj, err := s.client.GetObject(ctx, s.bucket, s.key(key), minio.GetObjectOptions{})
	if err != nil {
		return fmt.Errorf("get checkpoint %s: %w", key, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		errResp := minio.ToErrorResponse(err)
		if errResp.Code == "NoSuchKey" || errResp.Code == "NotFound" {
			return fmt.Errorf("%w: %s", checkpoint.ErrNotFound, key)
		}
		return fmt.Errorf("read checkpoint %s: %w", key, err)
	}
	return checkpoint.DecodeRecord(data, record)
}

// Delete removes the object under key. Deleting a missing key is not an error.
func (s *Store) Delete(ctx context.Context, key string) error {
	err := s.client.RemoveObject(ctx, s.bucket, s.key(key), minio.RemoveObjectOptions{})
	if err != nil {
		errResp := minio.ToErrorResponse(err)
		if errResp.Code == "NoSuchKey" || errResp.Code == "NotFound" {
			return nil
		}
		return fmt.Errorf("delete checkpoint %s: %w", key, err)
	}
	return nil
}

// List returns all keys with the given prefix, sorted.
func (s *Store) List(ctx context.Context, prefix string) ([]string, error) {
	fullPrefix := s.key(prefix)

	var keys []string
	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{
		Prefix:    fullPrefix,
		Recursive: true,
	}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("list checkpoints: %w", obj.Err)
		}
		name := strings.TrimPrefix(obj.Key, s.prefix)
		name = strings.TrimPrefix(name, "/")
		if name != "" {
			keys = append(keys, name)
		}
	}
	sort.Strings(keys)
	return keys, nil
}
