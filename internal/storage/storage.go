// Package storage abstracts the object store media uploads live in.
package storage

import (
	"context"
	"io"
)

// ObjectStorage defines the object operations the media endpoints need.
type ObjectStorage interface {
	EnsureBucket(ctx context.Context) error
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	Delete(ctx context.Context, key string) error

	// URL returns the public URL an uploaded object is served from.
	URL(key string) string

	// Key maps a public URL back to the object key, reversing URL.
	Key(fileURL string) (string, bool)
}
