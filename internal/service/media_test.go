package service

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// memStorage is an in-memory stand-in for the object store.
type memStorage struct {
	objects map[string][]byte
	base    string
}

func newMemStorage() *memStorage {
	return &memStorage{
		objects: make(map[string][]byte),
		base:    "http://storage.local/media/",
	}
}

func (m *memStorage) EnsureBucket(ctx context.Context) error { return nil }

func (m *memStorage) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	m.objects[key] = data
	return nil
}

func (m *memStorage) Delete(ctx context.Context, key string) error {
	delete(m.objects, key)
	return nil
}

func (m *memStorage) URL(key string) string { return m.base + key }

func (m *memStorage) Key(fileURL string) (string, bool) {
	return strings.CutPrefix(fileURL, m.base)
}

func TestMediaUploadRemove(t *testing.T) {
	store := newMemStorage()
	svc := &MediaService{Storage: store}
	ctx := context.Background()

	payload := []byte("fake image bytes")
	url, err := svc.Upload(ctx, "station.png", "image/png", bytes.NewReader(payload), int64(len(payload)))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(url, store.base))
	require.True(t, strings.HasSuffix(url, ".png"))
	require.Len(t, store.objects, 1)

	// Two uploads of the same filename get distinct keys.
	url2, err := svc.Upload(ctx, "station.png", "image/png", bytes.NewReader(payload), int64(len(payload)))
	require.NoError(t, err)
	require.NotEqual(t, url, url2)
	require.Len(t, store.objects, 2)

	require.NoError(t, svc.Remove(ctx, url))
	require.Len(t, store.objects, 1)
}

func TestMediaRemove_ForeignURL(t *testing.T) {
	svc := &MediaService{Storage: newMemStorage()}

	err := svc.Remove(context.Background(), "http://elsewhere.example/file.png")
	require.ErrorIs(t, err, ErrMediaNotOwned)
}
