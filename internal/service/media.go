package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/opentransit/stationhub/internal/storage"
	"github.com/opentransit/stationhub/pkg/idx"
	"github.com/opentransit/stationhub/pkg/slogx"
)

// ErrMediaNotOwned is returned when a remove request names a URL outside
// the platform's bucket.
var ErrMediaNotOwned = errors.New("file url does not belong to media storage")

// MediaService uploads files to the object store and hands back their
// public URLs. Object keys are ULIDs so uploads never collide.
type MediaService struct {
	Storage storage.ObjectStorage
}

// Upload stores one file and returns its public URL.
func (s *MediaService) Upload(ctx context.Context, filename, contentType string, r io.Reader, size int64) (string, error) {
	log := slogx.FromContext(ctx)

	key := idx.New().String() + filepath.Ext(filename)
	if err := s.Storage.Put(ctx, key, r, size, contentType); err != nil {
		log.Error("failed to upload media", slog.String("key", key), slog.Any("error", err))
		return "", fmt.Errorf("upload %s: %w", filename, err)
	}

	log.Info("media uploaded", slog.String("key", key), slog.Int64("size", size))
	return s.Storage.URL(key), nil
}

// Remove deletes the object a previously returned URL points at.
func (s *MediaService) Remove(ctx context.Context, fileURL string) error {
	log := slogx.FromContext(ctx)

	key, ok := s.Storage.Key(fileURL)
	if !ok {
		return ErrMediaNotOwned
	}

	if err := s.Storage.Delete(ctx, key); err != nil {
		log.Error("failed to remove media", slog.String("key", key), slog.Any("error", err))
		return err
	}

	log.Info("media removed", slog.String("key", key))
	return nil
}
