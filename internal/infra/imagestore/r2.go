package imagestore

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/yanqian/smartcloset/internal/domain/wardrobe"
)

// R2Store keeps photos in Cloudflare R2 through the S3-compatible API.
type R2Store struct {
	client     *minio.Client
	bucket     string
	logger     *slog.Logger
	bucketOnce sync.Once
	bucketErr  error
}

// NewR2Store constructs the storage adapter.
func NewR2Store(endpoint, accessKey, secretKey, bucket, region string, logger *slog.Logger) (*R2Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	client, err := minio.New(hostOnly(endpoint), &minio.Options{
		Creds:        credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure:       !strings.HasPrefix(strings.ToLower(strings.TrimSpace(endpoint)), "http://"),
		Region:       region,
		BucketLookup: minio.BucketLookupPath,
	})
	if err != nil {
		return nil, fmt.Errorf("init r2 client: %w", err)
	}
	return &R2Store{client: client, bucket: bucket, logger: logger.With("component", "imagestore.r2")}, nil
}

func (s *R2Store) ensureBucket(ctx context.Context) error {
	s.bucketOnce.Do(func() {
		exists, err := s.client.BucketExists(ctx, s.bucket)
		if err == nil && exists {
			return
		}
		err = s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{})
		if err != nil && minio.ToErrorResponse(err).Code != "BucketAlreadyOwnedByYou" {
			s.bucketErr = err
		}
	})
	return s.bucketErr
}

func (s *R2Store) Put(ctx context.Context, key string, data []byte, mimeType string) (wardrobe.StoredImage, error) {
	if err := s.ensureBucket(ctx); err != nil {
		return wardrobe.StoredImage{}, err
	}
	info, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType:      mimeType,
		DisableMultipart: true,
	})
	if err != nil {
		return wardrobe.StoredImage{}, err
	}
	return wardrobe.StoredImage{Key: key, Size: info.Size, MimeType: mimeType, ETag: info.ETag}, nil
}

func (s *R2Store) Get(ctx context.Context, key string) (wardrobe.Image, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return wardrobe.Image{}, err
	}
	// GetObject is lazy; Stat surfaces a missing key.
	stat, err := obj.Stat()
	if err != nil {
		_ = obj.Close()
		return wardrobe.Image{}, err
	}
	return wardrobe.Image{Body: obj, MimeType: stat.ContentType}, nil
}

func (s *R2Store) Delete(ctx context.Context, key string) error {
	err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{})
	if err != nil {
		s.logger.Warn("remove object failed", "key", key, "error", err)
	}
	return err
}

var _ wardrobe.ImageStore = (*R2Store)(nil)

// hostOnly strips scheme and path so minio.New receives a bare host.
func hostOnly(raw string) string {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(strings.TrimPrefix(raw, "https://"), "http://")
	if i := strings.Index(raw, "/"); i >= 0 {
		raw = raw[:i]
	}
	return raw
}
