package oss

import (
	"context"
	"fmt"
	"io"

	"sideb/config"

	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss"
)

// Storage wraps the OSS client for a single bucket. It is injected into the
// services as a capability rather than accessed through a package singleton so
// tests can substitute an in-memory store.
type Storage struct {
	client  *oss.Client
	bucket  string
	baseURL string
}

func NewStorage(client *oss.Client, cfg *config.OssConfig) *Storage {
	base := cfg.PublicBaseURL
	if base == "" {
		base = fmt.Sprintf("https://%s.%s", cfg.Bucket, cfg.Endpoint)
	}
	return &Storage{
		client:  client,
		bucket:  cfg.Bucket,
		baseURL: base,
	}
}

func (s *Storage) Put(ctx context.Context, key string, body io.Reader) error {
	_, err := s.client.PutObject(ctx, &oss.PutObjectRequest{
		Bucket: oss.Ptr(s.bucket),
		Key:    oss.Ptr(key),
		Body:   body,
	})
	return err
}

func (s *Storage) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &oss.DeleteObjectRequest{
		Bucket: oss.Ptr(s.bucket),
		Key:    oss.Ptr(key),
	})
	return err
}

func (s *Storage) Exists(ctx context.Context, key string) (bool, error) {
	return s.client.IsObjectExist(ctx, s.bucket, key)
}

// PublicURL returns the externally dereferenceable URL for an object key.
// This exact string is what appears inside markdown content when the image
// is referenced.
func (s *Storage) PublicURL(key string) string {
	return s.baseURL + "/" + key
}
