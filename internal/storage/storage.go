package storage

import (
	"context"
	"time"
)

// FileStorage holds appointment attachments. Upload returns the object
// key the bytes were stored under; callers persist the key and presign a
// download URL when serving reads.
type FileStorage interface {
	Upload(ctx context.Context, data []byte, filename string) (string, error)

	Delete(ctx context.Context, key string) error

	PresignedURL(ctx context.Context, key string, expiry time.Duration) (string, error)
}
