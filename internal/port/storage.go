package port

import (
	"context"
	"io"
	"time"
)

// StoredImage describes one label image being archived.
type StoredImage struct {
	Key         string
	Body        io.Reader
	ContentType string
	Size        int64
}

// ObjectStorage abstracts the blob store that archives uploaded label
// images. The backing bucket is fixed at construction; callers deal only
// in object keys.
type ObjectStorage interface {
	Upload(ctx context.Context, img StoredImage) error
	Delete(ctx context.Context, key string) error
	PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error)
}
