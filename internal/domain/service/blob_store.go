package service

import (
	"context"
	"io"

	"soundflow/internal/domain/entity"
)

// BlobStore streams binary objects in and out of named buckets.
type BlobStore interface {
	// Upload writes r under a generated id. The id is returned only once the write is acknowledged;
	// a failed upload leaves nothing readable.
	Upload(ctx context.Context, bucket, name, contentType string, r io.Reader) (string, error)

	// Download opens a blob for streaming. Unknown or malformed ids yield ErrBlobNotFound.
	Download(ctx context.Context, bucket, id string) (*entity.BlobObject, error)
}
