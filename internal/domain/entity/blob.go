package entity

import "io"

// Logical blob buckets. Names are kept stable because they are part of stored keys.
const (
	BucketProfileImages = "profileImages"
	BucketProjectImages = "projectImage"
)

// BlobObject is an opened blob ready to be streamed to a client.
// The caller must close Reader.
type BlobObject struct {
	ID          string
	Name        string
	ContentType string
	Size        int64
	Reader      io.ReadCloser
}
