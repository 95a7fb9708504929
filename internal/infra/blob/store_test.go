package blob

import (
	"bytes"
	"context"
	"crypto/rand"
	"io"
	"log/slog"
	"testing"

	domainerrors "soundflow/internal/domain/errors"
	"soundflow/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob"
	"gocloud.dev/blob/memblob"
)

func newTestStore(t *testing.T, maxFileSize int64) (*bucketStore, *blob.Bucket) {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	store := NewBucketStore(bucket, maxFileSize, slog.New(slog.NewTextHandler(io.Discard, nil)))

	return store.(*bucketStore), bucket
}

func TestBucketStore_UploadDownloadRoundTrip(t *testing.T) {
	store, _ := newTestStore(t, 1<<20)
	ctx := context.Background()

	payload := make([]byte, 64*1024)
	_, err := rand.Read(payload)
	require.NoError(t, err)

	id, err := store.Upload(ctx, entity.BucketProfileImages, "alice", "image/png", bytes.NewReader(payload))
	require.NoError(t, err)
	_, err = uuid.Parse(id)
	require.NoError(t, err)

	obj, err := store.Download(ctx, entity.BucketProfileImages, id)
	require.NoError(t, err)
	defer obj.Reader.Close()

	got, err := io.ReadAll(obj.Reader)
	require.NoError(t, err)
	assert.Equal(t, payload, got)
	assert.Equal(t, "alice", obj.Name)
	assert.Equal(t, "image/png", obj.ContentType)
	assert.Equal(t, int64(len(payload)), obj.Size)
}

func TestBucketStore_BucketsArePartitioned(t *testing.T) {
	store, _ := newTestStore(t, 0)
	ctx := context.Background()

	id, err := store.Upload(ctx, entity.BucketProjectImages, "My Project", "image/jpeg", bytes.NewReader([]byte("jpeg")))
	require.NoError(t, err)

	_, err = store.Download(ctx, entity.BucketProfileImages, id)
	assert.True(t, errors.Is(err, domainerrors.ErrBlobNotFound))

	obj, err := store.Download(ctx, entity.BucketProjectImages, id)
	require.NoError(t, err)
	obj.Reader.Close()
}

func TestBucketStore_DownloadUnknownOrMalformed(t *testing.T) {
	store, _ := newTestStore(t, 0)
	ctx := context.Background()

	_, err := store.Download(ctx, entity.BucketProfileImages, uuid.NewString())
	assert.True(t, errors.Is(err, domainerrors.ErrBlobNotFound))

	_, err = store.Download(ctx, entity.BucketProfileImages, "not-an-id")
	assert.True(t, errors.Is(err, domainerrors.ErrBlobNotFound))
}

func TestBucketStore_UploadTooLargeLeavesNothing(t *testing.T) {
	store, bucket := newTestStore(t, 10)
	ctx := context.Background()

	_, err := store.Upload(ctx, entity.BucketProfileImages, "bob", "image/png", bytes.NewReader(make([]byte, 11)))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUploadTooLarge))

	assertEmpty(t, bucket)
}

func TestBucketStore_UploadExactlyAtLimit(t *testing.T) {
	store, _ := newTestStore(t, 10)

	_, err := store.Upload(context.Background(), entity.BucketProfileImages, "bob", "image/png", bytes.NewReader(make([]byte, 10)))
	assert.NoError(t, err)
}

func TestBucketStore_UploadReadFaultLeavesNothing(t *testing.T) {
	store, bucket := newTestStore(t, 0)

	src := io.MultiReader(bytes.NewReader([]byte("partial")), failingReader{})
	_, err := store.Upload(context.Background(), entity.BucketProfileImages, "carol", "image/png", src)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrStorageWrite))

	assertEmpty(t, bucket)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("connection reset")
}

func assertEmpty(t *testing.T, bucket *blob.Bucket) {
	t.Helper()

	iter := bucket.List(nil)
	_, err := iter.Next(context.Background())
	assert.ErrorIs(t, err, io.EOF)
}
