// Package blob implements the blob store on top of a gocloud.dev bucket.
// Logical buckets become key prefixes inside one physical bucket.
package blob

import (
	"context"
	"io"
	"log/slog"
	"path"
	"time"

	"soundflow/config"
	"soundflow/internal/domain/entity"
	domainerrors "soundflow/internal/domain/errors"
	"soundflow/internal/domain/service"
	"soundflow/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"

	// URL openers for blob.url.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
)

const metadataName = "name"

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

type bucketStore struct {
	bucket      *blob.Bucket
	maxFileSize int64
	logger      *slog.Logger
}

// New opens the configured bucket and closes it when the application stops.
func New(params Params) (service.BlobStore, error) {
	bucket, err := blob.OpenBucket(context.Background(), params.Config.Blob.URL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open blob bucket %q", params.Config.Blob.URL)
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	params.Logger.Info("Blob bucket opened", slog.String("url", params.Config.Blob.URL))

	return NewBucketStore(bucket, params.Config.Upload.MaxFileSize, params.Logger), nil
}

// NewBucketStore wraps an already opened bucket. maxFileSize <= 0 disables the size ceiling.
func NewBucketStore(bucket *blob.Bucket, maxFileSize int64, logger *slog.Logger) service.BlobStore {
	return &bucketStore{
		bucket:      bucket,
		maxFileSize: maxFileSize,
		logger:      logger,
	}
}

func (s *bucketStore) Upload(ctx context.Context, bucket, name, contentType string, r io.Reader) (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", errors.Wrap(err, "failed to generate blob id")
	}
	key := objectKey(bucket, id.String())
	start := time.Now()

	// Cancelling writeCtx before Close aborts the write, so a failed upload never becomes readable.
	writeCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	w, err := s.bucket.NewWriter(writeCtx, key, &blob.WriterOptions{
		ContentType: contentType,
		Metadata:    map[string]string{metadataName: name},
	})
	if err != nil {
		return "", errors.Wrap(domainerrors.ErrStorageWrite, err.Error())
	}

	src := r
	if s.maxFileSize > 0 {
		src = io.LimitReader(r, s.maxFileSize+1)
	}

	written, err := io.Copy(w, src)
	if err != nil {
		s.abort(ctx, cancel, w, key, err)

		return "", errors.Wrap(domainerrors.ErrStorageWrite, err.Error())
	}
	if s.maxFileSize > 0 && written > s.maxFileSize {
		s.abort(ctx, cancel, w, key, nil)

		return "", errors.Wrapf(domainerrors.ErrUploadTooLarge, "upload exceeds %s", util.FormatBytes(s.maxFileSize))
	}

	if err := w.Close(); err != nil {
		return "", errors.Wrap(domainerrors.ErrStorageWrite, err.Error())
	}

	s.logger.DebugContext(ctx, "Blob stored",
		slog.String("key", key),
		slog.String("size", util.FormatBytes(written)),
		slog.String("elapsed", util.FormatDuration(time.Since(start))),
	)

	return id.String(), nil
}

func (s *bucketStore) abort(ctx context.Context, cancel context.CancelFunc, w *blob.Writer, key string, cause error) {
	cancel()
	_ = w.Close()

	attrs := []slog.Attr{slog.String("key", key)}
	if cause != nil {
		attrs = append(attrs, slog.Any("error", cause))
	}
	s.logger.LogAttrs(ctx, slog.LevelWarn, "Blob upload aborted", attrs...)
}

func (s *bucketStore) Download(ctx context.Context, bucket, id string) (*entity.BlobObject, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, errors.Wrapf(domainerrors.ErrBlobNotFound, "malformed blob id %q", id)
	}
	key := objectKey(bucket, id)

	attrs, err := s.bucket.Attributes(ctx, key)
	if err != nil {
		return nil, translateReadError(err, key)
	}

	reader, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		return nil, translateReadError(err, key)
	}

	return &entity.BlobObject{
		ID:          id,
		Name:        attrs.Metadata[metadataName],
		ContentType: attrs.ContentType,
		Size:        attrs.Size,
		Reader:      &streamReader{ReadCloser: reader},
	}, nil
}

func objectKey(bucket, id string) string {
	return path.Join(bucket, id)
}

func translateReadError(err error, key string) error {
	if gcerrors.Code(err) == gcerrors.NotFound {
		return errors.Wrapf(domainerrors.ErrBlobNotFound, "blob %s", key)
	}

	return errors.Wrap(domainerrors.ErrStorageRead, err.Error())
}

// streamReader reports mid-stream faults as ErrStorageRead.
type streamReader struct {
	io.ReadCloser
}

func (r *streamReader) Read(p []byte) (int, error) {
	n, err := r.ReadCloser.Read(p)
	if err != nil && !errors.Is(err, io.EOF) {
		return n, errors.Wrap(domainerrors.ErrStorageRead, err.Error())
	}

	return n, err
}
