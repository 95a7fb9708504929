package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"soundflow/config"
	deliverycontext "soundflow/internal/delivery/context"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newCapturingLogger(debug bool) (*gormSlogLogger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	base := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg := &config.Config{Postgres: &config.PostgresConfig{SlowQueryThreshold: 200 * time.Millisecond}}
	cfg.Env.Debug = debug

	return newGormSlogLogger(base, cfg), buf
}

func TestGormSlogLogger_Trace(t *testing.T) {
	sqlFn := func() (string, int64) { return `SELECT * FROM "users" WHERE username = $1`, 1 }

	t.Run("errors are logged", func(t *testing.T) {
		l, buf := newCapturingLogger(false)
		l.Trace(context.Background(), time.Now(), sqlFn, errors.New("boom"))
		assert.Contains(t, buf.String(), "Query failed")
		assert.Contains(t, buf.String(), "boom")
	})

	t.Run("record not found is ignored", func(t *testing.T) {
		l, buf := newCapturingLogger(false)
		l.Trace(context.Background(), time.Now(), sqlFn, gorm.ErrRecordNotFound)
		assert.Empty(t, buf.String())
	})

	t.Run("slow queries warn", func(t *testing.T) {
		l, buf := newCapturingLogger(false)
		l.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn, nil)
		assert.Contains(t, buf.String(), "Slow query")
	})

	t.Run("fast queries only in debug", func(t *testing.T) {
		l, buf := newCapturingLogger(false)
		l.Trace(context.Background(), time.Now(), sqlFn, nil)
		assert.Empty(t, buf.String())

		l, buf = newCapturingLogger(true)
		l.Trace(context.Background(), time.Now(), sqlFn, nil)
		assert.Contains(t, buf.String(), "msg=Query")
	})

	t.Run("request logger is preferred", func(t *testing.T) {
		l, fallback := newCapturingLogger(false)
		reqBuf := &bytes.Buffer{}
		reqLogger := slog.New(slog.NewTextHandler(reqBuf, nil)).With(slog.String("request_id", "req-7"))
		ctx := deliverycontext.WithLogger(context.Background(), reqLogger)

		l.Trace(ctx, time.Now(), sqlFn, errors.New("boom"))

		assert.Empty(t, fallback.String())
		assert.Contains(t, reqBuf.String(), "request_id=req-7")
	})

	t.Run("silent mode", func(t *testing.T) {
		l, buf := newCapturingLogger(true)
		l.LogMode(gormlogger.Silent).Trace(context.Background(), time.Now(), sqlFn, errors.New("boom"))
		assert.Empty(t, buf.String())
	})
}

func TestGormSlogLogger_ParamsFilter(t *testing.T) {
	l, _ := newCapturingLogger(true)

	sql, params := l.ParamsFilter(context.Background(), `UPDATE "users" SET password_hash = $1`, "deadbeef")

	assert.Equal(t, `UPDATE "users" SET password_hash = $1`, sql)
	assert.Nil(t, params)
}
