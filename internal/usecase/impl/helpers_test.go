package impl

import (
	"io"
	"log/slog"
	"time"

	"soundflow/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

var fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func eventOfType(eventType string) any {
	return mock.MatchedBy(func(e *service.MediaEvent) bool {
		return e.Type == eventType
	})
}
