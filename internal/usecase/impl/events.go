package impl

import (
	"context"
	"log/slog"

	deliverycontext "soundflow/internal/delivery/context"
	"soundflow/internal/domain/service"
)

// publishEvent tags the event with the request id and logs, but never returns, publish failures.
func publishEvent(ctx context.Context, publisher service.EventPublisher, logger *slog.Logger, event *service.MediaEvent) {
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)

	if err := publisher.Publish(ctx, event); err != nil {
		logger.Warn("Failed to publish event",
			slog.String("type", event.Type),
			slog.Any("error", err),
		)
	}
}
