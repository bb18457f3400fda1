package commands

import (
	"context"
	"log/slog"

	"yacht-charter/internal/domain/shared/events"
	"yacht-charter/internal/usecase/shared"

	"github.com/google/uuid"
)

// CalendarInvalidator drops cached availability after a booking mutation.
type CalendarInvalidator interface {
	InvalidateYacht(ctx context.Context, yachtID uuid.UUID) error
}

// NotificationDispatcher turns recorded domain events into outbox rows.
type NotificationDispatcher interface {
	Dispatch(ctx context.Context, repo shared.NotificationRepository, evts []events.DomainEvent) error
}

// invalidateCalendar is best effort; the cache TTL bounds staleness when Redis
// is unreachable.
func invalidateCalendar(ctx context.Context, cache CalendarInvalidator, yachtID uuid.UUID) {
	if cache == nil {
		return
	}
	if err := cache.InvalidateYacht(ctx, yachtID); err != nil {
		slog.WarnContext(ctx, "calendar cache invalidation failed", "yacht_id", yachtID, "error", err.Error())
	}
}
