// Package notify delivers user notifications as structured log records.
package notify

import (
	"context"
	"log/slog"

	"catering/internal/core/ports"
)

var _ ports.Notifier = (*SlogNotifier)(nil)

// SlogNotifier writes one record per notification. Error notifications are
// logged at warn level; they describe a failed user action, not a crash.
type SlogNotifier struct {
	logger *slog.Logger
}

func NewSlogNotifier(logger *slog.Logger) *SlogNotifier {
	return &SlogNotifier{logger: logger.With("component", "notifier")}
}

func (n *SlogNotifier) Notify(ctx context.Context, notification ports.Notification) {
	level := slog.LevelInfo
	if notification.Kind == ports.NotificationError {
		level = slog.LevelWarn
	}
	n.logger.Log(ctx, level, notification.Title,
		slog.String("kind", string(notification.Kind)),
		slog.String("message", notification.Message),
	)
}
