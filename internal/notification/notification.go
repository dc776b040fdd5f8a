package notification

import (
	"context"
	"log/slog"
)

const (
	// KindLeaderboardChanged fires after every committed leaderboard change.
	// Listeners use it to refresh a view; this is in-process pub/sub, not a
	// network broadcast.
	KindLeaderboardChanged = "leaderboard_changed"
)

// Event describes a change notification. No payload is required; listeners
// re-read the source of the change.
type Event struct {
	Kind    string
	Subject string
}

// Notifier receives change events from the engine.
type Notifier interface {
	Notify(ctx context.Context, event Event) error
}

// LoggerNotifier is a stub implementation that writes events to the logger.
type LoggerNotifier struct {
	logger *slog.Logger
}

// NewLoggerNotifier constructs a logging notifier stub.
func NewLoggerNotifier(logger *slog.Logger) *LoggerNotifier {
	return &LoggerNotifier{logger: logger}
}

// Notify writes the event to the structured logger.
func (n *LoggerNotifier) Notify(_ context.Context, event Event) error {
	if n == nil || n.logger == nil {
		return nil
	}
	n.logger.Info("notification", "kind", event.Kind, "subject", event.Subject)
	return nil
}
