package notify

import (
	"context"

	"go.uber.org/zap"
)

// Notifier delivers a post-commit notification for a confirmed booking. The
// delivery channel is swappable (email, messaging, console); failures must be
// handled by the caller as log-and-continue, never as a booking failure.
type Notifier interface {
	Notify(ctx context.Context, subject, message string) error
}

// LogNotifier writes notifications to the application log. It stands in for a
// real delivery channel in deployments without outbound email.
type LogNotifier struct {
	logger *zap.Logger
}

func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Notify(_ context.Context, subject, message string) error {
	n.logger.Info("notification",
		zap.String("subject", subject),
		zap.String("message", message),
	)
	return nil
}
