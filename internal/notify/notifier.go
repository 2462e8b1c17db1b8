package notify

import (
	"fmt"

	"github.com/gen2brain/beeep"
	"go.uber.org/zap"
)

// Notifier delivers fire-and-forget desktop notifications. Delivery is best
// effort: failures must never abort tracking.
type Notifier interface {
	Notify(title, message string, timeoutSeconds int) error
}

// DesktopNotifier sends notifications through the OS notification center
type DesktopNotifier struct {
	logger *zap.Logger
}

// NewDesktopNotifier creates a desktop notifier
func NewDesktopNotifier(logger *zap.Logger) *DesktopNotifier {
	return &DesktopNotifier{logger: logger}
}

// Notify shows a desktop notification. The timeout is part of the sink
// contract but the desktop backend decides dismissal itself.
func (n *DesktopNotifier) Notify(title, message string, timeoutSeconds int) error {
	if err := beeep.Notify(title, message, ""); err != nil {
		return fmt.Errorf("failed to deliver notification: %w", err)
	}

	n.logger.Debug("Notification delivered",
		zap.String("title", title),
		zap.Int("timeout_seconds", timeoutSeconds),
	)
	return nil
}

// NopNotifier discards all notifications. Used when notifications are
// disabled in configuration.
type NopNotifier struct{}

// Notify discards the notification
func (NopNotifier) Notify(title, message string, timeoutSeconds int) error {
	return nil
}
