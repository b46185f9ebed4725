// Package notification provides the log-backed implementation of the
// NotificationSink port. Notifications are one-way and fire-and-forget, so
// the sink records them on the structured logger instead of failing the
// operation that raised them.
package notification

import (
	"log/slog"
)

// SlogNotificationSink writes notifications to a structured logger.
type SlogNotificationSink struct {
	logger *slog.Logger
}

// NewSlogNotificationSink creates a notification sink backed by the given
// logger.
func NewSlogNotificationSink(logger *slog.Logger) *SlogNotificationSink {
	return &SlogNotificationSink{logger: logger}
}

// ShowSuccess reports a successfully finished operation.
func (s *SlogNotificationSink) ShowSuccess(message, title string, durationMillis int) {
	s.logger.Info("notification",
		"level", "success",
		"title", title,
		"message", message,
		"duration_ms", durationMillis,
	)
}

// ShowWarning reports a non-blocking problem.
func (s *SlogNotificationSink) ShowWarning(message, title string, durationMillis int) {
	s.logger.Warn("notification",
		"level", "warning",
		"title", title,
		"message", message,
		"duration_ms", durationMillis,
	)
}

// ShowError reports a failed operation.
func (s *SlogNotificationSink) ShowError(message, title string, durationMillis int) {
	s.logger.Error("notification",
		"level", "error",
		"title", title,
		"message", message,
		"duration_ms", durationMillis,
	)
}
