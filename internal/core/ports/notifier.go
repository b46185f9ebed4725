package ports

// NotificationSink delivers one-way user-facing notifications.
// Implementations are fire-and-forget: failures are logged, never returned,
// and nothing in the domain depends on a notification being seen.
type NotificationSink interface {
	// ShowSuccess reports a successfully finished operation.
	ShowSuccess(message, title string, durationMillis int)

	// ShowWarning reports a non-blocking problem.
	ShowWarning(message, title string, durationMillis int)

	// ShowError reports a failed operation.
	ShowError(message, title string, durationMillis int)
}
