package ports

import "context"

// NotificationKind tells the user whether an operation worked.
type NotificationKind string

const (
	NotificationInfo  NotificationKind = "info"
	NotificationError NotificationKind = "error"
)

// Notification is a short user-facing message about the outcome of an operation.
type Notification struct {
	Title   string
	Message string
	Kind    NotificationKind
}

// Notifier delivers notifications. Delivery is fire-and-forget: Notify never
// fails the operation that triggered it.
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}
