// Package notify delivers best-effort operational notifications. Callers
// fire and forget; a failed delivery is logged, never returned.
package notify

// Notifier reports a moderation-service failure to an operations contact.
type Notifier interface {
	NotifyFailure(errText string)
}
