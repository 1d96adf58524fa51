package domain

import "time"

// Notification is an emitted alert record. Once created it is terminal:
// the decision service never revisits it except for duplicate lookback.
type Notification struct {
	ID        string
	OwnerID   string
	Title     string
	Message   string
	Kind      NotificationKind
	Severity  NotificationSeverity
	Read      bool
	Actioned  bool
	TaskID    *string
	ProjectID *string
	ExpiresAt *time.Time
	// Context carries the structured payload (score, reasons, health
	// snapshot) serialized as JSON by the repository.
	Context   map[string]any
	CreatedAt time.Time
}

// IsExpired reports whether the notification has passed its expiry.
func (n *Notification) IsExpired(now time.Time) bool {
	if n.ExpiresAt == nil {
		return false
	}
	return now.After(*n.ExpiresAt)
}

// RequiresAction reports whether the notification still demands user
// action: critical or warning severity, not yet actioned.
func (n *Notification) RequiresAction() bool {
	return (n.Severity == SeverityCritical || n.Severity == SeverityWarning) && !n.Actioned
}

// MarkRead flags the notification as read.
func (n *Notification) MarkRead() {
	n.Read = true
}

// MarkActioned flags the notification as actioned (which implies read).
func (n *Notification) MarkActioned() {
	n.Actioned = true
	n.Read = true
}
