package domain

type Notification struct {
	ID    string           `json:"id"`
	Title string           `json:"title"`
	Body  string           `json:"body"`
	Type  NotificationType `json:"type"`
	// To targets a single user by phone. Nil means broadcast: visible to
	// every viewer, including anonymous ones.
	To   *string `json:"to,omitempty"`
	Read bool    `json:"read"`
}

// NotificationType carries the prototype's Portuguese wire values; the admin
// panel writes them verbatim.
type NotificationType string

const (
	NotifOrderAccepted  NotificationType = "pedido_aceito"
	NotifOrderRejected  NotificationType = "pedido_recusado"
	NotifOrderDelivered NotificationType = "pedido_entregue"
)

// VisibleTo reports whether the notification should be shown to the given
// session. Broadcast notifications are visible to everyone.
func (n Notification) VisibleTo(sess *Session) bool {
	if n.To == nil || *n.To == "" {
		return true
	}
	return sess != nil && sess.Phone == *n.To
}

// ActionKind classifies what the UI should present after a notification is
// opened.
type ActionKind string

const (
	ActionOpenChat       ActionKind = "open_chat"
	ActionConfirmReorder ActionKind = "confirm_reorder"
	ActionOpenDeliveries ActionKind = "open_deliveries"
	ActionShowMessage    ActionKind = "show_message"
)

// Action is the presentation-free result of opening a notification. The
// transport layer decides how to show it; Target is only set for kinds that
// navigate on confirmation.
type Action struct {
	Kind    ActionKind `json:"kind"`
	Title   string     `json:"title"`
	Body    string     `json:"body"`
	Prompt  string     `json:"prompt,omitempty"`
	Target  string     `json:"target,omitempty"`
	Message string     `json:"message,omitempty"`
}
