package models

// Notification is the transient banner state of the settings screen.
type Notification int

const (
	NotificationNone Notification = iota
	NotificationSuccess
	NotificationError
)

func (n Notification) String() string {
	switch n {
	case NotificationNone:
		return "none"
	case NotificationSuccess:
		return "success"
	case NotificationError:
		return "error"
	default:
		return "unknown"
	}
}

// Visible reports whether a banner should be rendered.
func (n Notification) Visible() bool {
	return n != NotificationNone
}

// Message is the banner text.
func (n Notification) Message() string {
	switch n {
	case NotificationSuccess:
		return "Successfully updated user"
	case NotificationError:
		return "Error while updating user"
	default:
		return ""
	}
}
