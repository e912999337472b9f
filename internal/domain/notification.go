package domain

type NotificationType string

const (
	NotificationTypeNewSignup         NotificationType = "new_signup"
	NotificationTypeDeckAccessRequest NotificationType = "deck_access_request"
	NotificationTypeSystem            NotificationType = "system"
)

// Metadata keys matched by admin action helpers. The match is best-effort
// string equality, not a foreign key.
const (
	NotificationMetaRequestID = "request_id"
	NotificationMetaUserID    = "user_id"
)

type AdminNotification struct {
	ID        int32             `json:"id"`
	Type      NotificationType  `json:"type"`
	Title     string            `json:"title"`
	Message   string            `json:"message"`
	UserID    *int32            `json:"user_id,omitempty"`
	UserEmail string            `json:"user_email,omitempty"`
	Metadata  map[string]string `json:"metadata,omitempty"`
	IsRead    bool              `json:"is_read"`
	CreatedOn string            `json:"created_on"`
}
