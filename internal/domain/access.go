package domain

// DeckAccessGrant authorizes one lead to open one deck. Uniqueness per
// (lead, deck) is enforced by check-before-write at the application layer,
// not by the schema.
type DeckAccessGrant struct {
	LeadID    int32  `json:"lead_id"`
	DeckID    string `json:"deck_id"`
	GrantedBy string `json:"granted_by"`
	GrantedOn string `json:"granted_on"`
}

type AccessRequestStatus string

const (
	AccessRequestStatusPending  AccessRequestStatus = "pending"
	AccessRequestStatusApproved AccessRequestStatus = "approved"
	AccessRequestStatusDenied   AccessRequestStatus = "denied"
)

// DeckAccessRequest is created by a lead who cannot yet open a deck and is
// resolved by an admin action that also mutates the grant table and the
// originating notification.
type DeckAccessRequest struct {
	ID          string              `json:"id"`
	UserID      int32               `json:"user_id"`
	DeckID      string              `json:"deck_id"`
	Status      AccessRequestStatus `json:"status"`
	RequestedOn string              `json:"requested_on"`
}

// DeckReadStatus records when a lead first opened a deck and when they
// finished reading it.
type DeckReadStatus struct {
	UserID       int32   `json:"user_id"`
	DeckID       string  `json:"deck_id"`
	OpenedOn     string  `json:"opened_on"`
	MarkedReadOn *string `json:"marked_read_on,omitempty"`
}
