package domain

// DeckReview is the internal QA checklist per deck, per reviewer name.
// Writes are upserts keyed on (deck_id, reviewer_name) and are only visible
// to super-admin reviewers.
type DeckReview struct {
	DeckID       string `json:"deck_id"`
	ReviewerName string `json:"reviewer_name"`
	ContentOK    bool   `json:"content_ok"`
	DesignOK     bool   `json:"design_ok"`
	DesktopOK    bool   `json:"desktop_ok"`
	MobileOK     bool   `json:"mobile_ok"`
	UpdatedOn    string `json:"updated_on"`
}
