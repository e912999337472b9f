package domain

import "strings"

// Lead is a contact record created by a marketing form submission. A lead
// doubles as the low-security login identity for the deck hub.
type Lead struct {
	ID           int32  `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Company      string `json:"company"`
	PasswordHash string `json:"-"`
	Source       string `json:"source"`
	CreatedOn    string `json:"created_on"`
}

// NormalizeEmail lower-cases and trims an email. A lead is uniquely
// identified by its normalized email.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
