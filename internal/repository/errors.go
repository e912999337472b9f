package repository

import "errors"

// ErrNotProvisioned marks a missing-table or permission-denied failure.
// Callers treat the feature as not provisioned and fall back to empty
// state instead of surfacing the error.
var ErrNotProvisioned = errors.New("feature not provisioned")
