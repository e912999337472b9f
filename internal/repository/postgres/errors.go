package postgres

import (
	"errors"

	"github.com/lib/pq"
)

// Postgres error codes that mean the feature's table or procedure was
// never provisioned or the role cannot see it. Callers treat these as
// "feature not provisioned" and fall back to empty state or a local code
// path instead of surfacing an error.
const (
	codeUndefinedTable        = "42P01"
	codeUndefinedFunction     = "42883"
	codeInsufficientPrivilege = "42501"
)

// IsNotProvisioned reports whether err is a missing-table,
// missing-function or permission-denied error.
func IsNotProvisioned(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	switch string(pqErr.Code) {
	case codeUndefinedTable, codeUndefinedFunction, codeInsufficientPrivilege:
		return true
	}
	return false
}
