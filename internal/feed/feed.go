// Package feed models the live notification channel as a consumer of a
// server-push event stream. Events are tagged insert/update rows feeding a
// pure reducer over the in-memory list, so the concrete transport (Postgres
// LISTEN/NOTIFY in production) can be swapped for a fake source in tests.
package feed

import "deckhub-backend/internal/domain"

type Op string

const (
	OpInsert Op = "insert"
	OpUpdate Op = "update"
	// OpResync carries no row. A source emits it after a dropped
	// connection; consumers reload state they may have missed.
	OpResync Op = "resync"
)

// Event is one change to the admin_notifications table.
type Event struct {
	Op  Op                       `json:"op"`
	Row domain.AdminNotification `json:"row"`
}

// Source yields events until its channel is closed.
type Source interface {
	Events() <-chan Event
	Close() error
}

// Reduce applies one event to a newest-first notification list and returns
// the new list, capped at limit entries. Inserts prepend; updates replace
// the matching row by id in place, preserving order. An update for an
// unknown id is dropped, as is any op the reducer does not model (resync
// is the consumer's job, not the reducer's).
func Reduce(list []domain.AdminNotification, ev Event, limit int) []domain.AdminNotification {
	switch ev.Op {
	case OpInsert:
		out := make([]domain.AdminNotification, 0, len(list)+1)
		out = append(out, ev.Row)
		out = append(out, list...)
		if limit > 0 && len(out) > limit {
			out = out[:limit]
		}
		return out
	case OpUpdate:
		for i := range list {
			if list[i].ID == ev.Row.ID {
				out := make([]domain.AdminNotification, len(list))
				copy(out, list)
				out[i] = ev.Row
				return out
			}
		}
	}
	return list
}
