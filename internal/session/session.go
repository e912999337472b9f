// Package session implements the deck-hub session cache: a resolved lead
// identity persisted under a fixed key namespace with an absolute expiry.
// This is a low-security convenience cache, not a credential vault; there
// is no server-side token revocation beyond deleting the entry.
package session

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"deckhub-backend/internal/domain"
	"deckhub-backend/internal/logger"

	"github.com/google/uuid"
)

// StorageKeyPrefix namespaces every session entry in the backing store.
const StorageKeyPrefix = "deckhub_session:"

var ErrNoSession = errors.New("no active session")

// Session pairs a resolved identity with its absolute expiry. A session
// past ExpiresAt is treated as absent and purged on next read; it is never
// refreshed by activity.
type Session struct {
	User      domain.Lead `json:"user"`
	ExpiresAt time.Time   `json:"expiresAt"`
}

// Store is the persistence behind the cache. The file store backs the
// binary; the memory store backs tests.
type Store interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	Delete(key string) error
	Keys() ([]string, error)
}

// Manager creates, restores, and destroys sessions. The clock is
// injectable so expiry behavior is testable.
type Manager struct {
	store Store
	ttl   time.Duration
	now   func() time.Time
}

func NewManager(store Store, ttl time.Duration) *Manager {
	return &Manager{store: store, ttl: ttl, now: time.Now}
}

// NewManagerWithClock is used by tests that need a fake clock.
func NewManagerWithClock(store Store, ttl time.Duration, now func() time.Time) *Manager {
	return &Manager{store: store, ttl: ttl, now: now}
}

// Login persists a new session for the lead and returns its id.
func (m *Manager) Login(user domain.Lead) (string, *Session, error) {
	sess := &Session{
		User:      user,
		ExpiresAt: m.now().Add(m.ttl),
	}
	data, err := json.Marshal(sess)
	if err != nil {
		return "", nil, err
	}
	id := uuid.NewString()
	if err := m.store.Set(StorageKeyPrefix+id, data); err != nil {
		return "", nil, err
	}
	return id, sess, nil
}

// Restore reads a session back. A parse failure or an expired entry
// deletes the key and reports no session.
func (m *Manager) Restore(id string) (*Session, error) {
	key := StorageKeyPrefix + id
	data, ok, err := m.store.Get(key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNoSession
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		logger.Warn("Discarding unreadable session entry", "key", key, "error", err)
		_ = m.store.Delete(key)
		return nil, ErrNoSession
	}
	if !sess.ExpiresAt.After(m.now()) {
		_ = m.store.Delete(key)
		return nil, ErrNoSession
	}
	return &sess, nil
}

// Logout destroys the session synchronously.
func (m *Manager) Logout(id string) error {
	return m.store.Delete(StorageKeyPrefix + id)
}

// PurgeExpired sweeps the store and removes every expired or unreadable
// entry. Returns the number of entries removed.
func (m *Manager) PurgeExpired() (int, error) {
	keys, err := m.store.Keys()
	if err != nil {
		return 0, err
	}

	purged := 0
	for _, key := range keys {
		if !strings.HasPrefix(key, StorageKeyPrefix) {
			continue
		}
		data, ok, err := m.store.Get(key)
		if err != nil || !ok {
			continue
		}
		var sess Session
		if err := json.Unmarshal(data, &sess); err != nil || !sess.ExpiresAt.After(m.now()) {
			if err := m.store.Delete(key); err == nil {
				purged++
			}
		}
	}
	return purged, nil
}
