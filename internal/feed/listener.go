package feed

import (
	"context"
	"encoding/json"
	"time"

	"deckhub-backend/internal/logger"

	"github.com/lib/pq"
)

const (
	minReconnectInterval = 10 * time.Second
	maxReconnectInterval = time.Minute
)

// PQSource consumes Postgres NOTIFY payloads from a channel carrying
// {op, row} JSON emitted by triggers on admin_notifications.
type PQSource struct {
	listener *pq.Listener
	events   chan Event
	cancel   context.CancelFunc
}

// NewPQSource connects a listener and starts decoding notifications until
// ctx is cancelled or Close is called. The events channel is closed on
// teardown so consumers stop applying events after cancellation.
func NewPQSource(ctx context.Context, conninfo, channel string) (*PQSource, error) {
	listener := pq.NewListener(conninfo, minReconnectInterval, maxReconnectInterval, func(ev pq.ListenerEventType, err error) {
		if err != nil {
			logger.Error("Notification listener event", "event", int(ev), "error", err)
		}
	})
	if err := listener.Listen(channel); err != nil {
		listener.Close()
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)
	s := &PQSource{
		listener: listener,
		events:   make(chan Event, 16),
		cancel:   cancel,
	}
	go s.run(ctx, channel)
	return s, nil
}

func (s *PQSource) Events() <-chan Event {
	return s.events
}

func (s *PQSource) Close() error {
	s.cancel()
	return s.listener.Close()
}

func (s *PQSource) run(ctx context.Context, channel string) {
	defer close(s.events)
	for {
		select {
		case <-ctx.Done():
			return
		case n, ok := <-s.listener.Notify:
			if !ok {
				return
			}
			// A nil notification signals reconnection. Anything NOTIFYed
			// during the outage is gone, so tell consumers to reload.
			if n == nil {
				logger.Warn("Notification listener reconnected", "channel", channel)
				select {
				case s.events <- Event{Op: OpResync}:
				case <-ctx.Done():
					return
				}
				continue
			}
			var ev Event
			if err := json.Unmarshal([]byte(n.Extra), &ev); err != nil {
				logger.Error("Failed to decode notification payload", "channel", channel, "error", err)
				continue
			}
			select {
			case s.events <- ev:
			case <-ctx.Done():
				return
			}
		case <-time.After(90 * time.Second):
			if err := s.listener.Ping(); err != nil {
				logger.Error("Notification listener ping failed", "error", err)
			}
		}
	}
}
