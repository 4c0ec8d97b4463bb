package backend

import (
	"context"
	"encoding/json"
	"io"
	"time"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

// NotifyChannel is the Postgres NOTIFY channel the migrate triggers emit
// on. Payloads are JSON Change documents.
const NotifyChannel = "shop_changes"

const (
	minReconnectInterval = time.Second
	maxReconnectInterval = 30 * time.Second
	pingInterval         = 90 * time.Second
)

type subscription struct {
	listener *pq.Listener
	cancel   context.CancelFunc
	done     chan struct{}
}

func (s *subscription) Close() error {
	s.cancel()
	err := s.listener.Close()
	<-s.done
	return err
}

// Subscribe opens a dedicated LISTEN connection and invokes fn for every
// change pushed on the shop channel. The listener reconnects on its own;
// missed notifications are harmless because consumers re-fetch the full
// state on every event.
func (p *Postgres) Subscribe(ctx context.Context, fn func(Change)) (io.Closer, error) {
	log := p.log.With(zap.String("channel", NotifyChannel))

	listener := pq.NewListener(p.dsn, minReconnectInterval, maxReconnectInterval,
		func(ev pq.ListenerEventType, err error) {
			if err != nil {
				log.Warn("listener event", zap.Int("event", int(ev)), zap.Error(err))
			}
		})

	if err := listener.Listen(NotifyChannel); err != nil {
		listener.Close()
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)
	sub := &subscription{listener: listener, cancel: cancel, done: make(chan struct{})}

	go func() {
		defer close(sub.done)
		for {
			select {
			case <-ctx.Done():
				return
			case n, ok := <-listener.Notify:
				if !ok {
					return
				}
				if n == nil {
					// nil notification after a reconnect; state may have
					// changed while disconnected.
					fn(Change{})
					continue
				}
				var ch Change
				if err := json.Unmarshal([]byte(n.Extra), &ch); err != nil {
					log.Warn("unparsable notification payload", zap.String("payload", n.Extra))
					continue
				}
				fn(ch)
			case <-time.After(pingInterval):
				if err := listener.Ping(); err != nil {
					log.Warn("listener ping failed", zap.Error(err))
				}
			}
		}
	}()

	return sub, nil
}
