package statecache

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Notifier is the in-process broadcaster: a synchronous fan-out to every
// subscriber in this process.
type Notifier struct {
	mu        sync.RWMutex
	listeners []func(Change)
}

// NewNotifier returns an empty in-process broadcaster.
func NewNotifier() *Notifier {
	return &Notifier{}
}

func (n *Notifier) Publish(_ context.Context, change Change) error {
	n.mu.RLock()
	listeners := append([]func(Change){}, n.listeners...)
	n.mu.RUnlock()

	for _, fn := range listeners {
		fn(change)
	}
	return nil
}

func (n *Notifier) Subscribe(fn func(Change)) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.listeners = append(n.listeners, fn)
}

// RedisBroadcaster relays draft changes through a Redis pub/sub channel so
// every API instance sees saves made by any of them. Locally published
// changes are also delivered to local subscribers directly; messages arriving
// over the channel carry changes from other processes.
type RedisBroadcaster struct {
	client  *redis.Client
	channel string
	origin  string
	local   *Notifier
	logger  *zap.Logger
	cancel  context.CancelFunc
}

// NewRedisBroadcaster starts listening on the channel immediately.
func NewRedisBroadcaster(client *redis.Client, channel string, logger *zap.Logger) *RedisBroadcaster {
	if logger == nil {
		logger = zap.NewNop()
	}
	ctx, cancel := context.WithCancel(context.Background())
	b := &RedisBroadcaster{
		client:  client,
		channel: channel,
		origin:  uuid.NewString(),
		local:   NewNotifier(),
		logger:  logger,
		cancel:  cancel,
	}
	go b.listen(ctx)
	return b
}

func (b *RedisBroadcaster) Publish(ctx context.Context, change Change) error {
	if err := b.local.Publish(ctx, change); err != nil {
		return err
	}

	change.Origin = b.origin
	payload, err := json.Marshal(change)
	if err != nil {
		return err
	}
	if err := b.client.Publish(ctx, b.channel, payload).Err(); err != nil {
		// Local subscribers are already notified; cross-process delivery
		// failing should not fail the save.
		b.logger.Warn("assignment change publish failed",
			zap.String("channel", b.channel), zap.Error(err))
	}
	return nil
}

func (b *RedisBroadcaster) Subscribe(fn func(Change)) {
	b.local.Subscribe(fn)
}

// Close stops the channel listener.
func (b *RedisBroadcaster) Close() {
	b.cancel()
}

func (b *RedisBroadcaster) listen(ctx context.Context) {
	sub := b.client.Subscribe(ctx, b.channel)
	defer sub.Close()

	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-sub.Channel():
			if !ok {
				return
			}
			var change Change
			if err := json.Unmarshal([]byte(msg.Payload), &change); err != nil {
				b.logger.Warn("bad assignment change payload",
					zap.String("channel", b.channel), zap.Error(err))
				continue
			}
			if change.Origin == b.origin {
				// Our own publish; local subscribers already heard it.
				continue
			}
			_ = b.local.Publish(ctx, change)
		}
	}
}
