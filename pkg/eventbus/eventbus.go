package eventbus

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Event is anything that can be published on the bus.
type Event interface {
	Name() string
}

// Listener handles a published event.
type Listener func(ctx context.Context, event Event) error

type Bus struct {
	listeners map[string][]Listener
	mu        sync.RWMutex
	logger    *zap.Logger
}

func New(logger *zap.Logger) *Bus {
	return &Bus{
		listeners: make(map[string][]Listener),
		logger:    logger,
	}
}

func (b *Bus) Subscribe(eventName string, listener Listener) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.listeners[eventName] = append(b.listeners[eventName], listener)
}

// Publish invokes every subscriber asynchronously. Listener errors are
// logged, not propagated to the publisher.
func (b *Bus) Publish(ctx context.Context, event Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	eventName := event.Name()
	for _, listener := range b.listeners[eventName] {
		go func(l Listener) {
			lctx, cancel := context.WithTimeout(context.Background(), time.Minute)
			defer cancel()

			if err := l(lctx, event); err != nil {
				b.logger.Error("event listener failed",
					zap.String("event", eventName),
					zap.Error(err),
				)
			}
		}(listener)
	}
}
