package app

import (
	"sync"

	"github.com/go-drift/native/pkg/core"
)

// event is a queued message or rebuild request.
type event struct {
	msg     *core.Message
	rebuild bool
}

// queue is an unbounded FIFO that never blocks producers. wake holds at
// most one pending signal, so a consumer that drains after every wake-up
// sees every event.
type queue[E any] struct {
	mu     sync.Mutex
	events []E
	wake   chan struct{}
}

func newQueue[E any]() *queue[E] {
	return &queue[E]{wake: make(chan struct{}, 1)}
}

func (q *queue[E]) push(e E) {
	q.mu.Lock()
	q.events = append(q.events, e)
	q.mu.Unlock()
	select {
	case q.wake <- struct{}{}:
	default:
	}
}

func (q *queue[E]) drain() []E {
	q.mu.Lock()
	defer q.mu.Unlock()
	events := q.events
	q.events = nil
	return events
}
