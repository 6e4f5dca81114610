package bus

import (
	"sync"

	"github.com/google/uuid"
)

// Memory is an in-memory pub-sub bus with synchronous dispatch.
// Handlers run on the publisher's goroutine in unspecified order; a
// panicking handler is recovered so it cannot take the publisher down.
type Memory struct {
	mu     sync.RWMutex
	topics map[string]map[string]func(payload any)
	index  map[string]string // subscription id -> topic
}

// NewMemory creates an empty in-memory bus.
func NewMemory() *Memory {
	return &Memory{
		topics: make(map[string]map[string]func(payload any)),
		index:  make(map[string]string),
	}
}

// Subscribe registers fn for topic and returns the subscription id used
// to unsubscribe. A nil fn returns an empty id and subscribes nothing.
func (b *Memory) Subscribe(topic string, fn func(payload any)) string {
	if fn == nil {
		return ""
	}

	id := uuid.NewString()

	b.mu.Lock()
	defer b.mu.Unlock()

	subs, ok := b.topics[topic]
	if !ok {
		subs = make(map[string]func(payload any))
		b.topics[topic] = subs
	}
	subs[id] = fn
	b.index[id] = topic

	return id
}

// Unsubscribe removes a subscription by id. Unknown ids are ignored.
func (b *Memory) Unsubscribe(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	topic, ok := b.index[id]
	if !ok {
		return
	}
	delete(b.index, id)

	subs := b.topics[topic]
	delete(subs, id)
	if len(subs) == 0 {
		delete(b.topics, topic)
	}
}

// Publish delivers payload to every subscriber of topic. Subscribers
// added while a publish is in flight are not called for that publish.
func (b *Memory) Publish(topic string, payload any) {
	b.mu.RLock()
	handlers := make([]func(payload any), 0, len(b.topics[topic]))
	for _, fn := range b.topics[topic] {
		handlers = append(handlers, fn)
	}
	b.mu.RUnlock()

	for _, fn := range handlers {
		safeCall(fn, payload)
	}
}

func safeCall(fn func(payload any), payload any) {
	defer func() {
		_ = recover()
	}()
	fn(payload)
}
