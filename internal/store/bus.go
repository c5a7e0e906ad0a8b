package store

import "sync"

// bus fans out change signals per collection. Channels are buffered with
// capacity 1 and sends never block, so a subscriber that has not drained
// yet still holds exactly one pending signal.
type bus struct {
	mu   sync.Mutex
	subs map[string]map[int]chan struct{}
	next int
}

func newBus() *bus {
	return &bus{subs: make(map[string]map[int]chan struct{})}
}

func (b *bus) subscribe(collection string) (<-chan struct{}, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := b.next
	b.next++
	ch := make(chan struct{}, 1)
	if b.subs[collection] == nil {
		b.subs[collection] = make(map[int]chan struct{})
	}
	b.subs[collection][id] = ch
	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs[collection], id)
	}
	return ch, cancel
}

func (b *bus) publish(collection string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, ch := range b.subs[collection] {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
