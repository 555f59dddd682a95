package store

import "sync"

// listenerSet fans out change notifications to subscribed callbacks.
// Callbacks run outside the owning store's state lock, so they may call
// back into the store.
type listenerSet struct {
	mu   sync.Mutex
	next int
	fns  map[int]func()
}

// subscribe registers fn and returns a function that removes it.
func (l *listenerSet) subscribe(fn func()) func() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.fns == nil {
		l.fns = make(map[int]func())
	}
	id := l.next
	l.next++
	l.fns[id] = fn

	return func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		delete(l.fns, id)
	}
}

func (l *listenerSet) broadcast() {
	l.mu.Lock()
	fns := make([]func(), 0, len(l.fns))
	for _, fn := range l.fns {
		fns = append(fns, fn)
	}
	l.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
