package input

import (
	"sort"
	"sync"
)

// KeyEvent is one key press travelling through a Source.
type KeyEvent struct {
	Key       string
	prevented bool
}

// PreventDefault marks the host's default handling (scrolling) as suppressed.
func (e *KeyEvent) PreventDefault() { e.prevented = true }

// DefaultPrevented reports whether any handler suppressed the default.
func (e *KeyEvent) DefaultPrevented() bool { return e.prevented }

// Handler receives dispatched key events.
type Handler func(*KeyEvent)

// Source is a key event source that handlers subscribe to, standing in for a
// window-level keydown listener. Handlers run in subscription order on the
// dispatching goroutine.
type Source struct {
	mu       sync.Mutex
	handlers map[uint64]Handler
	nextID   uint64
}

// NewSource returns a source with no subscribers.
func NewSource() *Source {
	return &Source{handlers: make(map[uint64]Handler)}
}

// Subscribe registers h until the returned subscription is closed.
func (s *Source) Subscribe(h Handler) *Subscription {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	id := s.nextID
	s.handlers[id] = h
	return &Subscription{src: s, id: id}
}

// Dispatch delivers a key press to all current subscribers and returns the
// event so the caller can honor DefaultPrevented.
func (s *Source) Dispatch(k string) *KeyEvent {
	ev := &KeyEvent{Key: k}
	for _, h := range s.snapshot() {
		h(ev)
	}
	return ev
}

// Len returns the number of live subscriptions.
func (s *Source) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.handlers)
}

func (s *Source) snapshot() []Handler {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]uint64, 0, len(s.handlers))
	for id := range s.handlers {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]Handler, len(ids))
	for i, id := range ids {
		out[i] = s.handlers[id]
	}
	return out
}

// Subscription is a live registration on a Source.
type Subscription struct {
	src  *Source
	id   uint64
	once sync.Once
}

// Close removes the handler. Safe to call more than once.
func (sub *Subscription) Close() {
	if sub == nil {
		return
	}
	sub.once.Do(func() {
		sub.src.mu.Lock()
		defer sub.src.mu.Unlock()
		delete(sub.src.handlers, sub.id)
	})
}

// Listen mounts the key mapper: every key dispatched on src is applied to
// nav through m until the subscription is closed. onAction, if non-nil, is
// told about every handled key.
func Listen(src *Source, m *Mapper, nav Navigator, onAction func(Action)) *Subscription {
	return src.Subscribe(func(ev *KeyEvent) {
		if a := m.Apply(nav, ev); a != ActionNone && onAction != nil {
			onAction(a)
		}
	})
}
