package core

import (
	"sync"

	"github.com/modelgrid/modelgrid/internal/domain/model"
)

// ContextStore publishes which model list is currently on screen so other
// parts of the application can read it. It is an explicit dependency
// rather than a package-level global.
//
// Set is guarded by equality on the identity tuple: a publish happens
// once per distinct (app, model) pair, not once per render. Concurrent
// publishes are last-write-wins in call order.
type ContextStore struct {
	mu          sync.RWMutex
	current     model.RouteIdentity
	hasCurrent  bool
	subscribers []func(model.RouteIdentity)
}

// NewContextStore creates an empty ContextStore.
func NewContextStore() *ContextStore {
	return &ContextStore{}
}

// Set publishes the identity if it differs from the current one and
// reports whether a publish happened.
func (s *ContextStore) Set(id model.RouteIdentity) bool {
	s.mu.Lock()
	if s.hasCurrent && s.current.Equal(id) {
		s.mu.Unlock()
		return false
	}
	s.current = id
	s.hasCurrent = true
	subs := make([]func(model.RouteIdentity), len(s.subscribers))
	copy(subs, s.subscribers)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(id)
	}
	return true
}

// Current returns the last published identity and whether one exists.
func (s *ContextStore) Current() (model.RouteIdentity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current, s.hasCurrent
}

// Subscribe registers a callback invoked on every publish. Callbacks run
// synchronously on the publishing goroutine, in registration order.
func (s *ContextStore) Subscribe(fn func(model.RouteIdentity)) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}
