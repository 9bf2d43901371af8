package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// entry holds one session plus the outcome of its bring-up. ready is closed
// once Join has finished, so concurrent joiners never see a half-joined
// controller.
type entry struct {
	controller *Controller
	ready      chan struct{}
	err        error
}

// Registry tracks the live dialog sessions, one per (user, companion) pair.
type Registry struct {
	deps Deps

	mu       sync.Mutex
	sessions map[string]*entry
}

func NewRegistry(deps Deps) *Registry {
	return &Registry{
		deps:     deps,
		sessions: make(map[string]*entry),
	}
}

func sessionKey(userID, companionID uuid.UUID) string {
	return fmt.Sprintf("%s:%s", userID, companionID)
}

// Join returns the existing session for the pair or brings a new one up.
// A second join arriving while the first is still in flight waits for that
// bring-up instead of observing the controller mid-join.
func (r *Registry) Join(ctx context.Context, userID, companionID uuid.UUID) (Session, error) {
	key := sessionKey(userID, companionID)

	r.mu.Lock()
	if existing, ok := r.sessions[key]; ok {
		r.mu.Unlock()
		<-existing.ready
		if existing.err != nil {
			return nil, existing.err
		}
		return existing.controller, nil
	}

	e := &entry{
		controller: NewController(r.deps, userID, companionID),
		ready:      make(chan struct{}),
	}
	r.sessions[key] = e
	r.mu.Unlock()

	e.err = e.controller.Join(ctx)
	close(e.ready)

	if e.err != nil {
		r.mu.Lock()
		if current, ok := r.sessions[key]; ok && current == e {
			delete(r.sessions, key)
		}
		r.mu.Unlock()
		return nil, e.err
	}

	return e.controller, nil
}

// Get returns the session only once its bring-up has completed successfully.
func (r *Registry) Get(userID, companionID uuid.UUID) (Session, bool) {
	r.mu.Lock()
	e, ok := r.sessions[sessionKey(userID, companionID)]
	r.mu.Unlock()
	if !ok {
		return nil, false
	}

	select {
	case <-e.ready:
		if e.err != nil {
			return nil, false
		}
		return e.controller, true
	default:
		return nil, false
	}
}

func (r *Registry) Leave(userID, companionID uuid.UUID) {
	key := sessionKey(userID, companionID)

	r.mu.Lock()
	e, ok := r.sessions[key]
	if ok {
		delete(r.sessions, key)
	}
	r.mu.Unlock()

	if ok {
		<-e.ready
		e.controller.Leave()
	}
}

// CloseAll leaves every session. Runs on shutdown so no subscription or
// typing timer outlives the process.
func (r *Registry) CloseAll() {
	r.mu.Lock()
	entries := make([]*entry, 0, len(r.sessions))
	for _, e := range r.sessions {
		entries = append(entries, e)
	}
	r.sessions = make(map[string]*entry)
	r.mu.Unlock()

	for _, e := range entries {
		<-e.ready
		e.controller.Leave()
	}
}
