// Package simulation holds the "is the simulation running" flag owned by a
// single presentation unit, plus the subscription channels used to tell that
// unit to re-render.
package simulation

import (
	"sync"
	"time"
)

// Store tracks whether a simulation is running. The zero value is not usable;
// call New. Toggle is the only mutation path.
type Store struct {
	mu      sync.Mutex
	running bool
	toggles uint64
	events  []chan Event
	closed  bool
	now     func() time.Time
}

type Option func(*Store)

// WithClock overrides the timestamp source used for events.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// New returns a store whose simulation is running.
func New(opts ...Option) *Store {
	store := &Store{
		running: true,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(store)
	}
	return store
}

func (s *Store) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

func (s *Store) State() State {
	return stateOf(s.Running())
}

// Toggles reports how many times Toggle has been called.
func (s *Store) Toggles() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.toggles
}

// Toggle flips the flag, notifies subscribers and returns the new value.
func (s *Store) Toggle() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.running = !s.running
	s.toggles++

	if s.closed {
		return s.running
	}

	event := Event{
		Running: s.running,
		State:   stateOf(s.running),
		Toggles: s.toggles,
		At:      s.now(),
	}
	for _, ch := range s.events {
		// Slow subscribers miss events; they can always re-read Running.
		select {
		case ch <- event:
		default:
		}
	}

	return s.running
}

// Subscribe registers a new observer channel. Subscribing to a closed store
// returns an already closed channel.
func (s *Store) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		close(ch)
		return ch
	}
	s.events = append(s.events, ch)
	return ch
}

// Close releases every subscriber. It is safe to call more than once.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	for _, ch := range s.events {
		close(ch)
	}
	s.events = nil
}
