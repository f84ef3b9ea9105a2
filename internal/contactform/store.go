package contactform

import "sync"

// Store holds the current State and notifies subscribers after every change.
// It is safe for concurrent use.
type Store struct {
	mu     sync.Mutex
	state  State
	nextID int
	subs   map[int]func(State)
}

func NewStore(initial State) *Store {
	return &Store{
		state: initial,
		subs:  make(map[int]func(State)),
	}
}

// State returns a snapshot of the current state
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registers fn to receive every new state; the returned func removes it
func (s *Store) Subscribe(fn func(State)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.subs[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// Update applies fn atomically. When fn returns an error the state is kept
// and nobody is notified.
func (s *Store) Update(fn func(State) (State, error)) (State, error) {
	s.mu.Lock()
	next, err := fn(s.state)
	if err != nil {
		current := s.state
		s.mu.Unlock()
		return current, err
	}
	s.state = next
	subs := make([]func(State), 0, len(s.subs))
	for _, sub := range s.subs {
		subs = append(subs, sub)
	}
	s.mu.Unlock()

	// Notify outside the lock so subscribers may read or update the store
	for _, sub := range subs {
		sub(next)
	}
	return next, nil
}

// Apply is Update for functions that cannot fail
func (s *Store) Apply(fn func(State) State) State {
	next, _ := s.Update(func(st State) (State, error) {
		return fn(st), nil
	})
	return next
}
