package command

import "sync"

// Set tracks which commands are currently permitted. Commands are enabled
// unless explicitly disabled. Mutations raise a dirty flag which the
// application loop turns into a CommandSetChanged broadcast; observers
// then re-query the set rather than diff it.
//
// The single-threaded run loop does not strictly need the mutex, but the
// set is process-shared state and stays safe if input polling ever moves
// to another goroutine.
type Set struct {
	mu       sync.Mutex
	disabled map[Id]bool
	changed  bool
}

// NewSet creates an empty set with every command enabled.
func NewSet() *Set {
	return &Set{disabled: make(map[Id]bool)}
}

// Enable marks the command as permitted.
func (s *Set) Enable(id Id) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.disabled[id] {
		delete(s.disabled, id)
		s.changed = true
	}
}

// Disable marks the command as not permitted.
func (s *Set) Disable(id Id) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.disabled[id] {
		s.disabled[id] = true
		s.changed = true
	}
}

// Enabled reports whether the command is currently permitted.
func (s *Set) Enabled(id Id) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.disabled[id]
}

// Changed reports whether the set has been mutated since the last
// ClearChanged.
func (s *Set) Changed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.changed
}

// ClearChanged resets the dirty flag once a broadcast has been delivered.
func (s *Set) ClearChanged() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.changed = false
}

// defaultSet is the process-wide enablement set. Tests that need isolation
// construct their own Set and thread it explicitly.
var defaultSet = NewSet()

// Default returns the process-wide set.
func Default() *Set {
	return defaultSet
}

// EnableCommand enables id in the process-wide set.
func EnableCommand(id Id) {
	defaultSet.Enable(id)
}

// DisableCommand disables id in the process-wide set.
func DisableCommand(id Id) {
	defaultSet.Disable(id)
}

// CommandEnabled reports id's state in the process-wide set.
func CommandEnabled(id Id) bool {
	return defaultSet.Enabled(id)
}
