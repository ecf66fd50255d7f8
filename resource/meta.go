package resource

import "sync"

// Meta is the bookkeeping every record embeds: identity, persisted flag and
// the errors of the last validation or save.
//
// A Meta must not be copied after first use.
type Meta struct {
	// saving serialises mutating requests on one record.
	saving sync.Mutex

	mu        sync.RWMutex
	id        int64
	persisted bool
	errors    Errors
}

// Record returns the receiver; it lets embedding records satisfy Model.
func (s *Meta) Record() *Meta { return s }

// ID returns the server-assigned identifier, 0 until persisted.
func (s *Meta) ID() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.id
}

// Persisted reports whether the record exists on the server.
func (s *Meta) Persisted() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.persisted
}

// Errors returns a copy of the current errors.
func (s *Meta) Errors() Errors {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.errors.Clone()
}

// markPersisted records a successful save or load.
func (s *Meta) markPersisted(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id != 0 {
		s.id = id
	}
	s.persisted = true
	s.errors = nil
}

// replaceErrors overwrites the errors wholesale.
func (s *Meta) replaceErrors(e Errors) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errors = e.Clone()
}
