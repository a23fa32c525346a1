package template

import (
	"sort"
	"sync"
)

// SequenceStore manages named auto-incrementing sequences for
// {{sequence("name")}} expressions. It is safe for concurrent use.
type SequenceStore struct {
	mu   sync.RWMutex
	next map[string]int64
	last map[string]int64
}

// NewSequenceStore creates an empty sequence store.
func NewSequenceStore() *SequenceStore {
	return &SequenceStore{
		next: make(map[string]int64),
		last: make(map[string]int64),
	}
}

// Next returns the next value of a sequence and advances it.
// A sequence seen for the first time starts at start.
func (s *SequenceStore) Next(name string, start int64) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	val, ok := s.next[name]
	if !ok {
		val = start
	}
	s.next[name] = val + 1
	s.last[name] = val
	return val
}

// Current returns the last value issued by Next. The boolean is false when
// the sequence has not been used since it was created or reset.
func (s *SequenceStore) Current(name string) (int64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, ok := s.last[name]
	return val, ok
}

// Reset forgets a sequence so the next call to Next restarts it.
func (s *SequenceStore) Reset(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.next, name)
	delete(s.last, name)
}

// Names returns the names of all active sequences, sorted.
func (s *SequenceStore) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.next))
	for name := range s.next {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
