// Package idgen hands out prefixed, monotonically increasing ids
// ("int6", "app2", …). A counter never goes backwards, so deleting an
// entity cannot cause a later id to collide with a live one.
package idgen

import (
	"strconv"
	"strings"
	"sync"
)

// Sequence generates ids of the form <prefix><n>.
type Sequence struct {
	mu     sync.Mutex
	prefix string
	last   int
}

// New returns a sequence whose first id is <prefix>1.
func New(prefix string) *Sequence {
	return &Sequence{prefix: prefix}
}

// Next returns the next id.
func (s *Sequence) Next() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.last++
	return s.prefix + strconv.Itoa(s.last)
}

// Observe moves the counter past an existing id so seeded data is never
// reissued. Ids with a different prefix or a non-numeric suffix are ignored.
func (s *Sequence) Observe(id string) {
	rest, ok := strings.CutPrefix(id, s.prefix)
	if !ok {
		return
	}
	n, err := strconv.Atoi(rest)
	if err != nil {
		return
	}
	s.mu.Lock()
	if n > s.last {
		s.last = n
	}
	s.mu.Unlock()
}

// Skip advances the counter to at least n, so the next id is at least
// <prefix><n+1>.
func (s *Sequence) Skip(n int) {
	s.mu.Lock()
	if n > s.last {
		s.last = n
	}
	s.mu.Unlock()
}
