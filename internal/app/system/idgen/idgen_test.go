package idgen_test

import (
	"sync"
	"testing"

	"github.com/dalemusser/internhub/internal/app/system/idgen"
)

func TestSequence_Next(t *testing.T) {
	s := idgen.New("int")
	if got := s.Next(); got != "int1" {
		t.Errorf("first: got %q", got)
	}
	if got := s.Next(); got != "int2" {
		t.Errorf("second: got %q", got)
	}
}

func TestSequence_Observe(t *testing.T) {
	s := idgen.New("app")
	s.Observe("app7")
	s.Observe("app3")
	s.Observe("int99")
	s.Observe("appx")
	if got := s.Next(); got != "app8" {
		t.Errorf("got %q, want app8", got)
	}
}

func TestSequence_Skip(t *testing.T) {
	s := idgen.New("c")
	s.Skip(5)
	s.Skip(2)
	if got := s.Next(); got != "c6" {
		t.Errorf("got %q, want c6", got)
	}
}

func TestSequence_ConcurrentUnique(t *testing.T) {
	s := idgen.New("n")
	const workers, per = 8, 100
	var (
		mu   sync.Mutex
		seen = make(map[string]bool)
		wg   sync.WaitGroup
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < per; j++ {
				id := s.Next()
				mu.Lock()
				seen[id] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	if len(seen) != workers*per {
		t.Errorf("expected %d unique ids, got %d", workers*per, len(seen))
	}
}
