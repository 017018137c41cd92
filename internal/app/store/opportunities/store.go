// Package opportunities is the ledger of internship postings and the
// applications students submit to them.
package opportunities

import (
	"sync"
	"time"

	"github.com/dalemusser/internhub/internal/app/system/idgen"
	"github.com/dalemusser/internhub/internal/domain/models"
	"go.uber.org/zap"
)

// Options configures a Store.
type Options struct {
	// Now returns the current time. Nil means time.Now.
	Now func() time.Time
}

// Store owns postings and applications. Mutations replace entries under
// the write lock, so readers never observe a half-applied change.
type Store struct {
	mu           sync.RWMutex
	postings     []models.Posting
	applications []models.Application

	postingIDs     *idgen.Sequence
	applicationIDs *idgen.Sequence

	now func() time.Time
	log *zap.Logger
}

// New builds a Store seeded with postings and applications.
func New(postings []models.Posting, applications []models.Application, opts Options, logger *zap.Logger) *Store {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	s := &Store{
		postingIDs:     idgen.New("int"),
		applicationIDs: idgen.New("app"),
		now:            opts.Now,
		log:            logger,
	}
	for _, p := range postings {
		if p.Status == "" {
			p.Status = models.PostingActive
		}
		s.postings = append(s.postings, p.Clone())
		s.postingIDs.Observe(p.ID)
	}
	s.postingIDs.Skip(len(s.postings))

	for _, a := range applications {
		if a.Status == "" {
			a.Status = models.ApplicationPending
		}
		if len(a.History) == 0 {
			a.History = []models.StatusChange{{Status: a.Status, At: a.AppliedDate}}
		}
		s.applications = append(s.applications, a.Clone())
		s.applicationIDs.Observe(a.ID)
	}
	s.applicationIDs.Skip(len(s.applications))
	return s
}

// today truncates now to a calendar date in UTC.
func (s *Store) today() time.Time {
	n := s.now().UTC()
	return time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, time.UTC)
}

func (s *Store) postingIndexLocked(id string) int {
	for i := range s.postings {
		if s.postings[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) applicationIndexLocked(id string) int {
	for i := range s.applications {
		if s.applications[i].ID == id {
			return i
		}
	}
	return -1
}
