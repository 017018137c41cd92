// Package office is the career office ledger: company registration review,
// the internship cycle, workshops, internship reports, assessments,
// appointments, the notification mailbox and dashboard statistics.
package office

import (
	"math/rand/v2"
	"sync"
	"time"

	"github.com/dalemusser/internhub/internal/app/system/idgen"
	"github.com/dalemusser/internhub/internal/domain/models"
	"go.uber.org/zap"
)

// CompanyVerifier flips the verification flag of a registered company.
// The identity store implements it.
type CompanyVerifier interface {
	SetCompanyVerified(email string, verified bool) bool
}

// ActorDirectory resolves actor ids. The identity store implements it.
type ActorDirectory interface {
	Lookup(id string) (models.Actor, bool)
}

// PostingSource is read-only access to the posting ledger, used for
// statistics.
type PostingSource interface {
	Postings() []models.Posting
}

// Scorer produces an assessment score.
type Scorer func() int

// RandomScorer draws a score uniformly from [60, 100].
func RandomScorer() int {
	return 60 + rand.IntN(41)
}

// Seed is the initial content of the ledger.
type Seed struct {
	CompanyApplications []models.CompanyApplication
	Reports             []models.InternshipReport
	Workshops           []models.Workshop
	Cycles              models.CycleSet
	Assessments         []models.Assessment
}

// Options wires the ledger to its collaborators. Every field is optional.
type Options struct {
	Verifier  CompanyVerifier
	Directory ActorDirectory
	Postings  PostingSource
	Scorer    Scorer
	Now       func() time.Time
}

// Store is the office ledger. It is safe for concurrent use.
type Store struct {
	mu sync.RWMutex

	companyApps   []models.CompanyApplication
	reports       []models.InternshipReport
	workshops     []models.Workshop
	cycles        models.CycleSet
	assessments   []models.Assessment
	results       []models.AssessmentResult
	appointments  []models.Appointment
	notifications []models.Notification

	companyAppIDs  *idgen.Sequence
	reportIDs      *idgen.Sequence
	workshopIDs    *idgen.Sequence
	appointmentIDs *idgen.Sequence

	verifier  CompanyVerifier
	directory ActorDirectory
	postings  PostingSource
	score     Scorer
	now       func() time.Time
	log       *zap.Logger
}

// New builds a ledger holding seed.
func New(seed Seed, opts Options, logger *zap.Logger) *Store {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Scorer == nil {
		opts.Scorer = RandomScorer
	}
	s := &Store{
		cycles:         seed.Cycles,
		assessments:    append([]models.Assessment(nil), seed.Assessments...),
		companyAppIDs:  idgen.New("ca"),
		reportIDs:      idgen.New("ir"),
		workshopIDs:    idgen.New("ws"),
		appointmentIDs: idgen.New("apt"),
		verifier:       opts.Verifier,
		directory:      opts.Directory,
		postings:       opts.Postings,
		score:          opts.Scorer,
		now:            opts.Now,
		log:            logger,
	}
	s.cycles.Previous = append([]models.Cycle(nil), seed.Cycles.Previous...)

	for _, c := range seed.CompanyApplications {
		if c.Status == "" {
			c.Status = models.ReviewPending
		}
		s.companyApps = append(s.companyApps, c.Clone())
		s.companyAppIDs.Observe(c.ID)
	}
	s.companyAppIDs.Skip(len(s.companyApps))

	for _, r := range seed.Reports {
		if r.Status == "" {
			r.Status = models.ReportPending
		}
		s.reports = append(s.reports, r.Clone())
		s.reportIDs.Observe(r.ID)
	}
	s.reportIDs.Skip(len(s.reports))

	for _, w := range seed.Workshops {
		s.workshops = append(s.workshops, w.Clone())
		s.workshopIDs.Observe(w.ID)
	}
	s.workshopIDs.Skip(len(s.workshops))

	return s
}

// today truncates now to a calendar date in UTC.
func (s *Store) today() time.Time {
	n := s.now().UTC()
	return time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, time.UTC)
}

const dateLayout = "2006-01-02"
