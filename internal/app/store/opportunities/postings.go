package opportunities

import (
	"strings"

	"github.com/dalemusser/internhub/internal/app/system/authz"
	"github.com/dalemusser/internhub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/internhub/internal/app/system/normalize"
	"github.com/dalemusser/internhub/internal/app/system/outcome"
	"github.com/dalemusser/internhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"go.uber.org/zap"
)

// PostingInput is the create form for a posting.
type PostingInput struct {
	Title       string
	Description string
	Duration    string
	IsPaid      bool
	Salary      string
	Industry    string
	Skills      []string
}

// PostingPatch holds optional changes to a posting. Nil fields are left
// as they are.
type PostingPatch struct {
	Title       *string
	Description *string
	Duration    *string
	IsPaid      *bool
	Salary      *string
	Industry    *string
	Skills      []string // nil keeps the current skills
	Status      *models.PostingStatus
}

// CreatePosting publishes a new active posting owned by the company actor.
func (s *Store) CreatePosting(actor *models.Actor, in PostingInput) (models.Posting, error) {
	if !authz.Can(actor, authz.ManagePostings) {
		return models.Posting{}, outcome.Fail(outcome.ErrUnauthorized, "Only companies can post internships")
	}
	title := htmlsanitize.Plain(in.Title)
	if title == "" {
		return models.Posting{}, outcome.Fail(outcome.ErrInvalid, "Title is required")
	}

	p := models.Posting{
		CompanyID:   actor.ID,
		CompanyName: actor.Name,
		Title:       title,
		Description: htmlsanitize.Sanitize(in.Description),
		Duration:    normalize.Name(in.Duration),
		IsPaid:      in.IsPaid,
		Industry:    normalize.Name(in.Industry),
		Skills:      normalize.List(in.Skills),
		Status:      models.PostingActive,
		CreatedAt:   s.now(),
	}
	if p.IsPaid {
		p.Salary = normalize.Name(in.Salary)
	}

	s.mu.Lock()
	p.ID = s.postingIDs.Next()
	s.postings = append(s.postings, p)
	s.mu.Unlock()

	s.log.Info("posting created",
		zap.String("posting_id", p.ID),
		zap.String("company_id", actor.ID))
	return p.Clone(), nil
}

// UpdatePosting applies patch to a posting owned by the actor. A missing
// posting and one owned by another company fail the same way.
func (s *Store) UpdatePosting(actor *models.Actor, id string, patch PostingPatch) (models.Posting, error) {
	if !authz.Can(actor, authz.ManagePostings) {
		return models.Posting{}, outcome.Fail(outcome.ErrUnauthorized, "Only companies can update internships")
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return models.Posting{}, outcome.Fail(outcome.ErrInvalid, "Status must be active or inactive")
	}
	if patch.Title != nil && htmlsanitize.Plain(*patch.Title) == "" {
		return models.Posting{}, outcome.Fail(outcome.ErrInvalid, "Title is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.postingIndexLocked(id)
	if i < 0 || !authz.Owns(actor, s.postings[i]) {
		return models.Posting{}, outcome.Fail(outcome.ErrNotFoundOrForbidden,
			"Internship not found or you do not have permission to update it")
	}

	p := s.postings[i].Clone()
	if patch.Title != nil {
		p.Title = htmlsanitize.Plain(*patch.Title)
	}
	if patch.Description != nil {
		p.Description = htmlsanitize.Sanitize(*patch.Description)
	}
	if patch.Duration != nil {
		p.Duration = normalize.Name(*patch.Duration)
	}
	if patch.IsPaid != nil {
		p.IsPaid = *patch.IsPaid
	}
	if patch.Salary != nil {
		p.Salary = normalize.Name(*patch.Salary)
	}
	if !p.IsPaid {
		p.Salary = ""
	}
	if patch.Industry != nil {
		p.Industry = normalize.Name(*patch.Industry)
	}
	if patch.Skills != nil {
		p.Skills = normalize.List(patch.Skills)
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
	s.postings[i] = p

	s.log.Info("posting updated", zap.String("posting_id", id))
	return p.Clone(), nil
}

// DeletePosting removes a posting owned by the actor. Applications to it
// are kept; they still reference the posting id.
func (s *Store) DeletePosting(actor *models.Actor, id string) error {
	if !authz.Can(actor, authz.ManagePostings) {
		return outcome.Fail(outcome.ErrUnauthorized, "Only companies can delete internships")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	kept := make([]models.Posting, 0, len(s.postings))
	for _, p := range s.postings {
		if p.ID == id && authz.Owns(actor, p) {
			continue
		}
		kept = append(kept, p)
	}
	if len(kept) == len(s.postings) {
		return outcome.Fail(outcome.ErrNotFoundOrForbidden,
			"Internship not found or you do not have permission to delete it")
	}
	s.postings = kept

	// Open applications close with the posting. Accepted or running
	// internships keep their status as a record.
	closed := 0
	for i, a := range s.applications {
		if a.PostingID != id || !a.Status.CanTransitionTo(models.ApplicationRejected) {
			continue
		}
		a = a.Clone()
		a.Status = models.ApplicationRejected
		a.History = append(a.History, models.StatusChange{Status: models.ApplicationRejected, At: s.now()})
		s.applications[i] = a
		closed++
	}

	s.log.Info("posting deleted",
		zap.String("posting_id", id),
		zap.Int("applications_closed", closed))
	return nil
}

// Postings lists every posting in creation order.
func (s *Store) Postings() []models.Posting {
	return s.filterPostings(func(models.Posting) bool { return true })
}

// Posting returns one posting.
func (s *Store) Posting(id string) (models.Posting, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.postingIndexLocked(id); i >= 0 {
		return s.postings[i].Clone(), true
	}
	return models.Posting{}, false
}

// PostingsByCompany lists the postings owned by companyID.
func (s *Store) PostingsByCompany(companyID string) []models.Posting {
	return s.filterPostings(func(p models.Posting) bool { return p.CompanyID == companyID })
}

// Filter narrows SearchPostings. Zero fields match everything.
type Filter struct {
	Query    string // matched against title, company, description and skills
	Industry string
	Duration string
	Paid     *bool
	Status   models.PostingStatus
}

// SearchPostings matches postings case- and diacritic-insensitively.
func (s *Store) SearchPostings(f Filter) []models.Posting {
	q := text.Fold(strings.TrimSpace(f.Query))
	industry := text.Fold(strings.TrimSpace(f.Industry))
	duration := text.Fold(strings.TrimSpace(f.Duration))

	return s.filterPostings(func(p models.Posting) bool {
		if f.Status != "" && p.Status != f.Status {
			return false
		}
		if f.Paid != nil && p.IsPaid != *f.Paid {
			return false
		}
		if industry != "" && text.Fold(p.Industry) != industry {
			return false
		}
		if duration != "" && text.Fold(p.Duration) != duration {
			return false
		}
		if q == "" {
			return true
		}
		haystack := []string{p.Title, p.CompanyName, p.Description}
		haystack = append(haystack, p.Skills...)
		for _, h := range haystack {
			if strings.Contains(text.Fold(h), q) {
				return true
			}
		}
		return false
	})
}

func (s *Store) filterPostings(keep func(models.Posting) bool) []models.Posting {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Posting, 0, len(s.postings))
	for _, p := range s.postings {
		if keep(p) {
			out = append(out, p.Clone())
		}
	}
	return out
}
