package opportunities

import (
	"github.com/dalemusser/internhub/internal/app/system/authz"
	"github.com/dalemusser/internhub/internal/app/system/normalize"
	"github.com/dalemusser/internhub/internal/app/system/outcome"
	"github.com/dalemusser/internhub/internal/domain/models"
	"go.uber.org/zap"
)

// ApplicationInput is what a student submits with an application.
type ApplicationInput struct {
	Documents []string // file names only
}

// ApplyToPosting creates a pending application from a student or PRO
// student. A student applies to a posting at most once.
func (s *Store) ApplyToPosting(actor *models.Actor, postingID string, in ApplicationInput) (models.Application, error) {
	if !authz.Can(actor, authz.ApplyToPostings) {
		return models.Application{}, outcome.Fail(outcome.ErrUnauthorized, "Only students can apply to internships")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	pi := s.postingIndexLocked(postingID)
	if pi < 0 {
		return models.Application{}, outcome.Fail(outcome.ErrNotFound, "Internship not found")
	}
	if s.postings[pi].Status != models.PostingActive {
		return models.Application{}, outcome.Fail(outcome.ErrInvalid, "This internship is no longer accepting applications")
	}
	for _, a := range s.applications {
		if a.PostingID == postingID && a.StudentID == actor.ID {
			return models.Application{}, outcome.Fail(outcome.ErrDuplicateApplication,
				"You have already applied to this internship")
		}
	}

	applied := s.today()
	a := models.Application{
		ID:          s.applicationIDs.Next(),
		PostingID:   postingID,
		StudentID:   actor.ID,
		StudentName: actor.Name,
		Status:      models.ApplicationPending,
		AppliedDate: applied,
		Documents:   normalize.List(in.Documents),
		History:     []models.StatusChange{{Status: models.ApplicationPending, At: s.now()}},
	}
	s.applications = append(s.applications, a)

	s.log.Info("application submitted",
		zap.String("application_id", a.ID),
		zap.String("posting_id", postingID),
		zap.String("student_id", actor.ID))
	return a.Clone(), nil
}

// UpdateApplicationStatus moves an application along the pipeline. Only
// the company owning the posting may do so; for anyone else's application
// (or an unknown id) nothing changes and changed is false.
func (s *Store) UpdateApplicationStatus(actor *models.Actor, id string, status models.ApplicationStatus) (changed bool, err error) {
	if !authz.Can(actor, authz.ManagePostings) {
		return false, outcome.Fail(outcome.ErrUnauthorized, "Only companies can update application status")
	}
	if !status.Valid() {
		return false, outcome.Failf(outcome.ErrInvalid, "Unknown application status %q", status)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ai := s.applicationIndexLocked(id)
	if ai < 0 {
		return false, nil
	}
	pi := s.postingIndexLocked(s.applications[ai].PostingID)
	if pi < 0 || !authz.Owns(actor, s.postings[pi]) {
		return false, nil
	}

	a := s.applications[ai].Clone()
	if !a.Status.CanTransitionTo(status) {
		return false, outcome.Failf(outcome.ErrInvalidTransition,
			"Cannot move application from %s to %s", a.Status, status)
	}
	a.Status = status
	a.History = append(a.History, models.StatusChange{Status: status, At: s.now()})
	s.applications[ai] = a

	s.log.Info("application status changed",
		zap.String("application_id", id),
		zap.String("status", string(status)))
	return true, nil
}

// Application returns one application.
func (s *Store) Application(id string) (models.Application, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.applicationIndexLocked(id); i >= 0 {
		return s.applications[i].Clone(), true
	}
	return models.Application{}, false
}

// ApplicationsByStudent lists a student's applications in submission order.
func (s *Store) ApplicationsByStudent(studentID string) []models.Application {
	return s.filterApplications(func(a models.Application) bool { return a.StudentID == studentID })
}

// ApplicationsByPosting lists the applications to one posting.
func (s *Store) ApplicationsByPosting(postingID string) []models.Application {
	return s.filterApplications(func(a models.Application) bool { return a.PostingID == postingID })
}

func (s *Store) filterApplications(keep func(models.Application) bool) []models.Application {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Application, 0)
	for _, a := range s.applications {
		if keep(a) {
			out = append(out, a.Clone())
		}
	}
	return out
}
