package office

import (
	"fmt"

	"github.com/dalemusser/internhub/internal/app/system/authz"
	"github.com/dalemusser/internhub/internal/app/system/normalize"
	"github.com/dalemusser/internhub/internal/app/system/outcome"
	"github.com/dalemusser/internhub/internal/domain/models"
	"go.uber.org/zap"
)

// SubmitCompanyApplication opens a pending review for a newly registered
// company and tells the office about it.
func (s *Store) SubmitCompanyApplication(company *models.Actor, documents []string) (models.CompanyApplication, error) {
	if company == nil || company.Role != models.RoleCompany {
		return models.CompanyApplication{}, outcome.Fail(outcome.ErrUnauthorized, "Only companies can apply for registration")
	}
	ca := models.CompanyApplication{
		CompanyID:      company.ID,
		CompanyName:    company.Name,
		Email:          company.Email,
		Documents:      normalize.List(documents),
		Status:         models.ReviewPending,
		SubmissionDate: s.today(),
	}
	if cp := company.Company(); cp != nil {
		ca.Industry = cp.Industry
		ca.Size = cp.Size
		ca.Logo = cp.Logo
	}

	s.mu.Lock()
	ca.ID = s.companyAppIDs.Next()
	s.companyApps = append(s.companyApps, ca)
	s.notifyLocked(models.Notification{
		To:      models.BroadcastTo(models.RoleOffice),
		Subject: "New Company Registration",
		Message: fmt.Sprintf("%s has registered and is waiting for review.", ca.CompanyName),
		Type:    models.NotifyCompanyApplication,
	})
	s.mu.Unlock()

	s.log.Info("company application submitted",
		zap.String("application_id", ca.ID),
		zap.String("company_id", company.ID))
	return ca.Clone(), nil
}

// ReviewCompanyApplication approves or rejects a pending registration,
// updates the company's verification flag and notifies the applicant by
// email address. A registration is reviewed once.
func (s *Store) ReviewCompanyApplication(actor *models.Actor, id string, approved bool) (models.CompanyApplication, error) {
	if !authz.Can(actor, authz.ReviewCompanies) {
		return models.CompanyApplication{}, outcome.Fail(outcome.ErrUnauthorized, "Only SCAD Office can review company applications")
	}

	s.mu.Lock()
	i := s.companyAppIndexLocked(id)
	if i < 0 {
		s.mu.Unlock()
		return models.CompanyApplication{}, outcome.Fail(outcome.ErrNotFound, "Company application not found")
	}
	ca := s.companyApps[i].Clone()
	if ca.Status != models.ReviewPending {
		s.mu.Unlock()
		return models.CompanyApplication{}, outcome.Failf(outcome.ErrInvalidTransition,
			"Company application has already been %s", ca.Status)
	}

	status := models.ReviewOutcome(approved)
	reviewed := s.today()
	ca.Status = status
	ca.ReviewDate = &reviewed
	s.companyApps[i] = ca

	word := "Rejected"
	if approved {
		word = "Approved"
	}
	s.notifyLocked(models.Notification{
		To:      ca.Email,
		Subject: "Company Registration " + word,
		Message: fmt.Sprintf("Your company registration has been %s.", status),
		Type:    models.NotifyCompanyApplication,
	})
	s.mu.Unlock()

	// The identity store has its own lock; call it after releasing ours.
	if s.verifier != nil && !s.verifier.SetCompanyVerified(ca.Email, approved) {
		s.log.Warn("reviewed company has no actor",
			zap.String("application_id", id),
			zap.String("email", ca.Email))
	}

	s.log.Info("company application reviewed",
		zap.String("application_id", id),
		zap.String("status", string(status)),
		zap.String("reviewer_id", actor.ID))
	return ca.Clone(), nil
}

// CompanyApplications lists registrations, optionally only those with the
// given status.
func (s *Store) CompanyApplications(status models.ReviewStatus) []models.CompanyApplication {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.CompanyApplication, 0, len(s.companyApps))
	for _, c := range s.companyApps {
		if status == "" || c.Status == status {
			out = append(out, c.Clone())
		}
	}
	return out
}

// CompanyApplication returns one registration.
func (s *Store) CompanyApplication(id string) (models.CompanyApplication, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.companyAppIndexLocked(id); i >= 0 {
		return s.companyApps[i].Clone(), true
	}
	return models.CompanyApplication{}, false
}

func (s *Store) companyAppIndexLocked(id string) int {
	for i := range s.companyApps {
		if s.companyApps[i].ID == id {
			return i
		}
	}
	return -1
}
