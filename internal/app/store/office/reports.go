package office

import (
	"fmt"
	"strconv"

	"github.com/dalemusser/internhub/internal/app/system/authz"
	"github.com/dalemusser/internhub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/internhub/internal/app/system/normalize"
	"github.com/dalemusser/internhub/internal/app/system/outcome"
	"github.com/dalemusser/internhub/internal/domain/models"
	"go.uber.org/zap"
)

// ReportInput is a student's internship report.
type ReportInput struct {
	CompanyName string
	Title       string
	Content     string
	Courses     []string
}

// SubmitReport files a pending report authored by the actor.
func (s *Store) SubmitReport(actor *models.Actor, in ReportInput) (models.InternshipReport, error) {
	if !authz.Can(actor, authz.SubmitReports) {
		return models.InternshipReport{}, outcome.Fail(outcome.ErrUnauthorized, "Only students can submit internship reports")
	}
	title := htmlsanitize.Plain(in.Title)
	if title == "" {
		return models.InternshipReport{}, outcome.Fail(outcome.ErrInvalid, "Title is required")
	}

	r := models.InternshipReport{
		StudentID:      actor.ID,
		StudentName:    actor.Name,
		CompanyName:    normalize.Name(in.CompanyName),
		Title:          title,
		Content:        htmlsanitize.Sanitize(in.Content),
		Courses:        normalize.List(in.Courses),
		Status:         models.ReportPending,
		Comments:       []models.ReportComment{},
		SubmissionDate: s.today(),
	}

	s.mu.Lock()
	r.ID = s.reportIDs.Next()
	s.reports = append(s.reports, r)
	s.mu.Unlock()

	s.log.Info("report submitted",
		zap.String("report_id", r.ID),
		zap.String("student_id", actor.ID))
	return r.Clone(), nil
}

// ReviewReport sets a report's status, appends the reviewer's comment when
// there is one and notifies the author.
func (s *Store) ReviewReport(actor *models.Actor, id string, status models.ReportStatus, comment string) (models.InternshipReport, error) {
	if !authz.Can(actor, authz.ReviewReports) {
		return models.InternshipReport{}, outcome.Fail(outcome.ErrUnauthorized, "Only faculty or SCAD Office can review reports")
	}
	if !status.Reviewable() {
		return models.InternshipReport{}, outcome.Failf(outcome.ErrInvalid,
			"Report status must be accepted, rejected or flagged, not %q", status)
	}
	comment = htmlsanitize.Plain(comment)

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.reportIndexLocked(id)
	if i < 0 {
		return models.InternshipReport{}, outcome.Fail(outcome.ErrNotFound, "Report not found")
	}
	r := s.reports[i].Clone()
	r.Status = status
	if comment != "" {
		r.Comments = append(r.Comments, models.ReportComment{
			ID:         "comment" + strconv.Itoa(len(r.Comments)+1),
			Author:     actor.Name,
			AuthorRole: actor.Role,
			Text:       comment,
			Date:       s.now(),
		})
	}
	reviewed := s.today()
	r.ReviewDate = &reviewed
	s.reports[i] = r

	msg := fmt.Sprintf("Your internship report has been marked as %s.", status)
	if comment != "" {
		msg += " Comment: " + comment
	}
	s.notifyLocked(models.Notification{
		To:      r.StudentID,
		Subject: "Report Status Update: " + string(status),
		Message: msg,
		Type:    models.NotifyReportStatus,
	})

	s.log.Info("report reviewed",
		zap.String("report_id", id),
		zap.String("status", string(status)),
		zap.String("reviewer_id", actor.ID))
	return r.Clone(), nil
}

// Reports lists every report.
func (s *Store) Reports() []models.InternshipReport {
	return s.filterReports(func(models.InternshipReport) bool { return true })
}

// ReportsByStudent lists the reports written by studentID.
func (s *Store) ReportsByStudent(studentID string) []models.InternshipReport {
	return s.filterReports(func(r models.InternshipReport) bool { return r.StudentID == studentID })
}

// Report returns one report.
func (s *Store) Report(id string) (models.InternshipReport, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.reportIndexLocked(id); i >= 0 {
		return s.reports[i].Clone(), true
	}
	return models.InternshipReport{}, false
}

func (s *Store) filterReports(keep func(models.InternshipReport) bool) []models.InternshipReport {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.InternshipReport, 0)
	for _, r := range s.reports {
		if keep(r) {
			out = append(out, r.Clone())
		}
	}
	return out
}

func (s *Store) reportIndexLocked(id string) int {
	for i := range s.reports {
		if s.reports[i].ID == id {
			return i
		}
	}
	return -1
}
