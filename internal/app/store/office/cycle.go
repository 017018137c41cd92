package office

import (
	"fmt"
	"time"

	"github.com/dalemusser/internhub/internal/app/system/authz"
	"github.com/dalemusser/internhub/internal/app/system/outcome"
	"github.com/dalemusser/internhub/internal/domain/models"
	"go.uber.org/zap"
)

// Cycle returns the current internship cycle and its predecessors.
func (s *Store) Cycle() models.CycleSet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.CycleSet{
		Current:  s.cycles.Current,
		Previous: append([]models.Cycle(nil), s.cycles.Previous...),
	}
}

// SetCycleDates replaces the dates of the current cycle, renames it after
// the start year and tells every student.
func (s *Store) SetCycleDates(actor *models.Actor, start, end time.Time) (models.Cycle, error) {
	if !authz.Can(actor, authz.ManageCycle) {
		return models.Cycle{}, outcome.Fail(outcome.ErrUnauthorized, "Only SCAD Office can set internship cycle dates")
	}
	if start.IsZero() || end.IsZero() {
		return models.Cycle{}, outcome.Fail(outcome.ErrInvalid, "Start and end dates are required")
	}
	if end.Before(start) {
		return models.Cycle{}, outcome.Fail(outcome.ErrInvalid, "End date must not be before start date")
	}

	s.mu.Lock()
	c := s.cycles.Current
	c.Start = start
	c.End = end
	c.Name = fmt.Sprintf("Internship Cycle %d", start.Year())
	if c.Status == "" {
		c.Status = "active"
	}
	s.cycles.Current = c
	s.notifyLocked(models.Notification{
		To:      models.AllStudents,
		Subject: "New Internship Cycle Dates",
		Message: fmt.Sprintf("The new internship cycle will run from %s to %s.",
			start.Format(dateLayout), end.Format(dateLayout)),
		Type: models.NotifyCycleUpdate,
	})
	s.mu.Unlock()

	s.log.Info("internship cycle updated",
		zap.String("cycle_id", c.ID),
		zap.Time("start", start),
		zap.Time("end", end))
	return c, nil
}
