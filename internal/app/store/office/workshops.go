package office

import (
	"fmt"
	"time"

	"github.com/dalemusser/internhub/internal/app/system/authz"
	"github.com/dalemusser/internhub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/internhub/internal/app/system/normalize"
	"github.com/dalemusser/internhub/internal/app/system/outcome"
	"github.com/dalemusser/internhub/internal/domain/models"
	"go.uber.org/zap"
)

// WorkshopInput is the office's workshop form.
type WorkshopInput struct {
	Title        string
	Description  string
	Speaker      string
	SpeakerBio   string
	Agenda       string
	StartsAt     time.Time
	EndsAt       time.Time
	IsLive       bool
	RecordingURL string
}

// CreateWorkshop adds a workshop with no registrants.
func (s *Store) CreateWorkshop(actor *models.Actor, in WorkshopInput) (models.Workshop, error) {
	if !authz.Can(actor, authz.ManageWorkshops) {
		return models.Workshop{}, outcome.Fail(outcome.ErrUnauthorized, "Only SCAD Office can create workshops")
	}
	title := htmlsanitize.Plain(in.Title)
	if title == "" {
		return models.Workshop{}, outcome.Fail(outcome.ErrInvalid, "Title is required")
	}
	if in.StartsAt.IsZero() {
		return models.Workshop{}, outcome.Fail(outcome.ErrInvalid, "Start time is required")
	}
	if !in.EndsAt.IsZero() && in.EndsAt.Before(in.StartsAt) {
		return models.Workshop{}, outcome.Fail(outcome.ErrInvalid, "Workshop cannot end before it starts")
	}

	w := models.Workshop{
		Title:        title,
		Description:  htmlsanitize.Sanitize(in.Description),
		Speaker:      htmlsanitize.Plain(in.Speaker),
		SpeakerBio:   htmlsanitize.Plain(in.SpeakerBio),
		Agenda:       htmlsanitize.Plain(in.Agenda),
		StartsAt:     in.StartsAt,
		EndsAt:       in.EndsAt,
		IsLive:       in.IsLive,
		RecordingURL: normalize.Name(in.RecordingURL),
		Registrants:  []string{},
	}
	if w.EndsAt.IsZero() {
		w.EndsAt = w.StartsAt
	}

	s.mu.Lock()
	w.ID = s.workshopIDs.Next()
	s.workshops = append(s.workshops, w)
	s.mu.Unlock()

	s.log.Info("workshop created", zap.String("workshop_id", w.ID))
	return w.Clone(), nil
}

// RegisterForWorkshop adds a PRO student to the registrant set and
// schedules a reminder for the workshop's start. A second registration
// fails with ErrAlreadyRegistered and changes nothing.
func (s *Store) RegisterForWorkshop(actor *models.Actor, id string) (models.Workshop, error) {
	if !authz.Can(actor, authz.AttendWorkshops) {
		return models.Workshop{}, outcome.Fail(outcome.ErrUnauthorized, "Only PRO students can register for workshops")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.workshopIndexLocked(id)
	if i < 0 {
		return models.Workshop{}, outcome.Fail(outcome.ErrNotFound, "Workshop not found")
	}
	w := s.workshops[i].Clone()
	if w.IsRegistered(actor.ID) {
		return models.Workshop{}, outcome.Fail(outcome.ErrAlreadyRegistered, "You are already registered for this workshop")
	}
	w.Registrants = append(w.Registrants, actor.ID)
	s.workshops[i] = w

	starts := w.StartsAt
	s.notifyLocked(models.Notification{
		To:      actor.ID,
		Subject: "Workshop: " + w.Title,
		Message: fmt.Sprintf("Don't forget your upcoming workshop on %s at %s.",
			starts.Format(dateLayout), starts.Format("15:04")),
		Type:         models.NotifyWorkshopReminder,
		ScheduledFor: &starts,
	})

	s.log.Info("workshop registration",
		zap.String("workshop_id", id),
		zap.String("actor_id", actor.ID))
	return w.Clone(), nil
}

// Workshops lists every workshop.
func (s *Store) Workshops() []models.Workshop {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Workshop, 0, len(s.workshops))
	for _, w := range s.workshops {
		out = append(out, w.Clone())
	}
	return out
}

// Workshop returns one workshop.
func (s *Store) Workshop(id string) (models.Workshop, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.workshopIndexLocked(id); i >= 0 {
		return s.workshops[i].Clone(), true
	}
	return models.Workshop{}, false
}

func (s *Store) workshopIndexLocked(id string) int {
	for i := range s.workshops {
		if s.workshops[i].ID == id {
			return i
		}
	}
	return -1
}
