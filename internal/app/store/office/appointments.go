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

// AppointmentInput is a video-call request.
type AppointmentInput struct {
	RecipientID string // optional; empty addresses the whole counterpart role
	ScheduledAt time.Time
	Purpose     string
	Notes       string
}

// RequestAppointment books a pending call between a PRO student and the
// office and notifies the other side.
func (s *Store) RequestAppointment(actor *models.Actor, in AppointmentInput) (models.Appointment, error) {
	if !authz.Can(actor, authz.BookAppointments) {
		return models.Appointment{}, outcome.Fail(outcome.ErrUnauthorized, "Only PRO students or SCAD Office can request appointments")
	}
	purpose := htmlsanitize.Plain(in.Purpose)
	if purpose == "" {
		return models.Appointment{}, outcome.Fail(outcome.ErrInvalid, "Purpose is required")
	}
	if in.ScheduledAt.IsZero() {
		return models.Appointment{}, outcome.Fail(outcome.ErrInvalid, "Date and time are required")
	}

	recipientRole := models.Counterpart(actor.Role)
	recipientID := normalize.Name(in.RecipientID)
	if recipientID != "" {
		if err := s.checkRecipient(recipientID, recipientRole); err != nil {
			return models.Appointment{}, err
		}
	}

	apt := models.Appointment{
		RequesterID:   actor.ID,
		RequesterName: actor.Name,
		RequesterRole: actor.Role,
		RecipientRole: recipientRole,
		RecipientID:   recipientID,
		Status:        models.ReviewPending,
		RequestDate:   s.today(),
		ScheduledAt:   in.ScheduledAt,
		Purpose:       purpose,
		Notes:         htmlsanitize.Plain(in.Notes),
	}
	to := apt.RecipientID
	if to == "" {
		to = models.BroadcastTo(apt.RecipientRole)
	}

	s.mu.Lock()
	apt.ID = s.appointmentIDs.Next()
	s.appointments = append(s.appointments, apt)
	s.notifyLocked(models.Notification{
		To:      to,
		Subject: "New Appointment Request",
		Message: fmt.Sprintf("%s has requested a video call appointment on %s at %s.",
			actor.Name, in.ScheduledAt.Format(dateLayout), in.ScheduledAt.Format("15:04")),
		Type: models.NotifyAppointmentRequest,
	})
	s.mu.Unlock()

	s.log.Info("appointment requested",
		zap.String("appointment_id", apt.ID),
		zap.String("requester_id", actor.ID),
		zap.String("to", to))
	return apt, nil
}

// checkRecipient requires a named recipient to be a known actor on the
// counterpart side. Without a directory no name can be resolved.
func (s *Store) checkRecipient(id string, role models.Role) error {
	if s.directory == nil {
		return outcome.Fail(outcome.ErrInvalid, "Appointments cannot be addressed to a specific person")
	}
	a, ok := s.directory.Lookup(id)
	if !ok || a.Role != role {
		return outcome.Failf(outcome.ErrInvalid, "Recipient must be a %s", role.Label())
	}
	return nil
}

// RespondToAppointment approves or declines a pending appointment. Only
// the recipient side may answer: the recipient role, and the recipient id
// when the request named one.
func (s *Store) RespondToAppointment(actor *models.Actor, id string, approved bool) (models.Appointment, error) {
	if !authz.Can(actor, authz.BookAppointments) {
		return models.Appointment{}, outcome.Fail(outcome.ErrUnauthorized, "Only PRO students or SCAD Office can respond to appointments")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := -1
	for j := range s.appointments {
		if s.appointments[j].ID == id {
			i = j
			break
		}
	}
	if i < 0 {
		return models.Appointment{}, outcome.Fail(outcome.ErrNotFound, "Appointment not found")
	}
	apt := s.appointments[i]
	if actor.Role != apt.RecipientRole || (apt.RecipientID != "" && apt.RecipientID != actor.ID) {
		return models.Appointment{}, outcome.Fail(outcome.ErrUnauthorized, "Only the invited party can respond to this appointment")
	}
	if apt.Status != models.ReviewPending {
		return models.Appointment{}, outcome.Failf(outcome.ErrInvalidTransition, "Appointment has already been %s", apt.Status)
	}

	apt.Status = models.ReviewOutcome(approved)
	responded := s.today()
	apt.ResponseDate = &responded
	s.appointments[i] = apt

	word, verb := "Declined", "declined"
	if approved {
		word, verb = "Approved", "approved"
	}
	s.notifyLocked(models.Notification{
		To:      apt.RequesterID,
		Subject: "Appointment " + word,
		Message: fmt.Sprintf("Your appointment request for %s has been %s.", apt.ScheduledAt.Format(dateLayout), verb),
		Type:    models.NotifyAppointmentResponse,
	})

	s.log.Info("appointment answered",
		zap.String("appointment_id", id),
		zap.String("status", string(apt.Status)),
		zap.String("responder_id", actor.ID))
	return apt, nil
}

// AppointmentsFor lists the appointments the actor requested or may answer.
func (s *Store) AppointmentsFor(actor models.Actor) []models.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Appointment, 0)
	for _, apt := range s.appointments {
		mine := apt.RequesterID == actor.ID
		invited := apt.RecipientRole == actor.Role && (apt.RecipientID == "" || apt.RecipientID == actor.ID)
		if mine || invited {
			out = append(out, apt)
		}
	}
	return out
}
