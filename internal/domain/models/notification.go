// internal/domain/models/notification.go
package models

import "time"

// AllStudents addresses both students and PRO students.
const AllStudents = "all_students"

// BroadcastTo is the target token addressing every actor with role r,
// e.g. "all_prostudents", "all_scadoffices".
func BroadcastTo(r Role) string {
	return "all_" + string(r) + "s"
}

// Notification types.
const (
	NotifyCompanyApplication  = "company_application"
	NotifyCycleUpdate         = "cycle_update"
	NotifyWorkshopReminder    = "workshop_reminder"
	NotifyReportStatus        = "report_status"
	NotifyAppointmentRequest  = "appointment_request"
	NotifyAppointmentResponse = "appointment_response"
)

// Notification is a mailbox entry. To is an actor id, an email address, or
// a broadcast token.
type Notification struct {
	ID           string     `json:"id"`
	To           string     `json:"to"`
	Subject      string     `json:"subject"`
	Message      string     `json:"message"`
	Type         string     `json:"type"`
	IsRead       bool       `json:"is_read"`
	Date         time.Time  `json:"date"`
	ScheduledFor *time.Time `json:"scheduled_for,omitempty"`
}

// AddressedTo reports whether n is delivered to the given actor.
func (n Notification) AddressedTo(actorID string, role Role) bool {
	switch {
	case n.To == actorID:
		return true
	case role.Valid() && n.To == BroadcastTo(role):
		return true
	case n.To == AllStudents && role.IsStudent():
		return true
	}
	return false
}
