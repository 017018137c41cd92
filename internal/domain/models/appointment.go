// internal/domain/models/appointment.go
package models

import "time"

// Appointment is a video-call request between a PRO student and the office.
type Appointment struct {
	ID            string       `json:"id"`
	RequesterID   string       `json:"requester_id"`
	RequesterName string       `json:"requester_name"`
	RequesterRole Role         `json:"requester_role"`
	RecipientRole Role         `json:"recipient_role"`
	RecipientID   string       `json:"recipient_id,omitempty"`
	Status        ReviewStatus `json:"status"`
	RequestDate   time.Time    `json:"request_date"`
	ScheduledAt   time.Time    `json:"scheduled_at"`
	Purpose       string       `json:"purpose"`
	Notes         string       `json:"notes,omitempty"`
	ResponseDate  *time.Time   `json:"response_date,omitempty"`
}

// Counterpart is the role on the other side of an appointment requested
// by role r.
func Counterpart(r Role) Role {
	if r == RoleProStudent {
		return RoleOffice
	}
	return RoleProStudent
}
