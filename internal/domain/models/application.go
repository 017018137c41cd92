// internal/domain/models/application.go
package models

import "time"

// ApplicationStatus is a state in the applicant pipeline.
//
//	pending --> finalized --> accepted --> current --> completed
//	   |            |
//	   +--> rejected <--+
type ApplicationStatus string

const (
	ApplicationPending   ApplicationStatus = "pending"
	ApplicationFinalized ApplicationStatus = "finalized"
	ApplicationAccepted  ApplicationStatus = "accepted"
	ApplicationCurrent   ApplicationStatus = "current"
	ApplicationCompleted ApplicationStatus = "completed"
	ApplicationRejected  ApplicationStatus = "rejected"
)

var applicationTransitions = map[ApplicationStatus][]ApplicationStatus{
	ApplicationPending:   {ApplicationFinalized, ApplicationRejected},
	ApplicationFinalized: {ApplicationAccepted, ApplicationRejected},
	ApplicationAccepted:  {ApplicationCurrent},
	ApplicationCurrent:   {ApplicationCompleted},
}

// Valid reports whether s is a known application status.
func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationPending, ApplicationFinalized, ApplicationAccepted,
		ApplicationCurrent, ApplicationCompleted, ApplicationRejected:
		return true
	}
	return false
}

// Terminal reports whether no transition leaves s.
func (s ApplicationStatus) Terminal() bool {
	return s == ApplicationRejected || s == ApplicationCompleted
}

// CanTransitionTo reports whether the pipeline allows s -> next.
func (s ApplicationStatus) CanTransitionTo(next ApplicationStatus) bool {
	for _, allowed := range applicationTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// NextStatuses lists the statuses reachable from s in one step.
func (s ApplicationStatus) NextStatuses() []ApplicationStatus {
	return append([]ApplicationStatus(nil), applicationTransitions[s]...)
}

// StatusChange is one entry of an application's status history.
type StatusChange struct {
	Status ApplicationStatus `json:"status"`
	At     time.Time         `json:"at"`
}

// Application links a student to a posting. There is at most one per
// (posting, student) pair.
type Application struct {
	ID          string            `json:"id"`
	PostingID   string            `json:"internship_id"`
	StudentID   string            `json:"student_id"`
	StudentName string            `json:"student_name"`
	Status      ApplicationStatus `json:"status"`
	AppliedDate time.Time         `json:"applied_date"`
	Documents   []string          `json:"documents"`
	History     []StatusChange    `json:"history"`
}

// Clone returns a copy that does not share slices.
func (a Application) Clone() Application {
	a.Documents = append([]string(nil), a.Documents...)
	a.History = append([]StatusChange(nil), a.History...)
	return a
}
