// internal/domain/models/companyapplication.go
package models

import "time"

// ReviewStatus is shared by company registrations and appointments: a
// single transition out of pending, never reverted.
type ReviewStatus string

const (
	ReviewPending  ReviewStatus = "pending"
	ReviewApproved ReviewStatus = "approved"
	ReviewRejected ReviewStatus = "rejected"
)

// ReviewOutcome maps an approve/reject decision to its status.
func ReviewOutcome(approved bool) ReviewStatus {
	if approved {
		return ReviewApproved
	}
	return ReviewRejected
}

// CompanyApplication is a company registration waiting for office review.
type CompanyApplication struct {
	ID             string       `json:"id"`
	CompanyID      string       `json:"company_id,omitempty"` // empty for applications not tied to an actor
	CompanyName    string       `json:"company_name"`
	Industry       string       `json:"industry"`
	Size           string       `json:"size"`
	Email          string       `json:"email"`
	Logo           string       `json:"logo,omitempty"`
	Documents      []string     `json:"documents"`
	Status         ReviewStatus `json:"status"`
	SubmissionDate time.Time    `json:"submission_date"`
	ReviewDate     *time.Time   `json:"review_date,omitempty"`
}

// Clone returns a copy that does not share slices or pointers.
func (c CompanyApplication) Clone() CompanyApplication {
	c.Documents = append([]string(nil), c.Documents...)
	if c.ReviewDate != nil {
		d := *c.ReviewDate
		c.ReviewDate = &d
	}
	return c
}
