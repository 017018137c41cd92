// internal/domain/models/posting.go
package models

import "time"

// PostingStatus is the lifecycle of an internship posting.
type PostingStatus string

const (
	PostingActive   PostingStatus = "active"
	PostingInactive PostingStatus = "inactive"
)

// Valid reports whether s is a known posting status.
func (s PostingStatus) Valid() bool {
	return s == PostingActive || s == PostingInactive
}

// Posting is an internship opportunity owned by the company that created it.
type Posting struct {
	ID          string        `json:"id"`
	CompanyID   string        `json:"company_id"`
	CompanyName string        `json:"company_name"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Duration    string        `json:"duration"`
	IsPaid      bool          `json:"is_paid"`
	Salary      string        `json:"salary,omitempty"`
	Industry    string        `json:"industry"`
	Skills      []string      `json:"skills"`
	Status      PostingStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
}

// Clone returns a copy that does not share the skills slice.
func (p Posting) Clone() Posting {
	p.Skills = append([]string(nil), p.Skills...)
	return p
}
