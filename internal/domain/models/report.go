// internal/domain/models/report.go
package models

import "time"

// ReportStatus is the review state of an internship report.
type ReportStatus string

const (
	ReportPending  ReportStatus = "pending"
	ReportAccepted ReportStatus = "accepted"
	ReportRejected ReportStatus = "rejected"
	ReportFlagged  ReportStatus = "flagged"
)

// ReviewableReportStatuses are the outcomes a reviewer may set.
var ReviewableReportStatuses = []ReportStatus{ReportAccepted, ReportRejected, ReportFlagged}

// Reviewable reports whether a reviewer may set s.
func (s ReportStatus) Reviewable() bool {
	for _, r := range ReviewableReportStatuses {
		if s == r {
			return true
		}
	}
	return false
}

// ReportComment is a reviewer note appended to a report.
type ReportComment struct {
	ID         string    `json:"id"`
	Author     string    `json:"author"`
	AuthorRole Role      `json:"author_role"`
	Text       string    `json:"text"`
	Date       time.Time `json:"date"`
}

// InternshipReport is written by a student after an internship.
type InternshipReport struct {
	ID             string          `json:"id"`
	StudentID      string          `json:"student_id"`
	StudentName    string          `json:"student_name"`
	CompanyName    string          `json:"company_name"`
	Title          string          `json:"title"`
	Content        string          `json:"content"`
	Courses        []string        `json:"courses"`
	Status         ReportStatus    `json:"status"`
	Comments       []ReportComment `json:"comments"`
	SubmissionDate time.Time       `json:"submission_date"`
	ReviewDate     *time.Time      `json:"review_date,omitempty"`
}

// Clone returns a copy that does not share slices or pointers.
func (r InternshipReport) Clone() InternshipReport {
	r.Courses = append([]string(nil), r.Courses...)
	r.Comments = append([]ReportComment(nil), r.Comments...)
	if r.ReviewDate != nil {
		d := *r.ReviewDate
		r.ReviewDate = &d
	}
	return r
}
