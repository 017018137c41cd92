// internal/domain/models/actor.go
package models

import (
	"encoding/json"
	"time"
)

// Actor is any authenticated identity. Role-specific attributes live in
// Profile, whose concrete type is fixed by Role:
//
//	student, prostudent -> *StudentProfile
//	company             -> *CompanyProfile
//	scadoffice, faculty -> *StaffProfile
type Actor struct {
	ID           string
	Email        string // lowercased
	Name         string
	Role         Role
	PasswordHash []byte
	Profile      Profile
	CreatedAt    time.Time
}

// Profile is a closed set of role-specific attribute blocks.
type Profile interface {
	profile()
}

// StudentProfile belongs to students and PRO students.
type StudentProfile struct {
	Major                string                `json:"major"`
	Semester             int                   `json:"semester"`
	Interests            []string              `json:"interests"`
	CompletedInternships []CompletedInternship `json:"completed_internships"`
}

// CompletedInternship is a past internship shown on a student profile.
type CompletedInternship struct {
	ID       string `json:"id"`
	Company  string `json:"company"`
	Position string `json:"position"`
	Duration string `json:"duration"`
}

// CompanySize values.
const (
	SizeSmall     = "small"
	SizeMedium    = "medium"
	SizeLarge     = "large"
	SizeCorporate = "corporate"
)

// ValidCompanySize reports whether s is one of the company size buckets.
func ValidCompanySize(s string) bool {
	switch s {
	case SizeSmall, SizeMedium, SizeLarge, SizeCorporate:
		return true
	}
	return false
}

// CompanyProfile belongs to company actors.
type CompanyProfile struct {
	Industry    string `json:"industry"`
	Size        string `json:"size"`
	Verified    bool   `json:"verified"`
	Logo        string `json:"logo,omitempty"`
	Description string `json:"description,omitempty"`
}

// StaffProfile belongs to career office staff and faculty.
type StaffProfile struct {
	Department string `json:"department"`
	Position   string `json:"position,omitempty"`
}

func (*StudentProfile) profile() {}
func (*CompanyProfile) profile() {}
func (*StaffProfile) profile()   {}

// Student returns the student profile, or nil for non-students.
func (a Actor) Student() *StudentProfile {
	p, _ := a.Profile.(*StudentProfile)
	return p
}

// Company returns the company profile, or nil for non-companies.
func (a Actor) Company() *CompanyProfile {
	p, _ := a.Profile.(*CompanyProfile)
	return p
}

// Staff returns the staff profile, or nil for students and companies.
func (a Actor) Staff() *StaffProfile {
	p, _ := a.Profile.(*StaffProfile)
	return p
}

// Clone returns a deep copy so callers never share mutable profile state
// with the identity store.
func (a Actor) Clone() Actor {
	out := a
	out.PasswordHash = nil
	switch p := a.Profile.(type) {
	case *StudentProfile:
		cp := *p
		cp.Interests = append([]string(nil), p.Interests...)
		cp.CompletedInternships = append([]CompletedInternship(nil), p.CompletedInternships...)
		out.Profile = &cp
	case *CompanyProfile:
		cp := *p
		out.Profile = &cp
	case *StaffProfile:
		cp := *p
		out.Profile = &cp
	}
	return out
}

// MarshalJSON flattens the profile next to the common fields, the shape the
// client renders from. The password hash is never serialized.
func (a Actor) MarshalJSON() ([]byte, error) {
	type common struct {
		ID        string    `json:"id"`
		Email     string    `json:"email"`
		Name      string    `json:"name"`
		Role      Role      `json:"role"`
		CreatedAt time.Time `json:"created_at"`
	}
	base := common{ID: a.ID, Email: a.Email, Name: a.Name, Role: a.Role, CreatedAt: a.CreatedAt}

	switch p := a.Profile.(type) {
	case *StudentProfile:
		return json.Marshal(struct {
			common
			*StudentProfile
			IsPRO bool `json:"is_pro"`
		}{base, p, a.Role == RoleProStudent})
	case *CompanyProfile:
		return json.Marshal(struct {
			common
			*CompanyProfile
		}{base, p})
	case *StaffProfile:
		return json.Marshal(struct {
			common
			*StaffProfile
		}{base, p})
	default:
		return json.Marshal(base)
	}
}
