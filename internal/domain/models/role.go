// internal/domain/models/role.go
package models

import (
	"fmt"
	"strings"
)

// Role is the discriminant of an Actor. The string values are the wire
// values used in sessions, JSON and notification broadcast tokens.
type Role string

const (
	RoleStudent    Role = "student"
	RoleProStudent Role = "prostudent"
	RoleCompany    Role = "company"
	RoleOffice     Role = "scadoffice"
	RoleFaculty    Role = "faculty"
)

// Roles lists every role in a stable order.
var Roles = []Role{RoleStudent, RoleProStudent, RoleCompany, RoleOffice, RoleFaculty}

// ParseRole accepts a wire value (case-insensitive) and rejects anything
// outside the closed set.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return r, nil
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleProStudent, RoleCompany, RoleOffice, RoleFaculty:
		return true
	default:
		return false
	}
}

// IsStudent is true for both regular and PRO students.
func (r Role) IsStudent() bool {
	return r == RoleStudent || r == RoleProStudent
}

// IsStaff is true for the career office and faculty.
func (r Role) IsStaff() bool {
	return r == RoleOffice || r == RoleFaculty
}

// Label is the human-readable role name.
func (r Role) Label() string {
	switch r {
	case RoleStudent:
		return "Student"
	case RoleProStudent:
		return "PRO Student"
	case RoleCompany:
		return "Company"
	case RoleOffice:
		return "SCAD Office"
	case RoleFaculty:
		return "Faculty"
	default:
		return "Unknown"
	}
}

func (r Role) String() string { return string(r) }
