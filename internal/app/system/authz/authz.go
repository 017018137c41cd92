// internal/app/system/authz/authz.go
//
// Package authz holds the role checkpoints used by the stores. Each
// capability is an exhaustive switch over models.Role, so adding a role
// forces every checkpoint to be revisited.
package authz

import (
	"github.com/dalemusser/internhub/internal/domain/models"
)

// Capability names an action gated by role.
type Capability int

const (
	ManagePostings Capability = iota
	ApplyToPostings
	ReviewCompanies
	ManageCycle
	ManageWorkshops
	AttendWorkshops
	SubmitReports
	ReviewReports
	TakeAssessments
	BookAppointments
	ViewStatistics
)

// Allowed reports whether role r holds capability c.
func Allowed(r models.Role, c Capability) bool {
	switch r {
	case models.RoleStudent:
		switch c {
		case ApplyToPostings, SubmitReports:
			return true
		}
	case models.RoleProStudent:
		switch c {
		case ApplyToPostings, SubmitReports, AttendWorkshops, TakeAssessments, BookAppointments:
			return true
		}
	case models.RoleCompany:
		switch c {
		case ManagePostings:
			return true
		}
	case models.RoleOffice:
		switch c {
		case ReviewCompanies, ManageCycle, ManageWorkshops, ReviewReports, BookAppointments, ViewStatistics:
			return true
		}
	case models.RoleFaculty:
		switch c {
		case ReviewReports, ViewStatistics:
			return true
		}
	}
	return false
}

// Can reports whether the actor holds capability c. A nil actor (nobody
// signed in) holds nothing.
func Can(a *models.Actor, c Capability) bool {
	return a != nil && Allowed(a.Role, c)
}

// Owns reports whether the actor is the company that owns the posting.
func Owns(a *models.Actor, p models.Posting) bool {
	return a != nil && a.Role == models.RoleCompany && p.CompanyID == a.ID
}

// HasAnyRole reports whether the actor holds one of roles.
func HasAnyRole(a *models.Actor, roles ...models.Role) bool {
	if a == nil {
		return false
	}
	for _, r := range roles {
		if a.Role == r {
			return true
		}
	}
	return false
}
