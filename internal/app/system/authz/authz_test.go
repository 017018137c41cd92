package authz_test

import (
	"testing"

	"github.com/dalemusser/internhub/internal/app/system/authz"
	"github.com/dalemusser/internhub/internal/domain/models"
)

func TestAllowed_Matrix(t *testing.T) {
	tests := []struct {
		role models.Role
		cap  authz.Capability
		want bool
	}{
		{models.RoleCompany, authz.ManagePostings, true},
		{models.RoleStudent, authz.ManagePostings, false},
		{models.RoleOffice, authz.ManagePostings, false},

		{models.RoleStudent, authz.ApplyToPostings, true},
		{models.RoleProStudent, authz.ApplyToPostings, true},
		{models.RoleCompany, authz.ApplyToPostings, false},

		{models.RoleOffice, authz.ReviewCompanies, true},
		{models.RoleFaculty, authz.ReviewCompanies, false},

		{models.RoleProStudent, authz.AttendWorkshops, true},
		{models.RoleStudent, authz.AttendWorkshops, false},

		{models.RoleFaculty, authz.ReviewReports, true},
		{models.RoleOffice, authz.ReviewReports, true},
		{models.RoleStudent, authz.ReviewReports, false},

		{models.RoleProStudent, authz.TakeAssessments, true},
		{models.RoleStudent, authz.TakeAssessments, false},

		{models.RoleProStudent, authz.BookAppointments, true},
		{models.RoleOffice, authz.BookAppointments, true},
		{models.RoleFaculty, authz.BookAppointments, false},

		{models.RoleOffice, authz.ViewStatistics, true},
		{models.RoleFaculty, authz.ViewStatistics, true},
		{models.RoleCompany, authz.ViewStatistics, false},

		{models.Role("admin"), authz.ViewStatistics, false},
	}
	for _, tt := range tests {
		if got := authz.Allowed(tt.role, tt.cap); got != tt.want {
			t.Errorf("Allowed(%s, %d) = %v, want %v", tt.role, tt.cap, got, tt.want)
		}
	}
}

func TestCan_NilActor(t *testing.T) {
	if authz.Can(nil, authz.ApplyToPostings) {
		t.Error("nil actor must not hold any capability")
	}
}

func TestOwns(t *testing.T) {
	owner := &models.Actor{ID: "c1", Role: models.RoleCompany}
	other := &models.Actor{ID: "c2", Role: models.RoleCompany}
	student := &models.Actor{ID: "c1", Role: models.RoleStudent}
	p := models.Posting{ID: "int1", CompanyID: "c1"}

	if !authz.Owns(owner, p) {
		t.Error("owner should own posting")
	}
	if authz.Owns(other, p) {
		t.Error("other company should not own posting")
	}
	if authz.Owns(student, p) {
		t.Error("non-company actor with matching id should not own posting")
	}
}
