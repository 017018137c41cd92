package models_test

import (
	"testing"

	"github.com/dalemusser/internhub/internal/domain/models"
)

func TestBroadcastTo(t *testing.T) {
	if got := models.BroadcastTo(models.RoleProStudent); got != "all_prostudents" {
		t.Errorf("got %q, want all_prostudents", got)
	}
	if got := models.BroadcastTo(models.RoleOffice); got != "all_scadoffices" {
		t.Errorf("got %q, want all_scadoffices", got)
	}
}

func TestNotification_AddressedTo(t *testing.T) {
	tests := []struct {
		name    string
		to      string
		actorID string
		role    models.Role
		want    bool
	}{
		{"direct id", "s1", "s1", models.RoleStudent, true},
		{"other id", "s2", "s1", models.RoleStudent, false},
		{"all students to student", models.AllStudents, "s1", models.RoleStudent, true},
		{"all students to pro student", models.AllStudents, "p1", models.RoleProStudent, true},
		{"all students to company", models.AllStudents, "c1", models.RoleCompany, false},
		{"all students to faculty", models.AllStudents, "f1", models.RoleFaculty, false},
		{"role broadcast match", "all_prostudents", "p1", models.RoleProStudent, true},
		{"role broadcast mismatch", "all_prostudents", "s1", models.RoleStudent, false},
		{"office broadcast", "all_scadoffices", "so1", models.RoleOffice, true},
		{"company broadcast", "all_companys", "c1", models.RoleCompany, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := models.Notification{To: tt.to}
			if got := n.AddressedTo(tt.actorID, tt.role); got != tt.want {
				t.Errorf("AddressedTo(%q, %q) with to=%q: got %v, want %v", tt.actorID, tt.role, tt.to, got, tt.want)
			}
		})
	}
}
