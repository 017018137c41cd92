package register_test

import (
	"net/http"
	"testing"

	"github.com/dalemusser/internhub/internal/app/features/register"
	"github.com/dalemusser/internhub/internal/domain/models"
	"github.com/dalemusser/internhub/internal/testutil"
	"go.uber.org/zap"
)

type form struct {
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	Password        string   `json:"password"`
	ConfirmPassword string   `json:"confirm_password,omitempty"`
	Industry        string   `json:"industry"`
	Size            string   `json:"size"`
	Documents       []string `json:"documents"`
}

func acme() form {
	return form{
		Name:            "Acme Labs",
		Email:           "HR@Acme.example.com",
		Password:        "secret",
		ConfirmPassword: "secret",
		Industry:        "Technology",
		Size:            "small",
		Documents:       []string{"license.pdf"},
	}
}

func TestHandleRegister_OpensReview(t *testing.T) {
	set := testutil.Ledgers(t)
	h := register.NewHandler(testutil.SessionManager(t, set), nil, zap.NewNop())

	rec := testutil.NewRecorder()
	h.HandleRegister(rec, testutil.NewRequest("POST", "/api/register", acme()))

	rec.AssertStatus(t, http.StatusCreated)
	if res := rec.Envelope(t); res.Message != "Registration submitted. Waiting for approval." {
		t.Errorf("message: got %q", res.Message)
	}
	if len(rec.Result().Cookies()) != 0 {
		t.Error("registration must not sign the company in")
	}

	company, ok := set.Identity.LookupEmail("hr@acme.example.com")
	if !ok {
		t.Fatal("company actor not created")
	}
	if p := company.Company(); p == nil || p.Verified {
		t.Errorf("new company should be unverified, got %+v", company.Profile)
	}

	var found bool
	for _, ca := range set.Office.CompanyApplications(models.ReviewPending) {
		if ca.Email == "hr@acme.example.com" && len(ca.Documents) == 1 {
			found = true
		}
	}
	if !found {
		t.Error("registration should open a pending company application")
	}
}

func TestHandleRegister_Refusals(t *testing.T) {
	taken := acme()
	taken.Email = testutil.CompanyEmail

	mismatch := acme()
	mismatch.ConfirmPassword = "other"

	badSize := acme()
	badSize.Size = "huge"

	tests := []struct {
		name string
		body form
		want int
		msg  string
	}{
		{"email in use", taken, http.StatusConflict, "Email already in use"},
		{"passwords differ", mismatch, http.StatusUnprocessableEntity, "Passwords do not match"},
		{"bad size", badSize, http.StatusUnprocessableEntity, "Company size must be small, medium, large or corporate"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := testutil.Ledgers(t)
			h := register.NewHandler(testutil.SessionManager(t, set), nil, zap.NewNop())
			before := set.Identity.Count()

			rec := testutil.NewRecorder()
			h.HandleRegister(rec, testutil.NewRequest("POST", "/api/register", tt.body))

			rec.AssertStatus(t, tt.want)
			if res := rec.Envelope(t); res.Message != tt.msg {
				t.Errorf("message: got %q, want %q", res.Message, tt.msg)
			}
			if set.Identity.Count() != before {
				t.Error("a refused registration must not add an actor")
			}
		})
	}
}
