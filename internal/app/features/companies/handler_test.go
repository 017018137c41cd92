package companies_test

import (
	"net/http"
	"testing"

	"github.com/dalemusser/internhub/internal/app/features/companies"
	"github.com/dalemusser/internhub/internal/app/store/identity"
	"github.com/dalemusser/internhub/internal/app/store/ledger"
	"github.com/dalemusser/internhub/internal/domain/models"
	"github.com/dalemusser/internhub/internal/testutil"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func newRouter(t *testing.T) (http.Handler, *ledger.Set) {
	t.Helper()
	set := testutil.Ledgers(t)
	h := companies.NewHandler(set, nil, zap.NewNop())
	r := chi.NewRouter()
	r.Mount("/api/companies", companies.Routes(h, testutil.SessionManager(t, set)))
	return r, set
}

func TestServeList(t *testing.T) {
	router, set := newRouter(t)
	office := testutil.Actor(t, set, testutil.OfficeEmail)

	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, testutil.NewAuthenticatedRequest("GET", "/api/companies?status=pending", nil, office))
	rec.AssertStatus(t, http.StatusOK)
	var body struct {
		Count int `json:"count"`
	}
	rec.Decode(t, &body)
	if body.Count != 3 {
		t.Errorf("pending: got %d, want 3", body.Count)
	}

	rec = testutil.NewRecorder()
	router.ServeHTTP(rec, testutil.NewAuthenticatedRequest("GET", "/api/companies?status=lost", nil, office))
	rec.AssertStatus(t, http.StatusUnprocessableEntity)
}

func TestServeList_OfficeOnly(t *testing.T) {
	router, set := newRouter(t)
	faculty := testutil.Actor(t, set, testutil.FacultyEmail)

	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, testutil.NewAuthenticatedRequest("GET", "/api/companies", nil, faculty))
	rec.AssertStatus(t, http.StatusForbidden)
}

// A company registers, the office approves it over the API, and the
// company's next login sees itself verified with one unread notification.
func TestHandleReview_RegistrationToApproval(t *testing.T) {
	router, set := newRouter(t)
	office := testutil.Actor(t, set, testutil.OfficeEmail)

	if _, err := set.Identity.RegisterCompany(identity.Registration{
		Name: "Acme Labs", Email: "hr@acme.example.com", Password: "secret", Size: "small",
	}); err != nil {
		t.Fatalf("RegisterCompany: %v", err)
	}
	var id string
	for _, ca := range set.Office.CompanyApplications(models.ReviewPending) {
		if ca.Email == "hr@acme.example.com" {
			id = ca.ID
		}
	}
	if id == "" {
		t.Fatal("no pending application for the new company")
	}

	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, testutil.NewAuthenticatedRequest("POST", "/api/companies/"+id+"/review",
		map[string]bool{"approved": true}, office))
	rec.AssertStatus(t, http.StatusOK)
	if res := rec.Envelope(t); res.Message != "Company application approved successfully" {
		t.Errorf("message: got %q", res.Message)
	}

	company, err := set.Identity.Authenticate("hr@acme.example.com", "secret")
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if !company.Company().Verified {
		t.Error("approved company should be verified")
	}
	inbox := set.Office.Inbox(company)
	if len(inbox) != 1 || inbox[0].Subject != "Company Registration Approved" {
		t.Errorf("inbox: got %+v", inbox)
	}

	// A second review of the same application is refused.
	rec = testutil.NewRecorder()
	router.ServeHTTP(rec, testutil.NewAuthenticatedRequest("POST", "/api/companies/"+id+"/review",
		map[string]bool{"approved": false}, office))
	rec.AssertStatus(t, http.StatusConflict)
}

func TestHandleReview_Reject(t *testing.T) {
	router, set := newRouter(t)
	office := testutil.Actor(t, set, testutil.OfficeEmail)

	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, testutil.NewAuthenticatedRequest("POST", "/api/companies/ca2/review",
		map[string]bool{"approved": false}, office))
	rec.AssertStatus(t, http.StatusOK)
	if res := rec.Envelope(t); res.Message != "Company application rejected successfully" {
		t.Errorf("message: got %q", res.Message)
	}

	rec = testutil.NewRecorder()
	router.ServeHTTP(rec, testutil.NewAuthenticatedRequest("POST", "/api/companies/ca99/review",
		map[string]bool{"approved": true}, office))
	rec.AssertStatus(t, http.StatusNotFound)
}
