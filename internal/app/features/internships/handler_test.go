package internships_test

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/dalemusser/internhub/internal/app/features/internships"
	"github.com/dalemusser/internhub/internal/app/store/ledger"
	"github.com/dalemusser/internhub/internal/app/system/paging"
	"github.com/dalemusser/internhub/internal/domain/models"
	"github.com/dalemusser/internhub/internal/testutil"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// newRouter serves the feature the way bootstrap mounts it, so tests go
// through the role gates and URL params.
func newRouter(t *testing.T) (http.Handler, *ledger.Set) {
	t.Helper()
	set := testutil.Ledgers(t)
	h := internships.NewHandler(set, nil, zap.NewNop())
	r := chi.NewRouter()
	r.Mount("/api/internships", internships.Routes(h, testutil.SessionManager(t, set)))
	return r, set
}

type listBody struct {
	Count       int              `json:"count"`
	Internships []models.Posting `json:"internships"`
}

func TestServeList_Filters(t *testing.T) {
	router, _ := newRouter(t)

	tests := []struct {
		query string
		want  []string
	}{
		{"", []string{"int1", "int2", "int3", "int4", "int5"}},
		{"?q=react", []string{"int1"}},
		{"?q=techcorp", []string{"int1", "int2"}},
		{"?industry=technology", []string{"int1", "int2"}},
		{"?paid=false", []string{"int3"}},
		{"?duration=3%20months&paid=true", []string{"int1", "int4"}},
		{"?status=inactive", nil},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			rec := testutil.NewRecorder()
			router.ServeHTTP(rec, testutil.NewRequest("GET", "/api/internships"+tt.query, nil))

			rec.AssertStatus(t, http.StatusOK)
			var body listBody
			rec.Decode(t, &body)
			if body.Count != len(tt.want) {
				t.Fatalf("count: got %d, want %d", body.Count, len(tt.want))
			}
			for i, p := range body.Internships {
				if p.ID != tt.want[i] {
					t.Errorf("[%d]: got %s, want %s", i, p.ID, tt.want[i])
				}
			}
		})
	}
}

func TestServeList_Paging(t *testing.T) {
	router, _ := newRouter(t)

	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, testutil.NewRequest("GET", "/api/internships?start=3&limit=2", nil))
	rec.AssertStatus(t, http.StatusOK)

	var body struct {
		listBody
		Page paging.Range `json:"page"`
	}
	rec.Decode(t, &body)
	if body.Count != 5 || len(body.Internships) != 2 {
		t.Fatalf("got count %d with %d rows", body.Count, len(body.Internships))
	}
	if body.Internships[0].ID != "int3" || body.Internships[1].ID != "int4" {
		t.Errorf("page: got %s, %s", body.Internships[0].ID, body.Internships[1].ID)
	}
	if !body.Page.HasPrev || !body.Page.HasNext || body.Page.NextStart != 5 {
		t.Errorf("range: %+v", body.Page)
	}
}

func TestServeList_BadParams(t *testing.T) {
	router, _ := newRouter(t)

	for _, q := range []string{"?paid=maybe", "?status=archived"} {
		rec := testutil.NewRecorder()
		router.ServeHTTP(rec, testutil.NewRequest("GET", "/api/internships"+q, nil))
		rec.AssertStatus(t, http.StatusUnprocessableEntity)
	}
}

func TestServeDetail(t *testing.T) {
	router, _ := newRouter(t)

	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, testutil.NewRequest("GET", "/api/internships/int2", nil))
	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "Data Analyst Intern")

	rec = testutil.NewRecorder()
	router.ServeHTTP(rec, testutil.NewRequest("GET", "/api/internships/int99", nil))
	rec.AssertStatus(t, http.StatusNotFound)
}

func TestCreateUpdateDelete(t *testing.T) {
	router, set := newRouter(t)
	company := testutil.Actor(t, set, testutil.CompanyEmail)

	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, testutil.NewAuthenticatedRequest("POST", "/api/internships", map[string]any{
		"title":       "Backend Intern",
		"description": "<p>Go services</p><script>alert(1)</script>",
		"duration":    "3 months",
		"is_paid":     true,
		"salary":      "$22/hour",
		"industry":    "Technology",
		"skills":      []string{"Go"},
	}, company))
	rec.AssertStatus(t, http.StatusCreated)
	rec.AssertNotContains(t, "<script>")
	var created struct {
		Message    string         `json:"message"`
		Internship models.Posting `json:"internship"`
	}
	rec.Decode(t, &created)
	if created.Message != "Internship posted successfully" || created.Internship.ID != "int6" {
		t.Fatalf("create: got %+v", created)
	}

	rec = testutil.NewRecorder()
	router.ServeHTTP(rec, testutil.NewAuthenticatedRequest("PATCH", "/api/internships/int6",
		map[string]any{"status": "inactive"}, company))
	rec.AssertStatus(t, http.StatusOK)
	if p, _ := set.Opportunities.Posting("int6"); p.Status != models.PostingInactive {
		t.Errorf("status after patch: got %s", p.Status)
	}

	rec = testutil.NewRecorder()
	router.ServeHTTP(rec, testutil.NewAuthenticatedRequest("DELETE", "/api/internships/int6", nil, company))
	rec.AssertStatus(t, http.StatusOK)
	if res := rec.Envelope(t); res.Message != "Internship deleted successfully" {
		t.Errorf("delete message: got %q", res.Message)
	}
	if _, ok := set.Opportunities.Posting("int6"); ok {
		t.Error("posting should be gone")
	}
}

func TestCreate_PaidNeedsSalary(t *testing.T) {
	router, set := newRouter(t)
	company := testutil.Actor(t, set, testutil.CompanyEmail)

	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, testutil.NewAuthenticatedRequest("POST", "/api/internships",
		map[string]any{"title": "Intern", "is_paid": true}, company))

	rec.AssertStatus(t, http.StatusUnprocessableEntity)
	if res := rec.Envelope(t); res.Message != "Salary is required for paid internships" {
		t.Errorf("message: got %q", res.Message)
	}
}

func TestUpdate_PaidNeedsSalary(t *testing.T) {
	router, set := newRouter(t)
	company := testutil.Actor(t, set, testutil.CompanyEmail)

	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, testutil.NewAuthenticatedRequest("POST", "/api/internships",
		map[string]any{"title": "Volunteer Tester", "is_paid": false}, company))
	rec.AssertStatus(t, http.StatusCreated)

	tests := []struct {
		name   string
		target string
		patch  map[string]any
		want   int
	}{
		{"unpaid made paid without salary", "/api/internships/int6", map[string]any{"is_paid": true}, http.StatusUnprocessableEntity},
		{"paid salary cleared", "/api/internships/int1", map[string]any{"salary": "  "}, http.StatusUnprocessableEntity},
		{"unpaid made paid with salary", "/api/internships/int6", map[string]any{"is_paid": true, "salary": "$12/hour"}, http.StatusOK},
		{"paid title change", "/api/internships/int2", map[string]any{"title": "Senior Intern"}, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := testutil.NewRecorder()
			router.ServeHTTP(rec, testutil.NewAuthenticatedRequest("PATCH", tt.target, tt.patch, company))
			rec.AssertStatus(t, tt.want)
		})
	}

	if p, _ := set.Opportunities.Posting("int1"); p.Salary != "$15/hour" {
		t.Errorf("refused patch changed int1 salary to %q", p.Salary)
	}
	if p, _ := set.Opportunities.Posting("int6"); !p.IsPaid || p.Salary != "$12/hour" {
		t.Errorf("int6: paid %v, salary %q", p.IsPaid, p.Salary)
	}
}

func TestRoleGates(t *testing.T) {
	router, set := newRouter(t)
	student := testutil.Actor(t, set, testutil.StudentEmail)
	company := testutil.Actor(t, set, testutil.CompanyEmail)

	tests := []struct {
		name   string
		method string
		target string
		actor  *models.Actor
		want   int
	}{
		{"anonymous create", "POST", "/api/internships", nil, http.StatusUnauthorized},
		{"student create", "POST", "/api/internships", &student, http.StatusForbidden},
		{"company apply", "POST", "/api/internships/int1/apply", &company, http.StatusForbidden},
		{"foreign posting update", "PATCH", "/api/internships/int3", &company, http.StatusNotFound},
		{"missing posting delete", "DELETE", "/api/internships/int99", &company, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.NewRequest(tt.method, tt.target, map[string]any{"title": "x", "salary": "1"})
			if tt.actor != nil {
				req = testutil.WithActor(req, *tt.actor)
			}
			rec := testutil.NewRecorder()
			router.ServeHTTP(rec, req)
			rec.AssertStatus(t, tt.want)
		})
	}
}

func TestApply(t *testing.T) {
	router, set := newRouter(t)
	student := testutil.Actor(t, set, testutil.StudentEmail)

	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, testutil.NewAuthenticatedRequest("POST", "/api/internships/int2/apply",
		map[string]any{"documents": []string{"resume.pdf"}}, student))
	rec.AssertStatus(t, http.StatusCreated)
	if res := rec.Envelope(t); res.Message != "Application submitted successfully" {
		t.Errorf("message: got %q", res.Message)
	}

	rec = testutil.NewRecorder()
	router.ServeHTTP(rec, testutil.NewAuthenticatedRequest("POST", "/api/internships/int2/apply", nil, student))
	rec.AssertStatus(t, http.StatusConflict)

	if got := len(set.Opportunities.ApplicationsByStudent("s1")); got != 1 {
		t.Errorf("applications: got %d, want 1", got)
	}
}

// Clients that stream the request send an empty body with no length.
func TestApply_EmptyChunkedBody(t *testing.T) {
	router, set := newRouter(t)
	student := testutil.Actor(t, set, testutil.StudentEmail)

	req := testutil.NewAuthenticatedRequest("POST", "/api/internships/int2/apply", nil, student)
	req.Body = io.NopCloser(strings.NewReader(""))
	req.ContentLength = -1
	req.TransferEncoding = []string{"chunked"}

	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, req)
	rec.AssertStatus(t, http.StatusCreated)
	if got := set.Opportunities.ApplicationsByStudent("s1"); len(got) != 1 || len(got[0].Documents) != 0 {
		t.Errorf("applications: got %+v", got)
	}
}

func TestServeMineAndApplicants(t *testing.T) {
	router, set := newRouter(t)
	company := testutil.Actor(t, set, testutil.CompanyEmail)

	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, testutil.NewAuthenticatedRequest("GET", "/api/internships/mine", nil, company))
	rec.AssertStatus(t, http.StatusOK)
	var mine listBody
	rec.Decode(t, &mine)
	if mine.Count != 2 {
		t.Errorf("mine: got %d, want 2", mine.Count)
	}

	rec = testutil.NewRecorder()
	router.ServeHTTP(rec, testutil.NewAuthenticatedRequest("GET", "/api/internships/int1/applications", nil, company))
	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, `"app1"`)

	rec = testutil.NewRecorder()
	router.ServeHTTP(rec, testutil.NewAuthenticatedRequest("GET", "/api/internships/int3/applications", nil, company))
	rec.AssertStatus(t, http.StatusNotFound)
}
