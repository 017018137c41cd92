package bootstrap_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dalemusser/internhub/internal/app/bootstrap"
	"github.com/dalemusser/internhub/internal/app/seed"
	"github.com/dalemusser/internhub/internal/app/store/ledger"
	"github.com/dalemusser/internhub/internal/testutil"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func validAppConfig() bootstrap.AppConfig {
	return bootstrap.AppConfig{
		MongoDatabase:      "internhub",
		SessionKey:         "test-session-key-must-be-32-chars-long",
		SessionName:        "internhub-session",
		SessionMaxAge:      time.Hour,
		BcryptCost:         bcrypt.MinCost,
		LoginRatePerMinute: 60,
		LoginBurst:         20,
		AuditLogAuth:       "log",
		AuditLogAdmin:      "log",
	}
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		env     string
		mutate  func(*bootstrap.AppConfig)
		wantErr bool
	}{
		{"valid", "dev", func(*bootstrap.AppConfig) {}, false},
		{"no mongo is fine", "prod", func(c *bootstrap.AppConfig) { c.MongoURI = "" }, false},
		{"bad mongo uri", "dev", func(c *bootstrap.AppConfig) { c.MongoURI = "postgres://nope" }, true},
		{"short key in prod", "prod", func(c *bootstrap.AppConfig) { c.SessionKey = "short" }, true},
		{"short key in dev", "dev", func(c *bootstrap.AppConfig) { c.SessionKey = "short" }, false},
		{"no key", "dev", func(c *bootstrap.AppConfig) { c.SessionKey = "" }, true},
		{"bcrypt cost", "dev", func(c *bootstrap.AppConfig) { c.BcryptCost = 99 }, true},
		{"zero burst", "dev", func(c *bootstrap.AppConfig) { c.LoginBurst = 0 }, true},
		{"audit setting", "dev", func(c *bootstrap.AppConfig) { c.AuditLogAdmin = "everything" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validAppConfig()
			tt.mutate(&cfg)
			err := bootstrap.ValidateConfig(&config.CoreConfig{Env: tt.env}, cfg, zap.NewNop())
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateConfig: err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// apiClient is one browser: its own cookie jar against the test server.
type apiClient struct {
	t    *testing.T
	base string
	http *http.Client
}

type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func newServer(t *testing.T) (string, *ledger.Set) {
	t.Helper()
	data, err := seed.Default()
	if err != nil {
		t.Fatalf("seed.Default: %v", err)
	}
	set, err := ledger.Build(data, ledger.Options{BcryptCost: bcrypt.MinCost, Now: func() time.Time { return testutil.FixedNow }}, zap.NewNop())
	if err != nil {
		t.Fatalf("ledger.Build: %v", err)
	}

	h, err := bootstrap.BuildHandler(&config.CoreConfig{Env: "dev"}, validAppConfig(), bootstrap.DBDeps{Ledgers: set}, zap.NewNop())
	if err != nil {
		t.Fatalf("BuildHandler: %v", err)
	}
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return srv.URL, set
}

func newClient(t *testing.T, base string) *apiClient {
	t.Helper()
	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookiejar: %v", err)
	}
	return &apiClient{t: t, base: base, http: &http.Client{Jar: jar}}
}

// do sends body as JSON and decodes the response into out when non-nil.
func (c *apiClient) do(method, path string, body any, out any) (int, envelope) {
	c.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			c.t.Fatalf("encode: %v", err)
		}
	}
	req, err := http.NewRequest(method, c.base+path, &buf)
	if err != nil {
		c.t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.http.Do(req)
	if err != nil {
		c.t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	var raw json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		c.t.Fatalf("%s %s: decode: %v", method, path, err)
	}
	var env envelope
	_ = json.Unmarshal(raw, &env)
	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			c.t.Fatalf("%s %s: decode payload: %v", method, path, err)
		}
	}
	return resp.StatusCode, env
}

func (c *apiClient) login(email, password string) {
	c.t.Helper()
	status, env := c.do("POST", "/api/login", map[string]string{"email": email, "password": password}, nil)
	if status != http.StatusOK {
		c.t.Fatalf("login %s: status %d (%s)", email, status, env.Message)
	}
}

func TestHealth(t *testing.T) {
	base, _ := newServer(t)
	c := newClient(t, base)

	var body struct {
		Status   string `json:"status"`
		Database string `json:"database"`
	}
	if status, _ := c.do("GET", "/api/health", nil, &body); status != http.StatusOK {
		t.Fatalf("health: status %d", status)
	}
	if body.Status != "ok" || body.Database != "disabled" {
		t.Errorf("health: %+v", body)
	}
}

func TestUnknownAPIPath(t *testing.T) {
	base, _ := newServer(t)
	status, env := newClient(t, base).do("GET", "/api/nothing-here", nil, nil)
	if status != http.StatusNotFound || env.Success {
		t.Errorf("got %d %+v", status, env)
	}
}

// A company registers, cannot sign in as verified until the office
// approves it, then finds the decision in its notifications.
func TestCompanyRegistrationScenario(t *testing.T) {
	base, _ := newServer(t)

	company := newClient(t, base)
	status, env := company.do("POST", "/api/register", map[string]any{
		"name":      "Blue Harbor Design",
		"email":     "jobs@blueharbor.example.com",
		"password":  "harbor-pass",
		"industry":  "Design",
		"size":      "small",
		"documents": []string{"license.pdf"},
	}, nil)
	if status != http.StatusCreated || env.Message != "Registration submitted. Waiting for approval." {
		t.Fatalf("register: %d %q", status, env.Message)
	}

	office := newClient(t, base)
	office.login(testutil.OfficeEmail, "password")

	var pending struct {
		Applications []struct {
			ID    string `json:"id"`
			Email string `json:"email"`
		} `json:"applications"`
	}
	office.do("GET", "/api/companies?status=pending", nil, &pending)
	var id string
	for _, ca := range pending.Applications {
		if ca.Email == "jobs@blueharbor.example.com" {
			id = ca.ID
		}
	}
	if id == "" {
		t.Fatalf("registration not in the office queue: %+v", pending.Applications)
	}

	status, env = office.do("POST", "/api/companies/"+id+"/review", map[string]bool{"approved": true}, nil)
	if status != http.StatusOK || env.Message != "Company application approved successfully" {
		t.Fatalf("review: %d %q", status, env.Message)
	}

	company.login("jobs@blueharbor.example.com", "harbor-pass")
	var me struct {
		User struct {
			Verified bool `json:"verified"`
		} `json:"user"`
		Unread int `json:"unread_notifications"`
	}
	if status, _ := company.do("GET", "/api/me", nil, &me); status != http.StatusOK {
		t.Fatalf("me: status %d", status)
	}
	if !me.User.Verified || me.Unread != 1 {
		t.Errorf("after approval: %+v", me)
	}
}

// A student applies, the company walks the application through the
// pipeline, and the student sees the final status.
func TestApplicationScenario(t *testing.T) {
	base, _ := newServer(t)

	student := newClient(t, base)
	student.login(testutil.StudentEmail, "password")

	status, env := student.do("POST", "/api/internships/int2/apply", map[string]any{"documents": []string{"cv.pdf"}}, nil)
	if status != http.StatusCreated {
		t.Fatalf("apply: %d %q", status, env.Message)
	}
	var list struct {
		Applications []struct {
			ID        string `json:"id"`
			PostingID string `json:"internship_id"`
		} `json:"applications"`
	}
	if status, _ := student.do("GET", "/api/applications", nil, &list); status != http.StatusOK {
		t.Fatalf("list: %d", status)
	}
	var appID string
	for _, a := range list.Applications {
		if a.PostingID == "int2" {
			appID = a.ID
		}
	}
	if appID == "" {
		t.Fatalf("application to int2 not listed: %+v", list.Applications)
	}

	// Applying twice is refused.
	if status, _ := student.do("POST", "/api/internships/int2/apply", nil, nil); status != http.StatusConflict {
		t.Errorf("second apply: status %d, want 409", status)
	}

	company := newClient(t, base)
	company.login(testutil.CompanyEmail, "password")
	for _, next := range []string{"finalized", "accepted", "current", "completed"} {
		status, env := company.do("PATCH", "/api/applications/"+appID+"/status", map[string]string{"status": next}, nil)
		if status != http.StatusOK {
			t.Fatalf("%s: %d %q", next, status, env.Message)
		}
	}

	var detail struct {
		Application struct {
			Status string `json:"status"`
		} `json:"application"`
	}
	student.do("GET", "/api/applications/"+appID, nil, &detail)
	if detail.Application.Status != "completed" {
		t.Errorf("student sees status %q, want completed", detail.Application.Status)
	}
}

// Signing out ends the session: the same client is anonymous afterwards.
func TestLogoutScenario(t *testing.T) {
	base, _ := newServer(t)
	c := newClient(t, base)
	c.login(testutil.FacultyEmail, "password")

	if status, _ := c.do("GET", "/api/statistics", nil, nil); status != http.StatusOK {
		t.Fatalf("statistics while signed in: %d", status)
	}
	if status, env := c.do("POST", "/api/logout", nil, nil); status != http.StatusOK || !strings.Contains(env.Message, "Logged out") {
		t.Fatalf("logout: %d %q", status, env.Message)
	}
	if status, _ := c.do("GET", "/api/statistics", nil, nil); status != http.StatusUnauthorized {
		t.Errorf("statistics after logout: %d, want 401", status)
	}
}
