package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dalemusser/internhub/internal/app/store/identity"
	"github.com/dalemusser/internhub/internal/app/system/auth"
	"github.com/dalemusser/internhub/internal/domain/models"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func newTestSessionManager(t *testing.T) (*auth.SessionManager, *identity.Store) {
	t.Helper()
	logger := zap.NewNop()
	ids := identity.New(identity.Options{BcryptCost: bcrypt.MinCost}, logger)
	err := ids.Seed(models.Actor{
		ID: "s1", Email: "student@example.com", Name: "John Smith", Role: models.RoleStudent,
		Profile: &models.StudentProfile{Major: "Computer Science", Semester: 6},
	}, "password")
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	sm, err := auth.NewSessionManager(
		"test-session-key-must-be-32-chars-long",
		"test-session",
		"",
		24*time.Hour,
		false,
		ids,
		logger,
	)
	if err != nil {
		t.Fatalf("failed to create session manager: %v", err)
	}
	return sm, ids
}

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestNewSessionManager_EmptyKey(t *testing.T) {
	_, err := auth.NewSessionManager("", "x", "", time.Hour, false, nil, zap.NewNop())
	if err == nil {
		t.Fatal("expected error for empty session key")
	}
}

func TestRequireSignedIn_NoUser_Returns401(t *testing.T) {
	sm, _ := newTestSessionManager(t)

	rec := httptest.NewRecorder()
	sm.RequireSignedIn(okHandler).ServeHTTP(rec, httptest.NewRequest("GET", "/api/me", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, rec.Code)
	}
}

func TestRequireSignedIn_WithUser_PassesThrough(t *testing.T) {
	sm, _ := newTestSessionManager(t)

	req := httptest.NewRequest("GET", "/api/me", nil)
	req = req.WithContext(auth.WithActor(req.Context(), &models.Actor{ID: "s1", Role: models.RoleStudent}))
	rec := httptest.NewRecorder()
	sm.RequireSignedIn(okHandler).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
}

func TestRequireRole(t *testing.T) {
	sm, _ := newTestSessionManager(t)

	tests := []struct {
		name  string
		actor *models.Actor
		want  int
	}{
		{"no user", nil, http.StatusUnauthorized},
		{"wrong role", &models.Actor{ID: "s1", Role: models.RoleStudent}, http.StatusForbidden},
		{"allowed role", &models.Actor{ID: "so1", Role: models.RoleOffice}, http.StatusOK},
		{"second allowed role", &models.Actor{ID: "f1", Role: models.RoleFaculty}, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/api/statistics", nil)
			if tt.actor != nil {
				req = req.WithContext(auth.WithActor(req.Context(), tt.actor))
			}
			rec := httptest.NewRecorder()
			sm.RequireRole(models.RoleOffice, models.RoleFaculty)(okHandler).ServeHTTP(rec, req)

			if rec.Code != tt.want {
				t.Errorf("expected status %d, got %d", tt.want, rec.Code)
			}
		})
	}
}

func TestLoginCookie_RestoresActor(t *testing.T) {
	sm, _ := newTestSessionManager(t)

	// Log in and capture the cookie.
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/login", nil)
	if _, err := sm.Session(rec, req).Login("student@example.com", "password"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	cookies := rec.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("login should set a session cookie")
	}

	// A later request carrying the cookie sees the actor.
	var seen *models.Actor
	handler := sm.LoadSessionUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = auth.CurrentActor(r)
	}))
	req = httptest.NewRequest("GET", "/api/me", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if seen == nil || seen.ID != "s1" {
		t.Fatalf("expected actor s1 from cookie, got %+v", seen)
	}
	if seen.PasswordHash != nil {
		t.Error("context actor must not carry the password hash")
	}
}

func TestLoadSessionUser_NoCookie(t *testing.T) {
	sm, _ := newTestSessionManager(t)

	var found bool
	handler := sm.LoadSessionUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, found = auth.CurrentActor(r)
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/api/me", nil))

	if found {
		t.Error("no cookie should mean no current actor")
	}
}

func TestLogout_ExpiresCookie(t *testing.T) {
	sm, _ := newTestSessionManager(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/logout", nil)
	if err := sm.Session(rec, req).Logout(); err != nil {
		t.Fatalf("Logout: %v", err)
	}

	var expired bool
	for _, c := range rec.Result().Cookies() {
		if c.Name == "test-session" && c.MaxAge < 0 {
			expired = true
		}
	}
	if !expired {
		t.Error("logout should expire the session cookie")
	}
}
