package login_test

import (
	"net/http"
	"testing"

	"github.com/dalemusser/internhub/internal/app/features/login"
	"github.com/dalemusser/internhub/internal/app/system/ratelimit"
	"github.com/dalemusser/internhub/internal/testutil"
	"go.uber.org/zap"
)

type creds struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func newHandler(t *testing.T, limiter *ratelimit.LoginLimiter) *login.Handler {
	t.Helper()
	set := testutil.Ledgers(t)
	return login.NewHandler(testutil.SessionManager(t, set), limiter, nil, zap.NewNop())
}

func TestHandleLogin_Success(t *testing.T) {
	h := newHandler(t, nil)

	rec := testutil.NewRecorder()
	h.HandleLogin(rec, testutil.NewRequest("POST", "/api/login", creds{"Student@Example.com", "password"}))

	rec.AssertStatus(t, http.StatusOK)
	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		User    struct {
			ID   string `json:"id"`
			Role string `json:"role"`
		} `json:"user"`
	}
	rec.Decode(t, &body)
	if !body.Success || body.Message != "Welcome back, John Smith" {
		t.Errorf("envelope: got %+v", body)
	}
	if body.User.ID != "s1" || body.User.Role != "student" {
		t.Errorf("user: got %+v", body.User)
	}
	if len(rec.Result().Cookies()) == 0 {
		t.Error("login should set the session cookie")
	}
	rec.AssertNotContains(t, "password")
}

func TestHandleLogin_Failures(t *testing.T) {
	tests := []struct {
		name string
		body any
		want int
		msg  string
	}{
		{"wrong password", creds{"student@example.com", "nope"}, http.StatusUnauthorized, "Invalid email or password"},
		{"unknown email", creds{"ghost@example.com", "password"}, http.StatusUnauthorized, "Invalid email or password"},
		{"malformed body", "not an object", http.StatusUnprocessableEntity, "Request body is not valid JSON"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHandler(t, nil)
			rec := testutil.NewRecorder()
			h.HandleLogin(rec, testutil.NewRequest("POST", "/api/login", tt.body))

			rec.AssertStatus(t, tt.want)
			res := rec.Envelope(t)
			if res.Success || res.Message != tt.msg {
				t.Errorf("envelope: got %+v", res)
			}
			if len(rec.Result().Cookies()) != 0 {
				t.Error("failed login must not set a cookie")
			}
		})
	}
}

func TestHandleLogin_RateLimited(t *testing.T) {
	h := newHandler(t, ratelimit.NewLoginLimiter(10, 4))

	// The per-account budget is two attempts.
	for i := 0; i < 2; i++ {
		rec := testutil.NewRecorder()
		h.HandleLogin(rec, testutil.NewRequest("POST", "/api/login", creds{"student@example.com", "nope"}))
		rec.AssertStatus(t, http.StatusUnauthorized)
	}

	rec := testutil.NewRecorder()
	h.HandleLogin(rec, testutil.NewRequest("POST", "/api/login", creds{"student@example.com", "password"}))
	rec.AssertStatus(t, http.StatusTooManyRequests)
}
