package testutil

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/dalemusser/internhub/internal/app/seed"
	"github.com/dalemusser/internhub/internal/app/store/ledger"
	"github.com/dalemusser/internhub/internal/app/system/auth"
	"github.com/dalemusser/internhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// FixedNow is the clock every fixture ledger runs on.
var FixedNow = time.Date(2025, 4, 10, 9, 0, 0, 0, time.UTC)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that call a handler method directly.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		rctx = chi.NewRouteContext()
	}
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Ledgers builds the stores from the embedded sample catalog with a fixed
// clock, a fixed assessment score of 80 and the cheapest bcrypt cost.
func Ledgers(t *testing.T) *ledger.Set {
	t.Helper()
	data, err := seed.Default()
	if err != nil {
		t.Fatalf("seed.Default: %v", err)
	}
	set, err := ledger.Build(data, ledger.Options{
		BcryptCost: bcrypt.MinCost,
		Now:        func() time.Time { return FixedNow },
		Scorer:     func() int { return 80 },
	}, zap.NewNop())
	if err != nil {
		t.Fatalf("ledger.Build: %v", err)
	}
	return set
}

// Actor looks up a seeded actor by email and fails the test if absent.
func Actor(t *testing.T, set *ledger.Set, email string) models.Actor {
	t.Helper()
	a, ok := set.Identity.LookupEmail(email)
	if !ok {
		t.Fatalf("no seeded actor %q", email)
	}
	return a
}

// SessionManager returns a cookie session manager over set's identity
// store.
func SessionManager(t *testing.T, set *ledger.Set) *auth.SessionManager {
	t.Helper()
	sm, err := auth.NewSessionManager("test-session-key-must-be-32-chars-long",
		"test-session", "", 24*time.Hour, false, set.Identity, zap.NewNop())
	if err != nil {
		t.Fatalf("NewSessionManager: %v", err)
	}
	return sm
}

// Seeded account emails.
const (
	StudentEmail    = "student@example.com"
	ProStudentEmail = "prostudent@example.com"
	CompanyEmail    = "company@example.com"
	OfficeEmail     = "scadoffice@example.com"
	FacultyEmail    = "faculty@example.com"
)
