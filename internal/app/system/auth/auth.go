package auth

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/dalemusser/internhub/internal/app/store/identity"
	"github.com/dalemusser/internhub/internal/app/system/respond"
	"github.com/dalemusser/internhub/internal/domain/models"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

/*─────────────────────────────────────────────────────────────────────────────*
| Session constants                                                          |
*─────────────────────────────────────────────────────────────────────────────*/

const (
	DefaultSessionName = "internhub-session"

	// actorIDKey is the single value kept in the cookie.
	actorIDKey = "actor_id"
)

// SessionManager keeps the current actor id in a signed cookie and loads
// the actor into the request context.
type SessionManager struct {
	store *sessions.CookieStore
	name  string
	ids   *identity.Store
	log   *zap.Logger
}

// NewSessionManager builds the cookie store. In production (secure=true)
// cookies are Secure with SameSite=None; over plain http in development
// they use SameSite=Lax.
func NewSessionManager(sessionKey, name, domain string, maxAge time.Duration, secure bool, ids *identity.Store, logger *zap.Logger) (*SessionManager, error) {
	if sessionKey == "" {
		return nil, fmt.Errorf("session key is empty; provide ≥32 random chars")
	}
	if len(sessionKey) < 32 {
		logger.Warn("session key is short; 32+ chars recommended",
			zap.Int("length", len(sessionKey)))
	}
	if name == "" {
		name = DefaultSessionName
	}

	store := sessions.NewCookieStore([]byte(sessionKey))
	store.Options = &sessions.Options{
		Domain:   domain,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		Secure:   secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	if secure {
		store.Options.SameSite = http.SameSiteNoneMode
	}

	logger.Info("session store initialized",
		zap.String("name", name),
		zap.Bool("secure", secure),
		zap.String("domain", domain))

	return &SessionManager{store: store, name: name, ids: ids, log: logger}, nil
}

// Session binds the identity store to this request's cookie. Login and
// Logout on the result write the cookie, so call them before writing the
// response body.
func (sm *SessionManager) Session(w http.ResponseWriter, r *http.Request) *identity.Session {
	return identity.NewSession(sm.ids, &cookiePersister{sm: sm, w: w, r: r}, sm.log)
}

/*─────────────────────────────────────────────────────────────────────────────*
| Current-actor helpers                                                      |
*─────────────────────────────────────────────────────────────────────────────*/

type ctxKey string

const currentActorKey ctxKey = "currentActor"

// CurrentActor returns the signed-in actor and a found flag.
func CurrentActor(r *http.Request) (*models.Actor, bool) {
	a, ok := r.Context().Value(currentActorKey).(*models.Actor)
	return a, ok && a != nil
}

// WithActor returns ctx carrying a as the current actor.
func WithActor(ctx context.Context, a *models.Actor) context.Context {
	return context.WithValue(ctx, currentActorKey, a)
}

// LoadSessionUser restores the persisted actor into the request context.
// A cookie naming an actor that no longer exists is cleared.
func (sm *SessionManager) LoadSessionUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if a, ok := sm.Session(w, r).Restore(); ok {
			r = r.WithContext(WithActor(r.Context(), &a))
		}
		next.ServeHTTP(w, r)
	})
}

// RequireSignedIn answers 401 when nobody is signed in.
func (sm *SessionManager) RequireSignedIn(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := CurrentActor(r); !ok {
			respond.Fail(w, http.StatusUnauthorized, "Please sign in to continue")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireRole answers 401 when nobody is signed in and 403 when the actor
// holds none of the allowed roles.
func (sm *SessionManager) RequireRole(allowed ...models.Role) func(http.Handler) http.Handler {
	set := make(map[models.Role]struct{}, len(allowed))
	for _, role := range allowed {
		set[role] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			a, ok := CurrentActor(r)
			if !ok {
				respond.Fail(w, http.StatusUnauthorized, "Please sign in to continue")
				return
			}
			if _, has := set[a.Role]; !has {
				respond.Fail(w, http.StatusForbidden, "You do not have access to this page")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

/*─────────────────────────────────────────────────────────────────────────────*
| Cookie persister                                                           |
*─────────────────────────────────────────────────────────────────────────────*/

// cookiePersister implements identity.Persister for one request.
type cookiePersister struct {
	sm *SessionManager
	w  http.ResponseWriter
	r  *http.Request
}

func (p *cookiePersister) session() *sessions.Session {
	// Get returns a fresh session alongside a decode error for a tampered or
	// stale cookie; the fresh session is what we want then.
	sess, err := p.sm.store.Get(p.r, p.sm.name)
	if err != nil {
		p.sm.log.Debug("session cookie ignored", zap.Error(err))
	}
	return sess
}

func (p *cookiePersister) Save(actorID string) error {
	sess := p.session()
	sess.Values[actorIDKey] = actorID
	return sess.Save(p.r, p.w)
}

func (p *cookiePersister) Load() (string, bool) {
	id, ok := p.session().Values[actorIDKey].(string)
	return id, ok && id != ""
}

func (p *cookiePersister) Clear() error {
	sess := p.session()
	delete(sess.Values, actorIDKey)
	sess.Options.MaxAge = -1
	return sess.Save(p.r, p.w)
}
