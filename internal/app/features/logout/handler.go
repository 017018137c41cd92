// internal/app/features/logout/handler.go
package logout

import (
	"net/http"

	"github.com/dalemusser/internhub/internal/app/system/auditlog"
	"github.com/dalemusser/internhub/internal/app/system/auth"
	"github.com/dalemusser/internhub/internal/app/system/respond"
	"github.com/dalemusser/internhub/internal/app/system/timeouts"
	"go.uber.org/zap"
)

type Handler struct {
	Log        *zap.Logger
	SessionMgr *auth.SessionManager
	AuditLog   *auditlog.Logger
}

func NewHandler(sessionMgr *auth.SessionManager, audit *auditlog.Logger, logger *zap.Logger) *Handler {
	return &Handler{
		Log:        logger,
		SessionMgr: sessionMgr,
		AuditLog:   audit,
	}
}

// HandleLogout handles POST /api/logout. It succeeds whether or not
// anyone was signed in; the cookie is expired either way.
func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	var actorID string
	if a, ok := auth.CurrentActor(r); ok {
		actorID = a.ID
	}

	if err := h.SessionMgr.Session(w, r).Logout(); err != nil {
		h.Log.Error("logout: save session", zap.Error(err))
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Write(), h.Log, "logout audit")
	defer cancel()
	h.AuditLog.Logout(ctx, r, actorID)

	respond.OK(w, "Logged out successfully", nil)
}
