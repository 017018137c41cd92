// internal/app/features/login/handler.go
package login

import (
	"net/http"

	"github.com/dalemusser/internhub/internal/app/system/auditlog"
	"github.com/dalemusser/internhub/internal/app/system/auth"
	"github.com/dalemusser/internhub/internal/app/system/outcome"
	"github.com/dalemusser/internhub/internal/app/system/ratelimit"
	"github.com/dalemusser/internhub/internal/app/system/respond"
	"github.com/dalemusser/internhub/internal/app/system/timeouts"
	"go.uber.org/zap"
)

type Handler struct {
	SessionMgr *auth.SessionManager
	Limiter    *ratelimit.LoginLimiter // nil disables throttling
	AuditLog   *auditlog.Logger
	Log        *zap.Logger
}

func NewHandler(sessionMgr *auth.SessionManager, limiter *ratelimit.LoginLimiter, audit *auditlog.Logger, logger *zap.Logger) *Handler {
	return &Handler{
		SessionMgr: sessionMgr,
		Limiter:    limiter,
		AuditLog:   audit,
		Log:        logger,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HandleLogin handles POST /api/login.
//
// On success the session cookie is set and the body is
//
//	{ "success":true, "message":"Welcome back, John Smith", "user":{…} }
//
// Unknown email and wrong password both answer 401 with the same message.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := respond.Decode(w, r, &req); err != nil {
		respond.Error(w, h.Log, err)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Write(), h.Log, "login audit")
	defer cancel()

	if h.Limiter != nil {
		if ok, reason := h.Limiter.Check(r, req.Email); !ok {
			h.AuditLog.LoginRateLimited(ctx, r, req.Email)
			respond.Error(w, h.Log, outcome.Fail(outcome.ErrRateLimited, reason))
			return
		}
	}

	actor, err := h.SessionMgr.Session(w, r).Login(req.Email, req.Password)
	if err != nil {
		if outcome.KindOf(err) == outcome.ErrInvalidCredentials {
			h.AuditLog.LoginFailed(ctx, r, req.Email)
		}
		respond.Error(w, h.Log, err)
		return
	}

	if h.Limiter != nil {
		h.Limiter.ResetEmail(req.Email)
	}
	h.AuditLog.LoginSuccess(ctx, r, actor)
	h.Log.Info("signed in", zap.String("actor_id", actor.ID), zap.String("role", string(actor.Role)))

	respond.OK(w, "Welcome back, "+actor.Name, respond.Fields{"user": actor})
}
