// internal/app/features/register/handler.go
package register

import (
	"net/http"

	"github.com/dalemusser/internhub/internal/app/store/identity"
	"github.com/dalemusser/internhub/internal/app/system/auditlog"
	"github.com/dalemusser/internhub/internal/app/system/auth"
	"github.com/dalemusser/internhub/internal/app/system/outcome"
	"github.com/dalemusser/internhub/internal/app/system/respond"
	"github.com/dalemusser/internhub/internal/app/system/timeouts"
	"go.uber.org/zap"
)

type Handler struct {
	SessionMgr *auth.SessionManager
	AuditLog   *auditlog.Logger
	Log        *zap.Logger
}

func NewHandler(sessionMgr *auth.SessionManager, audit *auditlog.Logger, logger *zap.Logger) *Handler {
	return &Handler{SessionMgr: sessionMgr, AuditLog: audit, Log: logger}
}

type registerRequest struct {
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	Password        string   `json:"password"`
	ConfirmPassword string   `json:"confirm_password"`
	Industry        string   `json:"industry"`
	Size            string   `json:"size"`
	Logo            string   `json:"logo"`
	Description     string   `json:"description"`
	Documents       []string `json:"documents"`
}

// HandleRegister handles POST /api/register. The new company is not
// signed in; it waits for the office to review its registration.
func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := respond.Decode(w, r, &req); err != nil {
		respond.Error(w, h.Log, err)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Write(), h.Log, "registration audit")
	defer cancel()

	if req.ConfirmPassword != "" && req.ConfirmPassword != req.Password {
		err := outcome.Fail(outcome.ErrInvalid, "Passwords do not match")
		h.AuditLog.CompanyRegistrationFailed(ctx, r, req.Email, outcome.Message(err))
		respond.Error(w, h.Log, err)
		return
	}

	company, err := h.SessionMgr.Session(w, r).RegisterCompany(identity.Registration{
		Name:        req.Name,
		Email:       req.Email,
		Password:    req.Password,
		Industry:    req.Industry,
		Size:        req.Size,
		Logo:        req.Logo,
		Description: req.Description,
		Documents:   req.Documents,
	})
	if err != nil {
		h.AuditLog.CompanyRegistrationFailed(ctx, r, req.Email, outcome.Message(err))
		respond.Error(w, h.Log, err)
		return
	}

	h.AuditLog.CompanyRegistered(ctx, r, company)
	respond.Created(w, "Registration submitted. Waiting for approval.", respond.Fields{"company": company})
}
