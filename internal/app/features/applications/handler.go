// internal/app/features/applications/handler.go
package applications

import (
	"net/http"

	"github.com/dalemusser/internhub/internal/app/store/ledger"
	"github.com/dalemusser/internhub/internal/app/system/auditlog"
	"github.com/dalemusser/internhub/internal/app/system/auth"
	"github.com/dalemusser/internhub/internal/app/system/authz"
	"github.com/dalemusser/internhub/internal/app/system/outcome"
	"github.com/dalemusser/internhub/internal/app/system/respond"
	"github.com/dalemusser/internhub/internal/app/system/timeouts"
	"github.com/dalemusser/internhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Handler serves applications from both sides: the student who applied
// and the company that owns the posting.
type Handler struct {
	Ledgers  *ledger.Set
	AuditLog *auditlog.Logger
	Log      *zap.Logger
}

func NewHandler(ledgers *ledger.Set, audit *auditlog.Logger, logger *zap.Logger) *Handler {
	return &Handler{Ledgers: ledgers, AuditLog: audit, Log: logger}
}

// visible reports whether a may see app.
func (h *Handler) visible(a *models.Actor, app models.Application) bool {
	if a == nil {
		return false
	}
	if a.Role.IsStudent() {
		return app.StudentID == a.ID
	}
	p, ok := h.Ledgers.Opportunities.Posting(app.PostingID)
	return ok && authz.Owns(a, p)
}

// ServeList handles GET /api/applications. Students get their own
// applications; a company gets every application to its postings.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	a, ok := auth.CurrentActor(r)
	if !ok {
		respond.Fail(w, http.StatusUnauthorized, "Please sign in to continue")
		return
	}

	apps := make([]models.Application, 0)
	switch {
	case a.Role.IsStudent():
		apps = h.Ledgers.Opportunities.ApplicationsByStudent(a.ID)
	case a.Role == models.RoleCompany:
		for _, p := range h.Ledgers.Opportunities.PostingsByCompany(a.ID) {
			apps = append(apps, h.Ledgers.Opportunities.ApplicationsByPosting(p.ID)...)
		}
	}
	respond.OK(w, "", respond.Fields{"applications": apps, "count": len(apps)})
}

// ServeDetail handles GET /api/applications/{id}.
func (h *Handler) ServeDetail(w http.ResponseWriter, r *http.Request) {
	a, _ := auth.CurrentActor(r)

	app, ok := h.Ledgers.Opportunities.Application(chi.URLParam(r, "id"))
	if !ok || !h.visible(a, app) {
		respond.Fail(w, http.StatusNotFound, "Application not found")
		return
	}
	respond.OK(w, "", respond.Fields{"application": app})
}

type statusRequest struct {
	Status models.ApplicationStatus `json:"status"`
}

// HandleStatus handles PATCH /api/applications/{id}/status.
//
// The ledger silently ignores applications the company does not own; the
// API reports that as 404 so a client can tell nothing happened.
func (h *Handler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	a, _ := auth.CurrentActor(r)
	id := chi.URLParam(r, "id")

	var req statusRequest
	if err := respond.Decode(w, r, &req); err != nil {
		respond.Error(w, h.Log, err)
		return
	}

	changed, err := h.Ledgers.Opportunities.UpdateApplicationStatus(a, id, req.Status)
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	if !changed {
		respond.Error(w, h.Log, outcome.Fail(outcome.ErrNotFoundOrForbidden,
			"Application not found or you do not have permission to update it"))
		return
	}

	app, _ := h.Ledgers.Opportunities.Application(id)

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Write(), h.Log, "application status audit")
	defer cancel()
	h.AuditLog.ApplicationStatusChanged(ctx, r, a, app)

	respond.OK(w, "Application marked as "+string(req.Status), respond.Fields{"application": app})
}
