// internal/app/features/companies/handler.go
package companies

import (
	"net/http"

	"github.com/dalemusser/internhub/internal/app/store/ledger"
	"github.com/dalemusser/internhub/internal/app/system/auditlog"
	"github.com/dalemusser/internhub/internal/app/system/auth"
	"github.com/dalemusser/internhub/internal/app/system/respond"
	"github.com/dalemusser/internhub/internal/app/system/timeouts"
	"github.com/dalemusser/internhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Handler serves the office's review queue of company registrations.
type Handler struct {
	Ledgers  *ledger.Set
	AuditLog *auditlog.Logger
	Log      *zap.Logger
}

func NewHandler(ledgers *ledger.Set, audit *auditlog.Logger, logger *zap.Logger) *Handler {
	return &Handler{Ledgers: ledgers, AuditLog: audit, Log: logger}
}

// ServeList handles GET /api/companies?status=pending|approved|rejected.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	status := models.ReviewStatus(r.URL.Query().Get("status"))
	switch status {
	case "", models.ReviewPending, models.ReviewApproved, models.ReviewRejected:
	default:
		respond.Fail(w, http.StatusUnprocessableEntity, "Status must be pending, approved or rejected")
		return
	}
	apps := h.Ledgers.Office.CompanyApplications(status)
	respond.OK(w, "", respond.Fields{"applications": apps, "count": len(apps)})
}

// ServeDetail handles GET /api/companies/{id}.
func (h *Handler) ServeDetail(w http.ResponseWriter, r *http.Request) {
	ca, ok := h.Ledgers.Office.CompanyApplication(chi.URLParam(r, "id"))
	if !ok {
		respond.Fail(w, http.StatusNotFound, "Company application not found")
		return
	}
	respond.OK(w, "", respond.Fields{"application": ca})
}

type reviewRequest struct {
	Approved bool `json:"approved"`
}

// HandleReview handles POST /api/companies/{id}/review.
func (h *Handler) HandleReview(w http.ResponseWriter, r *http.Request) {
	a, _ := auth.CurrentActor(r)

	var req reviewRequest
	if err := respond.Decode(w, r, &req); err != nil {
		respond.Error(w, h.Log, err)
		return
	}

	ca, err := h.Ledgers.Office.ReviewCompanyApplication(a, chi.URLParam(r, "id"), req.Approved)
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Write(), h.Log, "company review audit")
	defer cancel()
	h.AuditLog.CompanyReviewed(ctx, r, a, ca)

	verdict := "rejected"
	if req.Approved {
		verdict = "approved"
	}
	respond.OK(w, "Company application "+verdict+" successfully", respond.Fields{"application": ca})
}
