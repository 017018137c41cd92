// internal/app/features/reports/handler.go
package reports

import (
	"net/http"

	"github.com/dalemusser/internhub/internal/app/store/ledger"
	"github.com/dalemusser/internhub/internal/app/store/office"
	"github.com/dalemusser/internhub/internal/app/system/auditlog"
	"github.com/dalemusser/internhub/internal/app/system/auth"
	"github.com/dalemusser/internhub/internal/app/system/authz"
	"github.com/dalemusser/internhub/internal/app/system/paging"
	"github.com/dalemusser/internhub/internal/app/system/respond"
	"github.com/dalemusser/internhub/internal/app/system/timeouts"
	"github.com/dalemusser/internhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Handler serves internship reports: students file them, faculty and the
// office review them.
type Handler struct {
	Ledgers  *ledger.Set
	AuditLog *auditlog.Logger
	Log      *zap.Logger
}

func NewHandler(ledgers *ledger.Set, audit *auditlog.Logger, logger *zap.Logger) *Handler {
	return &Handler{Ledgers: ledgers, AuditLog: audit, Log: logger}
}

// ServeList handles GET /api/reports. Reviewers see every report,
// students only their own. An optional ?status= narrows the list.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	a, ok := auth.CurrentActor(r)
	if !ok {
		respond.Fail(w, http.StatusUnauthorized, "Please sign in to continue")
		return
	}

	var list []models.InternshipReport
	if authz.Can(a, authz.ReviewReports) {
		list = h.Ledgers.Office.Reports()
	} else {
		list = h.Ledgers.Office.ReportsByStudent(a.ID)
	}

	if status := models.ReportStatus(r.URL.Query().Get("status")); status != "" {
		if status != models.ReportPending && !status.Reviewable() {
			respond.Fail(w, http.StatusUnprocessableEntity, "Status must be pending, accepted, rejected or flagged")
			return
		}
		kept := list[:0]
		for _, rep := range list {
			if rep.Status == status {
				kept = append(kept, rep)
			}
		}
		list = kept
	}
	page, rng := paging.FromRequest(r, list)
	respond.OK(w, "", respond.Fields{"reports": page, "count": rng.Total, "page": rng})
}

// ServeDetail handles GET /api/reports/{id}.
func (h *Handler) ServeDetail(w http.ResponseWriter, r *http.Request) {
	a, _ := auth.CurrentActor(r)

	rep, ok := h.Ledgers.Office.Report(chi.URLParam(r, "id"))
	if !ok || a == nil || (!authz.Can(a, authz.ReviewReports) && rep.StudentID != a.ID) {
		respond.Fail(w, http.StatusNotFound, "Report not found")
		return
	}
	respond.OK(w, "", respond.Fields{"report": rep})
}

type submitRequest struct {
	CompanyName string   `json:"company_name"`
	Title       string   `json:"title"`
	Content     string   `json:"content"`
	Courses     []string `json:"courses"`
}

// HandleSubmit handles POST /api/reports.
func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	a, _ := auth.CurrentActor(r)

	var req submitRequest
	if err := respond.Decode(w, r, &req); err != nil {
		respond.Error(w, h.Log, err)
		return
	}

	rep, err := h.Ledgers.Office.SubmitReport(a, office.ReportInput{
		CompanyName: req.CompanyName,
		Title:       req.Title,
		Content:     req.Content,
		Courses:     req.Courses,
	})
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	respond.Created(w, "Internship report submitted successfully", respond.Fields{"report": rep})
}

type reviewRequest struct {
	Status  models.ReportStatus `json:"status"`
	Comment string              `json:"comment"`
}

// HandleReview handles POST /api/reports/{id}/review.
func (h *Handler) HandleReview(w http.ResponseWriter, r *http.Request) {
	a, _ := auth.CurrentActor(r)

	var req reviewRequest
	if err := respond.Decode(w, r, &req); err != nil {
		respond.Error(w, h.Log, err)
		return
	}

	rep, err := h.Ledgers.Office.ReviewReport(a, chi.URLParam(r, "id"), req.Status, req.Comment)
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Write(), h.Log, "report review audit")
	defer cancel()
	h.AuditLog.ReportReviewed(ctx, r, a, rep)

	respond.OK(w, "Report "+string(rep.Status)+" successfully", respond.Fields{"report": rep})
}
