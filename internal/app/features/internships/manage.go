// internal/app/features/internships/manage.go
package internships

import (
	"net/http"
	"strings"

	"github.com/dalemusser/internhub/internal/app/store/opportunities"
	"github.com/dalemusser/internhub/internal/app/system/auth"
	"github.com/dalemusser/internhub/internal/app/system/authz"
	"github.com/dalemusser/internhub/internal/app/system/respond"
	"github.com/dalemusser/internhub/internal/app/system/timeouts"
	"github.com/dalemusser/internhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

type postingRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Duration    string   `json:"duration"`
	IsPaid      bool     `json:"is_paid"`
	Salary      string   `json:"salary"`
	Industry    string   `json:"industry"`
	Skills      []string `json:"skills"`
}

// patchRequest mirrors opportunities.PostingPatch: absent fields stay nil.
type patchRequest struct {
	Title       *string               `json:"title"`
	Description *string               `json:"description"`
	Duration    *string               `json:"duration"`
	IsPaid      *bool                 `json:"is_paid"`
	Salary      *string               `json:"salary"`
	Industry    *string               `json:"industry"`
	Skills      []string              `json:"skills"`
	Status      *models.PostingStatus `json:"status"`
}

const salaryRequired = "Salary is required for paid internships"

type applyRequest struct {
	Documents []string `json:"documents"`
}

// HandleCreate handles POST /api/internships.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	a, _ := auth.CurrentActor(r)

	var req postingRequest
	if err := respond.Decode(w, r, &req); err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	if req.IsPaid && strings.TrimSpace(req.Salary) == "" {
		respond.Fail(w, http.StatusUnprocessableEntity, salaryRequired)
		return
	}

	p, err := h.Ledgers.Opportunities.CreatePosting(a, opportunities.PostingInput{
		Title:       req.Title,
		Description: req.Description,
		Duration:    req.Duration,
		IsPaid:      req.IsPaid,
		Salary:      req.Salary,
		Industry:    req.Industry,
		Skills:      req.Skills,
	})
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	respond.Created(w, "Internship posted successfully", respond.Fields{"internship": p})
}

// HandleUpdate handles PATCH /api/internships/{id}.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	a, _ := auth.CurrentActor(r)

	var req patchRequest
	if err := respond.Decode(w, r, &req); err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	id := chi.URLParam(r, "id")

	// The salary rule applies to the posting as it will be after the
	// patch. Postings the caller cannot edit fall through to the ledger's
	// refusal.
	if cur, ok := h.Ledgers.Opportunities.Posting(id); ok && authz.Owns(a, cur) {
		paid, salary := cur.IsPaid, cur.Salary
		if req.IsPaid != nil {
			paid = *req.IsPaid
		}
		if req.Salary != nil {
			salary = *req.Salary
		}
		if paid && strings.TrimSpace(salary) == "" {
			respond.Fail(w, http.StatusUnprocessableEntity, salaryRequired)
			return
		}
	}

	p, err := h.Ledgers.Opportunities.UpdatePosting(a, id, opportunities.PostingPatch{
		Title:       req.Title,
		Description: req.Description,
		Duration:    req.Duration,
		IsPaid:      req.IsPaid,
		Salary:      req.Salary,
		Industry:    req.Industry,
		Skills:      req.Skills,
		Status:      req.Status,
	})
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	respond.OK(w, "Internship updated successfully", respond.Fields{"internship": p})
}

// HandleDelete handles DELETE /api/internships/{id}.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	a, _ := auth.CurrentActor(r)
	id := chi.URLParam(r, "id")

	if err := h.Ledgers.Opportunities.DeletePosting(a, id); err != nil {
		respond.Error(w, h.Log, err)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Write(), h.Log, "posting delete audit")
	defer cancel()
	h.AuditLog.PostingDeleted(ctx, r, a, id)

	respond.OK(w, "Internship deleted successfully", respond.Fields{"id": id})
}

// HandleApply handles POST /api/internships/{id}/apply.
func (h *Handler) HandleApply(w http.ResponseWriter, r *http.Request) {
	a, _ := auth.CurrentActor(r)

	var req applyRequest
	if err := respond.DecodeOptional(w, r, &req); err != nil {
		respond.Error(w, h.Log, err)
		return
	}

	app, err := h.Ledgers.Opportunities.ApplyToPosting(a, chi.URLParam(r, "id"),
		opportunities.ApplicationInput{Documents: req.Documents})
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	respond.Created(w, "Application submitted successfully", respond.Fields{"application": app})
}
