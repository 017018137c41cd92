// internal/app/features/internships/list.go
package internships

import (
	"net/http"
	"strconv"

	"github.com/dalemusser/internhub/internal/app/store/opportunities"
	"github.com/dalemusser/internhub/internal/app/system/auth"
	"github.com/dalemusser/internhub/internal/app/system/authz"
	"github.com/dalemusser/internhub/internal/app/system/paging"
	"github.com/dalemusser/internhub/internal/app/system/respond"
	"github.com/dalemusser/internhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

// ServeList handles GET /api/internships.
//
// Query parameters, all optional: q (free text), industry, duration,
// paid (true|false), status (active|inactive), and start/limit for
// paging.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := opportunities.Filter{
		Query:    q.Get("q"),
		Industry: q.Get("industry"),
		Duration: q.Get("duration"),
		Status:   models.PostingStatus(q.Get("status")),
	}
	if f.Status != "" && !f.Status.Valid() {
		respond.Fail(w, http.StatusUnprocessableEntity, "Status must be active or inactive")
		return
	}
	if v := q.Get("paid"); v != "" {
		paid, err := strconv.ParseBool(v)
		if err != nil {
			respond.Fail(w, http.StatusUnprocessableEntity, "paid must be true or false")
			return
		}
		f.Paid = &paid
	}

	postings := h.Ledgers.Opportunities.SearchPostings(f)
	page, rng := paging.FromRequest(r, postings)
	respond.OK(w, "", respond.Fields{"internships": page, "count": rng.Total, "page": rng})
}

// ServeMine handles GET /api/internships/mine: the signed-in company's
// postings, active or not.
func (h *Handler) ServeMine(w http.ResponseWriter, r *http.Request) {
	a, ok := auth.CurrentActor(r)
	if !ok {
		respond.Fail(w, http.StatusUnauthorized, "Please sign in to continue")
		return
	}
	postings := h.Ledgers.Opportunities.PostingsByCompany(a.ID)
	respond.OK(w, "", respond.Fields{"internships": postings, "count": len(postings)})
}

// ServeDetail handles GET /api/internships/{id}.
func (h *Handler) ServeDetail(w http.ResponseWriter, r *http.Request) {
	p, ok := h.Ledgers.Opportunities.Posting(chi.URLParam(r, "id"))
	if !ok {
		respond.Fail(w, http.StatusNotFound, "Internship not found")
		return
	}
	respond.OK(w, "", respond.Fields{"internship": p})
}

// ServeApplicants handles GET /api/internships/{id}/applications. Only the
// owning company sees a posting's applicants; anyone else gets the same
// 404 as for a missing posting.
func (h *Handler) ServeApplicants(w http.ResponseWriter, r *http.Request) {
	a, _ := auth.CurrentActor(r)
	id := chi.URLParam(r, "id")

	p, ok := h.Ledgers.Opportunities.Posting(id)
	if !ok || !authz.Owns(a, p) {
		respond.Fail(w, http.StatusNotFound, "Internship not found or you do not have permission to view it")
		return
	}
	apps := h.Ledgers.Opportunities.ApplicationsByPosting(id)
	respond.OK(w, "", respond.Fields{"applications": apps, "count": len(apps)})
}
