// internal/app/features/assessments/handler.go
package assessments

import (
	"fmt"
	"net/http"

	"github.com/dalemusser/internhub/internal/app/store/ledger"
	"github.com/dalemusser/internhub/internal/app/system/auth"
	"github.com/dalemusser/internhub/internal/app/system/respond"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Ledgers *ledger.Set
	Log     *zap.Logger
}

func NewHandler(ledgers *ledger.Set, logger *zap.Logger) *Handler {
	return &Handler{Ledgers: ledgers, Log: logger}
}

// ServeList handles GET /api/assessments.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	list := h.Ledgers.Office.Assessments()
	respond.OK(w, "", respond.Fields{"assessments": list, "count": len(list)})
}

// ServeResults handles GET /api/assessments/results: the caller's attempts.
func (h *Handler) ServeResults(w http.ResponseWriter, r *http.Request) {
	a, ok := auth.CurrentActor(r)
	if !ok {
		respond.Fail(w, http.StatusUnauthorized, "Please sign in to continue")
		return
	}
	results := h.Ledgers.Office.AssessmentResults(a.ID)
	respond.OK(w, "", respond.Fields{"results": results, "count": len(results)})
}

// HandleTake handles POST /api/assessments/{id}/take.
func (h *Handler) HandleTake(w http.ResponseWriter, r *http.Request) {
	a, _ := auth.CurrentActor(r)

	res, err := h.Ledgers.Office.TakeAssessment(a, chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	respond.OK(w, fmt.Sprintf("Assessment completed! Your score: %d%%", res.Score),
		respond.Fields{"result": res})
}
