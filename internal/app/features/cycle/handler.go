// internal/app/features/cycle/handler.go
package cycle

import (
	"net/http"

	"github.com/dalemusser/internhub/internal/app/store/ledger"
	"github.com/dalemusser/internhub/internal/app/system/auditlog"
	"github.com/dalemusser/internhub/internal/app/system/auth"
	"github.com/dalemusser/internhub/internal/app/system/dates"
	"github.com/dalemusser/internhub/internal/app/system/respond"
	"github.com/dalemusser/internhub/internal/app/system/timeouts"
	"go.uber.org/zap"
)

type Handler struct {
	Ledgers  *ledger.Set
	AuditLog *auditlog.Logger
	Log      *zap.Logger
}

func NewHandler(ledgers *ledger.Set, audit *auditlog.Logger, logger *zap.Logger) *Handler {
	return &Handler{Ledgers: ledgers, AuditLog: audit, Log: logger}
}

// ServeCycle handles GET /api/cycle.
func (h *Handler) ServeCycle(w http.ResponseWriter, r *http.Request) {
	set := h.Ledgers.Office.Cycle()
	respond.OK(w, "", respond.Fields{"current": set.Current, "previous": set.Previous})
}

type datesRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// HandleSetDates handles PUT /api/cycle.
func (h *Handler) HandleSetDates(w http.ResponseWriter, r *http.Request) {
	a, _ := auth.CurrentActor(r)

	var req datesRequest
	if err := respond.Decode(w, r, &req); err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	start, err := dates.ParseOptional(req.StartDate)
	if err != nil {
		respond.Fail(w, http.StatusUnprocessableEntity, "Start date is not a valid date")
		return
	}
	end, err := dates.ParseOptional(req.EndDate)
	if err != nil {
		respond.Fail(w, http.StatusUnprocessableEntity, "End date is not a valid date")
		return
	}

	c, err := h.Ledgers.Office.SetCycleDates(a, start, end)
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Write(), h.Log, "cycle audit")
	defer cancel()
	h.AuditLog.CycleChanged(ctx, r, a, c)

	respond.OK(w, "Internship cycle dates updated successfully", respond.Fields{"cycle": c})
}
