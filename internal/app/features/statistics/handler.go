// internal/app/features/statistics/handler.go
package statistics

import (
	"net/http"

	"github.com/dalemusser/internhub/internal/app/store/ledger"
	"github.com/dalemusser/internhub/internal/app/system/auth"
	"github.com/dalemusser/internhub/internal/app/system/respond"
	"github.com/dalemusser/internhub/internal/domain/models"
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

// ServeStatistics handles GET /api/statistics.
func (h *Handler) ServeStatistics(w http.ResponseWriter, r *http.Request) {
	a, _ := auth.CurrentActor(r)

	stats := h.Ledgers.Office.SystemStatistics(a)
	if stats == nil {
		respond.Fail(w, http.StatusForbidden, "You do not have access to this page")
		return
	}
	respond.OK(w, "", respond.Fields{"statistics": stats})
}

func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()
	r.Use(sm.RequireRole(models.RoleOffice, models.RoleFaculty))
	r.Get("/", h.ServeStatistics)
	return r
}
