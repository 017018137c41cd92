// internal/app/features/cycle/routes.go
package cycle

import (
	"github.com/dalemusser/internhub/internal/app/system/auth"
	"github.com/dalemusser/internhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

// Routes mounts under /api/cycle. Anyone signed in can read the cycle;
// only the office moves it.
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()
	r.Use(sm.RequireSignedIn)
	r.Get("/", h.ServeCycle)
	r.With(sm.RequireRole(models.RoleOffice)).Put("/", h.HandleSetDates)
	return r
}
