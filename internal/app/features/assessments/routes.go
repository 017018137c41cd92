// internal/app/features/assessments/routes.go
package assessments

import (
	"github.com/dalemusser/internhub/internal/app/system/auth"
	"github.com/dalemusser/internhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

// Routes mounts under /api/assessments. Assessments are a PRO feature.
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()
	r.Use(sm.RequireRole(models.RoleProStudent))
	r.Get("/", h.ServeList)
	r.Get("/results", h.ServeResults)
	r.Post("/{id}/take", h.HandleTake)
	return r
}
