// internal/app/features/auditlog/routes.go
package auditlog

import (
	"github.com/dalemusser/internhub/internal/app/system/auth"
	"github.com/dalemusser/internhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

// Routes mounts under /api/audit. Only the office reads the trail.
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()
	r.Use(sm.RequireRole(models.RoleOffice))
	r.Get("/", h.ServeList)
	return r
}
