// internal/app/features/internships/routes.go
package internships

import (
	"github.com/dalemusser/internhub/internal/app/system/auth"
	"github.com/dalemusser/internhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

// Routes mounts under /api/internships. Browsing is public; writes need a
// signed-in actor of the right role. The store re-checks every role.
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeList)

	r.Group(func(r chi.Router) {
		r.Use(sm.RequireRole(models.RoleCompany))
		r.Get("/mine", h.ServeMine)
		r.Post("/", h.HandleCreate)
		r.Patch("/{id}", h.HandleUpdate)
		r.Delete("/{id}", h.HandleDelete)
		r.Get("/{id}/applications", h.ServeApplicants)
	})

	r.With(sm.RequireRole(models.RoleStudent, models.RoleProStudent)).
		Post("/{id}/apply", h.HandleApply)

	r.Get("/{id}", h.ServeDetail)
	return r
}
