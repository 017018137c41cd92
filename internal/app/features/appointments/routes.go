// internal/app/features/appointments/routes.go
package appointments

import (
	"github.com/dalemusser/internhub/internal/app/system/auth"
	"github.com/dalemusser/internhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()
	r.Use(sm.RequireRole(models.RoleProStudent, models.RoleOffice))
	r.Get("/", h.ServeList)
	r.Post("/", h.HandleRequest)
	r.Post("/{id}/respond", h.HandleRespond)
	return r
}
