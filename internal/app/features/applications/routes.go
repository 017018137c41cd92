// internal/app/features/applications/routes.go
package applications

import (
	"github.com/dalemusser/internhub/internal/app/system/auth"
	"github.com/dalemusser/internhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()
	r.Use(sm.RequireRole(models.RoleStudent, models.RoleProStudent, models.RoleCompany))
	r.Get("/", h.ServeList)
	r.Get("/{id}", h.ServeDetail)
	r.With(sm.RequireRole(models.RoleCompany)).Patch("/{id}/status", h.HandleStatus)
	return r
}
