// internal/app/features/reports/routes.go
package reports

import (
	"github.com/dalemusser/internhub/internal/app/system/auth"
	"github.com/dalemusser/internhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()
	r.Use(sm.RequireRole(models.RoleStudent, models.RoleProStudent, models.RoleFaculty, models.RoleOffice))
	r.Get("/", h.ServeList)
	r.Get("/{id}", h.ServeDetail)
	r.With(sm.RequireRole(models.RoleStudent, models.RoleProStudent)).Post("/", h.HandleSubmit)
	r.With(sm.RequireRole(models.RoleFaculty, models.RoleOffice)).Post("/{id}/review", h.HandleReview)
	return r
}
