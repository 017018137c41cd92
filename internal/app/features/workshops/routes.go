// internal/app/features/workshops/routes.go
package workshops

import (
	"github.com/dalemusser/internhub/internal/app/system/auth"
	"github.com/dalemusser/internhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()
	r.Use(sm.RequireSignedIn)
	r.Get("/", h.ServeList)
	r.Get("/{id}", h.ServeDetail)
	r.With(sm.RequireRole(models.RoleOffice)).Post("/", h.HandleCreate)
	r.With(sm.RequireRole(models.RoleProStudent)).Post("/{id}/register", h.HandleRegister)
	return r
}
