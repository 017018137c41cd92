// internal/app/features/notifications/handler.go
package notifications

import (
	"net/http"

	"github.com/dalemusser/internhub/internal/app/store/ledger"
	"github.com/dalemusser/internhub/internal/app/system/auth"
	"github.com/dalemusser/internhub/internal/app/system/respond"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Handler serves the signed-in actor's inbox.
type Handler struct {
	Ledgers *ledger.Set
	Log     *zap.Logger
}

func NewHandler(ledgers *ledger.Set, logger *zap.Logger) *Handler {
	return &Handler{Ledgers: ledgers, Log: logger}
}

// ServeInbox handles GET /api/notifications.
func (h *Handler) ServeInbox(w http.ResponseWriter, r *http.Request) {
	a, ok := auth.CurrentActor(r)
	if !ok {
		respond.Fail(w, http.StatusUnauthorized, "Please sign in to continue")
		return
	}
	inbox := h.Ledgers.Office.Inbox(*a)
	unread := 0
	for _, n := range inbox {
		if !n.IsRead {
			unread++
		}
	}
	respond.OK(w, "", respond.Fields{"notifications": inbox, "unread": unread})
}

// ServeUnread handles GET /api/notifications/unread.
func (h *Handler) ServeUnread(w http.ResponseWriter, r *http.Request) {
	a, ok := auth.CurrentActor(r)
	if !ok {
		respond.Fail(w, http.StatusUnauthorized, "Please sign in to continue")
		return
	}
	respond.OK(w, "", respond.Fields{"unread": h.Ledgers.Office.UnreadCount(*a)})
}

// HandleMarkRead handles POST /api/notifications/{id}/read. Only a
// notification in the caller's inbox can be marked.
func (h *Handler) HandleMarkRead(w http.ResponseWriter, r *http.Request) {
	a, ok := auth.CurrentActor(r)
	if !ok {
		respond.Fail(w, http.StatusUnauthorized, "Please sign in to continue")
		return
	}
	id := chi.URLParam(r, "id")

	mine := false
	for _, n := range h.Ledgers.Office.Inbox(*a) {
		if n.ID == id {
			mine = true
			break
		}
	}
	if !mine || !h.Ledgers.Office.MarkNotificationRead(id) {
		respond.Fail(w, http.StatusNotFound, "Notification not found")
		return
	}
	respond.OK(w, "", respond.Fields{"unread": h.Ledgers.Office.UnreadCount(*a)})
}

func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()
	r.Use(sm.RequireSignedIn)
	r.Get("/", h.ServeInbox)
	r.Get("/unread", h.ServeUnread)
	r.Post("/{id}/read", h.HandleMarkRead)
	return r
}
