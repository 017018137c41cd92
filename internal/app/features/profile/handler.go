// internal/app/features/profile/handler.go
package profile

import (
	"net/http"

	"github.com/dalemusser/internhub/internal/app/store/ledger"
	"github.com/dalemusser/internhub/internal/app/system/auth"
	"github.com/dalemusser/internhub/internal/app/system/respond"
	"go.uber.org/zap"
)

// Handler serves the signed-in actor's own record.
type Handler struct {
	Ledgers *ledger.Set
	Log     *zap.Logger
}

func NewHandler(ledgers *ledger.Set, logger *zap.Logger) *Handler {
	return &Handler{Ledgers: ledgers, Log: logger}
}

// ServeProfile handles GET /api/me.
//
//	{ "success":true, "user":{…}, "unread_notifications":2 }
//
// The actor is re-read from the identity store so a company sees its
// verified flag flip as soon as the office approves it.
func (h *Handler) ServeProfile(w http.ResponseWriter, r *http.Request) {
	cur, ok := auth.CurrentActor(r)
	if !ok {
		respond.Fail(w, http.StatusUnauthorized, "Please sign in to continue")
		return
	}
	actor, ok := h.Ledgers.Identity.Lookup(cur.ID)
	if !ok {
		respond.Fail(w, http.StatusUnauthorized, "Please sign in to continue")
		return
	}

	respond.OK(w, "", respond.Fields{
		"user":                 actor,
		"unread_notifications": h.Ledgers.Office.UnreadCount(actor),
	})
}
