// internal/app/features/appointments/handler.go
package appointments

import (
	"net/http"

	"github.com/dalemusser/internhub/internal/app/store/ledger"
	"github.com/dalemusser/internhub/internal/app/store/office"
	"github.com/dalemusser/internhub/internal/app/system/auth"
	"github.com/dalemusser/internhub/internal/app/system/dates"
	"github.com/dalemusser/internhub/internal/app/system/respond"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Handler serves video-call appointments between PRO students and the
// office.
type Handler struct {
	Ledgers *ledger.Set
	Log     *zap.Logger
}

func NewHandler(ledgers *ledger.Set, logger *zap.Logger) *Handler {
	return &Handler{Ledgers: ledgers, Log: logger}
}

// ServeList handles GET /api/appointments: what the caller requested plus
// what it has been asked to answer.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	a, ok := auth.CurrentActor(r)
	if !ok {
		respond.Fail(w, http.StatusUnauthorized, "Please sign in to continue")
		return
	}
	list := h.Ledgers.Office.AppointmentsFor(*a)
	respond.OK(w, "", respond.Fields{"appointments": list, "count": len(list)})
}

type requestBody struct {
	RecipientID string `json:"recipient_id"`
	ScheduledAt string `json:"scheduled_at"`
	Purpose     string `json:"purpose"`
	Notes       string `json:"notes"`
}

// HandleRequest handles POST /api/appointments.
func (h *Handler) HandleRequest(w http.ResponseWriter, r *http.Request) {
	a, _ := auth.CurrentActor(r)

	var req requestBody
	if err := respond.Decode(w, r, &req); err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	at, err := dates.ParseOptional(req.ScheduledAt)
	if err != nil {
		respond.Fail(w, http.StatusUnprocessableEntity, "Date and time are not valid")
		return
	}

	apt, err := h.Ledgers.Office.RequestAppointment(a, office.AppointmentInput{
		RecipientID: req.RecipientID,
		ScheduledAt: at,
		Purpose:     req.Purpose,
		Notes:       req.Notes,
	})
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	respond.Created(w, "Appointment request sent successfully", respond.Fields{"appointment": apt})
}

type respondBody struct {
	Approved bool `json:"approved"`
}

// HandleRespond handles POST /api/appointments/{id}/respond.
func (h *Handler) HandleRespond(w http.ResponseWriter, r *http.Request) {
	a, _ := auth.CurrentActor(r)

	var req respondBody
	if err := respond.Decode(w, r, &req); err != nil {
		respond.Error(w, h.Log, err)
		return
	}

	apt, err := h.Ledgers.Office.RespondToAppointment(a, chi.URLParam(r, "id"), req.Approved)
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}

	verdict := "declined"
	if req.Approved {
		verdict = "approved"
	}
	respond.OK(w, "Appointment "+verdict+" successfully", respond.Fields{"appointment": apt})
}
