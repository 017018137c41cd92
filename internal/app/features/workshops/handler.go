// internal/app/features/workshops/handler.go
package workshops

import (
	"net/http"

	"github.com/dalemusser/internhub/internal/app/store/ledger"
	"github.com/dalemusser/internhub/internal/app/store/office"
	"github.com/dalemusser/internhub/internal/app/system/auditlog"
	"github.com/dalemusser/internhub/internal/app/system/auth"
	"github.com/dalemusser/internhub/internal/app/system/dates"
	"github.com/dalemusser/internhub/internal/app/system/respond"
	"github.com/dalemusser/internhub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Ledgers  *ledger.Set
	AuditLog *auditlog.Logger
	Log      *zap.Logger
}

func NewHandler(ledgers *ledger.Set, audit *auditlog.Logger, logger *zap.Logger) *Handler {
	return &Handler{Ledgers: ledgers, AuditLog: audit, Log: logger}
}

// ServeList handles GET /api/workshops.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	list := h.Ledgers.Office.Workshops()
	respond.OK(w, "", respond.Fields{"workshops": list, "count": len(list)})
}

// ServeDetail handles GET /api/workshops/{id}.
func (h *Handler) ServeDetail(w http.ResponseWriter, r *http.Request) {
	ws, ok := h.Ledgers.Office.Workshop(chi.URLParam(r, "id"))
	if !ok {
		respond.Fail(w, http.StatusNotFound, "Workshop not found")
		return
	}
	respond.OK(w, "", respond.Fields{"workshop": ws})
}

type workshopRequest struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Speaker      string `json:"speaker"`
	SpeakerBio   string `json:"speaker_bio"`
	Agenda       string `json:"agenda"`
	StartsAt     string `json:"starts_at"`
	EndsAt       string `json:"ends_at"`
	IsLive       bool   `json:"is_live"`
	RecordingURL string `json:"recording_url"`
}

// HandleCreate handles POST /api/workshops.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	a, _ := auth.CurrentActor(r)

	var req workshopRequest
	if err := respond.Decode(w, r, &req); err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	starts, err := dates.ParseOptional(req.StartsAt)
	if err != nil {
		respond.Fail(w, http.StatusUnprocessableEntity, "Start time is not a valid date")
		return
	}
	ends, err := dates.ParseOptional(req.EndsAt)
	if err != nil {
		respond.Fail(w, http.StatusUnprocessableEntity, "End time is not a valid date")
		return
	}

	ws, err := h.Ledgers.Office.CreateWorkshop(a, office.WorkshopInput{
		Title:        req.Title,
		Description:  req.Description,
		Speaker:      req.Speaker,
		SpeakerBio:   req.SpeakerBio,
		Agenda:       req.Agenda,
		StartsAt:     starts,
		EndsAt:       ends,
		IsLive:       req.IsLive,
		RecordingURL: req.RecordingURL,
	})
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Write(), h.Log, "workshop audit")
	defer cancel()
	h.AuditLog.WorkshopCreated(ctx, r, a, ws)

	respond.Created(w, "Workshop created successfully", respond.Fields{"workshop": ws})
}

// HandleRegister handles POST /api/workshops/{id}/register.
func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	a, _ := auth.CurrentActor(r)

	ws, err := h.Ledgers.Office.RegisterForWorkshop(a, chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	respond.OK(w, "Registered for workshop successfully", respond.Fields{"workshop": ws})
}
