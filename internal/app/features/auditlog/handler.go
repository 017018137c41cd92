// internal/app/features/auditlog/handler.go
package auditlog

import (
	"net/http"
	"strings"
	"time"

	"github.com/dalemusser/internhub/internal/app/store/audit"
	"github.com/dalemusser/internhub/internal/app/system/dates"
	"github.com/dalemusser/internhub/internal/app/system/paging"
	"github.com/dalemusser/internhub/internal/app/system/respond"
	"github.com/dalemusser/internhub/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/pantry/query"
	"go.uber.org/zap"
)

// Handler lets the office read the audit trail. Store is nil when MongoDB
// is not configured.
type Handler struct {
	Store *audit.Store
	Log   *zap.Logger
}

func NewHandler(store *audit.Store, logger *zap.Logger) *Handler {
	return &Handler{Store: store, Log: logger}
}

// ServeList handles GET /api/audit.
//
// Filters: category, event_type, actor_id, subject_id, start_date and
// end_date (inclusive calendar days), plus start/limit for paging.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	if h.Store == nil {
		respond.Fail(w, http.StatusServiceUnavailable, "Audit trail is not stored; configure mongo_uri to enable it")
		return
	}

	start := paging.ParseStart(r)
	limit := paging.ParseLimit(r)
	filter := audit.QueryFilter{
		Category:  strings.TrimSpace(query.Get(r, "category")),
		EventType: strings.TrimSpace(query.Get(r, "event_type")),
		ActorID:   strings.TrimSpace(query.Get(r, "actor_id")),
		SubjectID: strings.TrimSpace(query.Get(r, "subject_id")),
		Limit:     int64(limit),
		Offset:    int64(start - 1),
	}

	if s := query.Get(r, "start_date"); s != "" {
		t, err := dates.Parse(s)
		if err != nil {
			respond.Fail(w, http.StatusUnprocessableEntity, "start_date is not a valid date")
			return
		}
		filter.StartTime = &t
	}
	if s := query.Get(r, "end_date"); s != "" {
		t, err := dates.Parse(s)
		if err != nil {
			respond.Fail(w, http.StatusUnprocessableEntity, "end_date is not a valid date")
			return
		}
		endOfDay := t.Add(24*time.Hour - time.Second)
		filter.EndTime = &endOfDay
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Write(), h.Log, "audit log list")
	defer cancel()

	events, err := h.Store.Query(ctx, filter)
	if err != nil {
		h.Log.Error("failed to query audit events", zap.Error(err))
		respond.Error(w, h.Log, err)
		return
	}
	if events == nil {
		events = []audit.Event{}
	}
	total, err := h.Store.CountByFilter(ctx, filter)
	if err != nil {
		h.Log.Error("failed to count audit events", zap.Error(err))
		respond.Error(w, h.Log, err)
		return
	}

	rng := paging.ComputeRange(start, len(events), int(total), limit)
	respond.OK(w, "", respond.Fields{"events": events, "count": rng.Total, "page": rng})
}
