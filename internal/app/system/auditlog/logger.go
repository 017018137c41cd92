// internal/app/system/auditlog/logger.go
package auditlog

import (
	"context"
	"net/http"

	"github.com/dalemusser/internhub/internal/app/store/audit"
	"github.com/dalemusser/internhub/internal/app/system/ratelimit"
	"github.com/dalemusser/internhub/internal/domain/models"
	"go.uber.org/zap"
)

// Config holds audit logging configuration. Each setting is one of
// "all" (MongoDB + zap), "db" (MongoDB only), "log" (zap only) or "off".
type Config struct {
	// Auth covers login, logout and company registration.
	Auth string
	// Admin covers office and company actions on the ledgers.
	Admin string
}

// Logger records audit events to structured logs and, when a store is
// configured, to MongoDB.
type Logger struct {
	store  *audit.Store
	zapLog *zap.Logger
	config Config
}

// New creates a new audit Logger. store may be nil when MongoDB is not
// configured; "db" destinations are then skipped.
func New(store *audit.Store, zapLog *zap.Logger, config Config) *Logger {
	return &Logger{
		store:  store,
		zapLog: zapLog,
		config: config,
	}
}

func (l *Logger) logToZap(event audit.Event) {
	fields := []zap.Field{
		zap.Bool("audit", true),
		zap.String("category", event.Category),
		zap.String("event_type", event.EventType),
		zap.Bool("success", event.Success),
		zap.String("ip", event.IP),
	}
	if event.SubjectID != "" {
		fields = append(fields, zap.String("subject_id", event.SubjectID))
	}
	if event.ActorID != "" {
		fields = append(fields, zap.String("actor_id", event.ActorID))
	}
	if event.FailureReason != "" {
		fields = append(fields, zap.String("failure_reason", event.FailureReason))
	}
	for k, v := range event.Details {
		fields = append(fields, zap.String("detail_"+k, v))
	}

	if event.Success {
		l.zapLog.Info("audit event", fields...)
	} else {
		l.zapLog.Warn("audit event", fields...)
	}
}

// setting returns the destination for an event category.
func (l *Logger) setting(category string) string {
	switch category {
	case audit.CategoryAuth:
		return l.config.Auth
	case audit.CategoryAdmin:
		return l.config.Admin
	default:
		return "all"
	}
}

// Log records an audit event based on configuration.
// A nil Logger is a no-op so handlers can run without auditing in tests.
func (l *Logger) Log(ctx context.Context, event audit.Event) {
	if l == nil {
		return
	}

	setting := l.setting(event.Category)
	if setting == "off" {
		return
	}

	if setting == "all" || setting == "log" {
		l.logToZap(event)
	}

	if (setting == "all" || setting == "db") && l.store != nil {
		if err := l.store.Log(ctx, event); err != nil {
			l.zapLog.Error("failed to store audit event",
				zap.Error(err),
				zap.String("event_type", event.EventType),
			)
		}
	}
}

func requestEvent(r *http.Request, category, eventType string) audit.Event {
	return audit.Event{
		Category:  category,
		EventType: eventType,
		IP:        ratelimit.ClientIP(r),
		UserAgent: r.UserAgent(),
		Success:   true,
	}
}

func adminEvent(r *http.Request, eventType string, actor *models.Actor) audit.Event {
	e := requestEvent(r, audit.CategoryAdmin, eventType)
	if actor != nil {
		e.ActorID = actor.ID
	}
	return e
}

// --- Authentication Events ---

// LoginSuccess logs a successful login.
func (l *Logger) LoginSuccess(ctx context.Context, r *http.Request, a models.Actor) {
	e := requestEvent(r, audit.CategoryAuth, audit.EventLoginSuccess)
	e.SubjectID = a.ID
	e.Details = map[string]string{"email": a.Email, "role": string(a.Role)}
	l.Log(ctx, e)
}

// LoginFailed logs a rejected email/password pair.
func (l *Logger) LoginFailed(ctx context.Context, r *http.Request, email string) {
	e := requestEvent(r, audit.CategoryAuth, audit.EventLoginFailed)
	e.Success = false
	e.FailureReason = "invalid credentials"
	e.Details = map[string]string{"email": email}
	l.Log(ctx, e)
}

// LoginRateLimited logs an attempt turned away by the login limiter.
func (l *Logger) LoginRateLimited(ctx context.Context, r *http.Request, email string) {
	e := requestEvent(r, audit.CategoryAuth, audit.EventLoginFailedRateLimit)
	e.Success = false
	e.FailureReason = "rate limited"
	e.Details = map[string]string{"email": email}
	l.Log(ctx, e)
}

// Logout logs a logout. actorID is empty when nobody was signed in.
func (l *Logger) Logout(ctx context.Context, r *http.Request, actorID string) {
	e := requestEvent(r, audit.CategoryAuth, audit.EventLogout)
	e.SubjectID = actorID
	l.Log(ctx, e)
}

// CompanyRegistered logs a new company sign-up.
func (l *Logger) CompanyRegistered(ctx context.Context, r *http.Request, company models.Actor) {
	e := requestEvent(r, audit.CategoryAuth, audit.EventCompanyRegistered)
	e.SubjectID = company.ID
	e.Details = map[string]string{"email": company.Email, "name": company.Name}
	l.Log(ctx, e)
}

// CompanyRegistrationFailed logs a rejected sign-up.
func (l *Logger) CompanyRegistrationFailed(ctx context.Context, r *http.Request, email, reason string) {
	e := requestEvent(r, audit.CategoryAuth, audit.EventCompanyRegistrationError)
	e.Success = false
	e.FailureReason = reason
	e.Details = map[string]string{"email": email}
	l.Log(ctx, e)
}

// --- Admin Events ---

// CompanyReviewed logs an office decision on a company registration.
func (l *Logger) CompanyReviewed(ctx context.Context, r *http.Request, actor *models.Actor, ca models.CompanyApplication) {
	eventType := audit.EventCompanyRejected
	if ca.Status == models.ReviewApproved {
		eventType = audit.EventCompanyApproved
	}
	e := adminEvent(r, eventType, actor)
	e.SubjectID = ca.CompanyID
	e.Details = map[string]string{"application_id": ca.ID, "email": ca.Email}
	l.Log(ctx, e)
}

// CycleChanged logs new internship cycle dates.
func (l *Logger) CycleChanged(ctx context.Context, r *http.Request, actor *models.Actor, c models.Cycle) {
	e := adminEvent(r, audit.EventCycleChanged, actor)
	e.Details = map[string]string{
		"start": c.Start.Format("2006-01-02"),
		"end":   c.End.Format("2006-01-02"),
	}
	l.Log(ctx, e)
}

// WorkshopCreated logs a new workshop.
func (l *Logger) WorkshopCreated(ctx context.Context, r *http.Request, actor *models.Actor, w models.Workshop) {
	e := adminEvent(r, audit.EventWorkshopCreated, actor)
	e.Details = map[string]string{"workshop_id": w.ID, "title": w.Title}
	l.Log(ctx, e)
}

// ReportReviewed logs a report status change.
func (l *Logger) ReportReviewed(ctx context.Context, r *http.Request, actor *models.Actor, rep models.InternshipReport) {
	e := adminEvent(r, audit.EventReportReviewed, actor)
	e.SubjectID = rep.StudentID
	e.Details = map[string]string{"report_id": rep.ID, "status": string(rep.Status)}
	l.Log(ctx, e)
}

// PostingDeleted logs a company removing one of its postings.
func (l *Logger) PostingDeleted(ctx context.Context, r *http.Request, actor *models.Actor, postingID string) {
	e := adminEvent(r, audit.EventPostingDeleted, actor)
	e.Details = map[string]string{"posting_id": postingID}
	l.Log(ctx, e)
}

// ApplicationStatusChanged logs a company moving an application along
// its pipeline.
func (l *Logger) ApplicationStatusChanged(ctx context.Context, r *http.Request, actor *models.Actor, app models.Application) {
	e := adminEvent(r, audit.EventApplicationMoved, actor)
	e.SubjectID = app.StudentID
	e.Details = map[string]string{"application_id": app.ID, "status": string(app.Status)}
	l.Log(ctx, e)
}
