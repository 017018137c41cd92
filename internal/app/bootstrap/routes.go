// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	applicationsfeature "github.com/dalemusser/internhub/internal/app/features/applications"
	appointmentsfeature "github.com/dalemusser/internhub/internal/app/features/appointments"
	assessmentsfeature "github.com/dalemusser/internhub/internal/app/features/assessments"
	auditfeature "github.com/dalemusser/internhub/internal/app/features/auditlog"
	companiesfeature "github.com/dalemusser/internhub/internal/app/features/companies"
	cyclefeature "github.com/dalemusser/internhub/internal/app/features/cycle"
	healthfeature "github.com/dalemusser/internhub/internal/app/features/health"
	internshipsfeature "github.com/dalemusser/internhub/internal/app/features/internships"
	loginfeature "github.com/dalemusser/internhub/internal/app/features/login"
	logoutfeature "github.com/dalemusser/internhub/internal/app/features/logout"
	notificationsfeature "github.com/dalemusser/internhub/internal/app/features/notifications"
	profilefeature "github.com/dalemusser/internhub/internal/app/features/profile"
	registerfeature "github.com/dalemusser/internhub/internal/app/features/register"
	reportsfeature "github.com/dalemusser/internhub/internal/app/features/reports"
	statisticsfeature "github.com/dalemusser/internhub/internal/app/features/statistics"
	workshopsfeature "github.com/dalemusser/internhub/internal/app/features/workshops"
	"github.com/dalemusser/internhub/internal/app/system/auditlog"
	"github.com/dalemusser/internhub/internal/app/system/auth"
	"github.com/dalemusser/internhub/internal/app/system/ratelimit"
	"github.com/dalemusser/internhub/internal/app/system/respond"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root router. Everything is JSON under /api;
// the session middleware puts the signed-in actor on every request.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	secure := coreCfg.Env == "prod"
	sessionMgr, err := auth.NewSessionManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain,
		appCfg.SessionMaxAge, secure, deps.Ledgers.Identity, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	auditLog := auditlog.New(deps.AuditStore, logger, auditlog.Config{
		Auth:  appCfg.AuditLogAuth,
		Admin: appCfg.AuditLogAdmin,
	})
	loginLimiter := ratelimit.NewLoginLimiter(appCfg.LoginRatePerMinute, appCfg.LoginBurst)
	ledgers := deps.Ledgers

	r := chi.NewRouter()
	r.Use(sessionMgr.LoadSessionUser)

	r.Route("/api", func(api chi.Router) {
		healthHandler := healthfeature.NewHandler(deps.MongoClient, ledgers, logger)
		api.Mount("/health", healthfeature.Routes(healthHandler))

		// Authentication
		loginHandler := loginfeature.NewHandler(sessionMgr, loginLimiter, auditLog, logger)
		api.Mount("/login", loginfeature.Routes(loginHandler))

		logoutHandler := logoutfeature.NewHandler(sessionMgr, auditLog, logger)
		api.Mount("/logout", logoutfeature.Routes(logoutHandler))

		registerHandler := registerfeature.NewHandler(sessionMgr, auditLog, logger)
		api.Mount("/register", registerfeature.Routes(registerHandler))

		profileHandler := profilefeature.NewHandler(ledgers, logger)
		api.Mount("/me", profilefeature.Routes(profileHandler, sessionMgr))

		// Opportunity ledger
		internshipsHandler := internshipsfeature.NewHandler(ledgers, auditLog, logger)
		api.Mount("/internships", internshipsfeature.Routes(internshipsHandler, sessionMgr))

		applicationsHandler := applicationsfeature.NewHandler(ledgers, auditLog, logger)
		api.Mount("/applications", applicationsfeature.Routes(applicationsHandler, sessionMgr))

		// Office workflow ledger
		companiesHandler := companiesfeature.NewHandler(ledgers, auditLog, logger)
		api.Mount("/companies", companiesfeature.Routes(companiesHandler, sessionMgr))

		cycleHandler := cyclefeature.NewHandler(ledgers, auditLog, logger)
		api.Mount("/cycle", cyclefeature.Routes(cycleHandler, sessionMgr))

		workshopsHandler := workshopsfeature.NewHandler(ledgers, auditLog, logger)
		api.Mount("/workshops", workshopsfeature.Routes(workshopsHandler, sessionMgr))

		reportsHandler := reportsfeature.NewHandler(ledgers, auditLog, logger)
		api.Mount("/reports", reportsfeature.Routes(reportsHandler, sessionMgr))

		assessmentsHandler := assessmentsfeature.NewHandler(ledgers, logger)
		api.Mount("/assessments", assessmentsfeature.Routes(assessmentsHandler, sessionMgr))

		appointmentsHandler := appointmentsfeature.NewHandler(ledgers, logger)
		api.Mount("/appointments", appointmentsfeature.Routes(appointmentsHandler, sessionMgr))

		statisticsHandler := statisticsfeature.NewHandler(ledgers, logger)
		api.Mount("/statistics", statisticsfeature.Routes(statisticsHandler, sessionMgr))

		notificationsHandler := notificationsfeature.NewHandler(ledgers, logger)
		api.Mount("/notifications", notificationsfeature.Routes(notificationsHandler, sessionMgr))

		auditHandler := auditfeature.NewHandler(deps.AuditStore, logger)
		api.Mount("/audit", auditfeature.Routes(auditHandler, sessionMgr))

		api.NotFound(func(w http.ResponseWriter, r *http.Request) {
			respond.Fail(w, http.StatusNotFound, "Not found")
		})
	})

	return r, nil
}
