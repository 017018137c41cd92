// internal/app/bootstrap/config.go
package bootstrap

import (
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/gorilla/securecookie"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// minSessionKeyLen is the shortest session key accepted in prod.
const minSessionKeyLen = 32

// appConfigKeys are loaded from config files (mongo_uri), environment
// variables (INTERNHUB_MONGO_URI) and flags (--mongo_uri).
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "", Desc: "MongoDB connection URI for the audit trail (blank disables MongoDB)"},
	{Name: "mongo_database", Default: "internhub", Desc: "MongoDB database name"},

	{Name: "session_key", Default: "", Desc: "Session signing key (at least 32 characters in prod; generated in dev when blank)"},
	{Name: "session_name", Default: "internhub-session", Desc: "Session cookie name"},
	{Name: "session_domain", Default: "", Desc: "Session cookie domain (blank means current host)"},
	{Name: "session_max_age", Default: "24h", Desc: "Session cookie lifetime (e.g., 8h, 24h)"},

	{Name: "seed_file", Default: "", Desc: "Seed catalog YAML file (blank uses the built-in sample data)"},
	{Name: "bcrypt_cost", Default: bcrypt.DefaultCost, Desc: "bcrypt cost for new password hashes"},

	{Name: "login_rate_per_minute", Default: 10, Desc: "Login attempts allowed per minute per IP and per email"},
	{Name: "login_burst", Default: 5, Desc: "Login attempts allowed in a burst"},

	{Name: "audit_log_auth", Default: "all", Desc: "Auth event logging: 'all' (db+log), 'db', 'log', or 'off'"},
	{Name: "audit_log_admin", Default: "all", Desc: "Admin event logging: 'all' (db+log), 'db', 'log', or 'off'"},
}

// LoadConfig loads WAFFLE core config and InternHub's app config.
// Precedence is flags > env > files > defaults.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "INTERNHUB", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:      appValues.String("mongo_uri"),
		MongoDatabase: appValues.String("mongo_database"),

		SessionKey:    appValues.String("session_key"),
		SessionName:   appValues.String("session_name"),
		SessionDomain: appValues.String("session_domain"),
		SessionMaxAge: appValues.Duration("session_max_age", 24*time.Hour),

		SeedFile:   appValues.String("seed_file"),
		BcryptCost: appValues.Int("bcrypt_cost"),

		LoginRatePerMinute: appValues.Int("login_rate_per_minute"),
		LoginBurst:         appValues.Int("login_burst"),

		AuditLogAuth:  appValues.String("audit_log_auth"),
		AuditLogAdmin: appValues.String("audit_log_admin"),
	}

	if appCfg.SessionKey == "" && coreCfg.Env != "prod" {
		appCfg.SessionKey = base64.RawStdEncoding.EncodeToString(securecookie.GenerateRandomKey(32))
		logger.Warn("no session_key configured; generated a random key, sessions will not survive a restart")
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig rejects configurations that cannot work: a malformed
// MongoDB URI, a weak session key in prod, or out-of-range numbers.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if appCfg.MongoEnabled() {
		if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
			logger.Error("invalid MongoDB URI", zap.Error(err))
			return fmt.Errorf("invalid MongoDB URI: %w", err)
		}
	}

	if coreCfg.Env == "prod" && len(appCfg.SessionKey) < minSessionKeyLen {
		return fmt.Errorf("session_key must be at least %d characters in prod", minSessionKeyLen)
	}
	if appCfg.SessionKey == "" {
		return errors.New("session_key is required")
	}

	if appCfg.BcryptCost < bcrypt.MinCost || appCfg.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("bcrypt_cost must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}
	if appCfg.LoginRatePerMinute <= 0 || appCfg.LoginBurst <= 0 {
		return errors.New("login_rate_per_minute and login_burst must be positive")
	}

	for name, v := range map[string]string{"audit_log_auth": appCfg.AuditLogAuth, "audit_log_admin": appCfg.AuditLogAdmin} {
		switch v {
		case "all", "db", "log", "off":
		default:
			return fmt.Errorf("%s must be one of all, db, log, off (got %q)", name, v)
		}
	}
	return nil
}
