// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds InternHub's own configuration. WAFFLE's CoreConfig
// covers the framework-level settings (ports, TLS, logging, CORS, body
// limits); everything here is specific to this service.
type AppConfig struct {
	// MongoDB backs the audit trail only. A blank URI runs without it.
	MongoURI      string
	MongoDatabase string

	// Session cookie
	SessionKey    string
	SessionName   string
	SessionDomain string
	SessionMaxAge time.Duration

	// SeedFile replaces the embedded seed catalog when set.
	SeedFile string

	// BcryptCost for passwords hashed at registration.
	BcryptCost int

	// Login throttling per client IP and per email.
	LoginRatePerMinute int
	LoginBurst         int

	// Audit logging: "all", "db", "log" or "off" per category.
	AuditLogAuth  string
	AuditLogAdmin string
}

// MongoEnabled reports whether a MongoDB URI was configured.
func (c AppConfig) MongoEnabled() bool {
	return c.MongoURI != ""
}
