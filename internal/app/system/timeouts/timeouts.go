// Package timeouts holds the deadlines used for MongoDB I/O: health pings,
// audit writes and startup index builds. The ledgers themselves are in
// memory and never block.
//
//   - Ping: health checks and connectivity verification
//   - Write: a single audit insert issued from a request
//   - Startup: connecting and creating indexes
package timeouts

import (
	"context"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"
)

const (
	DefaultPing    = 2 * time.Second
	DefaultWrite   = 5 * time.Second
	DefaultStartup = 30 * time.Second
)

var (
	mu      sync.RWMutex
	ping    = DefaultPing
	write   = DefaultWrite
	startup = DefaultStartup
)

// Ping is the deadline for a health-check round trip.
func Ping() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return ping
}

// Write is the deadline for an audit insert.
func Write() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return write
}

// Startup is the deadline for connecting and ensuring indexes.
func Startup() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return startup
}

// Config holds timeout values. Zero values keep the current setting.
type Config struct {
	Ping    time.Duration
	Write   time.Duration
	Startup time.Duration
}

// Configure overrides the non-zero values in cfg. Call it during startup
// before handlers run.
func Configure(cfg Config) {
	mu.Lock()
	defer mu.Unlock()
	if cfg.Ping > 0 {
		ping = cfg.Ping
	}
	if cfg.Write > 0 {
		write = cfg.Write
	}
	if cfg.Startup > 0 {
		startup = cfg.Startup
	}
}

// Reset restores the defaults.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	ping = DefaultPing
	write = DefaultWrite
	startup = DefaultStartup
}

// ConfigureFromEnv reads INTERNHUB_TIMEOUT_PING, INTERNHUB_TIMEOUT_WRITE
// and INTERNHUB_TIMEOUT_STARTUP as Go durations ("2s", "500ms").
// Unset or invalid values are ignored. It returns how many were applied.
func ConfigureFromEnv() int {
	var cfg Config
	configured := 0
	for name, dst := range map[string]*time.Duration{
		"INTERNHUB_TIMEOUT_PING":    &cfg.Ping,
		"INTERNHUB_TIMEOUT_WRITE":   &cfg.Write,
		"INTERNHUB_TIMEOUT_STARTUP": &cfg.Startup,
	} {
		if d, err := time.ParseDuration(os.Getenv(name)); err == nil && d > 0 {
			*dst = d
			configured++
		}
	}
	Configure(cfg)
	return configured
}

// Current returns the active configuration, for logging.
func Current() Config {
	mu.RLock()
	defer mu.RUnlock()
	return Config{Ping: ping, Write: write, Startup: startup}
}

// WithTimeout is context.WithTimeout whose cancel func logs a warning when
// the deadline was hit.
//
//	ctx, cancel := timeouts.WithTimeout(context.Background(), timeouts.Write(), log, "audit insert")
//	defer cancel()
func WithTimeout(parent context.Context, timeout time.Duration, log *zap.Logger, operation string) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(parent, timeout)
	return ctx, func() {
		if ctx.Err() == context.DeadlineExceeded && log != nil {
			log.Warn("operation timed out",
				zap.String("operation", operation),
				zap.Duration("timeout", timeout),
			)
		}
		cancel()
	}
}
