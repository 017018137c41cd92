// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"
	"errors"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup checks that the ledgers came up with something to serve.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if deps.Ledgers == nil {
		return errors.New("ledgers were not built")
	}
	if deps.Ledgers.Identity.Count() == 0 {
		logger.Warn("seed catalog has no actors; nobody can sign in until a company registers")
	}
	logger.Info("internhub ready",
		zap.String("env", coreCfg.Env),
		zap.Int("actors", deps.Ledgers.Identity.Count()),
		zap.Int("postings", len(deps.Ledgers.Opportunities.Postings())),
		zap.Bool("mongo", deps.MongoClient != nil))
	return nil
}
