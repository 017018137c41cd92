// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"fmt"

	"github.com/dalemusser/internhub/internal/app/seed"
	"github.com/dalemusser/internhub/internal/app/store/audit"
	"github.com/dalemusser/internhub/internal/app/store/ledger"
	"github.com/dalemusser/internhub/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// ConnectDB seeds the ledgers and, when configured, connects to MongoDB.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	if n := timeouts.ConfigureFromEnv(); n > 0 {
		cur := timeouts.Current()
		logger.Info("timeouts configured from environment",
			zap.Duration("ping", cur.Ping),
			zap.Duration("write", cur.Write),
			zap.Duration("startup", cur.Startup))
	}

	data, err := seed.Load(appCfg.SeedFile)
	if err != nil {
		return DBDeps{}, err
	}
	ledgers, err := ledger.Build(data, ledger.Options{BcryptCost: appCfg.BcryptCost}, logger)
	if err != nil {
		return DBDeps{}, fmt.Errorf("build ledgers: %w", err)
	}
	deps := DBDeps{Ledgers: ledgers}

	if !appCfg.MongoEnabled() {
		logger.Info("mongo_uri not set; audit events go to the log only")
		return deps, nil
	}

	connectCtx, cancel := timeouts.WithTimeout(ctx, timeouts.Startup(), logger, "mongo connect")
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(appCfg.MongoURI))
	if err != nil {
		return DBDeps{}, fmt.Errorf("connect MongoDB: %w", err)
	}

	pingCtx, pingCancel := timeouts.WithTimeout(ctx, timeouts.Ping(), logger, "mongo ping")
	defer pingCancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return DBDeps{}, fmt.Errorf("ping MongoDB: %w", err)
	}

	deps.MongoClient = client
	deps.MongoDatabase = client.Database(appCfg.MongoDatabase)
	deps.AuditStore = audit.New(deps.MongoDatabase)
	logger.Info("connected to MongoDB", zap.String("database", appCfg.MongoDatabase))
	return deps, nil
}

// EnsureSchema creates the audit collection's indexes.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if deps.AuditStore == nil {
		return nil
	}
	ctx, cancel := timeouts.WithTimeout(ctx, timeouts.Startup(), logger, "audit indexes")
	defer cancel()
	if err := deps.AuditStore.EnsureIndexes(ctx); err != nil {
		logger.Error("audit index creation failed", zap.Error(err))
		return err
	}
	return nil
}
