// internal/app/features/internships/handler.go
package internships

import (
	"github.com/dalemusser/internhub/internal/app/store/ledger"
	"github.com/dalemusser/internhub/internal/app/system/auditlog"
	"go.uber.org/zap"
)

// Handler serves postings: the public board, a company's own postings and
// applying to one.
type Handler struct {
	Ledgers  *ledger.Set
	AuditLog *auditlog.Logger
	Log      *zap.Logger
}

func NewHandler(ledgers *ledger.Set, audit *auditlog.Logger, logger *zap.Logger) *Handler {
	return &Handler{
		Ledgers:  ledgers,
		AuditLog: audit,
		Log:      logger,
	}
}
