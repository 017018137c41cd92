// Package ledger assembles the three in-memory stores from a seed catalog
// and wires them together: company registration opens an office review,
// the review outcome flips the company's verified flag, and statistics
// read postings from the opportunity ledger.
package ledger

import (
	"fmt"
	"time"

	"github.com/dalemusser/internhub/internal/app/seed"
	"github.com/dalemusser/internhub/internal/app/store/identity"
	"github.com/dalemusser/internhub/internal/app/store/office"
	"github.com/dalemusser/internhub/internal/app/store/opportunities"
	"github.com/dalemusser/internhub/internal/domain/models"
	"go.uber.org/zap"
)

// Set is the application state.
type Set struct {
	Identity      *identity.Store
	Opportunities *opportunities.Store
	Office        *office.Store
}

// Options tunes the stores. Zero values take each store's defaults.
type Options struct {
	BcryptCost int
	Now        func() time.Time
	Scorer     office.Scorer
}

// Build seeds the stores from data and wires them.
func Build(data *seed.Data, opts Options, logger *zap.Logger) (*Set, error) {
	ids := identity.New(identity.Options{BcryptCost: opts.BcryptCost, Now: opts.Now}, logger)
	for _, acct := range data.Accounts {
		if err := ids.Seed(acct.Actor, acct.Password); err != nil {
			return nil, fmt.Errorf("seed actor %s: %w", acct.Actor.ID, err)
		}
	}

	opps := opportunities.New(data.Postings, data.Applications,
		opportunities.Options{Now: opts.Now}, logger)

	off := office.New(data.Office, office.Options{
		Verifier:  ids,
		Directory: ids,
		Postings:  opps,
		Scorer:    opts.Scorer,
		Now:       opts.Now,
	}, logger)

	ids.OnCompanyRegistered(func(company models.Actor, documents []string) {
		if _, err := off.SubmitCompanyApplication(&company, documents); err != nil {
			logger.Error("open company review",
				zap.String("company_id", company.ID),
				zap.Error(err))
		}
	})

	logger.Info("ledgers seeded",
		zap.Int("actors", ids.Count()),
		zap.Int("postings", len(data.Postings)),
		zap.Int("applications", len(data.Applications)))

	return &Set{Identity: ids, Opportunities: opps, Office: off}, nil
}
