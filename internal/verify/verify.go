// Package verify decides whether freshly scraped job records are legitimate
// enough to store. Checks run sequentially and short-circuit on the first
// failure; disabled checks stay in the chain as visible extension points.
package verify

import (
	"context"

	"go.uber.org/zap"

	"github.com/jonathan/job-matcher/internal/types"
)

// Check is a single validity check applied to a scraped job record.
type Check interface {
	Name() string
	Enabled() bool
	Apply(ctx context.Context, rec *types.RawJobRecord) bool
}

// Verifier runs a chain of validity checks.
type Verifier struct {
	checks []Check
	logger *zap.Logger
}

// NewVerifier creates a Verifier with the given check chain. With no checks
// supplied, the default chain is used.
func NewVerifier(logger *zap.Logger, checks ...Check) *Verifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	if len(checks) == 0 {
		checks = DefaultChecks()
	}
	return &Verifier{checks: checks, logger: logger}
}

// DefaultChecks returns the standard chain: required fields and company
// profile are mandatory; the description classifier and link probe are
// intentionally inert until re-enabled.
func DefaultChecks() []Check {
	return []Check{
		&RequiredFieldsCheck{},
		&CompanyProfileCheck{},
		&VagueDescriptionCheck{},
		NewLinkProbeCheck(false),
	}
}

// IsValid runs every enabled check in order, rejecting on the first failure.
func (v *Verifier) IsValid(ctx context.Context, rec *types.RawJobRecord) bool {
	for _, check := range v.checks {
		if !check.Enabled() {
			v.logger.Debug("check disabled", zap.String("check", check.Name()))
			continue
		}
		if !check.Apply(ctx, rec) {
			v.logger.Info("job rejected",
				zap.String("job_id", rec.JobID),
				zap.String("check", check.Name()),
			)
			return false
		}
	}
	return true
}
