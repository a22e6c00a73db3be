// Package pricing computes booking amounts.
package pricing

import (
	"context"

	"dormstay/internal/pkg/errs"
	"dormstay/internal/usecase/commands"
)

// NightlyRateQuoter prices a stay as a flat per-night rate. Residence or
// room specific pricing would slot in behind the same interface.
type NightlyRateQuoter struct {
	nightlyRateCents int64
}

func NewNightlyRateQuoter(nightlyRateCents int64) *NightlyRateQuoter {
	return &NightlyRateQuoter{nightlyRateCents: nightlyRateCents}
}

func (q *NightlyRateQuoter) Quote(_ context.Context, ctx commands.QuoteContext) (int64, error) {
	if ctx.Nights <= 0 {
		return 0, errs.New("quote requested for a stay with no nights")
	}
	return q.nightlyRateCents * int64(ctx.Nights), nil
}
