//go:build unit

package pricing_test

import (
	"context"
	"testing"

	"dormstay/internal/infra/pricing"
	"dormstay/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNightlyRateQuote(t *testing.T) {
	quoter := pricing.NewNightlyRateQuoter(2500)

	amount, err := quoter.Quote(context.Background(), commands.QuoteContext{Nights: 80})
	require.NoError(t, err)
	assert.Equal(t, int64(200000), amount)

	_, err = quoter.Quote(context.Background(), commands.QuoteContext{Nights: 0})
	assert.Error(t, err)
}
