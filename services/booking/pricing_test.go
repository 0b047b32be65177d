package booking

import (
	"testing"

	"consultly/models"

	"github.com/stretchr/testify/assert"
)

func TestQuoteForService(t *testing.T) {
	svc := &models.Service{
		ID:    "service-x",
		Name:  "Strategy Session",
		Price: 100,
		Type:  models.ServiceTypeQuick,
	}

	quote := QuoteForService(svc)
	assert.InDelta(t, 5.0, quote.ProcessingFee, 1e-9)
	assert.InDelta(t, 105.0, quote.Total, 1e-9)
	assert.Equal(t, "100.00", quote.PriceDisplay)
	assert.Equal(t, "5.00", quote.FeeDisplay)
	assert.Equal(t, "105.00", quote.TotalDisplay)
	assert.Zero(t, quote.PackageSavings)
}

func TestQuoteForPackageIncludesSavings(t *testing.T) {
	svc := &models.Service{
		ID:    "service-y",
		Name:  "Growth Package",
		Price: 450,
		Type:  models.ServiceTypePackage,
	}

	quote := QuoteForService(svc)
	assert.Equal(t, 68, quote.PackageSavings) // 450 * 0.15 = 67.5, rounded
	assert.Equal(t, "472.50", quote.TotalDisplay)
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "42.00", FormatAmount(42))
	assert.Equal(t, "0.50", FormatAmount(0.5))
	assert.Equal(t, "157.50", FormatAmount(157.5))
}
