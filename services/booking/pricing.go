package booking

import (
	"math"
	"strconv"

	"consultly/models"
)

// ProcessingFeeRate is the flat surcharge applied over a service's list price.
const ProcessingFeeRate = 0.05

// packageSavingsRate drives the cosmetic "save $X" figure shown for packages
// compared to booking the sessions individually.
const packageSavingsRate = 0.15

// QuoteForService builds the payment summary for a service:
// total = price + price*0.05. Amounts are also rendered with two decimals for
// display.
func QuoteForService(svc *models.Service) models.PriceQuote {
	fee := svc.Price * ProcessingFeeRate
	total := svc.Price + fee

	quote := models.PriceQuote{
		ServiceID:     svc.ID,
		ServiceName:   svc.Name,
		Price:         svc.Price,
		ProcessingFee: fee,
		Total:         total,
		PriceDisplay:  FormatAmount(svc.Price),
		FeeDisplay:    FormatAmount(fee),
		TotalDisplay:  FormatAmount(total),
	}
	if svc.IsPackage() {
		quote.PackageSavings = int(math.Round(svc.Price * packageSavingsRate))
	}
	return quote
}

// FormatAmount renders a money amount with exactly two decimals.
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
