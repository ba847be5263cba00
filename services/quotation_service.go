package services

import (
	"math"

	"backend/models"
)

// DefaultTaxRate selects the tax percentage applied to a new quotation.
// It is a creation-time default only: once a quotation exists its rate is
// free text and does not re-snap when the country is edited.
func DefaultTaxRate(country string) float64 {
	if country == "India" {
		return 18
	}
	return 5
}

// ResolveLocale maps country to currency symbol, tax label and default tax
// rate. Resolved once at the boundary and carried as plain strings after.
func ResolveLocale(country string) models.Locale {
	if country == "India" {
		return models.Locale{CurrencySymbol: "₹", TaxLabel: "GST", TaxRatePercent: 18}
	}
	return models.Locale{CurrencySymbol: "AED", TaxLabel: "VAT", TaxRatePercent: 5}
}

// PriceQuotation derives the three quotation figures from its line items.
// Rows with unparseable qty or rate contribute zero but are never dropped,
// so row identity stays stable for the editing client.
func PriceQuotation(items []models.QuotationItem, taxRatePercent float64) (subtotal, taxAmount, total float64) {
	for _, item := range items {
		subtotal += ParseAmount(item.Qty) * ParseAmount(item.Rate)
	}
	taxAmount = subtotal * taxRatePercent / 100
	total = subtotal + taxAmount
	return subtotal, taxAmount, total
}

// PriceQuotationDoc refreshes subtotal, tax and total of a quotation as one
// atomic step, and fills locale fields if the stored copy predates them.
func PriceQuotationDoc(q models.SavedQuotation) models.SavedQuotation {
	if q.CurrencySymbol == "" || q.TaxLabel == "" {
		loc := ResolveLocale(q.Country)
		if q.CurrencySymbol == "" {
			q.CurrencySymbol = loc.CurrencySymbol
		}
		if q.TaxLabel == "" {
			q.TaxLabel = loc.TaxLabel
		}
	}
	// Pre-tax-field quotations stored no rate at all; zero means "re-derive
	// from country", matching how the mobile client reloads old saves.
	if q.TaxRatePercent == 0 {
		q.TaxRatePercent = models.FlexNumber(DefaultTaxRate(q.Country))
	}
	q.Subtotal, q.TaxAmount, q.Total = PriceQuotation(q.Items, float64(q.TaxRatePercent))
	return q
}

// RoundedTotal is the integer amount handed to the words converter.
// Rounding is half away from zero and happens here, at the call boundary,
// never inside the converter.
func RoundedTotal(total float64) int64 {
	return int64(math.Round(total))
}
