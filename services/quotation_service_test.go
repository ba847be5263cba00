package services

import (
	"testing"

	"backend/models"
)

func TestResolveLocale(t *testing.T) {
	india := ResolveLocale("India")
	if india.CurrencySymbol != "₹" || india.TaxLabel != "GST" || india.TaxRatePercent != 18 {
		t.Fatalf("unexpected India locale: %+v", india)
	}

	uae := ResolveLocale("UAE")
	if uae.CurrencySymbol != "AED" || uae.TaxLabel != "VAT" || uae.TaxRatePercent != 5 {
		t.Fatalf("unexpected UAE locale: %+v", uae)
	}

	// Any unrecognized country falls back to the UAE settings.
	other := ResolveLocale("Oman")
	if other != uae {
		t.Fatalf("unexpected fallback locale: %+v", other)
	}
}

func TestDefaultTaxRate(t *testing.T) {
	if got := DefaultTaxRate("India"); got != 18 {
		t.Errorf("DefaultTaxRate(India) = %v, want 18", got)
	}
	if got := DefaultTaxRate("UAE"); got != 5 {
		t.Errorf("DefaultTaxRate(UAE) = %v, want 5", got)
	}
}

func TestPriceQuotation(t *testing.T) {
	items := []models.QuotationItem{
		{Desc: "Ceiling", Qty: "2", Rate: "500"},
		{Desc: "Partition", Qty: "4", Rate: "250"},
		{Desc: "Pending row", Qty: "", Rate: "100"}, // contributes zero, never dropped
	}

	subtotal, taxAmount, total := PriceQuotation(items, 5)
	almostEqual(t, "subtotal", subtotal, 2000)
	almostEqual(t, "taxAmount", taxAmount, 100)
	almostEqual(t, "total", total, 2100)
}

func TestPriceQuotationZeroRate(t *testing.T) {
	items := []models.QuotationItem{{Qty: "1", Rate: "1000"}}
	subtotal, taxAmount, total := PriceQuotation(items, 0)
	almostEqual(t, "subtotal", subtotal, 1000)
	almostEqual(t, "taxAmount", taxAmount, 0)
	almostEqual(t, "total", total, 1000)
}

func TestPriceQuotationDocRecomputesTrio(t *testing.T) {
	q := models.SavedQuotation{
		Country: "UAE",
		Items: []models.QuotationItem{
			{Qty: "2", Rate: "500"},
		},
		TaxRatePercent: 5,
		Subtotal:       1, // stale
		TaxAmount:      1, // stale
		Total:          1, // stale
	}

	got := PriceQuotationDoc(q)
	almostEqual(t, "Subtotal", got.Subtotal, 1000)
	almostEqual(t, "TaxAmount", got.TaxAmount, 50)
	almostEqual(t, "Total", got.Total, 1050)
}

func TestPriceQuotationDocFillsLocale(t *testing.T) {
	q := models.SavedQuotation{
		Country: "India",
		Items:   []models.QuotationItem{{Qty: "1", Rate: "100"}},
	}

	got := PriceQuotationDoc(q)
	if got.CurrencySymbol != "₹" || got.TaxLabel != "GST" {
		t.Fatalf("locale not filled: symbol=%q label=%q", got.CurrencySymbol, got.TaxLabel)
	}
	// A stored zero rate means pre-tax-field data: re-derive from country.
	almostEqual(t, "TaxRatePercent", float64(got.TaxRatePercent), 18)
	almostEqual(t, "Total", got.Total, 118)
}

func TestPriceQuotationDocKeepsExplicitRate(t *testing.T) {
	q := models.SavedQuotation{
		Country:        "India",
		Items:          []models.QuotationItem{{Qty: "1", Rate: "100"}},
		TaxRatePercent: 5,
	}

	got := PriceQuotationDoc(q)
	almostEqual(t, "TaxRatePercent", float64(got.TaxRatePercent), 5)
	almostEqual(t, "Total", got.Total, 105)
}
