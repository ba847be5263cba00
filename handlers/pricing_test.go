package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"backend/models"

	"github.com/gin-gonic/gin"
)

func newPricingRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/measurement/price", PriceArea())
	r.POST("/api/quotation/price", PriceQuotation())
	r.GET("/api/catalogue", GetCatalogue())
	r.GET("/api/locale", GetLocale())
	r.GET("/api/quotation/template", GetQuotationTemplate())
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPriceAreaEndpoint(t *testing.T) {
	r := newPricingRouter()
	body := `{"area":{"title":"Hall","length":"3","width":"2","material":"Gypsum Board","materialRate":120,"thickness":6}}`
	w := doJSON(t, r, http.MethodPost, "/api/measurement/price", body)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var priced models.AreaMeasurement
	if err := json.Unmarshal(w.Body.Bytes(), &priced); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if priced.TotalSqft <= 0 || priced.BaseCost <= 0 {
		t.Errorf("calculated block not filled: sqft=%v base=%v", priced.TotalSqft, priced.BaseCost)
	}
	if priced.TotalCost != priced.BaseCost+priced.AttachedBaseCost+priced.ExtrasCost+priced.ExtraExpensesCost {
		t.Errorf("total %v does not equal sum of parts", priced.TotalCost)
	}
}

func TestPriceAreaEndpointRejectsBadJSON(t *testing.T) {
	r := newPricingRouter()
	w := doJSON(t, r, http.MethodPost, "/api/measurement/price", `{"area":`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestPriceQuotationEndpoint(t *testing.T) {
	r := newPricingRouter()
	body := `{"items":[{"desc":"Ceiling","qty":"2","rate":"500"},{"desc":"Partition","qty":"4","rate":"250"}],"taxRatePercent":5}`
	w := doJSON(t, r, http.MethodPost, "/api/quotation/price", body)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var totals models.QuotationTotals
	if err := json.Unmarshal(w.Body.Bytes(), &totals); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if totals.Subtotal != 2000 || totals.TaxAmount != 100 || totals.Total != 2100 {
		t.Errorf("totals = %+v", totals)
	}
	if totals.TotalInWords != "Two Thousand One Hundred" {
		t.Errorf("TotalInWords = %q", totals.TotalInWords)
	}
}

func TestGetCatalogueEndpoint(t *testing.T) {
	r := newPricingRouter()
	w := doJSON(t, r, http.MethodGet, "/api/catalogue", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var cat models.Catalogue
	if err := json.Unmarshal(w.Body.Bytes(), &cat); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(cat.Materials) == 0 || len(cat.Thicknesses) == 0 || len(cat.Additionals) == 0 {
		t.Errorf("catalogue incomplete: %+v", cat)
	}
}

func TestGetLocaleEndpoint(t *testing.T) {
	r := newPricingRouter()

	w := doJSON(t, r, http.MethodGet, "/api/locale?country=India", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var loc models.Locale
	if err := json.Unmarshal(w.Body.Bytes(), &loc); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if loc.TaxLabel != "GST" || loc.TaxRatePercent != 18 {
		t.Errorf("India locale = %+v", loc)
	}

	// No country query falls back to UAE.
	w = doJSON(t, r, http.MethodGet, "/api/locale", "")
	if err := json.Unmarshal(w.Body.Bytes(), &loc); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if loc.TaxLabel != "VAT" || loc.TaxRatePercent != 5 {
		t.Errorf("default locale = %+v", loc)
	}
}

func TestGetQuotationTemplateEndpoint(t *testing.T) {
	r := newPricingRouter()
	w := doJSON(t, r, http.MethodGet, "/api/quotation/template?country=India", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var tpl models.SavedQuotation
	if err := json.Unmarshal(w.Body.Bytes(), &tpl); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if tpl.Country != "India" || tpl.CurrencySymbol != "₹" || float64(tpl.TaxRatePercent) != 18 {
		t.Errorf("locale fields = %q %q %v", tpl.Country, tpl.CurrencySymbol, tpl.TaxRatePercent)
	}
	if tpl.Message == "" || len(tpl.Conditions) == 0 || len(tpl.PaymentTerms) == 0 || len(tpl.ExcludingWork) == 0 {
		t.Errorf("boilerplate missing: %+v", tpl)
	}
}
