package handlers

import (
	"net/http"

	"backend/models"
	"backend/services"

	"github.com/gin-gonic/gin"
)

// GetCatalogue godoc
// @Summary      Get the pricing catalogue
// @Description  Materials with default rates, thickness tiers and additional work types. Rates are starting points; every job can override them per area.
// @Tags         catalogue
// @Produce      json
// @Success      200  {object}  models.Catalogue
// @Router       /api/catalogue [get]
func GetCatalogue() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, models.DefaultCatalogue())
	}
}

// GetLocale godoc
// @Summary      Resolve currency and tax settings for a country
// @Tags         catalogue
// @Produce      json
// @Param        country  query     string  false  "Country name"  default(UAE)
// @Success      200      {object}  models.Locale
// @Router       /api/locale [get]
func GetLocale() gin.HandlerFunc {
	return func(c *gin.Context) {
		country := c.DefaultQuery("country", "UAE")
		c.JSON(http.StatusOK, services.ResolveLocale(country))
	}
}

// GetQuotationTemplate godoc
// @Summary      Get the default quotation boilerplate
// @Description  Message, standard method and the condition/payment/exclusion lists a new quotation starts from.
// @Tags         catalogue
// @Produce      json
// @Success      200  {object}  models.SavedQuotation
// @Router       /api/quotation/template [get]
func GetQuotationTemplate() gin.HandlerFunc {
	return func(c *gin.Context) {
		tpl := models.DefaultQuotationTemplate()
		country := c.DefaultQuery("country", "UAE")
		tpl.Country = country
		loc := services.ResolveLocale(country)
		tpl.CurrencySymbol = loc.CurrencySymbol
		tpl.TaxLabel = loc.TaxLabel
		tpl.TaxRatePercent = models.FlexNumber(loc.TaxRatePercent)
		c.JSON(http.StatusOK, tpl)
	}
}
