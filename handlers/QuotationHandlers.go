package handlers

import (
	"errors"
	"net/http"
	"time"

	"backend/models"
	"backend/repository"
	"backend/services"
	"backend/storage"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// PriceQuotation godoc
// @Summary      Price a set of quotation items
// @Description  Stateless pricing: returns subtotal, tax amount, total and the total spelled out in words. Nothing is stored.
// @Tags         quotation
// @Accept       json
// @Produce      json
// @Param        body  body      models.PriceQuotationRequest  true  "Items and tax rate"
// @Success      200   {object}  models.QuotationTotals
// @Failure      400   {object}  models.ErrorResponse
// @Router       /api/quotation/price [post]
func PriceQuotation() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.PriceQuotationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		subtotal, taxAmount, total := services.PriceQuotation(req.Items, req.TaxRatePercent)
		c.JSON(http.StatusOK, models.QuotationTotals{
			Subtotal:     subtotal,
			TaxAmount:    taxAmount,
			Total:        total,
			TotalInWords: services.AmountInWords(services.RoundedTotal(total)),
		})
	}
}

// CreateQuotation godoc
// @Summary      Save a quotation
// @Description  Recomputes subtotal/taxAmount/total and fills missing locale fields before storing. Missing id and quotation number get fresh ones.
// @Tags         quotation
// @Accept       json
// @Produce      json
// @Param        body  body      models.SavedQuotation  true  "Quotation"
// @Success      201   {object}  models.SavedQuotation
// @Failure      400   {object}  models.ErrorResponse
// @Router       /api/quotations [post]
func CreateQuotation(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var q models.SavedQuotation
		if err := c.ShouldBindJSON(&q); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if q.ID == "" {
			q.ID = repository.GenerateRecordID()
		}
		if q.QuotationNo == "" {
			q.QuotationNo = repository.GenerateQuotationNumber()
		}
		if q.Date == "" {
			q.Date = time.Now().Format("02/01/2006")
		}

		q = services.PriceQuotationDoc(q)

		if err := storage.SaveQuotation(db, q); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, q)
	}
}

// GetQuotations godoc
// @Summary      List quotations
// @Tags         quotation
// @Produce      json
// @Success      200  {array}   models.SavedQuotation
// @Failure      500  {object}  models.ErrorResponse
// @Router       /api/quotations [get]
func GetQuotations(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		quotations, err := storage.ListQuotations(db)
		if err != nil {
			if errors.Is(err, models.ErrUnreadable) {
				c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "stored quotations are unreadable"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, quotations)
	}
}

// GetQuotationByID godoc
// @Summary      Get one quotation
// @Tags         quotation
// @Produce      json
// @Param        id   path      string  true  "Quotation ID"
// @Success      200  {object}  models.SavedQuotation
// @Failure      404  {object}  models.ErrorResponse
// @Router       /api/quotations/{id} [get]
func GetQuotationByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		q, err := storage.GetQuotation(db, id)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Quotation not found"})
			return
		} else if errors.Is(err, models.ErrUnreadable) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "stored quotation is unreadable"})
			return
		} else if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, q)
	}
}

// UpdateQuotation godoc
// @Summary      Replace a quotation
// @Description  Full replacement; totals are recomputed server-side.
// @Tags         quotation
// @Accept       json
// @Produce      json
// @Param        id    path      string                 true  "Quotation ID"
// @Param        body  body      models.SavedQuotation  true  "Quotation"
// @Success      200   {object}  models.SavedQuotation
// @Failure      404   {object}  models.ErrorResponse
// @Router       /api/quotations/{id} [put]
func UpdateQuotation(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		var q models.SavedQuotation
		if err := c.ShouldBindJSON(&q); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		q.ID = id
		q = services.PriceQuotationDoc(q)

		if err := storage.UpdateQuotation(db, q); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Quotation not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, q)
	}
}

// DeleteQuotation godoc
// @Summary      Delete a quotation
// @Tags         quotation
// @Param        id   path      string  true  "Quotation ID"
// @Success      200  {object}  models.SuccessResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /api/quotations/{id} [delete]
func DeleteQuotation(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		if err := storage.DeleteQuotation(db, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Quotation not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Quotation deleted successfully"})
	}
}

// ImportQuotations godoc
// @Summary      Import quotations from a mobile export
// @Description  Accepts the app's raw quotation dump; each imported quotation is repriced. A corrupt dump returns 422.
// @Tags         quotation
// @Accept       json
// @Produce      json
// @Success      200  {object}  models.ImportResult
// @Failure      422  {object}  models.ErrorResponse
// @Router       /api/quotations/import [post]
func ImportQuotations(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := c.GetRawData()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		quotations, err := models.DecodeSavedQuotations(raw)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "export data is unreadable"})
			return
		}

		result := models.ImportResult{IDs: []string{}}
		for _, q := range quotations {
			if q.ID == "" {
				q.ID = repository.GenerateRecordID()
			}
			if q.QuotationNo == "" {
				q.QuotationNo = repository.GenerateQuotationNumber()
			}
			q = services.PriceQuotationDoc(q)
			if err := storage.SaveQuotation(db, q); err != nil {
				result.Skipped++
				continue
			}
			result.Imported++
			result.IDs = append(result.IDs, q.ID)
		}

		c.JSON(http.StatusOK, result)
	}
}
