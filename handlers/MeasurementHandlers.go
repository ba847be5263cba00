package handlers

import (
	"database/sql"
	"errors"
	"io"
	"net/http"
	"time"

	"backend/models"
	"backend/repository"
	"backend/services"
	"backend/storage"

	"github.com/gin-gonic/gin"
)

// PriceArea godoc
// @Summary      Price a single area measurement
// @Description  Stateless pricing: fills the calculated block of the area and returns it. Nothing is stored.
// @Tags         measurement
// @Accept       json
// @Produce      json
// @Param        body  body      models.PriceAreaRequest  true  "Area to price"
// @Success      200   {object}  models.AreaMeasurement
// @Failure      400   {object}  models.ErrorResponse
// @Router       /api/measurement/price [post]
func PriceArea() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.PriceAreaRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		priced := services.PriceArea(req.Area, models.DefaultCatalogue())
		c.JSON(http.StatusOK, priced)
	}
}

// CreateRecord godoc
// @Summary      Save a measurement record
// @Description  Reprices every area and recomputes grandTotal/balance before storing. A missing id gets a fresh one.
// @Tags         records
// @Accept       json
// @Produce      json
// @Param        body  body      models.SavedRecord  true  "Record"
// @Success      201   {object}  models.SavedRecord
// @Failure      400   {object}  models.ErrorResponse
// @Router       /api/records [post]
func CreateRecord(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var rec models.SavedRecord
		if err := c.ShouldBindJSON(&rec); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if rec.ID == "" {
			rec.ID = repository.GenerateRecordID()
		}
		if rec.Date == "" {
			rec.Date = repository.FormatRecordDate(time.Now())
		}
		if rec.Country == "" {
			rec.Country = "UAE"
		}

		rec = services.PriceRecord(rec, models.DefaultCatalogue())

		if err := storage.SaveRecord(db, rec); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, rec)
	}
}

// GetRecords godoc
// @Summary      List measurement records
// @Tags         records
// @Produce      json
// @Success      200  {array}   models.SavedRecord
// @Failure      500  {object}  models.ErrorResponse
// @Router       /api/records [get]
func GetRecords(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		records, err := storage.ListRecords(db)
		if err != nil {
			if errors.Is(err, models.ErrUnreadable) {
				c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "stored records are unreadable"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, records)
	}
}

// GetRecordByID godoc
// @Summary      Get one measurement record
// @Tags         records
// @Produce      json
// @Param        id   path      string  true  "Record ID"
// @Success      200  {object}  models.SavedRecord
// @Failure      404  {object}  models.ErrorResponse
// @Router       /api/records/{id} [get]
func GetRecordByID(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		rec, err := storage.GetRecord(db, id)
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
			return
		} else if errors.Is(err, models.ErrUnreadable) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "stored record is unreadable"})
			return
		} else if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, rec)
	}
}

// UpdateRecord godoc
// @Summary      Replace a measurement record
// @Description  Full replacement; areas are repriced and totals refreshed server-side.
// @Tags         records
// @Accept       json
// @Produce      json
// @Param        id    path      string              true  "Record ID"
// @Param        body  body      models.SavedRecord  true  "Record"
// @Success      200   {object}  models.SavedRecord
// @Failure      404   {object}  models.ErrorResponse
// @Router       /api/records/{id} [put]
func UpdateRecord(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		var rec models.SavedRecord
		if err := c.ShouldBindJSON(&rec); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		rec.ID = id
		rec = services.PriceRecord(rec, models.DefaultCatalogue())

		if err := storage.UpdateRecord(db, rec); err != nil {
			if err == sql.ErrNoRows {
				c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, rec)
	}
}

// DeleteRecord godoc
// @Summary      Delete a measurement record
// @Tags         records
// @Param        id   path      string  true  "Record ID"
// @Success      200  {object}  models.SuccessResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /api/records/{id} [delete]
func DeleteRecord(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		if err := storage.DeleteRecord(db, id); err != nil {
			if err == sql.ErrNoRows {
				c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Record deleted successfully"})
	}
}

// ImportRecords godoc
// @Summary      Import a mobile export
// @Description  Accepts the app's raw storage dump: a record list, a single legacy record object, or empty. Every imported record is repriced. A corrupt dump returns 422.
// @Tags         records
// @Accept       json
// @Produce      json
// @Success      200  {object}  models.ImportResult
// @Failure      422  {object}  models.ErrorResponse
// @Router       /api/records/import [post]
func ImportRecords(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		records, err := models.DecodeSavedRecords(raw)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "export data is unreadable"})
			return
		}

		result := models.ImportResult{IDs: []string{}}
		cat := models.DefaultCatalogue()
		for _, rec := range records {
			if rec.ID == "" {
				rec.ID = repository.GenerateRecordID()
			}
			rec = services.PriceRecord(rec, cat)
			if err := storage.SaveRecord(db, rec); err != nil {
				result.Skipped++
				continue
			}
			result.Imported++
			result.IDs = append(result.IDs, rec.ID)
		}

		c.JSON(http.StatusOK, result)
	}
}
