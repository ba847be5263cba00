package handlers

import (
	"encoding/csv"
	"fmt"
	"net/http"

	"backend/services"
	"backend/storage"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportRecordsXLSX godoc
// @Summary      Export all measurement records as Excel
// @Description  One summary sheet plus one row per area with sqft and cost breakdown.
// @Tags         export
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  file  "Excel file"
// @Failure      500  {object}  models.ErrorResponse
// @Router       /api/export/records [get]
func ExportRecordsXLSX(c *gin.Context) {
	db := storage.GetDB()

	records, err := storage.ListRecords(db)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error closing Excel file"})
		}
	}()

	summarySheet := "Summary"
	index, err := f.NewSheet(summarySheet)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating summary sheet"})
		return
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	f.SetCellValue(summarySheet, "A1", "Measurement Records Export")
	f.SetCellValue(summarySheet, "A2", "Total Records")
	f.SetCellValue(summarySheet, "B2", len(records))

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"DDDDDD"}, Pattern: 1},
	})

	areaSheet := "Areas"
	if _, err := f.NewSheet(areaSheet); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating areas sheet"})
		return
	}

	headers := []string{"Record ID", "Date", "Client", "Area", "Material", "Sqft", "Base Cost", "Extras", "Extra Expenses", "Total Cost"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(areaSheet, cell, h)
	}
	endCell, _ := excelize.CoordinatesToCellName(len(headers), 1)
	f.SetCellStyle(areaSheet, "A1", endCell, headerStyle)

	var grandTotal float64
	row := 2
	for _, rec := range records {
		for _, area := range rec.Areas {
			values := []interface{}{
				rec.ID, rec.Date, rec.ClientName, area.Title, area.Material,
				area.TotalSqft, area.BaseCost + area.AttachedBaseCost,
				area.ExtrasCost, area.ExtraExpensesCost, area.TotalCost,
			}
			for i, v := range values {
				cell, _ := excelize.CoordinatesToCellName(i+1, row)
				f.SetCellValue(areaSheet, cell, v)
			}
			row++
		}
		grandTotal += float64(rec.GrandTotal)
	}

	f.SetCellValue(summarySheet, "A3", "Combined Grand Total")
	f.SetCellValue(summarySheet, "B3", grandTotal)

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment;filename=measurement_records.xlsx")
	if err := f.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error writing Excel file"})
		return
	}
}

// ExportQuotationsXLSX godoc
// @Summary      Export all quotations as Excel
// @Tags         export
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  file  "Excel file"
// @Failure      500  {object}  models.ErrorResponse
// @Router       /api/export/quotations [get]
func ExportQuotationsXLSX(c *gin.Context) {
	gdb := storage.GetGormDB()

	quotations, err := storage.ListQuotations(gdb)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error closing Excel file"})
		}
	}()

	sheet := "Quotations"
	index, err := f.NewSheet(sheet)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating sheet"})
		return
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"DDDDDD"}, Pattern: 1},
	})

	headers := []string{"Quotation No", "Date", "Client", "Project", "Country", "Subtotal", "Tax", "Total"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}
	endCell, _ := excelize.CoordinatesToCellName(len(headers), 1)
	f.SetCellStyle(sheet, "A1", endCell, headerStyle)

	for i, q := range quotations {
		values := []interface{}{
			q.QuotationNo, q.Date, q.Client, q.Project, q.Country,
			q.Subtotal, q.TaxAmount, q.Total,
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment;filename=quotations.xlsx")
	if err := f.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error writing Excel file"})
		return
	}
}

// ExportRecordsCSV godoc
// @Summary      Export record totals as CSV
// @Tags         export
// @Produce      text/csv
// @Success      200  {file}  file  "CSV file"
// @Failure      500  {object}  models.ErrorResponse
// @Router       /api/export/records_csv [get]
func ExportRecordsCSV(c *gin.Context) {
	db := storage.GetDB()

	records, err := storage.ListRecords(db)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", "attachment;filename=record_totals.csv")

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	if err := writer.Write([]string{"ID", "Date", "Client", "Areas", "GrandTotal", "Advance", "Balance"}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error writing CSV header"})
		return
	}

	for _, rec := range records {
		row := []string{
			rec.ID, rec.Date, rec.ClientName,
			fmt.Sprintf("%d", len(rec.Areas)),
			fmt.Sprintf("%.2f", float64(rec.GrandTotal)),
			fmt.Sprintf("%.2f", services.ParseAmount(string(rec.Advance))),
			fmt.Sprintf("%.2f", float64(rec.Balance)),
		}
		if err := writer.Write(row); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error writing CSV row"})
			return
		}
	}
}
