package handlers

import (
	"bytes"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"backend/services"
	"backend/storage"

	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"
	qrcode "github.com/skip2/go-qrcode"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gorm.io/gorm"
)

// GenerateQuotationPDF godoc
// @Summary      Generate quotation PDF
// @Description  Renders the stored quotation as an A4 document with item table, totals, amount in words, boilerplate sections and a QR code carrying the quotation number.
// @Tags         quotation
// @Param        id   path  string  true  "Quotation ID"
// @Success      200  "PDF file"
// @Failure      404  {object}  models.ErrorResponse
// @Router       /api/quotation_pdf/{id} [get]
func GenerateQuotationPDF(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		q, err := storage.GetQuotation(db, id)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Quotation not found"})
			return
		} else if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		q = services.PriceQuotationDoc(q)
		titleCaser := cases.Title(language.Und)

		pdf := gofpdf.New("P", "mm", "A4", "")
		pdf.AddPage()
		pdf.SetMargins(10, 10, 10)
		pdf.SetFont("Arial", "", 10)

		// --- Header ---
		pdf.SetFont("Arial", "B", 18)
		pdf.Cell(150, 10, "QUOTATION")
		pdf.SetFont("Arial", "B", 11)
		pdf.CellFormat(40, 10, q.QuotationNo, "", 1, "R", false, 0, "")
		pdf.Ln(4)

		// --- Parties ---
		pdf.SetFont("Arial", "B", 11)
		pdf.Cell(95, 6, fmt.Sprintf("Client: %s", titleCaser.String(q.Client)))
		pdf.Cell(95, 6, fmt.Sprintf("Date: %s", q.Date))
		pdf.Ln(6)
		pdf.SetFont("Arial", "", 10)
		if q.Consultant != "" {
			pdf.Cell(95, 6, fmt.Sprintf("Consultant: %s", q.Consultant))
			pdf.Ln(6)
		}
		if q.Project != "" {
			pdf.Cell(95, 6, fmt.Sprintf("Project: %s", q.Project))
			pdf.Cell(95, 6, fmt.Sprintf("Plot No: %s", q.PlotNo))
			pdf.Ln(6)
		}
		if q.Duration != "" {
			pdf.Cell(95, 6, fmt.Sprintf("Duration: %s", q.Duration))
			pdf.Ln(6)
		}
		pdf.Ln(4)

		// --- Message ---
		if q.Message != "" {
			pdf.SetFont("Arial", "", 9)
			pdf.MultiCell(190, 5, q.Message, "", "L", false)
			pdf.Ln(4)
		}

		// --- Item table ---
		pdf.SetFont("Arial", "B", 11)
		pdf.SetFillColor(240, 240, 240)
		pdf.CellFormat(10, 8, "#", "1", 0, "C", true, 0, "")
		pdf.CellFormat(100, 8, "Description", "1", 0, "L", true, 0, "")
		pdf.CellFormat(25, 8, "Qty", "1", 0, "C", true, 0, "")
		pdf.CellFormat(25, 8, "Rate", "1", 0, "C", true, 0, "")
		pdf.CellFormat(30, 8, "Amount", "1", 1, "C", true, 0, "")

		pdf.SetFont("Arial", "", 10)
		for i, item := range q.Items {
			qty := services.ParseAmount(item.Qty)
			rate := services.ParseAmount(item.Rate)
			pdf.CellFormat(10, 8, fmt.Sprintf("%d", i+1), "1", 0, "C", false, 0, "")
			pdf.CellFormat(100, 8, item.Desc, "1", 0, "L", false, 0, "")
			pdf.CellFormat(25, 8, item.Qty, "1", 0, "C", false, 0, "")
			pdf.CellFormat(25, 8, fmt.Sprintf("%.2f", rate), "1", 0, "C", false, 0, "")
			pdf.CellFormat(30, 8, fmt.Sprintf("%.2f", qty*rate), "1", 1, "R", false, 0, "")
		}
		pdf.Ln(3)

		// --- Totals ---
		symbol := q.CurrencySymbol
		pdf.SetFont("Arial", "B", 11)
		pdf.Cell(160, 8, "Subtotal")
		pdf.CellFormat(30, 8, fmt.Sprintf("%s %.2f", symbol, q.Subtotal), "1", 1, "R", false, 0, "")
		pdf.Cell(160, 8, fmt.Sprintf("%s (%.0f%%)", q.TaxLabel, float64(q.TaxRatePercent)))
		pdf.CellFormat(30, 8, fmt.Sprintf("%s %.2f", symbol, q.TaxAmount), "1", 1, "R", false, 0, "")
		pdf.Cell(160, 8, "Total")
		pdf.CellFormat(30, 8, fmt.Sprintf("%s %.2f", symbol, q.Total), "1", 1, "R", false, 0, "")
		pdf.Ln(3)

		pdf.SetFont("Arial", "I", 10)
		words := services.AmountInWords(services.RoundedTotal(q.Total))
		pdf.MultiCell(190, 6, fmt.Sprintf("Amount in words: %s %s Only", q.CurrencySymbol, words), "", "L", false)
		pdf.Ln(3)

		// --- Boilerplate sections ---
		writePdfList := func(title string, lines []string) {
			if len(lines) == 0 {
				return
			}
			pdf.SetFont("Arial", "B", 11)
			pdf.Cell(190, 7, title)
			pdf.Ln(7)
			pdf.SetFont("Arial", "", 9)
			for _, line := range lines {
				pdf.MultiCell(190, 5, "- "+line, "", "L", false)
			}
			pdf.Ln(2)
		}

		if q.StandardMethod != "" {
			pdf.SetFont("Arial", "B", 11)
			pdf.Cell(190, 7, "Standard Method")
			pdf.Ln(7)
			pdf.SetFont("Arial", "", 9)
			pdf.MultiCell(190, 5, q.StandardMethod, "", "L", false)
			pdf.Ln(2)
		}
		writePdfList("Conditions", q.Conditions)
		writePdfList("Payment Terms", q.PaymentTerms)
		writePdfList("Excluding Work", q.ExcludingWork)

		// --- QR code with the quotation number ---
		qrPNG, err := qrcode.Encode(fmt.Sprintf("%s|%s|%.2f", q.QuotationNo, q.Date, q.Total), qrcode.Medium, 256)
		if err == nil {
			opts := gofpdf.ImageOptions{ImageType: "PNG"}
			pdf.RegisterImageOptionsReader("quotation-qr", opts, bytes.NewReader(qrPNG))
			pdf.ImageOptions("quotation-qr", 175, 270, 22, 22, false, opts, 0, "")
		}

		// --- Footer ---
		pdf.SetY(-20)
		pdf.SetFont("Arial", "I", 8)
		pdf.Cell(190, 6, "This is a computer-generated quotation. No signature required.")
		pdf.Ln(5)
		pdf.Cell(190, 6, "Generated on: "+time.Now().Format("2006-01-02 15:04:05"))

		c.Header("Content-Type", "application/pdf")
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=quotation_%s.pdf", q.QuotationNo))
		if err := pdf.Output(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate PDF"})
			return
		}
	}
}

// GenerateRecordPDF godoc
// @Summary      Generate measurement record PDF
// @Description  Renders a saved record as a per-area cost breakdown with the grand total, advance and balance.
// @Tags         records
// @Param        id   path  string  true  "Record ID"
// @Success      200  "PDF file"
// @Failure      404  {object}  models.ErrorResponse
// @Router       /api/record_pdf/{id} [get]
func GenerateRecordPDF(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		rec, err := storage.GetRecord(db, id)
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
			return
		} else if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		titleCaser := cases.Title(language.Und)

		pdf := gofpdf.New("P", "mm", "A4", "")
		pdf.AddPage()
		pdf.SetMargins(10, 10, 10)

		pdf.SetFont("Arial", "B", 18)
		pdf.Cell(190, 10, "MEASUREMENT SUMMARY")
		pdf.Ln(12)

		pdf.SetFont("Arial", "B", 11)
		pdf.Cell(95, 6, fmt.Sprintf("Client: %s", titleCaser.String(rec.ClientName)))
		pdf.Cell(95, 6, fmt.Sprintf("Date: %s", rec.Date))
		pdf.Ln(10)

		pdf.SetFont("Arial", "B", 11)
		pdf.SetFillColor(240, 240, 240)
		pdf.CellFormat(60, 8, "Area", "1", 0, "L", true, 0, "")
		pdf.CellFormat(30, 8, "Sqft", "1", 0, "C", true, 0, "")
		pdf.CellFormat(35, 8, "Base Cost", "1", 0, "C", true, 0, "")
		pdf.CellFormat(30, 8, "Extras", "1", 0, "C", true, 0, "")
		pdf.CellFormat(35, 8, "Total", "1", 1, "C", true, 0, "")

		pdf.SetFont("Arial", "", 10)
		for _, area := range rec.Areas {
			title := area.Title
			if title == "" {
				title = area.Material
			}
			extras := area.ExtrasCost + area.ExtraExpensesCost
			pdf.CellFormat(60, 8, title, "1", 0, "L", false, 0, "")
			pdf.CellFormat(30, 8, fmt.Sprintf("%.2f", area.TotalSqft), "1", 0, "C", false, 0, "")
			pdf.CellFormat(35, 8, fmt.Sprintf("%.2f", area.BaseCost+area.AttachedBaseCost), "1", 0, "R", false, 0, "")
			pdf.CellFormat(30, 8, fmt.Sprintf("%.2f", extras), "1", 0, "R", false, 0, "")
			pdf.CellFormat(35, 8, fmt.Sprintf("%.2f", area.TotalCost), "1", 1, "R", false, 0, "")
		}
		pdf.Ln(5)

		pdf.SetFont("Arial", "B", 11)
		pdf.Cell(155, 8, "Grand Total")
		pdf.CellFormat(35, 8, fmt.Sprintf("%.2f", float64(rec.GrandTotal)), "1", 1, "R", false, 0, "")
		pdf.Cell(155, 8, "Advance")
		pdf.CellFormat(35, 8, fmt.Sprintf("%.2f", services.ParseAmount(string(rec.Advance))), "1", 1, "R", false, 0, "")
		pdf.Cell(155, 8, "Balance Due")
		pdf.CellFormat(35, 8, fmt.Sprintf("%.2f", float64(rec.Balance)), "1", 1, "R", false, 0, "")

		pdf.SetY(-20)
		pdf.SetFont("Arial", "I", 8)
		pdf.Cell(190, 6, "Generated on: "+time.Now().Format("2006-01-02 15:04:05"))

		c.Header("Content-Type", "application/pdf")
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=record_%s.pdf", rec.ID))
		if err := pdf.Output(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate PDF"})
			return
		}
	}
}
