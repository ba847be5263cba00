// @title           Gypsum Works API
// @version         1.0
// @description     Estimation and quotation backend for gypsum and interior works contractors.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

// @schemes http https
package main

import (
	_ "backend/docs"
	"backend/handlers"
	"backend/storage"
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var cronRunning int32

func CORSConfig() cors.Config {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{
		"http://localhost:9000",
		"http://localhost:8080",
		"http://localhost:3000",
	}
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{
		"Content-Type", "Content-Length", "Accept-Encoding", "X-XSRF-TOKEN",
		"Accept", "Origin", "X-Requested-With", "Authorization", "User-Agent",
		"Cache-Control", "Referer",
		"Access-Control-Request-Method", "Access-Control-Request-Headers",
	}
	corsConfig.AllowMethods = []string{
		"GET", "POST", "PUT", "DELETE", "OPTIONS", "HEAD", "PATCH",
	}
	corsConfig.ExposeHeaders = []string{
		"Content-Length", "Authorization", "Content-Type", "Content-Disposition",
	}
	corsConfig.MaxAge = 12 * time.Hour
	return corsConfig
}

func main() {
	db := storage.InitDB()
	gormDB := storage.InitGormDB()

	// Daily maintenance at 00:30: drop expired sessions.
	c := cron.New(
		cron.WithLogger(cron.VerbosePrintfLogger(log.New(os.Stdout, "cron: ", log.LstdFlags))),
	)
	_, err := c.AddFunc("30 0 * * *", func() {
		if !atomic.CompareAndSwapInt32(&cronRunning, 0, 1) {
			log.Println("Previous cron still running. Skipping this run.")
			return
		}
		defer atomic.StoreInt32(&cronRunning, 0)

		log.Println("Starting daily maintenance cron job")
		if err := storage.CleanupExpiredSessions(db); err != nil {
			log.Printf("CleanupExpiredSessions failed: %v", err)
		}
		log.Println("Daily cron cycle completed")
	})
	if err != nil {
		log.Fatalf("Failed to schedule daily maintenance cron job: %v", err)
	}
	c.Start()

	r := gin.Default()
	r.MaxMultipartMemory = 8 << 20

	r.Use(cors.New(CORSConfig()))

	// ==================== 1. AUTH & LOGIN ====================
	r.POST("/api/login", handlers.LoginHandler(db))
	r.POST("/api/logout", handlers.LogoutHandler(db))
	r.GET("/api/validate-session", handlers.ValidateSessionHandler(db))

	// ==================== 2. PRICING ====================
	r.POST("/api/measurement/price", handlers.PriceArea())
	r.POST("/api/quotation/price", handlers.PriceQuotation())

	// ==================== 3. CATALOGUE & LOCALE ====================
	r.GET("/api/catalogue", handlers.GetCatalogue())
	r.GET("/api/locale", handlers.GetLocale())
	r.GET("/api/quotation/template", handlers.GetQuotationTemplate())

	// ==================== 4. MEASUREMENT RECORDS ====================
	r.POST("/api/records", handlers.CreateRecord(db))
	r.GET("/api/records", handlers.GetRecords(db))
	r.GET("/api/records/:id", handlers.GetRecordByID(db))
	r.PUT("/api/records/:id", handlers.UpdateRecord(db))
	r.DELETE("/api/records/:id", handlers.DeleteRecord(db))
	r.POST("/api/records/import", handlers.ImportRecords(db))

	// ==================== 5. QUOTATIONS ====================
	r.POST("/api/quotations", handlers.CreateQuotation(gormDB))
	r.GET("/api/quotations", handlers.GetQuotations(gormDB))
	r.GET("/api/quotations/:id", handlers.GetQuotationByID(gormDB))
	r.PUT("/api/quotations/:id", handlers.UpdateQuotation(gormDB))
	r.DELETE("/api/quotations/:id", handlers.DeleteQuotation(gormDB))
	r.POST("/api/quotations/import", handlers.ImportQuotations(gormDB))

	// ==================== 6. DOCUMENTS & EXPORTS ====================
	r.GET("/api/quotation_pdf/:id", handlers.GenerateQuotationPDF(gormDB))
	r.GET("/api/record_pdf/:id", handlers.GenerateRecordPDF(db))
	r.GET("/api/export/records", handlers.ExportRecordsXLSX)
	r.GET("/api/export/records_csv", handlers.ExportRecordsCSV)
	r.GET("/api/export/quotations", handlers.ExportQuotationsXLSX)

	// ==================== 7. SWAGGER ====================
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	port := os.Getenv("PORT")
	if port == "" {
		port = "9000"
	}
	portInt, err := strconv.Atoi(port)
	if err != nil {
		log.Fatalf("Invalid PORT environment variable: %s. Must be a number.", port)
	}
	if portInt < 0 || portInt > 65535 {
		log.Fatalf("Invalid PORT: %d. Must be between 0 and 65535.", portInt)
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	c.Stop()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exiting")
}
