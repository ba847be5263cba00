package storage

import (
	"fmt"
	"log"
	"os"
	"time"

	"backend/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var gormDB *gorm.DB

// InitGormDB opens the GORM connection used by the quotation store.
func InitGormDB() *gorm.DB {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	dbname := os.Getenv("DB_NAME")
	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=Asia/Kolkata",
		host, user, password, dbname, port)

	var err error
	gormDB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Warn),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		log.Fatal("Failed to connect to database with GORM:", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		log.Fatal("Failed to get underlying sql.DB:", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	if err := gormDB.AutoMigrate(&models.QuotationGorm{}); err != nil {
		log.Fatal("Failed to migrate quotation table:", err)
	}

	return gormDB
}

// GetGormDB returns the GORM database instance
func GetGormDB() *gorm.DB {
	return gormDB
}

// SaveQuotation inserts a new quotation document.
func SaveQuotation(db *gorm.DB, q models.SavedQuotation) error {
	row, err := models.NewQuotationGorm(q)
	if err != nil {
		return fmt.Errorf("failed to encode quotation: %w", err)
	}
	if err := db.Create(&row).Error; err != nil {
		return fmt.Errorf("failed to insert quotation: %w", err)
	}
	return nil
}

// UpdateQuotation replaces a quotation wholesale, keyed by id.
func UpdateQuotation(db *gorm.DB, q models.SavedQuotation) error {
	row, err := models.NewQuotationGorm(q)
	if err != nil {
		return fmt.Errorf("failed to encode quotation: %w", err)
	}
	res := db.Model(&models.QuotationGorm{}).Where("id = ?", q.ID).Updates(map[string]interface{}{
		"quotation_no": row.QuotationNo,
		"quote_date":   row.QuoteDate,
		"client_name":  row.ClientName,
		"country":      row.Country,
		"total":        row.Total,
		"payload":      row.Payload,
	})
	if res.Error != nil {
		return fmt.Errorf("failed to update quotation: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// GetQuotation fetches one quotation by id. gorm.ErrRecordNotFound passes
// through for the handler's 404.
func GetQuotation(db *gorm.DB, id string) (models.SavedQuotation, error) {
	var row models.QuotationGorm
	if err := db.First(&row, "id = ?", id).Error; err != nil {
		return models.SavedQuotation{}, err
	}
	return row.Document()
}

// ListQuotations returns every saved quotation, newest first.
func ListQuotations(db *gorm.DB) ([]models.SavedQuotation, error) {
	var rows []models.QuotationGorm
	if err := db.Order("id DESC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list quotations: %w", err)
	}
	out := []models.SavedQuotation{}
	for _, row := range rows {
		q, err := row.Document()
		if err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, nil
}

// DeleteQuotation removes exactly the quotation with the given id.
func DeleteQuotation(db *gorm.DB, id string) error {
	res := db.Delete(&models.QuotationGorm{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete quotation: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
