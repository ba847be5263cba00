package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// QuotationPayload wraps the full quotation document as a jsonb column so
// the stored shape stays identical to the API shape.
type QuotationPayload []byte

// Value implements the driver.Valuer interface
func (p QuotationPayload) Value() (driver.Value, error) {
	if len(p) == 0 {
		return []byte("{}"), nil
	}
	return []byte(p), nil
}

// Scan implements the sql.Scanner interface
func (p *QuotationPayload) Scan(value interface{}) error {
	if value == nil {
		*p = QuotationPayload("{}")
		return nil
	}
	switch v := value.(type) {
	case []byte:
		*p = append(QuotationPayload{}, v...)
	case string:
		*p = QuotationPayload(v)
	default:
		return fmt.Errorf("cannot scan %T into QuotationPayload", value)
	}
	return nil
}

// QuotationGorm represents the quotations table with GORM tags. The indexed
// columns cover list views and lookups; the payload holds the rest.
type QuotationGorm struct {
	ID          string           `gorm:"primaryKey;column:id" json:"id"`
	QuotationNo string           `gorm:"column:quotation_no;index;not null" json:"quotationNo"`
	QuoteDate   string           `gorm:"column:quote_date;not null" json:"date"`
	ClientName  string           `gorm:"column:client_name;not null" json:"clientName"`
	Country     string           `gorm:"column:country;not null;default:'UAE'" json:"country"`
	Total       float64          `gorm:"column:total;type:numeric(14,2);not null;default:0" json:"total"`
	Payload     QuotationPayload `gorm:"column:payload;type:jsonb;not null" json:"-"`
}

// TableName specifies the table name for QuotationGorm
func (QuotationGorm) TableName() string {
	return "quotations"
}

// NewQuotationGorm builds a row from a quotation document.
func NewQuotationGorm(q SavedQuotation) (QuotationGorm, error) {
	payload, err := json.Marshal(q)
	if err != nil {
		return QuotationGorm{}, err
	}
	return QuotationGorm{
		ID:          q.ID,
		QuotationNo: q.QuotationNo,
		QuoteDate:   q.Date,
		ClientName:  q.Client,
		Country:     q.Country,
		Total:       q.Total,
		Payload:     QuotationPayload(payload),
	}, nil
}

// Document decodes the stored payload back into a quotation. A corrupt
// payload surfaces as ErrUnreadable.
func (row QuotationGorm) Document() (SavedQuotation, error) {
	var q SavedQuotation
	if err := json.Unmarshal(row.Payload, &q); err != nil {
		return q, ErrUnreadable
	}
	if q.ID == "" {
		q.ID = row.ID
	}
	return q, nil
}
