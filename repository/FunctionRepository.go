package repository

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"
)

// GenerateRecordID returns a fresh measurement record id. The mobile app
// used millisecond timestamps as ids, so stored records keep that shape.
func GenerateRecordID() string {
	return strconv.FormatInt(time.Now().UnixMilli(), 10)
}

// GenerateQuotationNumber produces a display number like "QT48213".
func GenerateQuotationNumber() string {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return fmt.Sprintf("QT%05d", rng.Intn(90000)+10000)
}

const recordDateFormat = "02/01/2006, 15:04:05"

// FormatRecordDate renders a timestamp in the locale format the saved
// records carry, e.g. "25/08/2026, 14:03:11".
func FormatRecordDate(t time.Time) string {
	return t.Format(recordDateFormat)
}
