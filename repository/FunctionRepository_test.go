package repository

import (
	"strconv"
	"strings"
	"testing"
	"time"
)

func TestGenerateRecordID(t *testing.T) {
	id := GenerateRecordID()
	ms, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		t.Fatalf("id %q is not numeric: %v", id, err)
	}
	now := time.Now().UnixMilli()
	if ms > now || ms < now-time.Minute.Milliseconds() {
		t.Errorf("id %d not near current time %d", ms, now)
	}
}

func TestGenerateQuotationNumber(t *testing.T) {
	for i := 0; i < 50; i++ {
		no := GenerateQuotationNumber()
		if !strings.HasPrefix(no, "QT") || len(no) != 7 {
			t.Fatalf("bad quotation number %q", no)
		}
		n, err := strconv.Atoi(no[2:])
		if err != nil {
			t.Fatalf("non-numeric suffix in %q: %v", no, err)
		}
		if n < 10000 || n > 99999 {
			t.Fatalf("quotation number %q out of range", no)
		}
	}
}

func TestFormatRecordDate(t *testing.T) {
	ts := time.Date(2026, 8, 25, 14, 3, 11, 0, time.UTC)
	if got := FormatRecordDate(ts); got != "25/08/2026, 14:03:11" {
		t.Errorf("FormatRecordDate = %q", got)
	}
}
