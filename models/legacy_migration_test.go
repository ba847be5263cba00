package models

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestFlexNumberUnmarshal(t *testing.T) {
	cases := []struct {
		in   string
		want FlexNumber
	}{
		{`0`, 0},
		{`18`, 18},
		{`9982.23`, 9982.23},
		{`"9982.23"`, 9982.23},
		{`"18%"`, 18},
		{`" 5 % "`, 5},
		{`"not a number"`, 0},
		{`""`, 0},
		{`null`, 0},
	}
	for _, tc := range cases {
		var got FlexNumber
		if err := json.Unmarshal([]byte(tc.in), &got); err != nil {
			t.Errorf("Unmarshal(%s) error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Unmarshal(%s) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestFlexNumberMarshal(t *testing.T) {
	out, err := json.Marshal(FlexNumber(18))
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	if string(out) != "18" {
		t.Errorf("Marshal = %s, want 18", out)
	}
}

func TestFlexStringUnmarshal(t *testing.T) {
	cases := []struct {
		in   string
		want FlexString
	}{
		{`"5000"`, "5000"},
		{`5000`, "5000"},
		{`2500.5`, "2500.5"},
		{`null`, ""},
	}
	for _, tc := range cases {
		var got FlexString
		if err := json.Unmarshal([]byte(tc.in), &got); err != nil {
			t.Errorf("Unmarshal(%s) error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Unmarshal(%s) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestStringListUnmarshal(t *testing.T) {
	var fromList StringList
	if err := json.Unmarshal([]byte(`["a","b"]`), &fromList); err != nil {
		t.Fatalf("list decode error: %v", err)
	}
	if len(fromList) != 2 || fromList[0] != "a" || fromList[1] != "b" {
		t.Errorf("list decode = %v", fromList)
	}

	var fromText StringList
	if err := json.Unmarshal([]byte(`"line one\n\nline two\n  \nline three"`), &fromText); err != nil {
		t.Fatalf("text decode error: %v", err)
	}
	want := []string{"line one", "line two", "line three"}
	if len(fromText) != len(want) {
		t.Fatalf("text decode = %v, want %v", fromText, want)
	}
	for i := range want {
		if fromText[i] != want[i] {
			t.Errorf("text decode[%d] = %q, want %q", i, fromText[i], want[i])
		}
	}

	var fromNull StringList
	if err := json.Unmarshal([]byte(`null`), &fromNull); err != nil {
		t.Fatalf("null decode error: %v", err)
	}
	if fromNull != nil {
		t.Errorf("null decode = %v, want nil", fromNull)
	}
}

func TestDecodeSavedRecordsEmpty(t *testing.T) {
	records, err := DecodeSavedRecords([]byte("   "))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if records == nil || len(records) != 0 {
		t.Errorf("got %v, want empty list", records)
	}
}

func TestDecodeSavedRecordsCurrentShape(t *testing.T) {
	raw := []byte(`[{"id":"1700000000000","clientName":"Al Noor Interiors","advance":"2000"}]`)
	records, err := DecodeSavedRecords(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if records[0].ClientName != "Al Noor Interiors" || records[0].Advance != "2000" {
		t.Errorf("unexpected record: %+v", records[0])
	}
}

func TestDecodeSavedRecordsLegacySingleObject(t *testing.T) {
	raw := []byte(`{"areas":[{"title":"Hall","length":"3","width":"2"}],"advance":5000}`)
	records, err := DecodeSavedRecords(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	rec := records[0]
	if rec.ClientName != "Unnamed" {
		t.Errorf("ClientName = %q, want Unnamed", rec.ClientName)
	}
	if rec.Advance != "5000" {
		t.Errorf("Advance = %q, want 5000", rec.Advance)
	}
	if len(rec.Areas) != 1 || rec.Areas[0].Title != "Hall" {
		t.Errorf("unexpected areas: %+v", rec.Areas)
	}
}

func TestDecodeSavedRecordsGarbage(t *testing.T) {
	_, err := DecodeSavedRecords([]byte(`{{not json`))
	if !errors.Is(err, ErrUnreadable) {
		t.Fatalf("got %v, want ErrUnreadable", err)
	}
}

func TestDecodeSavedQuotations(t *testing.T) {
	raw := []byte(`[{"quotationNo":"QT12345","taxRatePercent":"5%","conditions":"50% advance\nBalance on completion"}]`)
	quotations, err := DecodeSavedQuotations(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(quotations) != 1 {
		t.Fatalf("got %d quotations, want 1", len(quotations))
	}
	q := quotations[0]
	if q.QuotationNo != "QT12345" {
		t.Errorf("QuotationNo = %q", q.QuotationNo)
	}
	if float64(q.TaxRatePercent) != 5 {
		t.Errorf("TaxRatePercent = %v, want 5", q.TaxRatePercent)
	}
	if len(q.Conditions) != 2 {
		t.Errorf("Conditions = %v, want 2 lines", q.Conditions)
	}

	empty, err := DecodeSavedQuotations(nil)
	if err != nil || len(empty) != 0 || empty == nil {
		t.Errorf("nil input: got %v, %v", empty, err)
	}

	if _, err := DecodeSavedQuotations([]byte(`"nope"`)); !errors.Is(err, ErrUnreadable) {
		t.Errorf("garbage input: got %v, want ErrUnreadable", err)
	}
}
