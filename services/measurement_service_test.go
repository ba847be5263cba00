package services

import (
	"math"
	"testing"

	"backend/models"
)

func almostEqual(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 0.001 {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"2.5", 2.5},
		{" 3 ", 3},
		{"", 0},
		{".", 0},
		{"abc", 0},
		{"-4", 0},
		{"0", 0},
	}
	for _, tc := range cases {
		if got := ParseAmount(tc.in); got != tc.want {
			t.Errorf("ParseAmount(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestPriceAreaBaseFormula(t *testing.T) {
	cat := models.DefaultCatalogue()
	area := models.AreaMeasurement{
		Length:       "3",
		Width:        "2",
		Material:     "Gypsum MR Board (Kool Brand)",
		MaterialRate: 150,
	}

	got := PriceArea(area, cat)

	wantSqft := 3 * 2 * MeterToFeet * MeterToFeet
	almostEqual(t, "Area", got.Area, wantSqft)
	almostEqual(t, "TotalSqft", got.TotalSqft, wantSqft)
	almostEqual(t, "BaseCost", got.BaseCost, wantSqft*150)
	almostEqual(t, "ExtrasCost", got.ExtrasCost, 0)
	almostEqual(t, "TotalCost", got.TotalCost, wantSqft*150)
}

func TestPriceAreaAdditionalsUseLinearQuantity(t *testing.T) {
	cat := models.DefaultCatalogue()
	area := models.AreaMeasurement{
		Length:       "3",
		Width:        "2",
		MaterialRate: 150,
		Additionals:  map[string]bool{"cornerBeading": true},
	}

	got := PriceArea(area, cat)

	// The additional-cost quantity is linear meters-to-feet, not squared.
	wantExtraQty := 3.0 * 2.0 * 3.28
	almostEqual(t, "ExtrasCost", got.ExtrasCost, wantExtraQty*15)
	almostEqual(t, "TotalCost", got.TotalCost, got.BaseCost+got.ExtrasCost)
}

func TestPriceAreaAdditionalRateOverride(t *testing.T) {
	cat := models.DefaultCatalogue()
	area := models.AreaMeasurement{
		Length:          "1",
		Width:           "1",
		MaterialRate:    100,
		Additionals:     map[string]bool{"cutting": true},
		AdditionalRates: map[string]float64{"cutting": 50},
	}

	got := PriceArea(area, cat)
	almostEqual(t, "ExtrasCost", got.ExtrasCost, 3.28*50)
}

func TestPriceAreaAdHocEntries(t *testing.T) {
	cat := models.DefaultCatalogue()
	area := models.AreaMeasurement{
		Length:       "1",
		Width:        "1",
		MaterialRate: 100,
		BulkCuttingEntries: []models.BulkCuttingEntry{
			{Length: "2.5", Runs: "3", Rate: "30"},
			{Length: "x", Runs: "2", Rate: "10"}, // unparseable prices as zero
		},
		OtherCustomEntries: []models.OtherCustomEntry{
			{Name: "Pelmet", Length: "4", Runs: "1", Rate: "45"},
		},
		ExtraExpenses: []models.ExtraExpense{
			{Description: "Scaffolding", Amount: "250"},
			{Description: "Bad entry", Amount: "n/a"},
		},
	}

	got := PriceArea(area, cat)

	almostEqual(t, "ExtrasCost", got.ExtrasCost, 2.5*3*30+4*1*45)
	almostEqual(t, "ExtraExpensesCost", got.ExtraExpensesCost, 250)
	almostEqual(t, "TotalCost", got.TotalCost,
		got.BaseCost+got.AttachedBaseCost+got.ExtrasCost+got.ExtraExpensesCost)
}

func TestPriceAreaAttachedRooms(t *testing.T) {
	cat := models.DefaultCatalogue()
	area := models.AreaMeasurement{
		Length:       "3",
		Width:        "2",
		MaterialRate: 150,
		AttachedRooms: []models.AttachedRoom{
			{Title: "Store", Length: "2", Width: "1.5", MaterialRate: 120},
		},
	}

	got := PriceArea(area, cat)

	roomSqft := 2 * 1.5 * MeterToFeet * MeterToFeet
	almostEqual(t, "RoomSqft", got.AttachedRooms[0].RoomSqft, roomSqft)
	almostEqual(t, "RoomCost", got.AttachedRooms[0].RoomCost, roomSqft*120)
	almostEqual(t, "AttachedBaseCost", got.AttachedBaseCost, roomSqft*120)
	almostEqual(t, "TotalSqft", got.TotalSqft, got.Area+roomSqft)
	almostEqual(t, "TotalCost", got.TotalCost, got.BaseCost+roomSqft*120)
}

func TestPriceAreaDoesNotMutateInput(t *testing.T) {
	cat := models.DefaultCatalogue()
	area := models.AreaMeasurement{
		Length:       "3",
		Width:        "2",
		MaterialRate: 150,
		AttachedRooms: []models.AttachedRoom{
			{Length: "2", Width: "1.5", MaterialRate: 120},
		},
	}

	_ = PriceArea(area, cat)

	if area.TotalCost != 0 || area.Area != 0 {
		t.Fatalf("input area was mutated: %+v", area)
	}
	if area.AttachedRooms[0].RoomCost != 0 {
		t.Fatalf("input attached room was mutated: %+v", area.AttachedRooms[0])
	}
}

func TestPriceAreaIdempotent(t *testing.T) {
	cat := models.DefaultCatalogue()
	area := models.AreaMeasurement{
		Length:       "3",
		Width:        "2",
		MaterialRate: 150,
		Additionals:  map[string]bool{"profiling": true},
	}

	once := PriceArea(area, cat)
	twice := PriceArea(once, cat)

	almostEqual(t, "TotalCost", twice.TotalCost, once.TotalCost)
	almostEqual(t, "ExtrasCost", twice.ExtrasCost, once.ExtrasCost)
}

func TestAggregateRecord(t *testing.T) {
	areas := []models.AreaMeasurement{
		{TotalCost: 9000},
		{TotalCost: 982.23},
	}

	totals := AggregateRecord(areas, "5000")
	almostEqual(t, "GrandTotal", totals.GrandTotal, 9982.23)
	almostEqual(t, "Balance", totals.Balance, 4982.23)

	// Overpayment produces a negative balance, not an error.
	over := AggregateRecord(areas, "20000")
	almostEqual(t, "Balance", over.Balance, 9982.23-20000)

	// Unparseable advance counts as zero.
	blank := AggregateRecord(areas, "tbd")
	almostEqual(t, "Balance", blank.Balance, 9982.23)
}

func TestPriceRecordRefreshesTotals(t *testing.T) {
	cat := models.DefaultCatalogue()
	rec := models.SavedRecord{
		ID:         "1714003117845",
		ClientName: "Al Noor Villas",
		Areas: []models.AreaMeasurement{
			{Length: "3", Width: "2", MaterialRate: 150},
		},
		GrandTotal: 1, // stale
		Advance:    "1000",
		Balance:    1, // stale
	}

	got := PriceRecord(rec, cat)

	wantTotal := 3 * 2 * MeterToFeet * MeterToFeet * 150
	almostEqual(t, "GrandTotal", float64(got.GrandTotal), wantTotal)
	almostEqual(t, "Balance", float64(got.Balance), wantTotal-1000)
}

func TestPriceRecordDefaultsAdvance(t *testing.T) {
	got := PriceRecord(models.SavedRecord{}, models.DefaultCatalogue())
	if string(got.Advance) != "0" {
		t.Fatalf("Advance = %q, want %q", got.Advance, "0")
	}
}
