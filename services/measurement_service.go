package services

import (
	"strconv"
	"strings"

	"backend/models"
)

// MeterToFeet converts meter dimensions to feet for sqft area pricing.
const MeterToFeet = 3.28084

// extrasFactor is the linear meter-to-feet factor used for additional-cost
// quantities. It is intentionally NOT MeterToFeet squared: the rate card
// and every saved record were built against this figure, so changing it
// would silently alter historical totals.
const extrasFactor = 3.28

// ParseAmount converts user-entered numeric text to a non-negative float.
// Missing, partial or invalid input prices as 0 so the engine never fails
// while the user is still typing.
func ParseAmount(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// PriceArea computes every derived cost field of one area from its raw
// inputs. Pure: the input value is not modified, nested slices are copied
// before their calculated fields are filled in.
//
// areaSqft uses the squared meter-to-feet factor; the additional-cost
// quantity uses the linear extrasFactor (see the constant above).
func PriceArea(area models.AreaMeasurement, cat models.Catalogue) models.AreaMeasurement {
	length := ParseAmount(area.Length)
	width := ParseAmount(area.Width)

	areaSqft := length * width * MeterToFeet * MeterToFeet
	baseCost := areaSqft * (area.MaterialRate + area.ThicknessRate)

	extraQty := length * width * extrasFactor
	var extrasCost float64
	for _, add := range cat.Additionals {
		if !area.Additionals[add.Key] {
			continue
		}
		rate, ok := area.AdditionalRates[add.Key]
		if !ok {
			rate = add.Rate
		}
		extrasCost += extraQty * rate
	}

	for _, e := range area.BulkCuttingEntries {
		extrasCost += ParseAmount(e.Length) * ParseAmount(e.Runs) * ParseAmount(e.Rate)
	}
	for _, e := range area.OtherCustomEntries {
		extrasCost += ParseAmount(e.Length) * ParseAmount(e.Runs) * ParseAmount(e.Rate)
	}

	totalSqft := areaSqft
	var attachedBaseCost float64
	rooms := make([]models.AttachedRoom, len(area.AttachedRooms))
	copy(rooms, area.AttachedRooms)
	for i := range rooms {
		roomSqft := ParseAmount(rooms[i].Length) * ParseAmount(rooms[i].Width) * MeterToFeet * MeterToFeet
		rooms[i].RoomSqft = roomSqft
		rooms[i].RoomCost = roomSqft * (rooms[i].MaterialRate + rooms[i].ThicknessRate)
		attachedBaseCost += rooms[i].RoomCost
		totalSqft += roomSqft
	}
	area.AttachedRooms = rooms

	var extraExpensesCost float64
	for _, e := range area.ExtraExpenses {
		extraExpensesCost += ParseAmount(e.Amount)
	}

	area.Area = areaSqft
	area.TotalSqft = totalSqft
	area.BaseCost = baseCost
	area.AttachedBaseCost = attachedBaseCost
	area.ExtrasCost = extrasCost
	area.ExtraExpensesCost = extraExpensesCost
	area.TotalCost = baseCost + attachedBaseCost + extrasCost + extraExpensesCost
	return area
}

// AggregateRecord sums priced areas into the record-level totals. Balance
// may go negative on overpayment; that is data, not an error.
func AggregateRecord(areas []models.AreaMeasurement, advance string) models.RecordTotals {
	var grandTotal float64
	for _, a := range areas {
		grandTotal += a.TotalCost
	}
	return models.RecordTotals{
		GrandTotal: grandTotal,
		Balance:    grandTotal - ParseAmount(advance),
	}
}

// PriceRecord reprices every area of a record and refreshes the record
// totals. Handlers call this before every write so persisted computed
// fields are never out of sync with their inputs.
func PriceRecord(rec models.SavedRecord, cat models.Catalogue) models.SavedRecord {
	areas := make([]models.AreaMeasurement, len(rec.Areas))
	for i, a := range rec.Areas {
		areas[i] = PriceArea(a, cat)
	}
	rec.Areas = areas

	totals := AggregateRecord(areas, string(rec.Advance))
	rec.GrandTotal = models.FlexNumber(totals.GrandTotal)
	rec.Balance = models.FlexNumber(totals.Balance)
	if strings.TrimSpace(string(rec.Advance)) == "" {
		rec.Advance = "0"
	}
	return rec
}
