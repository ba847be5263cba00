package models

// BulkCuttingEntry is an ad-hoc priced cutting line inside one area.
// Dimensions arrive as text because the client keyboard allows partial
// entry; anything unparseable prices as zero.
type BulkCuttingEntry struct {
	Name   string `json:"name,omitempty" example:"Duct run"`
	Length string `json:"length" example:"2.5"`
	Runs   string `json:"runs" example:"3"`
	Rate   string `json:"rate" example:"30"`
}

// OtherCustomEntry is a free-form priced line, same shape as bulk cutting.
type OtherCustomEntry struct {
	Name   string `json:"name" example:"Curtain pelmet"`
	Length string `json:"length" example:"4"`
	Runs   string `json:"runs" example:"1"`
	Rate   string `json:"rate" example:"45"`
}

// ExtraExpense is a flat description+amount line added to an area total.
type ExtraExpense struct {
	Description string `json:"description" example:"Scaffolding rental"`
	Amount      string `json:"amount" example:"250"`
}

// AttachedRoom is a sub-zone priced with the base area formula only
// (no additionals, no further nesting) and rolled into its parent.
type AttachedRoom struct {
	Title              string  `json:"title" example:"Store room"`
	Length             string  `json:"length" example:"2"`
	Width              string  `json:"width" example:"1.5"`
	Material           string  `json:"material" example:"Gypsum Board"`
	CustomMaterialName string  `json:"customMaterialName,omitempty"`
	MaterialRate       float64 `json:"materialRate" example:"120"`
	Thickness          int     `json:"thickness" example:"6"`
	ThicknessRate      float64 `json:"thicknessRate" example:"0"`

	// calculated
	RoomSqft float64 `json:"roomSqft" example:"32.29"`
	RoomCost float64 `json:"roomCost" example:"3875.1"`
}

// AreaMeasurement is one priced zone of work. User-entered fields hold raw
// text; the calculated block is owned by the pricing engine and must never
// be edited directly. Field names follow the mobile client's storage keys.
type AreaMeasurement struct {
	Title              string `json:"title" example:"Living room ceiling"`
	Length             string `json:"length" example:"3"`
	Width              string `json:"width" example:"2"`
	Material           string `json:"material" example:"Gypsum MR Board (Kool Brand)"`
	CustomMaterialName string `json:"customMaterialName,omitempty"`

	MaterialRate  float64 `json:"materialRate" example:"150"`
	Thickness     int     `json:"thickness" example:"6"`
	ThicknessRate float64 `json:"thicknessRate" example:"0"`

	Additionals       map[string]bool    `json:"additionals"`
	AdditionalRates   map[string]float64 `json:"additionalRates"`
	AdditionalLengths map[string]string  `json:"additionalLengths,omitempty"`

	BulkCuttingEntries []BulkCuttingEntry `json:"bulkCuttingEntries,omitempty"`
	OtherCustomEntries []OtherCustomEntry `json:"otherCustomEntries,omitempty"`
	ExtraExpenses      []ExtraExpense     `json:"extraExpenses,omitempty"`
	AttachedRooms      []AttachedRoom     `json:"attachedRooms,omitempty"`

	// calculated
	Area              float64 `json:"area" example:"64.58"`
	TotalSqft         float64 `json:"totalSqft" example:"64.58"`
	BaseCost          float64 `json:"baseCost" example:"9687.03"`
	AttachedBaseCost  float64 `json:"attachedBaseCost" example:"0"`
	ExtrasCost        float64 `json:"extrasCost" example:"295.2"`
	ExtraExpensesCost float64 `json:"extraExpensesCost" example:"0"`
	TotalCost         float64 `json:"totalCost" example:"9982.23"`
}

// SavedRecord is a client's full measurement job. Mutated only by full
// replacement; grandTotal and balance are recomputed server-side before
// every write.
// Older app builds stored grandTotal/balance as strings and advance as a
// number, so the three money fields use the tolerant Flex types.
type SavedRecord struct {
	ID         string            `json:"id" example:"1714003117845"`
	Date       string            `json:"date" example:"26/08/2026, 10:30:00"`
	Country    string            `json:"country" example:"UAE"`
	ClientName string            `json:"clientName" example:"Al Noor Villas"`
	Areas      []AreaMeasurement `json:"areas"`
	GrandTotal FlexNumber        `json:"grandTotal" example:"9982.23"`
	Advance    FlexString        `json:"advance" example:"5000"`
	Balance    FlexNumber        `json:"balance" example:"4982.23"`
}

// PriceAreaRequest is the body for the stateless pricing endpoint.
type PriceAreaRequest struct {
	Area AreaMeasurement `json:"area"`
}

// RecordTotals is the aggregation result over a record's areas.
type RecordTotals struct {
	GrandTotal float64 `json:"grandTotal" example:"9982.23"`
	Balance    float64 `json:"balance" example:"4982.23"`
}
