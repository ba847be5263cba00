package models

// Material is one catalogue entry for a board/ceiling material with its
// default rate per sqft. The rate is only a default: every area keeps its
// own editable copy.
type Material struct {
	Name string  `json:"name" example:"Gypsum Board"`
	Rate float64 `json:"rate" example:"120"`
}

// ThicknessTier maps a board thickness in mm to the extra rate added on top
// of the material rate.
type ThicknessTier struct {
	MM        int     `json:"mm" example:"8"`
	ExtraRate float64 `json:"extra_rate" example:"10"`
}

// Additional is an optional finishing operation priced per linear quantity.
type Additional struct {
	Key   string  `json:"key" example:"cornerBeading"`
	Label string  `json:"label" example:"Corner Beading"`
	Rate  float64 `json:"rate" example:"15"`
}

// Catalogue bundles the static pricing configuration the measurement engine
// is parameterized over. Treat values returned by DefaultCatalogue as
// immutable; tests may build synthetic catalogues instead.
type Catalogue struct {
	Materials   []Material      `json:"materials"`
	Thicknesses []ThicknessTier `json:"thicknesses"`
	Additionals []Additional    `json:"additionals"`
}

// DefaultCatalogue returns the production rate card.
func DefaultCatalogue() Catalogue {
	return Catalogue{
		Materials: []Material{
			{Name: "Gypsum MR Board (Kool Brand)", Rate: 150},
			{Name: "Gypsum Board", Rate: 120},
			{Name: "Gypsum Partition", Rate: 180},
			{Name: "Glass Wool", Rate: 60},
			{Name: "Grid Ceiling", Rate: 110},
			{Name: "Aluminium Grid Ceiling", Rate: 140},
			{Name: "Cement Board", Rate: 200},
		},
		Thicknesses: []ThicknessTier{
			{MM: 6, ExtraRate: 0},
			{MM: 8, ExtraRate: 10},
			{MM: 10, ExtraRate: 20},
			{MM: 12, ExtraRate: 35},
			{MM: 18, ExtraRate: 60},
		},
		Additionals: []Additional{
			{Key: "cornerBeading", Label: "Corner Beading", Rate: 15},
			{Key: "accessPanel", Label: "Access Panel", Rate: 25},
			{Key: "cutting", Label: "Cuttings", Rate: 20},
			{Key: "bulkCutting", Label: "Bulk Cutting", Rate: 30},
			{Key: "profiling", Label: "Profiling", Rate: 40},
		},
	}
}

// MaterialRate looks up the default rate for a material name. Unknown
// materials resolve to 0 so a half-typed custom name never breaks pricing.
func (c Catalogue) MaterialRate(name string) float64 {
	for _, m := range c.Materials {
		if m.Name == name {
			return m.Rate
		}
	}
	return 0
}

// ThicknessExtra looks up the extra rate for a thickness in mm.
func (c Catalogue) ThicknessExtra(mm int) float64 {
	for _, t := range c.Thicknesses {
		if t.MM == mm {
			return t.ExtraRate
		}
	}
	return 0
}

// DefaultAdditionalRates returns a fresh key→rate map for a new area.
func (c Catalogue) DefaultAdditionalRates() map[string]float64 {
	rates := make(map[string]float64, len(c.Additionals))
	for _, a := range c.Additionals {
		rates[a.Key] = a.Rate
	}
	return rates
}

// AdditionalLabel resolves the display label for an additional key.
func (c Catalogue) AdditionalLabel(key string) string {
	for _, a := range c.Additionals {
		if a.Key == key {
			return a.Label
		}
	}
	return key
}
