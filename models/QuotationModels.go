package models

// QuotationItem is one priced work line. The line total is always derived
// as qty × rate and never stored. Qty and rate arrive as text so a row
// keeps its identity while the user is still typing; invalid numbers price
// as zero.
type QuotationItem struct {
	Desc string `json:"desc" example:"False ceiling - living room"`
	Qty  string `json:"qty" example:"2"`
	Rate string `json:"rate" example:"500"`
}

// MaterialEntry is a descriptive "common materials" catalogue row shown on
// the quotation document. Images are opaque references (data URIs or file
// paths) passed through to the renderer; never priced.
type MaterialEntry struct {
	Name        string   `json:"name" example:"Knauf MR Board 12mm"`
	Description string   `json:"description" example:"Moisture resistant board for wet areas"`
	Images      []string `json:"images,omitempty"`
}

// SavedQuotation is a full client quotation. Subtotal, taxAmount and total
// are always recomputed together whenever items or the tax rate change.
// Quotations saved by older app builds carry paymentTerms/excludingWork as
// one newline-joined string and taxRatePercent as text like "5%"; the
// StringList and FlexNumber types absorb both shapes on decode.
type SavedQuotation struct {
	ID          string `json:"id" example:"1714003117845"`
	Date        string `json:"date" example:"26/08/2026"`
	Country     string `json:"country" example:"UAE"`
	Client      string `json:"client" example:"Emirates Hills Villa 12"`
	Consultant  string `json:"consultant" example:"Apex Consultants"`
	Project     string `json:"project" example:"Villa renovation"`
	PlotNo      string `json:"plotNo" example:"P-214"`
	QuotationNo string `json:"quotationNo" example:"QT48213"`
	Duration    string `json:"duration" example:"21 working days"`

	Items     []QuotationItem `json:"items"`
	Materials []MaterialEntry `json:"materials,omitempty"`

	Subtotal  float64 `json:"subtotal" example:"2000"`
	TaxAmount float64 `json:"vat" example:"100"`
	Total     float64 `json:"total" example:"2100"`

	TaxRatePercent FlexNumber `json:"taxRatePercent" example:"5"`
	CurrencySymbol string     `json:"currencySymbol" example:"AED"`
	TaxLabel       string     `json:"taxLabel" example:"VAT"`

	Message        string     `json:"message"`
	StandardMethod string     `json:"standardMethod"`
	Conditions     StringList `json:"conditions"`
	PaymentTerms   StringList `json:"paymentTerms"`
	ExcludingWork  StringList `json:"excludingWork"`
}

// QuotationTotals carries the three derived figures plus the spelled-out
// total handed to the document renderer.
type QuotationTotals struct {
	Subtotal     float64 `json:"subtotal" example:"2000"`
	TaxAmount    float64 `json:"taxAmount" example:"100"`
	Total        float64 `json:"total" example:"2100"`
	TotalInWords string  `json:"totalInWords" example:"Two Thousand One Hundred"`
}

// PriceQuotationRequest is the body for the stateless quotation pricing
// endpoint.
type PriceQuotationRequest struct {
	Items          []QuotationItem `json:"items"`
	TaxRatePercent float64         `json:"taxRatePercent" example:"5"`
}

// Locale is the currency symbol and tax label resolved once from country.
type Locale struct {
	CurrencySymbol string  `json:"currencySymbol" example:"AED"`
	TaxLabel       string  `json:"taxLabel" example:"VAT"`
	TaxRatePercent float64 `json:"taxRatePercent" example:"5"`
}

// DefaultQuotationTemplate returns the boilerplate text blocks a new
// quotation starts from. Every list is a fresh copy the caller owns.
func DefaultQuotationTemplate() SavedQuotation {
	return SavedQuotation{
		Message: "Dear Sir/Madam,\n\nThank you for considering us for your gypsum and " +
			"interior works requirements. We truly appreciate the opportunity to provide " +
			"you with our quotation. With over 25+ years of experience, we are committed " +
			"to delivering premium quality workmanship, timely execution, and elegant " +
			"interior solutions. Below is the detailed cost breakdown for the proposed " +
			"scope of work.",
		StandardMethod: "We used ceiling materials details frame with Channels, channels " +
			"section to section 40cm distance, intermediate 80cm distance, angle support " +
			"100 meter and perimeter in wall side, powder joint compound two coat with fiber.",
		Conditions: StringList{
			"Electricity, Water and adequate work space will be provided by the client.",
			"Any other site obstacles will be handled by the client.",
			"If plywood work is required, client will provide the plywood materials.",
		},
		PaymentTerms: StringList{
			"50% Advance",
			"40% After framing",
			"Payments should clear within 10 days",
		},
		ExcludingWork: StringList{
			"Electrical work",
			"Civil work",
			"Painting work",
		},
	}
}
