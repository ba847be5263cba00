package services

import "strings"

var wordsOnes = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven",
	"Eight", "Nine", "Ten", "Eleven", "Twelve", "Thirteen",
	"Fourteen", "Fifteen", "Sixteen", "Seventeen", "Eighteen", "Nineteen",
}

var wordsTens = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty",
	"Sixty", "Seventy", "Eighty", "Ninety",
}

// belowThousand spells a 0-999 group. Teens are looked up whole because
// they are irregular words, not tens+ones compositions.
func belowThousand(n int64) string {
	var s string
	if n > 99 {
		s += wordsOnes[n/100] + " Hundred "
		n %= 100
	}
	if n > 19 {
		s += wordsTens[n/10] + " "
		n %= 10
	}
	if n > 0 {
		s += wordsOnes[n]
	}
	return strings.TrimSpace(s)
}

// AmountInWords spells a non-negative integer amount using the Indian
// numbering grouping: crore (1e7), lakh (1e5), thousand (1e3), then a
// 0-999 remainder. Empty groups contribute nothing. The caller rounds any
// fractional total before calling; the converter never sees fractions.
func AmountInWords(amount int64) string {
	if amount <= 0 {
		return "Zero"
	}

	var parts []string
	if crores := amount / 10000000; crores > 0 {
		// Amounts past 999 crore regroup recursively instead of indexing
		// past the digit tables.
		parts = append(parts, AmountInWords(crores), "Crore")
		amount %= 10000000
	}
	if lakhs := amount / 100000; lakhs > 0 {
		parts = append(parts, belowThousand(lakhs), "Lakh")
		amount %= 100000
	}
	if thousands := amount / 1000; thousands > 0 {
		parts = append(parts, belowThousand(thousands), "Thousand")
		amount %= 1000
	}
	if amount > 0 {
		parts = append(parts, belowThousand(amount))
	}

	return strings.Join(parts, " ")
}
