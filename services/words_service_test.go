package services

import "testing"

func TestAmountInWords(t *testing.T) {
	cases := []struct {
		amount int64
		want   string
	}{
		{0, "Zero"},
		{-5, "Zero"},
		{7, "Seven"},
		{13, "Thirteen"},
		{19, "Nineteen"},
		{20, "Twenty"},
		{40, "Forty"},
		{99, "Ninety Nine"},
		{100, "One Hundred"},
		{105, "One Hundred Five"},
		{999, "Nine Hundred Ninety Nine"},
		{1000, "One Thousand"},
		{2100, "Two Thousand One Hundred"},
		{99999, "Ninety Nine Thousand Nine Hundred Ninety Nine"},
		{100000, "One Lakh"},
		{1234567, "Twelve Lakh Thirty Four Thousand Five Hundred Sixty Seven"},
		{10000000, "One Crore"},
		{10000001, "One Crore One"},
		{99999999, "Nine Crore Ninety Nine Lakh Ninety Nine Thousand Nine Hundred Ninety Nine"},
	}

	for _, tc := range cases {
		if got := AmountInWords(tc.amount); got != tc.want {
			t.Errorf("AmountInWords(%d) = %q, want %q", tc.amount, got, tc.want)
		}
	}
}

func TestAmountInWordsBeyondThousandCrore(t *testing.T) {
	// Amounts past 999 crore regroup the crore count instead of failing.
	got := AmountInWords(12345678912)
	want := "One Thousand Two Hundred Thirty Four Crore Fifty Six Lakh Seventy Eight Thousand Nine Hundred Twelve"
	if got != want {
		t.Fatalf("AmountInWords(12345678912) = %q, want %q", got, want)
	}
}

func TestRoundedTotal(t *testing.T) {
	cases := []struct {
		in   float64
		want int64
	}{
		{2100.0, 2100},
		{2100.49, 2100},
		{2100.5, 2101},
		{0.4, 0},
	}
	for _, tc := range cases {
		if got := RoundedTotal(tc.in); got != tc.want {
			t.Errorf("RoundedTotal(%v) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
