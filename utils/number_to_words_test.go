package utils

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestNumberToWordsIndianGrouping(t *testing.T) {
	cases := []struct {
		n    int
		want string
	}{
		{0, ""},
		{7, "Seven"},
		{19, "Nineteen"},
		{42, "Forty Two"},
		{100, "One Hundred"},
		{512, "Five Hundred Twelve"},
		{1000, "One Thousand"},
		{100000, "One Lakh"},
		{123456, "One Lakh Twenty Three Thousand Four Hundred Fifty Six"},
		{10000000, "One Crore"},
		{12345678, "One Crore Twenty Three Lakh Forty Five Thousand Six Hundred Seventy Eight"},
	}
	for _, tc := range cases {
		if got := NumberToWords(tc.n); got != tc.want {
			t.Errorf("NumberToWords(%d) = %q, want %q", tc.n, got, tc.want)
		}
	}
}

func TestAmountInWords(t *testing.T) {
	cases := []struct {
		amount   string
		currency string
		want     string
	}{
		{"0", "INR", "Zero Rupees Only"},
		{"1180", "USD", "One Thousand One Hundred Eighty Dollars Only"},
		{"99.50", "INR", "Ninety Nine Rupees and Fifty Paise Only"},
		{"0.25", "USD", "Twenty Five Cents Only"},
	}
	for _, tc := range cases {
		amount, err := decimal.NewFromString(tc.amount)
		if err != nil {
			t.Fatal(err)
		}
		if got := AmountInWords(amount, tc.currency); got != tc.want {
			t.Errorf("AmountInWords(%s, %s) = %q, want %q", tc.amount, tc.currency, got, tc.want)
		}
	}
}
