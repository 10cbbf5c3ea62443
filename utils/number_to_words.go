package utils

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var ones = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen",
	"Sixteen", "Seventeen", "Eighteen", "Nineteen",
}

var tens = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}

// NumberToWords spells an integer using the Indian grouping (Lakh, Crore),
// which is what export paperwork from Indian banks expects.
func NumberToWords(num int) string {
	switch {
	case num == 0:
		return ""
	case num < 20:
		return ones[num]
	case num < 100:
		return strings.TrimSpace(tens[num/10] + " " + ones[num%10])
	case num < 1000:
		remainder := num % 100
		if remainder == 0 {
			return ones[num/100] + " Hundred"
		}
		return ones[num/100] + " Hundred " + NumberToWords(remainder)
	case num < 100000:
		remainder := num % 1000
		if remainder == 0 {
			return NumberToWords(num/1000) + " Thousand"
		}
		return NumberToWords(num/1000) + " Thousand " + NumberToWords(remainder)
	case num < 10000000:
		remainder := num % 100000
		if remainder == 0 {
			return NumberToWords(num/100000) + " Lakh"
		}
		return NumberToWords(num/100000) + " Lakh " + NumberToWords(remainder)
	default:
		remainder := num % 10000000
		if remainder == 0 {
			return NumberToWords(num/10000000) + " Crore"
		}
		return NumberToWords(num/10000000) + " Crore " + NumberToWords(remainder)
	}
}

type currencyUnits struct {
	major string
	minor string
}

var currencies = map[string]currencyUnits{
	"INR": {"Rupees", "Paise"},
	"USD": {"Dollars", "Cents"},
}

// AmountInWords renders an invoice total as words, e.g.
// "One Lakh Twenty Three Thousand Dollars and Forty Five Cents Only".
func AmountInWords(amount decimal.Decimal, currency string) string {
	units, ok := currencies[strings.ToUpper(currency)]
	if !ok {
		units = currencyUnits{major: strings.ToUpper(currency), minor: ""}
	}

	major := amount.IntPart()
	minor := amount.Sub(decimal.NewFromInt(major)).Mul(decimal.NewFromInt(100)).Round(0).IntPart()

	var parts []string
	if major > 0 {
		parts = append(parts, fmt.Sprintf("%s %s", strings.TrimSpace(NumberToWords(int(major))), units.major))
	}
	if minor > 0 && units.minor != "" {
		parts = append(parts, fmt.Sprintf("%s %s", strings.TrimSpace(NumberToWords(int(minor))), units.minor))
	}
	if len(parts) == 0 {
		return "Zero " + units.major + " Only"
	}
	return strings.Join(parts, " and ") + " Only"
}
