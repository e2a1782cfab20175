// Package view builds and renders the dashboard's HTML sections
package view

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

var turkishMonths = [...]string{
	"Ocak", "Şubat", "Mart", "Nisan", "Mayıs", "Haziran",
	"Temmuz", "Ağustos", "Eylül", "Ekim", "Kasım", "Aralık",
}

// Currency formats an amount as Turkish lira: dot thousands grouping,
// comma decimals, fractional digits only when present. 1200 renders as
// ₺1.200 and 906.25 as ₺906,25.
func Currency(amount decimal.Decimal) string {
	amount = amount.Round(2)
	neg := amount.IsNegative()
	abs := amount.Abs()

	whole := abs.Floor()
	cents := abs.Sub(whole).Mul(decimal.NewFromInt(100)).Round(0).IntPart()

	out := "₺" + groupThousands(whole.String())
	if cents > 0 {
		out += fmt.Sprintf(",%02d", cents)
	}
	if neg {
		return "-" + out
	}
	return out
}

// CurrencyInt formats a whole lira amount
func CurrencyInt(amount int64) string {
	return Currency(decimal.NewFromInt(amount))
}

func groupThousands(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	var b strings.Builder
	head := n % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteString(".")
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// LongDate renders an ISO date as the Turkish long form, "2 Ocak 2025".
// Unparseable input is returned untouched.
func LongDate(isoDate string) string {
	var y, m, d int
	if _, err := fmt.Sscanf(isoDate, "%d-%d-%d", &y, &m, &d); err != nil || m < 1 || m > 12 {
		return isoDate
	}
	return fmt.Sprintf("%d %s %d", d, turkishMonths[m-1], y)
}

// TitleWords lowercases, splits on underscores, and title-cases each
// word: "ahmet_yilmaz" becomes "Ahmet Yilmaz".
func TitleWords(s string) string {
	words := strings.Split(strings.ToLower(s), "_")
	for i, w := range words {
		runes := []rune(w)
		if len(runes) > 0 {
			runes[0] = unicode.ToUpper(runes[0])
		}
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

// RiskScore formats a risk score to four decimals
func RiskScore(score float64) string {
	return fmt.Sprintf("%.4f", score)
}

// FaultDistance rounds the fault distance to whole kilometers
func FaultDistance(km float64) string {
	return fmt.Sprintf("%.0f km", km)
}

// Percent renders a ratio as a percentage
func Percent(ratio float64) string {
	return fmt.Sprintf("%.0f%%", ratio*100)
}
