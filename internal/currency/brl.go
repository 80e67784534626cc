// Package currency formats amounts for display. Calculations never go
// through here; amounts are rounded only when they are shown.
package currency

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

const zeroBRL = "R$ 0,00"

// Round returns v rounded half away from zero to centavos.
func Round(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(2)
}

// FormatBRL renders v the way pt-BR shows money, e.g. "R$ 1.234,56".
// NaN and infinities render as zero.
func FormatBRL(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return zeroBRL
	}

	d := Round(v)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}

	fixed := d.StringFixed(2)
	intPart, frac, _ := strings.Cut(fixed, ".")
	return sign + "R$ " + group(intPart) + "," + frac
}

// group inserts thousands separators into a string of digits.
func group(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var sb strings.Builder
	head := len(digits) % 3
	if head > 0 {
		sb.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if sb.Len() > 0 {
			sb.WriteByte('.')
		}
		sb.WriteString(digits[i : i+3])
	}
	return sb.String()
}
