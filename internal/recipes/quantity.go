package recipes

import (
	"math"
	"strconv"
	"strings"
)

// ParseQuantity parses a free-form ingredient quantity: a whole number, a
// simple fraction ("3/4"), or a space-separated mixed number ("1 1/2").
// Tokens are summed; any bad token fails the whole parse. Unit text must be
// separated out before calling.
func ParseQuantity(raw string) (float64, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, false
	}

	var total float64
	for _, token := range strings.Split(trimmed, " ") {
		value, ok := parseQuantityToken(token)
		if !ok {
			return 0, false
		}
		total += value
	}
	return total, true
}

func parseQuantityToken(token string) (float64, bool) {
	if strings.Contains(token, "/") {
		parts := strings.Split(token, "/")
		if len(parts) != 2 {
			return 0, false
		}
		numerator, ok := parseFinite(parts[0])
		if !ok {
			return 0, false
		}
		denominator, ok := parseFinite(parts[1])
		if !ok || denominator == 0 {
			return 0, false
		}
		return numerator / denominator, true
	}
	return parseFinite(token)
}

func parseFinite(s string) (float64, bool) {
	value, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(value, 0) || math.IsNaN(value) {
		return 0, false
	}
	return value, true
}

// ScaleQuantity renders a quantity string multiplied by scale. A scale of 1
// returns raw verbatim, preserving the author's original formatting. When raw
// doesn't parse, the original text is annotated with the multiplier instead of
// showing wrong data.
func ScaleQuantity(raw string, scale float64) string {
	if raw == "" {
		return ""
	}
	if scale == 1 {
		return raw
	}

	value, ok := ParseQuantity(raw)
	if !ok {
		return raw + " (x" + FormatAmount(scale) + ")"
	}
	return FormatAmount(value * scale)
}

// FormatAmount renders a numeric amount with no decimal point when whole,
// otherwise rounded to at most 2 decimal places with trailing zeros stripped.
// The 2-decimal rounding is accepted lossy display behavior (1/3 shows as
// 0.33), kept to match what readers already see.
func FormatAmount(value float64) string {
	if value == math.Trunc(value) {
		return strconv.FormatFloat(value, 'f', 0, 64)
	}
	s := strconv.FormatFloat(value, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
