package normalize

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var nonNumericRe = regexp.MustCompile(`[^0-9.]`)

// Revenue pulls the revenue out of a company payload and renders it as a
// human range ("$10M to $50M"). Accepts a two-element pair, a comma-joined
// numeric string, a min/max object, or a single number. Input it cannot
// parse comes back unchanged rather than dropped; this never fails.
func Revenue(raw Raw) string {
	var revenue any
	if rr, ok := raw["revenueRange"]; ok && rr != nil {
		if m, isMap := rr.(map[string]any); isMap {
			if s := scalar(m["string"]); s != "" {
				revenue = s
			} else {
				revenue = m
			}
		} else {
			revenue = rr
		}
	} else if r, ok := raw["revenue"]; ok && r != nil {
		revenue = r
	} else {
		revenue = raw["annualRevenue"]
	}
	if revenue == nil {
		return ""
	}
	return formatRevenue(revenue)
}

func formatRevenue(revenue any) string {
	var min, max float64
	var haveMin, haveMax bool

	switch v := revenue.(type) {
	case []any:
		if len(v) == 2 {
			min, haveMin = toAmount(v[0])
			max, haveMax = toAmount(v[1])
		}
	case string:
		if strings.Contains(v, ",") {
			parts := strings.SplitN(v, ",", 2)
			min, haveMin = parseAmount(parts[0])
			max, haveMax = parseAmount(parts[1])
		} else {
			if amt, ok := parseAmount(v); ok {
				return FormatMoney(amt)
			}
			return v
		}
	case map[string]any:
		if v["min"] != nil || v["max"] != nil {
			min, haveMin = toAmount(v["min"])
			max, haveMax = toAmount(v["max"])
		}
	default:
		if amt, ok := toAmount(revenue); ok {
			return FormatMoney(amt)
		}
		return fmt.Sprint(revenue)
	}

	switch {
	case haveMin && min > 0 && haveMax && max > 0:
		return FormatMoney(min) + " to " + FormatMoney(max)
	case haveMin && min > 0:
		return FormatMoney(min) + "+"
	case haveMax && max > 0:
		return "Up to " + FormatMoney(max)
	}

	// Parsing failed; hand the raw value back.
	if s, ok := revenue.(string); ok {
		return s
	}
	return fmt.Sprint(revenue)
}

// FormatMoney renders an amount as $NB / $NM / $NK, rounding to the nearest
// whole unit (half away from zero, so 1.5B becomes "$2B"). Amounts under a
// thousand render literally.
func FormatMoney(amount float64) string {
	if amount == 0 || math.IsNaN(amount) {
		return ""
	}
	switch {
	case amount >= 1e9:
		return fmt.Sprintf("$%dB", int64(math.Round(amount/1e9)))
	case amount >= 1e6:
		return fmt.Sprintf("$%dM", int64(math.Round(amount/1e6)))
	case amount >= 1e3:
		return fmt.Sprintf("$%dK", int64(math.Round(amount/1e3)))
	}
	return "$" + strconv.FormatFloat(amount, 'f', -1, 64)
}

func toAmount(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case string:
		return parseAmount(t)
	}
	return 0, false
}

// parseAmount strips everything but digits and dots before parsing, so
// "$5M" and "10,000" style inputs still yield a number.
func parseAmount(s string) (float64, bool) {
	clean := nonNumericRe.ReplaceAllString(s, "")
	if clean == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
