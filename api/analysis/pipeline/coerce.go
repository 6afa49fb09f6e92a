package pipeline

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"ExtratoAnalytics/api/constants"
)

var datePattern = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)

// ParseAmount coerces a monetary cell into a non-negative value. Accepts
// numbers as well as Brazilian-formatted strings ("R$ 1.234,56"); anything
// unparseable coerces to 0.
func ParseAmount(v interface{}) float64 {
	d, ok := parseSignedDecimal(v)
	if !ok {
		return 0
	}
	return d.Abs().InexactFloat64()
}

// ParseSignedAmount keeps the sign; the ok result distinguishes a genuine zero
// from an unparseable cell.
func ParseSignedAmount(v interface{}) (float64, bool) {
	d, ok := parseSignedDecimal(v)
	if !ok {
		return 0, false
	}
	return d.InexactFloat64(), true
}

func parseSignedDecimal(v interface{}) (decimal.Decimal, bool) {
	switch t := v.(type) {
	case float64:
		return decimal.NewFromFloat(t), true
	case float32:
		return decimal.NewFromFloat32(t), true
	case int:
		return decimal.NewFromInt(int64(t)), true
	case int64:
		return decimal.NewFromInt(t), true
	case string:
		return parseDecimalString(t)
	}
	return decimal.Zero, false
}

func parseDecimalString(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "R$", "")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return decimal.Zero, false
	}
	hasComma := strings.Contains(s, ",")
	hasDot := strings.Contains(s, ".")
	switch {
	case hasComma && hasDot:
		// dots are thousands separators
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	case hasComma:
		s = strings.ReplaceAll(s, ",", ".")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// ParseDate accepts strictly DD/MM/YYYY calendar dates; anything else,
// including impossible dates like 31/02, yields nil.
func ParseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if !datePattern.MatchString(s) {
		return nil
	}
	t, err := time.Parse(constants.DateFormatBR, s)
	if err != nil {
		return nil
	}
	return &t
}
