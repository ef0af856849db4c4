package converter

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// MaxDecimals is the largest precision Format honours. Past 15 places a
// float64 carries no more significant digits.
const MaxDecimals = 15

type format struct {
	decimals  int
	separator string
	thousands string
}

func defaultFormat() format {
	return format{
		decimals:  2,
		separator: ".",
		thousands: ",",
	}
}

// Option changes one formatting setting of Show
type Option func(*format)

// Decimals sets the number of decimal places
func Decimals(n int) Option {
	return func(f *format) {
		f.decimals = n
	}
}

// Separator sets the decimal separator
func Separator(s string) Option {
	return func(f *format) {
		f.separator = s
	}
}

// ThousandsSeparator sets the string placed between groups of thousands.
// An empty string disables grouping.
func ThousandsSeparator(s string) Option {
	return func(f *format) {
		f.thousands = s
	}
}

// Format renders n rounded half away from zero to the given number of
// decimals, with the integer part grouped by thousands. decimals is clamped
// to [0, MaxDecimals].
func Format(n float64, decimals int, sep, thousands string) string {
	switch {
	case math.IsNaN(n):
		return "NaN"
	case math.IsInf(n, 1):
		return "Inf"
	case math.IsInf(n, -1):
		return "-Inf"
	}

	if decimals < 0 {
		decimals = 0
	} else if decimals > MaxDecimals {
		decimals = MaxDecimals
	}

	digits := roundedDigits(math.Abs(n), decimals)
	if len(digits) <= decimals {
		digits = strings.Repeat("0", decimals-len(digits)+1) + digits
	}
	intPart := digits[:len(digits)-decimals]
	fracPart := digits[len(digits)-decimals:]

	var sb strings.Builder
	if n < 0 && strings.Trim(digits, "0") != "" {
		sb.WriteByte('-')
	}
	sb.WriteString(group(intPart, thousands))
	if decimals > 0 {
		sb.WriteString(sep)
		sb.WriteString(fracPart)
	}
	return sb.String()
}

// roundedDigits returns abs * 10^decimals rounded to an integer, as a string
// of decimal digits. The scaled value is first cut to 15 significant digits
// so binary noise such as 1.005*100 = 100.49999999999999 rounds up.
// From 1e15 the float64 has no noise left to cut, and from 2^53 every value
// is already an integer.
func roundedDigits(abs float64, decimals int) string {
	scaled := abs * math.Pow10(decimals)
	if math.IsInf(scaled, 0) || scaled >= 1<<53 {
		return strings.Replace(strconv.FormatFloat(abs, 'f', decimals, 64), ".", "", 1)
	}
	if scaled >= 1e15 {
		return strconv.FormatFloat(math.Round(scaled), 'f', 0, 64)
	}
	pre, err := strconv.ParseFloat(strconv.FormatFloat(scaled, 'g', 15, 64), 64)
	if err != nil {
		pre = scaled
	}
	return strconv.FormatFloat(math.Round(pre), 'f', 0, 64)
}

func group(intPart, thousands string) string {
	if thousands == "" {
		return intPart
	}
	b, ok := new(big.Int).SetString(intPart, 10)
	if !ok {
		return intPart
	}
	grouped := humanize.BigComma(b)
	if thousands != "," {
		grouped = strings.ReplaceAll(grouped, ",", thousands)
	}
	return grouped
}
