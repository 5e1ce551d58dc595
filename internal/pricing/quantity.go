package pricing

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"printworks/internal/domain"
)

// YardInMeters is the exact international yard.
const YardInMeters = 0.9144

// MaxAmount bounds every numeric form value. Larger values, and values
// written with more than maxAmountLength characters or an exponent beyond
// maxExponent, are out of range and read as non-numeric.
const MaxAmount = 1e12

const (
	maxAmountLength = 32
	maxExponent     = 15
)

var (
	yardFactor    = decimal.NewFromFloat(YardInMeters)
	maxAmount     = decimal.NewFromFloat(MaxAmount)
	numericPrefix = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)
)

type scanStatus int

const (
	scanNone scanStatus = iota
	scanOK
	scanOutOfRange
)

// ParseAmount reads the leading number of a form value the way browsers do
// for parseFloat: "12.5m" is 12.5, anything without a numeric prefix is 0.
// Out-of-range values are 0 as well.
func ParseAmount(s string) float64 {
	d, ok := parseDecimal(s)
	if !ok {
		return 0
	}
	return d.InexactFloat64()
}

// IsNumeric reports whether the value has a usable numeric prefix.
func IsNumeric(s string) bool {
	_, ok := parseDecimal(s)
	return ok
}

// OutOfRange reports whether the value starts with a number that is too
// large or too long to be used.
func OutOfRange(s string) bool {
	_, status := scanAmount(s)
	return status == scanOutOfRange
}

func parseDecimal(s string) (decimal.Decimal, bool) {
	d, status := scanAmount(s)
	return d, status == scanOK
}

// scanAmount bounds length and exponent before the decimal is built;
// rescaling a decimal with a huge exponent never finishes.
func scanAmount(s string) (decimal.Decimal, scanStatus) {
	m := numericPrefix.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return decimal.Zero, scanNone
	}
	if len(m[0]) > maxAmountLength {
		return decimal.Zero, scanOutOfRange
	}
	if m[2] != "" {
		exp, err := strconv.Atoi(m[2][1:])
		if err != nil || exp > maxExponent || exp < -maxExponent {
			return decimal.Zero, scanOutOfRange
		}
	}

	d, err := decimal.NewFromString(m[0])
	if err != nil {
		f, ferr := strconv.ParseFloat(m[0], 64)
		if ferr != nil {
			return decimal.Zero, scanNone
		}
		d = decimal.NewFromFloat(f)
	}
	if d.Abs().GreaterThan(maxAmount) {
		return decimal.Zero, scanOutOfRange
	}
	return d, scanOK
}

func amount(s string) decimal.Decimal {
	d, _ := parseDecimal(s)
	return d
}

func YardToMeter(yards float64) float64 {
	return yards * YardInMeters
}

func MeterToYard(meters float64) float64 {
	return meters / YardInMeters
}

// NormalizeQuantity converts a quantity to meters. Pieces and unknown units
// pass through unchanged.
func NormalizeQuantity(qty string, unit domain.Unit) float64 {
	return normalize(amount(qty), unit).InexactFloat64()
}

func normalize(qty decimal.Decimal, unit domain.Unit) decimal.Decimal {
	if unit == domain.UnitYard {
		return qty.Mul(yardFactor)
	}
	return qty
}
