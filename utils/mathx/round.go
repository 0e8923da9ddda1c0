// File: round.go
// Title: Decimal Rounding
// Description: Rounds float64 values to a number of decimal places using
//              exact rational arithmetic on their shortest decimal form.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-12
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation
// - 2026-10-14 v0.1.1: Half-away-from-zero for negative values

package mathx

import (
	"cmp"
	"math"
	"math/big"
	"strconv"
)

// DefaultDecimalPlaces is the precision RoundOff callers use when none is given
const DefaultDecimalPlaces = 2

// DefaultTrimLimit is the limit TrimValue callers use when none is given
const DefaultTrimLimit = 100

// RoundingMode defines how ties and remainders are resolved
type RoundingMode int

const (
	// RoundHalfAwayFromZero rounds 0.5 away from zero (commercial rounding)
	RoundHalfAwayFromZero RoundingMode = iota

	// RoundHalfEven rounds 0.5 to the nearest even digit (banker's rounding)
	RoundHalfEven

	// RoundDown drops the remainder (truncation toward zero)
	RoundDown

	// RoundUp rounds any remainder away from zero
	RoundUp
)

// String returns the mode name
func (m RoundingMode) String() string {
	switch m {
	case RoundHalfAwayFromZero:
		return "half-away"
	case RoundHalfEven:
		return "half-even"
	case RoundDown:
		return "down"
	case RoundUp:
		return "up"
	default:
		return "unknown"
	}
}

// ParseRoundingMode parses the names returned by RoundingMode.String
func ParseRoundingMode(s string) (RoundingMode, bool) {
	for _, m := range []RoundingMode{RoundHalfAwayFromZero, RoundHalfEven, RoundDown, RoundUp} {
		if m.String() == s {
			return m, true
		}
	}
	return RoundHalfAwayFromZero, false
}

// RoundOff rounds number to places decimal places, half away from zero.
// Negative places count as 0. NaN and infinities are returned unchanged.
func RoundOff(number float64, places int) float64 {
	return RoundOffMode(number, places, RoundHalfAwayFromZero)
}

// RoundOffMode rounds number to places decimal places using mode
func RoundOffMode(number float64, places int, mode RoundingMode) float64 {
	if math.IsNaN(number) || math.IsInf(number, 0) {
		return number
	}
	places = max(places, 0)

	exact, ok := new(big.Rat).SetString(strconv.FormatFloat(number, 'f', -1, 64))
	if !ok {
		return number
	}

	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(places)), nil)
	exact.Mul(exact, new(big.Rat).SetInt(scale))

	num, den := exact.Num(), exact.Denom()
	quo, rem := new(big.Int).QuoRem(num, den, new(big.Int))

	if rem.Sign() != 0 && roundsAway(quo, rem, den, mode) {
		if num.Sign() < 0 {
			quo.Sub(quo, big.NewInt(1))
		} else {
			quo.Add(quo, big.NewInt(1))
		}
	}

	result, _ := new(big.Rat).SetFrac(quo, scale).Float64()
	return result
}

// roundsAway decides whether the truncated quotient moves one unit away
// from zero. den is always positive.
func roundsAway(quo, rem, den *big.Int, mode RoundingMode) bool {
	twice := new(big.Int).Abs(rem)
	twice.Lsh(twice, 1)
	c := twice.Cmp(den)

	switch mode {
	case RoundHalfEven:
		return c > 0 || (c == 0 && quo.Bit(0) == 1)
	case RoundDown:
		return false
	case RoundUp:
		return true
	default:
		return c >= 0
	}
}

// TrimValue returns the lesser of value and limit
func TrimValue[T cmp.Ordered](value, limit T) T {
	return min(value, limit)
}
