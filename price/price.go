// Package price implements the fixed-point tick representation used
// throughout the matching engine. No float comparisons happen on the
// hot path; every price that can affect matching is an integer tick
// count.
package price

import "math"

// Ticks is an integer price expressed in the book's configured tick
// size. Signed so that NoPrice can be a sentinel distinct from any
// valid price.
type Ticks int64

// NoPrice marks the absence of a limit price: an empty side of the
// book, or a Market order, which never carries a limit.
const NoPrice Ticks = -1

// Converter converts between real prices and ticks for one configured
// tick size. Zero value is invalid; use NewConverter.
type Converter struct {
	tickSize float64
}

// NewConverter builds a Converter for a positive tick size.
func NewConverter(tickSize float64) Converter {
	if tickSize <= 0 {
		panic("price: tick size must be positive")
	}
	return Converter{tickSize: tickSize}
}

// ToTicks rounds a real price to the nearest tick.
func (c Converter) ToTicks(real float64) Ticks {
	return Ticks(math.Round(real / c.tickSize))
}

// ToReal converts ticks back to a real price.
func (c Converter) ToReal(t Ticks) float64 {
	return float64(t) * c.tickSize
}
