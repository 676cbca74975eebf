package tycoon

import (
	"fmt"
	"math"
)

// Money is a fixed-point currency amount scaled by 1e4.
// All multiplicative formulas are computed in float64 and converted
// back exactly once, rounding half away from zero.
type Money int64

const MoneyScale = 10_000

func MoneyFromFloat(v float64) Money {
	return Money(math.Round(v * MoneyScale))
}

func MoneyFromInt(v int64) Money {
	return Money(v * MoneyScale)
}

func (m Money) Float() float64 {
	return float64(m) / MoneyScale
}

func (m Money) MulFloat(f float64) Money {
	return Money(math.Round(float64(m) * f))
}

func (m Money) String() string {
	return fmt.Sprintf("%.4f", m.Float())
}
