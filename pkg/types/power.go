package types

import (
	"fmt"
	"math"
)

// Watts is a float64 wrapper representing power in Watts.
type Watts float64

// Humanized returns a human-readable string with automatic unit (nW..MW).
func (w Watts) Humanized() string {
	v := float64(w)
	av := math.Abs(v)
	switch {
	case av == 0:
		return "0 W"
	case av >= 1e6:
		return fmt.Sprintf("%.2f MW", v/1e6)
	case av >= 1e3:
		return fmt.Sprintf("%.2f kW", v/1e3)
	case av >= 1:
		return fmt.Sprintf("%.2f W", v)
	case av >= 1e-3:
		return fmt.Sprintf("%.2f mW", v*1e3)
	case av >= 1e-6:
		return fmt.Sprintf("%.2f µW", v*1e6)
	default:
		return fmt.Sprintf("%.2f nW", v*1e9)
	}
}

// Milli returns the power in milliwatts.
func (w Watts) Milli() float64 { return float64(w) * 1e3 }

// Kilo returns the power in kilowatts.
func (w Watts) Kilo() float64 { return float64(w) / 1e3 }

// Joules is a float64 wrapper representing energy in Joules.
type Joules float64

// Humanized returns a human-readable string with automatic unit (µJ..MJ).
func (j Joules) Humanized() string {
	v := float64(j)
	av := math.Abs(v)
	switch {
	case av == 0:
		return "0 J"
	case av >= 1e6:
		return fmt.Sprintf("%.2f MJ", v/1e6)
	case av >= 1e3:
		return fmt.Sprintf("%.2f kJ", v/1e3)
	case av >= 1:
		return fmt.Sprintf("%.2f J", v)
	case av >= 1e-3:
		return fmt.Sprintf("%.2f mJ", v*1e3)
	default:
		return fmt.Sprintf("%.2f µJ", v*1e6)
	}
}

// Wh returns the energy in watt-hours.
func (j Joules) Wh() float64 { return float64(j) / 3600 }
