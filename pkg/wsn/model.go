package wsn

import "github.com/ja7ad/wsn/pkg/geom"

// Params holds the network's physical and electrical coefficients.
// Units:
//   - Rho: Watts per data unit received
//   - Alpha: dimensionless (distance exponent of the transmit cost)
//   - Beta1: Watts per data unit transmitted, distance-independent part
//   - Beta2: Watts per data unit transmitted, scaled by distance**Alpha
//   - ChargeRate: Joules per second delivered while charging
//   - MaxCharge/MinCharge: Joules (battery capacity / reliability floor)
//   - WCV: charging-vehicle station location; stored for the charging
//     subsystem, unused by the matrix logic
//   - Base: base-station location (matrix slot 0)
type Params struct {
	Rho        float64
	Alpha      float64
	Beta1      float64
	Beta2      float64
	ChargeRate float64
	MaxCharge  float64
	MinCharge  float64
	WCV        geom.Point
	Base       geom.Point
}

// _defaultParams returns Params pre-filled with free-space-like defaults.
func _defaultParams() *Params {
	return &Params{
		Rho:        50e-9,   // 50 nJ per data unit received
		Alpha:      2.0,     // free-space path-loss exponent
		Beta1:      50e-9,   // 50 nJ fixed transmit cost
		Beta2:      100e-12, // 100 pJ per m^Alpha
		ChargeRate: 5.0,     // 5 W wireless charging
		MaxCharge:  10800,   // 3 Wh battery
		MinCharge:  540,     // 5% reliability floor
	}
}

func (p *Params) validate() error {
	if !geom.Finite(p.Rho, p.Alpha, p.Beta1, p.Beta2, p.ChargeRate,
		p.MaxCharge, p.MinCharge, p.WCV.X, p.WCV.Y, p.Base.X, p.Base.Y) {
		return ErrInvalidConfig
	}
	return nil
}

// Summary aggregates the off-diagonal coefficients of a power matrix.
type Summary struct {
	Min  float64
	Max  float64
	Mean float64
}
