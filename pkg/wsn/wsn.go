package wsn

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/ja7ad/wsn/pkg/geom"
	"github.com/ja7ad/wsn/pkg/matrix"
)

// baseSlot is the fixed power-matrix index reserved for the base station.
const baseSlot = 0

// Network is a wireless sensor network: an ordered node sequence, the
// physical parameters, and the pairwise transmission power-coefficient
// matrix over {base station, nodes...}.
//
// Nodes, Params and Power may be read freely; mutate only through
// BuildPowerMatrix, AddSensor and RemoveSensor so the node sequence and the
// matrix stay in lockstep. Power always has dimension len(Nodes)+1, is
// symmetric, and has a zero diagonal.
type Network struct {
	Nodes  []Node
	Params Params
	Power  *matrix.Square
}

// New creates a network and performs the full matrix build.
// A nil cfg selects _defaultParams. Non-finite parameters or invalid nodes
// are rejected before anything is stored.
func New(nodes []Node, cfg *Params) (*Network, error) {
	p := _defaultParams()
	if cfg != nil {
		merged := *cfg
		if err := merged.validate(); err != nil {
			return nil, err
		}
		// sanity: charge window must not invert
		if merged.MaxCharge < merged.MinCharge {
			merged.MaxCharge = merged.MinCharge
		}
		p = &merged
	}
	for i, n := range nodes {
		if err := n.validate(); err != nil {
			return nil, fmt.Errorf("%w (index %d)", err, i)
		}
	}
	w := &Network{Nodes: append([]Node(nil), nodes...), Params: *p}
	w.BuildPowerMatrix()
	return w, nil
}

// matrixIndex maps a node-sequence index to its power-matrix index. Slot 0
// belongs to the base station, so sensors shift up by one.
func matrixIndex(i int) int { return i + 1 }

// coefficient is Beta1 + Beta2 * distance**Alpha for one endpoint pair.
func (w *Network) coefficient(p, q geom.Point) float64 {
	return w.Params.Beta1 + w.Params.Beta2*geom.Pow(geom.Distance(p, q), w.Params.Alpha)
}

// points returns the base location followed by every node position, in
// matrix-index order.
func (w *Network) points() []geom.Point {
	pts := make([]geom.Point, 0, len(w.Nodes)+1)
	pts = append(pts, w.Params.Base)
	for _, n := range w.Nodes {
		pts = append(pts, n.Pos())
	}
	return pts
}

// BuildPowerMatrix recomputes the coefficient matrix from scratch, O(n²).
// The previous matrix is discarded; afterwards every off-diagonal entry
// satisfies the coefficient formula and the diagonal is zero.
func (w *Network) BuildPowerMatrix() {
	pts := w.points()
	m, _ := matrix.NewSquare(len(pts)) // len(pts) >= 1: base slot always exists
	for i := range pts {
		for j := i + 1; j < len(pts); j++ {
			m.SetSym(i, j, w.coefficient(pts[i], pts[j]))
		}
	}
	w.Power = m
}

// AddSensor appends n to the node sequence and extends the matrix by one
// row/column holding n's coefficients against the base station and every
// existing node, O(n). Validation happens before any mutation; on error the
// network is unchanged.
func (w *Network) AddSensor(n Node) error {
	if err := n.validate(); err != nil {
		return err
	}
	pts := w.points()
	coeffs := make([]float64, len(pts))
	for i, p := range pts {
		coeffs[i] = w.coefficient(p, n.Pos())
	}
	if err := w.Power.AppendRowCol(coeffs); err != nil {
		return err
	}
	w.Nodes = append(w.Nodes, n)
	return nil
}

// RemoveSensor deletes nodes[idx] and its matrix row/column, O(n).
// idx is a node-sequence index; the matching matrix index is idx+1 because
// of the base slot. An out-of-range idx fails with ErrIndexOutOfRange and
// leaves the network unchanged.
func (w *Network) RemoveSensor(idx int) error {
	if idx < 0 || idx >= len(w.Nodes) {
		return fmt.Errorf("%w: %d with %d sensors", ErrIndexOutOfRange, idx, len(w.Nodes))
	}
	if err := w.Power.DeleteRowCol(matrixIndex(idx)); err != nil {
		return err
	}
	w.Nodes = append(w.Nodes[:idx], w.Nodes[idx+1:]...)
	return nil
}

// Dim returns the power-matrix dimension, len(Nodes)+1.
func (w *Network) Dim() int { return w.Power.Dim() }

// Coefficient returns the transmit coefficient between sensors i and j
// (node-sequence indices).
func (w *Network) Coefficient(i, j int) float64 {
	return w.Power.At(matrixIndex(i), matrixIndex(j))
}

// CoeffToBase returns the transmit coefficient between sensor i and the
// base station.
func (w *Network) CoeffToBase(i int) float64 {
	return w.Power.At(baseSlot, matrixIndex(i))
}

// DirectToBasePower is the power sensor i draws shipping its own data
// straight to the base station, in Watts.
func (w *Network) DirectToBasePower(i int) float64 {
	return w.CoeffToBase(i) * w.Nodes[i].R
}

// Summarize aggregates the off-diagonal coefficients. With no sensors the
// summary is all zeros.
func (w *Network) Summarize() Summary {
	n := w.Power.Dim()
	if n < 2 {
		return Summary{}
	}
	s := Summary{Min: w.Power.At(0, 1), Max: w.Power.At(0, 1)}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			v := w.Power.At(i, j)
			if v < s.Min {
				s.Min = v
			}
			if v > s.Max {
				s.Max = v
			}
		}
	}
	// diagonal is zero, so the full-matrix sum is the off-diagonal sum
	s.Mean = mat.Sum(w.Power.Raw()) / float64(n*(n-1))
	return s
}
