package wsn

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ja7ad/wsn/pkg/geom"
)

// testParams keeps the coefficient arithmetic readable: with Beta1=1,
// Beta2=2, Alpha=1 a pair at distance d costs 1+2d.
func testParams(base geom.Point) *Params {
	return &Params{
		Rho:        1,
		Alpha:      1,
		Beta1:      1,
		Beta2:      2,
		ChargeRate: 1,
		MaxCharge:  10,
		MinCharge:  1,
		Base:       base,
	}
}

func expectCoeff(p *Params, a, b geom.Point) float64 {
	d := math.Hypot(a.X-b.X, a.Y-b.Y)
	return p.Beta1 + p.Beta2*geom.Pow(d, p.Alpha)
}

func checkInvariants(t *testing.T, w *Network) {
	t.Helper()
	n := w.Power.Dim()
	require.Equal(t, len(w.Nodes)+1, n, "matrix dimension must track node count")
	for i := 0; i < n; i++ {
		require.Zero(t, w.Power.At(i, i), "diagonal at %d", i)
		for j := 0; j < n; j++ {
			require.Equal(t, w.Power.At(i, j), w.Power.At(j, i), "symmetry at (%d,%d)", i, j)
		}
	}
}

func TestNetwork_BuildCorrectness(t *testing.T) {
	// distance base->node is the 3-4-5 hypotenuse: coeff = 1 + 2*5 = 11
	w, err := New([]Node{{X: 0, Y: 0, R: 0.5}}, testParams(geom.Point{X: 3, Y: 4}))
	require.NoError(t, err)

	require.Equal(t, 2, w.Dim())
	assert.InDelta(t, 11.0, w.Power.At(0, 1), 1e-12)
	assert.InDelta(t, 11.0, w.Power.At(1, 0), 1e-12)
	assert.InDelta(t, 11.0, w.CoeffToBase(0), 1e-12)
	checkInvariants(t, w)
}

func TestNetwork_Invariants_WithLogs(t *testing.T) {
	nodes := []Node{
		{X: 0, Y: 0, R: 1},
		{X: 10, Y: 0, R: 0.25},
		{X: -3, Y: 7.5, R: 2},
		{X: 4, Y: 4, R: 0},
	}
	w, err := New(nodes, testParams(geom.Point{X: 1, Y: 1}))
	require.NoError(t, err)
	checkInvariants(t, w)

	pts := w.points()
	t.Logf("#   i   j   dist      coeff")
	for i := 0; i < w.Dim(); i++ {
		for j := i + 1; j < w.Dim(); j++ {
			want := expectCoeff(&w.Params, pts[i], pts[j])
			require.InDelta(t, want, w.Power.At(i, j), 1e-12, "coeff (%d,%d)", i, j)
			t.Logf("%5d %3d %9.4f %10.4f", i, j, geom.Distance(pts[i], pts[j]), w.Power.At(i, j))
		}
	}
}

func TestNetwork_DimensionInvariant(t *testing.T) {
	nodes := []Node{{X: 1, Y: 0, R: 1}, {X: 0, Y: 2, R: 1}, {X: 5, Y: 5, R: 1}}
	w, err := New(nodes, testParams(geom.Point{}))
	require.NoError(t, err)
	require.Equal(t, 4, w.Dim())

	require.NoError(t, w.AddSensor(Node{X: 2, Y: 2, R: 1}))
	require.Equal(t, 5, w.Dim())

	require.NoError(t, w.RemoveSensor(0))
	require.Equal(t, 4, w.Dim())
	checkInvariants(t, w)
}

func TestNetwork_AddSensor(t *testing.T) {
	w, err := New([]Node{{X: 3, Y: 0, R: 1}, {X: 0, Y: 4, R: 1}}, testParams(geom.Point{}))
	require.NoError(t, err)

	added := Node{X: 6, Y: 8, R: 0.5}
	require.NoError(t, w.AddSensor(added))
	require.Len(t, w.Nodes, 3)
	checkInvariants(t, w)

	// coefficients vs both pre-existing nodes and, crucially, vs the base
	for i, existing := range []Node{{X: 3, Y: 0}, {X: 0, Y: 4}} {
		want := expectCoeff(&w.Params, existing.Pos(), added.Pos())
		assert.InDelta(t, want, w.Coefficient(i, 2), 1e-12, "existing %d vs new", i)
	}
	wantBase := expectCoeff(&w.Params, w.Params.Base, added.Pos())
	assert.InDelta(t, wantBase, w.CoeffToBase(2), 1e-12, "base vs new")
}

func TestNetwork_RemoveRestoresPreAddState(t *testing.T) {
	w, err := New([]Node{{X: 1, Y: 1, R: 1}, {X: 2, Y: 3, R: 1}}, testParams(geom.Point{}))
	require.NoError(t, err)

	before := w.Power.Clone()
	require.NoError(t, w.AddSensor(Node{X: -4, Y: 0.5, R: 2}))
	require.NoError(t, w.RemoveSensor(2))

	require.Len(t, w.Nodes, 2)
	assert.True(t, w.Power.Equal(before), "add+remove of the same sensor must restore the matrix")
}

func TestNetwork_RemoveSensor_FirstKeepsBaseRow(t *testing.T) {
	// removing sensor 0 must delete matrix slot 1, never the base slot 0
	a, b := Node{X: 1, Y: 0, R: 1}, Node{X: 0, Y: 9, R: 1}
	w, err := New([]Node{a, b}, testParams(geom.Point{X: 2, Y: 2}))
	require.NoError(t, err)

	require.NoError(t, w.RemoveSensor(0))
	require.Equal(t, []Node{b}, w.Nodes)
	checkInvariants(t, w)

	wantBase := expectCoeff(&w.Params, w.Params.Base, b.Pos())
	assert.InDelta(t, wantBase, w.CoeffToBase(0), 1e-12)
}

func TestNetwork_RemoveSensor_IndexValidation(t *testing.T) {
	w, err := New([]Node{{X: 1, Y: 1, R: 1}}, testParams(geom.Point{}))
	require.NoError(t, err)
	before := w.Power.Clone()

	for _, idx := range []int{-1, 1, 99} {
		t.Run(fmt.Sprintf("idx_%d", idx), func(t *testing.T) {
			require.ErrorIs(t, w.RemoveSensor(idx), ErrIndexOutOfRange)
			require.Len(t, w.Nodes, 1)
			assert.True(t, w.Power.Equal(before), "failed remove must not mutate")
		})
	}
}

func TestNetwork_AddSensor_RejectsBadNode(t *testing.T) {
	w, err := New([]Node{{X: 1, Y: 1, R: 1}}, testParams(geom.Point{}))
	require.NoError(t, err)
	before := w.Power.Clone()

	for _, bad := range []Node{
		{X: math.NaN(), Y: 0, R: 1},
		{X: 0, Y: math.Inf(1), R: 1},
		{X: 0, Y: 0, R: -1},
	} {
		require.ErrorIs(t, w.AddSensor(bad), ErrInvalidNode)
		require.Len(t, w.Nodes, 1)
		assert.True(t, w.Power.Equal(before), "failed add must not mutate")
	}
}

func TestNetwork_IdempotentRebuild(t *testing.T) {
	w, err := New([]Node{{X: 1, Y: 2, R: 1}, {X: -3, Y: 0.25, R: 1}}, testParams(geom.Point{X: 0.5, Y: 0.5}))
	require.NoError(t, err)

	first := w.Power.Clone()
	w.BuildPowerMatrix()
	assert.True(t, w.Power.Equal(first), "rebuild on an unchanged node list must be bit-exact")
}

func TestNetwork_IncrementalMatchesFullBuild(t *testing.T) {
	w, err := New([]Node{{X: 0, Y: 0, R: 1}}, testParams(geom.Point{X: 7, Y: -2}))
	require.NoError(t, err)

	require.NoError(t, w.AddSensor(Node{X: 3, Y: 3, R: 1}))
	require.NoError(t, w.AddSensor(Node{X: -1, Y: 5, R: 1}))
	require.NoError(t, w.RemoveSensor(1))

	patched := w.Power.Clone()
	w.BuildPowerMatrix()
	assert.True(t, w.Power.Equal(patched), "incremental updates must agree with a full rebuild")
}

func TestNew_Validation(t *testing.T) {
	badParams := testParams(geom.Point{})
	badParams.Rho = math.NaN()
	_, err := New(nil, badParams)
	require.ErrorIs(t, err, ErrInvalidConfig)

	_, err = New([]Node{{X: math.Inf(-1), Y: 0, R: 1}}, testParams(geom.Point{}))
	require.ErrorIs(t, err, ErrInvalidNode)

	// nil params select defaults
	w, err := New(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, *_defaultParams(), w.Params)
	require.Equal(t, 1, w.Dim())

	// inverted charge window is clamped, not rejected
	inv := testParams(geom.Point{})
	inv.MaxCharge, inv.MinCharge = 1, 10
	w, err = New(nil, inv)
	require.NoError(t, err)
	assert.Equal(t, w.Params.MinCharge, w.Params.MaxCharge)
}

func TestNetwork_Readouts(t *testing.T) {
	w, err := New([]Node{{X: 3, Y: 4, R: 2}, {X: 6, Y: 8, R: 1}}, testParams(geom.Point{}))
	require.NoError(t, err)

	// base->node0 at distance 5: coeff 11; direct power 11 * rate 2
	assert.InDelta(t, 11.0, w.CoeffToBase(0), 1e-12)
	assert.InDelta(t, 22.0, w.DirectToBasePower(0), 1e-12)
	assert.InDelta(t, 21.0, w.CoeffToBase(1), 1e-12)

	// node0<->node1 at distance 5 again
	assert.InDelta(t, 11.0, w.Coefficient(0, 1), 1e-12)
	assert.Equal(t, w.Coefficient(0, 1), w.Coefficient(1, 0))

	sum := w.Summarize()
	assert.InDelta(t, 11.0, sum.Min, 1e-12)
	assert.InDelta(t, 21.0, sum.Max, 1e-12)
	assert.InDelta(t, (11.0+21.0+11.0)/3, sum.Mean, 1e-12)
	t.Logf("summary: min=%.3f max=%.3f mean=%.3f", sum.Min, sum.Max, sum.Mean)
}

func TestNetwork_Summarize_Empty(t *testing.T) {
	w, err := New(nil, testParams(geom.Point{}))
	require.NoError(t, err)
	assert.Equal(t, Summary{}, w.Summarize())
}

func ExampleNew() {
	w, _ := New([]Node{{X: 0, Y: 0, R: 0.5}}, &Params{
		Alpha: 1, Beta1: 1, Beta2: 2,
		Base: geom.Point{X: 3, Y: 4},
	})
	fmt.Printf("dim=%d coeff(base,0)=%.2f\n", w.Dim(), w.CoeffToBase(0))
	// Output: dim=2 coeff(base,0)=11.00
}
