// Package matrix implements a dense square matrix with first-class
// row/column append and delete, backed by gonum's mat.Dense.
//
// The abstraction exists so that index bookkeeping for structures that grow
// and shrink one row/column at a time (e.g. a pairwise coefficient matrix
// tracking a mutable point set) lives in one bounds-checked place instead of
// being spread across slice surgery at every call site.
package matrix

import (
	"gonum.org/v1/gonum/mat"
)

// Square is a dense n×n matrix, n >= 1. The zero value is not usable; use
// NewSquare.
type Square struct {
	n int
	d *mat.Dense
}

// NewSquare returns an n×n zero matrix. n must be at least 1.
func NewSquare(n int) (*Square, error) {
	if n < 1 {
		return nil, ErrBadDim
	}
	return &Square{n: n, d: mat.NewDense(n, n, nil)}, nil
}

// Dim returns the matrix dimension n.
func (s *Square) Dim() int { return s.n }

// At returns the element at (i, j). It panics on out-of-range indices, like
// gonum's mat.Dense.
func (s *Square) At(i, j int) float64 { return s.d.At(i, j) }

// Set writes v at (i, j).
func (s *Square) Set(i, j int, v float64) { s.d.Set(i, j, v) }

// SetSym writes v at (i, j) and (j, i).
func (s *Square) SetSym(i, j int, v float64) {
	s.d.Set(i, j, v)
	s.d.Set(j, i, v)
}

// AppendRowCol grows the matrix from n to n+1, appending one row and one
// column at index n. vals must hold exactly n values: vals[k] is written
// symmetrically at (k, n) and (n, k). The new diagonal cell (n, n) is zero.
func (s *Square) AppendRowCol(vals []float64) error {
	if len(vals) != s.n {
		return ErrBadVector
	}
	grown := s.d.Grow(1, 1).(*mat.Dense)
	for k, v := range vals {
		grown.Set(k, s.n, v)
		grown.Set(s.n, k, v)
	}
	grown.Set(s.n, s.n, 0)
	s.d = grown
	s.n++
	return nil
}

// DeleteRowCol shrinks the matrix from n to n-1, removing row k and column k.
// Surviving elements keep their relative order.
func (s *Square) DeleteRowCol(k int) error {
	if k < 0 || k >= s.n {
		return ErrIndexOutOfRange
	}
	if s.n == 1 {
		return ErrMinDim
	}
	m := s.n - 1
	next := mat.NewDense(m, m, nil)
	for i := 0; i < m; i++ {
		si := i
		if si >= k {
			si++
		}
		for j := 0; j < m; j++ {
			sj := j
			if sj >= k {
				sj++
			}
			next.Set(i, j, s.d.At(si, sj))
		}
	}
	s.d = next
	s.n = m
	return nil
}

// Clone returns an independent copy.
func (s *Square) Clone() *Square {
	c := mat.NewDense(s.n, s.n, nil)
	c.Copy(s.d)
	return &Square{n: s.n, d: c}
}

// Equal reports element-wise equality with o (exact, no tolerance).
func (s *Square) Equal(o *Square) bool {
	return s.n == o.n && mat.Equal(s.d, o.d)
}

// Sym copies the matrix into a gonum SymDense, reading the upper triangle.
// Callers that feed symmetric solvers should use this export.
func (s *Square) Sym() *mat.SymDense {
	sym := mat.NewSymDense(s.n, nil)
	for i := 0; i < s.n; i++ {
		for j := i; j < s.n; j++ {
			sym.SetSym(i, j, s.d.At(i, j))
		}
	}
	return sym
}

// Raw exposes the backing mat.Dense. Mutating it bypasses the Square
// invariants; intended for read-only interop with gonum routines.
func (s *Square) Raw() *mat.Dense { return s.d }
