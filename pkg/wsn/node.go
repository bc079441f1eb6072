package wsn

import "github.com/ja7ad/wsn/pkg/geom"

// Node is a stationary sensor: a 2D position plus a data-generation rate.
// It is a plain value type with no identity of its own; a node's identity
// within a Network is its position in the node sequence.
type Node struct {
	X float64 // m
	Y float64 // m
	R float64 // data units per second, >= 0
}

// NewNode builds a Node from a position and a data-generation rate.
func NewNode(pos geom.Point, rate float64) Node {
	return Node{X: pos.X, Y: pos.Y, R: rate}
}

// Pos returns the node position as a geom.Point.
func (n Node) Pos() geom.Point { return geom.Point{X: n.X, Y: n.Y} }

// validate screens for non-finite coordinates and negative rates.
func (n Node) validate() error {
	if !geom.Finite(n.X, n.Y, n.R) || n.R < 0 {
		return ErrInvalidNode
	}
	return nil
}
