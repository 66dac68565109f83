package model

import (
	"errors"
	"fmt"
	"slices"
)

// ErrDimensionMismatch indicates that a network, its seeds, and its
// reference points do not share a common dimension.
//
// It is fatal to the single job that observes it, never to a whole batch.
var ErrDimensionMismatch = errors.New("dimension mismatch")

// Point is a state vector of fixed dimension N (the network size).
// Points are immutable once produced; callers that need to modify one
// must work on a Clone.
//
// Components are float64: the canonical duplicate tolerance is 2^-21,
// which is below single-precision resolution.
type Point []float64

// Dim returns the dimension of the point.
func (p Point) Dim() int { return len(p) }

// Clone returns an independent copy of the point.
func (p Point) Clone() Point { return Point(slices.Clone(p)) }

// Zero returns the origin point of dimension n.
func Zero(n int) Point { return make(Point, n) }

// Seed is a starting point for one continuation run: a point plus the
// auxiliary homotopy parameter alpha.
type Seed struct {
	Point Point   `json:"point"`
	Alpha float64 `json:"alpha"`
}

// NewSeed returns a seed at p with alpha 0.
func NewSeed(p Point) Seed { return Seed{Point: p} }

// Status is the outcome of one continuation run.
//
// There is exactly one canonical enumeration; statuses are compared with ==
// everywhere, never via strings.
type Status int

const (
	// StatusSuccess indicates the run completed its path normally.
	StatusSuccess Status = iota
	// StatusClosedLoop indicates the run returned to its own starting
	// region without new information. This is an expected outcome, not an
	// error; it is recorded and counted for diagnostics.
	StatusClosedLoop
	// StatusFailure indicates the solver gave up or exceeded its budget.
	// The run still contributes whatever points it did produce.
	StatusFailure
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "Success"
	case StatusClosedLoop:
		return "ClosedLoop"
	case StatusFailure:
		return "Failure"
	default:
		return fmt.Sprintf("Unknown(%d)", int(s))
	}
}

// Network is one sampled test network: an N-by-N weight matrix together
// with its known fixed points. The core never evaluates the underlying
// nonlinear map; the network is passed opaquely to external solvers.
type Network struct {
	// N is the network size (point dimension).
	N int `json:"n"`
	// Sample is the sample index within networks of the same size.
	Sample int `json:"sample"`
	// W is the weight matrix, row major, N rows of length N.
	W [][]float64 `json:"w"`
	// Known holds the fixed points known by construction.
	Known []Point `json:"known"`
}

// Validate checks that the weight matrix and the known points agree on the
// network dimension. Returns an error wrapping ErrDimensionMismatch.
func (n *Network) Validate() error {
	if n.N <= 0 {
		return fmt.Errorf("%w: network size %d", ErrDimensionMismatch, n.N)
	}
	if len(n.W) != n.N {
		return fmt.Errorf("%w: weight matrix has %d rows, want %d", ErrDimensionMismatch, len(n.W), n.N)
	}
	for i, row := range n.W {
		if len(row) != n.N {
			return fmt.Errorf("%w: weight row %d has %d columns, want %d", ErrDimensionMismatch, i, len(row), n.N)
		}
	}
	for i, p := range n.Known {
		if p.Dim() != n.N {
			return fmt.Errorf("%w: known point %d has dimension %d, want %d", ErrDimensionMismatch, i, p.Dim(), n.N)
		}
	}
	return nil
}
