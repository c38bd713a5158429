// Package rangeinfer computes, per hand, the inclusive beat-index window
// that may be non-zero in the pattern's initial state.
//
// The walk mirrors internal/solver's delta construction term for term:
// both stages must index into the same windows, including the
// per-repetition "+i" term.
package rangeinfer

import "github.com/varkor/siteswap/internal/ast"

// Range is an inclusive [Min, Max] beat-index window for one hand.
type Range struct {
	Min, Max int
	touched  bool
}

// TooLargeError is raised when a hand's window exceeds maximumLength
// before any O(R) allocation would occur.
type TooLargeError struct {
	Hand, Span, Max int
}

func (e *TooLargeError) Error() string {
	return "state range too large"
}

// Infer walks groups left-to-right (an implicit running "position"
// starting at 0) and returns the per-hand range. groups must already be
// in final, normalised, implicit-converted form (every group's Actions
// has length handsEffective).
func Infer(groups []ast.Group, handsEffective, maximumLength int) ([]Range, error) {
	ranges := make([]Range, handsEffective)
	position := 0

	for _, g := range groups {
		q := g.Quantity
		if q == 0 {
			continue
		}
		offsetBit := 0
		if q > 0 {
			offsetBit = 1
		}
		increment := sign(q)
		beatsPerRep := len(g.Actions) - g.Suppression

		for i := 0; abs(i) < abs(q); i += increment {
			posI := position + i
			for handIdx, action := range g.Actions {
				extend(&ranges[handIdx], posI+offsetBit)
				for _, e := range action.Events {
					t := mod(handIdx+e.Value+e.Offset, handsEffective)
					extend(&ranges[t], posI+offsetBit+e.Value)
				}
			}
		}

		position += q * beatsPerRep
	}

	for h := range ranges {
		if !ranges[h].touched {
			ranges[h] = Range{Min: 0, Max: 0, touched: true}
		}
		if ranges[h].Max-ranges[h].Min > maximumLength {
			return nil, &TooLargeError{Hand: h, Span: ranges[h].Max - ranges[h].Min, Max: maximumLength}
		}
	}
	return ranges, nil
}

func extend(r *Range, v int) {
	if !r.touched {
		r.Min, r.Max, r.touched = v, v, true
		return
	}
	if v < r.Min {
		r.Min = v
	}
	if v > r.Max {
		r.Max = v
	}
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func mod(a, m int) int {
	if m == 0 {
		return 0
	}
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}
