// Package solver builds per-hand delta arrays, solves for a
// self-consistent periodic state, and classifies the result as ground or
// excited.
package solver

import (
	"github.com/varkor/siteswap/internal/ast"
	"github.com/varkor/siteswap/internal/rangeinfer"
)

// BuildDelta walks groups identically to rangeinfer.Infer and accumulates
// the signed per-beat, per-hand prop-count changes. ranges must be the
// output of rangeinfer.Infer for the same groups.
func BuildDelta(groups []ast.Group, handsEffective int, ranges []rangeinfer.Range) [][]int {
	deltas := make([][]int, handsEffective)
	for h := range deltas {
		deltas[h] = make([]int, ranges[h].Max-ranges[h].Min+1)
	}

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
				sum := 0
				for _, e := range action.Events {
					sum += e.Quantity
				}
				minH := ranges[handIdx].Min
				deltas[handIdx][posI+offsetBit-minH] -= sum * increment

				for _, e := range action.Events {
					t := mod(handIdx+e.Value+e.Offset, handsEffective)
					minT := ranges[t].Min
					deltas[t][posI+offsetBit+e.Value-minT] += e.Quantity * increment
				}
			}
		}

		position += q * beatsPerRep
	}

	return deltas
}

// Solve runs the linear recurrence backwards from each window boundary
// and reports whether the zero-outside-window assumption is
// self-consistent for every hand.
func Solve(deltas [][]int, ranges []rangeinfer.Range, period int) (states [][]int, valid bool) {
	states = make([][]int, len(deltas))
	valid = true

	for h, delta := range deltas {
		minH, maxH := ranges[h].Min, ranges[h].Max
		state := make([]int, len(delta))

		for idx := minH; idx <= maxH; idx++ {
			var before int
			if period < 0 {
				before = maxH + minH - idx
			} else {
				before = idx
			}
			after := before - period

			var afterVal int
			if after >= minH && after <= maxH {
				afterVal = state[after-minH]
			}
			state[before-minH] = afterVal - delta[before-minH]
		}

		states[h] = state
		if !tailZero(state, period) {
			valid = false
		}
	}

	return states, valid
}

func tailZero(state []int, period int) bool {
	n := abs(period)
	if n > len(state) {
		n = len(state)
	}
	if period < 0 {
		for i := 0; i < n; i++ {
			if state[i] != 0 {
				return false
			}
		}
		return true
	}
	for i := len(state) - n; i < len(state); i++ {
		if state[i] != 0 {
			return false
		}
	}
	return true
}

// Classify reports ground=true iff the solved state exactly matches the
// canonical ground state for cardinality across every hand.
func Classify(states [][]int, ranges []rangeinfer.Range, cardinality, handsEffective int) bool {
	c := cardinality
	absC := abs(c)
	offsetBit := 0
	if c > 0 {
		offsetBit = 1
	}
	want := sign(c)

	for h := 0; h < handsEffective; h++ {
		count := absC/handsEffective + boolToInt(h < absC%handsEffective)
		minH, maxH := ranges[h].Min, ranges[h].Max
		state := states[h]

		nonzero := 0
		for _, v := range state {
			if v != 0 {
				nonzero++
			}
		}
		if nonzero != count {
			return false
		}

		for k := 0; k < count; k++ {
			beat := h + offsetBit + k*handsEffective
			if c < 0 {
				beat = -beat
			}
			if beat < minH || beat > maxH {
				return false
			}
			if state[beat-minH] != want {
				return false
			}
		}
	}
	return true
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
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
