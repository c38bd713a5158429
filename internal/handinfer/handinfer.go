// Package handinfer resolves hand count and implicit-group hand
// assignment: whether any explicit synchronous tuple appears, what arity
// it commits the pattern to, and which hand index each implicit
// (bare-action) group rotates onto.
package handinfer

import "github.com/varkor/siteswap/internal/ast"

// Error mirrors the three error kinds this stage can raise; the caller
// (siteswap package) maps Kind to the public ErrorKind.
type Error struct {
	Kind    Kind
	Message string
}

type Kind int

const (
	InconsistentHandCount Kind = iota
	OffsetExceedsHands
	InvalidSuppression
)

func (e *Error) Error() string { return e.Message }

// Resolve determines hands (nil if no explicit tuple appears anywhere),
// assigns Hand indices to every implicit group in place, and validates
// suppression ranges and crossing offsets against the resolved hand
// count. groups is mutated in place.
func Resolve(groups []ast.Group) (hands *int, err error) {
	arity := -1
	firstExplicit, lastExplicit := -1, -1
	for i, g := range groups {
		if g.Implicit {
			continue
		}
		if firstExplicit == -1 {
			firstExplicit = i
		}
		lastExplicit = i
		n := len(g.Actions)
		if arity == -1 {
			arity = n
		} else if n != arity {
			return nil, &Error{Kind: InconsistentHandCount, Message: "explicit tuples have inconsistent hand counts"}
		}
		if g.Suppression < 0 || g.Suppression >= n {
			return nil, &Error{Kind: InvalidSuppression, Message: "suppression count must be in [0, len(actions))"}
		}
	}

	if arity == -1 {
		// No explicit tuple: one-handed, hand indices are moot (mod 1).
		for i := range groups {
			groups[i].Hand = 0
		}
		hands = nil
	} else {
		h := arity
		hands = &h
		assignHands(groups, arity, firstExplicit, lastExplicit)
	}

	effective := 1
	if hands != nil {
		effective = *hands
	}
	for _, g := range groups {
		for _, a := range g.Actions {
			for _, e := range a.Events {
				if e.Offset >= effective {
					return nil, &Error{Kind: OffsetExceedsHands, Message: "event offset reaches or exceeds the hand count"}
				}
			}
		}
	}

	return hands, nil
}

// assignHands runs a rotating counter: reset to 0 immediately after any
// explicit tuple, +1 per implicit group. The contiguous leading run
// before the first explicit tuple is re-based so it continues the count
// that trails off the end of the pattern, closing the cycle (see
// DESIGN.md for the open-question resolution on leading-implicit
// resets).
func assignHands(groups []ast.Group, arity, firstExplicit, lastExplicit int) {
	counter := 0
	for i, g := range groups {
		if !g.Implicit {
			counter = 0
			continue
		}
		groups[i].Hand = counter % arity
		counter++
	}

	if firstExplicit <= 0 {
		return // no leading run to re-base
	}

	trailingLen := 0
	for i := lastExplicit + 1; i < len(groups); i++ {
		trailingLen++
	}
	for i := 0; i < firstExplicit; i++ {
		groups[i].Hand = (trailingLen + i) % arity
	}
}
