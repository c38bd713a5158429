// Package normalize implements per-action event deduplication/sorting,
// adjacent-chain collapsing, minimal-period reduction, and
// implicit-to-explicit group conversion. It also performs period and
// cardinality accumulation, which is only meaningful once the group list
// has reached its final, collapsed-and-reduced form — so this package
// computes period and cardinality by summing the accumulation formulas
// directly over that final list rather than tracking a separately-scaled
// running total; the two are arithmetically identical except in the
// p==1 special case, which this package applies before summing.
package normalize

import (
	"sort"

	"github.com/varkor/siteswap/internal/ast"
)

// Placeholder is the canonical empty-beat action inserted into a
// normalised group whenever an action has no real events, and into the
// non-participating hand slots produced by implicit-to-explicit
// conversion.
var Placeholder = ast.Action{Events: []ast.Event{{Value: 0, Offset: 0, Quantity: 1}}}

// Normalize mutates groups into normalised form in place and returns the
// final group list plus the accumulated period and cardinality-mass pair
// (mass, not yet divided by period — the caller checks divisibility).
func Normalize(groups []ast.Group, hands *int) (result []ast.Group, period int, mass int) {
	for i := range groups {
		groups[i].Actions = normalizeActions(groups[i].Actions)
	}

	groups = collapseAdjacentGroups(groups)
	groups = reduceMinimalPeriod(groups)
	period, mass = accumulate(groups)

	handsEffective := 1
	if hands != nil {
		handsEffective = *hands
	}
	groups = convertImplicitToExplicit(groups, handsEffective)

	return groups, period, mass
}

// ---- per-action normalisation ----

func normalizeActions(actions []ast.Action) []ast.Action {
	out := make([]ast.Action, len(actions))
	for i, a := range actions {
		out[i] = normalizeAction(a)
	}
	return out
}

func normalizeAction(a ast.Action) ast.Action {
	var kept []ast.Event
	for _, e := range a.Events {
		if e.Value == 0 && e.Offset == 0 {
			continue
		}
		kept = append(kept, e)
	}

	sort.SliceStable(kept, func(i, j int) bool { return kept[i].Value < kept[j].Value })

	var merged []ast.Event
	for _, e := range kept {
		if n := len(merged); n > 0 && merged[n-1].Value == e.Value && merged[n-1].Offset == e.Offset {
			merged[n-1].Quantity += e.Quantity
			continue
		}
		merged = append(merged, e)
	}

	var final []ast.Event
	for _, e := range merged {
		if e.Quantity == 0 {
			continue
		}
		final = append(final, e)
	}

	if len(final) == 0 {
		return ast.Action{Events: []ast.Event{{Value: 0, Offset: 0, Quantity: 1}}}
	}
	return ast.Action{Events: final}
}

// ---- per-group adjacent collapsing ----

func collapseAdjacentGroups(groups []ast.Group) []ast.Group {
	var out []ast.Group
	for _, g := range groups {
		if n := len(out); n > 0 && groupCoreEqual(out[n-1], g) {
			out[n-1].Quantity += g.Quantity
			continue
		}
		out = append(out, g)
	}

	var final []ast.Group
	for _, g := range out {
		if g.Quantity == 0 {
			continue
		}
		final = append(final, g)
	}
	return final
}

// groupCoreEqual compares the identity a group is collapsed/reduced on:
// actions and suppression. For a still-implicit group this
// also compares the assigned Hand: two implicit bare actions destined for
// different hands are not the same beat-slot even if their action content
// happens to match, so collapsing them would silently drop a hand's
// throws.
func groupCoreEqual(a, b ast.Group) bool {
	if a.Implicit != b.Implicit {
		return false
	}
	if a.Implicit && a.Hand != b.Hand {
		return false
	}
	if a.Suppression != b.Suppression {
		return false
	}
	if len(a.Actions) != len(b.Actions) {
		return false
	}
	for i := range a.Actions {
		if !actionsEqual(a.Actions[i], b.Actions[i]) {
			return false
		}
	}
	return true
}

func actionsEqual(a, b ast.Action) bool {
	if len(a.Events) != len(b.Events) {
		return false
	}
	for i := range a.Events {
		if a.Events[i] != b.Events[i] {
			return false
		}
	}
	return true
}

// ---- minimal-period reduction ----

func reduceMinimalPeriod(groups []ast.Group) []ast.Group {
	l := len(groups)
	if l == 0 {
		return groups
	}

	p := l
	for candidate := 1; candidate <= l; candidate++ {
		if l%candidate != 0 {
			continue
		}
		if periodHolds(groups, candidate) {
			p = candidate
			break
		}
	}

	reduced := append([]ast.Group(nil), groups[:p]...)
	if p == 1 {
		reduced[0].Quantity = sign(reduced[0].Quantity)
	}
	return reduced
}

// periodHolds checks groups[i] == groups[i mod p] for every i, never
// short-circuiting on the first mismatch: this takes the "detect any
// mismatch" reading, which is operationally identical to short-circuiting
// here but documents the intent explicitly (see DESIGN.md).
func periodHolds(groups []ast.Group, p int) bool {
	ok := true
	for i := 0; i < len(groups); i++ {
		if !groupCoreEqual(groups[i], groups[i%p]) {
			ok = false
		}
	}
	return ok
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

// ---- implicit-to-explicit conversion ----

func convertImplicitToExplicit(groups []ast.Group, handsEffective int) []ast.Group {
	for i, g := range groups {
		if !g.Implicit {
			continue
		}
		actions := make([]ast.Action, handsEffective)
		for h := range actions {
			actions[h] = Placeholder
		}
		slot := g.Hand % handsEffective
		actions[slot] = g.Actions[0]
		groups[i].Actions = actions
		groups[i].Suppression = handsEffective - 1
		// Implicit stays true: the renderer needs it to know only
		// actions[slot] is "real".
	}
	return groups
}

// ---- period & cardinality accumulation ----

func accumulate(groups []ast.Group) (period, mass int) {
	for _, g := range groups {
		beatsPerRep := len(g.Actions) - g.Suppression
		period += g.Quantity * beatsPerRep

		var eventSum int
		for _, a := range g.Actions {
			for _, e := range a.Events {
				eventSum += e.Value * e.Quantity
			}
		}
		mass += g.Quantity * eventSum
	}
	return period, mass
}
